package utils

import (
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"net/http"
)

type GenericError struct {
	Message string
	Details string
	Type    int
}

func (g *GenericError) Error() string {
	if g.Details != "" {
		return fmt.Sprintf("message: %s, details: %s, code: %v", g.Message, g.Details, g.Type)
	}
	return fmt.Sprintf("message: %s, code: %v", g.Message, g.Type)
}

func HTTPGenericError(httpStatus int, errorMessage string) *GenericError {
	return &GenericError{
		Type:    httpStatus,
		Message: errorMessage,
	}
}

// HTTPGenericErrorWithDetails is used where the client shows a short message
// and logs the underlying cause
func HTTPGenericErrorWithDetails(httpStatus int, errorMessage string, details string) *GenericError {
	return &GenericError{
		Type:    httpStatus,
		Message: errorMessage,
		Details: details,
	}
}

// StoreError converts a database error into a client error. Constraint
// violations (unique, foreign key, check, not null) keep the driver message.
func StoreError(err error) *GenericError {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return HTTPGenericError(http.StatusBadRequest, sqliteErr.Error())
	}
	return HTTPGenericError(http.StatusBadRequest, err.Error())
}
