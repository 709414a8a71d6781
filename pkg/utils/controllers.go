package utils

import (
	"encoding/json"
	"errors"
	"github.com/gorilla/mux"
	"io"
	"net/http"
	"strconv"
)

const (
	MessageSuccess = "success"
	MessageDeleted = "deleted"
)

// Response is the envelope for successful reads and writes
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// DeletedResponse is the envelope for deletes, Changes is only set for drafts
type DeletedResponse struct {
	Message string `json:"message"`
	Changes *int64 `json:"changes,omitempty"`
}

// ErrorResponse is the envelope for failures
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func SendJSON(w http.ResponseWriter, data interface{}, status int, headers map[string]string) {
	w.Header().Set("Content-Type", "application/json")

	for header, val := range headers {
		w.Header().Add(header, val)
	}

	w.WriteHeader(status)
	if status == http.StatusNoContent {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func SendSuccess(w http.ResponseWriter, data interface{}) {
	SendJSON(w, Response{Message: MessageSuccess, Data: data}, http.StatusOK, nil)
}

func SendDeleted(w http.ResponseWriter, changes *int64) {
	SendJSON(w, DeletedResponse{Message: MessageDeleted, Changes: changes}, http.StatusOK, nil)
}

func SendError(w http.ResponseWriter, err *GenericError) {
	status := err.Type
	if status == 0 {
		status = http.StatusBadRequest
	}
	SendJSON(w, ErrorResponse{Error: err.Message, Details: err.Details}, status, nil)
}

func ValidateQueryString(queryString string, r *http.Request) (string, error) {
	param := r.URL.Query()[queryString]

	if param == nil || len(param[0]) < 1 {
		return "", errors.New(queryString + " is not provided")
	}

	return param[0], nil
}

// GetIntQueryParam returns the integer value of a query param or the fallback
// when it is missing, malformed or not positive
func GetIntQueryParam(r *http.Request, name string, fallback int64) int64 {
	param, err := ValidateQueryString(name, r)
	if err != nil {
		return fallback
	}
	value, err := strconv.ParseInt(param, 10, 64)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// GetIDPathParam reads a numeric path variable set by the mux router
func GetIDPathParam(r *http.Request, name string) (int64, *GenericError) {
	params := mux.Vars(r)
	id, err := strconv.ParseInt(params[name], 10, 64)
	if err != nil {
		return 0, HTTPGenericError(http.StatusBadRequest, name+" must be a number")
	}
	return id, nil
}

// DecodeBody decodes a JSON request body into v
func DecodeBody(r *http.Request, v interface{}) *GenericError {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return HTTPGenericError(http.StatusUnprocessableEntity, "request body required")
	}
	if len(body) < 1 {
		return HTTPGenericError(http.StatusBadRequest, "request body required")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return HTTPGenericError(http.StatusBadRequest, err.Error())
	}
	return nil
}
