package middlewares

import (
	"context"
	"github.com/go-chi/cors"
	"github.com/hashicorp/go-hclog"
	"github.com/segmentio/ksuid"
	"net/http"
	"statusdrafter/pkg/utils"
)

type contextKey int

const (
	RequestID contextKey = iota + 1
)

const RequestIDHeader = "X-Request-Id"

type middlewareHandler struct {
	logger hclog.Logger
}

type MiddlewareHandler interface {
	ContextMiddleware(next http.Handler) http.Handler
	RecoveryMiddleware(next http.Handler) http.Handler
	CORSMiddleware() func(next http.Handler) http.Handler
}

func NewMiddlewareHandler(logger hclog.Logger) MiddlewareHandler {
	return &middlewareHandler{
		logger: logger.Named("middleware"),
	}
}

// ContextMiddleware tags every request with a ksuid, echoed in the response headers
func (m *middlewareHandler) ContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ksuid.New().String()
		ctx := context.WithValue(r.Context(), RequestID, id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RecoveryMiddleware turns a handler panic into a 500 JSON error
func (m *middlewareHandler) RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.logger.Error("handler panicked", "path", r.URL.Path, "request_id", GetRequestID(r.Context()), "panic", rec)
				utils.SendError(w, utils.HTTPGenericError(http.StatusInternalServerError, "internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CORSMiddleware allows any origin, the browser UI may be served from elsewhere
func (m *middlewareHandler) CORSMiddleware() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestID).(string)
	return id
}
