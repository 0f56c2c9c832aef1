package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexdb/pkg/ctxutil"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that reuses the caller's request ID or
// generates a new one, stores it in the context and echoes it back.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}

// RunID returns middleware that stores the ID of the load behind the served
// index in the request context. Requests that arrive before the load has
// finished carry no run ID.
func RunID(current func() (string, bool)) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := current(); ok {
				r = r.WithContext(ctxutil.WithRunID(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
