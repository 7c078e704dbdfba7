package controller

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Recoverer turns a panic into the JSON server error response.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic while handling request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"))
				respondServerError(w, r, fmt.Errorf("%v", rec))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
