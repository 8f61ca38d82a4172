package middleware

import (
	"net/http"

	"github.com/tigerbridge/tigerbridge/pkg/response"
	"go.uber.org/zap"
)

// Recoverer converts a handler panic into the standard 500 envelope so
// even a crash answers in the uniform shape.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				zap.L().Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				)
				response.Error(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
