package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/dtroode/sessiond/internal/apierrors"
	"github.com/dtroode/sessiond/internal/logger"
)

// Recover converts a handler panic into a 500 envelope.
func Recover(l *logger.Logger) func(http.Handler) http.Handler {
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
				l.Error("HTTP handler panicked",
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()))
				apierrors.WriteError(w, r, errors.New("panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
