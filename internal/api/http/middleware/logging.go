package middleware

import (
	"net/http"
	"time"

	"github.com/dtroode/sessiond/internal/apierrors"
	"github.com/dtroode/sessiond/internal/logger"
)

// Logging logs method, path, status and duration of every request.
func Logging(l *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.Status(),
				"bytes", sw.count,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", r.Header.Get(apierrors.RequestIDHeader),
			}
			switch {
			case sw.Status() >= http.StatusInternalServerError:
				l.Error("HTTP request failed", args...)
			case sw.Status() >= http.StatusBadRequest:
				l.Warn("HTTP request rejected", args...)
			default:
				l.Info("HTTP request completed", args...)
			}
		})
	}
}
