package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/sessiond/internal/apierrors"
)

// maxRequestIDLength bounds client supplied ids before they reach logs.
const maxRequestIDLength = 128

// RequestID keeps the caller's X-Request-Id or generates one, and echoes it
// on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(apierrors.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
			r.Header.Set(apierrors.RequestIDHeader, id)
		}
		w.Header().Set(apierrors.RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
