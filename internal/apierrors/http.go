package apierrors

import (
	"encoding/json"
	"net/http"
)

// RequestIDHeader carries the request id set by the HTTP middleware.
const RequestIDHeader = "X-Request-Id"

// ErrorBody is the JSON error envelope: {"error":{"message":"INVALID_DATA","code":400}}.
type ErrorBody struct {
	Message   string `json:"message"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// WriteError maps err and writes the envelope with the matching status.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := FromError(err)

	resp := ErrorResponse{Error: ErrorBody{
		Message: apiErr.Message,
		Code:    apiErr.HTTPStatus,
	}}
	if r != nil {
		resp.Error.RequestID = r.Header.Get(RequestIDHeader)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(resp)
}
