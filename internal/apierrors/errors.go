// Package apierrors defines the errors clients see and maps domain errors
// onto them for both transports.
package apierrors

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/dtroode/sessiond/internal/model"
)

// Client visible error codes.
const (
	CodeInvalidData     = "INVALID_DATA"
	CodeEmailExists     = "EMAIL_EXISTS"
	CodeEmailNotFound   = "EMAIL_NOT_FOUND"
	CodeInvalidPassword = "INVALID_PASSWORD"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNotFound        = "NOT_FOUND"
	CodeNotAllowed      = "METHOD_NOT_ALLOWED"
	CodeInternal        = "INTERNAL_ERROR"
)

// APIError is an error with a stable code and its status on each transport.
type APIError struct {
	Code       string
	Message    string
	HTTPStatus int
	GRPCCode   codes.Code
}

func (e *APIError) Error() string {
	return e.Message
}

func NewErrInvalidData() *APIError {
	return &APIError{Code: CodeInvalidData, Message: CodeInvalidData, HTTPStatus: http.StatusBadRequest, GRPCCode: codes.InvalidArgument}
}

func NewErrEmailExists() *APIError {
	return &APIError{Code: CodeEmailExists, Message: CodeEmailExists, HTTPStatus: http.StatusBadRequest, GRPCCode: codes.AlreadyExists}
}

func NewErrEmailNotFound() *APIError {
	return &APIError{Code: CodeEmailNotFound, Message: CodeEmailNotFound, HTTPStatus: http.StatusBadRequest, GRPCCode: codes.NotFound}
}

func NewErrInvalidPassword() *APIError {
	return &APIError{Code: CodeInvalidPassword, Message: CodeInvalidPassword, HTTPStatus: http.StatusBadRequest, GRPCCode: codes.InvalidArgument}
}

func NewErrUnauthorized() *APIError {
	return &APIError{Code: CodeUnauthorized, Message: "Unauthorized", HTTPStatus: http.StatusUnauthorized, GRPCCode: codes.Unauthenticated}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Code: CodeUnauthorized, Message: "missing authorization token", HTTPStatus: http.StatusUnauthorized, GRPCCode: codes.Unauthenticated}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Code: CodeUnauthorized, Message: "invalid authorization token", HTTPStatus: http.StatusUnauthorized, GRPCCode: codes.Unauthenticated}
}

// NewErrNotFound is returned for unknown routes.
func NewErrNotFound() *APIError {
	return &APIError{Code: CodeNotFound, Message: "not found", HTTPStatus: http.StatusNotFound, GRPCCode: codes.NotFound}
}

func NewErrMethodNotAllowed() *APIError {
	return &APIError{Code: CodeNotAllowed, Message: "method not allowed", HTTPStatus: http.StatusMethodNotAllowed, GRPCCode: codes.Unimplemented}
}

func NewErrInternal() *APIError {
	return &APIError{Code: CodeInternal, Message: "internal server error", HTTPStatus: http.StatusInternalServerError, GRPCCode: codes.Internal}
}

// FromError maps err onto an APIError. Unknown errors become INTERNAL_ERROR
// so internal details never reach the client.
func FromError(err error) *APIError {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, model.ErrInvalidData):
		return NewErrInvalidData()
	case errors.Is(err, model.ErrEmailExists):
		return NewErrEmailExists()
	case errors.Is(err, model.ErrEmailNotFound):
		return NewErrEmailNotFound()
	case errors.Is(err, model.ErrInvalidPassword):
		return NewErrInvalidPassword()
	case errors.Is(err, model.ErrUnauthorized):
		return NewErrUnauthorized()
	default:
		return NewErrInternal()
	}
}
