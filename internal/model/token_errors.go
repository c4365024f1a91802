package model

import "errors"

// Verification errors produced by a TokenManager.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

var (
	// ErrTokenMismatch means the stored refresh token is not the presented one.
	ErrTokenMismatch = errors.New("refresh token mismatch")
	// ErrUnauthorized is the only rejection reason callers of the token service see.
	ErrUnauthorized = errors.New("unauthorized")
)
