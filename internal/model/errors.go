package model

import "errors"

var (
	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores on a unique key violation.
	ErrAlreadyExists = errors.New("already exists")
)

// Auth flow errors. Each maps to a client visible code.
var (
	ErrInvalidData     = errors.New("invalid data")
	ErrEmailExists     = errors.New("email exists")
	ErrEmailNotFound   = errors.New("email not found")
	ErrInvalidPassword = errors.New("invalid password")
)
