package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found or is not
	// owned by the acting user.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the acting user lacks the privilege or
	// eligibility required for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput indicates a caller-supplied value failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
)
