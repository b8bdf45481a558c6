package errors

import "errors"

var (
	ErrNotFound = errors.New("interview not found")

	ErrAlreadyCancelled = errors.New("interview is already cancelled")
)
