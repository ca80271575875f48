package errors

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrVersionConflict     = errors.New("version conflict")
	ErrInvalidConfirmation = errors.New("invalid confirmation token")
	ErrMissingConfirmation = errors.New("confirmation token required")
)
