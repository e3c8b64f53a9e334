package utils

import "errors"

var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrValidation         = errors.New("missing required field")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrDuplicateRequest   = errors.New("duplicate booking request")
	ErrDatabaseError      = errors.New("database error")
)
