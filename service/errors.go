package service

import "errors"

var (
	// ErrInvalidInput marks input that fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidNumber marks form text that cannot be read as a number.
	ErrInvalidNumber = errors.New("invalid number")
)
