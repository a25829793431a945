package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInsufficientData      = errors.New("insufficient data")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
