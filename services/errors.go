package services

import "errors"

// Error classes controllers translate to HTTP statuses. Wrap with
// fmt.Errorf("%w: detail", ...) and match with errors.Is.
var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)
