package service

import (
	"errors"
	"fmt"

	"receiptapi/internal/validation"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("receipt not found")
	ErrValidation = errors.New("validation failed")
	ErrGeneration = errors.New("receipt generation failed")
)

// ValidationError lists every field of a rejected receipt input.
// errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s)", ErrValidation, len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
