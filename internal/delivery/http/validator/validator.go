// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "newswire/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance for request payloads.
type Validator struct {
	validate *playground.Validate
}

// New creates the validator used by the echo server.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags and maps failures onto the application error
// taxonomy so the error handler renders them as 400s.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
