// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "groove/internal/domain/errors"
	"groove/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator used by the HTTP server. Struct validate
// tags on the usecase inputs drive the rules.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator, mapping rule failures onto the 400 taxonomy.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return nil
}
