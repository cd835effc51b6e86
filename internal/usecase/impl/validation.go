package impl

import (
	"strings"

	domainerrors "uniform/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct tag validation and reports every failing field.
func validateInput(input any) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields[fieldPath(fieldErr.Namespace())] = fieldErr.Tag()
	}

	return domainerrors.NewValidationError(fields)
}

// fieldPath drops the struct name from a validator namespace such as "CreateOrderInput.Items[0].Quantity".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}
