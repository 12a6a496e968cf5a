package serverutils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and returns a single
// human-readable message combining every failing field, suitable for
// wrapping in an apperrors.ValidationError.
func ValidateRequest(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, fe.Field()+" is invalid: "+fe.Tag())
		}
		return &fieldValidationError{message: strings.Join(messages, "; ")}
	}
	return nil
}

type fieldValidationError struct {
	message string
}

func (e *fieldValidationError) Error() string { return e.message }
