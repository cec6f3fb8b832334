package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/rec-registration/internal/domain"
)

// validate checks the `validate` struct tags on domain types.
// Field names in errors are taken from the json tag so messages match the
// request body the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkFields validates every value and reports one domain.ErrValidation.
// Missing required fields across all values are reported together and take
// precedence over format failures.
func checkFields(values ...any) error {
	var (
		missing []string
		invalid []string
	)
	for _, v := range values {
		err := validate.Struct(v)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				missing = append(missing, fe.Field())
			} else {
				invalid = append(invalid, fe.Field())
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	for _, field := range invalid {
		if field == "card_number" {
			return fmt.Errorf("%w: card number must be exactly 16 digits", domain.ErrValidation)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: invalid fields: %s", domain.ErrValidation, strings.Join(invalid, ", "))
	}
	return nil
}
