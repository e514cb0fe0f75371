package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/lixenwraith/tuikit/color"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// argb accepts #RGB, #RRGGBB and #AARRGGBB
		_ = v.RegisterValidation("argb", func(fl validator.FieldLevel) bool {
			_, err := color.ParseHex(fl.Field().String())
			return err == nil
		})

		// fsmstate rejects names the state machine reserves
		_ = v.RegisterValidation("fsmstate", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s != "" && s != "*" && strings.TrimSpace(s) == s
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks a struct against its validate tags
// Failures come back as *ValidationError naming the first offending field
func Validate(v any) error {
	if v == nil {
		return NewValidationError("", "options are nil", nil)
	}
	if err := validatorInstance().Struct(v); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, fe.Tag(), fe.Param())
		}
		return NewValidationError(field, msg, err)
	}
	return NewValidationError("", err.Error(), err)
}

// fieldName drops the root struct and lowercases the first letter of each segment
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
