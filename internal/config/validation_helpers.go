package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themer/pkg/errors"
)

// convertValidationError normalizes validator errors into themer validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := settingsKey(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("settings", err.Error(), err)
}

// settingsKey maps a struct namespace such as Settings.Log.Level to the
// configuration key log.level.
func settingsKey(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	keys := make([]string, len(parts))
	for i, part := range parts {
		keys[i] = snakeCase(part)
	}
	return strings.Join(keys, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
