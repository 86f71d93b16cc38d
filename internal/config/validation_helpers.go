package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/streamui/pkg/errors"
)

// convertValidationError normalizes validator errors into application validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		return apperrors.NewValidationError(field, validationMessage(ve), err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "theme_name":
		return fmt.Sprintf("unknown theme %q (available: %s)", fe.Value(), strings.Join(components.ThemeNames(), ", "))
	case "langcode":
		return fmt.Sprintf("unsupported language %q", fe.Value())
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	case "hostname_port":
		return fmt.Sprintf("%q must be host:port", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// yamlFieldName drops the root struct name from the namespace, leaving the
// YAML path such as top_bar.cabinet_url or variables[brand].
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
