package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/streamui/pkg/errors"
)

// ToRenderContext builds the render context described by the configuration:
// the named theme overlaid with the variables, the language and its
// overrides, and the icon font switch.
func (c *Config) ToRenderContext() (components.RenderContext, error) {
	if c == nil {
		return components.DefaultContext(), nil
	}

	theme, ok := components.ThemeByName(c.Theme)
	if !ok {
		return components.RenderContext{}, apperrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", c.Theme), nil)
	}
	if len(c.Variables) > 0 {
		theme = components.ThemeFromVariables(theme, c.Variables)
	}

	lang, err := components.ParseLangCode(c.Lang)
	if err != nil {
		return components.RenderContext{}, apperrors.NewValidationError("lang", err.Error(), err)
	}

	return components.DefaultContext().
		WithTheme(theme).
		WithLocale(components.LocaleContext{LangCode: lang, Overrides: c.Locale}).
		WithIconFont(c.IconFont), nil
}
