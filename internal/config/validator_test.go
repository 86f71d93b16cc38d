package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/streamui/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		cfg       *Config
		wantField string
		wantMsg   string
	}{
		{name: "defaults are valid", cfg: Default()},
		{name: "nil config", cfg: nil, wantField: "config", wantMsg: "configuration is nil"},
		{name: "light theme", cfg: &Config{Theme: "Light"}},
		{name: "unknown theme", cfg: &Config{Theme: "neon"}, wantField: "theme", wantMsg: "available: dark, default, light"},
		{name: "underscore language tag", cfg: &Config{Lang: "ru_RU"}},
		{name: "unsupported language", cfg: &Config{Lang: "de"}, wantField: "lang", wantMsg: `unsupported language "de"`},
		{name: "negative delay", cfg: &Config{HintDelay: -time.Second}, wantField: "hint_delay"},
		{
			name:      "bad cabinet url",
			cfg:       &Config{TopBar: TopBar{CabinetURL: "not a url"}},
			wantField: "top_bar.cabinet_url",
			wantMsg:   "is not a valid URL",
		},
		{
			name:      "serve address without port",
			cfg:       &Config{Serve: Serve{Address: "localhost"}},
			wantField: "serve.address",
			wantMsg:   "must be host:port",
		},
		{name: "serve address", cfg: &Config{Serve: Serve{Address: "0.0.0.0:2222"}}},
		{
			name:      "empty variable value",
			cfg:       &Config{Variables: map[string]string{"brand": ""}},
			wantField: "variables[brand]",
		},
		{
			name:      "unknown locale component",
			cfg:       &Config{Locale: map[string]map[string]string{"Sidebar": {"title": "x"}}},
			wantMsg:   "must be one of [Spinner TopBar]",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tc.cfg)
			if tc.wantField == "" && tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			if tc.wantField != "" {
				require.Equal(t, tc.wantField, validationErr.Field)
			}
			if tc.wantMsg != "" {
				require.Contains(t, validationErr.Message, tc.wantMsg)
			}
		})
	}
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
	require.NoError(t, GetValidator().Var("en", "langcode"))
	require.Error(t, GetValidator().Var("klingon", "langcode"))
	require.NoError(t, GetValidator().Var("dark", "theme_name"))
}
