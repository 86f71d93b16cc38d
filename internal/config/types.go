package config

import (
	"time"

	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
)

const (
	DefaultServeAddress = "localhost:23234"
	DefaultHostKeyPath  = ".ssh/streamui_ed25519"
)

// Config is the UI configuration read by the showcase: which theme and
// language to render with, locale overrides and theme variables.
type Config struct {
	Theme     string        `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Lang      string        `yaml:"lang,omitempty" validate:"omitempty,langcode"`
	HintDelay time.Duration `yaml:"hint_delay,omitempty" validate:"gte=0"`
	IconFont  bool          `yaml:"icon_font,omitempty"`
	TopBar    TopBar        `yaml:"top_bar,omitempty"`
	Serve     Serve         `yaml:"serve,omitempty"`

	// Locale overrides strings per component, e.g. locale.TopBar.logout.
	Locale map[string]map[string]string `yaml:"locale,omitempty" validate:"omitempty,dive,keys,oneof=Spinner TopBar,endkeys,dive,keys,required,endkeys,required"`

	// VariablesFile points at the YAML output of the variables command.
	// Relative paths are resolved against the config file. Inline
	// Variables win over the file.
	VariablesFile string            `yaml:"variables_file,omitempty" validate:"omitempty,endswith=.yaml|endswith=.yml"`
	Variables     map[string]string `yaml:"variables,omitempty" validate:"omitempty,dive,keys,required,endkeys,required"`
}

// TopBar configures the header of the showcase.
type TopBar struct {
	UserName   string `yaml:"user_name,omitempty" validate:"omitempty,max=64"`
	CabinetURL string `yaml:"cabinet_url,omitempty" validate:"omitempty,url"`
	NoShadow   bool   `yaml:"no_shadow,omitempty"`
}

// Serve configures the SSH server that hosts the showcase.
type Serve struct {
	Address     string        `yaml:"address,omitempty" validate:"omitempty,hostname_port"`
	HostKeyPath string        `yaml:"host_key_path,omitempty"`
	IdleTimeout time.Duration `yaml:"idle_timeout,omitempty" validate:"gte=0"`
	MaxTimeout  time.Duration `yaml:"max_timeout,omitempty" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Theme:     components.ThemeNameDefault,
		Lang:      string(components.DefaultLangCode),
		HintDelay: components.DefaultHintDelay,
		Serve: Serve{
			Address:     DefaultServeAddress,
			HostKeyPath: DefaultHostKeyPath,
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// HintDelayOrDefault returns the configured delay, falling back to the
// widget default when unset.
func (c *Config) HintDelayOrDefault() time.Duration {
	if c == nil || c.HintDelay <= 0 {
		return components.DefaultHintDelay
	}
	return c.HintDelay
}
