package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/streamui/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, merges the referenced
// variables file, validates the result and returns it.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.VariablesFile != "" {
		if err := mergeVariablesFile(cfg, filepath.Dir(path)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func mergeVariablesFile(cfg *Config, baseDir string) error {
	path := cfg.VariablesFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewParseError(path, 0, err)
	}

	var fromFile map[string]string
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return apperrors.NewParseError(path, extractLine(err), err)
	}

	merged := make(map[string]string, len(fromFile)+len(cfg.Variables))
	for k, v := range fromFile {
		merged[k] = v
	}
	for k, v := range cfg.Variables {
		merged[k] = v
	}
	cfg.Variables = merged
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
