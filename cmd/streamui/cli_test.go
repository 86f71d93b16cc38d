package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/streamui/internal/config"
	"github.com/alexisbeaulieu97/streamui/internal/logger"
	apperrors "github.com/alexisbeaulieu97/streamui/pkg/errors"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeLess(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "variables.less")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestVariablesCommandWithArguments(t *testing.T) {
	input := writeLess(t, "@brand: #1e79be;\n@toggle-bg-checked: @brand;\n")
	output := filepath.Join(t.TempDir(), "theme.js")

	out, err := executeCommand(newRootCmd(), "variables", "variables="+input, "output="+output, "pathToLess=builtin")
	require.NoError(t, err)
	require.Contains(t, out, "wrote 2 variables to "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "export default {\n brand: \"#1e79be\",\n toggleBgChecked: \"#1e79be\" \n}; \n", string(data))
}

func TestVariablesCommandWithFlags(t *testing.T) {
	input := writeLess(t, "@brand: #1e79be;\n")
	output := filepath.Join(t.TempDir(), "theme.yaml")

	_, err := executeCommand(newRootCmd(), "variables", "--variables", input, "--output", output, "--pathToLess", "builtin", "--format", "yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "brand: \"#1e79be\"\n", string(data))
}

func TestVariablesCommandFlagsOverrideArguments(t *testing.T) {
	input := writeLess(t, "@brand: #1e79be;\n")
	dir := t.TempDir()
	output := filepath.Join(dir, "theme.json")

	_, err := executeCommand(newRootCmd(), "variables",
		"variables="+input, "output="+filepath.Join(dir, "ignored.js"), "pathToLess=missing-less-binary",
		"--output", output, "--processor", "builtin", "-f", "json")
	require.NoError(t, err)
	require.FileExists(t, output)
	require.NoFileExists(t, filepath.Join(dir, "ignored.js"))
}

func TestVariablesCommandMixesTokensAndFlags(t *testing.T) {
	input := writeLess(t, "@brand: #1e79be;\n")
	output := filepath.Join(t.TempDir(), "theme.js")

	out, err := executeCommand(newRootCmd(), "variables", "variables="+input, "--output", output, "--processor", "builtin")
	require.NoError(t, err)
	require.Contains(t, out, "wrote 1 variables to "+output)

	_, err = executeCommand(newRootCmd(), "variables", "variables="+input, "--processor", "builtin")
	var argErr *apperrors.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "output", argErr.Name)
}

func TestVariablesCommandArgumentErrors(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "variables", "variables=a.less", "output=b.js")
	require.ErrorContains(t, err, "3 arguments should be passed")

	_, err = executeCommand(newRootCmd(), "variables", "variables=a.less", "output=b.js", "format=js")
	var argErr *apperrors.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "argument 'pathToLess' is required", argErr.Message)

	_, err = executeCommand(newRootCmd(), "variables", "--output", "b.js", "--processor", "builtin")
	require.ErrorContains(t, err, "argument 'variables' is required")
}

func TestVariablesCommandUnknownProcessor(t *testing.T) {
	input := writeLess(t, "@brand: #1e79be;\n")
	output := filepath.Join(t.TempDir(), "theme.js")

	_, err := executeCommand(newRootCmd(), "variables", "variables="+input, "output="+output, "pathToLess=definitely-not-a-less-binary")
	var procErr *apperrors.ProcessorError
	require.ErrorAs(t, err, &procErr)
	require.NoFileExists(t, output)
}

func TestIconsCommandListsEveryIcon(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "icons")
	require.NoError(t, err)
	for _, want := range []string{"NAME", "gear", "⚙", "U+E018", "help-circle", "kebab"} {
		require.Contains(t, out, want)
	}

	out, err = executeCommand(newRootCmd(), "icons", "--font")
	require.NoError(t, err)
	require.Contains(t, out, "\ue018")
	require.NotContains(t, out, "⚙")
}

func TestShowcaseCommandRequiresTerminal(t *testing.T) {
	originalTerminal := isTerminal
	originalRunner := showcaseRunner
	t.Cleanup(func() {
		isTerminal = originalTerminal
		showcaseRunner = originalRunner
	})

	isTerminal = func() bool { return false }
	_, err := executeCommand(newRootCmd(), "showcase")
	require.ErrorIs(t, err, errNoTerminal)

	var got *config.Config
	isTerminal = func() bool { return true }
	showcaseRunner = func(_ context.Context, cfg *config.Config, _ *logger.Logger) error {
		got = cfg
		return nil
	}

	path := filepath.Join(t.TempDir(), "ui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\nlang: en\n"), 0o644))
	_, err = executeCommand(newRootCmd(), "showcase", "--config", path)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "dark", got.Theme)

	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o644))
	_, err = executeCommand(newRootCmd(), "showcase", "--config", path)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestRootRejectsUnknownLogLevel(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "--log-level", "loud", "version")
	require.Error(t, err)
}

func TestVariablesCommandCheck(t *testing.T) {
	input := writeLess(t, "@brand: #1e79be;\n")
	output := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(output, []byte("brand: \"#000000\"\n"), 0o644))

	args := []string{"variables", "variables=" + input, "output=" + output, "pathToLess=builtin", "--format", "yaml", "--check"}
	out, err := executeCommand(newRootCmd(), args...)
	require.ErrorContains(t, err, "is out of date")
	require.Contains(t, out, "+brand: \"#1e79be\"")

	require.NoError(t, os.WriteFile(output, []byte("brand: \"#1e79be\"\n"), 0o644))
	out, err = executeCommand(newRootCmd(), args...)
	require.NoError(t, err)
	require.Contains(t, out, "is up to date")
}

func TestServeCommandMergesFlagsOverConfig(t *testing.T) {
	originalRunner := serveRunner
	t.Cleanup(func() { serveRunner = originalRunner })

	var got *config.Config
	serveRunner = func(_ context.Context, cfg *config.Config, _ *logger.Logger) error {
		got = cfg
		return nil
	}

	path := filepath.Join(t.TempDir(), "ui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serve:\n  address: 0.0.0.0:2222\n  idle_timeout: 5m\n"), 0o644))

	_, err := executeCommand(newRootCmd(), "serve", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:2222", got.Serve.Address)
	require.Equal(t, config.DefaultHostKeyPath, got.Serve.HostKeyPath)

	_, err = executeCommand(newRootCmd(), "serve", "--config", path, "--address", "127.0.0.1:2022", "--host-key", "keys/host")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:2022", got.Serve.Address)
	require.Equal(t, "keys/host", got.Serve.HostKeyPath)

	_, err = executeCommand(newRootCmd(), "serve", "--address", "nope")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "serve.address", validationErr.Field)
}

func TestVariablesHelpListsFormats(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "variables", "--help")
	require.NoError(t, err)
	require.Contains(t, out, "Module format: js, json, yaml (default js)")
}
