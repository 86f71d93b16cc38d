package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgumentErrorNamesArgument(t *testing.T) {
	t.Parallel()

	err := NewArgumentError("output", "argument 'output' is required", nil)

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "output", argErr.Name)
	require.Contains(t, err.Error(), "argument 'output' is required")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("streamui.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "streamui.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "streamui.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("lang", "unsupported language", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "lang", validationErr.Field)
	require.Equal(t, "validation error: lang: unsupported language", err.Error())
}

func TestProcessorErrorIncludesProcessorName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("executable file not found")
	err := NewProcessorError("lessc", "wrong less package", underlying)

	var procErr *ProcessorError
	require.ErrorAs(t, err, &procErr)
	require.Equal(t, "lessc", procErr.Processor)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "wrong less package")
}

func TestConversionErrorIncludesStage(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewConversionError("write output", underlying)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "write output", convErr.Stage)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "conversion error during write output: disk full", err.Error())
}
