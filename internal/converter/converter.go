// Package converter turns the variable declarations of a Less stylesheet into
// a key/value data module.
//
// A run copies the variables file into a temporary sibling, appends one
// "@value <camelKey>: @<original-name>;" line per declaration, renders the
// result through a Less processor and reads the resolved @value rules back.
// Every stage aborts the run on failure; there is no partial output.
package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/streamui/internal/logger"
	"github.com/alexisbeaulieu97/streamui/pkg/diff"
	apperrors "github.com/alexisbeaulieu97/streamui/pkg/errors"
)

const tempFilePattern = "variables-*.temp.less"

// ErrNoVariables is returned when the variables file declares nothing.
var ErrNoVariables = errors.New("no variable declarations found")

// StaleOutputError is returned by check runs when the output file does not
// match the generated module.
type StaleOutputError struct {
	Path string
	Diff string
}

func (e *StaleOutputError) Error() string {
	return fmt.Sprintf("%s is out of date", e.Path)
}

// ResolverFunc maps the processor argument to a Processor.
type ResolverFunc func(target string) (Processor, error)

// Result summarises a completed conversion.
type Result struct {
	Variables  []Variable
	Entries    []Entry
	OutputPath string
}

// Converter runs variable conversions.
type Converter struct {
	resolve ResolverFunc
	log     *logger.Logger
}

// Option customises a Converter.
type Option func(*Converter)

// WithResolver replaces the processor lookup.
func WithResolver(resolve ResolverFunc) Option {
	return func(c *Converter) {
		if resolve != nil {
			c.resolve = resolve
		}
	}
}

// New constructs a Converter. A nil logger discards output.
func New(log *logger.Logger, opts ...Option) *Converter {
	if log == nil {
		log = logger.Nop()
	}
	c := &Converter{resolve: ResolveProcessor, log: log.Named("converter")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert validates opts and performs a full conversion.
func (c *Converter) Convert(ctx context.Context, opts Options) (result Result, err error) {
	if err := opts.Validate(); err != nil {
		return result, err
	}

	processor, err := c.resolve(opts.Processor)
	if err != nil {
		return result, err
	}
	log := c.log.WithFields(map[string]any{"variables": opts.VariablesPath, "processor": processor.Name()})

	src, err := os.ReadFile(opts.VariablesPath)
	if err != nil {
		return result, apperrors.NewConversionError("read variables", err)
	}

	vars := ExtractVariables(string(src))
	if len(vars) == 0 {
		return result, apperrors.NewConversionError("extract variables", ErrNoVariables)
	}
	result.Variables = vars
	log.WithFields(map[string]any{"count": len(vars)}).Debug("variables extracted")

	tempPath, intermediate, err := writeTempFile(opts.VariablesPath, string(src), vars)
	if err != nil {
		return result, apperrors.NewConversionError("write temp file", err)
	}
	defer func() {
		if rmErr := os.Remove(tempPath); rmErr != nil && !os.IsNotExist(rmErr) {
			err = multierr.Append(err, fmt.Errorf("remove temp file %s: %w", tempPath, rmErr))
		}
	}()
	log.WithFields(map[string]any{"temp": tempPath}).Debug("intermediate file written")

	if err := ctx.Err(); err != nil {
		return result, apperrors.NewConversionError("render", err)
	}

	rendered, err := processor.Render(ctx, tempPath, intermediate)
	if err != nil {
		return result, apperrors.NewConversionError("render", err)
	}

	entries, err := ParseRendered(rendered)
	if err != nil {
		return result, apperrors.NewConversionError("parse rendered output", err)
	}
	result.Entries = entries
	log.WithFields(map[string]any{"entries": len(entries)}).Debug("rendered output parsed")

	var buf bytes.Buffer
	if err := WriteModule(&buf, entries, opts.format()); err != nil {
		return result, apperrors.NewConversionError("render module", err)
	}
	if opts.Check {
		return result, checkOutput(opts.OutputPath, buf.Bytes())
	}
	if err := os.WriteFile(opts.OutputPath, buf.Bytes(), 0o644); err != nil {
		return result, apperrors.NewConversionError("write output", err)
	}
	result.OutputPath = opts.OutputPath

	log.WithFields(map[string]any{"output": opts.OutputPath, "format": string(opts.format())}).Info("data module written")
	return result, nil
}

// checkOutput compares generated with the file at path. A missing file is
// compared as empty.
func checkOutput(path string, generated []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return apperrors.NewConversionError("check output", err)
	}
	if d := diff.GenerateUnifiedDiff(existing, generated, path, "generated"); d != "" {
		return &StaleOutputError{Path: path, Diff: d}
	}
	return nil
}

func writeTempFile(variablesPath, src string, vars []Variable) (string, string, error) {
	f, err := os.CreateTemp(filepath.Dir(variablesPath), tempFilePattern)
	if err != nil {
		return "", "", err
	}

	content := BuildIntermediate(src, vars)
	_, writeErr := f.WriteString(content)
	closeErr := f.Close()
	if err := multierr.Combine(writeErr, closeErr); err != nil {
		_ = os.Remove(f.Name())
		return "", "", err
	}
	return f.Name(), content, nil
}
