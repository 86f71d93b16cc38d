package errors

import (
	"fmt"
)

// ArgumentError reports a missing or malformed command-line argument.
type ArgumentError struct {
	Name    string
	Message string
	Err     error
}

// NewArgumentError constructs an ArgumentError.
func NewArgumentError(name, message string, err error) error {
	return &ArgumentError{Name: name, Message: message, Err: err}
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("argument error [%s]: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("argument error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ArgumentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProcessorError indicates the stylesheet processor could not be loaded or failed to render.
type ProcessorError struct {
	Processor string
	Message   string
	Err       error
}

// NewProcessorError constructs a ProcessorError for the named processor.
func NewProcessorError(processor, message string, err error) error {
	return &ProcessorError{Processor: processor, Message: message, Err: err}
}

func (e *ProcessorError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Processor != "" {
		return fmt.Sprintf("processor error [%s]: %s", e.Processor, msg)
	}
	return fmt.Sprintf("processor error: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *ProcessorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConversionError represents a failure in one stage of the variable conversion.
type ConversionError struct {
	Stage string
	Err   error
}

// NewConversionError constructs a ConversionError.
func NewConversionError(stage string, err error) error {
	return &ConversionError{Stage: stage, Err: err}
}

func (e *ConversionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("conversion error during %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("conversion error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
