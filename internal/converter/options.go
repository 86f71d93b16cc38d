package converter

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/streamui/pkg/errors"
)

// Argument names accepted on the command line as name=value tokens.
const (
	VariablesArgument = "variables"
	OutputArgument    = "output"
	ProcessorArgument = "pathToLess"
	FormatArgument    = "format"

	// VariablesExtension is the only accepted extension for the variables file.
	VariablesExtension = ".less"

	requiredArgumentCount = 3
)

// Options configures a single conversion run.
type Options struct {
	VariablesPath string `arg:"variables" validate:"required,less_file"`
	OutputPath    string `arg:"output" validate:"required"`
	Processor     string `arg:"pathToLess" validate:"required"`
	Format        Format `arg:"format" validate:"omitempty,oneof=js json yaml"`

	// Check compares the generated module with the existing output file
	// instead of writing it.
	Check bool `arg:"-"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func optionsValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			return field.Tag.Get("arg")
		})
		_ = v.RegisterValidation("less_file", func(fl validator.FieldLevel) bool {
			return strings.HasSuffix(fl.Field().String(), VariablesExtension)
		})
		validateInst = v
	})
	return validateInst
}

// ParseArgs reads name=value tokens. It requires at least three tokens and
// one token for each of the required argument names.
func ParseArgs(args []string) (Options, error) {
	var opts Options

	if len(args) < requiredArgumentCount {
		return opts, apperrors.NewArgumentError("", "3 arguments should be passed: `input`, `output` and `pathToLess`. Check CLI arguments.", nil)
	}

	for _, name := range []string{VariablesArgument, OutputArgument, ProcessorArgument} {
		if !hasArgument(args, name) {
			return opts, missingArgument(name)
		}
	}

	return ParseTokens(args)
}

// ParseTokens reads name=value tokens without requiring any of them, for
// callers that supply the missing values some other way.
func ParseTokens(args []string) (Options, error) {
	var opts Options
	for _, arg := range args {
		name, value, _ := strings.Cut(arg, "=")
		switch {
		case strings.HasPrefix(name, VariablesArgument):
			opts.VariablesPath = value
		case strings.HasPrefix(name, OutputArgument):
			opts.OutputPath = value
		case strings.HasPrefix(name, ProcessorArgument):
			opts.Processor = value
		case strings.HasPrefix(name, FormatArgument):
			opts.Format = Format(value)
		default:
			return opts, apperrors.NewArgumentError(name, fmt.Sprintf("unknown argument %q", arg), nil)
		}
	}

	return opts, nil
}

func hasArgument(args []string, name string) bool {
	for _, arg := range args {
		if strings.HasPrefix(arg, name) {
			return true
		}
	}
	return false
}

func missingArgument(name string) error {
	return apperrors.NewArgumentError(name, fmt.Sprintf("argument '%s' is required", name), nil)
}

// Validate checks required arguments and the variables file. The extension
// is checked before the filesystem is touched.
func (o Options) Validate() error {
	if err := optionsValidator().Struct(o); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return apperrors.NewValidationError("", "invalid options", err)
		}
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return missingArgument(fe.Field())
		case "less_file":
			return invalidVariablesFile(o.VariablesPath, nil)
		default:
			return apperrors.NewArgumentError(fe.Field(), fmt.Sprintf("unsupported value %q", fe.Value()), err)
		}
	}

	info, err := os.Stat(o.VariablesPath)
	if err != nil {
		return invalidVariablesFile(o.VariablesPath, err)
	}
	if info.IsDir() {
		return invalidVariablesFile(o.VariablesPath, nil)
	}
	return nil
}

func invalidVariablesFile(path string, err error) error {
	return apperrors.NewArgumentError(VariablesArgument, fmt.Sprintf("invalid file passed (%s). Check `%s` argument", path, VariablesArgument), err)
}

func (o Options) format() Format {
	if o.Format == "" {
		return FormatJS
	}
	return o.Format
}
