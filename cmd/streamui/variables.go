package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/streamui/internal/converter"
)

func newVariablesCmd(root *rootFlags) *cobra.Command {
	flagOpts := converter.Options{}
	var (
		format string
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "variables [variables=<file.less>] [output=<file>] [pathToLess=builtin|<executable>]",
		Short: "Convert Less variable declarations into a data module",
		Long: `Resolve every variable declared in a Less file and write the values as a
JavaScript module (default), JSON or YAML. Keys are camelized variable names.

Arguments are name=value tokens; the same values may be given as flags.
pathToLess selects the Less processor: "builtin" resolves variables in
process, anything else names an executable that renders a file to stdout.`,
		Example: `  streamui variables variables=theme.less output=theme.js pathToLess=lessc
  streamui variables --variables theme.less --output theme.yaml --processor builtin --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagOpts.Format = converter.Format(format)

			opts, err := variablesOptions(cmd.Flags(), args, flagOpts)
			if err != nil {
				return err
			}

			opts.Check = check

			result, err := converter.New(root.log).Convert(cmd.Context(), opts)
			var stale *converter.StaleOutputError
			if errors.As(err, &stale) {
				fmt.Fprint(cmd.OutOrStdout(), stale.Diff)
			}
			if err != nil {
				return err
			}
			if check {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", opts.OutputPath)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d variables to %s\n", len(result.Entries), result.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagOpts.VariablesPath, "variables", "", "Path to the Less variables file")
	cmd.Flags().StringVarP(&flagOpts.OutputPath, "output", "o", "", "Path of the generated module")
	cmd.Flags().StringVar(&flagOpts.Processor, "processor", "", `Less processor: "builtin" or an executable`)
	cmd.Flags().StringVar(&flagOpts.Processor, "pathToLess", "", "Alias of --processor")
	cmd.Flags().StringVarP(&format, "format", "f", "", fmt.Sprintf("Module format: %s (default %s)", formatList(), converter.FormatJS))
	cmd.Flags().BoolVar(&check, "check", false, "Fail with a diff when the output file is out of date instead of writing it")
	_ = cmd.Flags().MarkHidden("pathToLess")

	return cmd
}

// variablesOptions merges positional name=value tokens with flags. Flags
// given explicitly win over tokens, and the token count rule applies only
// when no flag was given.
func variablesOptions(flags *pflag.FlagSet, args []string, flagOpts converter.Options) (converter.Options, error) {
	if len(args) == 0 {
		return flagOpts, nil
	}

	parse := converter.ParseArgs
	for _, name := range []string{"variables", "output", "processor", "pathToLess", "format"} {
		if flags.Changed(name) {
			parse = converter.ParseTokens
			break
		}
	}

	opts, err := parse(args)
	if err != nil {
		return converter.Options{}, err
	}
	if flags.Changed("variables") {
		opts.VariablesPath = flagOpts.VariablesPath
	}
	if flags.Changed("output") {
		opts.OutputPath = flagOpts.OutputPath
	}
	if flags.Changed("processor") || flags.Changed("pathToLess") {
		opts.Processor = flagOpts.Processor
	}
	if flags.Changed("format") {
		opts.Format = flagOpts.Format
	}
	return opts, nil
}

func formatList() string {
	names := make([]string, 0, len(converter.Formats()))
	for _, f := range converter.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
