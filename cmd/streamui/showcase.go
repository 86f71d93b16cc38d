package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/streamui/internal/config"
	"github.com/alexisbeaulieu97/streamui/internal/logger"
	"github.com/alexisbeaulieu97/streamui/internal/tui/showcase"
)

type showcaseOptions struct {
	ConfigPath string
}

var errNoTerminal = errors.New("showcase requires an interactive terminal")

var (
	showcaseRunner = runShowcase
	isTerminal     = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

func newShowcaseCmd(root *rootFlags) *cobra.Command {
	opts := showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Launch an interactive gallery of every widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNoTerminal
			}

			cfg := config.Default()
			if opts.ConfigPath != "" {
				parsed, err := config.ParseConfig(opts.ConfigPath)
				if err != nil {
					return err
				}
				cfg = parsed
			}

			return showcaseRunner(cmd.Context(), cfg, root.log)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a UI configuration file")

	return cmd
}

func runShowcase(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	log = log.Named("showcase")

	m, err := showcase.NewModel(cfg)
	if err != nil {
		return err
	}

	log.Debug("launching showcase")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error(err, "showcase execution failed")
		return fmt.Errorf("failed to run showcase: %w", err)
	}
	log.Debug("showcase closed")

	return nil
}
