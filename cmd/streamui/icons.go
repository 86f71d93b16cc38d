package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
)

func newIconsCmd() *cobra.Command {
	var font bool

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List the icon set",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "GLYPH", "CODEPOINT")

			for _, name := range components.AllIconNames() {
				fontGlyph, _ := components.IconGlyph(name, true)
				glyph, _ := components.IconGlyph(name, font)
				t.Row(string(name), glyph, fmt.Sprintf("U+%04X", []rune(fontGlyph)[0]))
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&font, "font", false, "Show icon font glyphs instead of unicode fallbacks")

	return cmd
}
