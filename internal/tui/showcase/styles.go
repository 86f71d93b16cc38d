package showcase

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
)

// statusStyle renders the line reporting the last widget event.
func statusStyle(theme components.Theme) lipgloss.Style {
	return components.TypographyStyle(theme, components.TypographyVariantMuted)
}

var customTrackColour = lipgloss.Color("#8e44ad")
