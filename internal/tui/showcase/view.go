package showcase

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/streamui/internal/ui"
	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
)

const defaultWidth = 80

// View renders the showcase. It also records the screen bounds of every
// interactive widget so the next mouse message can be hit tested.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	ctx := m.ctx.WithParentWidth(width)

	var blocks []string
	y := 0
	add := func(block string) {
		blocks = append(blocks, block)
		y += lipgloss.Height(block)
	}

	m.enabled.SetCount(m.enabledCount())
	bar := m.topBar.ViewWithContext(ctx)
	m.topBar.Place(ctx, 0, y)
	add(bar)
	add("")

	add(components.NewHeader("Toggles").WithSubtitle("tab to focus, space to switch").ViewWithContext(ctx))
	for _, t := range m.toggles {
		view := t.ViewWithContext(ctx)
		t.SetBounds(components.Bounds{X: 0, Y: y, Width: lipgloss.Width(view), Height: lipgloss.Height(view)})
		add(view)
	}
	add("")

	add(components.NewHeader("Hint").ViewWithContext(ctx))
	anchor := components.NewText(hintAnchor).View()
	m.hint.SetBounds(components.Bounds{X: 0, Y: y, Width: lipgloss.Width(anchor), Height: 1})
	add(m.hint.ViewWithContext(ctx))
	add("")

	spinners := make([]ui.Renderable, 0, len(m.spinners))
	for _, s := range m.spinners {
		spinners = append(spinners, s)
	}
	spinnerBody := components.VStack(
		components.HStack(spinners...).WithGap(3),
		components.CaptionText("mini, normal, big"),
	).WithAlign(components.AlignCenter)
	add(components.NewPanel(spinnerBody).WithTitle("Spinners").ViewWithContext(ctx))
	add(components.NewPanel(iconRow()).WithTitle("Icons").ViewWithContext(ctx))
	add("")

	if m.status != "" {
		add(statusStyle(ctx.Theme).Render(m.status))
	}
	add(m.help.View(m.keys))

	return strings.Join(blocks, "\n")
}

func iconRow() *components.Stack {
	names := components.AllIconNames()
	icons := make([]ui.Renderable, 0, len(names))
	for _, name := range names {
		icons = append(icons, components.NewIcon(name))
	}
	return components.HStack(icons...).WithGap(2)
}
