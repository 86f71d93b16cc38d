package components

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// IconName identifies a glyph of the 20px icon set.
type IconName string

const (
	IconCircle     IconName = "circle"
	IconBaseline   IconName = "baseline"
	IconWarning    IconName = "warning"
	IconOK         IconName = "ok"
	IconGear       IconName = "gear"
	IconUser       IconName = "user"
	IconWait       IconName = "wait"
	IconClear      IconName = "clear"
	IconGrid       IconName = "grid"
	IconMoney      IconName = "money"
	IconHelpCircle IconName = "help-circle"
	IconKebab      IconName = "kebab"
)

type iconGlyph struct {
	font     string // private-use codepoint in the icon font
	fallback string // single-cell unicode approximation
}

var iconGlyphs = map[IconName]iconGlyph{
	IconCircle:     {font: "\ue001", fallback: "○"},
	IconBaseline:   {font: "\ue003", fallback: "▁"},
	IconWarning:    {font: "\ue005", fallback: "⚠"},
	IconOK:         {font: "\ue006", fallback: "✔"},
	IconGear:       {font: "\ue018", fallback: "⚙"},
	IconUser:       {font: "\ue020", fallback: "☻"},
	IconWait:       {font: "\ue021", fallback: "⧗"},
	IconClear:      {font: "\ue030", fallback: "✕"},
	IconGrid:       {font: "\ue03e", fallback: "▦"},
	IconMoney:      {font: "\ue046", fallback: "₽"},
	IconHelpCircle: {font: "\ue055", fallback: "?"},
	IconKebab:      {font: "\ue0c9", fallback: "⋮"},
}

// AllIconNames returns every icon name in sorted order.
func AllIconNames() []IconName {
	names := make([]IconName, 0, len(iconGlyphs))
	for name := range iconGlyphs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// IsIconName reports whether name is part of the icon set.
func IsIconName(name string) bool {
	_, ok := iconGlyphs[IconName(name)]
	return ok
}

// IconGlyph returns the glyph for name. With font set the icon font
// codepoint is returned, otherwise the unicode fallback.
func IconGlyph(name IconName, font bool) (string, bool) {
	g, ok := iconGlyphs[name]
	if !ok {
		return "", false
	}
	if font {
		return g.font, true
	}
	return g.fallback, true
}

// Icon renders one glyph of the icon set.
type Icon struct {
	BaseComponent
	name  IconName
	color lipgloss.TerminalColor
}

// NewIcon creates an icon. Unknown names render as an empty string.
func NewIcon(name IconName) *Icon {
	return &Icon{BaseComponent: NewBaseComponent(), name: name}
}

// Name returns the icon name.
func (i *Icon) Name() IconName { return i.name }

// WithColor sets the glyph colour.
func (i *Icon) WithColor(color lipgloss.TerminalColor) *Icon {
	i.color = color
	return i
}

// View renders the icon with the default context.
func (i *Icon) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon, using the icon font when the context
// enables it.
func (i *Icon) ViewWithContext(ctx RenderContext) string {
	glyph, ok := IconGlyph(i.name, ctx.IconFont)
	if !ok {
		return ""
	}
	style := i.ComputeStyle(ctx.Theme)
	if i.color != nil {
		style = style.Foreground(i.color)
	}
	return style.Render(glyph)
}
