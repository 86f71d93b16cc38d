package components

import "strings"

// Divider renders a separator line. Vertical dividers separate top bar
// items; horizontal dividers separate showcase sections.
type Divider struct {
	BaseComponent
	char      string
	length    int
	direction Direction
}

// HorizontalDivider creates a divider as wide as its context.
func HorizontalDivider() *Divider {
	return &Divider{BaseComponent: NewBaseComponent(), char: "─", direction: DirectionHorizontal}
}

// VerticalDivider creates a one-line vertical divider.
func VerticalDivider() *Divider {
	return &Divider{BaseComponent: NewBaseComponent(), char: "│", length: 1, direction: DirectionVertical}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. Without an explicit length a
// horizontal divider takes the constraint or parent width, then 40 cells.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.length
	if length <= 0 && ctx.Constraints.MaxWidth > 0 {
		length = ctx.Constraints.MaxWidth
	}
	if length <= 0 && ctx.ParentWidth > 0 {
		length = ctx.ParentWidth
	}
	if length <= 0 {
		length = 40
	}

	content := strings.Repeat(d.char, length)
	if d.direction == DirectionVertical {
		content = strings.TrimSuffix(strings.Repeat(d.char+"\n", length), "\n")
	}

	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.TopBar.Divider)
	return style.Render(content)
}

// WithLength sets an explicit length in cells or lines.
func (d *Divider) WithLength(length int) *Divider {
	d.length = length
	return d
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}
