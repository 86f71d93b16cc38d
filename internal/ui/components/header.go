package components

import "github.com/charmbracelet/lipgloss"

// Header renders a section heading with an optional caption underneath.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	level    int
}

// NewHeader creates a level 1 header.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
		level:         1,
	}
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header. Level 1 uses title typography, deeper
// levels use emphasis.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	variant := TypographyVariantTitle
	if h.level > 1 {
		variant = TypographyVariantEmphasis
	}
	title := h.ComputeStyle(ctx.Theme).Inherit(TypographyStyle(ctx.Theme, variant)).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, CaptionText(h.subtitle).ViewWithContext(ctx))
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// WithSubtitle sets the caption drawn below the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithLevel sets the heading level, clamped to 1..6.
func (h *Header) WithLevel(level int) *Header {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	h.level = level
	return h
}

// Title returns the header title.
func (h *Header) Title() string { return h.title }

// Subtitle returns the header caption.
func (h *Header) Subtitle() string { return h.subtitle }

// Level returns the heading level.
func (h *Header) Level() int { return h.level }
