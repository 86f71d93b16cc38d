package components

import "strconv"

// BadgeVariant selects the palette slot a badge is drawn with.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantDanger
)

// Badge is a short label such as a counter next to a top bar entry.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a default badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// CountBadge creates a primary badge showing n.
func CountBadge(n int) *Badge {
	return NewBadge(strconv.Itoa(n)).WithVariant(BadgeVariantPrimary)
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge. An empty badge renders nothing.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	if b.text == "" {
		return ""
	}
	return variantStyle(b.ComputeStyle(ctx.Theme), ctx.Theme, b.variant).Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// SetText replaces the badge label.
func (b *Badge) SetText(text string) {
	b.text = text
}

// SetCount replaces the label with n.
func (b *Badge) SetCount(n int) {
	b.text = strconv.Itoa(n)
}

// Text returns the badge label.
func (b *Badge) Text() string { return b.text }

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant { return b.variant }
