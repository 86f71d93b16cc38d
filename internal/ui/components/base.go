package components

import (
	"sync/atomic"

	"github.com/alexisbeaulieu97/streamui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent carries the raw style and style strategy shared by widgets.
// Embed it to get WithAppliers-style customisation.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies theme data to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the style for this component under theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// AddAppliers appends style appliers to the existing strategy. A custom
// strategy is kept and runs before the new appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// variantStyle layers the theme's registered strategy for variant over base.
func variantStyle(base lipgloss.Style, theme Theme, variant interface{}) lipgloss.Style {
	if strategy := theme.Variants.Get(variant); strategy != nil {
		return strategy.Apply(base, theme)
	}
	return base
}

// Constraints defines sizing constraints for layout calculations.
// A negative maximum means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// Constrain applies the constraints to a given size.
func (c Constraints) Constrain(width, height int) (int, int) {
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	if c.MaxWidth >= 0 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	if c.MinHeight > 0 && height < c.MinHeight {
		height = c.MinHeight
	}
	if c.MaxHeight >= 0 && height > c.MaxHeight {
		height = c.MaxHeight
	}
	return width, height
}

// RenderContext is the ambient rendering context handed down the widget
// tree. Components never read globals; a missing provider is replaced with
// DefaultContext().
type RenderContext struct {
	Theme       Theme
	Locale      LocaleContext
	Focus       *FocusTracker
	Constraints Constraints
	ParentWidth int
	// IconFont selects icon font codepoints over unicode fallbacks.
	IconFont bool
}

// DefaultContext returns the default theme, the default language and the
// process-wide focus tracker, with no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Locale:      LocaleContext{LangCode: DefaultLangCode},
		Focus:       DefaultFocusTracker(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithLocale returns a new context with the specified locale.
func (r RenderContext) WithLocale(locale LocaleContext) RenderContext {
	r.Locale = locale
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithIconFont returns a new context that draws icons from the icon font.
func (r RenderContext) WithIconFont(enabled bool) RenderContext {
	r.IconFont = enabled
	return r
}

// WithParentWidth returns a new context sized for a parent of width cells.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// ContextualRenderable is a component that can receive render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

func renderChild(child ui.Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// Alignment specifies how content should be aligned.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Bounds is the screen rectangle a widget occupies, used for pointer hit
// testing. Hosts set it after layout.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return b.Width > 0 && b.Height > 0 &&
		x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

var lastWidgetID atomic.Int64

// nextWidgetID returns a process-unique id used to route widget messages.
func nextWidgetID() int {
	return int(lastWidgetID.Add(1))
}
