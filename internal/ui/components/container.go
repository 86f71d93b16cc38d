package components

import "github.com/alexisbeaulieu97/streamui/internal/ui"

// Container is a box around a vertical stack of children. Border and
// padding come from theme appliers.
type Container struct {
	BaseComponent
	layout *Stack
	border BorderVariant
}

// NewContainer creates a borderless container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container. An empty bordered container keeps
// one blank content row. A width constraint is shared with
// the children after the frame is subtracted.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.border != BorderVariantNone {
		style = style.Border(BorderForVariant(ctx.Theme, c.border)).BorderForeground(ctx.Theme.TopBar.Divider)
	}

	childCtx := ctx
	if ctx.Constraints.MaxWidth > 0 {
		inner := ctx.Constraints.MaxWidth - style.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
		childCtx = ctx.WithConstraints(WithMaxWidth(inner))
	}

	content := ""
	if c.layout.Len() > 0 {
		content = c.layout.ViewWithContext(childCtx)
	}
	return style.Render(content)
}

// WithBorder draws a theme border around the content.
func (c *Container) WithBorder(variant BorderVariant) *Container {
	c.border = variant
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}
