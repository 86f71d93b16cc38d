package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/streamui/internal/ui"
)

// Panel frames a showcase section: a header, a divider and the body inside a
// rounded border.
type Panel struct {
	*Container
	header *Header
	body   []ui.Renderable
}

// NewPanel creates a bordered panel around body.
func NewPanel(body ...ui.Renderable) *Panel {
	return &Panel{
		Container: NewContainer().WithBorder(BorderVariantRounded).WithAppliers(PaddingX(SpacingSizeExtraSmall)),
		body:      body,
	}
}

// WithTitle sets a level 2 header.
func (p *Panel) WithTitle(title string) *Panel {
	p.header = NewHeader(title).WithLevel(2)
	return p
}

// WithHeader sets a custom header.
func (p *Panel) WithHeader(header *Header) *Panel {
	p.header = header
	return p
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel. The divider spans the body width.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	frame := *p.Container
	frame.layout = VStack()
	if p.header != nil {
		frame.Add(p.header)
		bodyWidth := 0
		for _, child := range p.body {
			if w := lipgloss.Width(renderChild(child, ctx)); w > bodyWidth {
				bodyWidth = w
			}
		}
		if w := lipgloss.Width(p.header.ViewWithContext(ctx)); w > bodyWidth {
			bodyWidth = w
		}
		frame.Add(HorizontalDivider().WithLength(bodyWidth))
	}
	frame.Add(p.body...)
	return frame.ViewWithContext(ctx)
}

// Header returns the panel header, or nil.
func (p *Panel) Header() *Header { return p.header }
