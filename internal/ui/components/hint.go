package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/streamui/internal/ui"
)

// DefaultHintDelay is how long the pointer must rest on the anchor before
// the hint opens.
const DefaultHintDelay = 400 * time.Millisecond

// HintPhase is the visibility state of a hint.
type HintPhase int

const (
	HintClosed HintPhase = iota
	HintOpening
	HintOpen
)

func (p HintPhase) String() string {
	switch p {
	case HintOpening:
		return "opening"
	case HintOpen:
		return "open"
	default:
		return "closed"
	}
}

// HintPosition is a popup placement: a side, optionally followed by an
// alignment along that side.
type HintPosition string

const (
	HintTop    HintPosition = "top"
	HintRight  HintPosition = "right"
	HintBottom HintPosition = "bottom"
	HintLeft   HintPosition = "left"

	HintTopLeft      HintPosition = "top left"
	HintTopCenter    HintPosition = "top center"
	HintTopRight     HintPosition = "top right"
	HintBottomLeft   HintPosition = "bottom left"
	HintBottomCenter HintPosition = "bottom center"
	HintBottomRight  HintPosition = "bottom right"
	HintLeftTop      HintPosition = "left top"
	HintLeftMiddle   HintPosition = "left middle"
	HintLeftBottom   HintPosition = "left bottom"
	HintRightTop     HintPosition = "right top"
	HintRightMiddle  HintPosition = "right middle"
	HintRightBottom  HintPosition = "right bottom"
)

// popupPositions is the preference order tried by the popup.
var popupPositions = []HintPosition{
	HintTopCenter, HintTopLeft, HintTopRight,
	HintBottomCenter, HintBottomLeft, HintBottomRight,
	HintLeftMiddle, HintLeftTop, HintLeftBottom,
	HintRightMiddle, HintRightTop, HintRightBottom,
}

// HintPositions returns the popup placements starting with pos, in
// preference order.
func HintPositions(pos HintPosition) []HintPosition {
	out := make([]HintPosition, 0, 3)
	for _, p := range popupPositions {
		if strings.HasPrefix(string(p), string(pos)) {
			out = append(out, p)
		}
	}
	return out
}

// HintOptions configure a Hint.
type HintOptions struct {
	Text string
	// Pos defaults to HintTop.
	Pos HintPosition
	// Manual hints ignore the pointer and follow Opened.
	Manual bool
	Opened bool
	// MaxWidth defaults to the theme hint width.
	MaxWidth int
	// Delay defaults to DefaultHintDelay.
	Delay time.Duration

	OnMouseEnter func()
	OnMouseLeave func()
}

// HintTickMsg fires when an open delay elapses. Ticks carrying an old tag
// are ignored.
type HintTickMsg struct {
	ID  int
	Tag int
}

// Hint shows a short text next to an anchor after the pointer rests on it.
type Hint struct {
	BaseComponent
	id      int
	tag     int
	armed   bool
	hovered bool
	phase   HintPhase
	opts    HintOptions
	anchor  ui.Renderable
	bounds  Bounds
}

// NewHint wraps anchor with a hint.
func NewHint(anchor ui.Renderable, opts HintOptions) *Hint {
	if opts.Pos == "" {
		opts.Pos = HintTop
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultHintDelay
	}
	h := &Hint{
		BaseComponent: NewBaseComponent(),
		id:            nextWidgetID(),
		opts:          opts,
		anchor:        anchor,
	}
	if opts.Manual && opts.Opened {
		h.phase = HintOpen
	}
	return h
}

// Phase returns the current visibility state.
func (h *Hint) Phase() HintPhase { return h.phase }

// IsOpen reports whether the popup is drawn.
func (h *Hint) IsOpen() bool { return h.phase == HintOpen }

// Positions returns the placements the popup may use.
func (h *Hint) Positions() []HintPosition { return HintPositions(h.opts.Pos) }

// ContentCentered is true for the bare top and bottom positions.
func (h *Hint) ContentCentered() bool {
	return h.opts.Pos == HintTop || h.opts.Pos == HintBottom
}

// SetBounds records where the anchor was drawn.
func (h *Hint) SetBounds(b Bounds) { h.bounds = b }

// SetText replaces the hint text.
func (h *Hint) SetText(text string) { h.opts.Text = text }

// MouseEnter starts the open delay unless one is already running.
func (h *Hint) MouseEnter() tea.Cmd {
	var cmd tea.Cmd
	if !h.opts.Manual && !h.armed {
		h.armed = true
		h.tag++
		h.phase = HintOpening
		id, tag := h.id, h.tag
		cmd = tea.Tick(h.opts.Delay, func(time.Time) tea.Msg {
			return HintTickMsg{ID: id, Tag: tag}
		})
	}
	if h.opts.OnMouseEnter != nil {
		h.opts.OnMouseEnter()
	}
	return cmd
}

// MouseLeave cancels a pending open and closes the hint.
func (h *Hint) MouseLeave() {
	if !h.opts.Manual && h.armed {
		h.cancel()
		h.phase = HintClosed
	}
	if h.opts.OnMouseLeave != nil {
		h.opts.OnMouseLeave()
	}
}

// SetOpened drives a manual hint. It has no effect on pointer hints.
func (h *Hint) SetOpened(opened bool) {
	h.opts.Opened = opened
	if !h.opts.Manual {
		return
	}
	if opened {
		h.phase = HintOpen
	} else {
		h.phase = HintClosed
	}
}

// Close tears the hint down. Any pending open is cancelled so a late tick
// cannot reopen it.
func (h *Hint) Close() {
	h.cancel()
	h.hovered = false
	if !h.opts.Manual {
		h.phase = HintClosed
	}
}

func (h *Hint) cancel() {
	if h.armed {
		h.armed = false
		h.tag++
	}
}

// Update handles delay ticks and pointer motion over the anchor bounds.
func (h *Hint) Update(msg tea.Msg) (*Hint, tea.Cmd) {
	switch msg := msg.(type) {
	case HintTickMsg:
		if msg.ID == h.id && msg.Tag == h.tag && h.armed && h.phase == HintOpening {
			h.phase = HintOpen
		}
	case tea.MouseMsg:
		inside := h.bounds.Contains(msg.X, msg.Y)
		switch {
		case inside && !h.hovered:
			h.hovered = true
			return h, h.MouseEnter()
		case !inside && h.hovered:
			h.hovered = false
			h.MouseLeave()
		}
	}
	return h, nil
}

// View renders the hint with the default context.
func (h *Hint) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the anchor and, when open, the popup on the side
// named by the first allowed position.
func (h *Hint) ViewWithContext(ctx RenderContext) string {
	anchor := ""
	if h.anchor != nil {
		anchor = renderChild(h.anchor, ctx)
	}
	if h.phase != HintOpen || h.opts.Text == "" {
		return anchor
	}

	popup := h.renderPopup(ctx)
	positions := h.Positions()
	if len(positions) == 0 {
		positions = []HintPosition{HintTopCenter}
	}
	side, align, _ := strings.Cut(string(positions[0]), " ")

	switch side {
	case "bottom":
		return lipgloss.JoinVertical(alignPosition(align), anchor, popup)
	case "left":
		return lipgloss.JoinHorizontal(alignPosition(align), popup, " ", anchor)
	case "right":
		return lipgloss.JoinHorizontal(alignPosition(align), anchor, " ", popup)
	default:
		return lipgloss.JoinVertical(alignPosition(align), popup, anchor)
	}
}

func (h *Hint) renderPopup(ctx RenderContext) string {
	tokens := ctx.Theme.Hint
	maxWidth := h.opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = tokens.MaxWidth
	}
	if ctx.Constraints.MaxWidth > 0 && ctx.Constraints.MaxWidth < maxWidth {
		maxWidth = ctx.Constraints.MaxWidth
	}
	if ctx.ParentWidth > 0 && ctx.ParentWidth < maxWidth {
		maxWidth = ctx.ParentWidth
	}

	style := h.ComputeStyle(ctx.Theme).
		Background(tokens.Background).
		Foreground(tokens.Foreground).
		Padding(0, 1)
	if h.ContentCentered() {
		style = style.Align(lipgloss.Center)
	}

	// Padding counts towards the width lipgloss wraps at.
	if lipgloss.Width(h.opts.Text)+style.GetHorizontalPadding() > maxWidth && maxWidth > 0 {
		style = style.Width(maxWidth)
	}
	return style.Render(h.opts.Text)
}

func alignPosition(align string) lipgloss.Position {
	switch align {
	case "left", "top":
		return lipgloss.Left
	case "right", "bottom":
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}
