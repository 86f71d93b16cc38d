package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/streamui/internal/ui"
)

// DefaultCabinetURL is the account site linked from the user menu.
const DefaultCabinetURL = "https://cabinet.kontur.ru"

// ItemState selects the styling of a top bar item.
type ItemState int

const (
	ItemStateNormal ItemState = iota
	ItemStateActive
	ItemStateStatic
)

// msgHandler is implemented by top bar entries that react to input.
type msgHandler interface {
	HandleMsg(msg tea.Msg) tea.Cmd
}

// ItemClickedMsg is emitted when a clickable item is activated.
type ItemClickedMsg struct {
	ID int
}

// Item is a clickable top bar entry with an optional icon.
type Item struct {
	BaseComponent
	id       int
	label    string
	icon     IconName
	iconOnly bool
	active   bool
	onClick  func()
	bounds   Bounds
}

// NewItem creates an item showing label.
func NewItem(label string) *Item {
	return &Item{BaseComponent: NewBaseComponent(), id: nextWidgetID(), label: label}
}

// ID identifies the item in ItemClickedMsg.
func (i *Item) ID() int { return i.id }

// WithIcon sets the icon drawn before the label.
func (i *Item) WithIcon(name IconName) *Item {
	i.icon = name
	return i
}

// IconOnly hides the label when an icon is set.
func (i *Item) IconOnly() *Item {
	i.iconOnly = true
	return i
}

// WithActive marks the item as the current section.
func (i *Item) WithActive(active bool) *Item {
	i.active = active
	return i
}

// OnClick sets the activation callback.
func (i *Item) OnClick(fn func()) *Item {
	i.onClick = fn
	return i
}

// SetBounds records where the item was drawn.
func (i *Item) SetBounds(b Bounds) { i.bounds = b }

// Click activates the item.
func (i *Item) Click() tea.Cmd {
	if i.onClick != nil {
		i.onClick()
	}
	id := i.id
	return func() tea.Msg { return ItemClickedMsg{ID: id} }
}

// HandleMsg activates the item on a left click inside its bounds.
func (i *Item) HandleMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Button != tea.MouseButtonLeft || mouse.Action != tea.MouseActionRelease {
		return nil
	}
	if !i.bounds.Contains(mouse.X, mouse.Y) {
		return nil
	}
	return i.Click()
}

// View renders the item with the default context.
func (i *Item) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon and label.
func (i *Item) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, 2)
	if i.icon != "" {
		parts = append(parts, NewIcon(i.icon).ViewWithContext(ctx))
	}
	if i.label != "" && (i.icon == "" || !i.iconOnly) {
		parts = append(parts, i.label)
	}

	state := ItemStateNormal
	if i.active {
		state = ItemStateActive
	}
	return variantStyle(i.ComputeStyle(ctx.Theme), ctx.Theme, state).Render(strings.Join(parts, " "))
}

// ItemStatic is a non-interactive top bar entry such as a logo.
type ItemStatic struct {
	BaseComponent
	content ui.Renderable
}

// NewItemStatic wraps content.
func NewItemStatic(content ui.Renderable) *ItemStatic {
	return &ItemStatic{BaseComponent: NewBaseComponent(), content: content}
}

// View renders the entry with the default context.
func (s *ItemStatic) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the wrapped content.
func (s *ItemStatic) ViewWithContext(ctx RenderContext) string {
	inner := ""
	if s.content != nil {
		inner = renderChild(s.content, ctx)
	}
	return variantStyle(s.ComputeStyle(ctx.Theme), ctx.Theme, ItemStateStatic).Render(inner)
}

// LogoutMsg is emitted when the logout entry is activated.
type LogoutMsg struct{}

// Logout is the localized sign-out entry.
type Logout struct {
	*Item
}

// NewLogout creates the sign-out entry. onClick may be nil.
func NewLogout(onClick func()) *Logout {
	l := &Logout{Item: NewItem("")}
	l.onClick = onClick
	return l
}

// Click runs the callback and emits LogoutMsg.
func (l *Logout) Click() tea.Cmd {
	if l.onClick != nil {
		l.onClick()
	}
	return func() tea.Msg { return LogoutMsg{} }
}

// HandleMsg activates logout on a left click inside its bounds.
func (l *Logout) HandleMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Button != tea.MouseButtonLeft || mouse.Action != tea.MouseActionRelease {
		return nil
	}
	if !l.bounds.Contains(mouse.X, mouse.Y) {
		return nil
	}
	return l.Click()
}

// View renders the entry with the default context.
func (l *Logout) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the localized label.
func (l *Logout) ViewWithContext(ctx RenderContext) string {
	return variantStyle(l.ComputeStyle(ctx.Theme), ctx.Theme, ItemStateNormal).
		Render(ctx.Locale.Text(LocaleTopBar, KeyLogout))
}

// UserOptions configure the user menu.
type UserOptions struct {
	UserName string
	// CabinetURL defaults to DefaultCabinetURL.
	CabinetURL string
}

// User is the account dropdown: settings, certificates and services links
// under the cabinet URL.
type User struct {
	*Dropdown
	cabinetURL string
}

// NewUser creates the user menu.
func NewUser(opts UserOptions) *User {
	cabinet := strings.TrimSuffix(opts.CabinetURL, "/")
	if cabinet == "" {
		cabinet = DefaultCabinetURL
	}
	return &User{
		Dropdown: NewDropdown(DropdownOptions{
			Label: opts.UserName,
			Icon:  IconUser,
			Items: []MenuItem{
				{LabelKey: KeyCabinetSettings, Href: cabinet},
				{LabelKey: KeyCabinetCertificates, Href: cabinet + "/certificates"},
				{LabelKey: KeyCabinetServices, Href: cabinet + "/services"},
			},
		}),
		cabinetURL: cabinet,
	}
}

// CabinetURL returns the base of the menu links.
func (u *User) CabinetURL() string { return u.cabinetURL }

// TopBarOptions configure a TopBar.
type TopBarOptions struct {
	NoShadow bool
}

// TopBar is the application header: a start section aligned left and an
// end section aligned right.
type TopBar struct {
	BaseComponent
	opts  TopBarOptions
	start []ui.Renderable
	end   []ui.Renderable
}

// NewTopBar creates an empty top bar.
func NewTopBar(opts TopBarOptions) *TopBar {
	return &TopBar{BaseComponent: NewBaseComponent(), opts: opts}
}

// Start appends entries to the left section.
func (t *TopBar) Start(items ...ui.Renderable) *TopBar {
	t.start = append(t.start, items...)
	return t
}

// End appends entries to the right section.
func (t *TopBar) End(items ...ui.Renderable) *TopBar {
	t.end = append(t.end, items...)
	return t
}

// Entries returns every entry, start section first.
func (t *TopBar) Entries() []ui.Renderable {
	out := make([]ui.Renderable, 0, len(t.start)+len(t.end))
	out = append(out, t.start...)
	return append(out, t.end...)
}

// Update forwards input to every interactive entry.
func (t *TopBar) Update(msg tea.Msg) (*TopBar, tea.Cmd) {
	var cmds []tea.Cmd
	for _, entry := range t.Entries() {
		if h, ok := entry.(msgHandler); ok {
			if cmd := h.HandleMsg(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return t, tea.Batch(cmds...)
}

// View renders the top bar with the default context.
func (t *TopBar) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext lays both sections out across the parent width, then
// draws the shadow line unless disabled.
func (t *TopBar) ViewWithContext(ctx RenderContext) string {
	tokens := ctx.Theme.TopBar
	sectionCtx := ctx.WithConstraints(Unconstrained())

	start := HStack(t.start...).WithGap(1).ViewWithContext(sectionCtx)
	end := HStack(t.end...).WithGap(1).ViewWithContext(sectionCtx)
	width, gap := barWidth(ctx, lipgloss.Width(start), lipgloss.Width(end))

	row := lipgloss.JoinHorizontal(lipgloss.Top, start, strings.Repeat(" ", gap), end)
	bar := t.ComputeStyle(ctx.Theme).
		Background(tokens.Background).
		Foreground(tokens.Foreground).
		Width(width).
		Render(row)

	if t.opts.NoShadow {
		return bar
	}
	shadow := lipgloss.NewStyle().Foreground(tokens.Shadow).Render(strings.Repeat("▔", width))
	return lipgloss.JoinVertical(lipgloss.Left, bar, shadow)
}

// Place records the screen bounds of every entry that accepts them, for a
// bar drawn at (x, y) with ctx. Only the first line of an entry is
// clickable, so an open dropdown menu does not widen its label.
func (t *TopBar) Place(ctx RenderContext, x, y int) {
	sectionCtx := ctx.WithConstraints(Unconstrained())
	startWidth := placeEntries(t.start, sectionCtx, x, y)
	endWidth := placeEntries(t.end, sectionCtx, -1, y)
	_, gap := barWidth(ctx, startWidth, endWidth)
	placeEntries(t.end, sectionCtx, x+startWidth+gap, y)
}

type boundsSetter interface {
	SetBounds(b Bounds)
}

// placeEntries mirrors the HStack layout with a gap of one cell. A negative
// x only measures.
func placeEntries(entries []ui.Renderable, ctx RenderContext, x, y int) int {
	width := 0
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		view := renderChild(entry, ctx)
		if view == "" {
			continue
		}
		if width > 0 {
			width++
		}
		if setter, ok := entry.(boundsSetter); ok && x >= 0 {
			first, _, _ := strings.Cut(view, "\n")
			setter.SetBounds(Bounds{X: x + width, Y: y, Width: lipgloss.Width(first), Height: 1})
		}
		width += lipgloss.Width(view)
	}
	return width
}

// barWidth returns the bar width and the gap between the sections. The bar
// fills the parent width or the width constraint and never clips entries.
func barWidth(ctx RenderContext, startWidth, endWidth int) (width, gap int) {
	width = ctx.ParentWidth
	if ctx.Constraints.MaxWidth > 0 && (width <= 0 || ctx.Constraints.MaxWidth < width) {
		width = ctx.Constraints.MaxWidth
	}
	used := startWidth + endWidth
	gap = 1
	if width > used+gap {
		gap = width - used
	}
	if width < used+gap {
		width = used + gap
	}
	return width, gap
}
