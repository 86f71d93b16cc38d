package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one entry of a dropdown menu. LabelKey, when set, is looked
// up in the TopBar locale table at render time and wins over Label.
type MenuItem struct {
	Label    string
	LabelKey string
	Href     string
	Disabled bool
	OnSelect func()
}

func (m MenuItem) text(locale LocaleContext) string {
	if m.LabelKey != "" {
		return locale.Text(LocaleTopBar, m.LabelKey)
	}
	return m.Label
}

// DropdownKeyMap holds the bindings an open or focused dropdown reacts to.
type DropdownKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

// DefaultDropdownKeyMap returns arrow and vi style navigation.
func DefaultDropdownKeyMap() DropdownKeyMap {
	return DropdownKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// DropdownOptions configure a Dropdown.
type DropdownOptions struct {
	Label   string
	Icon    IconName
	Items   []MenuItem
	OnOpen  func()
	OnClose func()
	KeyMap  *DropdownKeyMap
}

// DropdownSelectedMsg is emitted when a menu item is chosen.
type DropdownSelectedMsg struct {
	ID    int
	Index int
	Item  MenuItem
}

// Dropdown is a top bar item that opens a menu below itself.
type Dropdown struct {
	BaseComponent
	id      int
	opts    DropdownOptions
	keys    DropdownKeyMap
	open    bool
	focused bool
	cursor  int
	bounds  Bounds
}

// NewDropdown creates a closed dropdown.
func NewDropdown(opts DropdownOptions) *Dropdown {
	d := &Dropdown{
		BaseComponent: NewBaseComponent(),
		id:            nextWidgetID(),
		opts:          opts,
		keys:          DefaultDropdownKeyMap(),
	}
	if opts.KeyMap != nil {
		d.keys = *opts.KeyMap
	}
	return d
}

// ID identifies the dropdown in DropdownSelectedMsg.
func (d *Dropdown) ID() int { return d.id }

// IsOpen reports whether the menu is shown.
func (d *Dropdown) IsOpen() bool { return d.open }

// Cursor returns the highlighted item index.
func (d *Dropdown) Cursor() int { return d.cursor }

// Items returns the menu entries.
func (d *Dropdown) Items() []MenuItem { return d.opts.Items }

// SetBounds records where the dropdown label was drawn.
func (d *Dropdown) SetBounds(b Bounds) { d.bounds = b }

// Focus lets the dropdown receive keys while closed.
func (d *Dropdown) Focus() { d.focused = true }

// Blur removes focus and closes the menu.
func (d *Dropdown) Blur() {
	d.focused = false
	d.Close()
}

// Open shows the menu with the cursor on the first enabled item.
func (d *Dropdown) Open() {
	if d.open {
		return
	}
	d.open = true
	d.cursor = d.nextEnabled(-1, 1)
	if d.opts.OnOpen != nil {
		d.opts.OnOpen()
	}
}

// Close hides the menu.
func (d *Dropdown) Close() {
	if !d.open {
		return
	}
	d.open = false
	if d.opts.OnClose != nil {
		d.opts.OnClose()
	}
}

// Toggle flips between open and closed.
func (d *Dropdown) Toggle() {
	if d.open {
		d.Close()
		return
	}
	d.Open()
}

// MoveCursor moves the highlight by delta, skipping disabled items.
func (d *Dropdown) MoveCursor(delta int) {
	if len(d.opts.Items) == 0 || delta == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	for i := 0; i != delta; i += step {
		next := d.nextEnabled(d.cursor, step)
		if next < 0 {
			return
		}
		d.cursor = next
	}
}

func (d *Dropdown) nextEnabled(from, step int) int {
	for i := from + step; i >= 0 && i < len(d.opts.Items); i += step {
		if !d.opts.Items[i].Disabled {
			return i
		}
	}
	if from >= 0 && from < len(d.opts.Items) {
		return from
	}
	return -1
}

// Select chooses the highlighted item, runs its callback and closes.
func (d *Dropdown) Select() tea.Cmd {
	if !d.open || d.cursor < 0 || d.cursor >= len(d.opts.Items) {
		return nil
	}
	item := d.opts.Items[d.cursor]
	if item.Disabled {
		return nil
	}
	if item.OnSelect != nil {
		item.OnSelect()
	}
	d.Close()

	id, index := d.id, d.cursor
	return func() tea.Msg { return DropdownSelectedMsg{ID: id, Index: index, Item: item} }
}

// Update handles navigation keys and clicks on the label.
func (d *Dropdown) Update(msg tea.Msg) (*Dropdown, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case d.open && key.Matches(msg, d.keys.Close):
			d.Close()
		case d.open && key.Matches(msg, d.keys.Up):
			d.MoveCursor(-1)
		case d.open && key.Matches(msg, d.keys.Down):
			d.MoveCursor(1)
		case d.open && key.Matches(msg, d.keys.Select):
			return d, d.Select()
		case !d.open && d.focused && key.Matches(msg, d.keys.Select):
			d.Open()
		}
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && d.bounds.Contains(msg.X, msg.Y) {
			d.Toggle()
		}
	}
	return d, nil
}

// HandleMsg lets a containing top bar forward input.
func (d *Dropdown) HandleMsg(msg tea.Msg) tea.Cmd {
	_, cmd := d.Update(msg)
	return cmd
}

// View renders the dropdown with the default context.
func (d *Dropdown) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label and, when open, the menu under it.
func (d *Dropdown) ViewWithContext(ctx RenderContext) string {
	state := ItemStateNormal
	if d.open {
		state = ItemStateActive
	}

	parts := make([]string, 0, 3)
	if d.opts.Icon != "" {
		parts = append(parts, NewIcon(d.opts.Icon).ViewWithContext(ctx))
	}
	if d.opts.Label != "" {
		parts = append(parts, d.opts.Label)
	}
	parts = append(parts, "▾")
	label := variantStyle(d.ComputeStyle(ctx.Theme), ctx.Theme, state).Render(strings.Join(parts, " "))

	if !d.open {
		return label
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, d.renderMenu(ctx))
}

func (d *Dropdown) renderMenu(ctx RenderContext) string {
	tokens := ctx.Theme.Dropdown
	lines := make([]string, 0, len(d.opts.Items))
	for i, item := range d.opts.Items {
		style := lipgloss.NewStyle().Foreground(tokens.Foreground).Padding(0, 1)
		prefix := "  "
		switch {
		case item.Disabled:
			style = style.Faint(true)
		case i == d.cursor:
			prefix = "› "
			style = style.Foreground(tokens.Cursor).Bold(true)
		}
		lines = append(lines, style.Render(prefix+item.text(ctx.Locale)))
	}

	return lipgloss.NewStyle().
		Background(tokens.Background).
		Border(ctx.Theme.Borders.Normal).
		BorderForeground(ctx.Theme.TopBar.Divider).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
