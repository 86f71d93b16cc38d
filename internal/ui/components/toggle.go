package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToggleVariant selects the outline drawn around a toggle.
type ToggleVariant int

const (
	ToggleVariantDefault ToggleVariant = iota
	ToggleVariantFocused
	ToggleVariantWarning
	ToggleVariantError
	ToggleVariantDisabled
)

// ToggleOptions configure a Toggle. A non-nil Checked makes the toggle
// controlled: its value then only changes through SetChecked.
type ToggleOptions struct {
	Checked        *bool
	DefaultChecked bool
	Disabled       bool
	Loading        bool
	Warning        bool
	Error          bool
	AutoFocus      bool
	// Color replaces the checked track colour. Warning and Error are not
	// drawn while it is set.
	Color lipgloss.TerminalColor
	Label string

	OnValueChange func(checked bool)
	OnChange      func(checked bool)
	OnFocus       func()
	OnBlur        func()

	// Focus defaults to the process-wide tracker.
	Focus  *FocusTracker
	KeyMap *ToggleKeyMap
}

// ToggleKeyMap holds the bindings a focused toggle reacts to.
type ToggleKeyMap struct {
	Switch key.Binding
}

// DefaultToggleKeyMap switches on space and enter.
func DefaultToggleKeyMap() ToggleKeyMap {
	return ToggleKeyMap{
		Switch: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle")),
	}
}

// ToggleChangedMsg is emitted after every accepted change.
type ToggleChangedMsg struct {
	ID      int
	Checked bool
}

// Toggle is a two-state switch.
type Toggle struct {
	BaseComponent
	id         int
	opts       ToggleOptions
	keys       ToggleKeyMap
	focus      *FocusTracker
	controlled bool
	value      bool
	checked    bool
	focused    bool
	focusByTab bool
	bounds     Bounds
}

// NewToggle builds a toggle. Controlled mode is decided here, once.
func NewToggle(opts ToggleOptions) *Toggle {
	t := &Toggle{
		BaseComponent: NewBaseComponent(),
		id:            nextWidgetID(),
		opts:          opts,
		keys:          DefaultToggleKeyMap(),
		focus:         opts.Focus,
		controlled:    opts.Checked != nil,
		checked:       opts.DefaultChecked,
	}
	if opts.KeyMap != nil {
		t.keys = *opts.KeyMap
	}
	if t.focus == nil {
		t.focus = DefaultFocusTracker()
	}
	if t.controlled {
		t.value = *opts.Checked
	}
	if opts.AutoFocus {
		t.Focus()
	}
	return t
}

// ID identifies the toggle in ToggleChangedMsg.
func (t *Toggle) ID() int { return t.id }

// IsControlled reports whether the caller owns the checked value.
func (t *Toggle) IsControlled() bool { return t.controlled }

// IsChecked returns the value currently drawn.
func (t *Toggle) IsChecked() bool {
	if t.controlled {
		return t.value
	}
	return t.checked
}

// IsDisabled is true for disabled and loading toggles.
func (t *Toggle) IsDisabled() bool {
	return t.opts.Disabled || t.opts.Loading
}

// IsLoading reports whether the toggle shows the loading handle.
func (t *Toggle) IsLoading() bool { return t.opts.Loading }

// IsFocused reports whether the toggle has input focus.
func (t *Toggle) IsFocused() bool { return t.focused }

// FocusByTab reports whether focus arrived through keyboard navigation.
func (t *Toggle) FocusByTab() bool { return t.focusByTab }

// SetChecked updates the value of a controlled toggle. Uncontrolled toggles
// keep their own state and ignore it.
func (t *Toggle) SetChecked(checked bool) {
	if t.controlled {
		t.value = checked
	}
}

// SetBounds records where the toggle was drawn.
func (t *Toggle) SetBounds(b Bounds) { t.bounds = b }

// SetLoading switches the loading flag.
func (t *Toggle) SetLoading(loading bool) { t.opts.Loading = loading }

// HandleChange applies a change request: OnValueChange first, then local
// state for uncontrolled toggles, then OnChange.
func (t *Toggle) HandleChange(checked bool) tea.Cmd {
	if t.IsDisabled() {
		return nil
	}
	if t.opts.OnValueChange != nil {
		t.opts.OnValueChange(checked)
	}
	if !t.controlled {
		t.checked = checked
	}
	if t.opts.OnChange != nil {
		t.opts.OnChange(checked)
	}

	id := t.id
	return func() tea.Msg { return ToggleChangedMsg{ID: id, Checked: checked} }
}

// Focus marks keyboard navigation and focuses the toggle.
func (t *Toggle) Focus() {
	t.focus.SetTabPressed(true)
	t.handleFocus()
}

func (t *Toggle) handleFocus() {
	t.focused = true
	if t.opts.OnFocus != nil {
		t.opts.OnFocus()
	}
	if t.focus.IsTabPressed() {
		t.focusByTab = true
	}
}

// Blur removes focus.
func (t *Toggle) Blur() {
	if t.opts.OnBlur != nil {
		t.opts.OnBlur()
	}
	t.focused = false
	t.focusByTab = false
}

// Update handles keys while focused and left clicks inside the bounds.
func (t *Toggle) Update(msg tea.Msg) (*Toggle, tea.Cmd) {
	t.focus.Observe(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if t.focused && key.Matches(msg, t.keys.Switch) {
			return t, t.HandleChange(!t.IsChecked())
		}
	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
			return t, nil
		}
		if !t.bounds.Contains(msg.X, msg.Y) || t.IsDisabled() {
			return t, nil
		}
		if !t.focused {
			t.handleFocus()
		}
		return t, t.HandleChange(!t.IsChecked())
	}
	return t, nil
}

// Variant reports which outline the toggle draws.
func (t *Toggle) Variant() ToggleVariant {
	switch {
	case t.IsDisabled():
		return ToggleVariantDisabled
	case t.focusByTab:
		return ToggleVariantFocused
	case t.opts.Color == nil && t.opts.Error:
		return ToggleVariantError
	case t.opts.Color == nil && t.opts.Warning:
		return ToggleVariantWarning
	default:
		return ToggleVariantDefault
	}
}

// View renders the toggle with the default context.
func (t *Toggle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the track, the handle and the optional label.
func (t *Toggle) ViewWithContext(ctx RenderContext) string {
	tokens := ctx.Theme.Toggle
	checked := t.IsChecked()

	track := tokens.TrackUnchecked
	if checked {
		track = tokens.TrackChecked
		if t.opts.Color != nil {
			track = t.opts.Color
		}
	}

	handle := "●"
	if t.opts.Loading {
		handle = "◌"
	}
	body := handle + "  "
	if checked {
		body = "  " + handle
	}

	style := t.ComputeStyle(ctx.Theme).
		Border(lipgloss.Border{Left: "▕", Right: "▏"}, false, true, false, true).
		Background(track).
		Foreground(tokens.Handle)
	style = variantStyle(style, ctx.Theme, t.Variant())

	out := style.Render(body)
	if t.opts.Label != "" {
		label := TypographyStyle(ctx.Theme, TypographyVariantBase)
		if t.IsDisabled() {
			label = TypographyStyle(ctx.Theme, TypographyVariantMuted)
		}
		out = lipgloss.JoinHorizontal(lipgloss.Center, out, " ", label.Render(t.opts.Label))
	}
	return out
}
