// Package showcase is a Bubble Tea program that renders every widget of the
// component library and routes keyboard and mouse input to them.
package showcase

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/streamui/internal/config"
	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
)

const (
	defaultUserName = "Guest"
	hintAnchor      = "(?) hover me"
)

// Model is the Bubble Tea state of the showcase.
type Model struct {
	cfg  *config.Config
	ctx  components.RenderContext
	dark bool

	focus      *components.FocusTracker
	topBar     *components.TopBar
	docs       *components.Item
	enabled    *components.Badge
	user       *components.User
	logout     *components.Logout
	toggles    []*components.Toggle
	controlled *components.Toggle
	loading    *components.Toggle
	hint       *components.Hint
	spinners   []*components.Spinner

	// focusIndex walks the toggles, then the user menu. -1 means nothing.
	focusIndex int

	keys   keyMap
	help   help.Model
	status string
	width  int
	height int
}

// NewModel builds the showcase for cfg. A nil cfg uses config.Default().
func NewModel(cfg *config.Config) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	ctx, err := cfg.ToRenderContext()
	if err != nil {
		return Model{}, err
	}

	focus := components.NewFocusTracker()
	ctx.Focus = focus

	m := Model{
		cfg:        cfg,
		ctx:        ctx,
		dark:       ctx.Theme.Name == components.ThemeNameDark,
		focus:      focus,
		focusIndex: -1,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}

	userName := cfg.TopBar.UserName
	if userName == "" {
		userName = defaultUserName
	}
	m.docs = components.NewItem("Docs").WithIcon(components.IconHelpCircle)
	m.enabled = components.CountBadge(0)
	m.user = components.NewUser(components.UserOptions{UserName: userName, CabinetURL: cfg.TopBar.CabinetURL})
	m.logout = components.NewLogout(nil)
	m.topBar = components.NewTopBar(components.TopBarOptions{NoShadow: cfg.TopBar.NoShadow}).
		Start(
			components.NewItemStatic(components.HStack(components.TitleText("streamui"), m.enabled).WithGap(1)),
			components.VerticalDivider(),
			m.docs,
		).
		End(m.user, m.logout)

	unchecked := false
	m.controlled = components.NewToggle(components.ToggleOptions{Checked: &unchecked, Label: "Controlled", Focus: focus})
	m.loading = components.NewToggle(components.ToggleOptions{Loading: true, DefaultChecked: true, Label: "Loading", Focus: focus})
	m.toggles = []*components.Toggle{
		components.NewToggle(components.ToggleOptions{DefaultChecked: true, Label: "Notifications", Focus: focus}),
		m.controlled,
		components.NewToggle(components.ToggleOptions{Warning: true, Label: "Warning", Focus: focus}),
		components.NewToggle(components.ToggleOptions{Error: true, Label: "Error", Focus: focus}),
		components.NewToggle(components.ToggleOptions{Disabled: true, Label: "Disabled", Focus: focus}),
		m.loading,
		components.NewToggle(components.ToggleOptions{Color: customTrackColour, Warning: true, DefaultChecked: true, Label: "Custom colour", Focus: focus}),
	}

	m.hint = components.NewHint(
		components.NewText(hintAnchor),
		components.HintOptions{
			Text:  "Hints open after a short delay and close when the pointer leaves.",
			Pos:   components.HintBottomLeft,
			Delay: cfg.HintDelayOrDefault(),
		},
	)

	m.spinners = []*components.Spinner{
		components.NewSpinner(components.SpinnerOptions{Type: components.SpinnerTypeMini}),
		components.NewSpinner(components.SpinnerOptions{Type: components.SpinnerTypeNormal}),
		components.NewSpinner(components.SpinnerOptions{Type: components.SpinnerTypeBig}),
	}

	return m, nil
}

// Init starts the spinner animations.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.spinners))
	for _, s := range m.spinners {
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

// Context returns the render context the showcase currently draws with.
func (m Model) Context() components.RenderContext {
	return m.ctx
}

// Status returns the description of the last widget event.
func (m Model) Status() string {
	return m.status
}

// FocusIndex reports which focusable widget has focus, or -1.
func (m Model) FocusIndex() int {
	return m.focusIndex
}

// enabledCount reports how many toggles are switched on.
func (m Model) enabledCount() int {
	n := 0
	for _, t := range m.toggles {
		if t.IsChecked() {
			n++
		}
	}
	return n
}

func (m Model) focusableCount() int {
	return len(m.toggles) + 1
}

func (m Model) themeFor(dark bool) components.Theme {
	base := components.DefaultTheme()
	if dark {
		base = components.DarkTheme()
	}
	return components.ThemeFromVariables(base, m.cfg.Variables)
}
