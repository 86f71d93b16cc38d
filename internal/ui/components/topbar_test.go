package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectMsgs runs cmd and flattens batches.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collectMsgs(c)...)
	}
	return out
}

func leftRelease(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
}

func TestDropdownOpenClose(t *testing.T) {
	t.Parallel()

	var events []string
	d := NewDropdown(DropdownOptions{
		Label:   "Menu",
		Items:   []MenuItem{{Label: "one"}},
		OnOpen:  func() { events = append(events, "open") },
		OnClose: func() { events = append(events, "close") },
	})

	d.Open()
	d.Open()
	assert.True(t, d.IsOpen())
	d.Toggle()
	assert.False(t, d.IsOpen())
	d.Close()
	assert.Equal(t, []string{"open", "close"}, events)

	d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, d.IsOpen(), "keys are ignored while closed and unfocused")
	d.Focus()
	d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, d.IsOpen())
	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, d.IsOpen())
}

func TestDropdownCursorSkipsDisabled(t *testing.T) {
	t.Parallel()

	d := NewDropdown(DropdownOptions{Items: []MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	}})

	d.Open()
	assert.Equal(t, 1, d.Cursor())
	d.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 3, d.Cursor())
	d.MoveCursor(1)
	assert.Equal(t, 3, d.Cursor(), "the cursor stays on the last enabled item")
	d.MoveCursor(-1)
	assert.Equal(t, 1, d.Cursor())
	d.MoveCursor(-1)
	assert.Equal(t, 1, d.Cursor())
}

func TestDropdownSelect(t *testing.T) {
	t.Parallel()

	selected := ""
	d := NewDropdown(DropdownOptions{Items: []MenuItem{
		{Label: "a"},
		{Label: "b", OnSelect: func() { selected = "b" }},
	}})

	assert.Nil(t, d.Select(), "nothing is selected while closed")

	d.Open()
	d.MoveCursor(1)
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "b", selected)
	assert.False(t, d.IsOpen())

	msg, ok := cmd().(DropdownSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, d.ID(), msg.ID)
	assert.Equal(t, 1, msg.Index)
	assert.Equal(t, "b", msg.Item.Label)
}

func TestDropdownClickToggles(t *testing.T) {
	t.Parallel()

	d := NewDropdown(DropdownOptions{Label: "Menu", Items: []MenuItem{{Label: "a"}}})
	d.SetBounds(Bounds{X: 10, Y: 0, Width: 6, Height: 1})

	d.Update(leftRelease(0, 0))
	assert.False(t, d.IsOpen())
	d.Update(leftRelease(12, 0))
	assert.True(t, d.IsOpen())
	assert.Contains(t, d.View(), "› a")
	d.Update(leftRelease(12, 0))
	assert.False(t, d.IsOpen())
}

func TestUserMenu(t *testing.T) {
	t.Parallel()

	u := NewUser(UserOptions{UserName: "Ivan"})
	assert.Equal(t, DefaultCabinetURL, u.CabinetURL())

	items := u.Items()
	require.Len(t, items, 3)
	assert.Equal(t, DefaultCabinetURL, items[0].Href)
	assert.Equal(t, DefaultCabinetURL+"/certificates", items[1].Href)
	assert.Equal(t, DefaultCabinetURL+"/services", items[2].Href)

	custom := NewUser(UserOptions{UserName: "Ivan", CabinetURL: "https://example.test/"})
	assert.Equal(t, "https://example.test", custom.CabinetURL())
	assert.Equal(t, "https://example.test/services", custom.Items()[2].Href)

	u.Open()
	en := u.ViewWithContext(DefaultContext().WithLocale(LocaleContext{LangCode: LangEN}))
	assert.Contains(t, en, "Ivan")
	assert.Contains(t, en, "Profile settings")
	assert.Contains(t, en, "Services payment")

	ru := u.View()
	assert.Contains(t, ru, "Сертификаты")
}

func TestLogout(t *testing.T) {
	t.Parallel()

	called := false
	l := NewLogout(func() { called = true })

	assert.Contains(t, l.View(), "Выйти")
	assert.Contains(t, l.ViewWithContext(DefaultContext().WithLocale(LocaleContext{LangCode: LangEN})), "Logout")

	l.SetBounds(Bounds{X: 0, Y: 0, Width: 7, Height: 1})
	assert.Nil(t, l.HandleMsg(leftRelease(30, 0)))
	msgs := collectMsgs(l.HandleMsg(leftRelease(2, 0)))
	assert.True(t, called)
	assert.Equal(t, []tea.Msg{LogoutMsg{}}, msgs)
}

func TestItemView(t *testing.T) {
	t.Parallel()

	withLabel := NewItem("Settings").WithIcon(IconGear).View()
	assert.Contains(t, withLabel, "⚙")
	assert.Contains(t, withLabel, "Settings")

	iconOnly := NewItem("Settings").WithIcon(IconGear).IconOnly().View()
	assert.Contains(t, iconOnly, "⚙")
	assert.NotContains(t, iconOnly, "Settings")

	static := NewItemStatic(NewText("logo")).View()
	assert.Contains(t, static, "logo")
}

func TestTopBarLayout(t *testing.T) {
	t.Parallel()

	bar := NewTopBar(TopBarOptions{}).
		Start(NewItemStatic(NewText("logo")), NewItem("Docs")).
		End(NewLogout(nil))
	assert.Len(t, bar.Entries(), 3)

	view := bar.ViewWithContext(DefaultContext().WithParentWidth(60))
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 60, lipgloss.Width(lines[0]))
	assert.Less(t, strings.Index(lines[0], "Docs"), strings.Index(lines[0], "Выйти"))
	assert.Contains(t, lines[1], "▔")

	flat := NewTopBar(TopBarOptions{NoShadow: true}).Start(NewItem("Docs"))
	assert.NotContains(t, flat.ViewWithContext(DefaultContext().WithParentWidth(30)), "\n")
}

func TestTopBarForwardsClicks(t *testing.T) {
	t.Parallel()

	clicks := 0
	item := NewItem("Docs").OnClick(func() { clicks++ })
	item.SetBounds(Bounds{X: 0, Y: 0, Width: 4, Height: 1})
	bar := NewTopBar(TopBarOptions{}).Start(NewItemStatic(NewText("logo")), item)

	_, cmd := bar.Update(leftRelease(1, 0))
	msgs := collectMsgs(cmd)
	assert.Equal(t, 1, clicks)
	assert.Equal(t, []tea.Msg{ItemClickedMsg{ID: item.ID()}}, msgs)

	_, cmd = bar.Update(leftRelease(40, 0))
	assert.Empty(t, collectMsgs(cmd))
}

func TestStackAndDivider(t *testing.T) {
	t.Parallel()

	vertical := VStack(NewText("a"), NewText("b")).WithGap(1).View()
	assert.Len(t, strings.Split(vertical, "\n"), 3)

	horizontal := HStack(NewText("a"), nil, NewText("b")).WithGap(2).View()
	assert.Equal(t, "a  b", horizontal)

	assert.Equal(t, strings.Repeat("─", 5), HorizontalDivider().WithLength(5).View())
	assert.Equal(t, strings.Repeat("─", 40), HorizontalDivider().View())
	assert.Equal(t, strings.Repeat("─", 12), HorizontalDivider().ViewWithContext(DefaultContext().WithParentWidth(12)))
	assert.Equal(t, "│", VerticalDivider().View())
}

func TestTopBarPlace(t *testing.T) {
	t.Parallel()

	docs := NewItem("Docs")
	logout := NewLogout(nil)
	bar := NewTopBar(TopBarOptions{}).
		Start(NewItemStatic(NewText("logo")), docs).
		End(logout)

	ctx := DefaultContext().WithParentWidth(60)
	bar.Place(ctx, 0, 0)
	first, _, _ := strings.Cut(bar.ViewWithContext(ctx), "\n")

	docsX := strings.Index(first, "Docs")
	clicks := collectMsgs(docs.HandleMsg(leftRelease(lipgloss.Width(first[:docsX]), 0)))
	assert.Len(t, clicks, 1, "the recorded bounds cover the rendered label")

	logoutX := lipgloss.Width(first[:strings.Index(first, "Выйти")])
	assert.Equal(t, []tea.Msg{LogoutMsg{}}, collectMsgs(logout.HandleMsg(leftRelease(logoutX, 0))))
	assert.Empty(t, collectMsgs(logout.HandleMsg(leftRelease(logoutX, 1))))
}
