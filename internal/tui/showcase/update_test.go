package showcase

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
)

var (
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	spaceKey    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestTabWalksFocusSkippingDisabled(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	var order []int
	for range 7 {
		m, _ = press(t, m, tabKey)
		order = append(order, m.FocusIndex())
	}
	// 4 is disabled and 5 is loading.
	assert.Equal(t, []int{0, 1, 2, 3, 6, 7, 0}, order)
	assert.True(t, m.toggles[0].IsFocused())
	assert.True(t, m.toggles[0].FocusByTab())
	assert.False(t, m.toggles[6].IsFocused())

	m, _ = press(t, m, shiftTabKey)
	assert.Equal(t, 7, m.FocusIndex())

	fresh := newTestModel(t, nil)
	fresh, _ = press(t, fresh, shiftTabKey)
	assert.Equal(t, 7, fresh.FocusIndex())
}

func TestSpaceSwitchesFocusedToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m, _ = press(t, m, tabKey)
	m, cmd := press(t, m, spaceKey)
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	assert.False(t, m.toggles[0].IsChecked())

	m, _ = press(t, m, msgs[0])
	assert.Contains(t, m.Status(), "switched off")
}

func TestControlledToggleFollowsMessages(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m, _ = press(t, m, tabKey)
	m, _ = press(t, m, tabKey)
	require.Same(t, m.controlled, m.toggles[m.FocusIndex()])

	m, cmd := press(t, m, spaceKey)
	assert.False(t, m.controlled.IsChecked(), "the value only changes through SetChecked")

	for _, msg := range collectMsgs(cmd) {
		m, _ = press(t, m, msg)
	}
	assert.True(t, m.controlled.IsChecked())
	assert.Contains(t, m.Status(), "switched on")
}

func TestGlobalKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)

	m, _ = press(t, m, runeKey('t'))
	assert.Equal(t, components.ThemeNameDark, m.Context().Theme.Name)
	m, _ = press(t, m, runeKey('t'))
	assert.Equal(t, components.ThemeNameDefault, m.Context().Theme.Name)

	m, _ = press(t, m, runeKey('g'))
	assert.Equal(t, components.LangEN, m.Context().Locale.LangCode)
	m, _ = press(t, m, runeKey('g'))
	assert.Equal(t, components.LangRU, m.Context().Locale.LangCode)

	m, _ = press(t, m, runeKey('i'))
	assert.True(t, m.Context().IconFont)

	require.True(t, m.loading.IsLoading())
	m, _ = press(t, m, runeKey('l'))
	assert.False(t, m.loading.IsLoading())

	_, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUserMenuByKeyboard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m, _ = press(t, m, shiftTabKey)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.user.IsOpen())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.user.IsOpen())

	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	m, _ = press(t, m, msgs[0])
	assert.Equal(t, "open "+components.DefaultCabinetURL+"/certificates", m.Status())
}

func TestWidgetMessagesUpdateStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m, _ = press(t, m, components.LogoutMsg{})
	assert.Equal(t, "logged out", m.Status())

	m, _ = press(t, m, components.ItemClickedMsg{ID: m.docs.ID()})
	assert.Equal(t, "docs clicked", m.Status())
}
