package showcase

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/streamui/internal/config"
	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
)

func findLine(t *testing.T, view, needle string) (x, y int) {
	t.Helper()
	for i, line := range strings.Split(view, "\n") {
		if idx := strings.Index(line, needle); idx >= 0 {
			return lipgloss.Width(line[:idx]), i
		}
	}
	t.Fatalf("%q not found in view:\n%s", needle, view)
	return 0, 0
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
}

func TestViewRendersEveryWidget(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	view := m.View()

	for _, want := range []string{"streamui", "Docs", "Guest", "Выйти", "Notifications", "Custom colour", hintAnchor, "Загрузка", "Icons", "quit"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, 100, lipgloss.Width(strings.Split(view, "\n")[0]))

	m, _ = press(t, m, runeKey('g'))
	assert.Contains(t, m.View(), "Logout")
}

func TestMouseClickSwitchesToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	_, y := findLine(t, m.View(), "Notifications")

	m, cmd := press(t, m, release(1, y))
	assert.Equal(t, 0, m.FocusIndex())
	assert.False(t, m.toggles[0].IsChecked())
	assert.False(t, m.toggles[0].FocusByTab(), "pointer focus draws no focus ring")
	require.NotEmpty(t, collectMsgs(cmd))

	_, disabledY := findLine(t, m.View(), "Disabled")
	m, _ = press(t, m, release(1, disabledY))
	assert.False(t, m.toggles[4].IsChecked())
	assert.Equal(t, 0, m.FocusIndex())
}

func TestMouseClickOnTopBar(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	x, y := findLine(t, m.View(), "Выйти")

	m, cmd := press(t, m, release(x+1, y))
	for _, msg := range collectMsgs(cmd) {
		m, _ = press(t, m, msg)
	}
	assert.Equal(t, "logged out", m.Status())

	x, y = findLine(t, m.View(), "Guest")
	m, _ = press(t, m, release(x, y))
	assert.True(t, m.user.IsOpen())
	assert.Contains(t, m.View(), "Настройки")
}

func TestHoverOpensHint(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &config.Config{HintDelay: time.Millisecond})
	x, y := findLine(t, m.View(), hintAnchor)

	m, cmd := press(t, m, tea.MouseMsg{X: x + 1, Y: y, Action: tea.MouseActionMotion})
	for _, msg := range collectMsgs(cmd) {
		m, _ = press(t, m, msg)
	}
	assert.Equal(t, components.HintOpen, m.hint.Phase())
	assert.Contains(t, m.View(), "short delay")

	m, _ = press(t, m, tea.MouseMsg{X: x + 1, Y: y + 20, Action: tea.MouseActionMotion})
	assert.Equal(t, components.HintClosed, m.hint.Phase())
}

func TestTopBarBadgeCountsEnabledToggles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	first := strings.Split(m.View(), "\n")[0]
	assert.Contains(t, first, "streamui  3 ")

	_, y := findLine(t, m.View(), "Notifications")
	m, _ = press(t, m, release(1, y))
	first = strings.Split(m.View(), "\n")[0]
	assert.Contains(t, first, "streamui  2 ")
}

func TestSectionsAreFramed(t *testing.T) {
	t.Parallel()

	view := newTestModel(t, nil).View()
	assert.Contains(t, view, "tab to focus, space to switch")

	_, spinnersY := findLine(t, view, "Spinners")
	lines := strings.Split(view, "\n")
	assert.Contains(t, lines[spinnersY-1], "╭")
	assert.Contains(t, lines[spinnersY+1], "─")
}
