package showcase

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
)

// Update handles Bubble Tea messages and routes input to the widgets.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		cmds := make([]tea.Cmd, 0, len(m.spinners))
		for _, s := range m.spinners {
			_, cmd := s.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case components.HintTickMsg:
		m.hint.Update(msg)
		return m, nil

	case components.ToggleChangedMsg:
		if msg.ID == m.controlled.ID() {
			m.controlled.SetChecked(msg.Checked)
		}
		state := "off"
		if msg.Checked {
			state = "on"
		}
		m.status = fmt.Sprintf("toggle %d switched %s", msg.ID, state)
		return m, nil

	case components.DropdownSelectedMsg:
		m.status = "open " + msg.Item.Href
		return m, nil

	case components.ItemClickedMsg:
		if msg.ID == m.docs.ID() {
			m.status = "docs clicked"
		}
		return m, nil

	case components.LogoutMsg:
		m.status = "logged out"
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.focus.Observe(msg)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.dark = !m.dark
		m.ctx = m.ctx.WithTheme(m.themeFor(m.dark))
		return m, nil
	case key.Matches(msg, m.keys.Lang):
		locale := m.ctx.Locale
		if locale.LangCode == components.LangEN {
			locale.LangCode = components.LangRU
		} else {
			locale.LangCode = components.LangEN
		}
		m.ctx = m.ctx.WithLocale(locale)
		return m, nil
	case key.Matches(msg, m.keys.IconFont):
		m.ctx = m.ctx.WithIconFont(!m.ctx.IconFont)
		return m, nil
	case key.Matches(msg, m.keys.Loading):
		m.loading.SetLoading(!m.loading.IsLoading())
		return m, nil
	}

	switch {
	case m.focusIndex >= 0 && m.focusIndex < len(m.toggles):
		_, cmd := m.toggles[m.focusIndex].Update(msg)
		return m, cmd
	case m.focusIndex == len(m.toggles):
		return m, m.user.HandleMsg(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.focus.Observe(msg)

	cmds := make([]tea.Cmd, 0, len(m.toggles)+2)
	for i, t := range m.toggles {
		wasFocused := t.IsFocused()
		_, cmd := t.Update(msg)
		cmds = append(cmds, cmd)
		if !wasFocused && t.IsFocused() {
			if m.focusIndex != i {
				m.blur(m.focusIndex)
			}
			m.focusIndex = i
		}
	}

	_, cmd := m.hint.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = m.topBar.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// moveFocus walks the focus order, skipping disabled toggles.
func (m *Model) moveFocus(delta int) {
	count := m.focusableCount()
	next := m.focusIndex
	for range count {
		switch {
		case next < 0 && delta > 0:
			next = 0
		case next < 0:
			next = count - 1
		default:
			next = (next + delta + count) % count
		}
		if next < len(m.toggles) && m.toggles[next].IsDisabled() {
			continue
		}
		break
	}

	if next == m.focusIndex {
		return
	}
	m.blur(m.focusIndex)
	m.focusIndex = next
	if next < len(m.toggles) {
		m.toggles[next].Focus()
		return
	}
	m.user.Focus()
}

func (m *Model) blur(index int) {
	switch {
	case index < 0:
	case index < len(m.toggles):
		m.toggles[index].Blur()
	case index == len(m.toggles):
		m.user.Blur()
	}
}
