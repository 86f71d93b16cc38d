package showcase

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/streamui/internal/config"
	"github.com/alexisbeaulieu97/streamui/internal/ui/components"
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

func newTestModel(t *testing.T, cfg *config.Config) Model {
	t.Helper()
	m, err := NewModel(cfg)
	require.NoError(t, err)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m, err := NewModel(nil)
	require.NoError(t, err)
	require.Equal(t, components.ThemeNameDefault, m.Context().Theme.Name)
	require.Equal(t, components.DefaultLangCode, m.Context().Locale.LangCode)
	require.Equal(t, -1, m.FocusIndex())
	require.Len(t, m.toggles, 7)
	require.Equal(t, components.DefaultHintDelay, m.cfg.HintDelayOrDefault())
	require.Equal(t, components.DefaultCabinetURL, m.user.CabinetURL())
}

func TestNewModelFromConfig(t *testing.T) {
	t.Parallel()

	m, err := NewModel(&config.Config{
		Theme:     "dark",
		Lang:      "en",
		HintDelay: time.Second,
		TopBar:    config.TopBar{UserName: "Ivan", CabinetURL: "https://cabinet.example.test/"},
	})
	require.NoError(t, err)
	require.True(t, m.dark)
	require.Equal(t, components.LangEN, m.Context().Locale.LangCode)
	require.Equal(t, "https://cabinet.example.test", m.user.CabinetURL())

	_, err = NewModel(&config.Config{Theme: "neon"})
	require.Error(t, err)
}

func TestInitStartsSpinners(t *testing.T) {
	t.Parallel()

	m, err := NewModel(nil)
	require.NoError(t, err)
	require.NotNil(t, m.Init())
}
