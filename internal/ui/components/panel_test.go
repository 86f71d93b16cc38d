package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderSubtitleAndLevel(t *testing.T) {
	t.Parallel()

	h := NewHeader("Toggles").WithSubtitle("click or press space")
	view := h.View()
	assert.Equal(t, 2, lipgloss.Height(view))
	assert.Contains(t, view, "Toggles")
	assert.Contains(t, view, "click or press space")

	assert.Equal(t, 6, NewHeader("x").WithLevel(9).Level())
	assert.Equal(t, 1, NewHeader("x").WithLevel(0).Level())
	assert.Equal(t, 1, lipgloss.Height(NewHeader("x").View()))
}

func TestContainerSharesWidthWithChildren(t *testing.T) {
	t.Parallel()

	c := NewContainer(HorizontalDivider()).WithBorder(BorderVariantNormal)
	view := c.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(20)))

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 20, lipgloss.Width(line))
	}
}

func TestContainerWithoutChildrenDrawsOneEmptyRow(t *testing.T) {
	t.Parallel()

	view := NewContainer().WithBorder(BorderVariantRounded).View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.True(t, strings.HasPrefix(lines[1], "│"))
	assert.True(t, strings.HasPrefix(lines[2], "╰"))
}

func TestPanelFramesTitleAndBody(t *testing.T) {
	t.Parallel()

	p := NewPanel(NewText("abc")).WithTitle("Spinners")
	lines := strings.Split(p.View(), "\n")

	assert.Len(t, lines, 5)
	assert.Contains(t, lines[1], "Spinners")
	assert.Contains(t, lines[2], strings.Repeat("─", 8))
	assert.Contains(t, lines[3], "abc")
	for _, line := range lines {
		assert.Equal(t, 12, lipgloss.Width(line))
	}
	assert.Equal(t, 2, p.Header().Level())
}

func TestPanelWithoutHeader(t *testing.T) {
	t.Parallel()

	p := NewPanel(NewText("a"), NewText("b"))
	assert.Nil(t, p.Header())
	assert.Equal(t, 4, lipgloss.Height(p.View()))
}
