package components

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// FocusTracker remembers whether the user is navigating with the keyboard.
// Widgets draw a focus ring only while the flag is set.
type FocusTracker struct {
	tabPressed atomic.Bool
}

var (
	defaultTracker     *FocusTracker
	defaultTrackerOnce sync.Once
)

// DefaultFocusTracker returns the process-wide tracker.
func DefaultFocusTracker() *FocusTracker {
	defaultTrackerOnce.Do(func() {
		defaultTracker = &FocusTracker{}
	})
	return defaultTracker
}

// NewFocusTracker returns an independent tracker, used by tests and by
// programs hosting more than one widget tree.
func NewFocusTracker() *FocusTracker {
	return &FocusTracker{}
}

// SetTabPressed records keyboard navigation.
func (f *FocusTracker) SetTabPressed(pressed bool) {
	if f == nil {
		return
	}
	f.tabPressed.Store(pressed)
}

// IsTabPressed reports whether the last navigation came from the keyboard.
func (f *FocusTracker) IsTabPressed() bool {
	if f == nil {
		return false
	}
	return f.tabPressed.Load()
}

// Observe updates the flag from an input message: tab keys set it and mouse
// presses clear it.
func (f *FocusTracker) Observe(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			f.SetTabPressed(true)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			f.SetTabPressed(false)
		}
	}
}
