package showcase

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global bindings of the showcase. Widget bindings live on
// the widgets themselves.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Theme    key.Binding
	Lang     key.Binding
	IconFont key.Binding
	Loading  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Lang:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "language")),
		IconFont: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "icon font")),
		Loading:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "loading")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Theme, k.Lang, k.IconFont, k.Loading, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Theme, k.Lang, k.IconFont},
		{k.Loading, k.Quit},
	}
}
