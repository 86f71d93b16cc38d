// Package ui holds the contracts shared by terminal widgets.
package ui

// Renderable is anything that can draw itself as a terminal string.
type Renderable interface {
	View() string
}
