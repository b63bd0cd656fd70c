// Package style provides a functional API for composing lipgloss styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/multidriver/multidriver/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Common typographic transformations.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Header renders a table header cell.
var Header = func(s string) string {
	return New().Bold(true).Underline(true).Foreground(color.HiPurple).Render(s)
}

// Cell returns a rendering function that pads a cell to width columns.
func Cell(width int) func(string) string {
	return func(s string) string { return New().Width(width).PaddingRight(1).Render(s) }
}
