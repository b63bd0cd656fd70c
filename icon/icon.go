// Package icon renders status symbols in the variant chosen by the user.
package icon

import (
	"github.com/multidriver/multidriver/key"
	"github.com/spf13/viper"
)

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Info
)

const (
	emoji   = "emoji"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icon variant.
func AvailableVariants() []string {
	return []string{emoji, plain, squares}
}

type iconDef struct {
	emoji   string
	plain   string
	squares string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Success: {emoji: "✅", plain: "✓", squares: "🟩"},
	Fail:    {emoji: "❌", plain: "✖", squares: "🟥"},
	Warn:    {emoji: "⚠️", plain: "!", squares: "🟨"},
	Info:    {emoji: "ℹ️", plain: "i", squares: "🟦"},
}

// Get returns the rendered symbol for i.
func Get(i Icon) string {
	return icons[i].get()
}
