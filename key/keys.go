// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// History Tracking - these keys configure the persistence of recently opened sources.
const (
	HistorySave = "history.save"
)

// Destructive Operations - these keys guard CLI commands that remove records.
const (
	DeleteConfirm = "delete.confirm"
)

// Table Rendering - these keys configure how tables are printed to the terminal.
const (
	ShowTruncate = "show.truncate"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the command line behavior.
const (
	CliColored = "cli.colored"
)
