package constant

// Flat file layout parameters shared by the CSV and JSON drivers.
const (
	// CSVDelimiter separates cells within a CSV line. Quoting is not supported.
	CSVDelimiter = ","

	// JSONIndent is the indentation used when a JSON table is persisted.
	JSONIndent = "    "

	// CopySuffix is inserted before the extension of a cloned source file.
	CopySuffix = "_copy"

	// TokenSeparator splits a "key:value" record token.
	TokenSeparator = ":"
)

// Recognised source file extensions.
const (
	ExtCSV  = ".csv"
	ExtJSON = ".json"
)
