// Package format maps source paths to the flat file format a driver speaks.
package format

import (
	"fmt"
	"strings"

	"github.com/multidriver/multidriver/constant"
)

// Format identifies the encoding of a source file.
type Format int

const (
	Other Format = iota
	CSV
	JSON
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case JSON:
		return "json"
	default:
		return "other"
	}
}

// Determine derives the format from the extension of path, ignoring case.
func Determine(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, constant.ExtJSON):
		return JSON
	case strings.HasSuffix(lower, constant.ExtCSV):
		return CSV
	default:
		return Other
	}
}

// Parse resolves a format by name, as typed on the command line.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	default:
		return Other, fmt.Errorf("unknown format %q", name)
	}
}
