package driver

import (
	"fmt"
	"strings"

	"github.com/multidriver/multidriver/format"
	"github.com/multidriver/multidriver/registry"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Driver is the capability set shared by every flat file format.
//
// Delete is deliberately absent: CSV deletes by primary key, JSON by full record match.
type Driver interface {
	// Source returns the path the driver is bound to.
	Source() string

	// Format returns the format fixed at connect time.
	Format() format.Format

	// Connect parses source and registers its table.
	Connect(source string) error

	// Close evicts the table from the registry.
	Close() error

	// Create appends a record and persists the table.
	Create(fields ...string) error

	// Read returns the first record whose value for field matches value.
	// A missing record is mo.None, not an error.
	Read(field, value string) (mo.Option[Match], error)

	// Update overwrites field in the first record that matches and persists the table.
	Update(fieldToMatch, valueToMatch, newValue string) error

	// Write persists the current table.
	Write() error

	// Clone copies the source file to a sibling path and returns a driver bound to it.
	Clone() (Driver, error)

	// Header returns the field names of the table.
	Header() ([]string, error)

	// Len returns the number of rows in the table.
	Len() (int, error)

	String() string
}

// Match is a record found by Read.
type Match struct {
	// Index is the position of the record in the table.
	Index int

	// Fields and Values hold the record, aligned by position.
	Fields []string
	Values []string

	// Value is the value of the field that was asked for.
	Value string
}

func (m Match) String() string {
	pairs := make([]string, 0, len(m.Values))
	for i, v := range m.Values {
		if i < len(m.Fields) {
			pairs = append(pairs, m.Fields[i]+"="+v)
		} else {
			pairs = append(pairs, v)
		}
	}
	return "[" + strings.Join(pairs, ", ") + "]"
}

// Open connects a driver matching the extension of source.
func Open(reg *registry.Registry, source string) (Driver, error) {
	var d Driver

	switch f := format.Determine(source); f {
	case format.CSV:
		d = NewCSV(reg)
	case format.JSON:
		d = NewJSON(reg)
	default:
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, source, f)
	}

	if err := d.Connect(source); err != nil {
		return nil, err
	}
	return d, nil
}

// Rows returns the data records of d aligned with its header.
// For CSV the header row is excluded; for JSON every element is a record.
func Rows(d Driver) ([][]string, error) {
	switch d := d.(type) {
	case *CSV:
		table, err := d.Table()
		if err != nil {
			return nil, err
		}
		return lo.Map(table.data(), func(row []string, _ int) []string {
			return slices.Clone(row)
		}), nil
	case *JSON:
		table, err := d.Table()
		if err != nil {
			return nil, err
		}
		header, ok := table.header()
		if !ok {
			return nil, nil
		}
		fields := Keys(header)
		return lo.Map(table.Rows, func(row *Object, _ int) []string {
			return lo.Map(fields, func(field string, _ int) string {
				v, _ := row.Get(field)
				return v
			})
		}), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedFormat, d)
	}
}
