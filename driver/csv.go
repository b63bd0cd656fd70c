package driver

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/multidriver/multidriver/constant"
	"github.com/multidriver/multidriver/format"
	"github.com/multidriver/multidriver/log"
	"github.com/multidriver/multidriver/registry"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// CSVTable is a parsed CSV file. Rows[0] is the header.
type CSVTable struct {
	Rows [][]string
}

// Equal reports whether both tables hold the same cells in the same order.
func (t *CSVTable) Equal(other *CSVTable) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.Rows) != len(other.Rows) {
		return false
	}
	for i := range t.Rows {
		if !slices.Equal(t.Rows[i], other.Rows[i]) {
			return false
		}
	}
	return true
}

func (t *CSVTable) header() ([]string, bool) {
	if len(t.Rows) == 0 {
		return nil, false
	}
	return t.Rows[0], true
}

// data returns the rows after the header.
func (t *CSVTable) data() [][]string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[1:]
}

type csvCodec struct{}

func (csvCodec) decode(data []byte) (*CSVTable, error) {
	table := &CSVTable{Rows: [][]string{}}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		table.Rows = append(table.Rows, strings.Split(line, constant.CSVDelimiter))
	}

	return table, nil
}

func (csvCodec) encode(table *CSVTable) ([]byte, error) {
	var b strings.Builder
	for _, row := range table.Rows {
		b.WriteString(strings.Join(row, constant.CSVDelimiter))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// CSV is a driver for comma separated files. The first column is the primary key.
type CSV struct {
	manager[*CSVTable]
}

// NewCSV returns an unconnected CSV driver backed by reg, or by the global registry if reg is nil.
func NewCSV(reg *registry.Registry) *CSV {
	return &CSV{manager: newManager[*CSVTable](reg, csvCodec{})}
}

// OpenCSV returns a CSV driver connected to source.
func OpenCSV(reg *registry.Registry, source string) (*CSV, error) {
	d := NewCSV(reg)
	if err := d.Connect(source); err != nil {
		return nil, err
	}
	return d, nil
}

// Connect parses source as CSV, whatever its extension, and registers the table.
func (d *CSV) Connect(source string) error {
	return d.connect(source, format.CSV)
}

// visible strips Unicode control and format characters, such as a byte order mark.
func visible(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.C) {
			return -1
		}
		return r
	}, s)
}

// Header returns the column names with invisible characters removed.
func (d *CSV) Header() ([]string, error) {
	table, err := d.Table()
	if err != nil {
		return nil, err
	}

	header, ok := table.header()
	if !ok {
		return nil, fmt.Errorf("%w: %s has no header", ErrFormatMismatch, d.source)
	}
	return lo.Map(header, func(name string, _ int) string {
		return visible(name)
	}), nil
}

// FieldIndex returns the column of name in the header.
func (d *CSV) FieldIndex(name string) (int, error) {
	header, err := d.Header()
	if err != nil {
		return -1, err
	}

	if i := slices.Index(header, visible(name)); i >= 0 {
		return i, nil
	}
	return -1, fieldNotFound(name, header)
}

// Len returns the number of rows, header included.
func (d *CSV) Len() (int, error) {
	table, err := d.Table()
	if err != nil {
		return 0, err
	}
	return len(table.Rows), nil
}

// Create appends a row. It must have one value per column and a primary key
// that no other row uses, the header row included.
func (d *CSV) Create(fields ...string) error {
	table, err := d.Table()
	if err != nil {
		return err
	}

	header, ok := table.header()
	if !ok {
		return fmt.Errorf("%w: %s has no header", ErrFormatMismatch, d.source)
	}
	if len(fields) != len(header) {
		return fmt.Errorf("%w: expected %d fields, got %d", ErrFormatMismatch, len(header), len(fields))
	}

	if visible(header[0]) == fields[0] || lo.ContainsBy(table.Rows, func(row []string) bool {
		return len(row) > 0 && row[0] == fields[0]
	}) {
		log.Warnf("create in %s: primary key %q already exists", d.source, fields[0])
		return fmt.Errorf("%w: primary key %q", ErrDuplicateRecord, fields[0])
	}

	table.Rows = append(table.Rows, slices.Clone(fields))
	return d.updateAndWrite(table)
}

// Read looks up the row whose primary key is key and extracts field from it.
// Only an unknown field is an error.
func (d *CSV) Read(field, key string) (mo.Option[Match], error) {
	index, err := d.FieldIndex(field)
	if err != nil {
		return mo.None[Match](), err
	}

	table, err := d.Table()
	if err != nil {
		return mo.None[Match](), err
	}

	row, i, ok := lo.FindIndexOf(table.data(), func(row []string) bool {
		return len(row) > 0 && row[0] == key
	})
	if !ok {
		log.Debugf("read %s: no record with key %q", d.source, key)
		return mo.None[Match](), nil
	}

	header, _ := d.Header()
	match := Match{
		Index:  i + 1,
		Fields: header,
		Values: slices.Clone(row),
	}
	if index < len(row) {
		match.Value = row[index]
	}
	return mo.Some(match), nil
}

// Update overwrites fieldToMatch in the first row where it equals valueToMatch.
func (d *CSV) Update(fieldToMatch, valueToMatch, newValue string) error {
	index, err := d.FieldIndex(fieldToMatch)
	if err != nil {
		return err
	}

	table, err := d.Table()
	if err != nil {
		return err
	}

	row, _, ok := lo.FindIndexOf(table.data(), func(row []string) bool {
		return index < len(row) && row[index] == valueToMatch
	})
	if !ok {
		return fmt.Errorf("%w: no row with %s=%q", ErrRecordNotFound, fieldToMatch, valueToMatch)
	}

	row[index] = newValue
	if err := d.updateAndWrite(table); err != nil {
		return err
	}

	log.Infof("updated %s: %s %q -> %q", d.source, fieldToMatch, valueToMatch, newValue)
	return nil
}

// Delete removes every row whose primary key is key.
func (d *CSV) Delete(key string) error {
	table, err := d.Table()
	if err != nil {
		return err
	}

	header, ok := table.header()
	if !ok {
		return fmt.Errorf("%w: %s has no header", ErrFormatMismatch, d.source)
	}

	kept := lo.Reject(table.data(), func(row []string, _ int) bool {
		return len(row) > 0 && row[0] == key
	})
	removed := len(table.data()) - len(kept)
	if removed == 0 {
		return fmt.Errorf("%w: primary key %q", ErrRecordNotFound, key)
	}

	table.Rows = append([][]string{header}, kept...)
	if err := d.updateAndWrite(table); err != nil {
		return err
	}

	log.Infof("deleted %d row(s) with key %q from %s", removed, key, d.source)
	return nil
}

// Clone copies the source file and returns a driver sharing this table.
func (d *CSV) Clone() (Driver, error) {
	m, err := d.clone()
	if err != nil {
		return nil, err
	}
	return &CSV{manager: m}, nil
}

// Equal reports whether both drivers hold equal tables.
// Two unconnected drivers are equal.
func (d *CSV) Equal(other *CSV) bool {
	if d.format != other.format {
		return false
	}

	a, errA := d.Table()
	b, errB := other.Table()
	if errA != nil || errB != nil {
		return errA != nil && errB != nil
	}
	return a.Equal(b)
}

func (d *CSV) String() string {
	table, err := d.Table()
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, row := range table.Rows {
		b.WriteString(strings.Join(row, ", "))
		b.WriteByte('\n')
	}
	return b.String()
}
