package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/multidriver/multidriver/constant"
	"github.com/multidriver/multidriver/format"
	"github.com/multidriver/multidriver/log"
	"github.com/multidriver/multidriver/registry"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// JSONTable is a parsed JSON array. Rows[0] is both a record and the header.
type JSONTable struct {
	Rows []*Object
}

// Equal reports whether both tables hold similar records in the same order.
func (t *JSONTable) Equal(other *JSONTable) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.Rows) != len(other.Rows) {
		return false
	}
	for i := range t.Rows {
		if !Similar(t.Rows[i], other.Rows[i]) {
			return false
		}
	}
	return true
}

func (t *JSONTable) header() (*Object, bool) {
	if len(t.Rows) == 0 {
		return nil, false
	}
	return t.Rows[0], true
}

type jsonCodec struct{}

func (jsonCodec) decode(data []byte) (*JSONTable, error) {
	table := &JSONTable{Rows: []*Object{}}
	if len(bytes.TrimSpace(data)) == 0 {
		return table, nil
	}

	if err := json.Unmarshal(data, &table.Rows); err != nil {
		return nil, fmt.Errorf("%w: expected an array of flat objects with string values: %w", ErrFormatMismatch, err)
	}

	for i, row := range table.Rows {
		if row == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrFormatMismatch, i)
		}
	}
	if table.Rows == nil {
		table.Rows = []*Object{}
	}
	return table, nil
}

func (jsonCodec) encode(table *JSONTable) ([]byte, error) {
	rows := table.Rows
	if rows == nil {
		rows = []*Object{}
	}

	compact := []byte{'['}
	for i, row := range rows {
		if i > 0 {
			compact = append(compact, ',')
		}
		data, err := marshalObject(row)
		if err != nil {
			return nil, err
		}
		compact = append(compact, data...)
	}
	compact = append(compact, ']')

	var b bytes.Buffer
	if err := json.Indent(&b, compact, "", constant.JSONIndent); err != nil {
		return nil, err
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// JSON is a driver for files holding an array of flat objects.
// Records are matched by their full content rather than by a key.
type JSON struct {
	manager[*JSONTable]
}

// NewJSON returns an unconnected JSON driver backed by reg, or by the global registry if reg is nil.
func NewJSON(reg *registry.Registry) *JSON {
	return &JSON{manager: newManager[*JSONTable](reg, jsonCodec{})}
}

// OpenJSON returns a JSON driver connected to source.
func OpenJSON(reg *registry.Registry, source string) (*JSON, error) {
	d := NewJSON(reg)
	if err := d.Connect(source); err != nil {
		return nil, err
	}
	return d, nil
}

// Connect parses source as JSON, whatever its extension, and registers the table.
func (d *JSON) Connect(source string) error {
	return d.connect(source, format.JSON)
}

func (d *JSON) headerObject() (*JSONTable, *Object, error) {
	table, err := d.Table()
	if err != nil {
		return nil, nil, err
	}

	header, ok := table.header()
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s is empty, no header to match", ErrFormatMismatch, d.source)
	}
	return table, header, nil
}

// Header returns the keys of the first record.
func (d *JSON) Header() ([]string, error) {
	_, header, err := d.headerObject()
	if err != nil {
		return nil, err
	}
	return Keys(header), nil
}

// Len returns the number of records.
func (d *JSON) Len() (int, error) {
	table, err := d.Table()
	if err != nil {
		return 0, err
	}
	return len(table.Rows), nil
}

// Create builds a record from "key:value" tokens and appends it. The record
// must have exactly the header's keys and must not be similar to an existing one.
func (d *JSON) Create(tokens ...string) error {
	table, header, err := d.headerObject()
	if err != nil {
		return err
	}

	record, err := Process(tokens...)
	if err != nil {
		return err
	}

	if !SameKeys(header, record) {
		return fmt.Errorf("%w: keys %v do not match header %v", ErrFormatMismatch, Keys(record), Keys(header))
	}

	if lo.ContainsBy(table.Rows, func(row *Object) bool {
		return Similar(row, record)
	}) {
		log.Warnf("create in %s: duplicate record %v", d.source, Values(record))
		return fmt.Errorf("%w: %v", ErrDuplicateRecord, Values(record))
	}

	// Store keys in header order so the file stays uniform.
	aligned := NewObject()
	for _, k := range Keys(header) {
		v, _ := record.Get(k)
		aligned.Set(k, v)
	}

	table.Rows = append(table.Rows, aligned)
	return d.updateAndWrite(table)
}

// Read returns the first record whose field equals value.
// Only a field missing from the header is an error.
func (d *JSON) Read(field, value string) (mo.Option[Match], error) {
	table, header, err := d.headerObject()
	if err != nil {
		return mo.None[Match](), err
	}

	if _, ok := header.Get(field); !ok {
		return mo.None[Match](), fieldNotFound(field, Keys(header))
	}

	row, i, ok := lo.FindIndexOf(table.Rows, func(row *Object) bool {
		v, ok := row.Get(field)
		return ok && v == value
	})
	if !ok {
		log.Debugf("read %s: no record with %s=%q", d.source, field, value)
		return mo.None[Match](), nil
	}

	return mo.Some(Match{
		Index:  i,
		Fields: Keys(row),
		Values: Values(row),
		Value:  value,
	}), nil
}

// Update overwrites fieldToMatch in the first record where it equals valueToMatch.
func (d *JSON) Update(fieldToMatch, valueToMatch, newValue string) error {
	table, err := d.Table()
	if err != nil {
		return err
	}

	row, _, ok := lo.FindIndexOf(table.Rows, func(row *Object) bool {
		v, ok := row.Get(fieldToMatch)
		return ok && v == valueToMatch
	})
	if !ok {
		return fmt.Errorf("%w: no record with %s=%q", ErrRecordNotFound, fieldToMatch, valueToMatch)
	}

	row.Set(fieldToMatch, newValue)
	if err := d.updateAndWrite(table); err != nil {
		return err
	}

	log.Infof("updated %s: %s %q -> %q", d.source, fieldToMatch, valueToMatch, newValue)
	return nil
}

// Delete removes the first record similar to the one built from tokens.
func (d *JSON) Delete(tokens ...string) error {
	table, err := d.Table()
	if err != nil {
		return err
	}

	target, err := Process(tokens...)
	if err != nil {
		return err
	}

	_, i, ok := lo.FindIndexOf(table.Rows, func(row *Object) bool {
		return Similar(row, target)
	})
	if !ok {
		return fmt.Errorf("%w: %v", ErrRecordNotFound, Values(target))
	}

	table.Rows = slices.Delete(table.Rows, i, i+1)
	if err := d.updateAndWrite(table); err != nil {
		return err
	}

	log.Infof("deleted record %d from %s", i, d.source)
	return nil
}

// Clone copies the source file and returns a driver sharing this table.
func (d *JSON) Clone() (Driver, error) {
	m, err := d.clone()
	if err != nil {
		return nil, err
	}
	return &JSON{manager: m}, nil
}

// Equal reports whether both drivers hold equal tables.
// Two unconnected drivers are equal.
func (d *JSON) Equal(other *JSON) bool {
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

func (d *JSON) String() string {
	table, err := d.Table()
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, row := range table.Rows {
		data, err := marshalObject(row)
		if err != nil {
			continue
		}
		b.Write(data)
		b.WriteByte('\n')
	}
	return b.String()
}
