package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/multidriver/multidriver/constant"
	"github.com/multidriver/multidriver/filesystem"
	"github.com/multidriver/multidriver/format"
	"github.com/multidriver/multidriver/log"
	"github.com/multidriver/multidriver/registry"
)

// codec converts between file bytes and the in-memory table of one format.
type codec[T any] interface {
	decode(data []byte) (T, error)
	encode(table T) ([]byte, error)
}

// manager implements the connection lifecycle shared by all formats.
// Format specific drivers embed it and add the record operations.
type manager[T any] struct {
	registry *registry.Registry
	source   string
	format   format.Format
	codec    codec[T]
}

func newManager[T any](reg *registry.Registry, c codec[T]) manager[T] {
	if reg == nil {
		reg = registry.Global()
	}
	return manager[T]{registry: reg, codec: c}
}

// Source returns the path the driver is bound to, or "" before Connect.
func (m *manager[T]) Source() string {
	return m.source
}

// Format returns the format fixed at connect time.
func (m *manager[T]) Format() format.Format {
	return m.format
}

// Registry returns the registry holding the driver's table.
func (m *manager[T]) Registry() *registry.Registry {
	return m.registry
}

func (m *manager[T]) connect(source string, f format.Format) error {
	if m.source != "" && m.registry.Contains(m.source) {
		log.Warnf("connect %s: handle still bound to %s", source, m.source)
		return fmt.Errorf("%w: handle still bound to %s, close it first", ErrAlreadyConnected, m.source)
	}

	if m.registry.Contains(source) {
		log.Warnf("connection to %s already exists", source)
		return fmt.Errorf("%w: %s", ErrAlreadyConnected, source)
	}

	// The handle stays bound after a parse failure so that later calls report
	// ErrNotConnected for this source.
	m.source, m.format = source, f

	table, err := m.retrieveData()
	if err != nil {
		log.Errorf("connect %s: %s", source, err)
		return err
	}

	if !m.registry.AddIfAbsent(source, table) {
		log.Warnf("connection to %s was opened concurrently", source)
		m.source = ""
		return fmt.Errorf("%w: %s", ErrAlreadyConnected, source)
	}

	log.Infof("connected to %s as %s", source, f)
	return nil
}

// Close evicts the table from the registry.
// Closing a source that is not registered returns ErrNotConnected and changes nothing.
func (m *manager[T]) Close() error {
	if !m.registry.Contains(m.source) {
		log.Warnf("close %q: no table registered", m.source)
		return fmt.Errorf("%w: %q", ErrNotConnected, m.source)
	}

	m.registry.Remove(m.source)
	log.Infof("closed %s", m.source)
	return nil
}

// Table returns the registered table. It is shared: mutations are visible to
// every handle bound to the same table.
func (m *manager[T]) Table() (T, error) {
	var zero T

	if m.source == "" {
		return zero, fmt.Errorf("%w: no source", ErrNotConnected)
	}

	value, ok := m.registry.Get(m.source)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotConnected, m.source)
	}

	table, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds a %T table", ErrFormatMismatch, m.source, value)
	}
	return table, nil
}

// Write persists the registered table to the source file.
func (m *manager[T]) Write() error {
	table, err := m.Table()
	if err != nil {
		return err
	}
	return m.write(table)
}

// updateAndWrite replaces the registered table and persists it. It is the only
// way a mutation becomes durable.
func (m *manager[T]) updateAndWrite(table T) error {
	m.registry.Add(m.source, table)
	return m.write(table)
}

func (m *manager[T]) write(table T) error {
	data, err := m.codec.encode(table)
	if err != nil {
		log.Errorf("encode %s: %s", m.source, err)
		return fmt.Errorf("%w: encode %s: %w", ErrIO, m.source, err)
	}

	if err := filesystem.API().WriteFile(m.source, data, 0o644); err != nil {
		log.Errorf("write %s: %s", m.source, err)
		return fmt.Errorf("%w: write %s: %w", ErrIO, m.source, err)
	}

	log.Debugf("persisted %s (%d bytes)", m.source, len(data))
	return nil
}

func (m *manager[T]) retrieveData() (T, error) {
	var zero T

	exists, err := filesystem.API().Exists(m.source)
	if err != nil {
		return zero, fmt.Errorf("%w: stat %s: %w", ErrIO, m.source, err)
	}
	if !exists {
		return zero, fmt.Errorf("%w: %s", ErrPathNotFound, m.source)
	}

	data, err := filesystem.API().ReadFile(m.source)
	if err != nil {
		return zero, fmt.Errorf("%w: read %s: %w", ErrIO, m.source, err)
	}

	table, err := m.codec.decode(data)
	if err != nil {
		return zero, fmt.Errorf("parse %s: %w", m.source, err)
	}
	return table, nil
}

// clone copies the source file and registers the current table, not a copy of
// it, under the new path. The returned manager is bound to that path.
func (m *manager[T]) clone() (manager[T], error) {
	table, err := m.Table()
	if err != nil {
		return manager[T]{}, err
	}

	exists, err := filesystem.API().Exists(m.source)
	if err != nil {
		return manager[T]{}, fmt.Errorf("%w: stat %s: %w", ErrIO, m.source, err)
	}
	if !exists {
		return manager[T]{}, fmt.Errorf("%w: %s", ErrPathNotFound, m.source)
	}

	target := copyPath(m.source)
	if err := filesystem.CopyFile(m.source, target); err != nil {
		log.Errorf("clone %s: %s", m.source, err)
		return manager[T]{}, fmt.Errorf("%w: %w", ErrIO, err)
	}

	m.registry.Add(target, table)
	log.Infof("cloned %s to %s", m.source, target)

	return manager[T]{
		registry: m.registry,
		source:   target,
		format:   m.format,
		codec:    m.codec,
	}, nil
}

// copyPath inserts the copy suffix before the last extension of source,
// or appends it when there is none.
func copyPath(source string) string {
	dir, name := filepath.Split(source)

	ext := filepath.Ext(name)
	if ext == "." {
		ext = ""
	}

	return dir + strings.TrimSuffix(name, ext) + constant.CopySuffix + ext
}
