package driver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/multidriver/multidriver/constant"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is one JSON record. Keys keep the order they were read or set in.
type Object = orderedmap.OrderedMap[string, string]

// NewObject returns an empty record.
func NewObject() *Object {
	return orderedmap.New[string, string]()
}

// Process builds a record from "key:value" tokens. Each token is split on its
// first colon and both halves are trimmed. A later duplicate key overwrites an
// earlier one. If any token is malformed, no record is returned and the error
// lists every malformed token.
func Process(tokens ...string) (*Object, error) {
	record := NewObject()

	var errs []error
	for _, token := range tokens {
		k, v, ok := strings.Cut(token, constant.TokenSeparator)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: malformed token %q, expected key%svalue", ErrFormatMismatch, token, constant.TokenSeparator))
			continue
		}
		record.Set(strings.TrimSpace(k), strings.TrimSpace(v))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return record, nil
}

// Keys returns the keys of o in order.
func Keys(o *Object) []string {
	keys := make([]string, 0, o.Len())
	for pair := o.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Values returns the values of o in key order.
func Values(o *Object) []string {
	values := make([]string, 0, o.Len())
	for pair := o.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}
	return values
}

// SameKeys reports whether a and b have the same key set, in any order.
func SameKeys(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	for pair := a.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := b.Get(pair.Key); !ok {
			return false
		}
	}
	return true
}

// Similar reports whether a and b hold the same key/value pairs, in any order.
func Similar(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	for pair := a.Oldest(); pair != nil; pair = pair.Next() {
		if v, ok := b.Get(pair.Key); !ok || v != pair.Value {
			return false
		}
	}
	return true
}

// marshalObject renders o as compact JSON in key order. Unlike the map's own
// MarshalJSON it leaves <, > and & unescaped.
func marshalObject(o *Object) ([]byte, error) {
	var b bytes.Buffer
	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)

	b.WriteByte('{')
	for pair := o.Oldest(); pair != nil; pair = pair.Next() {
		if pair != o.Oldest() {
			b.WriteByte(',')
		}
		if err := encoder.Encode(pair.Key); err != nil {
			return nil, err
		}
		b.Truncate(b.Len() - 1)
		b.WriteByte(':')
		if err := encoder.Encode(pair.Value); err != nil {
			return nil, err
		}
		b.Truncate(b.Len() - 1)
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}
