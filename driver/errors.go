package driver

import (
	"errors"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Failure classes. Every error returned by a driver wraps exactly one of them.
var (
	ErrPathNotFound      = errors.New("path not found")
	ErrFormatMismatch    = errors.New("record does not match the table format")
	ErrFieldNotFound     = errors.New("field not found")
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateRecord   = errors.New("duplicate record")
	ErrIO                = errors.New("i/o failure")
	ErrNotConnected      = errors.New("not connected")
	ErrAlreadyConnected  = errors.New("already connected")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// fieldNotFound reports name as missing and suggests the closest known field.
func fieldNotFound(name string, fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}

	closest := lo.MinBy(fields, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf("%w: %q, did you mean %q?", ErrFieldNotFound, name, closest)
}
