// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Every driver reads and writes its source through this package, so tests can swap the
// operating system for an in-memory backend without touching the driver code.
package filesystem

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// CopyFile copies src to dst byte for byte. It refuses to overwrite an existing dst.
func CopyFile(src, dst string) error {
	in, err := backend.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := backend.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = backend.Remove(dst)
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	return out.Close()
}
