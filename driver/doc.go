// Package driver provides uniform create, read, update and delete access to flat data files.
//
// # Drivers
//
// A driver is a thin handle bound to one source path. It owns no data: the parsed table
// lives in a [registry.Registry] and every call looks it up there. [CSV] and [JSON] are the
// two implementations of [Driver]; [Open] picks one from the file extension.
//
// # Lifecycle
//
// Connect parses the whole file into memory and registers the table under its path. A
// second Connect to the same path fails with [ErrAlreadyConnected] until the first handle
// calls Close. Every successful mutation rewrites the whole file before returning. A failed
// write is reported as [ErrIO] and leaves the in-memory table ahead of the file.
//
// # Cloning
//
// Clone copies the source file to a sibling named name_copy.ext and registers the same
// in-memory table under the new path. Both handles share that table until one of them is
// closed and reconnected.
//
// # File Formats
//
// CSV files are comma separated without quoting; line 1 is the header. JSON files hold a
// single array of flat objects with string values; the keys of the first object are the
// header.
package driver
