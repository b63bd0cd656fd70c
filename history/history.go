// Package history remembers the sources opened from the command line.
package history

import (
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/multidriver/multidriver/filesystem"
	"github.com/multidriver/multidriver/where"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Entry is one remembered source.
type Entry struct {
	Source string    `json:"source"`
	Format string    `json:"format"`
	Opened time.Time `json:"opened"`
	Count  int       `json:"count"`
}

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func load() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Remember records that source was opened with the given format.
func Remember(source, format string) error {
	saved, err := load()
	if err != nil {
		return err
	}

	entry, ok := saved[source]
	if !ok {
		entry = &Entry{Source: source}
		saved[source] = entry
	}
	entry.Format = format
	entry.Opened = time.Now()
	entry.Count++

	return cacher.Set(saved)
}

// Get returns every remembered source, most recently opened first.
func Get() ([]*Entry, error) {
	saved, err := load()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.Opened.Compare(a.Opened)
	})
	return entries, nil
}

// Search returns the remembered sources whose path fuzzily matches query.
func Search(query string) ([]*Entry, error) {
	entries, err := Get()
	if err != nil {
		return nil, err
	}

	return lo.Filter(entries, func(e *Entry, _ int) bool {
		return fuzzy.MatchFold(query, e.Source)
	}), nil
}

// Forget removes source from the history.
func Forget(source string) error {
	saved, err := load()
	if err != nil {
		return err
	}

	delete(saved, source)
	return cacher.Set(saved)
}
