package resource

import (
	"context"
	"errors"
	"sync"
)

// MapFetcher serves references from memory and counts requests per
// reference. Keys are fs-style paths ("partials/header.html").
type MapFetcher struct {
	mu    sync.Mutex
	files map[string]string
	fails map[string]error
	hits  map[string]int
}

// NewMapFetcher returns a fetcher over files.
func NewMapFetcher(files map[string]string) *MapFetcher {
	m := &MapFetcher{
		files: make(map[string]string, len(files)),
		fails: make(map[string]error),
		hits:  make(map[string]int),
	}
	for k, v := range files {
		m.files[fsPath(k)] = v
	}
	return m
}

// Set adds or replaces a file.
func (m *MapFetcher) Set(name, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[fsPath(name)] = content
}

// Fail makes every fetch of name return err.
func (m *MapFetcher) Fail(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fails[fsPath(name)] = err
}

func (m *MapFetcher) Fetch(ctx context.Context, ref string, _ CacheMode) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	name := fsPath(ref)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits[name]++
	if err, ok := m.fails[name]; ok {
		return nil, err
	}
	content, ok := m.files[name]
	if !ok {
		return nil, notFound(ref)
	}
	return []byte(content), nil
}

// Hits returns how many times name was requested.
func (m *MapFetcher) Hits(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits[fsPath(name)]
}

// TotalHits returns the number of requests across all names.
func (m *MapFetcher) TotalHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.hits {
		total += n
	}
	return total
}
