package posts

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

// Manifest loads post manifests and caches them per path for the lifetime
// of the Manifest. Concurrent first calls for the same path both fetch.
type Manifest struct {
	fetcher  resource.Fetcher
	location string
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[string][]Record
}

// ManifestOption configures a Manifest.
type ManifestOption func(*Manifest)

// WithManifestLocation sets the page location manifest paths are resolved
// against.
func WithManifestLocation(location string) ManifestOption {
	return func(m *Manifest) {
		m.location = location
	}
}

// WithManifestLogger sets the logger.
func WithManifestLogger(l *slog.Logger) ManifestOption {
	return func(m *Manifest) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManifest creates a Manifest reading through fetcher.
func NewManifest(fetcher resource.Fetcher, opts ...ManifestOption) *Manifest {
	m := &Manifest{
		fetcher: fetcher,
		logger:  logger.Discard(),
		cache:   make(map[string][]Record),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fetch returns the records at path, newest first and unique by slug.
// The first call per path fetches bypassing caches; later calls return the
// same slice. A failed fetch or decode is logged and cached as an empty
// list so it is not retried.
func (m *Manifest) Fetch(ctx context.Context, path string) []Record {
	m.mu.Lock()
	cached, ok := m.cache[path]
	m.mu.Unlock()
	if ok {
		return cached
	}

	records, err := m.load(ctx, path)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to load posts", logger.Path(path), logger.Error(err))
		records = []Record{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.cache[path]; ok {
		return existing
	}
	m.cache[path] = records
	return records
}

func (m *Manifest) load(ctx context.Context, path string) ([]Record, error) {
	data, err := m.fetcher.Fetch(ctx, resource.Resolve(m.location, path), resource.CacheBypass)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrDecodeManifest, err)
	}
	if raw == nil {
		return nil, ErrDecodeManifest
	}

	// A malformed record is dropped on its own; the rest of the list stays.
	records := make([]Record, 0, len(raw))
	for i, item := range raw {
		var rec Record
		if err := json.Unmarshal(item, &rec); err != nil {
			m.logger.WarnContext(ctx, "malformed post skipped",
				logger.Path(path),
				slog.Int("index", i),
				logger.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}

	records = m.dedupe(ctx, path, records)
	slices.SortStableFunc(records, byDateDesc)
	return records, nil
}

func (m *Manifest) dedupe(ctx context.Context, path string, records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	return slices.DeleteFunc(records, func(r Record) bool {
		if r.Slug == "" {
			return false
		}
		if _, dup := seen[r.Slug]; dup {
			m.logger.WarnContext(ctx, "duplicate post slug dropped", logger.Path(path), slog.String("slug", r.Slug))
			return true
		}
		seen[r.Slug] = struct{}{}
		return false
	})
}
