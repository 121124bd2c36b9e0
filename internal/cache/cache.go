package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type State string

const (
	StateAbsent   State = "ABSENT"
	StateLoading  State = "LOADING"
	StateResolved State = "RESOLVED"
	StateFailed   State = "FAILED"
)

// Entry is a snapshot of one cache slot. Value is set only when State is
// RESOLVED; Err only when State is FAILED.
type Entry struct {
	State State
	Value any
	Err   error
}

// Loader fetches the value for one key. At most one loader per key is in
// flight at any time.
type Loader func(ctx context.Context) (any, error)

// Metrics receives cache events. Implementations must be safe for
// concurrent use.
type Metrics interface {
	Hit(collection string)
	Miss(collection string)
	LoadFinished(collection string, ok bool)
}

type nopMetrics struct{}

func (nopMetrics) Hit(string)                {}
func (nopMetrics) Miss(string)               {}
func (nopMetrics) LoadFinished(string, bool) {}

// NopMetrics discards all cache events.
var NopMetrics Metrics = nopMetrics{}

type key struct {
	collection string
	id         string
}

func (k key) String() string {
	return k.collection + "/" + k.id
}

// Store is the per-session keyed entity cache. Entries have no TTL and are
// never evicted automatically; they live until explicit invalidation or
// session teardown.
type Store struct {
	mu      sync.RWMutex
	entries map[key]Entry
	group   singleflight.Group
	metrics Metrics
	logger  *zap.Logger
}

func NewStore(metrics Metrics, logger *zap.Logger) *Store {
	if metrics == nil {
		metrics = NopMetrics
	}
	return &Store{
		entries: make(map[key]Entry),
		metrics: metrics,
		logger:  logger,
	}
}

// Ensure returns the cached value for (collection, id), fetching it with
// loader if the entry is absent or failed. Concurrent callers for the same
// key share a single in-flight loader; a resolved entry short-circuits
// without invoking the loader at all.
func (s *Store) Ensure(ctx context.Context, collection, id string, loader Loader) (any, error) {
	k := key{collection: collection, id: id}

	s.mu.Lock()
	entry := s.entries[k]
	if entry.State == StateResolved {
		s.mu.Unlock()
		s.metrics.Hit(collection)
		return entry.Value, nil
	}
	if entry.State != StateLoading {
		s.entries[k] = Entry{State: StateLoading}
	}
	s.mu.Unlock()

	s.metrics.Miss(collection)

	value, err, _ := s.group.Do(k.String(), func() (any, error) {
		return loader(ctx)
	})

	// A resolution arriving after Invalidate still writes into the shared
	// store; last write wins.
	s.mu.Lock()
	if err != nil {
		s.entries[k] = Entry{State: StateFailed, Err: err}
	} else {
		s.entries[k] = Entry{State: StateResolved, Value: value}
	}
	s.mu.Unlock()

	s.metrics.LoadFinished(collection, err == nil)

	if err != nil {
		s.logger.Warn("cache load failed",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return nil, err
	}
	return value, nil
}

// Get reads the current entry synchronously. It never triggers a fetch.
func (s *Store) Get(collection, id string) Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key{collection: collection, id: id}]
	if !ok {
		return Entry{State: StateAbsent}
	}
	return entry
}

// Invalidate resets the entry to absent; the next Ensure re-fetches.
func (s *Store) Invalidate(collection, id string) {
	k := key{collection: collection, id: id}
	s.mu.Lock()
	delete(s.entries, k)
	s.mu.Unlock()
	s.group.Forget(k.String())
}

// InvalidateCollection drops every entry of one collection.
func (s *Store) InvalidateCollection(collection string) {
	s.mu.Lock()
	for k := range s.entries {
		if k.collection == collection {
			delete(s.entries, k)
			s.group.Forget(k.String())
		}
	}
	s.mu.Unlock()
}

// Clear drops every entry. Called on session teardown.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = make(map[key]Entry)
	s.mu.Unlock()
}
