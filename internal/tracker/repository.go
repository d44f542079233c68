// Package tracker holds the wellness entry collection, the entry form and the
// chart projections derived from it.
package tracker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ramanasai/mindtrack/internal/logging"
	"github.com/ramanasai/mindtrack/internal/wellness"
)

// EntryStore is the persistence the repository mirrors its collection to.
type EntryStore interface {
	Load(ctx context.Context) []wellness.Entry
	SaveAll(ctx context.Context, entries []wellness.Entry) error
}

// Repository owns the in-memory entry collection. The store is the source of
// truth: the collection is hydrated from it once and flushed to it after every append.
type Repository struct {
	mu      sync.RWMutex
	store   EntryStore
	entries []wellness.Entry
	log     *zap.Logger
}

func NewRepository(store EntryStore, log *zap.Logger) *Repository {
	return &Repository{store: store, log: logging.OrNop(log)}
}

// Load replaces the in-memory collection with the stored one.
func (r *Repository) Load(ctx context.Context) {
	entries := r.store.Load(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = entries
}

// Append adds e at the end of the collection and flushes the full list.
// The entry stays in memory even when the flush fails.
func (r *Repository) Append(ctx context.Context, e wellness.Entry) error {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	snapshot := append([]wellness.Entry(nil), r.entries...)
	r.mu.Unlock()

	if err := r.store.SaveAll(ctx, snapshot); err != nil {
		r.log.Warn("flush after append failed", zap.String("id", e.ID), zap.Error(err))
		return err
	}
	r.log.Debug("entry appended", zap.String("id", e.ID), zap.String("date", e.Date), zap.Int("count", len(snapshot)))
	return nil
}

// All returns the entries in insertion order.
func (r *Repository) All() []wellness.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]wellness.Entry{}, r.entries...)
}

// Recent returns the entries most recently submitted first.
func (r *Repository) Recent() []wellness.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]wellness.Entry, len(r.entries))
	for i, e := range r.entries {
		out[len(r.entries)-1-i] = e
	}
	return out
}

// Latest returns the last appended entry.
func (r *Repository) Latest() (wellness.Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.entries) == 0 {
		return wellness.Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
