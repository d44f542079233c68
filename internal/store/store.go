// Package store persists the wellness entry collection in a single named slot.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ramanasai/mindtrack/internal/logging"
	"github.com/ramanasai/mindtrack/internal/wellness"
)

// Store serializes the whole entry list into a Slot.
type Store struct {
	slot Slot
	log  *zap.Logger
}

func New(slot Slot, log *zap.Logger) *Store {
	return &Store{slot: slot, log: logging.OrNop(log)}
}

// Load returns the stored entries. A missing, unreadable or malformed payload
// yields an empty list.
func (s *Store) Load(ctx context.Context) []wellness.Entry {
	b, err := s.slot.Get(ctx)
	if errors.Is(err, ErrSlotEmpty) {
		s.log.Debug("no stored entries")
		return []wellness.Entry{}
	}
	if err != nil {
		s.log.Warn("entry slot unreadable, starting empty", zap.Error(err))
		return []wellness.Entry{}
	}

	entries, err := decode(b)
	if err != nil {
		s.log.Warn("entry slot malformed, starting empty", zap.Error(err), zap.Int("bytes", len(b)))
		return []wellness.Entry{}
	}
	s.log.Debug("entries loaded", zap.Int("count", len(entries)))
	return entries
}

// SaveAll overwrites the slot with entries.
func (s *Store) SaveAll(ctx context.Context, entries []wellness.Entry) error {
	if entries == nil {
		entries = []wellness.Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	if err := s.slot.Put(ctx, b); err != nil {
		return fmt.Errorf("flush entries: %w", err)
	}
	return nil
}

// decode accepts only a JSON array of entry objects.
func decode(b []byte) ([]wellness.Entry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	entries := make([]wellness.Entry, 0, len(raw))
	for i, r := range raw {
		var e wellness.Entry
		if err := json.Unmarshal(r, &e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
