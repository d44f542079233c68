package store

import (
	"context"
	"errors"
	"sync"
)

// ErrSlotEmpty is returned by Slot.Get when nothing has been written yet.
var ErrSlotEmpty = errors.New("slot is empty")

// DefaultSlot is the name the entry collection is stored under.
const DefaultSlot = "wellnessEntries"

// Slot is a single named key-value cell. Put fully overwrites the previous payload.
type Slot interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, payload []byte) error
}

// MemorySlot keeps the payload in process memory.
type MemorySlot struct {
	mu      sync.Mutex
	payload []byte
	set     bool
}

func NewMemorySlot() *MemorySlot { return &MemorySlot{} }

func (s *MemorySlot) Get(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), s.payload...), nil
}

func (s *MemorySlot) Put(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = append([]byte(nil), payload...)
	s.set = true
	return nil
}
