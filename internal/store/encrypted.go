package store

import (
	"context"
	"fmt"

	"github.com/ramanasai/mindtrack/internal/encryption"
)

// EncryptedSlot seals payloads before handing them to the wrapped slot.
type EncryptedSlot struct {
	inner Slot
	enc   *encryption.Encryptor
}

func NewEncryptedSlot(inner Slot, enc *encryption.Encryptor) *EncryptedSlot {
	return &EncryptedSlot{inner: inner, enc: enc}
}

func (s *EncryptedSlot) Get(ctx context.Context) ([]byte, error) {
	sealed, err := s.inner.Get(ctx)
	if err != nil {
		return nil, err
	}
	plain, err := s.enc.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("open sealed slot: %w", err)
	}
	return plain, nil
}

func (s *EncryptedSlot) Put(ctx context.Context, payload []byte) error {
	sealed, err := s.enc.Seal(payload)
	if err != nil {
		return err
	}
	return s.inner.Put(ctx, sealed)
}
