package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ramanasai/mindtrack/internal/db"
	"github.com/ramanasai/mindtrack/internal/encryption"
)

// Backend names accepted by OpenSlot.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Options selects and configures a slot backend.
type Options struct {
	Backend    string
	Dir        string
	Name       string
	Passphrase string
}

// OpenSlot builds the slot described by opts. The returned close func releases
// any database handle and is never nil.
func OpenSlot(opts Options) (Slot, func() error, error) {
	name := opts.Name
	if name == "" {
		name = DefaultSlot
	}
	noop := func() error { return nil }

	var (
		slot    Slot
		closeFn = noop
	)
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendFile:
		slot = NewFileSlot(opts.Dir, name)
	case BackendSQLite:
		dbh, err := db.Open(filepath.Join(opts.Dir, "mindtrack.db"))
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite slot: %w", err)
		}
		slot = NewSQLiteSlot(dbh, name)
		closeFn = closer(dbh)
	case BackendMemory:
		slot = NewMemorySlot()
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q (want file, sqlite or memory)", opts.Backend)
	}

	if opts.Passphrase != "" {
		enc, err := encryption.NewEncryptor(opts.Passphrase, filepath.Join(opts.Dir, "salt"))
		if err != nil {
			_ = closeFn()
			return nil, noop, err
		}
		slot = NewEncryptedSlot(slot, enc)
	}
	return slot, closeFn, nil
}

func closer(dbh *sql.DB) func() error {
	return func() error { return dbh.Close() }
}
