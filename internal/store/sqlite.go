package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ramanasai/mindtrack/internal/db"
)

// SQLiteSlot stores the payload as one row of the slots table.
type SQLiteSlot struct {
	dbh  *sql.DB
	name string
	now  func() time.Time
}

func NewSQLiteSlot(dbh *sql.DB, name string) *SQLiteSlot {
	return &SQLiteSlot{dbh: dbh, name: name, now: time.Now}
}

func (s *SQLiteSlot) Get(ctx context.Context) ([]byte, error) {
	b, err := db.GetSlot(ctx, s.dbh, s.name)
	if errors.Is(err, db.ErrNoSlot) {
		return nil, ErrSlotEmpty
	}
	return b, err
}

func (s *SQLiteSlot) Put(ctx context.Context, payload []byte) error {
	return db.PutSlot(ctx, s.dbh, s.name, payload, s.now())
}
