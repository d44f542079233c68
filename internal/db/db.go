package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrNoSlot is returned by GetSlot when the named slot has never been written.
var ErrNoSlot = errors.New("slot not found")

// Open opens (creating if needed) the sqlite database at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	if err := EnsureUpdatedAtColumn(db); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

// EnsureUpdatedAtColumn adds slots.updated_at to databases created before it existed.
func EnsureUpdatedAtColumn(db *sql.DB) error {
	rows, err := db.Query(`PRAGMA table_info(slots)`)
	if err != nil {
		return err
	}
	defer rows.Close()

	need := true
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		if strings.EqualFold(name, "updated_at") {
			need = false
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if !need {
		return nil
	}
	if _, err := db.Exec(`ALTER TABLE slots ADD COLUMN updated_at TEXT`); err != nil {
		return fmt.Errorf("add updated_at: %w", err)
	}
	return nil
}

// GetSlot returns the payload stored under name.
func GetSlot(ctx context.Context, dbh *sql.DB, name string) ([]byte, error) {
	var payload []byte
	err := dbh.QueryRowContext(ctx, `SELECT payload FROM slots WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSlot
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", name, err)
	}
	return payload, nil
}

// PutSlot overwrites the payload stored under name.
func PutSlot(ctx context.Context, dbh *sql.DB, name string, payload []byte, at time.Time) error {
	_, err := dbh.ExecContext(ctx, `
		INSERT INTO slots (name, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, name, payload, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("write slot %q: %w", name, err)
	}
	return nil
}

// SlotUpdatedAt reports when name was last written.
func SlotUpdatedAt(ctx context.Context, dbh *sql.DB, name string) (time.Time, error) {
	var ts sql.NullString
	err := dbh.QueryRowContext(ctx, `SELECT updated_at FROM slots WHERE name = ?`, name).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSlot
	}
	if err != nil {
		return time.Time{}, err
	}
	if !ts.Valid {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, ts.String)
}
