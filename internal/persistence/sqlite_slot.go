package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const slotSchema = `
CREATE TABLE IF NOT EXISTS kv_slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteSlot keeps the slot as one row of a key-value table.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

func OpenSQLiteSlot(path string) (*SQLiteSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(slotSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slot table: %w", err)
	}
	return &SQLiteSlot{db: db, key: SlotKey}, nil
}

func (s *SQLiteSlot) Read() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM kv_slots WHERE key = ?`, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, err
	}
	return data, nil
}

func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv_slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, data, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteSlot) Remove() error {
	_, err := s.db.Exec(`DELETE FROM kv_slots WHERE key = ?`, s.key)
	return err
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
