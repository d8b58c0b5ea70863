package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/its-jojoo/anagramdex/internal/adapter/storage"
	"github.com/its-jojoo/anagramdex/internal/core"
)

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL; PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error   { return s.db.Close() }
func (s *Store) Now() time.Time { return s.now() }

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS entries (
  id         TEXT PRIMARY KEY,
  text       TEXT NOT NULL,
  key        TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  UNIQUE(key, text)
);

CREATE INDEX IF NOT EXISTS idx_entries_key ON entries(key);
`)
	return err
}

func (s *Store) Put(ctx context.Context, entry core.Entry) (bool, error) {
	if entry.ID == "" {
		return false, errors.New("entry ID required")
	}
	if entry.Key == "" {
		return false, errors.New("entry key required")
	}

	// UNIQUE(key, text) makes the duplicate insert a no-op
	res, err := s.db.ExecContext(ctx, `
INSERT OR IGNORE INTO entries(id, text, key, created_at)
VALUES(?, ?, ?, ?)
`, entry.ID, entry.Text, string(entry.Key), entry.CreatedAt.UnixMilli())
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Group(ctx context.Context, key core.Key) ([]core.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, text, key, created_at
FROM entries
WHERE key = ?
ORDER BY text
`, string(key))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Entry
	for rows.Next() {
		var e core.Entry
		var k string
		var cAt int64

		if err := rows.Scan(&e.ID, &e.Text, &k, &cAt); err != nil {
			return nil, err
		}
		e.Key = core.Key(k)
		e.CreatedAt = time.UnixMilli(cAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, storage.ErrNotFound
	}
	return out, nil
}

func (s *Store) Keys(ctx context.Context) ([]core.Key, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT DISTINCT key FROM entries ORDER BY key
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Key
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		out = append(out, core.Key(k))
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, key core.Key, text string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE key=? AND text=?`, string(key), text)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM entries`)
	var n int
	return n, row.Scan(&n)
}
