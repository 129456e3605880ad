// Package defs serves short word definitions from the defs table, used
// for the post-game "what does that word mean" popups.
package defs

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Lookup returns the stored definition for word, or "" when there is none.
// Keys are stored uppercase.
func (s *Store) Lookup(ctx context.Context, word string) (string, error) {
	var def string
	err := s.db.QueryRowContext(ctx,
		"SELECT definition FROM defs WHERE word=?",
		strings.ToUpper(strings.TrimSpace(word)),
	).Scan(&def)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return def, err
}

// Count reports how many definitions are loaded.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM defs").Scan(&n)
	return n, err
}

// Seed loads the given glossary into an empty defs table.
// A table that already has rows is left alone.
func (s *Store) Seed(ctx context.Context, glossary map[string]string) error {
	n, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for word, def := range glossary {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO defs(word, definition) VALUES(?,?)",
			strings.ToUpper(word), def,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}
