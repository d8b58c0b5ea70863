package storage

import (
	"context"
	"errors"
	"time"

	"github.com/its-jojoo/anagramdex/internal/core"
)

var ErrNotFound = errors.New("not found")

// Store keeps dictionary entries grouped by their anagram key.
// Groups never hold the same literal text twice and are returned sorted
// by text; Keys returns keys sorted lexicographically.
type Store interface {
	// Put adds an entry under entry.Key. It reports true when the text
	// was newly added and false when the same literal text already sat
	// in that group (no mutation then).
	Put(ctx context.Context, entry core.Entry) (bool, error)

	// Group returns the entries sharing key, sorted by text.
	// ErrNotFound when no entry has that key.
	Group(ctx context.Context, key core.Key) ([]core.Entry, error)

	// Keys lists every key that currently has at least one entry.
	Keys(ctx context.Context) ([]core.Key, error)

	// Delete removes the literal text from the group for key and drops
	// the group once emptied. ErrNotFound when no such entry exists.
	Delete(ctx context.Context, key core.Key, text string) error

	Count(ctx context.Context) (int, error)
	Now() time.Time
}
