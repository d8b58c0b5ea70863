package dictionary

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/its-jojoo/anagramdex/internal/adapter/storage"
	"github.com/its-jojoo/anagramdex/internal/core"
)

// Service groups dictionary texts by their anagram key and answers
// anagram lookups. Diagnostics go to the injected logger; pass
// zerolog.Nop() to silence them.
type Service struct {
	store storage.Store
	log   zerolog.Logger
}

func New(store storage.Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Insert adds a literal text to the dictionary. It reports true when the
// text was newly added and false when it already existed in its group or
// carries no valid anagram key. Neither case mutates the store; only a
// storage failure yields an error.
func (s *Service) Insert(ctx context.Context, text string) (bool, error) {
	key, err := core.ComputeKey(text)
	if err != nil {
		s.log.Error().Str("text", text).Msg("failed to compute an anagram key")
		return false, nil
	}
	s.log.Debug().Str("text", text).Str("key", string(key)).Msg("computed anagram key")

	entry := core.Entry{
		ID:        uuid.NewString(),
		Text:      text,
		Key:       key,
		CreatedAt: s.store.Now(),
	}

	added, err := s.store.Put(ctx, entry)
	if err != nil {
		return false, err
	}

	if added {
		s.log.Debug().Str("text", text).Msg("inserted into the dictionary")
	} else {
		s.log.Debug().Str("text", text).Msg("already exists in the dictionary")
	}
	return added, nil
}

// Lookup returns every stored text sharing the query's anagram key,
// sorted, together with whether anything matched. The query itself is
// not inserted and need not exist in the dictionary. Queries without a
// valid key match nothing.
func (s *Service) Lookup(ctx context.Context, text string) ([]string, bool, error) {
	key, err := core.ComputeKey(text)
	if err != nil {
		s.log.Error().Str("text", text).Msg("failed to compute an anagram key")
		return nil, false, nil
	}

	group, err := s.store.Group(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	texts := make([]string, 0, len(group))
	for _, e := range group {
		texts = append(texts, e.Text)
	}
	return texts, true, nil
}

// Report runs a lookup and logs the outcome at info level, rendering
// matches as a bracketed list. It reports whether any matches existed.
func (s *Service) Report(ctx context.Context, text string) (bool, error) {
	matches, ok, err := s.Lookup(ctx, text)
	if err != nil {
		return false, err
	}

	if !ok {
		s.log.Info().Str("text", text).Msg("no matching anagrams were found")
		return false, nil
	}
	s.log.Info().Str("text", text).Str("matches", core.RenderGroup(matches)).Msg("matching anagrams")
	return true, nil
}
