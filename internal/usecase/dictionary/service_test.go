package dictionary

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/its-jojoo/anagramdex/internal/adapter/storage/memory"
)

func newTestService() *Service {
	return New(memory.New(), zerolog.Nop())
}

func seed(t *testing.T, svc *Service, words ...string) {
	t.Helper()
	for _, w := range words {
		added, err := svc.Insert(context.Background(), w)
		require.NoError(t, err)
		require.True(t, added, "seed word %q", w)
	}
}

func TestInsert_Idempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	added, err := svc.Insert(ctx, "dog")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.Insert(ctx, "dog")
	require.NoError(t, err)
	assert.False(t, added)

	matches, ok, err := svc.Lookup(ctx, "dog")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"dog"}, matches)
}

func TestInsert_RejectsSymbolOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	added, err := svc.Insert(ctx, "###")
	require.NoError(t, err)
	assert.False(t, added)

	_, ok, err := svc.Lookup(ctx, "###")
	require.NoError(t, err)
	assert.False(t, ok, "nothing is an anagram of pure punctuation")
}

func TestLookup_CaseAndPunctuationInvariant(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seed(t, svc, "Kayak", "kayak")

	matches, ok, err := svc.Lookup(ctx, "KAYAK")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Kayak", "kayak"}, matches)
}

func TestLookup_UnknownWord(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seed(t, svc, "bob", "god", "act", "dog")

	_, ok, err := svc.Lookup(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookup_Pure(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seed(t, svc, "god", "dog")

	first, ok, err := svc.Lookup(ctx, "GOD")
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		again, ok, err := svc.Lookup(ctx, "GOD")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestLookup_QueryNeverInserted(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seed(t, svc, "dog")

	// "god" was never inserted but shares the key with "dog"
	matches, ok, err := svc.Lookup(ctx, "god")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"dog"}, matches)

	// the lookup must not have added "god"
	matches, ok, err = svc.Lookup(ctx, "dog")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"dog"}, matches)
}

func TestScenario(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seed(t, svc, "bob", "god", "act", "dog")

	for _, w := range []string{"Kayak", "kayak", "C\tA\tT\t"} {
		added, err := svc.Insert(ctx, w)
		require.NoError(t, err)
		require.True(t, added)
	}

	matches, ok, err := svc.Lookup(ctx, "KAYAK")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Kayak", "kayak"}, matches)

	matches, ok, err = svc.Lookup(ctx, "cat")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"C\tA\tT\t", "act"}, matches)

	matches, ok, err = svc.Lookup(ctx, "GOD")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"dog", "god"}, matches)

	_, ok, err = svc.Lookup(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReport(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seed(t, svc, "god", "dog")

	found, err := svc.Report(ctx, "GOD")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.Report(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = svc.Report(ctx, "###")
	require.NoError(t, err)
	assert.False(t, found)
}
