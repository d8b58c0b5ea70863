package core

import (
	"errors"
	"sort"
	"strings"
)

// ErrNoValidKey means a text holds no ASCII alphanumeric characters,
// so nothing is left to build an anagram key from.
var ErrNoValidKey = errors.New("no valid anagram key")

// ComputeKey derives the canonical anagram key of a text:
// everything but ASCII letters and digits is dropped, the rest is
// lower-cased and sorted byte-wise. "God" and "dog" both key to "dgo".
// Texts like "###" have no key and fail with ErrNoValidKey.
func ComputeKey(text string) (Key, error) {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	if b.Len() == 0 {
		return "", ErrNoValidKey
	}

	key := []byte(b.String())
	sort.Slice(key, func(i, j int) bool { return key[i] < key[j] })
	return Key(key), nil
}
