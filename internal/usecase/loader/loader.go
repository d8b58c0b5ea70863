// Package loader seeds a dictionary from word lists and text streams.
package loader

import (
	"bufio"
	"context"
	"io"

	"github.com/its-jojoo/anagramdex/internal/usecase/dictionary"
)

type Result struct {
	Inserted int
	Skipped  int // duplicates and texts without a valid key
}

// FromReader inserts every whitespace-delimited token read from r.
func FromReader(ctx context.Context, svc *dictionary.Service, r io.Reader) (Result, error) {
	var res Result

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		added, err := svc.Insert(ctx, sc.Text())
		if err != nil {
			return res, err
		}
		if added {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}
	return res, sc.Err()
}

// SeedWords inserts a fixed word list, verbatim.
func SeedWords(ctx context.Context, svc *dictionary.Service, words []string) (Result, error) {
	var res Result

	for _, w := range words {
		added, err := svc.Insert(ctx, w)
		if err != nil {
			return res, err
		}
		if added {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}
	return res, nil
}
