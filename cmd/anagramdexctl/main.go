package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/its-jojoo/anagramdex/internal/adapter/storage/sqlite"
)

type ExportEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type ExportGroup struct {
	Key     string        `json:"key"`
	Entries []ExportEntry `json:"entries"`
}

func main() {
	var (
		dbPath = flag.String("db", "./anagramdex.dev.db", "sqlite db path")
		out    = flag.String("out", "anagramdex-export.json", "output json file path")
	)
	flag.Parse()

	st, err := sqlite.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db open error: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx := context.Background()
	keys, err := st.Keys(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list keys error: %v\n", err)
		os.Exit(1)
	}

	export := make([]ExportGroup, 0, len(keys))
	total := 0
	for _, k := range keys {
		group, err := st.Group(ctx, k)
		if err != nil {
			fmt.Fprintf(os.Stderr, "group error for key %q: %v\n", k, err)
			os.Exit(1)
		}

		eg := ExportGroup{Key: string(k), Entries: make([]ExportEntry, 0, len(group))}
		for _, e := range group {
			eg.Entries = append(eg.Entries, ExportEntry{
				ID:        e.ID,
				Text:      e.Text,
				CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
			})
		}
		total += len(eg.Entries)
		export = append(export, eg)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		fmt.Fprintf(os.Stderr, "encode error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("exported", total, "entries in", len(export), "groups to", *out)
}
