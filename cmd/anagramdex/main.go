package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/its-jojoo/anagramdex/internal/adapter/storage"
	"github.com/its-jojoo/anagramdex/internal/adapter/storage/memory"
	"github.com/its-jojoo/anagramdex/internal/adapter/storage/sqlite"
	"github.com/its-jojoo/anagramdex/internal/core"
	"github.com/its-jojoo/anagramdex/internal/usecase/dictionary"
	"github.com/its-jojoo/anagramdex/internal/usecase/loader"
)

func main() {
	var (
		dbPath   = flag.String("db", "", "sqlite db path (empty = in-memory dictionary)")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
		demo     = flag.Bool("demo", false, "run the built-in demo script and exit")
	)
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	var store storage.Store
	if *dbPath != "" {
		st, err := sqlite.Open(*dbPath)
		if err != nil {
			log.Error().Err(err).Str("path", *dbPath).Msg("cannot open sqlite db")
			os.Exit(1)
		}
		defer st.Close()
		store = st
	} else {
		store = memory.New()
	}

	svc := dictionary.New(store, log)
	ctx := context.Background()

	if *demo {
		if err := runDemo(ctx, svc); err != nil {
			log.Error().Err(err).Msg("demo failed")
			os.Exit(1)
		}
		return
	}

	fmt.Println("anagramdex (dev mode)")
	fmt.Println("Commands: add <text> | lookup <text> | load <file> | list | count | quit")

	sc := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		cmd, arg := splitCmd(line)

		switch cmd {
		case "quit", "exit":
			return

		case "add":
			if arg == "" {
				fmt.Println("usage: add <text>")
				continue
			}
			added, err := svc.Insert(ctx, arg)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if added {
				fmt.Println("added")
			} else {
				fmt.Println("(not added)")
			}

		case "lookup":
			if arg == "" {
				fmt.Println("usage: lookup <text>")
				continue
			}
			matches, ok, err := svc.Lookup(ctx, arg)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if !ok {
				fmt.Println("(no matches)")
				continue
			}
			fmt.Println(core.RenderGroup(matches))

		case "load":
			if arg == "" {
				fmt.Println("usage: load <file>")
				continue
			}
			f, err := os.Open(arg)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			res, err := loader.FromReader(ctx, svc, f)
			_ = f.Close()
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("loaded: %d inserted, %d skipped\n", res.Inserted, res.Skipped)

		case "list":
			keys, err := store.Keys(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if len(keys) == 0 {
				fmt.Println("(empty)")
				continue
			}
			for _, k := range keys {
				group, err := store.Group(ctx, k)
				if err != nil {
					fmt.Println("error:", err)
					continue
				}
				texts := make([]string, 0, len(group))
				for _, e := range group {
					texts = append(texts, e.Text)
				}
				fmt.Printf("%s %s\n", k, core.RenderGroup(texts))
			}

		case "count":
			n, err := store.Count(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(n)

		default:
			fmt.Println("unknown command:", cmd)
			fmt.Println("Commands: add <text> | lookup <text> | load <file> | list | count | quit")
		}
	}

	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "stdin error:", err)
	}
}

// runDemo replays the classic walkthrough: a small seeded dictionary,
// a few tricky inserts, then lookups reported via the logger.
func runDemo(ctx context.Context, svc *dictionary.Service) error {
	seed := strings.NewReader("bob\ngod\nact\ndog")
	if _, err := loader.FromReader(ctx, svc, seed); err != nil {
		return err
	}

	for _, w := range []string{"Kayak", "kayak", "C\tA\tT\t", "***Cat***", "dog", "###"} {
		if _, err := svc.Insert(ctx, w); err != nil {
			return err
		}
	}

	for _, q := range []string{"KAYAK", "cat", "act", "GOD", "unknown", "###"} {
		if _, err := svc.Report(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func splitCmd(s string) (cmd, arg string) {
	parts := strings.Fields(s)
	cmd = strings.ToLower(parts[0])
	if len(parts) > 1 {
		arg = strings.TrimSpace(s[len(parts[0]):])
	}
	return cmd, arg
}
