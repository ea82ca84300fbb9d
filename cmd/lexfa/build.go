package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/lexfa/internal/cache"
	"github.com/dekarrin/lexfa/internal/dfa"
	"github.com/dekarrin/lexfa/internal/manifest"
	"github.com/dekarrin/lexfa/internal/nfa"
)

func runBuild(args []string) error {
	fs := newFlagSet("build")
	cacheDir := fs.StringP("cache", "c", "", "build cache directory; disabled if unset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: lexfa build [-c CACHEDIR] MANIFEST")
	}

	manifestPath := fs.Arg(0)
	m, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	dfas, err := buildWithCache(m.manifest, m.baseDir, *cacheDir)
	if err != nil {
		return err
	}

	data := [][]string{{"ID", "Priority", "States"}}
	for _, d := range dfas {
		data = append(data, []string{d.ID, fmt.Sprintf("%d", d.Index), fmt.Sprintf("%d", len(d.TTable().Rows))})
	}

	opts := rosed.Options{TableHeaders: true, NoTrailingLineSeparators: true}
	fmt.Println(rosed.Edit("").InsertTableOpts(0, data, 80, opts).String())

	return nil
}

// buildWithCache mirrors manifest.Manifest.Build but consults the build
// cache, keyed by the sha256 of each token's source file, when cacheDir is
// non-empty.
func buildWithCache(m manifest.Manifest, baseDir, cacheDir string) ([]*dfa.DFA, error) {
	if cacheDir == "" {
		return m.Build(baseDir)
	}

	dfas := make([]*dfa.DFA, 0, len(m.Token))
	for i, tok := range m.Token {
		path := tok.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading token %q: %w", tok.ID, err)
		}

		n, err := nfa.Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing token %q: %w", tok.ID, err)
		}

		key := cache.Key(data)
		table, buildID, found, err := cache.Load(cacheDir, key)
		if err != nil {
			return nil, fmt.Errorf("reading cache for token %q: %w", tok.ID, err)
		}

		indexes := make(map[rune]int, len(n.Alphabet))
		for col, c := range n.Alphabet {
			indexes[c] = col
		}

		if !found {
			raw, _, err := n.ToDFA()
			if err != nil {
				return nil, fmt.Errorf("building token %q: %w", tok.ID, err)
			}
			table = raw
			buildID, err = cache.Store(cacheDir, key, table)
			if err != nil {
				return nil, fmt.Errorf("writing cache for token %q: %w", tok.ID, err)
			}
		}

		var associatedValue *string
		if tok.Value != "" {
			v := tok.Value
			associatedValue = &v
		}

		log.Printf("DEBUG  token %q: cache hit=%v build=%s", tok.ID, found, buildID)
		dfas = append(dfas, dfa.New(i, tok.ID, associatedValue, indexes, table))
	}

	return dfas, nil
}
