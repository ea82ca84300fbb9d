package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/dekarrin/lexfa/internal/scan"
)

func runRepl(args []string) error {
	fs := newFlagSet("repl")
	cacheDir := fs.StringP("cache", "c", "", "build cache directory; disabled if unset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: lexfa repl [-c CACHEDIR] MANIFEST")
	}

	m, err := loadManifest(fs.Arg(0))
	if err != nil {
		return err
	}

	dfas, err := buildWithCache(m.manifest, m.baseDir, *cacheDir)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{Prompt: "lexfa> "})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}

		scanner := scan.NewScanner(dfas, []rune(line))
		for _, tok := range scanner.Tokenize() {
			value := string(tok.TokenValue)
			if tok.AssociatedValue != nil {
				value = *tok.AssociatedValue
			}
			fmt.Printf("%-12s %-16q line=%d col=%d\n", tok.TokenID, value, tok.LineNumber, tok.Column)
		}
	}
}
