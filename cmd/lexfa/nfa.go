package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/lexfa/internal/digraph"
	"github.com/dekarrin/lexfa/internal/nfa"
)

func runNFA(args []string) error {
	fs := newFlagSet("nfa")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: lexfa nfa FILE")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading %s: %w", fs.Arg(0), err)
	}

	n, err := nfa.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", fs.Arg(0), err)
	}

	fmt.Println(digraph.FromNFA(n).String())
	return nil
}
