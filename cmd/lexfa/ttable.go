package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/lexfa/internal/digraph"
	"github.com/dekarrin/lexfa/internal/fatab"
)

func runTTable(args []string) error {
	fs := newFlagSet("ttable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: lexfa ttable FILE")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading %s: %w", fs.Arg(0), err)
	}

	t, err := fatab.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", fs.Arg(0), err)
	}

	fmt.Println(digraph.FromTable(t).String())
	return nil
}
