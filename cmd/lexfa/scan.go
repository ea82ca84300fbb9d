package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/lexfa/internal/scan"
)

func runScan(args []string) error {
	fs := newFlagSet("scan")
	cacheDir := fs.StringP("cache", "c", "", "build cache directory; disabled if unset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: lexfa scan [-c CACHEDIR] MANIFEST INPUT")
	}

	manifestPath := fs.Arg(0)
	inputPath := fs.Arg(1)

	m, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	dfas, err := buildWithCache(m.manifest, m.baseDir, *cacheDir)
	if err != nil {
		return err
	}

	input, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	scanner := scan.NewScanner(dfas, []rune(string(input)))
	matches := scanner.Tokenize()

	data := [][]string{{"ID", "Value", "Line", "Column"}}
	for _, tok := range matches {
		value := string(tok.TokenValue)
		if tok.AssociatedValue != nil {
			value = *tok.AssociatedValue
		}
		data = append(data, []string{
			tok.TokenID,
			value,
			fmt.Sprintf("%d", tok.LineNumber),
			fmt.Sprintf("%d", tok.Column),
		})
	}

	opts := rosed.Options{TableHeaders: true, NoTrailingLineSeparators: true}
	fmt.Println(rosed.Edit("").InsertTableOpts(0, data, 80, opts).String())

	return nil
}
