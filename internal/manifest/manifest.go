// Package manifest parses the TOML token manifest that lists a lexer's
// ordered set of token definitions and builds them into ready-to-scan
// DFAs.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/dekarrin/lexfa/internal/dfa"
	"github.com/dekarrin/lexfa/internal/nfa"
)

// TokenDef is one [[token]] entry. Declaration order is DFA priority
// order: index 0 (first declared) wins ties in the scanner.
type TokenDef struct {
	ID    string `toml:"id"`
	File  string `toml:"file"`
	Value string `toml:"value"`
}

// Manifest is the parsed contents of a token manifest file.
type Manifest struct {
	Token []TokenDef `toml:"token"`
}

// Load reads and parses a token manifest from path.
func Load(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: %w", err)
	}
	return m, nil
}

// Build resolves each token's file relative to baseDir, parses it as an
// NFA, runs subset construction, and returns the resulting DFAs in
// manifest declaration order.
func (m Manifest) Build(baseDir string) ([]*dfa.DFA, error) {
	dfas := make([]*dfa.DFA, 0, len(m.Token))

	for i, tok := range m.Token {
		path := tok.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("manifest: reading token %q: %w", tok.ID, err)
		}

		n, err := nfa.Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("manifest: parsing token %q: %w", tok.ID, err)
		}

		raw, indexes, err := n.ToDFA()
		if err != nil {
			return nil, fmt.Errorf("manifest: building token %q: %w", tok.ID, err)
		}

		var associatedValue *string
		if tok.Value != "" {
			v := tok.Value
			associatedValue = &v
		}

		dfas = append(dfas, dfa.New(i, tok.ID, associatedValue, indexes, raw))
	}

	return dfas, nil
}
