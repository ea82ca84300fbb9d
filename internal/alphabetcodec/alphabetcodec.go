// Package alphabetcodec escapes and unescapes the whitespace-unsafe
// characters that appear as alphabet and transition-label tokens in NFA
// definition files (see internal/nfa's file format). It is a thin external
// collaborator: the core automaton packages call it only at the text
// boundary and never inspect its internals.
package alphabetcodec

import (
	"errors"
	"strings"
)

// ErrInvalidEncoding is returned by Decode when a token cannot be
// interpreted as either a recognized escape word or a single literal
// character.
var ErrInvalidEncoding = errors.New("alphabetcodec: invalid encoding")

const (
	tokSpace = "SP"
	tokNL    = "NL"
	tokTab   = "TAB"
)

// Decode unescapes a whitespace-separated list of tokens, substituting any
// recognized escape word (SP, NL, TAB) with its literal character and
// passing single-rune tokens through unchanged. The decoded tokens are
// rejoined with single spaces; a decoded space, newline or tab is then not
// told apart from those separators, so splitting the result on whitespace
// loses it. Callers that need each character decode one token at a time.
func Decode(s string) (string, error) {
	fields := strings.Fields(s)
	out := make([]string, len(fields))

	for i, f := range fields {
		d, err := decodeToken(f)
		if err != nil {
			return "", err
		}
		out[i] = d
	}

	return strings.Join(out, " "), nil
}

func decodeToken(tok string) (string, error) {
	switch tok {
	case tokSpace:
		return " ", nil
	case tokNL:
		return "\n", nil
	case tokTab:
		return "\t", nil
	default:
		if len([]rune(tok)) == 1 {
			return tok, nil
		}
		return "", ErrInvalidEncoding
	}
}

// Encode escapes a raw string for display or for round-tripping back into a
// token stream a Decode call can later parse: each whitespace-unsafe rune is
// replaced by its escape word, and the resulting tokens are joined with a
// single space.
func Encode(s string) string {
	runes := []rune(s)
	tokens := make([]string, 0, len(runes))

	for _, r := range runes {
		switch r {
		case ' ':
			tokens = append(tokens, tokSpace)
		case '\n':
			tokens = append(tokens, tokNL)
		case '\t':
			tokens = append(tokens, tokTab)
		default:
			tokens = append(tokens, string(r))
		}
	}

	return strings.Join(tokens, " ")
}
