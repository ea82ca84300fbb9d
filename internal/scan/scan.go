// Package scan implements the multi-DFA maximal-munch scanner (§4.5): given
// an ordered, priority-ranked list of DFAs and a character sequence, it
// emits a stream of match spans annotated with line and column.
package scan

import (
	"github.com/dekarrin/lexfa/internal/dfa"
)

// Match is one located token, per the Data Model's Match span.
type Match struct {
	TokenID         string
	AssociatedValue *string
	TokenValue      []rune
	Start           int
	End             int
	LineNumber      int
	Column          int
}

// Scanner runs a fixed, priority-ordered set of DFAs over one source
// character sequence.
type Scanner struct {
	dfas             []*dfa.DFA
	source           []rune
	newlinePositions []int
}

// NewScanner precomputes the newline index used for line/column
// annotation and returns a Scanner ready to tokenize source.
func NewScanner(dfas []*dfa.DFA, source []rune) *Scanner {
	var newlines []int
	for i, c := range source {
		if c == '\n' {
			newlines = append(newlines, i)
		}
	}
	return &Scanner{dfas: dfas, source: source, newlinePositions: newlines}
}

type finishedDFA struct {
	dfa *dfa.DFA
	end int
}

// NextMatch implements next_match(offset): it advances every DFA in
// parallel from offset, records each DFA's position whenever it enters an
// accepting state, and upon exhaustion returns the longest recorded match,
// ties broken by DFA priority (§4.5). ok is false if no DFA ever accepted.
func (s *Scanner) NextMatch(offset int) (m Match, ok bool) {
	cursor := offset

	inProgress := make([]*dfa.DFA, len(s.dfas))
	for i, d := range s.dfas {
		inProgress[i] = d.Start()
	}

	var finished []finishedDFA

	for cursor < len(s.source) && len(inProgress) > 0 {
		c := s.source[cursor]

		next := inProgress[:0:0]
		for _, d := range inProgress {
			advanced, transitioned := d.Transition(c)
			if !transitioned {
				continue
			}
			if !advanced.CanAccept() {
				continue
			}
			next = append(next, advanced)
		}
		inProgress = next

		for _, d := range inProgress {
			if d.Accepting() {
				finished = append(finished, finishedDFA{dfa: d, end: cursor})
			}
		}

		cursor++
	}

	if len(finished) == 0 {
		return Match{}, false
	}

	best := finished[0]
	for _, f := range finished[1:] {
		if f.end > best.end || (f.end == best.end && f.dfa.Index < best.dfa.Index) {
			best = f
		}
	}

	lineNumber, column := s.annotate(offset)

	return Match{
		TokenID:         best.dfa.ID,
		AssociatedValue: best.dfa.AssociatedValue,
		TokenValue:      s.source[offset : best.end+1],
		Start:           offset,
		End:             best.end,
		LineNumber:      lineNumber,
		Column:          column,
	}, true
}

// annotate computes the 0-based line number and 1-based column of a source
// position per §4.5.
func (s *Scanner) annotate(pos int) (lineNumber, column int) {
	lineNumber = len(s.newlinePositions)
	for i, p := range s.newlinePositions {
		if pos <= p {
			lineNumber = i
			break
		}
	}

	column = pos + 1
	for i := len(s.newlinePositions) - 1; i >= 0; i-- {
		if pos > s.newlinePositions[i] {
			column = pos - s.newlinePositions[i]
			break
		}
	}

	return lineNumber, column
}

// Tokenize runs the full tokenization loop: repeated NextMatch calls from
// the end of the previous match, stopping (without error) at the first
// position no DFA can match from (§4.5's failure semantics).
func (s *Scanner) Tokenize() []Match {
	var matches []Match
	offset := 0

	for offset < len(s.source) {
		m, ok := s.NextMatch(offset)
		if !ok {
			break
		}
		matches = append(matches, m)
		offset = m.End + 1
	}

	return matches
}
