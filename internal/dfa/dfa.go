// Package dfa implements the DFA runtime (§3/§4.4): a minimized transition
// table wrapped with a priority index, a token ID, precomputed
// reachability/liveness flags, and a cheaply-cloned cursor.
package dfa

import (
	"github.com/dekarrin/lexfa/internal/fatab"
	"github.com/dekarrin/lexfa/internal/minimize"
	"github.com/dekarrin/lexfa/internal/reach"
)

type rowFlags struct {
	reachable bool
	canAccept bool
}

// DFA is a runtime DFA instance for one token kind. The table, alphabet
// index map, and flags are shared across every clone; only the cursor
// (state) is per-instance, so Clone/Start/Transition are all cheap value
// copies rather than deep copies.
type DFA struct {
	// Index is this DFA's priority rank among sibling DFAs in a scanner;
	// lower wins ties (§4.5).
	Index int
	// ID is the token kind label.
	ID string
	// AssociatedValue overrides the emitted token text, if set.
	AssociatedValue *string

	state   int
	table   *fatab.Table
	indexes map[rune]int
	flags   []rowFlags
}

// New constructs a DFA for one token kind: it minimizes table, then
// precomputes, for every row, whether it is reachable from row 0 and
// whether some accepting row is reachable from it (§4.1/§4.4).
func New(index int, id string, associatedValue *string, indexes map[rune]int, table fatab.Table) *DFA {
	minimized := minimize.Minimize(table)

	successors := func(rowID int) []int {
		if rowID < 0 || rowID >= len(minimized.Rows) {
			return nil
		}
		var out []int
		for _, c := range minimized.Rows[rowID].Transitions {
			if c != fatab.NoTransition {
				out = append(out, c)
			}
		}
		return out
	}

	flags := make([]rowFlags, len(minimized.Rows))
	for i := range minimized.Rows {
		flags[i] = rowFlags{
			canAccept: reach.Reachable(i, successors, func(j int) bool { return minimized.Rows[j].Accepting }),
			reachable: reach.Reachable(0, successors, func(j int) bool { return j == i }),
		}
	}

	return &DFA{
		Index:           index,
		ID:              id,
		AssociatedValue: associatedValue,
		state:           0,
		table:           &minimized,
		indexes:         indexes,
		flags:           flags,
	}
}

// Clone returns an independent cursor over the same shared table; mutating
// the clone's cursor (via TransitionMut or Reset) never affects d.
func (d *DFA) Clone() *DFA {
	clone := *d
	return &clone
}

// Start returns a clone reset to state 0.
func (d *DFA) Start() *DFA {
	clone := *d
	clone.state = 0
	return &clone
}

// Reset snaps d's own cursor back to state 0.
func (d *DFA) Reset() {
	d.state = 0
}

// CurrentState returns the cursor's current row ID.
func (d *DFA) CurrentState() int {
	return d.state
}

// Accepting reports whether the cursor's current row accepts.
func (d *DFA) Accepting() bool {
	return d.table.Rows[d.state].Accepting
}

// CanAccept reports whether some accepting row is reachable from the
// cursor's current row (precomputed at construction).
func (d *DFA) CanAccept() bool {
	return d.flags[d.state].canAccept
}

// Transition returns a new DFA with the cursor advanced by one character,
// aliasing the same shared table; ok is false if c is outside the alphabet
// or the target cell is dead.
func (d *DFA) Transition(c rune) (next *DFA, ok bool) {
	col, inAlphabet := d.indexes[c]
	if !inAlphabet {
		return nil, false
	}
	target := d.table.Rows[d.state].Transitions[col]
	if target == fatab.NoTransition {
		return nil, false
	}
	clone := *d
	clone.state = target
	return &clone, true
}

// TransitionMut advances d's own cursor in place; ok is false (and the
// cursor unchanged) if c is outside the alphabet or the target cell is
// dead.
func (d *DFA) TransitionMut(c rune) (state int, ok bool) {
	col, inAlphabet := d.indexes[c]
	if !inAlphabet {
		return d.state, false
	}
	target := d.table.Rows[d.state].Transitions[col]
	if target == fatab.NoTransition {
		return d.state, false
	}
	d.state = target
	return d.state, true
}

// TTable exports the effective live table: only rows that are both
// reachable from the start state and can still reach an accepting row.
func (d *DFA) TTable() fatab.Table {
	var rows []fatab.Row
	for i, row := range d.table.Rows {
		if d.flags[i].reachable && d.flags[i].canAccept {
			rows = append(rows, row.Clone())
		}
	}
	return fatab.Table{Rows: rows}
}

// MatchStatus is the outcome of CheckMatch.
type MatchStatus int

const (
	// MatchSuccess means every character was consumed and the final state
	// accepts.
	MatchSuccess MatchStatus = iota
	// MatchFailure means the run rejected; FailAt carries the 1-based
	// index of the first non-transitionable character, or len+1 if the
	// run completed in a non-accepting state.
	MatchFailure
)

// CheckMatchResult is the result of a strict, whole-string CheckMatch run.
type CheckMatchResult struct {
	Status MatchStatus
	FailAt int
}

// CheckMatch runs the DFA from its current cursor over chars and reports
// whether the entire input is accepted (§4.4).
func (d *DFA) CheckMatch(chars []rune) CheckMatchResult {
	if len(chars) == 0 {
		if d.Accepting() {
			return CheckMatchResult{Status: MatchSuccess}
		}
		return CheckMatchResult{Status: MatchFailure, FailAt: 0}
	}

	cur := d
	for i, c := range chars {
		next, ok := cur.Transition(c)
		if !ok {
			return CheckMatchResult{Status: MatchFailure, FailAt: i + 1}
		}
		cur = next
	}

	if !cur.Accepting() {
		return CheckMatchResult{Status: MatchFailure, FailAt: len(chars) + 1}
	}
	return CheckMatchResult{Status: MatchSuccess}
}
