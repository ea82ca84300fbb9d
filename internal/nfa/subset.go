package nfa

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/dekarrin/lexfa/internal/fatab"
	"github.com/dekarrin/lexfa/internal/reach"
)

// TransitionSetColl returns the union of TransitionSet(s, label) over every
// s in states, or nil if no state in states has a transition on label.
func (n *NFA) TransitionSetColl(states []int, label rune) []int {
	var out []int
	any := false
	for _, s := range states {
		t := n.TransitionSet(s, label)
		if t != nil {
			any = true
			out = append(out, t...)
		}
	}
	if !any {
		return nil
	}
	return sortedUnique(out)
}

func isSubset(a, b []int) bool {
	set := make(map[int]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	for _, v := range a {
		if !set[v] {
			return false
		}
	}
	return true
}

// EpsilonClosure returns lambda_set(s): every state reachable from s by one
// or more ε-transitions (§4.2). It does not include s itself unless an
// ε-cycle loops back to it.
func (n *NFA) EpsilonClosure(state int) []int {
	res := []int{}
	cur := n.TransitionSet(state, Epsilon)

	for len(cur) > 0 && !isSubset(cur, res) {
		res = sortedUnique(append(append([]int{}, res...), cur...))
		next := n.TransitionSetColl(res, Epsilon)
		if len(next) > 0 {
			cur = next
		}
	}

	return res
}

// EpsilonClosureOfSet is lambda_set_coll: the union of EpsilonClosure over
// every member of states.
func (n *NFA) EpsilonClosureOfSet(states []int) []int {
	res := []int{}
	cur := n.TransitionSetColl(states, Epsilon)

	for len(cur) > 0 && !isSubset(cur, res) {
		res = sortedUnique(append(append([]int{}, res...), cur...))
		next := n.TransitionSetColl(res, Epsilon)
		if len(next) > 0 {
			cur = next
		}
	}

	return res
}

// ErrNoStates is returned by ToDFA when the NFA has no states at all.
var ErrNoStates = errors.New("nfa: no states to construct a DFA from")

// canonKey derives a canonical dedup key for a set of NFA states, used to
// recognize when subset construction has already discovered a given state
// set regardless of the order it was built up in. States are sorted
// numerically so the key is also human-legible in debug output.
func canonKey(states []int) string {
	sorted := sortedUnique(states)
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = strconv.Itoa(s)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

type discoveredRow struct {
	accepting bool
	transKeys []string // "" means no transition on that column
}

// ToDFA performs subset construction (§4.2): BFS over sets of NFA states,
// pruning dead and unreachable rows, then renumbering so row 0 is the start
// state and the remaining accepting rows sort after non-accepting ones. It returns the
// raw transition table (not yet minimized) and the alphabet→column index
// map the table's columns correspond to.
func (n *NFA) ToDFA() (fatab.Table, map[rune]int, error) {
	minID, ok := n.minState()
	if !ok {
		return fatab.Table{}, nil, ErrNoStates
	}

	startSet := sortedUnique(append(n.EpsilonClosure(minID), minID))

	var rows []discoveredRow
	rowIndex := map[string]int{}
	var queue [][]int

	register := func(s []int) int {
		k := canonKey(s)
		if id, ok := rowIndex[k]; ok {
			return id
		}
		id := len(rows)
		rowIndex[k] = id
		rows = append(rows, discoveredRow{})
		queue = append(queue, s)
		return id
	}

	register(startSet)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		id := rowIndex[canonKey(cur)]

		transKeys := make([]string, len(n.Alphabet))
		for i, c := range n.Alphabet {
			moveSet := n.TransitionSetColl(cur, c)
			if len(moveSet) == 0 {
				transKeys[i] = ""
				continue
			}
			full := sortedUnique(append(n.EpsilonClosureOfSet(moveSet), moveSet...))
			register(full)
			transKeys[i] = canonKey(full)
		}

		accepting := false
		for _, s := range cur {
			if st, ok := n.States[s]; ok && st.Accepting {
				accepting = true
				break
			}
		}

		rows[id] = discoveredRow{accepting: accepting, transKeys: transKeys}
	}

	rawRows := make([]fatab.Row, len(rows))
	for id, r := range rows {
		trans := make([]int, len(r.transKeys))
		for i, k := range r.transKeys {
			if k == "" {
				trans[i] = fatab.NoTransition
			} else {
				trans[i] = rowIndex[k]
			}
		}
		rawRows[id] = fatab.Row{ID: id, Accepting: r.accepting, Transitions: trans}
	}

	pruned := pruneAndRenumber(fatab.Table{Rows: rawRows})

	indexes := make(map[rune]int, len(n.Alphabet))
	for i, c := range n.Alphabet {
		indexes[c] = i
	}

	return pruned, indexes, nil
}

// pruneAndRenumber removes dead states (no accepting state reachable) and
// states unreachable from row 0, then reorders the survivors: the start row
// stays first, and the rest go non-accepting-first, accepting-last (stable by
// prior ID). It renumbers densely from 0, so row 0 is still the start row. A transition that targeted a
// pruned row becomes a dead cell rather than a dangling reference.
func pruneAndRenumber(t fatab.Table) fatab.Table {
	byID := make(map[int]fatab.Row, len(t.Rows))
	for _, r := range t.Rows {
		byID[r.ID] = r
	}

	successors := func(id int) []int {
		r, ok := byID[id]
		if !ok {
			return nil
		}
		var out []int
		for _, c := range r.Transitions {
			if c != fatab.NoTransition {
				out = append(out, c)
			}
		}
		return out
	}

	canAccept := func(id int) bool {
		return reach.Reachable(id, successors, func(n int) bool { return byID[n].Accepting })
	}
	reachableFromStart := func(id int) bool {
		return reach.Reachable(0, successors, func(n int) bool { return n == id })
	}

	var kept []fatab.Row
	for _, r := range t.Rows {
		if canAccept(r.ID) && reachableFromStart(r.ID) {
			kept = append(kept, r)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		iStart, jStart := kept[i].ID == 0, kept[j].ID == 0
		if iStart != jStart {
			return iStart
		}
		if kept[i].Accepting != kept[j].Accepting {
			return !kept[i].Accepting
		}
		return false
	})

	remap := make(map[int]int, len(kept))
	for i, r := range kept {
		remap[r.ID] = i
	}

	final := make([]fatab.Row, len(kept))
	for i, r := range kept {
		trans := make([]int, len(r.Transitions))
		for j, c := range r.Transitions {
			if c == fatab.NoTransition {
				trans[j] = fatab.NoTransition
				continue
			}
			if newID, ok := remap[c]; ok {
				trans[j] = newID
			} else {
				trans[j] = fatab.NoTransition
			}
		}
		final[i] = fatab.Row{ID: i, Accepting: r.Accepting, Transitions: trans}
	}

	return fatab.Table{Rows: final}
}
