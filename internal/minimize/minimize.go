// Package minimize implements DFA minimization by repeated partition
// refinement: rows that are behaviorally indistinguishable on every
// alphabet column are merged until a fixpoint is reached, then the
// surviving rows are compacted to dense IDs.
package minimize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dekarrin/lexfa/internal/fatab"
)

// Minimize reduces a raw transition table to an equivalent one with no two
// behaviorally-equivalent rows, per §4.3: iterate merge passes to a
// fixpoint, then compact row IDs to 0..n.
func Minimize(table fatab.Table) fatab.Table {
	before := table.Clone()

	for {
		after := mergeStates(before)
		if len(after.Rows) == len(before.Rows) {
			before = after
			break
		}
		before = after
	}

	return compact(before)
}

// partitionStates groups the given row IDs (restricted to states) by their
// cell value in the given column. The dead-cell sentinel (fatab.NoTransition)
// is a partition key like any other successor ID.
func partitionStates(table fatab.Table, states []int, column int) [][]int {
	byID := map[int]fatab.Row{}
	for _, r := range table.Rows {
		byID[r.ID] = r
	}

	groups := map[int][]int{}
	// stable iteration order: walk states in the order given rather than
	// map iteration, so ties within a group come out sorted below anyway.
	for _, id := range states {
		row, ok := byID[id]
		if !ok {
			continue
		}
		key := row.Transitions[column]
		groups[key] = append(groups[key], id)
	}

	result := make([][]int, 0, len(groups))
	for _, g := range groups {
		sorted := append([]int(nil), g...)
		sort.Ints(sorted)
		sorted = dedupInts(sorted)
		result = append(result, sorted)
	}
	return result
}

func dedupInts(s []int) []int {
	out := s[:0:0]
	var last int
	for i, v := range s {
		if i == 0 || v != last {
			out = append(out, v)
		}
		last = v
	}
	return out
}

type mergeTask struct {
	states  []int
	columns []int
}

// mergeStates performs a single merge pass: it discovers every maximal
// class of rows indistinguishable across all alphabet columns (starting
// from the accepting/non-accepting split) and merges each such class down
// to its smallest-ID member, rewriting every transition that targeted a
// deleted row.
func mergeStates(input fatab.Table) fatab.Table {
	if len(input.Rows) == 0 {
		return input.Clone()
	}

	width := input.Width()
	allColumns := make([]int, width)
	for i := range allColumns {
		allColumns[i] = i
	}

	var accepting, nonAccepting []int
	for _, r := range input.Rows {
		if r.Accepting {
			accepting = append(accepting, r.ID)
		} else {
			nonAccepting = append(nonAccepting, r.ID)
		}
	}

	queue := []mergeTask{
		{states: accepting, columns: allColumns},
		{states: nonAccepting, columns: allColumns},
	}

	merged := map[string][]int{}

	for len(queue) > 0 {
		task := queue[0]
		queue = queue[1:]

		if len(task.columns) == 0 {
			continue
		}
		column, remaining := task.columns[0], task.columns[1:]

		for _, group := range partitionStates(input, task.states, column) {
			if len(group) <= 1 {
				continue
			}
			if len(remaining) == 0 {
				merged[mergeKey(group)] = group
			} else {
				queue = append(queue, mergeTask{states: group, columns: remaining})
			}
		}
	}

	output := input.Clone()
	for _, class := range merged {
		first, rest := class[0], class[1:]
		removeRows(&output, rest)
		redirectTransitions(&output, rest, first)
	}

	return output
}

func mergeKey(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func removeRows(t *fatab.Table, ids []int) {
	remove := map[int]bool{}
	for _, id := range ids {
		remove[id] = true
	}
	kept := t.Rows[:0:0]
	for _, r := range t.Rows {
		if !remove[r.ID] {
			kept = append(kept, r)
		}
	}
	t.Rows = kept
}

func redirectTransitions(t *fatab.Table, from []int, to int) {
	redirect := map[int]bool{}
	for _, id := range from {
		redirect[id] = true
	}
	for i := range t.Rows {
		for j, cell := range t.Rows[i].Transitions {
			if cell != fatab.NoTransition && redirect[cell] {
				t.Rows[i].Transitions[j] = to
			}
		}
	}
}

// compact sorts rows by their current ID and renumbers them densely from 0,
// rewriting all transition references to match.
func compact(t fatab.Table) fatab.Table {
	out := t.Clone()
	sort.Slice(out.Rows, func(i, j int) bool { return out.Rows[i].ID < out.Rows[j].ID })

	remap := map[int]int{}
	for i, r := range out.Rows {
		remap[r.ID] = i
	}
	for i := range out.Rows {
		out.Rows[i].ID = remap[out.Rows[i].ID]
		for j, cell := range out.Rows[i].Transitions {
			if cell != fatab.NoTransition {
				out.Rows[i].Transitions[j] = remap[cell]
			}
		}
	}
	return out
}
