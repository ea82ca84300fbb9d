// Package digraph renders an NFA or a transition table as a Graphviz dot
// digraph description, grounded on the original tool's digraph emitter:
// accepting states get a double-circle shape, and parallel edges between
// the same (source, destination) pair are combined into one edge whose
// label lists every transition joined by "|".
package digraph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dekarrin/lexfa/internal/alphabetcodec"
	"github.com/dekarrin/lexfa/internal/fatab"
	"github.com/dekarrin/lexfa/internal/nfa"
)

type edge struct {
	from  int
	to    []int
	label string
}

// Graph is a renderable digraph: a set of (possibly multi-destination)
// edges and the set of nodes that accept.
type Graph struct {
	edges          []edge
	acceptingNodes []int
}

// FromNFA builds a Graph from an NFA's states: each (state, label) pair
// becomes (or extends) an edge to that label's full target set.
func FromNFA(n *nfa.NFA) *Graph {
	g := &Graph{}

	ids := make([]int, 0, len(n.States))
	for id := range n.States {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	edgeIndex := map[string]int{}

	for _, id := range ids {
		state := n.States[id]
		if state.Accepting {
			g.acceptingNodes = append(g.acceptingNodes, id)
		}

		labels := make([]rune, 0, len(state.Transitions))
		for label := range state.Transitions {
			labels = append(labels, label)
		}
		sort.Slice(labels, func(i, j int) bool {
			if labels[i] == nfa.Epsilon {
				return false
			}
			if labels[j] == nfa.Epsilon {
				return true
			}
			return labels[i] < labels[j]
		})

		for _, label := range labels {
			targets := append([]int(nil), state.Transitions[label]...)
			sort.Ints(targets)

			key := fmt.Sprintf("%d|%v", id, targets)
			text := labelText(label)

			if idx, ok := edgeIndex[key]; ok {
				g.edges[idx].label += "|" + text
				continue
			}
			edgeIndex[key] = len(g.edges)
			g.edges = append(g.edges, edge{from: id, to: targets, label: text})
		}
	}

	sort.Slice(g.edges, func(i, j int) bool { return edgeLess(g.edges[i], g.edges[j]) })
	sort.Ints(g.acceptingNodes)

	return g
}

func labelText(label rune) string {
	if label == nfa.Epsilon {
		return "&lambda;"
	}
	if label == ' ' {
		return "SP"
	}
	return alphabetcodec.Encode(string(label))
}

// FromTable builds a Graph from a transition table: column index i becomes
// the label 'a'+i, matching the original tool's placeholder column
// labeling (the table format itself does not retain alphabet characters).
func FromTable(t fatab.Table) *Graph {
	g := &Graph{}

	rows := append([]fatab.Row(nil), t.Rows...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	edgeIndex := map[string]int{}

	for _, row := range rows {
		if row.Accepting {
			g.acceptingNodes = append(g.acceptingNodes, row.ID)
		}
		for i, target := range row.Transitions {
			if target == fatab.NoTransition {
				continue
			}
			label := string(rune('a' + i))
			key := fmt.Sprintf("%d|%d", row.ID, target)

			if idx, ok := edgeIndex[key]; ok {
				g.edges[idx].label += "|" + label
				continue
			}
			edgeIndex[key] = len(g.edges)
			g.edges = append(g.edges, edge{from: row.ID, to: []int{target}, label: label})
		}
	}

	sort.Slice(g.edges, func(i, j int) bool { return edgeLess(g.edges[i], g.edges[j]) })
	sort.Ints(g.acceptingNodes)

	return g
}

func edgeLess(a, b edge) bool {
	if a.from != b.from {
		return a.from < b.from
	}
	n := len(a.to)
	if len(b.to) < n {
		n = len(b.to)
	}
	for i := 0; i < n; i++ {
		if a.to[i] != b.to[i] {
			return a.to[i] < b.to[i]
		}
	}
	return len(a.to) < len(b.to)
}

// String renders the graph as a Graphviz dot digraph.
func (g *Graph) String() string {
	nodeDefs := make([]string, len(g.acceptingNodes))
	for i, n := range g.acceptingNodes {
		nodeDefs[i] = fmt.Sprintf("%d [shape=doublecircle]", n)
	}

	edgeDefs := make([]string, len(g.edges))
	for i, e := range g.edges {
		dests := make([]string, len(e.to))
		for j, t := range e.to {
			dests[j] = strconv.Itoa(t)
		}
		edgeDefs[i] = fmt.Sprintf("%d -> { %s } [label=<%s>]", e.from, strings.Join(dests, ","), e.label)
	}

	return fmt.Sprintf("digraph {\nnewrank=true;\nrankdir=LR;\n%s\n%s\n}",
		strings.Join(nodeDefs, "\n"), strings.Join(edgeDefs, "\n"))
}
