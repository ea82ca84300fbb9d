package digraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/lexfa/internal/fatab"
	"github.com/dekarrin/lexfa/internal/nfa"
)

func Test_FromTable(t *testing.T) {
	tab, err := fatab.Parse("- 0 E 1 E\n- 1 2 E E\n- 2 3 2 2\n- 3 3 4 2\n+ 4 E E E\n")
	require.NoError(t, err)

	g := FromTable(tab)
	out := g.String()

	assert.True(t, strings.HasPrefix(out, "digraph {"))
	assert.Contains(t, out, "4 [shape=doublecircle]")
	assert.Contains(t, out, "0 -> { 1 } [label=<b>]")
	assert.Contains(t, out, "3 -> { 4 } [label=<b>]")
}

func Test_FromNFA(t *testing.T) {
	n, err := nfa.Parse("2 # a b\n- 0 1 a\n+ 1 1 b\n")
	require.NoError(t, err)

	g := FromNFA(n)
	out := g.String()

	assert.Contains(t, out, "1 [shape=doublecircle]")
	assert.Contains(t, out, "0 -> { 1 } [label=<a>]")
	assert.Contains(t, out, "1 -> { 1 } [label=<b>]")
}

func Test_FromNFA_combinesParallelEdges(t *testing.T) {
	n, err := nfa.Parse("2 # a b\n- 0 1 a\n- 0 1 b\n")
	require.NoError(t, err)

	g := FromNFA(n)
	out := g.String()

	assert.Contains(t, out, "0 -> { 1 } [label=<a|b>]")
}
