package minimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/lexfa/internal/fatab"
	"github.com/dekarrin/lexfa/internal/nfa"
)

const commentNFASrc = `13 # * / P
- 0 1 /
- 1 2 *
- 2 3 #
- 2 5 #
- 2 7 #
- 2 10 #
- 3 4 /
- 4 10 #
- 5 6 P
- 6 10 #
- 7 8 *
- 8 8 *
- 8 9 P
- 9 10 #
- 10 2 #
- 10 11 *
- 11 11 *
- 11 12 /
+ 12 12
`

const mergeNFASrc = `5 # a b c d e f g
+ 0 0 c g f # e b
+ 0 100 f
+ 0 101 e # d g f a
+ 0 102 b e d c g a
+ 0 103 b # d a e f
- 100 0 g
- 100 100 f
- 100 101 # b f c a d
- 100 102 c f g d b e
- 100 103 f d c g a e
- 101 100 f
- 101 101 c g b e d a
- 101 102 d c a # b g
- 101 103 c d # b a e
- 102 100 f
- 102 101 d b c a # g
- 102 102 # d c b a f
- 102 103 f e d c # b
- 103 100 f
- 103 101 b a f c # g
- 103 102 e a b d c f
- 103 103 g # e f a b
`

func rawTableFromNFA(t *testing.T, src string) fatab.Table {
	t.Helper()
	n, err := nfa.Parse(src)
	require.NoError(t, err)
	raw, _, err := n.ToDFA()
	require.NoError(t, err)
	return raw
}

func Test_Minimize_commentNFA(t *testing.T) {
	raw := rawTableFromNFA(t, commentNFASrc)
	got := Minimize(raw)
	assert.Equal(t, "- 0 E 1 E\n- 1 2 E E\n- 2 3 2 2\n- 3 3 4 2\n+ 4 E E E\n", fatab.Serialize(got))
}

func Test_Minimize_mergeNFA(t *testing.T) {
	raw := rawTableFromNFA(t, mergeNFASrc)
	got := Minimize(raw)
	assert.Equal(t, "+ 0 1 0 0 1 0 0 0\n- 1 1 1 1 1 1 2 1\n- 2 1 1 1 1 1 2 0\n", fatab.Serialize(got))
}

func Test_Minimize_idempotent(t *testing.T) {
	for _, src := range []string{commentNFASrc, mergeNFASrc} {
		raw := rawTableFromNFA(t, src)
		once := Minimize(raw)
		twice := Minimize(once)
		assert.Equal(t, fatab.Serialize(once), fatab.Serialize(twice))
	}
}

func Test_Minimize_neverGrowsRowCount(t *testing.T) {
	for _, src := range []string{commentNFASrc, mergeNFASrc} {
		raw := rawTableFromNFA(t, src)
		min := Minimize(raw)
		assert.LessOrEqual(t, len(min.Rows), len(raw.Rows))
	}
}
