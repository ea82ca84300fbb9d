package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/lexfa/internal/fatab"
	"github.com/dekarrin/lexfa/internal/minimize"
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

func Test_Parse_commentNFA(t *testing.T) {
	n, err := Parse(commentNFASrc)
	require.NoError(t, err)
	assert.Len(t, n.States, 13)

	startTargets := n.States[0].Transitions['/']
	assert.Equal(t, []int{1}, startTargets)

	twelveTargets := n.States[12].Transitions[Epsilon]
	assert.Equal(t, []int{12}, twelveTargets)
	assert.True(t, n.States[12].Accepting)
}

func Test_EpsilonClosure_state10(t *testing.T) {
	n, err := Parse(commentNFASrc)
	require.NoError(t, err)

	got := n.EpsilonClosure(10)
	assert.Equal(t, []int{2, 3, 5, 7, 10}, got)
}

func Test_ToDFA_commentNFA_endToEnd(t *testing.T) {
	n, err := Parse(commentNFASrc)
	require.NoError(t, err)

	raw, _, err := n.ToDFA()
	require.NoError(t, err)

	minimized := minimize.Minimize(raw)
	assert.Equal(t, "- 0 E 1 E\n- 1 2 E E\n- 2 3 2 2\n- 3 3 4 2\n+ 4 E E E\n", fatab.Serialize(minimized))
}

func Test_ToDFA_mergeNFA_endToEnd(t *testing.T) {
	n, err := Parse(mergeNFASrc)
	require.NoError(t, err)

	raw, _, err := n.ToDFA()
	require.NoError(t, err)

	minimized := minimize.Minimize(raw)
	assert.Equal(t, "+ 0 1 0 0 1 0 0 0\n- 1 1 1 1 1 1 2 1\n- 2 1 1 1 1 1 2 0\n", fatab.Serialize(minimized))
}

func Test_Parse_errors(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		wantKind ParseErrorKind
	}{
		{name: "empty file", text: "", wantKind: ErrKindEmptyFile},
		{name: "invalid first line", text: "13 #", wantKind: ErrKindInvalidFirstLine},
		{name: "column mismatch", text: "1 # a\n- 0\n", wantKind: ErrKindColumnMismatch},
		{name: "invalid from/to", text: "1 # a\n- x 1 a\n", wantKind: ErrKindInvalidFromTo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.wantKind, pe.Kind)
		})
	}
}
