package fatab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commentDFAText = "- 0 E 1 E\n- 1 2 E E\n- 2 3 2 2\n- 3 3 4 2\n+ 4 E E E\n"

func Test_Parse_commentDFA(t *testing.T) {
	tab, err := Parse(commentDFAText)
	require.NoError(t, err)
	require.Len(t, tab.Rows, 5)

	assert.Equal(t, Row{ID: 0, Accepting: false, Transitions: []int{NoTransition, 1, NoTransition}}, tab.Rows[0])
	assert.Equal(t, Row{ID: 4, Accepting: true, Transitions: []int{NoTransition, NoTransition, NoTransition}}, tab.Rows[4])
}

func Test_Serialize_roundTrip(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "comment dfa", text: commentDFAText},
		{name: "merge example", text: "+ 0 1 0 0 1 0 0 0\n- 1 1 1 1 1 1 2 1\n- 2 1 1 1 1 1 2 0\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tab, err := Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.text, Serialize(tab))
		})
	}
}

func Test_Parse_blankLinesIgnored(t *testing.T) {
	tab, err := Parse("\n- 0 E\n\n+ 1 0\n\n")
	require.NoError(t, err)
	require.Len(t, tab.Rows, 2)
}

func Test_Parse_errors(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		wantKind ParseErrorKind
	}{
		{name: "malformed row", text: "+", wantKind: ErrKindMalformedRow},
		{name: "invalid sign", text: "* 0 E", wantKind: ErrKindInvalidSign},
		{name: "invalid id", text: "+ x E", wantKind: ErrKindInvalidID},
		{name: "invalid cell", text: "+ 0 x", wantKind: ErrKindInvalidCell},
		{name: "column mismatch", text: "+ 0 E E\n- 1 E", wantKind: ErrKindColumnMismatch},
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
