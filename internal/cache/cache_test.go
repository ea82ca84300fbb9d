package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/lexfa/internal/fatab"
)

func Test_StoreLoad_roundTrip(t *testing.T) {
	dir := t.TempDir()
	table := fatab.Table{Rows: []fatab.Row{
		{ID: 0, Accepting: false, Transitions: []int{1, fatab.NoTransition}},
		{ID: 1, Accepting: true, Transitions: []int{fatab.NoTransition, fatab.NoTransition}},
	}}
	key := Key([]byte("2 # a b\n- 0 1 a\n+ 1 1 b\n"))

	buildID, err := Store(dir, key, table)
	require.NoError(t, err)
	assert.NotEmpty(t, buildID.String())

	loaded, loadedID, found, err := Load(dir, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, table, loaded)
	assert.Equal(t, buildID, loadedID)
}

func Test_Load_missingEntry(t *testing.T) {
	dir := t.TempDir()
	_, _, found, err := Load(dir, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, found)
}

func Test_Key_isStableForSameContent(t *testing.T) {
	a := Key([]byte("same content"))
	b := Key([]byte("same content"))
	c := Key([]byte("different content"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
