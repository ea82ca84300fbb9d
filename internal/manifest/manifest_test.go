package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestManifest(t *testing.T, dir string) string {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "if.nfa"), []byte("2 # i f\n- 0 1 i\n+ 1 1 f\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ident.nfa"), []byte("1 # a\n+ 0 0 a\n"), 0o644))

	manifestPath := filepath.Join(dir, "tokens.toml")
	manifestText := `[[token]]
id = "kw_if"
file = "if.nfa"

[[token]]
id = "ident"
file = "ident.nfa"
value = "IDENT"
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestText), 0o644))
	return manifestPath
}

func Test_Load(t *testing.T) {
	dir := t.TempDir()
	path := writeTestManifest(t, dir)

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Token, 2)
	assert.Equal(t, "kw_if", m.Token[0].ID)
	assert.Equal(t, "ident", m.Token[1].ID)
	assert.Equal(t, "IDENT", m.Token[1].Value)
}

func Test_Build(t *testing.T) {
	dir := t.TempDir()
	path := writeTestManifest(t, dir)

	m, err := Load(path)
	require.NoError(t, err)

	dfas, err := m.Build(dir)
	require.NoError(t, err)
	require.Len(t, dfas, 2)

	assert.Equal(t, 0, dfas[0].Index)
	assert.Equal(t, "kw_if", dfas[0].ID)
	assert.Equal(t, 1, dfas[1].Index)
	assert.Equal(t, "ident", dfas[1].ID)
	require.NotNil(t, dfas[1].AssociatedValue)
	assert.Equal(t, "IDENT", *dfas[1].AssociatedValue)
}
