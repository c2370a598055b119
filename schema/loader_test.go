package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rorepo/repo"
	"rorepo/schema"
)

const eventDoc = `
fields:
  - name: bar
    required: true
  - name: baz
    hidden: true
  - name: bing
    default: 1000000
`

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := schema.Parse([]byte(eventDoc))
	require.NoError(t, err)

	assert.Equal(t, "1", doc.Version, "version defaults when omitted")
	require.Len(t, doc.Fields, 3)
	assert.Equal(t, "bar", doc.Fields[0].Name)
	assert.True(t, doc.Fields[0].Required)
	assert.True(t, doc.Fields[1].Hidden)
	assert.Equal(t, 1000000, doc.Fields[2].Default)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := schema.Parse([]byte("fields: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse schema YAML")
	})

	t.Run("field without a name", func(t *testing.T) {
		t.Parallel()

		_, err := schema.Parse([]byte("fields:\n  - required: true\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no name")
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(eventDoc), 0o600))

	doc, err := schema.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Fields, 3)

	_, err = schema.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}

func TestDocument_Schema(t *testing.T) {
	t.Parallel()

	doc, err := schema.Parse([]byte(eventDoc))
	require.NoError(t, err)

	r, err := repo.New(doc.Schema(), map[string]any{"bar": "apple"})
	require.NoError(t, err)

	assert.Equal(t, []string{"bar", "bing"}, r.Fields())

	v, err := r.Get("bing")
	require.NoError(t, err)
	assert.Equal(t, 1000000, v)

	_, err = repo.New(doc.Schema(), map[string]any{})
	assert.ErrorIs(t, err, repo.ErrEmptyRequirements)
}
