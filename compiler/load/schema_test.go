package load

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fs := afero.NewOsFs()

	t.Run("single object", func(t *testing.T) {
		m, warnings, err := Load(fs, "testdata/comment.json")
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, "Comment", m.ModuleName)
		assert.Equal(t, "comments", m.EndpointName)
		assert.Equal(t, "features", m.TargetDir)
		require.Len(t, m.Fields, 1)
		assert.Equal(t, "body", m.Fields[0].Name)
		assert.False(t, m.Fields[0].IsNullable())
		require.Len(t, m.Relationships, 1)
		r := m.Relationships[0]
		assert.Equal(t, "Author", r.Label())
		assert.True(t, r.IsFoundation())
		assert.True(t, r.IsSingle())
		assert.True(t, r.IsToNode())
		assert.False(t, r.IsNullable())
		assert.Nil(t, m.CompanyScoped)
	})

	t.Run("array keeps the first module", func(t *testing.T) {
		m, warnings, err := Load(fs, "testdata/discussions.json")
		require.NoError(t, err)
		assert.Equal(t, "Discussion", m.ModuleName)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "2 modules")
	})

	t.Run("yaml", func(t *testing.T) {
		m, _, err := Load(fs, "testdata/article.yaml")
		require.NoError(t, err)
		assert.Equal(t, "Article", m.ModuleName)
		require.NotNil(t, m.CompanyScoped)
		assert.False(t, *m.CompanyScoped)
		require.Len(t, m.Relationships, 1)
		require.Len(t, m.Relationships[0].Fields, 1)
		assert.Equal(t, "position", m.Relationships[0].Fields[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(afero.NewMemMapFs(), "nope.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading schema")
	})
}

func TestParse(t *testing.T) {
	t.Run("empty array", func(t *testing.T) {
		_, _, err := Parse([]byte(" [] "))
		require.ErrorIs(t, err, ErrEmptySchema)
	})

	t.Run("one element array has no warning", func(t *testing.T) {
		m, warnings, err := Parse([]byte(`[{"moduleName":"Tag","endpointName":"tags","targetDir":"features","fields":[]}]`))
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, "Tag", m.ModuleName)
		assert.NotNil(t, m.Fields)
		assert.Empty(t, m.Fields)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, _, err := Parse([]byte(`{"moduleName":`))
		require.Error(t, err)
	})

	t.Run("wrong flag type", func(t *testing.T) {
		_, _, err := Parse([]byte(`{"relationships":[{"single":"yes"}]}`))
		require.Error(t, err)
	})

	t.Run("missing flags stay nil", func(t *testing.T) {
		m, _, err := Parse([]byte(`{"relationships":[{"name":"Topic"}]}`))
		require.NoError(t, err)
		r := m.Relationships[0]
		assert.Nil(t, r.Single)
		assert.Nil(t, r.ToNode)
		assert.Nil(t, r.Nullable)
		assert.False(t, r.IsSingle())
	})
}
