package gen

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modulegen/compiler/load"
)

func touch(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte("export {};\n"), 0o644))
}

func TestStaticRegistry(t *testing.T) {
	reg := NewStaticRegistry()
	topic := ModuleRef{Directory: "features", Name: "topic"}

	assert.Equal(t, StructureDescriptor, reg.Structure(topic), "unknown modules use descriptors")
	assert.False(t, reg.Has(topic))

	reg.Set(topic, StructureLegacy)
	assert.Equal(t, StructureLegacy, reg.Structure(topic))
	assert.True(t, reg.Has(topic))
	assert.Equal(t, "features/topic", topic.String())

	for _, dir := range []string{"features/", "/features", "features/./"} {
		ref := ModuleRef{Directory: dir, Name: "topic"}
		assert.Equal(t, StructureLegacy, reg.Structure(ref), dir)
		assert.True(t, reg.Has(ref), dir)
	}
}

func TestScanRegistry(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "src/features/topic/entities/topic.ts")
	touch(t, fs, "src/features/topic/entities/topic.meta.ts")
	touch(t, fs, "src/features/community/discussion/entities/discussion.ts")
	touch(t, fs, "src/foundations/company/entities/company.ts")
	touch(t, fs, "node_modules/pkg/foundations/user/entities/user.meta.d.ts")
	touch(t, fs, "node_modules/pkg/foundations/role/entities/role.d.ts")
	touch(t, fs, "node_modules/pkg/foundations/index.d.ts")

	c := testConfig(t, WithFs(fs), WithFoundationDir("node_modules/pkg/foundations"))
	reg, err := ScanRegistry(c)
	require.NoError(t, err)

	assert.Equal(t, []ModuleInfo{
		{ModuleRef{load.FoundationDirectory, "role"}, StructureDescriptor},
		{ModuleRef{load.FoundationDirectory, "user"}, StructureLegacy},
		{ModuleRef{"features", "topic"}, StructureLegacy},
		{ModuleRef{"features/community", "discussion"}, StructureDescriptor},
		{ModuleRef{"foundations", "company"}, StructureDescriptor},
	}, reg.Modules())
}

func TestScanRegistryEmpty(t *testing.T) {
	c := testConfig(t, WithFoundationDir("node_modules/missing"))
	reg, err := ScanRegistry(c)
	require.NoError(t, err)
	assert.Empty(t, reg.Modules())
}

func TestLoadManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "modules.yaml", []byte(`modules:
  - directory: features
    name: topic
    structure: legacy
  - directory: "@foundation"
    name: user
    structure: meta
  - directory: features
    name: tag
  - directory: features/community/
    name: discussion
    structure: legacy
`), 0o644))

	reg, err := LoadManifest(fs, "modules.yaml")
	require.NoError(t, err)
	assert.Equal(t, StructureLegacy, reg.Structure(ModuleRef{"features", "topic"}))
	assert.Equal(t, StructureLegacy, reg.Structure(ModuleRef{load.FoundationDirectory, "user"}))
	assert.Equal(t, StructureDescriptor, reg.Structure(ModuleRef{"features", "tag"}))
	assert.True(t, reg.Has(ModuleRef{"features", "tag"}))
	assert.Equal(t, StructureLegacy, reg.Structure(ModuleRef{"features/community", "discussion"}))

	t.Run("round trip", func(t *testing.T) {
		b, err := reg.MarshalManifest()
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fs, "out.yaml", b, 0o644))
		again, err := LoadManifest(fs, "out.yaml")
		require.NoError(t, err)
		assert.Equal(t, reg.Modules(), again.Modules())
	})
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unknown structure", "modules:\n  - {directory: features, name: topic, structure: old}\n", `unknown module structure "old"`},
		{"missing name", "modules:\n  - {directory: features}\n", "needs a directory and a name"},
		{"not yaml", "modules: [", "parse manifest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "m.yaml", []byte(tt.content), 0o644))
			_, err := LoadManifest(fs, "m.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
