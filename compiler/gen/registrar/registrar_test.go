package registrar

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modulegen/compiler/gen"
	"github.com/syssam/modulegen/compiler/load"
)

func newType(t *testing.T, fs afero.Fs, name, targetDir string) *gen.Type {
	t.Helper()
	c, err := gen.NewConfig(gen.WithFs(fs), gen.WithFoundationDir(""))
	require.NoError(t, err)
	typ, err := gen.NewType(c, &load.Module{
		ModuleName:   name,
		EndpointName: "items",
		TargetDir:    targetDir,
		Fields:       []*load.Field{},
	}, nil)
	require.NoError(t, err)
	return typ
}

func read(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(b)
}

func TestAggregatorNames(t *testing.T) {
	assert.Equal(t, "features/features.modules.ts", AggregatorFile("features"))
	assert.Equal(t, "features/community/community.modules.ts", AggregatorFile("features/community"))
	assert.Equal(t, "FeaturesModules", AggregatorClass("features"))
	assert.Equal(t, "ProjectBoardsModules", AggregatorClass("features/project-boards"))
}

func TestRegister(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "src/features/features.modules.ts", []byte(inline), 0o644))

	require.NoError(t, New().Register(newType(t, fs, "Comment", "features")))
	got := read(t, fs, "src/features/features.modules.ts")
	assert.Contains(t, got, `import { CommentModule } from "./comment/comment.module";`)
	assert.Contains(t, got, "imports: [CommentModule, TopicModule]")

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, New().Register(newType(t, fs, "Comment", "features")))
		assert.Equal(t, got, read(t, fs, "src/features/features.modules.ts"))
	})
}

func TestRegisterMissingTopLevel(t *testing.T) {
	err := New().Register(newType(t, afero.NewMemMapFs(), "Comment", "features"))
	require.Error(t, err)
	assert.ErrorIs(t, err, gen.ErrRegistrationFailed)
	assert.Contains(t, err.Error(), "aggregator not found")
}

func TestRegisterNested(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "src/features/features.modules.ts", []byte(inline), 0o644))

	require.NoError(t, New().Register(newType(t, fs, "Discussion", "features/community")))

	sub := read(t, fs, "src/features/community/community.modules.ts")
	assert.Contains(t, sub, `import { DiscussionModule } from "./discussion/discussion.module";`)
	assert.Contains(t, sub, "imports: [DiscussionModule]")
	assert.Contains(t, sub, "export class CommunityModules {}")

	top := read(t, fs, "src/features/features.modules.ts")
	assert.Contains(t, top, `import { CommunityModules } from "./community/community.modules";`)
	assert.Contains(t, top, "imports: [CommunityModules, TopicModule]")

	t.Run("second module in the same directory", func(t *testing.T) {
		require.NoError(t, New().Register(newType(t, fs, "Thread", "features/community")))
		assert.Contains(t, read(t, fs, "src/features/community/community.modules.ts"), "imports: [DiscussionModule, ThreadModule]")
		assert.Equal(t, top, read(t, fs, "src/features/features.modules.ts"))
	})
}

func TestRegisterUnparsable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "src/features/features.modules.ts", []byte("export {};\n"), 0o644))
	err := New().Register(newType(t, fs, "Comment", "features"))
	assert.ErrorIs(t, err, gen.ErrRegistrationFailed)
}
