package gen

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDialect renders the artifact name as the file content.
type stubDialect struct {
	fail Artifact
	err  error
}

func (d *stubDialect) Name() string { return "stub" }

func (d *stubDialect) gen(a Artifact) func(*Type) ([]byte, error) {
	return func(t *Type) ([]byte, error) {
		if d.err != nil && d.fail == a {
			return nil, d.err
		}
		return []byte(a.String() + ":" + t.Names.Kebab), nil
	}
}

func (d *stubDialect) GenMeta(t *Type) ([]byte, error)       { return d.gen(ArtifactMeta)(t) }
func (d *stubDialect) GenEntity(t *Type) ([]byte, error)     { return d.gen(ArtifactEntity)(t) }
func (d *stubDialect) GenBaseDTO(t *Type) ([]byte, error)    { return d.gen(ArtifactBaseDTO)(t) }
func (d *stubDialect) GenPostDTO(t *Type) ([]byte, error)    { return d.gen(ArtifactPostDTO)(t) }
func (d *stubDialect) GenPutDTO(t *Type) ([]byte, error)     { return d.gen(ArtifactPutDTO)(t) }
func (d *stubDialect) GenRepository(t *Type) ([]byte, error) { return d.gen(ArtifactRepository)(t) }
func (d *stubDialect) GenService(t *Type) ([]byte, error)    { return d.gen(ArtifactService)(t) }
func (d *stubDialect) GenController(t *Type) ([]byte, error) { return d.gen(ArtifactController)(t) }
func (d *stubDialect) GenModule(t *Type) ([]byte, error)     { return d.gen(ArtifactModule)(t) }

// stubTestDialect also renders spec files.
type stubTestDialect struct{ stubDialect }

func (d *stubTestDialect) GenServiceSpec(t *Type) ([]byte, error) {
	return d.gen(ArtifactServiceSpec)(t)
}

func (d *stubTestDialect) GenControllerSpec(t *Type) ([]byte, error) {
	return d.gen(ArtifactControllerSpec)(t)
}

type registrarFunc func(*Type) error

func (f registrarFunc) Register(t *Type) error { return f(t) }

func newTestType(t *testing.T, opts ...Option) *Type {
	t.Helper()
	typ, err := NewType(testConfig(t, opts...), commentModule(), nil)
	require.NoError(t, err)
	return typ
}

func TestGeneratorRender(t *testing.T) {
	t.Run("nine files in write order", func(t *testing.T) {
		files, err := NewGenerator(newTestType(t)).WithDialect(&stubTestDialect{}).Render(context.Background())
		require.NoError(t, err)
		require.Len(t, files, 9)
		for i, a := range Artifacts()[:9] {
			assert.Equal(t, a, files[i].Artifact)
			assert.Equal(t, filepath.Join("src", "features", "comment", filepath.FromSlash(NewNamingPlan("Comment", "").File(a))), files[i].Path)
			assert.Equal(t, a.String()+":comment", string(files[i].Content))
		}
	})

	t.Run("tests feature adds specs", func(t *testing.T) {
		files, err := NewGenerator(newTestType(t, WithFeatures(FeatureTests))).WithDialect(&stubTestDialect{}).Render(context.Background())
		require.NoError(t, err)
		require.Len(t, files, 11)
		assert.Equal(t, ArtifactControllerSpec, files[10].Artifact)
	})

	t.Run("dialect without spec support", func(t *testing.T) {
		files, err := NewGenerator(newTestType(t, WithFeatures(FeatureTests))).WithDialect(&stubDialect{}).Render(context.Background())
		require.NoError(t, err)
		assert.Len(t, files, 9)
	})

	t.Run("no dialect", func(t *testing.T) {
		_, err := NewGenerator(newTestType(t)).Render(context.Background())
		assert.ErrorIs(t, err, ErrMissingConfig)
	})

	t.Run("render error", func(t *testing.T) {
		d := &stubDialect{fail: ArtifactPutDTO, err: errors.New("boom")}
		_, err := NewGenerator(newTestType(t)).WithDialect(d).WithWorkers(2).Render(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.Contains(t, err.Error(), "comment.put.dto.ts")
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewGenerator(newTestType(t)).WithDialect(&stubDialect{}).Render(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGeneratorGenerate(t *testing.T) {
	t.Run("writes and registers", func(t *testing.T) {
		typ := newTestType(t)
		var registered *Type
		res, err := NewGenerator(typ).
			WithDialect(&stubDialect{}).
			WithRegistrar(registrarFunc(func(t *Type) error { registered = t; return nil })).
			Generate(context.Background())
		require.NoError(t, err)

		assert.NotEmpty(t, res.RunID)
		assert.True(t, res.Registered)
		assert.Same(t, typ, registered)
		require.Len(t, res.Files, 9)
		for _, f := range res.Files {
			assert.Equal(t, ActionCreated, f.Action)
			ok, err := afero.Exists(typ.Fs, f.Path)
			require.NoError(t, err)
			assert.True(t, ok, f.Path)
		}
	})

	t.Run("registration failure is a warning", func(t *testing.T) {
		res, err := NewGenerator(newTestType(t)).
			WithDialect(&stubDialect{}).
			WithRegistrar(registrarFunc(func(*Type) error { return errors.New("no aggregator") })).
			Generate(context.Background())
		require.NoError(t, err)
		assert.False(t, res.Registered)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "no aggregator")
	})

	for _, opt := range []Option{WithNoRegister(true), WithDryRun(true)} {
		typ := newTestType(t, opt)
		res, err := NewGenerator(typ).
			WithDialect(&stubDialect{}).
			WithRegistrar(registrarFunc(func(*Type) error { t.Fatal("registrar called"); return nil })).
			Generate(context.Background())
		require.NoError(t, err)
		assert.False(t, res.Registered)
	}

	t.Run("dry run writes nothing", func(t *testing.T) {
		typ := newTestType(t, WithDryRun(true))
		res, err := NewGenerator(typ).WithDialect(&stubDialect{}).Generate(context.Background())
		require.NoError(t, err)
		for _, f := range res.Files {
			assert.Equal(t, ActionDryRun, f.Action)
		}
		ok, err := afero.DirExists(typ.Fs, "src")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
