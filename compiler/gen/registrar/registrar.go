// Package registrar adds generated modules to the aggregator module of
// their directory.
package registrar

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/syssam/modulegen/compiler/gen"
)

// AggregatorFile returns the aggregator of dir, relative to the source
// root: features/community holds community.modules.ts.
func AggregatorFile(dir string) string {
	return path.Join(dir, path.Base(dir)+".modules.ts")
}

// AggregatorClass returns the class exported by the aggregator of dir.
func AggregatorClass(dir string) string {
	return gen.Pascal(path.Base(dir)) + "Modules"
}

// Registrar implements gen.Registrar.
type Registrar struct{}

// New creates a Registrar.
func New() *Registrar {
	return &Registrar{}
}

var _ gen.Registrar = (*Registrar)(nil)

// Register lists the module of t in the aggregator of its target
// directory. Missing aggregators of nested directories are created and
// registered in their parent; a missing top-level aggregator is an error.
func (r *Registrar) Register(t *gen.Type) error {
	from := "./" + path.Join(t.Names.Kebab, t.Names.Kebab+".module")
	return r.register(t, t.TargetDir, t.Names.Module, from)
}

func (r *Registrar) register(t *gen.Type, dir, name, from string) error {
	file := filepath.Join(t.Root, filepath.FromSlash(AggregatorFile(dir)))
	logger := t.Log().With("aggregator", file)
	ok, err := afero.Exists(t.Fs, file)
	if err != nil {
		return gen.NewRegistrationError(file, "stat aggregator", err)
	}
	var (
		src     []byte
		created bool
	)
	switch {
	case ok:
		if src, err = afero.ReadFile(t.Fs, file); err != nil {
			return gen.NewRegistrationError(file, "read aggregator", err)
		}
	case !strings.Contains(dir, "/"):
		return gen.NewRegistrationError(file, "aggregator not found", nil)
	default:
		src, created = NewAggregator(AggregatorClass(dir)), true
	}
	agg, err := Parse(src)
	if err != nil {
		return gen.NewRegistrationError(file, "parse aggregator", err)
	}
	if !agg.Add(name, from) && !agg.Modified() {
		logger.Info("module already registered", "name", name)
		return nil
	}
	if err := t.Fs.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return gen.NewRegistrationError(file, "create directory", err)
	}
	if err := afero.WriteFile(t.Fs, file, agg.Bytes(), 0o644); err != nil {
		return gen.NewRegistrationError(file, "write aggregator", err)
	}
	logger.Info("module registered", "name", name, "created", created)
	if !created {
		return nil
	}
	base := path.Base(dir)
	return r.register(t, path.Dir(dir), AggregatorClass(dir), "./"+path.Join(base, base+".modules"))
}
