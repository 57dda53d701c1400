package gen

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// File is one rendered artifact.
type File struct {
	Artifact Artifact
	// Path relative to the working directory.
	Path    string
	Content []byte
}

// Result reports what a generation run did.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	Files []*WriteResult
	// Registered reports if the module was added to its aggregator.
	Registered bool
	// Warnings are non-fatal problems, such as a failed registration.
	Warnings []string
}

// Generator renders a Type with a dialect, writes the files and registers
// the module.
type Generator struct {
	typ       *Type
	workers   int
	dialect   Dialect
	writer    *FileWriter
	registrar Registrar
}

// NewGenerator creates a generator for t.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/modulegen/compiler/gen/nest"
//
//	g := gen.NewGenerator(t).WithDialect(nest.NewDialect())
//	res, err := g.Generate(ctx)
func NewGenerator(t *Type) *Generator {
	return &Generator{
		typ:     t,
		workers: runtime.GOMAXPROCS(0),
		writer:  NewFileWriter(t.Config),
	}
}

// WithWorkers sets the number of parallel render workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithDialect sets the dialect rendering the files.
func (g *Generator) WithDialect(d Dialect) *Generator {
	g.dialect = d
	return g
}

// WithWriter replaces the file writer.
func (g *Generator) WithWriter(w *FileWriter) *Generator {
	if w != nil {
		g.writer = w
	}
	return g
}

// WithRegistrar sets the registrar used after writing.
func (g *Generator) WithRegistrar(r Registrar) *Generator {
	g.registrar = r
	return g
}

// artifacts returns the artifacts of the run in write order.
func (g *Generator) artifacts() []Artifact {
	var as []Artifact
	tests := g.typ.FeatureEnabled(FeatureTests.Name)
	for _, a := range Artifacts() {
		if a.IsTest() && !tests {
			continue
		}
		as = append(as, a)
	}
	return as
}

// Render renders every file of the module in parallel. Files are returned
// in write order.
func (g *Generator) Render(ctx context.Context) ([]*File, error) {
	if g.dialect == nil {
		return nil, NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Render()")
	}
	as := g.artifacts()
	files := make([]*File, len(as))
	root := g.typ.ModuleRoot()

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for i, a := range as {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(root, filepath.FromSlash(g.typ.Names.File(a)))
			b, ok, err := render(g.dialect, a, g.typ)
			if err != nil {
				return NewGenerationError("render", path, a.String(), err)
			}
			if ok {
				files[i] = &File{Artifact: a, Path: path, Content: b}
			}
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	out := files[:0]
	for _, f := range files {
		if f != nil {
			out = append(out, f)
		}
	}
	return out, nil
}

// Generate renders, writes and registers the module. A failed registration
// does not fail the run: the files are usable, so it becomes a warning.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	logger := g.typ.Log().With("run", res.RunID, "module", g.typ.Names.Pascal)
	logger.Info("generating module", "dialect", g.dialectName(), "root", g.typ.ModuleRoot())

	files, err := g.Render(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		wr, err := g.writer.Write(f.Path, f.Content)
		if err != nil {
			return nil, err
		}
		res.Files = append(res.Files, wr)
	}

	switch {
	case g.typ.NoRegister:
		logger.Info("registration disabled")
	case g.typ.DryRun:
		logger.Info("dry run, registration skipped")
	case g.registrar == nil:
		logger.Debug("no registrar configured")
	default:
		if err := g.registrar.Register(g.typ); err != nil {
			var regErr *RegistrationError
			if !errors.As(err, &regErr) {
				err = NewRegistrationError("", "", err)
			}
			logger.Warn("module not registered", "error", err)
			res.Warnings = append(res.Warnings, err.Error())
			break
		}
		res.Registered = true
	}
	logger.Info("module generated", "files", len(res.Files), "registered", res.Registered)
	return res, nil
}

func (g *Generator) dialectName() string {
	if g.dialect == nil {
		return ""
	}
	return g.dialect.Name()
}
