// Package nest provides the NestJS dialect of the module generator.
//
// It implements gen.Dialect and gen.TestGenerator with text/template. Every
// template reads the same gen.Type, and import statements are computed in
// Go per file, so the relative paths follow the depth of each artifact.
//
// Usage:
//
//	import (
//	    "github.com/syssam/modulegen/compiler/gen"
//	    "github.com/syssam/modulegen/compiler/gen/nest"
//	)
//
//	generator := gen.NewGenerator(t)
//	generator.WithDialect(nest.NewDialect())
//	generator.Generate(ctx)
//
// Generated code structure:
//
//	{root}/{targetDir}/{name}/
//	├── {name}.module.ts
//	├── entities/
//	│   ├── {name}.ts              # Entity type and descriptor
//	│   └── {name}.meta.ts         # Type, endpoint and labels
//	├── dtos/
//	│   ├── {name}.dto.ts          # Reference DTOs used by other modules
//	│   ├── {name}.post.dto.ts     # Create payload
//	│   └── {name}.put.dto.ts      # Update payload
//	├── repositories/{name}.repository.ts
//	├── services/{name}.service.ts
//	└── controllers/{name}.controller.ts
package nest

import (
	"bytes"
	"context"
	"embed"
	"regexp"
	"strings"
	"text/template"

	"github.com/syssam/modulegen/compiler/gen"
	"github.com/syssam/modulegen/compiler/gen/registrar"
)

//go:embed template/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("nest").
	Funcs(template.FuncMap{"interp": interp}).
	ParseFS(templateFS, "template/*.tmpl"))

// interp wraps a TypeScript expression for a template literal.
func interp(expr string) string {
	return "${" + expr + "}"
}

// Dialect renders NestJS sources.
type Dialect struct{}

// NewDialect creates a new NestJS dialect.
func NewDialect() *Dialect {
	return &Dialect{}
}

var (
	_ gen.Dialect       = (*Dialect)(nil)
	_ gen.TestGenerator = (*Dialect)(nil)
)

// Name implements gen.Dialect.
func (*Dialect) Name() string { return "nest" }

// GenMeta implements gen.EntityGenerator.
func (*Dialect) GenMeta(t *gen.Type) ([]byte, error) { return execute("meta", metaFile(t)) }

// GenEntity implements gen.EntityGenerator.
func (*Dialect) GenEntity(t *gen.Type) ([]byte, error) { return execute("entity", entityFile(t)) }

// GenBaseDTO implements gen.EntityGenerator.
func (*Dialect) GenBaseDTO(t *gen.Type) ([]byte, error) { return execute("dto", baseDTOFile(t)) }

// GenPostDTO implements gen.EntityGenerator.
func (*Dialect) GenPostDTO(t *gen.Type) ([]byte, error) { return execute("write-dto", postDTOFile(t)) }

// GenPutDTO implements gen.EntityGenerator.
func (*Dialect) GenPutDTO(t *gen.Type) ([]byte, error) { return execute("write-dto", putDTOFile(t)) }

// GenRepository implements gen.EntityGenerator.
func (*Dialect) GenRepository(t *gen.Type) ([]byte, error) {
	return execute("repository", repositoryFile(t))
}

// GenService implements gen.EntityGenerator.
func (*Dialect) GenService(t *gen.Type) ([]byte, error) { return execute("service", serviceFile(t)) }

// GenController implements gen.EntityGenerator.
func (*Dialect) GenController(t *gen.Type) ([]byte, error) {
	return execute("controller", controllerFile(t))
}

// GenModule implements gen.EntityGenerator.
func (*Dialect) GenModule(t *gen.Type) ([]byte, error) { return execute("module", moduleFile(t)) }

// GenServiceSpec implements gen.TestGenerator.
func (*Dialect) GenServiceSpec(t *gen.Type) ([]byte, error) {
	return execute("service-spec", serviceSpecFile(t))
}

// GenControllerSpec implements gen.TestGenerator.
func (*Dialect) GenControllerSpec(t *gen.Type) ([]byte, error) {
	return execute("controller-spec", controllerSpecFile(t))
}

func execute(name string, data any) ([]byte, error) {
	var b bytes.Buffer
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return nil, err
	}
	return tidy(b.Bytes()), nil
}

var (
	trailingSpace = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
	openBlank     = regexp.MustCompile(`([{(\[])\n\n`)
	closeBlank    = regexp.MustCompile(`\n\n(\s*[})\]])`)
)

// tidy normalizes the blank lines left by template conditionals: no
// trailing spaces, no double blank lines, no blank line after an opening
// or before a closing bracket, and exactly one final newline.
func tidy(src []byte) []byte {
	src = trailingSpace.ReplaceAll(src, nil)
	src = blankRuns.ReplaceAll(src, []byte("\n\n"))
	src = openBlank.ReplaceAll(src, []byte("$1\n"))
	src = closeBlank.ReplaceAll(src, []byte("\n$1"))
	return append(bytes.TrimRight(src, "\n"), '\n')
}

// Generate renders the module t with the NestJS dialect, writes it and
// registers it in its aggregator. The prompter, if any, is asked before
// existing files are replaced.
//
// Example:
//
//	res, err := nest.Generate(ctx, t, nil)
func Generate(ctx context.Context, t *gen.Type, p gen.Prompter) (*gen.Result, error) {
	if t == nil || t.Config == nil || strings.TrimSpace(t.Root) == "" {
		return nil, gen.NewConfigError("Root", nil, "missing source root in config")
	}
	return gen.NewGenerator(t).
		WithDialect(NewDialect()).
		WithWriter(gen.NewFileWriter(t.Config).WithPrompter(p)).
		WithRegistrar(registrar.New()).
		Generate(ctx)
}
