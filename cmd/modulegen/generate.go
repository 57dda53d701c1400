package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/syssam/modulegen/compiler/gen"
	"github.com/syssam/modulegen/compiler/gen/nest"
	"github.com/syssam/modulegen/compiler/load"
	"github.com/syssam/modulegen/internal/cli"
)

var (
	generateDryRun     bool
	generateForce      bool
	generateNoRegister bool
	generateTests      bool
	generateWatch      bool
	generateManifest   string
	generateFeatures   []string
)

var generateCmd = &cobra.Command{
	Use:   "generate <schema>",
	Short: "Generate a module from a schema",
	Long: `Generate the files of a NestJS JSON:API module from a JSON or YAML schema
and register the module in the aggregator of its target directory.

Existing files are kept unless --force is given or the overwrite is confirmed
interactively.`,
	Example: `  # Generate a module
  modulegen generate schemas/comment.json

  # Preview the files without writing them
  modulegen generate schemas/comment.json --dry-run

  # Regenerate whenever the schema changes
  modulegen generate schemas/comment.yaml --watch --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Generate.DryRun = resolveBool(generateDryRun, cfg.Generate.DryRun)
		cfg.Generate.Force = resolveBool(generateForce, cfg.Generate.Force)
		cfg.Generate.NoRegister = resolveBool(generateNoRegister, cfg.Generate.NoRegister)
		cfg.Manifest = resolveString(generateManifest, cfg.Manifest)
		cfg.Generate.Features = append(cfg.Generate.Features, generateFeatures...)
		if generateTests {
			cfg.Generate.Features = append(cfg.Generate.Features, gen.FeatureTests.Name)
		}

		req := &generateRequest{
			schema:   args[0],
			cfg:      cfg,
			fs:       afero.NewOsFs(),
			logger:   logger,
			prompter: cli.NewPrompter(os.Stdin),
			printer:  cli.NewPrinter(cmd.OutOrStdout()),
			quiet:    quiet,
		}
		if !generateWatch {
			_, err := req.run(cmd.Context())
			return err
		}
		return watch(cmd.Context(), req.schema, func() error {
			_, err := req.run(cmd.Context())
			return err
		}, req.printer)
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "render the files without writing them")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "overwrite existing files without asking")
	generateCmd.Flags().BoolVar(&generateNoRegister, "no-register", false, "do not add the module to its aggregator")
	generateCmd.Flags().BoolVar(&generateTests, "tests", false, "also generate service and controller spec files")
	generateCmd.Flags().BoolVar(&generateWatch, "watch", false, "regenerate whenever the schema file changes")
	generateCmd.Flags().StringVar(&generateManifest, "manifest", "", "modules.yaml listing module structures instead of scanning the source root")
	generateCmd.Flags().StringSliceVar(&generateFeatures, "feature", nil, "enable a generator feature (repeatable)")
}

// generateRequest is one schema-to-module run.
type generateRequest struct {
	schema   string
	cfg      *cli.Config
	fs       afero.Fs
	logger   *slog.Logger
	prompter gen.Prompter
	printer  *cli.Printer
	quiet    bool
}

// run loads and validates the schema, then generates the module while
// holding the lock of the source root.
func (r *generateRequest) run(ctx context.Context) (*gen.Result, error) {
	t, err := r.prepare()
	if err != nil {
		return nil, err
	}
	if !t.DryRun {
		wait, err := r.cfg.LockWaitDuration()
		if err != nil {
			return nil, cli.ConfigError("reading configuration", err)
		}
		unlock, err := gen.Lock(ctx, t.Root, wait)
		if err != nil {
			if errors.Is(err, gen.ErrLocked) {
				return nil, cli.GeneralError(fmt.Sprintf("another run is generating into %s", t.Root), err)
			}
			return nil, cli.GeneralError("locking source root", err)
		}
		defer func() { _ = unlock() }()
	}
	res, err := nest.Generate(ctx, t, r.prompter)
	if err != nil {
		return nil, cli.Classify("generating module", err)
	}
	if !r.quiet {
		r.printer.Result(res)
	}
	return res, nil
}

// prepare resolves the schema into a generator Type.
func (r *generateRequest) prepare() (*gen.Type, error) {
	m, err := loadSchema(r.fs, r.schema, r.printer)
	if err != nil {
		return nil, err
	}
	c, err := gen.NewConfig(r.cfg.Options(r.fs, r.logger)...)
	if err != nil {
		return nil, cli.ConfigError("invalid configuration", err)
	}
	registry, err := loadRegistry(c, r.cfg.Manifest)
	if err != nil {
		return nil, err
	}
	t, err := gen.NewType(c, m, registry)
	if err != nil {
		return nil, cli.Classify("resolving module", err)
	}
	return t, nil
}

// loadSchema reads and validates a schema. Warnings are printed, errors
// fail with ExitSchema.
func loadSchema(fs afero.Fs, path string, p *cli.Printer) (*load.Module, error) {
	m, warnings, err := load.Load(fs, path)
	if err != nil {
		return nil, cli.SchemaError("loading schema", err)
	}
	for _, w := range warnings {
		p.Println(p.Warning(w))
	}
	issues := load.Validate(m)
	p.Issues(issues)
	if !issues.Passed() {
		return nil, cli.SchemaError("invalid schema", gen.NewValidationError(issues))
	}
	return m, nil
}

// loadRegistry reads the module structures from the manifest if one is
// configured, by scanning the source root otherwise.
func loadRegistry(c *gen.Config, manifest string) (*gen.StaticRegistry, error) {
	if manifest != "" {
		reg, err := gen.LoadManifest(c.Fs, manifest)
		if err != nil {
			return nil, cli.ConfigError("loading manifest", err)
		}
		return reg, nil
	}
	reg, err := gen.ScanRegistry(c)
	if err != nil {
		return nil, cli.GeneralError("scanning modules", err)
	}
	return reg, nil
}
