package gen

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// Defaults applied by NewConfig.
const (
	DefaultRoot              = "src"
	DefaultFoundationPackage = "@carlonicora/nestjs-neo4jsonapi"
	DefaultFoundationDir     = "node_modules/@carlonicora/nestjs-neo4jsonapi/dist/foundations"
)

// Config holds the global configuration of a generation run.
type Config struct {
	// Root is the source root holding the features/ and foundations/
	// directories. Every generated path is relative to it.
	Root string

	// FoundationPackage is the import specifier used for entities that live
	// in the foundation package.
	FoundationPackage string

	// FoundationDir is the on-disk location of the foundation package
	// modules. It is probed to tell legacy foundation modules apart.
	FoundationDir string

	// CompanyScoped is used for modules that do not set companyScoped.
	CompanyScoped bool

	// Features enabled for the run.
	Features []Feature

	// DryRun renders every file without touching the filesystem.
	DryRun bool

	// Force overwrites existing files without asking.
	Force bool

	// NoRegister skips splicing the module into its aggregator.
	NoRegister bool

	// Fs is the filesystem generated files are read from and written to.
	Fs afero.Fs

	// Logger receives structured progress records.
	Logger *slog.Logger
}

// Option configures code generation.
type Option func(*Config) error

// NewConfig returns a Config with defaults applied, then the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Root:              DefaultRoot,
		FoundationPackage: DefaultFoundationPackage,
		FoundationDir:     DefaultFoundationDir,
		CompanyScoped:     true,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	for _, f := range AllFeatures {
		if f.Default && !c.FeatureEnabled(f.Name) {
			c.Features = append(c.Features, f)
		}
	}
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}

// WithRoot sets the source root directory.
func WithRoot(root string) Option {
	return func(c *Config) error {
		if root == "" {
			return NewConfigError("Root", nil, "root cannot be empty")
		}
		c.Root = filepath.Clean(root)
		return nil
	}
}

// WithFoundationPackage sets the import specifier of the foundation package.
func WithFoundationPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("FoundationPackage", nil, "foundation package cannot be empty")
		}
		if strings.HasPrefix(pkg, ".") || strings.HasPrefix(pkg, "/") {
			return NewConfigError("FoundationPackage", pkg, "foundation package must be a package specifier, not a path")
		}
		c.FoundationPackage = pkg
		return nil
	}
}

// WithFoundationDir sets where the foundation modules live on disk.
// An empty dir disables probing, and foundation targets resolve to the
// descriptor structure.
func WithFoundationDir(dir string) Option {
	return func(c *Config) error {
		c.FoundationDir = dir
		return nil
	}
}

// WithCompanyScoped sets the default company scoping of modules.
func WithCompanyScoped(scoped bool) Option {
	return func(c *Config) error {
		c.CompanyScoped = scoped
		return nil
	}
}

// WithFeatures enables the given features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if !c.FeatureEnabled(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Features", name, "unknown feature; use one of "+strings.Join(FeatureNames(), ", "))
			}
			if !c.FeatureEnabled(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithDryRun toggles dry-run mode.
func WithDryRun(v bool) Option {
	return func(c *Config) error {
		c.DryRun = v
		return nil
	}
}

// WithForce toggles overwriting existing files.
func WithForce(v bool) Option {
	return func(c *Config) error {
		c.Force = v
		return nil
	}
}

// WithNoRegister toggles aggregator registration.
func WithNoRegister(v bool) Option {
	return func(c *Config) error {
		c.NoRegister = v
		return nil
	}
}

// WithFs sets the filesystem used for reads and writes.
func WithFs(fs afero.Fs) Option {
	return func(c *Config) error {
		if fs == nil {
			return NewConfigError("Fs", nil, "filesystem cannot be nil")
		}
		c.Fs = fs
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// FeatureEnabled reports if the named feature is enabled.
func (c *Config) FeatureEnabled(name string) bool {
	return slices.ContainsFunc(c.Features, func(f Feature) bool {
		return f.Name == name
	})
}

// ModuleRoot returns the directory of a module, relative to the working
// directory: <root>/<targetDir>/<kebab>.
func (c *Config) ModuleRoot(targetDir, kebab string) string {
	return filepath.Join(c.Root, filepath.FromSlash(targetDir), kebab)
}

// Log returns the logger of the config, or one discarding records.
func (c *Config) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
