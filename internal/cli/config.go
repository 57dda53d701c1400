package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/syssam/modulegen/compiler/gen"
)

const (
	maxWalkDepth = 25
)

// Config represents the modulegen configuration from modulegen.yaml.
type Config struct {
	// Src is the NestJS source root holding features/ and foundations/.
	Src string `mapstructure:"src" json:"src"`
	// FoundationPackage is the import specifier of foundation entities.
	FoundationPackage string `mapstructure:"foundation_package" json:"foundation_package"`
	// FoundationDir is probed to detect legacy foundation modules.
	FoundationDir string `mapstructure:"foundation_dir" json:"foundation_dir"`
	// CompanyScoped applies to schemas without companyScoped.
	CompanyScoped bool `mapstructure:"company_scoped" json:"company_scoped"`
	// Manifest replaces the source scan with a modules.yaml listing.
	Manifest string `mapstructure:"manifest" json:"manifest"`

	Generate GenerateConfig `mapstructure:"generate" json:"generate"`
}

// GenerateConfig holds code generation settings.
type GenerateConfig struct {
	DryRun     bool     `mapstructure:"dry_run" json:"dry_run"`
	Force      bool     `mapstructure:"force" json:"force"`
	NoRegister bool     `mapstructure:"no_register" json:"no_register"`
	Features   []string `mapstructure:"features" json:"features"`
	// LockWait bounds the wait for another run holding the source root.
	LockWait string `mapstructure:"lock_wait" json:"lock_wait"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("MODULEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}
	// Relative paths in a config file are relative to the file.
	if configPath != "" {
		base := filepath.Dir(configPath)
		cfg.Src = relativeTo(base, cfg.Src)
		cfg.FoundationDir = relativeTo(base, cfg.FoundationDir)
		cfg.Manifest = relativeTo(base, cfg.Manifest)
	}
	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("src", gen.DefaultRoot)
	v.SetDefault("foundation_package", gen.DefaultFoundationPackage)
	v.SetDefault("foundation_dir", gen.DefaultFoundationDir)
	v.SetDefault("company_scoped", true)
	v.SetDefault("manifest", "")

	v.SetDefault("generate.dry_run", false)
	v.SetDefault("generate.force", false)
	v.SetDefault("generate.no_register", false)
	v.SetDefault("generate.features", []string{})
	v.SetDefault("generate.lock_wait", "10s")
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for modulegen.yaml or modulegen.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range []string{"modulegen.yaml", "modulegen.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

func relativeTo(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// LockWaitDuration parses generate.lock_wait.
func (c *Config) LockWaitDuration() (time.Duration, error) {
	if c.Generate.LockWait == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Generate.LockWait)
	if err != nil {
		return 0, fmt.Errorf("generate.lock_wait: %w", err)
	}
	return d, nil
}

// Options converts the configuration into generator options.
func (c *Config) Options(fs afero.Fs, logger *slog.Logger) []gen.Option {
	return []gen.Option{
		gen.WithRoot(c.Src),
		gen.WithFoundationPackage(c.FoundationPackage),
		gen.WithFoundationDir(c.FoundationDir),
		gen.WithCompanyScoped(c.CompanyScoped),
		gen.WithFeatureNames(c.Generate.Features...),
		gen.WithDryRun(c.Generate.DryRun),
		gen.WithForce(c.Generate.Force),
		gen.WithNoRegister(c.Generate.NoRegister),
		gen.WithFs(fs),
		gen.WithLogger(logger),
	}
}

// NewLogger returns the text logger of the CLI. Warnings are shown by
// default, each -v lowers the level by one step and quiet keeps errors only.
func NewLogger(w io.Writer, verbose int, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose == 1:
		level = slog.LevelInfo
	case verbose > 1:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
