package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/syssam/modulegen/compiler/gen"
	"github.com/syssam/modulegen/internal/cli"
)

var modulesManifest bool

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the modules of the source root",
	Long: `List the modules found under the source root and the foundation package,
with the structure relationships to them resolve to.

With --manifest the list is printed as a modules.yaml manifest, which
generate --manifest reads instead of scanning.`,
	Example: `  # List modules
  modulegen modules

  # Write a manifest
  modulegen modules --manifest > modules.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := gen.NewConfig(cfg.Options(afero.NewOsFs(), logger)...)
		if err != nil {
			return cli.ConfigError("invalid configuration", err)
		}
		reg, err := loadRegistry(c, cfg.Manifest)
		if err != nil {
			return err
		}
		return listModules(cmd.OutOrStdout(), reg, modulesManifest)
	},
}

func init() {
	modulesCmd.Flags().BoolVar(&modulesManifest, "manifest", false, "print a modules.yaml manifest")
}

func listModules(w io.Writer, reg *gen.StaticRegistry, manifest bool) error {
	if manifest {
		out, err := reg.MarshalManifest()
		if err != nil {
			return cli.GeneralError("encoding manifest", err)
		}
		_, err = w.Write(out)
		return err
	}
	for _, m := range reg.Modules() {
		fmt.Fprintf(w, "%-10s %s\n", m.Structure, m.ModuleRef)
	}
	return nil
}
