package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/syssam/modulegen/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <schema>",
	Short: "Validate a module schema",
	Long: `Validate a module schema and resolve its relationships against the source
root without writing anything. Exits with code 3 when the schema has errors.`,
	Example: `  # Validate a schema
  modulegen validate schemas/comment.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &generateRequest{
			schema:  args[0],
			cfg:     cfg,
			fs:      afero.NewOsFs(),
			logger:  logger,
			printer: cli.NewPrinter(cmd.OutOrStdout()),
		}
		t, err := req.prepare()
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Schema is valid. %s: %d fields, %d relationships, %d nested routes\n",
				t.Names.Pascal, len(t.Fields), len(t.Relationships), len(t.NestedRoutes))
			for _, r := range t.Relationships {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s -> %s (%s, %s, %s)\n", r.Key, r.Name, r.Cardinality, r.Direction, r.Structure)
			}
		}
		return nil
	},
}
