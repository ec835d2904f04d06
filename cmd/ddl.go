package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pr-of-it/running-dbal/internal/database"
	"github.com/pr-of-it/running-dbal/internal/schema"
)

var ddlCmd = &cobra.Command{
	Use:   "ddl [schema-file]",
	Short: "Print the DDL for a schema file",
	Long: `
Compile every table of a YAML schema file into CREATE TABLE and CREATE INDEX
statements for the configured dialect and print them. No database
connection is opened.

Examples:
  dbal ddl
  dbal ddl db/schema.yaml --provider mysql`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := cfg.SchemaPath
		if len(args) > 0 {
			path = args[0]
		}

		tables, err := schema.LoadFile(path)
		if err != nil {
			return err
		}

		dialect, err := database.NewAdapter(cfg.Database.Provider)
		if err != nil {
			return err
		}

		compiled, err := schema.CompileAll(dialect, tables)
		if err != nil {
			return fmt.Errorf("failed to compile schema: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, table := range compiled {
			for _, q := range table.Queries() {
				fmt.Fprintf(out, "%s;\n\n", q.SQL())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ddlCmd)
}
