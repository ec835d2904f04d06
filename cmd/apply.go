package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pr-of-it/running-dbal/internal/database"
	"github.com/pr-of-it/running-dbal/internal/schema"
)

var applyCmd = &cobra.Command{
	Use:   "apply [schema-file]",
	Short: "Create the tables of a schema file that do not exist yet",
	Long: `
Create every table of a YAML schema file that is missing from the database,
followed by its indexes. Existing tables are left untouched.

The whole schema is compiled before the first statement is executed.`,
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
		if _, err := schema.CompileAll(dialect, tables); err != nil {
			return fmt.Errorf("failed to compile schema: %w", err)
		}

		return withSchema(func(ctx context.Context, s *database.Schema) error {
			created := 0
			for _, table := range tables {
				exists, err := s.TableExists(ctx, table.Name)
				if err != nil {
					return err
				}
				if exists {
					color.Yellow("⏭️  %s already exists", table.Name)
					continue
				}
				if err := s.CreateTable(ctx, table); err != nil {
					return fmt.Errorf("failed to create table %s: %w", table.Name, err)
				}
				color.Green("✅ Created %s", table.Name)
				for _, idx := range table.Indexes {
					color.Green("   ↳ index %s", idx.Name)
				}
				created++
			}
			fmt.Printf("\n%d of %d tables created\n", created, len(tables))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
