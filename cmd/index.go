package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pr-of-it/running-dbal/internal/database"
	"github.com/pr-of-it/running-dbal/internal/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Create or drop indexes",
}

var indexAddCmd = &cobra.Command{
	Use:   "add <table> <column>...",
	Short: "Create an index",
	Long: `
Create an index over one or more columns. A column may carry a direction,
e.g. "created_at DESC". Without --name the index is called
<col1>_<col2>_idx.

Examples:
  dbal index add users email --unique
  dbal index add posts "author_id" "created_at DESC"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := indexFromFlags(cmd, args)
		unique, _ := cmd.Flags().GetBool("unique")
		if unique {
			idx.Kind = types.IndexUnique
		}

		return withSchema(func(ctx context.Context, s *database.Schema) error {
			if err := s.AddIndex(ctx, args[0], idx); err != nil {
				return fmt.Errorf("failed to add index: %w", err)
			}
			color.Green("✅ Created index %s on %s", idx.Name, args[0])
			return nil
		})
	},
}

var indexDropCmd = &cobra.Command{
	Use:   "drop <table> [column]...",
	Short: "Drop an index",
	Long: `
Drop an index by --name, or by the columns it was derived from.

Examples:
  dbal index drop users --name email_idx
  dbal index drop users email`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := indexFromFlags(cmd, args)

		return withSchema(func(ctx context.Context, s *database.Schema) error {
			if err := s.DropIndex(ctx, args[0], idx); err != nil {
				return fmt.Errorf("failed to drop index: %w", err)
			}
			color.Green("✅ Dropped index on %s", args[0])
			return nil
		})
	},
}

func indexFromFlags(cmd *cobra.Command, args []string) *types.Index {
	name, _ := cmd.Flags().GetString("name")
	schemaName, _ := cmd.Flags().GetString("schema")
	return &types.Index{
		Kind:    types.IndexSimple,
		Table:   args[0],
		Columns: args[1:],
		Name:    name,
		Schema:  schemaName,
	}
}

func init() {
	for _, c := range []*cobra.Command{indexAddCmd, indexDropCmd} {
		c.Flags().String("name", "", "index name")
		c.Flags().String("schema", "", "schema that qualifies the index name")
	}
	indexAddCmd.Flags().Bool("unique", false, "create a UNIQUE index")

	indexCmd.AddCommand(indexAddCmd, indexDropCmd)
	rootCmd.AddCommand(indexCmd)
}
