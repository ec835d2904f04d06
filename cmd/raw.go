package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pr-of-it/running-dbal/internal/database"
	"github.com/pr-of-it/running-dbal/internal/database/common"
)

var rawCmd = &cobra.Command{
	Use:   "raw <sql-file | query>",
	Short: "Execute raw SQL against the configured database",
	Long: `
Execute a SQL script file or an inline statement. Scripts are split on
semicolons and run statement by statement.

Examples:
  dbal raw db/seed.sql
  dbal raw -q 'DELETE FROM "sessions"'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inline, _ := cmd.Flags().GetBool("query")

		script := args[0]
		source := "inline query"
		if !inline {
			if _, err := os.Stat(args[0]); err == nil {
				content, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read SQL file: %w", err)
				}
				script = string(content)
				source = args[0]
			}
		}

		queries := common.SplitStatements(script)
		if len(queries) == 0 {
			return fmt.Errorf("no SQL statements in %s", source)
		}

		return withSchema(func(ctx context.Context, s *database.Schema) error {
			fmt.Printf("📄 Executing %d statement(s) from %s\n", len(queries), source)
			for i, q := range queries {
				if err := s.Exec(ctx, q); err != nil {
					return fmt.Errorf("statement %d failed: %w", i+1, err)
				}
			}
			color.Green("✅ Done")
			return nil
		})
	},
}

func init() {
	rawCmd.Flags().BoolP("query", "q", false, "treat the argument as a SQL statement")
	rootCmd.AddCommand(rawCmd)
}
