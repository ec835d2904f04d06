package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pr-of-it/running-dbal/internal/database"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Rename, truncate or drop a table",
}

var tableRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a table",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchema(func(ctx context.Context, s *database.Schema) error {
			if err := s.RenameTable(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to rename table: %w", err)
			}
			color.Green("✅ Renamed %s to %s", args[0], args[1])
			return nil
		})
	},
}

var tableTruncateCmd = &cobra.Command{
	Use:   "truncate <table>",
	Short: "Delete every row of a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(cmd, fmt.Sprintf("Delete all rows of %s?", args[0])) {
			color.Yellow("Aborted")
			return nil
		}
		return withSchema(func(ctx context.Context, s *database.Schema) error {
			if err := s.TruncateTable(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to truncate table: %w", err)
			}
			color.Green("✅ Truncated %s", args[0])
			return nil
		})
	},
}

var tableDropCmd = &cobra.Command{
	Use:   "drop <table>",
	Short: "Drop a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(cmd, fmt.Sprintf("Drop table %s?", args[0])) {
			color.Yellow("Aborted")
			return nil
		}
		return withSchema(func(ctx context.Context, s *database.Schema) error {
			if err := s.DropTable(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to drop table: %w", err)
			}
			color.Green("✅ Dropped %s", args[0])
			return nil
		})
	},
}

func init() {
	tableCmd.AddCommand(tableRenameCmd, tableTruncateCmd, tableDropCmd)
	rootCmd.AddCommand(tableCmd)
}
