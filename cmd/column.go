package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pr-of-it/running-dbal/internal/database"
	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Add, drop or rename table columns",
}

var columnAddCmd = &cobra.Command{
	Use:   "add <table> <column> <kind>",
	Short: "Add a column",
	Long: `
Add a column of one of the kinds serial, pk, link, boolean, int, float,
char, string, time, date or datetime.

Examples:
  dbal column add users age int --default 18
  dbal column add users note string --null-default`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := types.ParseColumnKind(args[2])
		if err != nil {
			return err
		}
		col := types.Column{Name: args[1], Kind: kind}

		if nullDefault, _ := cmd.Flags().GetBool("null-default"); nullDefault {
			col.Default = types.NullDefault()
		} else if cmd.Flags().Changed("default") {
			value, _ := cmd.Flags().GetString("default")
			col.Default = types.DefaultOf(value)
		}

		return withSchema(func(ctx context.Context, s *database.Schema) error {
			if err := s.AddColumn(ctx, args[0], col); err != nil {
				return columnError("add column", err)
			}
			color.Green("✅ Added %s.%s", args[0], args[1])
			return nil
		})
	},
}

var columnDropCmd = &cobra.Command{
	Use:   "drop <table> <column>...",
	Short: "Drop columns",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchema(func(ctx context.Context, s *database.Schema) error {
			if err := s.DropColumn(ctx, args[0], args[1:]...); err != nil {
				return columnError("drop column", err)
			}
			color.Green("✅ Dropped %d column(s) from %s", len(args)-1, args[0])
			return nil
		})
	},
}

var columnRenameCmd = &cobra.Command{
	Use:   "rename <table> <old> <new>",
	Short: "Rename a column",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchema(func(ctx context.Context, s *database.Schema) error {
			if err := s.RenameColumn(ctx, args[0], args[1], args[2]); err != nil {
				return columnError("rename column", err)
			}
			color.Green("✅ Renamed %s.%s to %s", args[0], args[1], args[2])
			return nil
		})
	},
}

func columnError(op string, err error) error {
	if errors.Is(err, common.ErrUnsupportedOperation) {
		color.Red("❌ The configured dialect cannot %s without rebuilding the table", op)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func init() {
	columnAddCmd.Flags().String("default", "", "default value")
	columnAddCmd.Flags().Bool("null-default", false, "use DEFAULT NULL")

	columnCmd.AddCommand(columnAddCmd, columnDropCmd, columnRenameCmd)
	rootCmd.AddCommand(columnCmd)
}
