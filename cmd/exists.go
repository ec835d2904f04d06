package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pr-of-it/running-dbal/internal/database"
)

var existsCmd = &cobra.Command{
	Use:   "exists <table>",
	Short: "Report whether a table exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchema(func(ctx context.Context, s *database.Schema) error {
			exists, err := s.TableExists(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), exists)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(existsCmd)
}
