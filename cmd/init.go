package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pr-of-it/running-dbal/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file and an example schema",
	Long: `Create ` + config.FileName + ` and db/schema.yaml in the current directory.

Examples:
  dbal init
  dbal init --provider postgres`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		if provider == "" {
			provider = "sqlite"
		}
		if err := config.InitializeProject(provider); err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}
		color.Green("✅ Created %s for %s", config.FileName, provider)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
