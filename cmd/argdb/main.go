package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/argdb/cmd/argdb/commands"
	"github.com/veldt-labs/argdb/logger"
)

var rootCmd = &cobra.Command{
	Use:   "argdb",
	Short: "argdb - Versioned multilingual argument schema store",
	Long: `argdb - Versioned multilingual argument schema store.

argdb merges a YAML schema definition into a persistent row store,
projects typed instance configurations from it, and generates Go
argument declarations for the default language.

Available commands:
  migrate   - Merge the schema definition into the store and regenerate code
  generate  - Regenerate argument declarations from the store
  project   - Rebuild a named instance configuration from the schema
  select    - Query schema rows and instance values
  set       - Write a typed value into an instance configuration
  translate - Update a row's translated name, help, type or options
  menu      - Show the function navigation tree for a language
  watch     - Re-run migration whenever the definition file changes
  settings  - Manage argdb settings

Examples:
  argdb migrate                       # Sync the store with args.yaml
  argdb select --func Main            # Show all rows of func Main
  argdb set Main.Scheduler.Interval 20 --config demo
  argdb watch                         # Live-migrate on definition edits`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		if err := logger.Initialize(false); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.MigrateCmd)
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.ProjectCmd)
	rootCmd.AddCommand(commands.SelectCmd)
	rootCmd.AddCommand(commands.SetCmd)
	rootCmd.AddCommand(commands.TranslateCmd)
	rootCmd.AddCommand(commands.MenuCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.SettingsCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
