package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd represents the migrate command
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Merge the schema definition into the store",
	Long: `Merge the schema definition file into the persistent row store.

Reads the YAML definition, merges it with the existing store rows for
every configured language (keeping translated names, help texts and
option labels), rewrites the store, refreshes the template instance
configuration and regenerates the argument declarations.

Examples:
  argdb migrate                # Sync store, template config and generated code`,
	RunE: runMigrate,
}

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate argument declarations from the store",
	Long: `Regenerate the Go argument declarations for the default language.

Reads the current store rows and rewrites the configured output file.
Run this after editing the store directly; "argdb migrate" already
includes it.`,
	RunE: runGenerate,
}

// ProjectCmd represents the project command
var ProjectCmd = &cobra.Command{
	Use:   "project <config>",
	Short: "Rebuild a named instance configuration",
	Long: `Rebuild a named instance configuration from the current schema.

Existing values are kept and re-typed against the schema; new arguments
are filled with their defaults. The template instance never carries a
statistics identifier, real instances always do.

Examples:
  argdb project template       # Refresh the template configuration
  argdb project demo           # Create or migrate the "demo" instance`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	d, err := openDatabase()
	if err != nil {
		return err
	}
	if err := d.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := d.GenerateCode(); err != nil {
		return fmt.Errorf("code generation failed: %w", err)
	}
	fmt.Printf("✓ Store migrated: %s\n", d.Settings().StorePath())
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := openDatabase()
	if err != nil {
		return err
	}
	if err := d.GenerateCode(); err != nil {
		return fmt.Errorf("code generation failed: %w", err)
	}
	fmt.Printf("✓ Code generated: %s\n", d.Settings().Codegen.Output)
	return nil
}

func runProject(cmd *cobra.Command, args []string) error {
	d, err := openDatabase()
	if err != nil {
		return err
	}
	name := args[0]
	if _, err := d.ProjectConfig(name); err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}
	fmt.Printf("✓ Instance configuration written: %s\n", d.Settings().ConfigPath(name))
	return nil
}
