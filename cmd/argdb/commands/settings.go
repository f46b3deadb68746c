package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/veldt-labs/argdb/settings"
)

// SettingsCmd represents the settings command
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage argdb settings",
	Long: `Display and manage argdb settings.

Settings sources (in order of precedence):
1. Environment variables (ARGDB_* prefix)
2. Project settings (./argdb.toml, searches up directories)
3. User settings (~/.argdb/argdb.toml)
4. System settings (/etc/argdb/argdb.toml)
5. Default values

Examples:
  argdb settings show                  # Show current settings
  argdb settings show --format json    # Show settings in JSON format
  argdb settings get schema.store      # Get a specific value
  argdb settings set codegen.package argconf
  argdb settings validate              # Validate current settings`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Long:  "Display the current argdb settings from all sources",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific settings value",
	Long:  "Get a specific settings value using dot notation (e.g., schema.store, codegen.output)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a user settings value",
	Long: `Set a settings value in the user settings file (~/.argdb/argdb.toml).

The previous file is kept as a rotating backup before writing.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current settings",
	Long:  "Validate that the current argdb settings are usable",
	RunE:  runSettingsValidate,
}

var settingsFormat string

func init() {
	settingsShowCmd.Flags().StringVar(&settingsFormat, "format", "toml", "Output format: toml, json, yaml")

	SettingsCmd.AddCommand(settingsShowCmd)
	SettingsCmd.AddCommand(settingsGetCmd)
	SettingsCmd.AddCommand(settingsSetCmd)
	SettingsCmd.AddCommand(settingsValidateCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	cfg, err := settings.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	switch settingsFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal settings to JSON: %w", err)
		}
		fmt.Println(string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal settings to YAML: %w", err)
		}
		fmt.Printf("# argdb settings\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal settings to TOML: %w", err)
		}
		fmt.Printf("# argdb settings\n%s", string(data))

	default:
		return fmt.Errorf("unsupported format: %s (supported: toml, json, yaml)", settingsFormat)
	}

	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := settings.GetViper()
	if !v.IsSet(key) {
		return fmt.Errorf("settings key %q not found", key)
	}

	fmt.Println(v.Get(key))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := settings.SetUserSetting(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %q: %w", args[0], err)
	}
	fmt.Printf("✓ %s = %s written to %s\n", args[0], args[1], settings.UserSettingsPath())
	return nil
}

func runSettingsValidate(cmd *cobra.Command, args []string) error {
	cfg, err := settings.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	fmt.Println("✓ Settings are valid")
	return nil
}
