package commands

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/veldt-labs/argdb/db"
	"github.com/veldt-labs/argdb/settings"
)

// openDatabase loads and validates settings, then opens the schema
// database over them. Every command that touches the store goes through
// here so they all see the same configuration cascade.
func openDatabase() (*db.Database, error) {
	cfg, err := settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return db.New(cfg), nil
}

// printYAML renders a selection response for the terminal.
func printYAML(data map[string]any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
