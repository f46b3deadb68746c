// Package testing provides shared test fixtures for argdb.
package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/argdb/db"
	"github.com/veldt-labs/argdb/settings"
)

// NewTestSettings returns settings rooted in a per-test temporary
// directory, with a short language list suitable for assertions.
func NewTestSettings(t *testing.T) *settings.Settings {
	t.Helper()
	dir := t.TempDir()
	return &settings.Settings{
		Schema: settings.SchemaConfig{
			Definition: filepath.Join(dir, "args.yaml"),
			Store:      filepath.Join(dir, "args_db.yaml"),
			Languages:  []string{"en-US"},
			Default:    "en-US",
		},
		Instances: settings.InstancesConfig{
			Dir:         filepath.Join(dir, "config"),
			StatsIDPath: "App.Telemetry.StatsID",
		},
		Codegen: settings.CodegenConfig{
			Output:  filepath.Join(dir, "generated", "args.go"),
			Package: "argconf",
		},
	}
}

// CreateTestDB writes the given schema definition document and returns a
// Database over it. The definition is not migrated; call Migrate in the
// test when the store should be populated.
func CreateTestDB(t *testing.T, definition string) *db.Database {
	t.Helper()
	cfg := NewTestSettings(t)
	require.NoError(t, os.WriteFile(cfg.Schema.Definition, []byte(definition), settings.DefaultFilePermissions))
	return db.New(cfg)
}
