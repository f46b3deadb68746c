// Package db ties the argument schema together: migration of the schema
// definition into the schema store, projection of per-instance
// configuration files, generated-code output, and the selection/upsert
// API consumed by an external UI or CLI.
package db

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/veldt-labs/argdb/errors"
	"github.com/veldt-labs/argdb/settings"
	"github.com/veldt-labs/argdb/store"
)

// TemplateConfig is the reserved instance name whose configuration mirrors
// the schema defaults. It is regenerated after every migration.
const TemplateConfig = "template"

// Database is the single owner of the schema store and the per-instance
// configuration caches. All state is explicit and invalidated by the
// methods that change the underlying files; the design assumes a single
// writer at a time (whole-file rewrites give no multi-writer guarantees).
type Database struct {
	cfg   *settings.Settings
	store *store.Store

	// Instance configuration cache, keyed by config name. projected marks
	// names already projected by this process, so a later cache miss can
	// read the file back instead of re-projecting.
	configs   map[string]map[string]any
	projected map[string]bool

	// The watcher callback runs on its own goroutine; everything else is
	// synchronous.
	mu sync.Mutex
}

// New builds a Database over the files named by the settings. No file is
// touched until the first operation.
func New(cfg *settings.Settings) *Database {
	return &Database{
		cfg:       cfg,
		store:     store.Open(cfg.StorePath()),
		configs:   make(map[string]map[string]any),
		projected: make(map[string]bool),
	}
}

// Settings returns the settings the database was built with.
func (d *Database) Settings() *settings.Settings {
	return d.cfg
}

// Store exposes the underlying schema store.
func (d *Database) Store() *store.Store {
	return d.store
}

func readConfigFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return make(map[string]any), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read instance configuration %s", path)
	}
	cfg := make(map[string]any)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse instance configuration %s", path)
	}
	if cfg == nil {
		cfg = make(map[string]any)
	}
	return cfg, nil
}

func writeConfigFile(path string, data map[string]any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode instance configuration")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, settings.DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create configuration directory %s", dir)
		}
	}
	if err := os.WriteFile(path, out, settings.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write instance configuration %s", path)
	}
	return nil
}
