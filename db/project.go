package db

import (
	"strings"

	"github.com/google/uuid"

	"github.com/veldt-labs/argdb/logger"
	"github.com/veldt-labs/argdb/nested"
	"github.com/veldt-labs/argdb/schema"
)

// ProjectConfig rebuilds the instance configuration for a named config
// from the current schema: every non-info row of the default language
// contributes its path, seeded with the existing instance value when one
// is present (the schema default otherwise) and re-typed against the
// row's current option set. This both fills new arguments with defaults
// and forward-migrates existing values whenever the schema changes.
//
// The result is persisted, cached, and returned.
func (d *Database) ProjectConfig(name string) (map[string]any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.projectConfig(name)
}

func (d *Database) projectConfig(name string) (map[string]any, error) {
	path := d.cfg.ConfigPath(name)
	logger.Infow("projecting instance configuration", "config", name, "file", path)

	old, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	rows, err := d.store.Search(schema.Query{Lang: d.cfg.Schema.Default})
	if err != nil {
		return nil, err
	}

	fresh := make(map[string]any)
	for _, row := range rows {
		if row.IsInfo() {
			continue
		}
		p := row.Path()
		value := nested.Get(old, p, row.Value)
		typed, ok := schema.ParseValue(value, row.Option)
		if !ok {
			// Out of the option set: the edit is ignored, not an error.
			typed = row.Value
		}
		nested.Set(fresh, p, typed)
	}

	d.checkConfig(fresh, old, name == TemplateConfig)

	if err := writeConfigFile(path, fresh); err != nil {
		return nil, err
	}
	d.configs[name] = fresh
	d.projected[name] = true
	return fresh, nil
}

// checkConfig applies instance-level invariants after projection. The
// statistics identifier is cleared on the template; real instances keep
// the identifier from their prior file, getting a fresh random one only
// when none exists yet. This is the extension point for any future
// cross-cutting instance invariant.
func (d *Database) checkConfig(data, old map[string]any, isTemplate bool) {
	statsPath := d.cfg.Instances.StatsIDPath
	if statsPath == "" {
		return
	}
	if isTemplate {
		nested.Set(data, statsPath, nil)
		return
	}
	if prior := nested.Get(old, statsPath, nil); prior != nil {
		nested.SetDefault(data, statsPath, prior)
		return
	}
	nested.SetDefault(data, statsPath, newStatsID())
}

func newStatsID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
