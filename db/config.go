package db

// Config returns the instance configuration for a named config, projecting
// it from the schema on first access. Later accesses serve the cached
// mapping; if the cache was cleared but the config was already projected
// this process, the file is read back instead of re-projected.
func (d *Database) Config(name string) (map[string]any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.config(name)
}

func (d *Database) config(name string) (map[string]any, error) {
	if data, ok := d.configs[name]; ok {
		return data, nil
	}
	if d.projected[name] {
		data, err := readConfigFile(d.cfg.ConfigPath(name))
		if err != nil {
			return nil, err
		}
		d.configs[name] = data
		return data, nil
	}
	return d.projectConfig(name)
}

// SaveConfig persists the cached instance configuration wholesale.
func (d *Database) SaveConfig(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saveConfig(name)
}

func (d *Database) saveConfig(name string) error {
	data, err := d.config(name)
	if err != nil {
		return err
	}
	return writeConfigFile(d.cfg.ConfigPath(name), data)
}

// ClearConfig drops the cached mapping for a named config, forcing the
// next access to reload it. Call it whenever the underlying file changed
// out from under the cache.
func (d *Database) ClearConfig(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.configs, name)
}
