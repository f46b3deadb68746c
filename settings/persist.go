package settings

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/veldt-labs/argdb/errors"
	"github.com/veldt-labs/argdb/logger"
	"github.com/veldt-labs/argdb/nested"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before
// modifying the settings file.
func createBackup(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := path + ".back3"
	back2 := path + ".back2"
	back1 := path + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		// Deletion failures should not block a settings save
		logger.Warnw("failed to delete old settings backup", "file", back3, "error", err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read settings for backup")
	}
	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// loadOrInitializeUserSettings loads the user settings file, or starts an
// empty document if it doesn't exist.
func loadOrInitializeUserSettings() (map[string]any, string, error) {
	path := UserSettingsPath()
	if path == "" {
		return nil, "", errors.New("could not determine home directory")
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return nil, "", errors.Wrap(err, "failed to create .argdb directory")
	}

	var doc map[string]any
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, "", errors.Wrap(err, "failed to parse user settings")
		}
	} else {
		doc = make(map[string]any)
	}

	return doc, path, nil
}

// SetUserSetting writes one dotted key (e.g. "schema.default_language")
// into the user-level settings file, backing up the previous version.
// The cached settings are reset so the next Load sees the change.
func SetUserSetting(key string, value any) error {
	doc, path, err := loadOrInitializeUserSettings()
	if err != nil {
		return err
	}

	nested.Set(doc, key, value)

	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal user settings")
	}
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write user settings")
	}

	Reset()
	return nil
}
