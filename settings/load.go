package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/veldt-labs/argdb/errors"
)

var globalSettings *Settings
var viperInstance *viper.Viper

// SettingsFileName is the name of the argdb settings file.
const SettingsFileName = "argdb.toml"

// Load reads the argdb settings using Viper, caching the result for the
// process lifetime.
func Load() (*Settings, error) {
	if globalSettings != nil {
		return globalSettings, nil
	}

	v := initViper()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings")
	}

	globalSettings = &s
	return globalSettings, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads settings using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings")
	}
	return &s, nil
}

// LoadFromFile loads settings from a specific file path
func LoadFromFile(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read settings file %s", path)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal settings from %s", path)
	}

	return &s, nil
}

// Reset clears the cached settings (useful for testing)
func Reset() {
	globalSettings = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("ARGDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Merge settings files in precedence order: system < user < project < env vars
	mergeSettingsFiles(v)

	viperInstance = v
	return v
}

// findProjectSettings searches for argdb.toml by walking up the directory
// tree. Returns the first file found, or empty string.
func findProjectSettings() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, SettingsFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeSettingsFiles merges settings files in the correct precedence order
func mergeSettingsFiles(v *viper.Viper) {
	paths := []string{
		filepath.Join("/etc", "argdb", SettingsFileName), // system (lowest precedence)
		UserSettingsPath(),                               // user
	}
	if project := findProjectSettings(); project != "" {
		paths = append(paths, project) // project (highest file precedence, below env vars)
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		temp := viper.New()
		temp.SetConfigFile(path)
		temp.SetConfigType("toml")
		if err := temp.ReadInConfig(); err != nil {
			continue
		}
		for key, value := range temp.AllSettings() {
			v.Set(key, value)
		}
	}
}

// UserSettingsPath returns the path to the user-level settings file in
// ~/.argdb/argdb.toml, or empty string when the home directory is unknown.
func UserSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".argdb", SettingsFileName)
}
