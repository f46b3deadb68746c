// Package settings holds the argdb tool configuration: where the schema
// definition, schema store, instance configurations and generated code
// live, and which languages the schema is maintained in.
package settings

import "path/filepath"

// Settings represents the core argdb configuration
type Settings struct {
	Schema    SchemaConfig    `mapstructure:"schema"`
	Instances InstancesConfig `mapstructure:"instances"`
	Codegen   CodegenConfig   `mapstructure:"codegen"`
}

// SchemaConfig configures the schema definition and the schema store
type SchemaConfig struct {
	Definition string   `mapstructure:"definition"`       // schema definition file (authoritative input)
	Store      string   `mapstructure:"store"`            // persisted schema store file
	Languages  []string `mapstructure:"languages"`        // languages rows are maintained in
	Default    string   `mapstructure:"default_language"` // language used for projection and codegen
}

// InstancesConfig configures per-instance user configuration files
type InstancesConfig struct {
	Dir         string `mapstructure:"dir"`           // directory of per-instance YAML files
	StatsIDPath string `mapstructure:"stats_id_path"` // dotted path of the statistics identifier
}

// CodegenConfig configures generated argument declarations
type CodegenConfig struct {
	Output  string `mapstructure:"output"`  // generated Go file path
	Package string `mapstructure:"package"` // package name of the generated file
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// DefinitionPath returns the schema definition file path.
func (s *Settings) DefinitionPath() string {
	return s.Schema.Definition
}

// StorePath returns the schema store file path.
func (s *Settings) StorePath() string {
	return s.Schema.Store
}

// ConfigPath returns the instance configuration file for a named config.
func (s *Settings) ConfigPath(name string) string {
	return filepath.Join(s.Instances.Dir, name+".yaml")
}
