package settings

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// SetDefaults registers the default configuration values on a Viper
// instance. Defaults keep a fresh checkout usable without any settings
// file: schema files in the working directory, instance configs under
// ./config, generated code under ./generated.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("schema.definition", "args.yaml")
	v.SetDefault("schema.store", "args_db.yaml")
	v.SetDefault("schema.languages", []string{"en-US"})
	v.SetDefault("schema.default_language", "en-US")

	v.SetDefault("instances.dir", "config")
	v.SetDefault("instances.stats_id_path", "App.Telemetry.StatsID")

	v.SetDefault("codegen.output", filepath.Join("generated", "args.go"))
	v.SetDefault("codegen.package", "argconf")
}
