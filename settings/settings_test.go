package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	s, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if s.Schema.Definition != "args.yaml" {
		t.Errorf("expected default definition 'args.yaml', got %q", s.Schema.Definition)
	}
	if s.Schema.Store != "args_db.yaml" {
		t.Errorf("expected default store 'args_db.yaml', got %q", s.Schema.Store)
	}
	if len(s.Schema.Languages) != 1 || s.Schema.Languages[0] != "en-US" {
		t.Errorf("expected default languages [en-US], got %v", s.Schema.Languages)
	}
	if s.Schema.Default != "en-US" {
		t.Errorf("expected default language 'en-US', got %q", s.Schema.Default)
	}
	if s.Codegen.Package != "argconf" {
		t.Errorf("expected default codegen package 'argconf', got %q", s.Codegen.Package)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should validate, got %v", err)
	}
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"schema.definition", "args.yaml"},
		{"schema.store", "args_db.yaml"},
		{"schema.default_language", "en-US"},
		{"instances.dir", "config"},
		{"instances.stats_id_path", "App.Telemetry.StatsID"},
		{"codegen.output", filepath.Join("generated", "args.go")},
		{"codegen.package", "argconf"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := v.Get(tt.key)
			if got != tt.expected {
				t.Errorf("default %s = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() Settings {
		return Settings{
			Schema: SchemaConfig{
				Definition: "args.yaml",
				Store:      "args_db.yaml",
				Languages:  []string{"en-US", "zh-CN"},
				Default:    "en-US",
			},
			Instances: InstancesConfig{Dir: "config"},
			Codegen:   CodegenConfig{Output: "generated/args.go", Package: "argconf"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"valid", func(*Settings) {}, false},
		{"missing definition", func(s *Settings) { s.Schema.Definition = "" }, true},
		{"missing store", func(s *Settings) { s.Schema.Store = "" }, true},
		{"no languages", func(s *Settings) { s.Schema.Languages = nil }, true},
		{"default not in languages", func(s *Settings) { s.Schema.Default = "ja-JP" }, true},
		{"missing instances dir", func(s *Settings) { s.Instances.Dir = "" }, true},
		{"missing codegen output", func(s *Settings) { s.Codegen.Output = "" }, true},
		{"missing codegen package", func(s *Settings) { s.Codegen.Package = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)
	content := `
[schema]
definition = "schema/args.yaml"
default_language = "zh-CN"
languages = ["zh-CN", "en-US"]
`
	if err := os.WriteFile(path, []byte(content), DefaultFilePermissions); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}
	if s.Schema.Definition != "schema/args.yaml" {
		t.Errorf("expected overridden definition, got %q", s.Schema.Definition)
	}
	if s.Schema.Default != "zh-CN" {
		t.Errorf("expected overridden default language, got %q", s.Schema.Default)
	}
	// Defaults still fill the unset keys
	if s.Schema.Store != "args_db.yaml" {
		t.Errorf("expected default store, got %q", s.Schema.Store)
	}
}
