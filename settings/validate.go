package settings

import (
	"slices"

	"github.com/veldt-labs/argdb/errors"
)

// Validate checks that the settings describe a workable setup.
func (s *Settings) Validate() error {
	if s.Schema.Definition == "" {
		return errors.New("schema.definition must not be empty")
	}
	if s.Schema.Store == "" {
		return errors.New("schema.store must not be empty")
	}
	if len(s.Schema.Languages) == 0 {
		return errors.New("schema.languages must list at least one language")
	}
	if s.Schema.Default == "" {
		return errors.New("schema.default_language must not be empty")
	}
	if !slices.Contains(s.Schema.Languages, s.Schema.Default) {
		return errors.Newf("schema.default_language %q is not among schema.languages", s.Schema.Default)
	}
	if s.Instances.Dir == "" {
		return errors.New("instances.dir must not be empty")
	}
	if s.Codegen.Output == "" {
		return errors.New("codegen.output must not be empty")
	}
	if s.Codegen.Package == "" {
		return errors.New("codegen.package must not be empty")
	}
	return nil
}
