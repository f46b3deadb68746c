package db

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/veldt-labs/argdb/codegen"
	"github.com/veldt-labs/argdb/errors"
	"github.com/veldt-labs/argdb/logger"
	"github.com/veldt-labs/argdb/schema"
	"github.com/veldt-labs/argdb/settings"
)

// GenerateCode writes the generated argument declarations for the default
// language to the settings-configured output file.
func (d *Database) GenerateCode() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generateCode()
}

func (d *Database) generateCode() error {
	output := d.cfg.Codegen.Output
	logger.Infow("updating generated code", "output", output)

	rows, err := d.store.Search(schema.Query{Lang: d.cfg.Schema.Default})
	if err != nil {
		return err
	}

	lines := codegen.Emit(rows, d.cfg.Codegen.Package)

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, settings.DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create codegen directory %s", dir)
		}
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(output, []byte(content), settings.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write generated code %s", output)
	}
	return nil
}
