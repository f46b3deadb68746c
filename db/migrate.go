package db

import (
	"github.com/veldt-labs/argdb/logger"
	"github.com/veldt-labs/argdb/schema"
)

// Migrate rebuilds the schema store from the schema definition, preserving
// translator-entered labels and option-label overrides from the prior
// store. It is a full rebuild: rows for removed arguments are dropped, and
// the new store only replaces the persisted one after the whole definition
// has been walked. Afterwards the store cache is invalidated and the
// template instance configuration regenerated.
//
// Migration is idempotent: a second run with the same definition produces
// a byte-identical store.
func (d *Database) Migrate() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.migrate()
}

func (d *Database) migrate() error {
	logger.Infow("updating argument schema store",
		"definition", d.cfg.DefinitionPath(),
		"store", d.store.Path())

	def, err := schema.LoadDefinition(d.cfg.DefinitionPath())
	if err != nil {
		return err
	}

	priorRows, err := d.store.All()
	if err != nil {
		return err
	}
	prior := make(map[schema.Key]schema.Row, len(priorRows))
	for _, row := range priorRows {
		prior[row.Key()] = row
	}

	var merged []schema.Row
	seen := make(map[schema.Key]bool)
	err = def.Walk(func(leaf schema.Leaf) error {
		for _, lang := range d.cfg.Schema.Languages {
			for _, draft := range draftRows(leaf, lang, seen) {
				merged = append(merged, mergeRow(prior[draft.Key()], draft))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := d.store.ReplaceAll(merged); err != nil {
		return err
	}
	// Reload from disk on next access; the persisted file is the source of
	// truth after a migration.
	d.store.Invalidate()

	if _, err := d.projectConfig(TemplateConfig); err != nil {
		return err
	}

	logger.Infow("schema store migrated", "rows", len(merged))
	return nil
}

// draftRows builds the draft rows one definition leaf contributes for one
// language: the function-level "_info" descriptor, the group-level one,
// then the leaf itself, each emitted only the first time its 4-tuple is
// encountered. Parent-before-child in input order is the fixed emission
// order; it keeps migration idempotent and the store layout stable.
func draftRows(leaf schema.Leaf, lang string, seen map[schema.Key]bool) []schema.Row {
	base := schema.Row{
		Func:   leaf.Func,
		Group:  leaf.Group,
		Arg:    leaf.Arg,
		Lang:   lang,
		Type:   leaf.Type,
		Value:  leaf.Value,
		Option: leaf.Option,
	}

	funcInfo := base
	funcInfo.Group, funcInfo.Arg = schema.Info, schema.Info
	groupInfo := base
	groupInfo.Arg = schema.Info

	out := make([]schema.Row, 0, 3)
	for _, draft := range []schema.Row{funcInfo, groupInfo, base} {
		key := draft.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, draft)
	}
	return out
}

// mergeRow merges a draft row against its prior-store counterpart (the
// zero Row when absent). The draft is authoritative for structure and
// defaults; the prior row supplies the sticky human content.
func mergeRow(old, draft schema.Row) schema.Row {
	row := draft
	if row.Type == "" {
		row.Type = schema.DefaultType
	}

	// Sticky translator content, with visible placeholders for missing
	// translations rather than blanks.
	path := row.Path()
	row.Name = old.Name
	if row.Name == "" {
		row.Name = path + ".name"
	}
	row.Help = old.Help
	if row.Help == "" {
		row.Help = path + ".help"
	}

	// Per-key sticky option labels; a new option surfaces with its raw key
	// as placeholder label until translated.
	if len(draft.Option) > 0 {
		options := make(schema.Options, 0, len(draft.Option))
		for _, opt := range draft.Option {
			label, ok := old.Option.Lookup(opt.Key)
			if !ok {
				label = opt.Key
			}
			options = append(options, schema.Option{Key: opt.Key, Label: label})
		}
		row.Option = options
	}

	// Info rows carry only descriptive metadata.
	if row.Arg == schema.Info {
		row.Type = ""
		row.Value = nil
		row.Option = nil
	}
	return row
}
