package db

import (
	"github.com/veldt-labs/argdb/errors"
	"github.com/veldt-labs/argdb/nested"
	"github.com/veldt-labs/argdb/schema"
)

// The selection/upsert API serves an external UI or CLI. Responses are
// nested mappings keyed by path with row mappings at the leaves; requests
// validate their mandatory fields up front and fail fast rather than
// proceeding with partial data. Invalid user values, in contrast, are
// never errors: they silently fall back to the schema default.

// SelectDB returns the schema rows matching the request, re-nested by
// path. At least one of func, group or arg must be filled.
func (d *Database) SelectDB(req schema.Request) (map[string]any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selectDB(req)
}

func (d *Database) selectDB(req schema.Request) (map[string]any, error) {
	if req.Func == "" && req.Group == "" && req.Arg == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill one of func, group or arg in request")
	}

	rows, err := d.store.Search(req.Query())
	if err != nil {
		return nil, err
	}

	response := make(map[string]any)
	for _, row := range rows {
		nested.Set(response, row.Path(), row.AsMap())
	}
	return response, nil
}

// SelectConfig returns the schema-row view plus the corresponding value
// subtree of the named instance configuration, merged at the request path.
func (d *Database) SelectConfig(req schema.Request) (map[string]any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selectConfig(req)
}

func (d *Database) selectConfig(req schema.Request) (map[string]any, error) {
	if req.Func == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill func in request")
	}
	if req.Config == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill config in request")
	}

	response, err := d.selectDB(req)
	if err != nil {
		return nil, err
	}

	cfg, err := d.config(req.Config)
	if err != nil {
		return nil, err
	}
	path := req.Path()
	nested.Set(response, path, nested.Get(cfg, path, nil))
	return response, nil
}

// SelectFunction combines SelectDB and SelectConfig for one function, then
// overlays every argument's live instance value under its row's "value"
// key, producing a single tree suitable for rendering an edit form.
func (d *Database) SelectFunction(req schema.Request) (map[string]any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selectFunction(req)
}

func (d *Database) selectFunction(req schema.Request) (map[string]any, error) {
	if req.Func == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill func in request")
	}
	if req.Lang == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill lang in request")
	}
	if req.Config == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill config in request")
	}

	base := schema.Request{Func: req.Func, Lang: req.Lang, Config: req.Config}
	database, err := d.selectDB(base)
	if err != nil {
		return nil, err
	}
	config, err := d.selectConfig(base)
	if err != nil {
		return nil, err
	}

	for funcName, funcData := range config {
		groups, ok := funcData.(map[string]any)
		if !ok {
			continue
		}
		for groupName, groupData := range groups {
			args, ok := groupData.(map[string]any)
			if !ok {
				continue
			}
			for argName, value := range args {
				if value == nil {
					continue
				}
				nested.Set(database, funcName+"."+groupName+"."+argName+".value", value)
			}
		}
	}
	return database, nil
}

// UpsertConfig types the incoming raw value against the addressed schema
// row, falling back to the schema default when the option set rejects it
// (or it types to nil), writes it into the instance configuration,
// persists, and returns the fresh SelectFunction view.
func (d *Database) UpsertConfig(req schema.Request) (map[string]any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if req.Func == "" || req.Group == "" || req.Arg == "" || req.Lang == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill all of func, group, arg and lang in request")
	}
	if req.Value == nil {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill value in request")
	}
	if req.Config == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill config in request")
	}

	rows, err := d.store.Search(req.Query())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "no schema row at %s for lang %s", req.Path(), req.Lang)
	}
	row := rows[0]

	value, ok := schema.ParseValue(req.Value, row.Option)
	if !ok || value == nil {
		value = row.Value
	}

	cfg, err := d.config(req.Config)
	if err != nil {
		return nil, err
	}
	nested.Set(cfg, req.Path(), value)

	response, err := d.selectFunction(schema.Request{Func: req.Func, Lang: req.Lang, Config: req.Config})
	if err != nil {
		return nil, err
	}
	if err := d.saveConfig(req.Config); err != nil {
		return nil, err
	}
	return response, nil
}

// UpsertDB merges the request's content fields (translated name, help,
// type, value, options) into every row matching the 4-tuple predicate,
// persists the store, and returns the fresh SelectFunction view.
func (d *Database) UpsertDB(req schema.Request) (map[string]any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if req.Func == "" || req.Group == "" || req.Arg == "" || req.Lang == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill all of func, group, arg and lang in request")
	}
	if req.Config == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill config in request")
	}

	if err := d.store.Update(req.Fields(), req.Query()); err != nil {
		return nil, err
	}
	return d.selectFunction(schema.Request{Func: req.Func, Lang: req.Lang, Config: req.Config})
}

// SelectMenu returns all group-level "_info" rows for a language, the
// navigation tree the UI builds its sidebar from.
func (d *Database) SelectMenu(req schema.Request) (map[string]any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if req.Lang == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "must fill lang in request")
	}
	return d.selectDB(schema.Request{Group: schema.Info, Lang: req.Lang})
}
