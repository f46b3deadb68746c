// Package store persists the schema row collection.
//
// The store is a single YAML file holding every row. It is loaded
// wholesale into memory on first use and cached for the process lifetime;
// every mutation rewrites the whole file. There is no index; queries are
// linear scans, which is fine at this data scale (hundreds to low
// thousands of rows). The design assumes a single writer at a time.
package store

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/veldt-labs/argdb/errors"
	"github.com/veldt-labs/argdb/logger"
	"github.com/veldt-labs/argdb/schema"
)

// Store is a file-backed schema row collection with a lazily loaded,
// explicitly invalidated in-memory cache.
type Store struct {
	path   string
	rows   []schema.Row
	loaded bool
}

// Open returns a store over the given file. The file is not touched until
// the first read or write; a missing file reads as an empty collection.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// All returns every row, loading the backing file on first use.
func (s *Store) All() ([]schema.Row, error) {
	if !s.loaded {
		rows, err := load(s.path)
		if err != nil {
			return nil, err
		}
		s.rows = rows
		s.loaded = true
	}
	return s.rows, nil
}

// Search returns all rows matching the predicate, in store order.
func (s *Store) Search(q schema.Query) ([]schema.Row, error) {
	rows, err := s.All()
	if err != nil {
		return nil, err
	}
	var out []schema.Row
	for _, row := range rows {
		if q.Match(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

// Update merges fields into every row matching the predicate and persists
// the whole collection. There is no row-level persistence.
func (s *Store) Update(fields schema.Fields, q schema.Query) error {
	if _, err := s.All(); err != nil {
		return err
	}
	matched := 0
	for i := range s.rows {
		if q.Match(s.rows[i]) {
			fields.Apply(&s.rows[i])
			matched++
		}
	}
	logger.Debugw("updated schema rows", "matched", matched, "file", s.path)
	return s.persist()
}

// ReplaceAll swaps the entire collection and persists it. Used by
// migration, which is a full rebuild rather than an incremental patch.
func (s *Store) ReplaceAll(rows []schema.Row) error {
	s.rows = rows
	s.loaded = true
	return s.persist()
}

// Invalidate drops the in-memory cache so the next access reloads the
// backing file. Must be called after anything rewrites the file out from
// under the cache.
func (s *Store) Invalidate() {
	s.rows = nil
	s.loaded = false
}

func load(path string) ([]schema.Row, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema store %s", path)
	}
	var rows []schema.Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrapf(err, "failed to parse schema store %s", path)
	}
	return rows, nil
}

func (s *Store) persist() error {
	data, err := yaml.Marshal(s.rows)
	if err != nil {
		return errors.Wrap(err, "failed to encode schema store")
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create store directory %s", dir)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write schema store %s", s.path)
	}
	return nil
}
