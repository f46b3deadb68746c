package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/argdb/schema"
	"github.com/veldt-labs/argdb/store"
)

func testRows() []schema.Row {
	return []schema.Row{
		{Func: "Main", Group: "Scheduler", Arg: "Interval", Lang: "en-US", Name: "Interval", Type: "input", Value: 10},
		{Func: "Main", Group: "Scheduler", Arg: schema.Info, Lang: "en-US", Name: "Scheduler"},
		{Func: "Restart", Group: "Scheduler", Arg: "Interval", Lang: "en-US", Name: "Interval", Type: "select", Value: 30,
			Option: schema.Options{{Key: "30", Label: "30"}, {Key: "60", Label: "60"}}},
	}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.Open(filepath.Join(t.TempDir(), "args_db.yaml"))
	require.NoError(t, s.ReplaceAll(testRows()))
	return s
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	s := store.Open(filepath.Join(t.TempDir(), "absent.yaml"))
	rows, err := s.All()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_PersistsAndReloads(t *testing.T) {
	s := newTestStore(t)

	// A fresh store over the same file sees the same rows
	reopened := store.Open(s.Path())
	rows, err := reopened.All()
	require.NoError(t, err)
	assert.Equal(t, testRows(), rows)
}

func TestStore_SearchWildcards(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.Search(schema.Query{Func: "Main"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = s.Search(schema.Query{Group: "Scheduler", Arg: "Interval"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = s.Search(schema.Query{Lang: "zh-CN"})
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = s.Search(schema.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestStore_UpdatePersists(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(
		schema.Fields{Name: "Restart interval"},
		schema.Query{Func: "Restart", Group: "Scheduler", Arg: "Interval", Lang: "en-US"},
	)
	require.NoError(t, err)

	// Visible through a fresh load from disk
	reopened := store.Open(s.Path())
	rows, err := reopened.Search(schema.Query{Func: "Restart"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Restart interval", rows[0].Name)
	// Untouched fields survive
	assert.Equal(t, 30, rows[0].Value)
	assert.Equal(t, []string{"30", "60"}, rows[0].Option.Keys())
}

func TestStore_InvalidateReloads(t *testing.T) {
	s := newTestStore(t)

	// Rewrite the file behind the cache
	other := store.Open(s.Path())
	require.NoError(t, other.ReplaceAll(testRows()[:1]))

	// Cache still serves the stale rows
	rows, err := s.All()
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	s.Invalidate()
	rows, err = s.All()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestStore_ReplaceAllOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ReplaceAll(nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	rows, err := s.All()
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotEmpty(t, data) // the file exists, holding an empty list
}
