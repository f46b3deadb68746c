package nested_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veldt-labs/argdb/nested"
)

func TestGetSetInverse(t *testing.T) {
	paths := []string{"a", "a.b", "Main.Scheduler.Interval", "x.y.z.w"}
	values := []any{1, "text", 3.5, nil, []any{1, 2}}

	for _, path := range paths {
		for _, value := range values {
			m := make(map[string]any)
			nested.Set(m, path, value)
			assert.Equal(t, value, nested.Get(m, path, "default"), "path %s", path)
		}
	}
}

func TestGetMissing(t *testing.T) {
	m := map[string]any{
		"Main": map[string]any{
			"Scheduler": map[string]any{"Interval": 10},
		},
	}

	assert.Equal(t, 10, nested.Get(m, "Main.Scheduler.Interval", nil))
	assert.Equal(t, "fallback", nested.Get(m, "Main.Scheduler.Missing", "fallback"))
	assert.Equal(t, "fallback", nested.Get(m, "Other.Scheduler.Interval", "fallback"))
	// Intermediate is a scalar, not a mapping
	assert.Equal(t, "fallback", nested.Get(m, "Main.Scheduler.Interval.deeper", "fallback"))
	assert.Nil(t, nested.Get(m, "Main.Missing", nil))
}

func TestSetCreatesIntermediates(t *testing.T) {
	m := make(map[string]any)
	nested.Set(m, "a.b.c", 1)
	nested.Set(m, "a.b.d", 2)

	inner, ok := m["a"].(map[string]any)["b"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, 1, inner["c"])
	assert.Equal(t, 2, inner["d"])
}

func TestSetReplacesScalarIntermediate(t *testing.T) {
	m := map[string]any{"a": 5}
	nested.Set(m, "a.b", 1)
	assert.Equal(t, 1, nested.Get(m, "a.b", nil))
}

func TestSetIdempotent(t *testing.T) {
	m := make(map[string]any)
	nested.Set(m, "a.b", "v")
	nested.Set(m, "a.b", "v")
	assert.Equal(t, "v", nested.Get(m, "a.b", nil))
	assert.Len(t, m["a"].(map[string]any), 1)
}

func TestSetDefault(t *testing.T) {
	m := make(map[string]any)

	nested.SetDefault(m, "a.b", 1)
	assert.Equal(t, 1, nested.Get(m, "a.b", nil))

	// Existing value is kept
	nested.SetDefault(m, "a.b", 2)
	assert.Equal(t, 1, nested.Get(m, "a.b", nil))

	// Explicit nil counts as absent
	nested.Set(m, "a.b", nil)
	nested.SetDefault(m, "a.b", 3)
	assert.Equal(t, 3, nested.Get(m, "a.b", nil))
}
