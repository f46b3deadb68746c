package codegen_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/argdb/codegen"
	"github.com/veldt-labs/argdb/schema"
)

func testRows() []schema.Row {
	return []schema.Row{
		{Func: "Main", Group: "_info", Arg: "_info", Lang: "en-US", Name: "Main"},
		{Func: "Main", Group: "Scheduler", Arg: "_info", Lang: "en-US", Name: "Scheduler"},
		{Func: "Main", Group: "Scheduler", Arg: "Interval", Lang: "en-US", Type: "input", Value: 10},
		{Func: "Main", Group: "Scheduler", Arg: "Mode", Lang: "en-US", Type: "select", Value: "a",
			Option: schema.Options{{Key: "a", Label: "Alpha"}, {Key: "b", Label: "Beta"}}},
		{Func: "Restart", Group: "_info", Arg: "_info", Lang: "en-US", Name: "Restart"},
		{Func: "Restart", Group: "Scheduler", Arg: "_info", Lang: "en-US", Name: "Scheduler"},
		{Func: "Restart", Group: "Scheduler", Arg: "Interval", Lang: "en-US", Type: "input", Value: 30},
	}
}

func TestEmit(t *testing.T) {
	lines := codegen.Emit(testRows(), "argconf")
	src := strings.Join(lines, "\n")

	assert.Equal(t, "// Code generated by argdb. DO NOT EDIT.", lines[0])
	assert.Contains(t, src, "package argconf")
	assert.Contains(t, src, `import "github.com/veldt-labs/argdb/schema"`)

	// One header comment per func
	assert.Contains(t, src, "\t// Func \"Main\"")
	assert.Contains(t, src, "\t// Func \"Restart\"")

	// Declarations carry the typed default, plus option keys for selects
	assert.Contains(t, src, "\tScheduler_Interval = schema.NewArgument(\"Scheduler.Interval\", 10)")
	assert.Contains(t, src, "\tScheduler_Mode = schema.NewArgument(\"Scheduler.Mode\", \"a\", \"a\", \"b\")")

	// Info rows never become declarations
	assert.NotContains(t, src, "_info =")
}

func TestEmit_DeduplicatesSharedPaths(t *testing.T) {
	// Scheduler.Interval appears under both Main and Restart; only the
	// first occurrence is declared.
	lines := codegen.Emit(testRows(), "argconf")

	count := 0
	for _, line := range lines {
		if strings.Contains(line, "Scheduler_Interval =") {
			count++
		}
	}
	require.Equal(t, 1, count)
	assert.Contains(t, strings.Join(lines, "\n"), ", 10)")
	assert.NotContains(t, strings.Join(lines, "\n"), ", 30)")
}

func TestEmit_Deterministic(t *testing.T) {
	first := codegen.Emit(testRows(), "argconf")
	second := codegen.Emit(testRows(), "argconf")
	assert.Equal(t, first, second)
}

func TestEmit_ValueLiterals(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []schema.Row{
		{Func: "F", Group: "G", Arg: "Str", Value: "hello"},
		{Func: "F", Group: "G", Arg: "Bool", Value: true},
		{Func: "F", Group: "G", Arg: "Float", Value: 2.0},
		{Func: "F", Group: "G", Arg: "FloatFrac", Value: 1.5},
		{Func: "F", Group: "G", Arg: "Nil", Value: nil},
		{Func: "F", Group: "G", Arg: "Time", Value: ts},
	}
	src := strings.Join(codegen.Emit(rows, "argconf"), "\n")

	assert.Contains(t, src, `("G.Str", "hello")`)
	assert.Contains(t, src, `("G.Bool", true)`)
	assert.Contains(t, src, `("G.Float", 2.0)`)
	assert.Contains(t, src, `("G.FloatFrac", 1.5)`)
	assert.Contains(t, src, `("G.Nil", nil)`)
	assert.Contains(t, src, `("G.Time", schema.MustTime("2024-03-01T12:00:00Z"))`)
}
