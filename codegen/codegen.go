// Package codegen renders one language slice of the schema store into
// generated Go argument declarations.
package codegen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/veldt-labs/argdb/schema"
)

// Emit renders the rows into the lines of a generated Go source file.
//
// Rows are taken in store order (the insertion order of the migration
// walk), grouped by func with one header comment each. Every non-info,
// not-yet-visited "group.arg" path contributes one declaration binding the
// path to its typed default value and, for enumerations, the ordered
// option keys. Duplicate paths are never emitted twice, so repeated merge
// passes cannot grow the file. Output is fully deterministic for a fixed
// store state.
func Emit(rows []schema.Row, pkg string) []string {
	lines := []string{
		"// Code generated by argdb. DO NOT EDIT.",
		"// Regenerate with: argdb generate",
		"",
		"package " + pkg,
		"",
		`import "github.com/veldt-labs/argdb/schema"`,
		"",
		"var (",
	}

	visitedPath := make(map[string]bool)
	visitedFunc := make(map[string]bool)
	for _, row := range rows {
		if !visitedFunc[row.Func] {
			lines = append(lines, "", fmt.Sprintf("\t// Func %q", row.Func))
			visitedFunc[row.Func] = true
		}

		path := row.Group + "." + row.Arg
		if visitedPath[path] || strings.Contains(path, schema.Info) {
			continue
		}
		visitedPath[path] = true

		value, ok := schema.ParseValue(row.Value, row.Option)
		if !ok {
			value = row.Value
		}

		var b strings.Builder
		fmt.Fprintf(&b, "\t%s = schema.NewArgument(%q, %s", pathToIdent(path), path, goLiteral(value))
		for _, key := range row.Option.Keys() {
			fmt.Fprintf(&b, ", %q", key)
		}
		b.WriteString(")")
		lines = append(lines, b.String())
	}

	lines = append(lines, ")")
	return lines
}

// pathToIdent converts "Scheduler.Interval" into the generated declaration
// name "Scheduler_Interval".
func pathToIdent(path string) string {
	return strings.ReplaceAll(path, ".", "_")
}

// goLiteral renders a typed default value as Go source.
func goLiteral(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		s := strconv.FormatFloat(t, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case time.Time:
		return fmt.Sprintf("schema.MustTime(%q)", t.Format(time.RFC3339))
	default:
		return fmt.Sprintf("%#v", v)
	}
}
