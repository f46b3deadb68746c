package schema

import "time"

// Argument is the runtime value behind one generated declaration; see the
// codegen package for the emitter that produces them.
type Argument struct {
	// Path is the "group.arg" address of the argument.
	Path string
	// Value is the typed default value.
	Value any
	// Options holds the raw option keys in declaration order, empty when
	// the argument is not an enumeration.
	Options []string
}

// NewArgument builds an Argument declaration.
func NewArgument(path string, value any, options ...string) Argument {
	return Argument{Path: path, Value: value, Options: options}
}

// MustTime parses an RFC3339 timestamp, panicking on malformed input.
// Only for use in generated code, where the input is emitter-controlled.
func MustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
