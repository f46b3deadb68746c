// Package schema defines the argument schema model: rows, option sets,
// requests and predicates, value coercion, and the schema definition walk.
package schema

import "strings"

// Info is the sentinel argument/group name marking a metadata row that
// describes its enclosing group or function rather than an editable
// argument.
const Info = "_info"

// DefaultType is the widget type assigned to arguments that declare none.
const DefaultType = "input"

// Row is one stored record describing a single configurable argument
// (or an info descriptor) for one language.
//
// The 4-tuple (Func, Group, Arg, Lang) is unique within a store.
type Row struct {
	Func   string  `yaml:"func"`
	Group  string  `yaml:"group"`
	Arg    string  `yaml:"arg"`
	Lang   string  `yaml:"lang"`
	Name   string  `yaml:"name"`
	Help   string  `yaml:"help"`
	Type   string  `yaml:"type"`
	Value  any     `yaml:"value"`
	Option Options `yaml:"option,omitempty"`
}

// Key is the identity 4-tuple of a row.
type Key struct {
	Func, Group, Arg, Lang string
}

// Key returns the identity 4-tuple of the row.
func (r Row) Key() Key {
	return Key{Func: r.Func, Group: r.Group, Arg: r.Arg, Lang: r.Lang}
}

// Path returns the dot-joined "func.group.arg" address of the row.
func (r Row) Path() string {
	return strings.Join([]string{r.Func, r.Group, r.Arg}, ".")
}

// IsInfo reports whether the row is a group- or function-level descriptor.
func (r Row) IsInfo() bool {
	return r.Arg == Info || r.Group == Info
}

// AsMap renders the row as a flat mapping, the shape used at the leaves of
// API response trees. The option mapping is always present, empty when the
// argument is not an enumeration.
func (r Row) AsMap() map[string]any {
	return map[string]any{
		"func":   r.Func,
		"group":  r.Group,
		"arg":    r.Arg,
		"lang":   r.Lang,
		"name":   r.Name,
		"help":   r.Help,
		"type":   r.Type,
		"value":  r.Value,
		"option": r.Option.AsMap(),
	}
}

// Fields carries the updatable content fields of a row. Zero-valued fields
// are left untouched on Apply, so a Fields acts as a partial in-place merge.
// Identity fields (func/group/arg/lang) are never updatable.
type Fields struct {
	Name   string
	Help   string
	Type   string
	Value  any
	Option Options
}

// IsZero reports whether the Fields carries nothing to apply.
func (f Fields) IsZero() bool {
	return f.Name == "" && f.Help == "" && f.Type == "" && f.Value == nil && len(f.Option) == 0
}

// Apply merges the non-zero fields into row.
func (f Fields) Apply(row *Row) {
	if f.Name != "" {
		row.Name = f.Name
	}
	if f.Help != "" {
		row.Help = f.Help
	}
	if f.Type != "" {
		row.Type = f.Type
	}
	if f.Value != nil {
		row.Value = f.Value
	}
	if len(f.Option) > 0 {
		row.Option = f.Option
	}
}
