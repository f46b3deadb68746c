package schema

import "strings"

// Request is the flat request shape consumed by the selection/upsert API.
// Which keys are mandatory depends on the entry point; see the db package.
// Name, Help, Type and Option are only meaningful to UpsertDB, where they
// carry the translated content to merge into matching rows.
type Request struct {
	Func   string
	Group  string
	Arg    string
	Lang   string
	Value  any
	Config string

	Name   string
	Help   string
	Type   string
	Option Options
}

// Query builds the row predicate from the request: a conjunction of
// equality tests over the identity fields that are filled in. Absent
// fields are wildcards.
func (r Request) Query() Query {
	return Query{Func: r.Func, Group: r.Group, Arg: r.Arg, Lang: r.Lang}
}

// Path joins the non-empty identity parts with dots, producing the address
// prefix the request targets ("Main", "Main.Scheduler", or
// "Main.Scheduler.Interval").
func (r Request) Path() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.Func, r.Group, r.Arg} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// Fields extracts the row content fields carried by the request.
func (r Request) Fields() Fields {
	return Fields{Name: r.Name, Help: r.Help, Type: r.Type, Value: r.Value, Option: r.Option}
}

// Query is a wildcard-conjunction predicate over row identity fields.
type Query struct {
	Func  string
	Group string
	Arg   string
	Lang  string
}

// Match reports whether the row satisfies every filled-in field.
func (q Query) Match(r Row) bool {
	if q.Func != "" && r.Func != q.Func {
		return false
	}
	if q.Group != "" && r.Group != q.Group {
		return false
	}
	if q.Arg != "" && r.Arg != q.Arg {
		return false
	}
	if q.Lang != "" && r.Lang != q.Lang {
		return false
	}
	return true
}
