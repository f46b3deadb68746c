package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order when a raw string looks like neither
// a float nor an integer. Timestamp parsing comes last in the chain since
// it is the slowest and most specific step.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseValue coerces a raw value arriving from an external edit surface
// into a typed value. The second result is false when a non-empty option
// set rejects the raw value; the caller substitutes its own fallback
// (user edits are ignored when invalid, never an error).
//
// Coercion chain for strings: "" becomes nil, a string containing "." is
// tried as a float, otherwise as an integer, then as an ISO-8601
// timestamp, and finally kept verbatim. Non-strings pass through
// unchanged. This is a best-effort ordered chain, not a schema-typed
// parser.
func ParseValue(raw any, options Options) (any, bool) {
	if len(options) > 0 {
		if _, ok := options.Lookup(Stringify(raw)); !ok {
			return nil, false
		}
	}

	s, ok := raw.(string)
	if !ok {
		return raw, true
	}
	if s == "" {
		return nil, true
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	} else {
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return s, true
}

// Stringify renders a value in the canonical string form used for option
// keys, so raw edits compare against option sets regardless of the
// original YAML scalar type.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}
