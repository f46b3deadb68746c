package schema

import (
	"gopkg.in/yaml.v3"

	"github.com/veldt-labs/argdb/errors"
)

// Option is one raw option key with its display label.
type Option struct {
	Key   string
	Label string
}

// Options is the ordered option set of an enumerated argument. Order is
// declaration order from the schema definition and is preserved through
// YAML round trips, so generated code and merge passes stay deterministic.
type Options []Option

// Lookup returns the display label for key.
func (o Options) Lookup(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Label, true
		}
	}
	return "", false
}

// Keys returns the raw option keys in declaration order.
func (o Options) Keys() []string {
	keys := make([]string, len(o))
	for i, opt := range o {
		keys[i] = opt.Key
	}
	return keys
}

// AsMap renders the option set as a plain key-to-label mapping.
// Never nil, so response leaves always carry an option field.
func (o Options) AsMap() map[string]string {
	m := make(map[string]string, len(o))
	for _, opt := range o {
		m[opt.Key] = opt.Label
	}
	return m
}

// MarshalYAML encodes the option set as a mapping whose key order is the
// declaration order.
func (o Options) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, opt := range o {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: opt.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: opt.Label},
		)
	}
	return node, nil
}

// UnmarshalYAML accepts either a mapping (key: label, the stored form) or a
// sequence of raw keys (the schema-definition shorthand, where each label
// defaults to its key). Keys are normalized to their string form.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		opts := make(Options, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			opts = append(opts, Option{
				Key:   node.Content[i].Value,
				Label: node.Content[i+1].Value,
			})
		}
		*o = opts
		return nil
	case yaml.SequenceNode:
		opts := make(Options, 0, len(node.Content))
		for _, item := range node.Content {
			opts = append(opts, Option{Key: item.Value, Label: item.Value})
		}
		*o = opts
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*o = nil
			return nil
		}
	}
	return errors.Newf("option must be a mapping or a sequence, got %s", node.Tag)
}
