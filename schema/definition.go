package schema

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veldt-labs/argdb/errors"
)

// Definition is the parsed schema definition: a nested mapping of
// func -> group -> arg -> value-or-detail. It is the authoritative source
// for structure and defaults and carries no display labels.
//
// The underlying yaml document is kept as a node tree so the walk follows
// the authored document order; store insertion order and generated-code
// order both depend on it.
type Definition struct {
	root *yaml.Node
}

// Leaf is one argument produced by walking a definition. A bare value leaf
// carries only Value; a detail-mapping leaf may also declare Type and
// Option.
type Leaf struct {
	Func  string
	Group string
	Arg   string

	Value  any
	Type   string
	Option Options
}

// detail is the mapping form of a leaf value.
type detail struct {
	Value  any     `yaml:"value"`
	Type   string  `yaml:"type"`
	Option Options `yaml:"option"`
}

// ParseDefinition parses a schema definition document.
func ParseDefinition(data []byte) (*Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse schema definition")
	}
	if doc.Kind == 0 {
		// Empty document
		return &Definition{}, nil
	}
	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return &Definition{}, nil
		}
		root = doc.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return &Definition{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("schema definition must be a mapping of func -> group -> arg")
	}
	return &Definition{root: root}, nil
}

// LoadDefinition reads and parses a schema definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema definition %s", path)
	}
	return ParseDefinition(data)
}

// Walk visits every argument leaf in document order, func by func, group
// by group. It stops at the first error returned by fn.
func (d *Definition) Walk(fn func(Leaf) error) error {
	if d.root == nil {
		return nil
	}
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		funcName := d.root.Content[i].Value
		funcNode := d.root.Content[i+1]
		if funcNode.Kind != yaml.MappingNode {
			return errors.Newf("func %q must map groups to arguments", funcName)
		}
		for j := 0; j+1 < len(funcNode.Content); j += 2 {
			groupName := funcNode.Content[j].Value
			groupNode := funcNode.Content[j+1]
			if groupNode.Kind != yaml.MappingNode {
				return errors.Newf("group %q of func %q must map argument names to values", groupName, funcName)
			}
			for k := 0; k+1 < len(groupNode.Content); k += 2 {
				leaf, err := decodeLeaf(funcName, groupName, groupNode.Content[k].Value, groupNode.Content[k+1])
				if err != nil {
					return err
				}
				if err := fn(leaf); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// decodeLeaf decodes an argument value node. A mapping node is a detail
// mapping; anything else is a bare default value.
func decodeLeaf(funcName, group, arg string, node *yaml.Node) (Leaf, error) {
	leaf := Leaf{Func: funcName, Group: group, Arg: arg}
	if node.Kind == yaml.MappingNode {
		var det detail
		if err := node.Decode(&det); err != nil {
			return leaf, errors.Wrapf(err, "invalid detail mapping at %s.%s.%s", funcName, group, arg)
		}
		leaf.Value = det.Value
		leaf.Type = det.Type
		leaf.Option = det.Option
		return leaf, nil
	}
	if err := node.Decode(&leaf.Value); err != nil {
		return leaf, errors.Wrapf(err, "invalid value at %s.%s.%s", funcName, group, arg)
	}
	return leaf, nil
}
