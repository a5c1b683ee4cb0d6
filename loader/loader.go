// Package loader creates tables from YAML documents.
// The order of the entries in the document is kept, so if a key
// is given twice, the first occurrence wins.
package loader

import (
	"errors"
	"fmt"
	"github.com/hneemann/cmap"
	"github.com/hneemann/cmap/index"
	"gopkg.in/yaml.v3"
)

// Table is a table read from YAML. Nested mappings are stored as Table values.
type Table = cmap.Lookup[string, any]

// Lookup creates a table from a YAML mapping. Nested mappings become
// nested tables, sequences become []any and scalars are decoded by yaml.
func Lookup(data []byte) (Table, error) {
	root, err := rootMapping(data)
	if err != nil {
		return Table{}, err
	}
	return decoder{}.mapping(root)
}

// Index creates a sorted index from a flat YAML mapping.
// All values need to be decodable to V.
func Index[V any](data []byte) (index.Index[string, V], error) {
	root, err := rootMapping(data)
	if err != nil {
		return index.Index[string, V]{}, err
	}
	entries := make([]cmap.Entry[string, V], 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return index.Index[string, V]{}, fmt.Errorf("non scalar key in line %d", k.Line)
		}
		var val V
		if err := v.Decode(&val); err != nil {
			return index.Index[string, V]{}, fmt.Errorf("could not decode value of %q in line %d: %w", k.Value, v.Line, err)
		}
		entries = append(entries, cmap.E(k.Value, val))
	}
	return index.New(entries...), nil
}

func rootMapping(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty yaml document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("yaml document in line %d is not a mapping", root.Line)
	}
	return root, nil
}

// decoder holds the mappings and sequences which are currently decoded.
// An alias to one of them would never terminate.
type decoder map[*yaml.Node]bool

func (d decoder) mapping(n *yaml.Node) (Table, error) {
	if len(n.Content) == 0 {
		return Table{}, nil
	}
	d[n] = true
	defer delete(d, n)

	entries := make([]cmap.Entry[string, any], 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return Table{}, fmt.Errorf("non scalar key in line %d", k.Line)
		}
		val, err := d.decode(v)
		if err != nil {
			return Table{}, fmt.Errorf("error in value of %q: %w", k.Value, err)
		}
		entries = append(entries, cmap.E[string, any](k.Value, val))
	}
	return cmap.New(entries...), nil
}

func (d decoder) decode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return d.mapping(n)
	case yaml.SequenceNode:
		d[n] = true
		defer delete(d, n)
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.decode(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.AliasNode:
		if n.Alias == nil || d[n.Alias] {
			return nil, fmt.Errorf("recursive alias in line %d", n.Line)
		}
		return d.decode(n.Alias)
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("could not decode line %d: %w", n.Line, err)
		}
		return v, nil
	}
}
