// SPDX-License-Identifier: MIT

package maker

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const mergeTag = "!!merge"

// PropertiesFromYAML reads a YAML mapping into properties, keeping the
// document's key order. Values decode to plain Go values (int, float64,
// string, bool, []any, map[string]any) and are frozen. Top-level merge keys
// (<<: *anchor) are expanded in place, explicit keys winning over merged
// ones. An empty document yields no properties.
//
//	props, err := maker.PropertiesFromYAML(data)
//	banana := maker.A(bananaFn, props...)
func PropertiesFromYAML(data []byte) ([]Property, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level is not a mapping", ErrInvalidFixture, root.Line)
	}

	pairs, err := mappingPairs(root)
	if err != nil {
		return nil, err
	}
	props := make([]Property, 0, len(pairs))
	for _, p := range pairs {
		var v any
		if err := p.val.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrInvalidFixture, p.key.Value, err)
		}
		props = append(props, With(v, p.key.Value))
	}

	return props, nil
}

type nodePair struct{ key, val *yaml.Node }

// mappingPairs flattens a mapping node into key/value pairs, expanding merge
// keys at their position. Explicit keys beat merged ones; among several
// merged mappings the first one listed wins.
func mappingPairs(n *yaml.Node) ([]nodePair, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n == nil || n.Kind != yaml.MappingNode {
		line := 0
		if n != nil {
			line = n.Line
		}
		return nil, fmt.Errorf("%w: line %d: merge value is not a mapping", ErrInvalidFixture, line)
	}

	explicit := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if !isMergeKey(n.Content[i]) {
			explicit[n.Content[i].Value] = true
		}
	}

	seen := make(map[string]bool, len(n.Content)/2)
	pairs := make([]nodePair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if !isMergeKey(key) {
			seen[key.Value] = true
			pairs = append(pairs, nodePair{key: key, val: val})
			continue
		}
		sources := []*yaml.Node{val}
		if val.Kind == yaml.SequenceNode {
			sources = val.Content
		}
		for _, src := range sources {
			merged, err := mappingPairs(src)
			if err != nil {
				return nil, err
			}
			for _, p := range merged {
				if explicit[p.key.Value] || seen[p.key.Value] {
					continue
				}
				seen[p.key.Value] = true
				pairs = append(pairs, p)
			}
		}
	}

	return pairs, nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == mergeTag
}
