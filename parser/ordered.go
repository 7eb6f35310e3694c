package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// orderedMap is a string-keyed collection that preserves the key order of
// the source document. Generation order is observable in emitted code, so
// decoding through a plain Go map would destroy determinism.
type orderedMap[T any] struct {
	keys   []string
	values map[string]*T
}

// unmarshalMapping decodes a YAML mapping node into the ordered map.
// Duplicate keys keep their first position; the last value wins, matching
// plain map decoding.
func (m *orderedMap[T]) unmarshalMapping(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping node", node.Line)
	}

	m.values = make(map[string]*T, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: mapping key: %w", node.Content[i].Line, err)
		}
		value := new(T)
		if err := node.Content[i+1].Decode(value); err != nil {
			return fmt.Errorf("line %d: value for key %q: %w", node.Content[i+1].Line, key, err)
		}
		if _, exists := m.values[key]; !exists {
			m.keys = append(m.keys, key)
		}
		m.values[key] = value
	}
	return nil
}

// Keys returns the keys in document order. The returned slice is shared;
// callers must not modify it.
func (m *orderedMap[T]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries.
func (m *orderedMap[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value for key, or nil if absent.
func (m *orderedMap[T]) Get(key string) *T {
	if m == nil || m.values == nil {
		return nil
	}
	return m.values[key]
}

// set inserts or replaces an entry, preserving first-insertion order.
func (m *orderedMap[T]) set(key string, value *T) {
	if m.values == nil {
		m.values = make(map[string]*T)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}
