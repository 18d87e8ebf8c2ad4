package domain

import (
	"bytes"
	"encoding/json"
	"iter"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Properties is an ordered string to string mapping.
//
// Iteration order is the order in which keys were first set. Setting an
// existing key replaces its value and keeps its original position.
//
// The zero value is ready to use. Properties is not safe for concurrent mutation.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties creates an empty Properties.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set stores value under key.
func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key and whether it exists.
func (p *Properties) Get(key string) (string, bool) {
	value, ok := p.values[key]
	return value, ok
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	return len(p.keys)
}

// Keys returns a copy of the keys in iteration order.
func (p *Properties) Keys() []string {
	return slices.Clone(p.keys)
}

// All iterates over key/value pairs in order.
func (p *Properties) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range p.keys {
			if !yield(key, p.values[key]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the properties.
func (p *Properties) Map() map[string]string {
	if p.values == nil {
		return map[string]string{}
	}
	return maps.Clone(p.values)
}

// MarshalJSON encodes the properties as a JSON object preserving key order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the properties as a YAML mapping preserving key order.
func (p *Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range p.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.values[key]},
		)
	}
	return node, nil
}
