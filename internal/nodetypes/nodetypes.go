// # internal/nodetypes/nodetypes.go

// Package nodetypes decodes a grammar's node-types.json into a queryable
// schema of the syntax node kinds the grammar can produce.
package nodetypes

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// TypeRef names a node kind that can appear in some position.
type TypeRef struct {
	Type  string `json:"type"`
	Named bool   `json:"named"`
}

// Field describes the nodes allowed under a single field of a parent node.
type Field struct {
	Multiple bool      `json:"multiple"`
	Required bool      `json:"required"`
	Types    []TypeRef `json:"types"`
}

// NodeType is one entry of node-types.json. Entries with Subtypes are
// supertypes (abstract groupings, never produced directly by the parser).
type NodeType struct {
	Type     string           `json:"type"`
	Named    bool             `json:"named"`
	Root     bool             `json:"root,omitempty"`
	Extra    bool             `json:"extra,omitempty"`
	Fields   map[string]Field `json:"fields,omitempty"`
	Children *Field           `json:"children,omitempty"`
	Subtypes []TypeRef        `json:"subtypes,omitempty"`
}

// IsSupertype reports whether this entry groups other node kinds instead of
// appearing in trees itself.
func (n *NodeType) IsSupertype() bool {
	return len(n.Subtypes) > 0
}

// Schema is the decoded node-type schema.
type Schema struct {
	nodes  []NodeType
	byKind map[string]*NodeType
}

// Load decodes node-types.json content.
func Load(data []byte) (*Schema, error) {
	var nodes []NodeType
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("decode node-types: %w", err)
	}
	if len(nodes) == 0 {
		return nil, errors.New("node-types schema is empty")
	}

	s := &Schema{
		nodes:  nodes,
		byKind: make(map[string]*NodeType, len(nodes)),
	}
	for i := range s.nodes {
		n := &s.nodes[i]
		if prev, ok := s.byKind[n.Type]; ok && prev.Named == n.Named {
			return nil, fmt.Errorf("duplicate node type %q", n.Type)
		}
		s.byKind[n.Type] = n
	}
	return s, nil
}

// Lookup returns the entry for a node kind.
func (s *Schema) Lookup(kind string) (*NodeType, bool) {
	n, ok := s.byKind[kind]
	return n, ok
}

// HasNamedKind reports whether kind is a named node the grammar produces,
// either directly or as a supertype.
func (s *Schema) HasNamedKind(kind string) bool {
	n, ok := s.byKind[kind]
	return ok && n.Named
}

// Len returns the number of schema entries.
func (s *Schema) Len() int {
	return len(s.nodes)
}

// All returns every entry, in file order.
func (s *Schema) All() []NodeType {
	return s.nodes
}

// Named returns the named node kinds, sorted.
func (s *Schema) Named() []NodeType {
	return s.filter(func(n *NodeType) bool { return n.Named })
}

// Supertypes returns the supertype entries, sorted.
func (s *Schema) Supertypes() []NodeType {
	return s.filter(func(n *NodeType) bool { return n.IsSupertype() })
}

// Root returns the grammar's root node, if the schema marks one.
func (s *Schema) Root() (*NodeType, bool) {
	for i := range s.nodes {
		if s.nodes[i].Root {
			return &s.nodes[i], true
		}
	}
	return nil, false
}

func (s *Schema) filter(keep func(*NodeType) bool) []NodeType {
	var out []NodeType
	for i := range s.nodes {
		if keep(&s.nodes[i]) {
			out = append(out, s.nodes[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Validate checks internal consistency: every type referenced by a field,
// child list, or supertype must itself be declared. Returns one message per
// dangling reference.
func (s *Schema) Validate() []string {
	var issues []string
	seen := make(map[string]bool)

	report := func(owner, context, kind string) {
		key := owner + "\x00" + kind
		if seen[key] {
			return
		}
		seen[key] = true
		issues = append(issues, fmt.Sprintf("%s: %s references undeclared type %q", owner, context, kind))
	}

	checkRefs := func(owner, context string, refs []TypeRef) {
		for _, ref := range refs {
			if _, ok := s.byKind[ref.Type]; !ok {
				report(owner, context, ref.Type)
			}
		}
	}

	for i := range s.nodes {
		n := &s.nodes[i]
		for name, field := range n.Fields {
			checkRefs(n.Type, "field "+name, field.Types)
		}
		if n.Children != nil {
			checkRefs(n.Type, "children", n.Children.Types)
		}
		checkRefs(n.Type, "subtypes", n.Subtypes)
	}

	sort.Strings(issues)
	return issues
}
