// SPDX-License-Identifier: MIT
package hierpath

import (
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// MaterializedNode is a tree node storing its path from a root.
	//
	// The path's last segment is expected to be the node's ID.
	MaterializedNode struct {
		ID   string
		Path string
		Name string
	}

	// MaterializedPath holds a forest in materialized-path form.
	//
	// Only the per-node path format is checked on insertion; consistency between nodes is
	// verified by [ToAdjacencyList].
	MaterializedPath struct {
		cfg *Config

		nodes map[string]MaterializedNode

		// order holds identifiers in insertion order.
		order []string
	}
)

// NewMaterializedPath instantiates an empty [MaterializedPath].
func NewMaterializedPath(options ...Option) *MaterializedPath {
	return newMaterializedPath(newConfig(nil, options...))
}

func newMaterializedPath(cfg *Config) *MaterializedPath {
	return &MaterializedPath{
		cfg:   cfg,
		nodes: make(map[string]MaterializedNode),
	}
}

// Config retrieves a copy of the [MaterializedPath]'s options.
func (m *MaterializedPath) Config() Config { return *m.cfg }

// Delimiter retrieves the path delimiter.
func (m *MaterializedPath) Delimiter() rune { return m.cfg.Delimiter }

// AddNode inserts a node whose path has to start with the delimiter.
func (m *MaterializedPath) AddNode(id, path, name string) (err error) {
	switch {
	case id == "":
		return newNodeError(id, fieldID, id, ErrEmptyIdentifier)
	case m.Has(id):
		return newNodeError(id, fieldID, id, ErrDuplicateIdentifier)
	case !strings.HasPrefix(path, string(m.cfg.Delimiter)):
		return newNodeError(id, fieldPath, path, ErrMalformedPath)
	}

	m.nodes[id] = MaterializedNode{ID: id, Path: path, Name: name}
	m.order = append(m.order, id)

	if m.cfg.Debug {
		m.cfg.Logger.WithField("path", path).Debugf("added node: %s", id)
	}

	return
}

// Has checks for the existence of a node.
func (m *MaterializedPath) Has(id string) (ok bool) {
	_, ok = m.nodes[id]
	return
}

// Node retrieves a copy of a node.
func (m *MaterializedPath) Node(id string) (node MaterializedNode, ok bool) {
	node, ok = m.nodes[id]
	return
}

// IDs lists the node identifiers in insertion order.
func (m *MaterializedPath) IDs() []string { return slices.Clone(m.order) }

// Paths maps every node identifier to its path.
func (m *MaterializedPath) Paths() (paths map[string]string) {
	paths = make(map[string]string, len(m.nodes))
	for id, node := range m.nodes {
		paths[id] = node.Path
	}

	return
}

// Len is the number of nodes in the [MaterializedPath].
func (m *MaterializedPath) Len() int { return len(m.nodes) }
