// SPDX-License-Identifier: MIT
package hierpath

import (
	"golang.org/x/exp/slices"
)

type (
	// AdjacencyNode is a tree node referencing its parent.
	//
	// An empty ParentID marks a root.
	AdjacencyNode struct {
		ID       string
		ParentID string
		Name     string
	}

	// AdjacencyList holds a forest in adjacency-list form.
	//
	// Parents have to be added before their children, this keeps the forest acyclic.
	// Synchronization is unnecessary, an AdjacencyList is confined to one owner.
	AdjacencyList struct {
		cfg *Config

		nodes map[string]AdjacencyNode

		// order holds identifiers in insertion order.
		order []string

		// children maps a parent identifier to its children; roots live under "".
		children map[string][]string
	}
)

// NewAdjacencyList instantiates an empty [AdjacencyList].
func NewAdjacencyList(options ...Option) *AdjacencyList {
	return newAdjacencyList(newConfig(nil, options...))
}

func newAdjacencyList(cfg *Config) *AdjacencyList {
	return &AdjacencyList{
		cfg:      cfg,
		nodes:    make(map[string]AdjacencyNode),
		children: make(map[string][]string),
	}
}

// Config retrieves a copy of the [AdjacencyList]'s options.
func (a *AdjacencyList) Config() Config { return *a.cfg }

// AddNode inserts a node, an empty parentID adds a root.
func (a *AdjacencyList) AddNode(id, parentID, name string) (err error) {
	switch {
	case id == "":
		return newNodeError(id, fieldID, id, ErrEmptyIdentifier)
	case a.Has(id):
		return newNodeError(id, fieldID, id, ErrDuplicateIdentifier)
	case parentID != "" && !a.Has(parentID):
		return newNodeError(id, fieldParent, parentID, ErrUnknownParent)
	}

	a.nodes[id] = AdjacencyNode{ID: id, ParentID: parentID, Name: name}
	a.order = append(a.order, id)
	a.children[parentID] = append(a.children[parentID], id)

	if a.cfg.Debug {
		a.cfg.Logger.WithField("parent", parentID).Debugf("added node: %s", id)
	}

	return
}

// Has checks for the existence of a node.
func (a *AdjacencyList) Has(id string) (ok bool) {
	_, ok = a.nodes[id]
	return
}

// Node retrieves a copy of a node.
func (a *AdjacencyList) Node(id string) (node AdjacencyNode, ok bool) {
	node, ok = a.nodes[id]
	return
}

// IDs lists the node identifiers in insertion order.
func (a *AdjacencyList) IDs() []string { return slices.Clone(a.order) }

// Roots lists the identifiers of parentless nodes in ascending order.
func (a *AdjacencyList) Roots() []string { return a.ChildrenOf("") }

// ChildrenOf lists the immediate children of a node in ascending order.
//
// The result is empty for a leaf or an unknown parent. An empty parentID lists the roots,
// mirroring [AdjacencyList.AddNode].
func (a *AdjacencyList) ChildrenOf(parentID string) (children []string) {
	children = make([]string, len(a.children[parentID]))
	copy(children, a.children[parentID])
	slices.Sort(children)

	return
}

// Len is the number of nodes in the [AdjacencyList].
func (a *AdjacencyList) Len() int { return len(a.nodes) }
