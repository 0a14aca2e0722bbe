// SPDX-License-Identifier: MIT
package hierpath

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/hierpath/lexer"
)

type (
	// pathFrame is a pending node on the forward conversion's work stack.
	pathFrame struct {
		id         string
		parentPath string
	}

	// segmentedNode is a materialized node alongside its lexed path.
	segmentedNode struct {
		node     MaterializedNode
		segments []string
	}
)

// ToMaterializedPath builds a [MaterializedPath] from an [AdjacencyList].
//
// Nodes are emitted in depth-first pre-order, siblings (roots included) in ascending order,
// so the output is identical for identical input regardless of insertion order.
// The input's Config is inherited, options apply on top of it.
// A nil input yields [ErrNilTree].
func ToMaterializedPath(al *AdjacencyList, options ...Option) (mp *MaterializedPath, err error) {
	if al == nil {
		return nil, fmt.Errorf("%w: adjacency list", ErrNilTree)
	}

	defer func() {
		if err != nil {
			mp = nil
		}
	}()

	cfg := newConfig(al.cfg, options...)
	mp = newMaterializedPath(cfg)
	delimiter := string(cfg.Delimiter)

	// Push in reverse so the smallest sibling is popped first.
	roots := al.Roots()
	stack := make([]pathFrame, 0, len(roots))
	for index := len(roots) - 1; index >= 0; index-- {
		stack = append(stack, pathFrame{id: roots[index]})
	}

	var front pathFrame
	for len(stack) > 0 {
		front, stack = stack[len(stack)-1], stack[:len(stack)-1]

		if strings.Contains(front.id, delimiter) {
			err = newNodeError(front.id, fieldID, front.id, ErrDelimiterInIdentifier)
			return
		}

		node := al.nodes[front.id]
		path := front.parentPath + delimiter + node.ID
		if err = mp.AddNode(node.ID, path, node.Name); err != nil {
			return
		}

		children := al.ChildrenOf(node.ID)
		for index := len(children) - 1; index >= 0; index-- {
			stack = append(stack, pathFrame{id: children[index], parentPath: path})
		}
	}

	if cfg.Debug {
		cfg.Logger.Debugf("materialized %d of %d nodes", mp.Len(), al.Len())
	}

	return
}

// ToAdjacencyList rebuilds an [AdjacencyList] from a [MaterializedPath].
//
// Every path has to end with its node's identifier; nodes are inserted shallowest first so
// each parent, the second-to-last path segment, precedes its children.
// Errors from [AdjacencyList.AddNode] are returned unchanged, a nil input yields [ErrNilTree].
func ToAdjacencyList(mp *MaterializedPath, options ...Option) (al *AdjacencyList, err error) {
	if mp == nil {
		return nil, fmt.Errorf("%w: materialized path", ErrNilTree)
	}

	defer func() {
		if err != nil {
			al = nil
		}
	}()

	cfg := newConfig(mp.cfg, options...)
	lexOpts := lexer.Opts{Logger: cfg.Logger, Debug: cfg.Debug, Delimiter: mp.cfg.Delimiter}

	entries := make([]segmentedNode, 0, mp.Len())
	for _, id := range mp.order {
		node := mp.nodes[id]

		segments := lexer.Split(lexOpts, node.Path)
		switch {
		case len(segments) < 1:
			err = newNodeError(id, fieldPath, node.Path, ErrMalformedPath)
			return
		case segments[len(segments)-1] != id:
			err = newNodeError(id, fieldPath, node.Path, ErrPathIdentityMismatch)
			return
		}

		entries = append(entries, segmentedNode{node: node, segments: segments})
	}

	// Siblings keep their relative order; parent resolution does not depend on it.
	slices.SortStableFunc(entries, func(a, b segmentedNode) int {
		return len(a.segments) - len(b.segments)
	})

	var inserted map[string][]string
	if cfg.StrictPaths {
		inserted = make(map[string][]string, len(entries))
	}

	al = newAdjacencyList(cfg)
	for _, entry := range entries {
		depth := len(entry.segments)

		var parentID string
		if depth > 1 {
			parentID = entry.segments[depth-2]
		}

		if err = al.AddNode(entry.node.ID, parentID, entry.node.Name); err != nil {
			return
		}

		if !cfg.StrictPaths {
			continue
		}

		if parentID != "" && !slices.Equal(inserted[parentID], entry.segments[:depth-1]) {
			err = newNodeError(entry.node.ID, fieldPath, entry.node.Path, ErrAncestorMismatch)
			return
		}
		inserted[entry.node.ID] = entry.segments
	}

	if cfg.Debug {
		cfg.Logger.Debugf("rebuilt %d of %d nodes", al.Len(), mp.Len())
	}

	return
}
