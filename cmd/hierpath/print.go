// SPDX-License-Identifier: MIT
package main

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"gitlab.com/fisherprime/hierpath"
)

// printAdjacency renders an AdjacencyList in insertion order.
func printAdjacency(w io.Writer, al *hierpath.AdjacencyList) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"ID", "Parent", "Name"})

	for _, id := range al.IDs() {
		node, _ := al.Node(id)
		tbl.Append([]string{node.ID, node.ParentID, node.Name})
	}
	tbl.Render()
}

// printMaterialized renders a MaterializedPath in insertion order.
func printMaterialized(w io.Writer, mp *hierpath.MaterializedPath) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"ID", "Path", "Name"})

	for _, id := range mp.IDs() {
		node, _ := mp.Node(id)
		tbl.Append([]string{node.ID, node.Path, node.Name})
	}
	tbl.Render()
}
