// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/hierpath"
)

func newDemoCmd(r *rootT) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "convert a sample tree to materialized paths & back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			al := hierpath.NewAdjacencyList(r.options()...)
			for _, n := range []hierpath.AdjacencyNode{
				{ID: "A", Name: "Root A"},
				{ID: "B", ParentID: "A", Name: "Node B"},
				{ID: "C", ParentID: "A", Name: "Node C"},
				{ID: "D", ParentID: "B", Name: "Node D"},
			} {
				if err = al.AddNode(n.ID, n.ParentID, n.Name); err != nil {
					return
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Adjacency list:")
			printAdjacency(w, al)

			mp, err := hierpath.ToMaterializedPath(al)
			if err != nil {
				return
			}
			fmt.Fprintln(w, "\nMaterialized path:")
			printMaterialized(w, mp)

			back, err := hierpath.ToAdjacencyList(mp)
			if err != nil {
				return
			}
			fmt.Fprintln(w, "\nBack to adjacency list:")
			printAdjacency(w, back)

			return
		},
	}
}
