// SPDX-License-Identifier: MIT
package hierpath

import (
	"errors"
	"reflect"
	"testing"
)

// newScenarioTree builds a forest of A(root), B(A), C(A) & D(B).
func newScenarioTree(t *testing.T, options ...Option) *AdjacencyList {
	t.Helper()

	al := NewAdjacencyList(options...)
	for _, n := range []AdjacencyNode{
		{ID: "A", Name: "Root A"},
		{ID: "B", ParentID: "A", Name: "Node B"},
		{ID: "C", ParentID: "A", Name: "Node C"},
		{ID: "D", ParentID: "B", Name: "Node D"},
	} {
		if err := al.AddNode(n.ID, n.ParentID, n.Name); err != nil {
			t.Fatalf("AdjacencyList.AddNode(%s) error = %v", n.ID, err)
		}
	}

	return al
}

func TestAdjacencyList_AddNode(t *testing.T) {
	type args struct {
		id       string
		parentID string
		name     string
	}

	tests := []struct {
		name      string
		args      args
		wantErr   error
		wantField string
	}{
		{name: "valid root", args: args{"E", "", "Root E"}},
		{name: "valid child", args: args{"E", "D", ""}},
		{name: "duplicate identifier", args: args{"B", "A", "again"}, wantErr: ErrDuplicateIdentifier, wantField: fieldID},
		{name: "duplicate root", args: args{"A", "", ""}, wantErr: ErrDuplicateIdentifier, wantField: fieldID},
		{name: "unknown parent", args: args{"E", "Z", ""}, wantErr: ErrUnknownParent, wantField: fieldParent},
		{name: "empty identifier", args: args{"", "A", ""}, wantErr: ErrEmptyIdentifier, wantField: fieldID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			al := newScenarioTree(t)
			prevLen := al.Len()

			err := al.AddNode(tt.args.id, tt.args.parentID, tt.args.name)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AdjacencyList.AddNode() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr != nil {
				var nodeErr *NodeError
				if !errors.As(err, &nodeErr) || nodeErr.ID != tt.args.id || nodeErr.Field != tt.wantField {
					t.Errorf("AdjacencyList.AddNode() error = %#v, want field %s of (%s)", err, tt.wantField, tt.args.id)
				}

				if al.Len() != prevLen {
					t.Errorf("AdjacencyList.Len() = %d after rejection, want %d", al.Len(), prevLen)
				}
				return
			}

			if al.Len() != prevLen+1 {
				t.Errorf("AdjacencyList.Len() = %d, want %d", al.Len(), prevLen+1)
			}

			want := AdjacencyNode{ID: tt.args.id, ParentID: tt.args.parentID, Name: tt.args.name}
			if got, ok := al.Node(tt.args.id); !ok || got != want {
				t.Errorf("AdjacencyList.Node() = %+v, %v, want %+v", got, ok, want)
			}
		})
	}
}

func TestAdjacencyList_Roots(t *testing.T) {
	al := NewAdjacencyList()
	if got := al.Roots(); len(got) != 0 {
		t.Errorf("AdjacencyList.Roots() = %v, want none", got)
	}

	for _, id := range []string{"Z", "M", "A"} {
		if err := al.AddNode(id, "", ""); err != nil {
			t.Fatalf("AdjacencyList.AddNode(%s) error = %v", id, err)
		}
	}
	if err := al.AddNode("B", "M", ""); err != nil {
		t.Fatalf("AdjacencyList.AddNode(B) error = %v", err)
	}

	if got, want := al.Roots(), []string{"A", "M", "Z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("AdjacencyList.Roots() = %v, want %v", got, want)
	}
}

func TestAdjacencyList_ChildrenOf(t *testing.T) {
	al := newScenarioTree(t)

	tests := []struct {
		name     string
		parentID string
		want     []string
	}{
		{name: "branch", parentID: "A", want: []string{"B", "C"}},
		{name: "single child", parentID: "B", want: []string{"D"}},
		{name: "leaf", parentID: "D", want: []string{}},
		{name: "unknown parent", parentID: "Z", want: []string{}},
		{name: "roots", parentID: "", want: []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := al.ChildrenOf(tt.parentID); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AdjacencyList.ChildrenOf() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestAdjacencyList_IDs(t *testing.T) {
	al := newScenarioTree(t)

	ids := al.IDs()
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("AdjacencyList.IDs() = %v, want %v", ids, want)
	}

	// Callers own the returned slice.
	ids[0] = "X"
	if got := al.IDs()[0]; got != "A" {
		t.Errorf("AdjacencyList.IDs()[0] = %s after caller mutation, want A", got)
	}
}
