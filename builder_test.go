// SPDX-License-Identifier: MIT
package hierpath

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestBuildSource_Build(t *testing.T) {
	type args struct {
		ctx       context.Context
		records   []Record
		ordered   bool
		nilLogger bool
	}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		args    args
		want    map[string]string
		wantErr error
	}{
		{
			name: "valid (ordered)",
			args: args{
				ctx:     context.Background(),
				records: []Record{{ID: "A"}, {ID: "B", ParentID: "A"}, {ID: "C", ParentID: "B"}},
				ordered: true,
			},
			want: map[string]string{"A": "", "B": "A", "C": "B"},
		},
		{
			name: "valid (unordered)",
			args: args{
				ctx:     context.Background(),
				records: []Record{{ID: "D", ParentID: "B"}, {ID: "C", ParentID: "A"}, {ID: "B", ParentID: "A"}, {ID: "A"}},
			},
			want: map[string]string{"A": "", "B": "A", "C": "A", "D": "B"},
		},
		{
			name: "valid (empty)",
			args: args{ctx: context.Background()},
			want: map[string]string{},
		},
		{
			name: "unordered source declared ordered",
			args: args{
				ctx:     context.Background(),
				records: []Record{{ID: "B", ParentID: "A"}, {ID: "A"}},
				ordered: true,
			},
			wantErr: ErrLocateParents,
		},
		{
			name: "missing parent",
			args: args{
				ctx:     context.Background(),
				records: []Record{{ID: "A"}, {ID: "B", ParentID: "Z"}},
			},
			wantErr: ErrLocateParents,
		},
		{
			name: "cycle",
			args: args{
				ctx:     context.Background(),
				records: []Record{{ID: "A"}, {ID: "B", ParentID: "C"}, {ID: "C", ParentID: "B"}},
			},
			wantErr: ErrLocateParents,
		},
		{
			name: "duplicate identifier",
			args: args{
				ctx:     context.Background(),
				records: []Record{{ID: "A"}, {ID: "B", ParentID: "A"}, {ID: "B", ParentID: "A"}},
			},
			wantErr: ErrDuplicateIdentifier,
		},
		{
			name: "canceled",
			args: args{
				ctx:     canceled,
				records: []Record{{ID: "A"}},
			},
			wantErr: context.Canceled,
		},
		{
			name: "valid (nil logger)",
			args: args{
				ctx:       context.Background(),
				records:   []Record{{ID: "B", ParentID: "A"}, {ID: "A"}},
				nilLogger: true,
			},
			want: map[string]string{"A": "", "B": "A"},
		},
		{
			name: "missing parent (nil logger)",
			args: args{
				ctx:       context.Background(),
				records:   []Record{{ID: "A"}, {ID: "B", ParentID: "Z"}},
				nilLogger: true,
			},
			wantErr: ErrLocateParents,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logger logrus.FieldLogger = logrus.New()
			if tt.args.nilLogger {
				logger = nil
			}

			b := NewBuildSource(
				WithRecords(tt.args.records),
				WithOrdered(tt.args.ordered),
				WithBuildLogger(logger),
				WithBuildDebug(true),
			)

			got, err := b.Build(tt.args.ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BuildSource.Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, ErrBuildTree) {
					t.Errorf("BuildSource.Build() error = %v, want wrapped %v", err, ErrBuildTree)
				}
				if got != nil {
					t.Errorf("BuildSource.Build() = %v, want nil", got)
				}
				return
			}

			parents := make(map[string]string, got.Len())
			for _, id := range got.IDs() {
				node, _ := got.Node(id)
				parents[id] = node.ParentID
			}
			if !reflect.DeepEqual(parents, tt.want) {
				t.Errorf("BuildSource.Build() = %v, want %v", parents, tt.want)
			}
		})
	}
}

func TestBuildSource_Cut(t *testing.T) {
	b := NewBuildSource()
	b.Add(Record{ID: "A"}, Record{ID: "B"}, Record{ID: "C"})

	b.Cut(1)
	if want := []Record{{ID: "A"}, {ID: "C"}}; !reflect.DeepEqual(b.list, want) {
		t.Errorf("BuildSource.Cut(1) = %v, want %v", b.list, want)
	}

	b.Cut(0)
	if want := []Record{{ID: "C"}}; !reflect.DeepEqual(b.list, want) {
		t.Errorf("BuildSource.Cut(0) = %v, want %v", b.list, want)
	}
}

func TestBuildSource_WithRecords(t *testing.T) {
	records := []Record{{ID: "B", ParentID: "A"}, {ID: "A"}}

	if _, err := NewBuildSource(WithRecords(records)).Build(context.Background()); err != nil {
		t.Fatalf("BuildSource.Build() error = %v", err)
	}

	if want := []Record{{ID: "B", ParentID: "A"}, {ID: "A"}}; !reflect.DeepEqual(records, want) {
		t.Errorf("records = %v after build, want %v", records, want)
	}
}
