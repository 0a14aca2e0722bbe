// SPDX-License-Identifier: MIT
package hierpath

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Record is a node description that can be read into an [AdjacencyList].
	Record struct {
		ID       string `yaml:"id"`
		ParentID string `yaml:"parent"`
		Name     string `yaml:"name"`
	}

	// BuildSource is a wrapper type for []Record used to generate an [AdjacencyList].
	//
	// Unlike [AdjacencyList.AddNode], records may reference parents appearing later in the
	// list.
	BuildSource struct {
		debug  bool
		logger logrus.FieldLogger

		list      []Record
		isOrdered bool
	}

	// BuildOption defines the BuildSource functional option type.
	BuildOption func(*BuildSource)
)

// Tree building errors.
var (
	ErrBuildTree = errors.New("failed to build tree")

	ErrInvalidTreeSrc = errors.New("invalid tree source")
	ErrLocateParents  = errors.New("unable to locate parent(s)")

	ErrPanicked = errors.New("recovery from panic")
)

// NewBuildSource instantiates a BuildSource.
func NewBuildSource(options ...BuildOption) *BuildSource {
	b := &BuildSource{list: []Record{}, logger: logrus.New()}

	for _, opt := range options {
		opt(b)
	}

	return b
}

// WithRecords configures the underlying list.
//
// The list is copied, building does not modify the caller's slice.
func WithRecords(list []Record) BuildOption {
	return func(b *BuildSource) { b.list = append([]Record{}, list...) }
}

// WithBuildLogger configures the logger option.
func WithBuildLogger(logger logrus.FieldLogger) BuildOption {
	return func(b *BuildSource) { b.logger = logger }
}

// WithBuildDebug configures the debug option.
func WithBuildDebug(debug bool) BuildOption {
	return func(b *BuildSource) { b.debug = debug }
}

// WithOrdered declares that parents precede their children in the list.
//
// An ordered source is built in a single pass, a record preceding its parent fails the
// build.
func WithOrdered(ordered bool) BuildOption {
	return func(b *BuildSource) { b.isOrdered = ordered }
}

// Add appends records to the BuildSource.
func (b *BuildSource) Add(records ...Record) { b.list = append(b.list, records...) }

// Len retrieves the length of the BuildSource.
func (b *BuildSource) Len() int { return len(b.list) }

// Cut a value at some index from the BuildSource.
func (b *BuildSource) Cut(index int) {
	if index == 0 {
		b.list = b.list[1:]
		return
	}

	upper := index + 1
	// Cut upto (excluding) `index`, cut from (including) `index+1`.
	b.list = append(b.list[:index], b.list[upper:]...)
}

// Build generates an [AdjacencyList] from the BuildSource, consuming its records.
//
// Records whose parents never get added, either missing or part of a cycle, fail the build
// with ErrLocateParents.
func (b *BuildSource) Build(ctx context.Context, options ...Option) (al *AdjacencyList, err error) {
	if b.logger == nil {
		b.logger = logrus.New()
	}

	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrBuildTree, err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if err != nil {
			// Skip expensive operation if not debug.
			if b.debug {
				b.logger.Debugf("current tree: %s \nsource remnants: %s", spew.Sprint(al), spew.Sprint(b.list))
			}

			err = fmt.Errorf("%w: %w", ErrInvalidTreeSrc, err)
			al = nil
		}
	}()

	al = NewAdjacencyList(append([]Option{WithLogger(b.logger), WithDebug(b.debug)}, options...)...)

	prevLen := -1
	for {
		lenSrc := b.Len()
		if lenSrc < 1 {
			return
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		if lenSrc == prevLen {
			err = fmt.Errorf("%w for: %s", ErrLocateParents, spew.Sprint(b.list))
			return
		}
		prevLen = lenSrc

		for index := 0; index < lenSrc; index++ {
			record := b.list[index]

			// Parent not in the tree yet.
			if record.ParentID != "" && !al.Has(record.ParentID) {
				continue
			}

			if err = al.AddNode(record.ID, record.ParentID, record.Name); err != nil {
				return
			}

			// Remove added node from the build source.
			b.Cut(index)
			index--
			lenSrc--
		}

		if b.debug {
			b.logger.Debugf("source remnants: %d record(s)", b.Len())
		}

		if b.isOrdered && b.Len() > 0 {
			err = fmt.Errorf("%w for: %s", ErrLocateParents, spew.Sprint(b.list))
			return
		}
	}
}
