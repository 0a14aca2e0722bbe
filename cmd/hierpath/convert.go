// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/hierpath"
)

type (
	// convertT holds the convert command's flags.
	convertT struct {
		*rootT

		workers   int
		roundTrip bool
	}

	// conversion is the outcome of converting a single source file.
	conversion struct {
		source string
		mp     *hierpath.MaterializedPath
		err    error
	}
)

const defWorkers = 4

// Conversion errors.
var (
	ErrRoundTrip        = errors.New("round-trip mismatch")
	ErrFailedConversion = errors.New("failed conversion(s)")
)

func newConvertCmd(r *rootT) *cobra.Command {
	c := &convertT{rootT: r}

	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "convert YAML adjacency-list records to materialized paths",
		Long: `Each FILE holds a YAML list of {id, parent, name} records, in any order;
an empty or missing parent marks a root. Files are converted concurrently & printed in
argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.run,
	}
	cmd.Flags().IntVar(&c.workers, "workers", defWorkers, "number of files converted concurrently")
	cmd.Flags().BoolVar(&c.roundTrip, "round-trip", false, "convert back & verify the parent relation")

	return cmd
}

func (c *convertT) run(cmd *cobra.Command, sources []string) (err error) {
	results, err := c.convertAll(cmd.Context(), sources)
	if err != nil {
		return
	}

	w := cmd.OutOrStdout()
	failed := 0
	for _, resl := range results {
		if resl.err != nil {
			failed++
			c.logger.WithField("source", resl.source).Error(resl.err)
			continue
		}

		fmt.Fprintf(w, "%s:\n", resl.source)
		printMaterialized(w, resl.mp)
	}

	if failed > 0 {
		err = fmt.Errorf("%w: %d of %d", ErrFailedConversion, failed, len(results))
	}

	return
}

// convertAll converts every source on a worker pool.
//
// Each tree lives within a single task, results are indexed by source position.
func (c *convertT) convertAll(ctx context.Context, sources []string) (results []conversion, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	pool, err := ants.NewPool(c.workers)
	if err != nil {
		return
	}
	defer pool.Release()

	results = make([]conversion, len(sources))
	wg := new(sync.WaitGroup)

	for index := range sources {
		index := index
		wg.Add(1)

		if err = pool.Submit(func() {
			defer wg.Done()

			results[index] = c.convert(ctx, sources[index])
		}); err != nil {
			wg.Done()
			wg.Wait()
			return
		}
	}
	wg.Wait()

	return
}

// convert builds, converts & optionally verifies a single source.
func (c *convertT) convert(ctx context.Context, source string) (resl conversion) {
	resl.source = source
	logger := c.logger.WithField("source", source)

	records, err := loadRecords(source)
	if err != nil {
		resl.err = err
		return
	}

	al, err := hierpath.NewBuildSource(
		hierpath.WithRecords(records),
		hierpath.WithBuildLogger(logger),
		hierpath.WithBuildDebug(c.debug),
	).Build(ctx, append(c.options(), hierpath.WithLogger(logger))...)
	if err != nil {
		resl.err = err
		return
	}

	if resl.mp, resl.err = hierpath.ToMaterializedPath(al); resl.err != nil {
		return
	}
	logger.Debugf("converted %d node(s)", al.Len())

	if !c.roundTrip {
		return
	}

	back, err := hierpath.ToAdjacencyList(resl.mp, hierpath.WithStrictPaths())
	if err != nil {
		resl.err = err
		return
	}
	resl.err = verifyRoundTrip(al, back)

	return
}

// loadRecords reads a YAML list of records.
func loadRecords(source string) (records []hierpath.Record, err error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return
	}

	if err = yaml.Unmarshal(data, &records); err != nil {
		err = fmt.Errorf("parse (%s): %w", source, err)
	}

	return
}

// verifyRoundTrip compares the nodes of two adjacency lists.
func verifyRoundTrip(want, got *hierpath.AdjacencyList) error {
	if want.Len() != got.Len() {
		return fmt.Errorf("%w: %d node(s), want %d", ErrRoundTrip, got.Len(), want.Len())
	}

	for _, id := range want.IDs() {
		wantNode, _ := want.Node(id)
		if gotNode, ok := got.Node(id); !ok || gotNode != wantNode {
			return fmt.Errorf("%w: node (%s) = %+v, want %+v", ErrRoundTrip, id, gotNode, wantNode)
		}
	}

	return nil
}
