// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/hierpath"
)

// rootT holds the flags shared by all commands.
type rootT struct {
	Root *cobra.Command

	debug     bool
	delimiter string

	logger *logrus.Logger
}

// Flag errors.
var (
	ErrInvalidDelimiter = errors.New("the delimiter has to be a single UTF-8 encoded character")
)

func newRootCmd() *cobra.Command {
	r := &rootT{logger: logrus.New()}

	r.Root = &cobra.Command{
		Use:          "hierpath",
		Short:        "adjacency-list & materialized-path tree conversion",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			r.logger.SetOutput(cmd.ErrOrStderr())
			if r.debug {
				r.logger.SetLevel(logrus.DebugLevel)
			}

			if d, size := utf8.DecodeRuneInString(r.delimiter); size != len(r.delimiter) || d == utf8.RuneError {
				return fmt.Errorf("%w: %q", ErrInvalidDelimiter, r.delimiter)
			}

			return nil
		},
	}

	flags := r.Root.PersistentFlags()
	flags.BoolVar(&r.debug, "debug", false, "log debug messages")
	flags.StringVar(&r.delimiter, "delimiter", string(hierpath.DefaultDelimiter), "materialized path delimiter")

	r.Root.AddCommand(newDemoCmd(r), newConvertCmd(r))

	return r.Root
}

// options translates the shared flags into library options.
func (r *rootT) options() []hierpath.Option {
	d, _ := utf8.DecodeRuneInString(r.delimiter)

	return []hierpath.Option{
		hierpath.WithLogger(r.logger),
		hierpath.WithDebug(r.debug),
		hierpath.WithDelimiter(d),
	}
}
