// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Opts options to guide the lex operation.
	Opts struct {
		Logger    logrus.FieldLogger
		Debug     bool
		Delimiter rune
	}
)

const (
	// defDelimiter is the `rune` prefixing a materialized path & separating its segments.
	defDelimiter = '/'

	emptyRune rune = 0
)

// NewOpts configures the lexer's Opts.
func NewOpts() *Opts {
	return &Opts{
		Delimiter: defDelimiter,
		Logger:    logrus.New(),
	}
}

// Validate populates missing Opts entries with defaults.
func (o *Opts) Validate() {
	if o.Delimiter == emptyRune {
		o.Delimiter = defDelimiter
	}
	if o.Logger == nil {
		o.Logger = logrus.New()
	}
}
