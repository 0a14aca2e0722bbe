// SPDX-License-Identifier: MIT
package hierpath

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the tree containers & their converters.
	Config struct {
		// Logger for container & converter messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// Delimiter prefixes every materialized path & separates its segments.
		Delimiter rune

		// StrictPaths enables ancestor chain verification when rebuilding an [AdjacencyList].
		StrictPaths bool
	}

	// Option defines the functional option type for containers & converters.
	Option func(*Config)
)

const (
	// DefaultDelimiter is the materialized path delimiter used when none is configured.
	DefaultDelimiter = '/'

	emptyRune rune = 0
)

// DefConfig obtains the package's default options.
func DefConfig() *Config {
	return &Config{
		Logger:    logrus.New(),
		Delimiter: DefaultDelimiter,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Delimiter == emptyRune {
		c.Delimiter = DefaultDelimiter
	}
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}

// WithConfig replaces the whole [Config].
//
// Options following this one still apply on top of cfg.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}

// WithDelimiter configures the materialized path delimiter.
func WithDelimiter(delimiter rune) Option {
	return func(c *Config) { c.Delimiter = delimiter }
}

// WithStrictPaths enables ancestor chain verification in [ToAdjacencyList].
func WithStrictPaths() Option {
	return func(c *Config) { c.StrictPaths = true }
}

// newConfig applies options over base (or the defaults when base is nil).
func newConfig(base *Config, options ...Option) *Config {
	cfg := DefConfig()
	if base != nil {
		*cfg = *base
	}

	for _, opt := range options {
		opt(cfg)
	}
	cfg.Validate()

	return cfg
}
