// Package writer implements the file driver (spec §4.8): validating a
// logical model against its data sources, resolving default
// origin_reference, and emitting Storage Unit Label, EFLR Sets, and
// Frame Data IFLRs as segmented, VR-packed bytes to a buffered output.
//
// Grounded on mebo.go's top-level convenience-constructor idiom (thin
// wrappers around the real packages, built from functional options) for
// Config, and on section/blob's "config struct built by
// internal/options, validated lazily" idiom already used by attribute.New.
package writer

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/internal/options"
	"github.com/dlis-toolkit/dliswriter/visible"
)

// Defaults per spec §6.3.
const (
	DefaultVisibleRecordLength = 8192
	DefaultOutputChunkSize     = 1 << 32
)

// Config holds the file driver's tunables (spec §6.3).
type Config struct {
	VisibleRecordLength   int
	OutputChunkSize       int64
	InputChunkSize        int
	HighCompatibilityMode bool
}

// Option configures a Config at construction time.
type Option = options.Option[*Config]

// WithVisibleRecordLength overrides the default 8192-byte VRL (even,
// [20, 16384]); it caps every Visible Record's size (spec §4.6, §6.3).
func WithVisibleRecordLength(vrl int) Option {
	return options.New(func(c *Config) error {
		if err := visible.ValidateLength(vrl); err != nil {
			return err
		}
		c.VisibleRecordLength = vrl
		return nil
	})
}

// WithOutputChunkSize overrides the default output buffer capacity in
// bytes (spec §4.7, §6.3).
func WithOutputChunkSize(bytes int64) Option {
	return options.New(func(c *Config) error {
		if bytes <= 0 {
			return fmt.Errorf("%w: output chunk size must be positive", errs.ErrOutOfRangeCount)
		}
		c.OutputChunkSize = bytes
		return nil
	})
}

// WithInputChunkSize sets the row-chunk size the file driver requests
// from each Frame's data source (spec §6.3); 0 (the default) means "let
// the data source chunk however it likes."
func WithInputChunkSize(rows int) Option {
	return options.NoError(func(c *Config) { c.InputChunkSize = rows })
}

// WithHighCompatibilityMode enables spec §6.3's stricter validation:
// item names restricted to [A-Z0-9_-]+, attribute units restricted to
// rcode.ValidUnits, and frame-channel membership enforced rather than
// warned. It does not assign file_set_number: every Origin keeps the
// value its caller passed to eflr.NewOrigin, as in the default mode.
func WithHighCompatibilityMode() Option {
	return options.NoError(func(c *Config) { c.HighCompatibilityMode = true })
}

// NewConfig builds a Config from its spec §6.3 defaults, applying opts
// in order.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		VisibleRecordLength: DefaultVisibleRecordLength,
		OutputChunkSize:     DefaultOutputChunkSize,
	}
	if err := options.Apply[*Config](cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
