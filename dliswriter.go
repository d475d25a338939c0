// Package dliswriter writes RP66 V1 ("DLIS") well-logging binary files.
//
// # Basic Usage
//
// Build a LogicalFile (a File Header, at least one Origin, the Channel
// and Frame Sets describing your data, and the data sources those frames
// read rows from), then write it:
//
//	w, err := dliswriter.New("well.dlis")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	if err := w.WriteLogicalFile(lf); err != nil {
//	    log.Fatal(err)
//	}
//
// A Writer may write more than one LogicalFile to the same physical
// file; the Storage Unit Label is emitted only once, before the first.
//
// # Package Structure
//
// This package provides thin top-level wrappers around writer, eflr,
// and datasource. For fine-grained control — custom EFLR kinds, a
// data-source adapter other than the in-memory one, high-compatibility
// validation — use those packages directly.
package dliswriter

import (
	"github.com/dlis-toolkit/dliswriter/writer"
)

// New creates a Writer for path with spec §6.3's defaults, overridden by
// opts.
func New(path string, opts ...writer.Option) (*writer.Writer, error) {
	return writer.New(path, opts...)
}

// NewConfig builds a writer.Config from spec §6.3's defaults, overridden
// by opts. Exposed for callers that want to validate or inspect
// configuration before creating a Writer.
func NewConfig(opts ...writer.Option) (*writer.Config, error) {
	return writer.NewConfig(opts...)
}

// Re-exported so callers writing `dliswriter.WithX(...)` don't also need
// to import the writer package for simple cases.
var (
	WithVisibleRecordLength   = writer.WithVisibleRecordLength
	WithOutputChunkSize       = writer.WithOutputChunkSize
	WithInputChunkSize        = writer.WithInputChunkSize
	WithHighCompatibilityMode = writer.WithHighCompatibilityMode
)

type (
	// Writer writes one or more LogicalFiles to a physical DLIS file.
	Writer = writer.Writer
	// Config holds a Writer's tunable parameters (spec §6.3).
	Config = writer.Config
	// Option configures a Config.
	Option = writer.Option
	// LogicalFile is one RP66 V1 logical file's complete model (spec §4.8).
	LogicalFile = writer.LogicalFile
	// FrameStream pairs a Frame with the data source its rows come from.
	FrameStream = writer.FrameStream
	// NoFormatRecord is one NoFormat Data IFLR to emit.
	NoFormatRecord = writer.NoFormatRecord
)
