package writer

import (
	"os"

	"github.com/dlis-toolkit/dliswriter/internal/pool"
)

// Output is the file driver's buffered output (spec §4.7): a
// fixed-capacity byte buffer that flushes to disk when the next write
// would overflow it. The first flush truncates the target path; every
// later flush appends to the handle the first flush opened, which stays
// open for the Output's lifetime (spec §5: "the output file handle is
// exclusively owned by the driver for the duration of write").
//
// Grounded on internal/pool.ByteBuffer/ByteBufferPool, mebo's own
// amortized-growth buffer, reused here as the accumulation buffer rather
// than a per-blob scratch space.
type Output struct {
	path     string
	capacity int64
	buf      *pool.ByteBuffer
	file     *os.File
}

// NewOutput creates an Output writing to path with the given capacity
// in bytes (spec §6.3's output_chunk_size).
func NewOutput(path string, capacity int64) *Output {
	if capacity <= 0 {
		capacity = DefaultOutputChunkSize
	}
	return &Output{path: path, capacity: capacity, buf: pool.GetOutputBuffer()}
}

// Write appends b to the buffer, flushing first if b would overflow the
// configured capacity.
func (o *Output) Write(b []byte) error {
	if int64(o.buf.Len())+int64(len(b)) > o.capacity {
		if err := o.Flush(); err != nil {
			return err
		}
	}
	o.buf.MustWrite(b)
	return nil
}

// Flush writes any buffered bytes to disk and resets the buffer. It is a
// no-op when nothing is buffered.
func (o *Output) Flush() error {
	if o.buf.Len() == 0 {
		return nil
	}

	if o.file == nil {
		f, err := os.OpenFile(o.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		o.file = f
	}

	if _, err := o.buf.WriteTo(o.file); err != nil {
		return err
	}
	o.buf.Reset()

	return nil
}

// Close flushes any remaining bytes, returns the buffer to its pool, and
// closes the underlying file handle.
func (o *Output) Close() error {
	err := o.Flush()

	pool.PutOutputBuffer(o.buf)
	o.buf = nil

	if o.file != nil {
		if cerr := o.file.Close(); err == nil {
			err = cerr
		}
	}

	return err
}
