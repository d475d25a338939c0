// Package datasource defines the tabular data-source contract the file
// driver reads Frame rows from (spec §6.2), and an in-memory adapter
// implementing it.
//
// Grounded on mebo's blob.BlobSetIterator: a capability interface
// exposing range-over-func iterators (Go 1.23's iter.Seq) rather than
// channels or explicit cursor types, generalized from mebo's
// per-metric-ID lookup to RP66 V1's per-column, chunked-row access
// pattern.
package datasource

import (
	"fmt"
	"iter"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// ColumnSpec describes one column's shape and representation code (spec
// §6.2's "ordered list of (column name, numeric type, optional per-row
// shape)").
type ColumnSpec struct {
	Name  string
	Code  rcode.Code
	Shape []int // nil or []int{1}: scalar column
}

// ElementCount returns the number of values one row of this column
// carries: the product of Shape, or 1 for a scalar column.
func (c ColumnSpec) ElementCount() int {
	if len(c.Shape) == 0 {
		return 1
	}
	n := 1
	for _, d := range c.Shape {
		n *= d
	}
	return n
}

// Row is one Frame row's per-column values, in DType() order, each
// already flattened to its column's ElementCount() length — the shape
// iflr.EncodeFrameData expects.
type Row = [][]any

// Source is the capability set spec §6.2 requires of a data source: row
// count, column dtypes, indexed column access, and a lazy chunked-row
// sequence. The core depends only on this interface, never on a
// concrete adapter.
type Source interface {
	RowCount() int
	DType() []ColumnSpec
	Column(name string) ([]any, error)
	ChunkedRows(chunkSize int) iter.Seq[[]Row]
}

// InMemory is a dict-of-arrays data source: each column is a fixed-size
// slice of per-row values, scalar or flattened-vector, held entirely in
// memory. This is the minimum adapter spec §6.2 requires; HDF5 and
// structured-array adapters are supplementary and not implemented here.
type InMemory struct {
	order  []string
	specs  map[string]ColumnSpec
	values map[string][]any
	rowCnt int
}

// NewInMemory builds an InMemory source from column specs and their
// per-row values (each values[spec.Name] entry having RowCount()
// elements, scalar or a []any of spec.ElementCount() length). Columns
// are exposed in the order given.
func NewInMemory(specs []ColumnSpec, values map[string][]any) (*InMemory, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no columns given", errs.ErrUnknownColumn)
	}

	rowCnt := -1
	order := make([]string, 0, len(specs))
	specByName := make(map[string]ColumnSpec, len(specs))
	for _, spec := range specs {
		col, ok := values[spec.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, spec.Name)
		}
		if rowCnt == -1 {
			rowCnt = len(col)
		} else if len(col) != rowCnt {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d", errs.ErrRowCountMismatch, spec.Name, len(col), rowCnt)
		}

		order = append(order, spec.Name)
		specByName[spec.Name] = spec
	}

	return &InMemory{order: order, specs: specByName, values: values, rowCnt: rowCnt}, nil
}

// RowCount returns the number of rows every column holds.
func (s *InMemory) RowCount() int {
	return s.rowCnt
}

// DType returns the column specs in their declared order.
func (s *InMemory) DType() []ColumnSpec {
	specs := make([]ColumnSpec, len(s.order))
	for i, name := range s.order {
		specs[i] = s.specs[name]
	}
	return specs
}

// Column returns the named column's raw per-row values.
func (s *InMemory) Column(name string) ([]any, error) {
	col, ok := s.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, name)
	}
	return col, nil
}

// ChunkedRows yields row slabs of at most chunkSize rows each (the
// whole table in one slab when chunkSize <= 0), flattening every
// column's per-row value to a []any of its ElementCount() length.
func (s *InMemory) ChunkedRows(chunkSize int) iter.Seq[[]Row] {
	return func(yield func([]Row) bool) {
		n := s.rowCnt
		if chunkSize <= 0 {
			chunkSize = n
		}

		for start := 0; start < n; start += chunkSize {
			end := start + chunkSize
			if end > n {
				end = n
			}

			rows := make([]Row, 0, end-start)
			for r := start; r < end; r++ {
				row := make(Row, len(s.order))
				for i, name := range s.order {
					row[i] = flatten(s.specs[name], s.values[name][r])
				}
				rows = append(rows, row)
			}

			if !yield(rows) {
				return
			}
		}
	}
}

// flatten normalizes one row's raw column value to a []any of the
// column's ElementCount() length: a scalar value is wrapped, an
// already-vector value ([]any) is passed through.
func flatten(spec ColumnSpec, v any) []any {
	if vec, ok := v.([]any); ok {
		return vec
	}
	return []any{v}
}
