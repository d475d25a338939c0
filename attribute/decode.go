package attribute

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// TemplateRow is one decoded template-row position: a label and/or a
// representation code, whichever were present.
type TemplateRow struct {
	Label string
	Code  rcode.Code
}

// DecodeTemplateRow is the inverse of AppendTemplateRow, kept alongside the
// encoder to exercise the round-trip invariant (spec §8) in tests; reading
// a DLIS file end-to-end is out of this module's scope.
func DecodeTemplateRow(b []byte) (TemplateRow, int, error) {
	if len(b) < 1 {
		return TemplateRow{}, 0, errs.ErrTruncatedInput
	}

	characteristics := b[0]
	n := 1

	var row TemplateRow
	if characteristics&labelPresentBit != 0 {
		label, ln, err := rcode.DecodeIDENT(b[n:])
		if err != nil {
			return TemplateRow{}, 0, err
		}
		row.Label = label
		n += ln
	}

	if characteristics&codePresentBit != 0 {
		if len(b) < n+1 {
			return TemplateRow{}, 0, errs.ErrTruncatedInput
		}
		row.Code = rcode.Code(b[n])
		n++
	}

	return row, n, nil
}

// ItemRow is one decoded item-row value.
type ItemRow struct {
	Absent bool
	Count  int
	Code   rcode.Code
	Units  string
	Values []any
}

// DecodeItemRow is the inverse of AppendItemRow.
func DecodeItemRow(b []byte) (ItemRow, int, error) {
	if len(b) < 1 {
		return ItemRow{}, 0, errs.ErrTruncatedInput
	}

	characteristics := b[0]
	n := 1

	if characteristics&valuePresentBit == 0 {
		return ItemRow{Absent: true}, n, nil
	}

	row := ItemRow{Count: 1}

	if characteristics&countPresentBit != 0 {
		count, cn, err := rcode.DecodeUVARI(b[n:])
		if err != nil {
			return ItemRow{}, 0, err
		}
		row.Count = int(count)
		n += cn
	}

	if characteristics&codePresentBit == 0 {
		return ItemRow{}, 0, fmt.Errorf("%w: item row has no representation code and no template to fall back on", errs.ErrUnimplementedCode)
	}
	if len(b) < n+1 {
		return ItemRow{}, 0, errs.ErrTruncatedInput
	}
	row.Code = rcode.Code(b[n])
	n++

	if characteristics&unitsPresentBit != 0 {
		units, un, err := rcode.DecodeIDENT(b[n:])
		if err != nil {
			return ItemRow{}, 0, err
		}
		row.Units = units
		n += un
	}

	row.Values = make([]any, 0, row.Count)
	for i := 0; i < row.Count; i++ {
		v, vn, err := rcode.DecodeValue(b[n:], row.Code)
		if err != nil {
			return ItemRow{}, 0, err
		}
		row.Values = append(row.Values, v)
		n += vn
	}

	return row, n, nil
}
