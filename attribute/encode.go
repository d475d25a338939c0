package attribute

import (
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// Characteristics-byte bit layout (spec §4.2): a fixed '001' prefix in bits
// 7-5, a label-present bit (template rows only) in bit 4, then up to four
// present-bits in bits 3-0 for count/repr-code/units/value. Item rows use
// all four; template rows use only the repr-code bit, set when the
// attribute pins an explicit code.
const (
	characteristicsPrefix = 0x20 // 001_00000
	labelPresentBit       = 0x10
	countPresentBit       = 0x08
	codePresentBit        = 0x04
	unitsPresentBit       = 0x02
	valuePresentBit       = 0x01
)

// AppendTemplateRow appends a's contribution to a Set's attribute template
// (spec §4.2(a)): the characteristics byte, followed by IDENT(label) when a
// has one, followed by USHORT(repr-code) when a pins an explicit Code (the
// File Header's SEQUENCE-NUMBER/ID rows declare ASCII this way, rather than
// leaving the representation code to be inferred from the item's value).
func AppendTemplateRow(buf []byte, a *Attribute) ([]byte, error) {
	characteristics := byte(characteristicsPrefix)
	if a.Label != "" {
		characteristics |= labelPresentBit
	}
	if a.Code != 0 {
		characteristics |= codePresentBit
	}

	buf = append(buf, characteristics)

	if a.Label != "" {
		var err error
		if buf, err = rcode.AppendIDENT(buf, a.Label); err != nil {
			return nil, err
		}
	}

	if a.Code != 0 {
		buf = append(buf, byte(a.Code))
	}

	return buf, nil
}

// AppendItemRow appends a's contribution to one Item's body (spec §4.2(b)):
// a single 0x00 when the value is absent, otherwise a characteristics byte
// followed by whichever of count/repr-code/units/value-bytes apply.
//
// This implementation always includes the representation code when a value
// is present — unlike count and units, which are only included when they
// carry information beyond the default (count present only when count != 1;
// units present only when non-empty) — so that an item row is always
// self-describing without consulting the template.
func AppendItemRow(buf []byte, a *Attribute) ([]byte, error) {
	if a.Value == nil {
		return append(buf, 0x00), nil
	}

	count, _, _, _ := shapeOf(a.Value)

	code := a.Code
	if code == 0 {
		_, _, _, elem := shapeOf(a.Value)
		var err error
		code, err = rcode.Infer(elem)
		if err != nil {
			return nil, err
		}
	}

	includeCount := count != 1
	includeUnits := a.Units != ""

	characteristics := byte(characteristicsPrefix) | codePresentBit | valuePresentBit
	if includeCount {
		characteristics |= countPresentBit
	}
	if includeUnits {
		characteristics |= unitsPresentBit
	}

	buf = append(buf, characteristics)

	var err error
	if includeCount {
		buf, err = rcode.AppendUVARI(buf, uint32(count))
		if err != nil {
			return nil, err
		}
	}

	buf = append(buf, byte(code))

	if includeUnits {
		buf, err = rcode.AppendIDENT(buf, a.Units)
		if err != nil {
			return nil, err
		}
	}

	for _, v := range flattenValues(a.Value) {
		buf, err = rcode.AppendValue(buf, code, v)
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}
