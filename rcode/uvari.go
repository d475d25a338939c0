package rcode

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/errs"
)

// UVARI tag bits distinguishing the three encoded forms by the top one or
// two bits of the first byte (RP66 V1 Appendix B.18).
const (
	uvariOneByteMax   = 1<<7 - 1  // 127
	uvariTwoByteMax   = 1<<14 - 1 // 16383
	uvariFourByteMax  = 1<<30 - 1 // 1073741823
	uvariTwoByteTag   = 0x8000
	uvariFourByteTag  = 0xC0000000
	uvariTagMask16    = 0xC000
	uvariTagMask32    = 0xC0000000
)

// AppendUVARI appends v in its shortest valid UVARI form: one byte for
// 0-127, two bytes for 128-16383, four bytes for 16384-1073741823.
func AppendUVARI(buf []byte, v uint32) ([]byte, error) {
	switch {
	case v <= uvariOneByteMax:
		return append(buf, byte(v)), nil
	case v <= uvariTwoByteMax:
		return order.AppendUint16(buf, uint16(v)|uvariTwoByteTag), nil
	case v <= uvariFourByteMax:
		return order.AppendUint32(buf, v|uvariFourByteTag), nil
	default:
		return nil, fmt.Errorf("%w: UVARI value %d exceeds 2^30-1", errs.ErrIntegerOutOfRange, v)
	}
}

// DecodeUVARI reads a UVARI value from the front of b, returning the value
// and the number of bytes consumed (1, 2, or 4).
func DecodeUVARI(b []byte) (uint32, int, error) {
	if len(b) < 1 {
		return 0, 0, errs.ErrTruncatedInput
	}

	switch b[0] >> 6 {
	case 0, 1: // top bit 0: one-byte form, value is the low 7 bits
		return uint32(b[0] & 0x7f), 1, nil
	case 2: // top bits '10': two-byte form
		if len(b) < 2 {
			return 0, 0, errs.ErrTruncatedInput
		}

		return uint32(order.Uint16(b) &^ uvariTagMask16), 2, nil
	default: // top bits '11': four-byte form
		if len(b) < 4 {
			return 0, 0, errs.ErrTruncatedInput
		}

		return order.Uint32(b) &^ uvariTagMask32, 4, nil
	}
}
