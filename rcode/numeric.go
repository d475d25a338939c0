package rcode

import (
	"fmt"
	"math"

	"github.com/dlis-toolkit/dliswriter/endian"
	"github.com/dlis-toolkit/dliswriter/errs"
)

var order = endian.Big()

// AppendFSHORT appends a 16-bit two's-complement signed integer (RP66 V1's
// "short float" is in fact a scaled integer; dliswriter treats it, like the
// original implementation, as a plain int16 carrier since no reader of this
// module interprets the scale factor).
func AppendFSHORT(buf []byte, v int16) []byte {
	return order.AppendUint16(buf, uint16(v))
}

// DecodeFSHORT reads a 16-bit FSHORT value from the front of b.
func DecodeFSHORT(b []byte) (int16, error) {
	if len(b) < Width(FSHORT) {
		return 0, errs.ErrTruncatedInput
	}

	return int16(order.Uint16(b)), nil
}

// AppendFSINGL appends an IEEE-754 single-precision float.
func AppendFSINGL(buf []byte, v float32) []byte {
	return order.AppendUint32(buf, math.Float32bits(v))
}

// DecodeFSINGL reads a single-precision float from the front of b.
func DecodeFSINGL(b []byte) (float32, error) {
	if len(b) < Width(FSINGL) {
		return 0, errs.ErrTruncatedInput
	}

	return math.Float32frombits(order.Uint32(b)), nil
}

// AppendFDOUBL appends an IEEE-754 double-precision float.
func AppendFDOUBL(buf []byte, v float64) []byte {
	return order.AppendUint64(buf, math.Float64bits(v))
}

// DecodeFDOUBL reads a double-precision float from the front of b.
func DecodeFDOUBL(b []byte) (float64, error) {
	if len(b) < Width(FDOUBL) {
		return 0, errs.ErrTruncatedInput
	}

	return math.Float64frombits(order.Uint64(b)), nil
}

// AppendFSING1 appends two single-precision floats (a validity-measure pair).
func AppendFSING1(buf []byte, v, m float32) []byte {
	buf = AppendFSINGL(buf, v)
	return AppendFSINGL(buf, m)
}

// AppendFSING2 appends three single-precision floats (value + two measures).
func AppendFSING2(buf []byte, v, m1, m2 float32) []byte {
	buf = AppendFSINGL(buf, v)
	buf = AppendFSINGL(buf, m1)
	return AppendFSINGL(buf, m2)
}

// AppendFDOUB1 appends two double-precision floats.
func AppendFDOUB1(buf []byte, v, m float64) []byte {
	buf = AppendFDOUBL(buf, v)
	return AppendFDOUBL(buf, m)
}

// AppendFDOUB2 appends three double-precision floats.
func AppendFDOUB2(buf []byte, v, m1, m2 float64) []byte {
	buf = AppendFDOUBL(buf, v)
	buf = AppendFDOUBL(buf, m1)
	return AppendFDOUBL(buf, m2)
}

// AppendCSINGL appends a single-precision complex number (real, imaginary).
func AppendCSINGL(buf []byte, re, im float32) []byte {
	buf = AppendFSINGL(buf, re)
	return AppendFSINGL(buf, im)
}

// AppendCDOUBL appends a double-precision complex number (real, imaginary).
func AppendCDOUBL(buf []byte, re, im float64) []byte {
	buf = AppendFDOUBL(buf, re)
	return AppendFDOUBL(buf, im)
}

// AppendISINGL appends a 32-bit "IBM single precision float" slot.
//
// dliswriter does not perform the IBM hex-float conversion; like ISINGL's
// companion VSINGL below, it is retained only so the representation-code
// catalog is complete and an encoder that is handed this code fails with
// ErrUnimplementedCode rather than silently mis-encoding, rather than
// because any catalog entry selects it.
func AppendISINGL(_ []byte, _ float32) ([]byte, error) {
	return nil, fmt.Errorf("%w: ISINGL (IBM hex float)", errs.ErrUnimplementedCode)
}

// AppendVSINGL appends a 32-bit VAX single-precision float slot. See AppendISINGL.
func AppendVSINGL(_ []byte, _ float32) ([]byte, error) {
	return nil, fmt.Errorf("%w: VSINGL (VAX float)", errs.ErrUnimplementedCode)
}

// AppendSSHORT appends an 8-bit signed integer.
func AppendSSHORT(buf []byte, v int8) []byte {
	return append(buf, byte(v))
}

// DecodeSSHORT reads an 8-bit signed integer from the front of b.
func DecodeSSHORT(b []byte) (int8, error) {
	if len(b) < Width(SSHORT) {
		return 0, errs.ErrTruncatedInput
	}

	return int8(b[0]), nil
}

// AppendSNORM appends a 16-bit signed integer.
func AppendSNORM(buf []byte, v int16) []byte {
	return order.AppendUint16(buf, uint16(v))
}

// DecodeSNORM reads a 16-bit signed integer from the front of b.
func DecodeSNORM(b []byte) (int16, error) {
	if len(b) < Width(SNORM) {
		return 0, errs.ErrTruncatedInput
	}

	return int16(order.Uint16(b)), nil
}

// AppendSLONG appends a 32-bit signed integer.
func AppendSLONG(buf []byte, v int32) []byte {
	return order.AppendUint32(buf, uint32(v))
}

// DecodeSLONG reads a 32-bit signed integer from the front of b.
func DecodeSLONG(b []byte) (int32, error) {
	if len(b) < Width(SLONG) {
		return 0, errs.ErrTruncatedInput
	}

	return int32(order.Uint32(b)), nil
}

// AppendUSHORT appends an 8-bit unsigned integer.
func AppendUSHORT(buf []byte, v uint8) []byte {
	return append(buf, v)
}

// DecodeUSHORT reads an 8-bit unsigned integer from the front of b.
func DecodeUSHORT(b []byte) (uint8, error) {
	if len(b) < Width(USHORT) {
		return 0, errs.ErrTruncatedInput
	}

	return b[0], nil
}

// AppendUNORM appends a 16-bit unsigned integer.
func AppendUNORM(buf []byte, v uint16) []byte {
	return order.AppendUint16(buf, v)
}

// DecodeUNORM reads a 16-bit unsigned integer from the front of b.
func DecodeUNORM(b []byte) (uint16, error) {
	if len(b) < Width(UNORM) {
		return 0, errs.ErrTruncatedInput
	}

	return order.Uint16(b), nil
}

// AppendULONG appends a 32-bit unsigned integer.
func AppendULONG(buf []byte, v uint32) []byte {
	return order.AppendUint32(buf, v)
}

// DecodeULONG reads a 32-bit unsigned integer from the front of b.
func DecodeULONG(b []byte) (uint32, error) {
	if len(b) < Width(ULONG) {
		return 0, errs.ErrTruncatedInput
	}

	return order.Uint32(b), nil
}

// AppendSTATUS appends a boolean status bit, encoded as USHORT 0 or 1.
func AppendSTATUS(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}

	return append(buf, 0)
}

// DecodeSTATUS reads a STATUS byte, failing on any value other than 0 or 1.
func DecodeSTATUS(b []byte) (bool, error) {
	if len(b) < Width(STATUS) {
		return false, errs.ErrTruncatedInput
	}

	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: got %d", errs.ErrInvalidStatus, b[0])
	}
}
