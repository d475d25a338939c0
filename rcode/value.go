package rcode

import (
	"fmt"
	"time"

	"github.com/dlis-toolkit/dliswriter/errs"
)

// AppendValue dispatches one value to its representation code's encoder.
// This is the single dispatch table shared by the attribute and iflr
// packages, so a channel's cast code and an attribute's representation
// code are encoded identically.
func AppendValue(buf []byte, code Code, v any) ([]byte, error) {
	switch code {
	case FSHORT:
		x, ok := v.(int16)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendFSHORT(buf, x), nil
	case FSINGL:
		x, ok := v.(float32)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendFSINGL(buf, x), nil
	case FDOUBL:
		x, ok := v.(float64)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendFDOUBL(buf, x), nil
	case SSHORT:
		x, ok := v.(int8)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendSSHORT(buf, x), nil
	case SNORM:
		x, ok := v.(int16)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendSNORM(buf, x), nil
	case SLONG:
		x, ok := toInt32(v)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendSLONG(buf, x), nil
	case USHORT:
		x, ok := v.(uint8)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendUSHORT(buf, x), nil
	case UNORM:
		x, ok := v.(uint16)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendUNORM(buf, x), nil
	case ULONG:
		x, ok := toUint32(v)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendULONG(buf, x), nil
	case UVARI:
		x, ok := toUint32(v)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendUVARI(buf, x)
	case IDENT:
		x, ok := v.(string)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendIDENT(buf, x)
	case ASCII:
		x, ok := v.(string)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendASCII(buf, x)
	case DTIME:
		x, ok := v.(time.Time)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendDTIME(buf, x)
	case STATUS:
		x, ok := v.(bool)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendSTATUS(buf, x), nil
	case OBNAME:
		x, ok := v.(ObjectName)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendOBNAME(buf, x)
	case OBJREF:
		x, ok := v.(ObjectReference)
		if !ok {
			return nil, typeMismatch(code, v)
		}
		return AppendOBJREF(buf, x)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnimplementedCode, code)
	}
}

// DecodeValue is the inverse of AppendValue; n is the number of bytes
// consumed from b.
func DecodeValue(b []byte, code Code) (value any, n int, err error) {
	switch code {
	case FSHORT:
		v, err := DecodeFSHORT(b)
		return v, Width(code), err
	case FSINGL:
		v, err := DecodeFSINGL(b)
		return v, Width(code), err
	case FDOUBL:
		v, err := DecodeFDOUBL(b)
		return v, Width(code), err
	case SSHORT:
		v, err := DecodeSSHORT(b)
		return v, Width(code), err
	case SNORM:
		v, err := DecodeSNORM(b)
		return v, Width(code), err
	case SLONG:
		v, err := DecodeSLONG(b)
		return v, Width(code), err
	case USHORT:
		v, err := DecodeUSHORT(b)
		return v, Width(code), err
	case UNORM:
		v, err := DecodeUNORM(b)
		return v, Width(code), err
	case ULONG:
		v, err := DecodeULONG(b)
		return v, Width(code), err
	case UVARI:
		return DecodeUVARI(b)
	case IDENT:
		return DecodeIDENT(b)
	case ASCII:
		return DecodeASCII(b)
	case DTIME:
		v, err := DecodeDTIME(b)
		return v, Width(code), err
	case STATUS:
		v, err := DecodeSTATUS(b)
		return v, Width(code), err
	case OBNAME:
		return DecodeOBNAME(b)
	case OBJREF:
		return DecodeOBJREF(b)
	default:
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrUnimplementedCode, code)
	}
}

func typeMismatch(code Code, v any) error {
	return fmt.Errorf("%w: %s cannot encode a %T", errs.ErrIncompatibleRepCode, code, v)
}

func toInt32(v any) (int32, bool) {
	switch x := v.(type) {
	case int32:
		return x, true
	case int:
		return int32(x), true
	}
	return 0, false
}

func toUint32(v any) (uint32, bool) {
	switch x := v.(type) {
	case uint32:
		return x, true
	case uint:
		return uint32(x), true
	}
	return 0, false
}
