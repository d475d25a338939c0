package rcode

import (
	"fmt"
	"time"

	"github.com/dlis-toolkit/dliswriter/errs"
)

// Infer returns the representation code that naturally matches value's Go
// type, per spec §4.1's inference table. Catalog entries may still pin an
// attribute to a different, explicitly-declared code (e.g. a Channel
// sample declared FSING1 instead of the inferred FSINGL); Infer only
// supplies the default used when nothing more specific is declared.
func Infer(value any) (Code, error) {
	switch value.(type) {
	case bool:
		return STATUS, nil
	case int8:
		return SSHORT, nil
	case int16:
		return SNORM, nil
	case int32, int:
		return SLONG, nil
	case uint8:
		return USHORT, nil
	case uint16:
		return UNORM, nil
	case uint32, uint:
		return ULONG, nil
	case float32:
		return FSINGL, nil
	case float64:
		return FDOUBL, nil
	case string:
		return ASCII, nil
	case time.Time:
		return DTIME, nil
	case ObjectName:
		return OBNAME, nil
	case ObjectReference:
		return OBJREF, nil
	default:
		return 0, fmt.Errorf("%w: %T", errs.ErrUnknownValueKind, value)
	}
}

// CompatibleWith reports whether value's Go type can be encoded under code,
// used to validate a catalog's declared representation code against the
// actual value supplied for an attribute (spec §7's ErrIncompatibleRepCode).
func CompatibleWith(code Code, value any) bool {
	switch code {
	case STATUS:
		_, ok := value.(bool)
		return ok
	case SSHORT:
		_, ok := value.(int8)
		return ok
	case SNORM:
		_, ok := value.(int16)
		return ok
	case SLONG:
		switch value.(type) {
		case int32, int:
			return true
		}
		return false
	case USHORT:
		_, ok := value.(uint8)
		return ok
	case UNORM:
		_, ok := value.(uint16)
		return ok
	case ULONG:
		switch value.(type) {
		case uint32, uint:
			return true
		}
		return false
	case UVARI:
		switch value.(type) {
		case uint32, uint:
			return true
		}
		return false
	case FSHORT:
		_, ok := value.(int16)
		return ok
	case FSINGL:
		_, ok := value.(float32)
		return ok
	case FDOUBL:
		_, ok := value.(float64)
		return ok
	case IDENT, ASCII:
		_, ok := value.(string)
		return ok
	case DTIME:
		_, ok := value.(time.Time)
		return ok
	case OBNAME:
		_, ok := value.(ObjectName)
		return ok
	case OBJREF:
		_, ok := value.(ObjectReference)
		return ok
	default:
		return false
	}
}
