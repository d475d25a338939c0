package rcode

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/errs"
)

// ObjectName is the RP66 V1 OBNAME value: a reference to an EFLR Item by
// (origin_reference, copy_number, name) — the same triple internal/keyset
// tracks for duplicate detection within a Set.
type ObjectName struct {
	OriginReference uint32
	CopyNumber      uint8
	Name            string
}

// AppendOBNAME appends o as UVARI(origin_reference) ‖ USHORT(copy_number) ‖ IDENT(name).
func AppendOBNAME(buf []byte, o ObjectName) ([]byte, error) {
	buf, err := AppendUVARI(buf, o.OriginReference)
	if err != nil {
		return nil, fmt.Errorf("%w: OBNAME origin_reference", err)
	}

	buf = AppendUSHORT(buf, o.CopyNumber)

	buf, err = AppendIDENT(buf, o.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: OBNAME name", err)
	}

	return buf, nil
}

// DecodeOBNAME reads an ObjectName from the front of b, returning it and
// the number of bytes consumed.
func DecodeOBNAME(b []byte) (ObjectName, int, error) {
	originRef, n1, err := DecodeUVARI(b)
	if err != nil {
		return ObjectName{}, 0, err
	}

	if len(b) < n1+1 {
		return ObjectName{}, 0, errs.ErrTruncatedInput
	}
	copyNum := b[n1]

	name, n2, err := DecodeIDENT(b[n1+1:])
	if err != nil {
		return ObjectName{}, 0, err
	}

	return ObjectName{OriginReference: originRef, CopyNumber: copyNum, Name: name}, n1 + 1 + n2, nil
}

// ObjectReference is the RP66 V1 OBJREF value: a reference to an Item
// qualified by its Set type (e.g. "CHANNEL", "FRAME").
type ObjectReference struct {
	SetType string
	Object  ObjectName
}

// AppendOBJREF appends r as IDENT(set_type) ‖ OBNAME(object).
func AppendOBJREF(buf []byte, r ObjectReference) ([]byte, error) {
	buf, err := AppendIDENT(buf, r.SetType)
	if err != nil {
		return nil, fmt.Errorf("%w: OBJREF set_type", err)
	}

	return AppendOBNAME(buf, r.Object)
}

// DecodeOBJREF reads an ObjectReference from the front of b, returning it
// and the number of bytes consumed.
func DecodeOBJREF(b []byte) (ObjectReference, int, error) {
	setType, n1, err := DecodeIDENT(b)
	if err != nil {
		return ObjectReference{}, 0, err
	}

	obj, n2, err := DecodeOBNAME(b[n1:])
	if err != nil {
		return ObjectReference{}, 0, err
	}

	return ObjectReference{SetType: setType, Object: obj}, n1 + n2, nil
}
