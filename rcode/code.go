// Package rcode implements the RP66 V1 representation-code codec: encoding
// and decoding of attribute values to and from their big-endian wire forms.
//
// Grounded on mebo's blob/numeric_encoder.go and blob/numeric_decoder.go: a
// small set of fixed-width append/decode functions operating directly on
// byte slices (no intermediate io.Writer), the variable-length forms
// (UVARI, IDENT, ASCII) handled by their own files, and a package of
// sentinel errors (errs) rather than ad hoc error strings.
package rcode

import "github.com/dlis-toolkit/dliswriter/errs"

// Code identifies one of RP66 V1's 26 representation codes (RP66 V1 Appendix B).
type Code uint8

// The 26 RP66 V1 representation codes, numbered exactly as the standard
// assigns them (1-26); the numeric value itself is significant; it is what
// gets encoded as the REPRESENTATION-CODE component of an attribute.
const (
	FSHORT Code = 1
	FSINGL Code = 2
	FSING1 Code = 3
	FSING2 Code = 4
	ISINGL Code = 5
	VSINGL Code = 6
	FDOUBL Code = 7
	FDOUB1 Code = 8
	FDOUB2 Code = 9
	CSINGL Code = 10
	CDOUBL Code = 11
	SSHORT Code = 12
	SNORM  Code = 13
	SLONG  Code = 14
	USHORT Code = 15
	UNORM  Code = 16
	ULONG  Code = 17
	UVARI  Code = 18
	IDENT  Code = 19
	ASCII  Code = 20
	DTIME  Code = 21
	ORIGIN Code = 22
	OBNAME Code = 23
	OBJREF Code = 24
	ATTREF Code = 25
	STATUS Code = 26
)

var codeNames = map[Code]string{
	FSHORT: "FSHORT", FSINGL: "FSINGL", FSING1: "FSING1", FSING2: "FSING2",
	ISINGL: "ISINGL", VSINGL: "VSINGL", FDOUBL: "FDOUBL", FDOUB1: "FDOUB1",
	FDOUB2: "FDOUB2", CSINGL: "CSINGL", CDOUBL: "CDOUBL", SSHORT: "SSHORT",
	SNORM: "SNORM", SLONG: "SLONG", USHORT: "USHORT", UNORM: "UNORM",
	ULONG: "ULONG", UVARI: "UVARI", IDENT: "IDENT", ASCII: "ASCII",
	DTIME: "DTIME", ORIGIN: "ORIGIN", OBNAME: "OBNAME", OBJREF: "OBJREF",
	ATTREF: "ATTREF", STATUS: "STATUS",
}

// String implements fmt.Stringer.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}

	return "UNKNOWN"
}

// Valid reports whether c is one of the 26 codes the standard defines.
func (c Code) Valid() bool {
	_, ok := codeNames[c]
	return ok
}

// fixedWidths holds the on-wire byte width of every code with a fixed size.
// Variable-length codes (UVARI, IDENT, ASCII, OBNAME, OBJREF) and the two
// unimplemented codes (ORIGIN, ATTREF) are absent; Width reports -1 for them.
var fixedWidths = map[Code]int{
	FSHORT: 2, FSINGL: 4, FSING1: 8, FSING2: 12,
	ISINGL: 4, VSINGL: 4, FDOUBL: 8, FDOUB1: 16, FDOUB2: 24,
	CSINGL: 8, CDOUBL: 16, SSHORT: 1, SNORM: 2, SLONG: 4,
	USHORT: 1, UNORM: 2, ULONG: 4, DTIME: 8, STATUS: 1,
}

// Width returns the fixed on-wire byte width of c, or -1 if c is
// variable-length or unimplemented.
func Width(c Code) int {
	if w, ok := fixedWidths[c]; ok {
		return w
	}

	return -1
}

// IsVariableLength reports whether c's encoded size depends on its value.
func IsVariableLength(c Code) bool {
	switch c {
	case UVARI, IDENT, ASCII, OBNAME, OBJREF:
		return true
	default:
		return false
	}
}

// checkImplemented rejects ORIGIN and ATTREF, and any value that is not
// one of the defined codes.
func checkImplemented(c Code) error {
	switch c {
	case ORIGIN, ATTREF:
		return errs.ErrUnimplementedCode
	}

	if !c.Valid() {
		return errs.ErrUnimplementedCode
	}

	return nil
}
