package rcode

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/errs"
)

const identMaxLen = 255 // IDENT's length prefix is a single USHORT byte.

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}

	return true
}

// AppendIDENT appends an IDENT value: one length byte followed by the ASCII bytes.
func AppendIDENT(buf []byte, s string) ([]byte, error) {
	if !isASCII(s) {
		return nil, fmt.Errorf("%w: IDENT %q", errs.ErrNonASCIIString, s)
	}

	if len(s) > identMaxLen {
		return nil, fmt.Errorf("%w: IDENT %q is %d bytes, max %d", errs.ErrStringTooLong, s, len(s), identMaxLen)
	}

	buf = append(buf, byte(len(s)))

	return append(buf, s...), nil
}

// DecodeIDENT reads an IDENT value from the front of b, returning the
// string and the number of bytes consumed.
func DecodeIDENT(b []byte) (string, int, error) {
	if len(b) < 1 {
		return "", 0, errs.ErrTruncatedInput
	}

	n := int(b[0])
	if len(b) < 1+n {
		return "", 0, errs.ErrTruncatedInput
	}

	return string(b[1 : 1+n]), 1 + n, nil
}

// AppendASCII appends an ASCII value: a UVARI length followed by the ASCII bytes.
func AppendASCII(buf []byte, s string) ([]byte, error) {
	if !isASCII(s) {
		return nil, fmt.Errorf("%w: ASCII %q", errs.ErrNonASCIIString, s)
	}

	buf, err := AppendUVARI(buf, uint32(len(s)))
	if err != nil {
		return nil, fmt.Errorf("%w: ASCII length", err)
	}

	return append(buf, s...), nil
}

// DecodeASCII reads an ASCII value from the front of b, returning the
// string and the number of bytes consumed.
func DecodeASCII(b []byte) (string, int, error) {
	n, consumed, err := DecodeUVARI(b)
	if err != nil {
		return "", 0, err
	}

	total := consumed + int(n)
	if len(b) < total {
		return "", 0, errs.ErrTruncatedInput
	}

	return string(b[consumed:total]), total, nil
}
