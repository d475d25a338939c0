package iflr

import (
	"github.com/dlis-toolkit/dliswriter/eflr"
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// minBodySize is the segmenter's minimum logical-record body size (spec
// §4.4, §6.4): NoFormat bodies shorter than this are right-padded with
// 0x01 rather than left to the segmenter to reject.
const minBodySize = 12

// EncodeNoFormat appends one NoFormat Data IFLR body (spec §4.4):
// OBNAME(item) ‖ raw bytes, right-padded with 0x01 to the 12-byte minimum
// logical-record body size.
func EncodeNoFormat(buf []byte, item *eflr.Item, data []byte) ([]byte, error) {
	n := len(buf)

	var err error
	if buf, err = rcode.AppendOBNAME(buf, item.ObjectName()); err != nil {
		return nil, err
	}

	buf = append(buf, data...)

	if bodyLen := len(buf) - n; bodyLen < minBodySize {
		for i := 0; i < minBodySize-bodyLen; i++ {
			buf = append(buf, 0x01)
		}
	}

	return buf, nil
}
