// Package segment implements RP66 V1's logical-record segmenter (spec
// §4.5): the pure function that cuts a logical record's already-encoded
// bytes into one or more Logical Record Segments, each prefixed with its
// own 4-byte segment header.
//
// Grounded on mebo's section package idiom (a fixed-shape header struct
// plus a function that serializes it), reduced to the segment header's
// three fields (total_segment_size, segment_attributes,
// logical_record_type) and generalized to §4.5's cut/pad/shorten rules,
// which have no mebo analogue (mebo never splits a blob across frames).
package segment

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// headerSize is the fixed 4-byte segment header: UNORM(total_segment_size)
// ‖ USHORT(segment_attributes) ‖ USHORT(logical_record_type).
const headerSize = 4

// MinBodySize is the minimum body a segment may carry (spec §4.5).
const MinBodySize = 12

const paddingByte = 0x01

// Segment is one Logical Record Segment: its encoded header+body+padding
// bytes, ready to be packed into a Visible Record, and the total size
// recorded in its own header.
type Segment struct {
	Bytes []byte
	Size  int
}

// Attributes bits, MSB first (spec §4.5).
const (
	attrEFLR           = 1 << 7
	attrHasPredecessor = 1 << 6
	attrHasSuccessor   = 1 << 5
	attrHasPadding     = 1 << 0
)

// Cut splits body (an already fully-encoded logical record, at least 12
// bytes) into one or more segments, none exceeding maxBodySize bytes of
// body before header/padding. logicalRecordType and isEFLR are stamped
// into every segment's header; has_predecessor/has_successor are derived
// from each segment's position.
func Cut(body []byte, maxBodySize int, logicalRecordType uint8, isEFLR bool) ([]Segment, error) {
	if len(body) < MinBodySize {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrRecordTooShort, len(body))
	}
	if maxBodySize < MinBodySize {
		return nil, fmt.Errorf("%w: max body size %d is below the %d-byte minimum", errs.ErrVRLTooSmall, maxBodySize, MinBodySize)
	}

	lengths, err := bodyLengths(len(body), maxBodySize)
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, len(lengths))
	pos := 0
	for i, n := range lengths {
		isFirst := i == 0
		isLast := i == len(lengths)-1
		segments[i] = encode(body[pos:pos+n], logicalRecordType, isEFLR, isFirst, isLast)
		pos += n
	}

	return segments, nil
}

// bodyLengths decides how many bytes each segment's body carries. Every
// segment but the last takes maxBodySize bytes; the last takes whatever
// remains. If that remainder would land in [1, MinBodySize-1] — too
// short to stand on its own — bytes are borrowed back from the
// preceding segment(s) so the final segment becomes exactly
// MinBodySize, cascading further back if one donor alone can't cover
// the shortfall without itself dropping below MinBodySize.
func bodyLengths(total, maxBodySize int) ([]int, error) {
	if total <= maxBodySize {
		return []int{total}, nil
	}

	var lengths []int
	remaining := total
	for remaining > maxBodySize {
		lengths = append(lengths, maxBodySize)
		remaining -= maxBodySize
	}
	if remaining > 0 {
		lengths = append(lengths, remaining)
	}

	last := len(lengths) - 1
	if lengths[last] >= MinBodySize {
		return lengths, nil
	}

	deficit := MinBodySize - lengths[last]
	lengths[last] = MinBodySize
	for j := last - 1; j >= 0 && deficit > 0; j-- {
		take := deficit
		if lengths[j]-take < MinBodySize {
			take = lengths[j] - MinBodySize
		}
		if take < 0 {
			take = 0
		}
		lengths[j] -= take
		deficit -= take
	}
	if deficit > 0 {
		return nil, fmt.Errorf("%w: max body size %d cannot segment a %d-byte record without a sub-%d-byte segment", errs.ErrVRLTooSmall, maxBodySize, total, MinBodySize)
	}

	return lengths, nil
}

func encode(chunk []byte, logicalRecordType uint8, isEFLR, isFirst, isLast bool) Segment {
	totalSize := headerSize + len(chunk)
	hasPadding := totalSize%2 != 0
	if hasPadding {
		totalSize++
	}

	attrs := byte(0)
	if isEFLR {
		attrs |= attrEFLR
	}
	if !isFirst {
		attrs |= attrHasPredecessor
	}
	if !isLast {
		attrs |= attrHasSuccessor
	}
	if hasPadding {
		attrs |= attrHasPadding
	}

	buf := make([]byte, 0, totalSize)
	buf = rcode.AppendUNORM(buf, uint16(totalSize))
	buf = rcode.AppendUSHORT(buf, attrs)
	buf = rcode.AppendUSHORT(buf, logicalRecordType)
	buf = append(buf, chunk...)
	if hasPadding {
		buf = append(buf, paddingByte)
	}

	return Segment{Bytes: buf, Size: totalSize}
}
