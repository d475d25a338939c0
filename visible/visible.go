// Package visible implements RP66 V1's Visible Record wrapper (spec
// §4.6): the physical framing layer that packs logical-record segments
// into fixed-maximum-length Visible Records, each prefixed with its own
// 4-byte header.
//
// Grounded on mebo's section package idiom (fixed header, length-prefixed
// body), generalized from a single-record header to a greedy bin-packer
// over a stream of already-cut segments — mebo's blobs are never
// repacked across frame boundaries the way RP66 V1 records are.
package visible

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/rcode"
	"github.com/dlis-toolkit/dliswriter/segment"
)

// headerSize is the 4-byte Visible Record header: UNORM(total_vr_size) ‖
// format_version.
const headerSize = 4

// formatVersion is RP66 V1's constant Visible Record format-version field.
var formatVersion = [2]byte{0xFF, 0x01}

// MinLength and MaxLength bound the configurable visible record length
// (spec §4.6, §6.3): even, in [20, 16384].
const (
	MinLength = 20
	MaxLength = 16384
)

// SegmentBudget returns the segmenter's maxBodySize for a given visible
// record length: VRL − 8, leaving room for one VR header plus the
// 4-byte segment header and possible padding so every segment the
// segmenter emits is guaranteed to fit in some VR (spec §4.6).
func SegmentBudget(vrl int) (int, error) {
	if err := ValidateLength(vrl); err != nil {
		return 0, err
	}
	return vrl - 8, nil
}

// ValidateLength checks a visible record length against spec §4.6/§6.3's
// invariants: even, 20 ≤ VRL ≤ 16384.
func ValidateLength(vrl int) error {
	if vrl < MinLength || vrl > MaxLength {
		return fmt.Errorf("%w: got %d", errs.ErrVRLOutOfRange, vrl)
	}
	if vrl%2 != 0 {
		return fmt.Errorf("%w: got %d", errs.ErrVRLOdd, vrl)
	}
	return nil
}

// Packer greedily bins a stream of segments into Visible Records of at
// most vrl bytes each (spec §4.6): appending a segment that would not
// fit flushes the current VR first.
type Packer struct {
	vrl     int
	current []byte
}

// NewPacker creates a Packer for visible records of at most vrl bytes.
func NewPacker(vrl int) (*Packer, error) {
	if err := ValidateLength(vrl); err != nil {
		return nil, err
	}
	return &Packer{vrl: vrl}, nil
}

// Add appends one segment's bytes to the VR under construction,
// flushing the current VR first if the segment would not fit. It
// returns the bytes of any VR that was flushed to make room, or nil if
// none was.
func (p *Packer) Add(seg segment.Segment) []byte {
	if len(p.current) == 0 {
		p.current = make([]byte, 0, p.vrl)
	}

	if len(p.current)+len(seg.Bytes) > p.vrl-headerSize {
		flushed := p.finish()
		p.current = make([]byte, 0, p.vrl)
		p.current = append(p.current, seg.Bytes...)
		return flushed
	}

	p.current = append(p.current, seg.Bytes...)
	return nil
}

// Flush closes out the VR under construction, if any, and returns its
// bytes. Callers must call Flush after the last segment to avoid losing
// a partially filled VR.
func (p *Packer) Flush() []byte {
	return p.finish()
}

func (p *Packer) finish() []byte {
	if len(p.current) == 0 {
		return nil
	}

	total := headerSize + len(p.current)
	vr := make([]byte, 0, total)
	vr = rcode.AppendUNORM(vr, uint16(total))
	vr = append(vr, formatVersion[0], formatVersion[1])
	vr = append(vr, p.current...)

	p.current = nil
	return vr
}
