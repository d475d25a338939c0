// Package iflr implements RP66 V1's Implicitly Formatted Logical Record
// bodies (spec §4.4): Frame Data rows and NoFormat blobs.
//
// Grounded on mebo's section package for the "struct knows its own layout,
// a method serializes it" idiom; the per-channel sample dispatch reuses
// rcode.AppendValue, the same table the attribute package's item rows use.
package iflr

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/eflr"
	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// EncodeFrameData appends one Frame Data IFLR body (spec §4.4):
// OBNAME(frame) ‖ UVARI(frame_number) ‖ concatenation of per-channel sample
// bytes. row must hold one slice per frame channel, in frame.Channels
// order, each of length channel.ElementCount().
func EncodeFrameData(buf []byte, frame *eflr.Frame, frameNumber uint32, row [][]any) ([]byte, error) {
	if len(row) != len(frame.Channels) {
		return nil, fmt.Errorf("%w: frame %q has %d channels, got %d sample slices", errs.ErrDimensionMismatch, frame.Name, len(frame.Channels), len(row))
	}

	var err error
	if buf, err = rcode.AppendOBNAME(buf, frame.ObjectName()); err != nil {
		return nil, err
	}
	if buf, err = rcode.AppendUVARI(buf, frameNumber); err != nil {
		return nil, err
	}

	for i, ch := range frame.Channels {
		values := row[i]
		if len(values) != ch.ElementCount() {
			return nil, fmt.Errorf("%w: channel %q expects %d values, got %d", errs.ErrDimensionMismatch, ch.Name, ch.ElementCount(), len(values))
		}

		for _, v := range values {
			if buf, err = rcode.AppendValue(buf, ch.Code(), v); err != nil {
				return nil, err
			}
		}
	}

	return buf, nil
}
