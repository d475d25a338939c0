package eflr

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/errs"
)

// DetectSpacing fits a constant sample spacing through an index channel's
// samples by ordinary least squares against their sample position (spec §3
// Frame: "spacing may be auto-detected from the index channel's samples"),
// and reports how well a single constant spacing explains them via the
// maximum absolute residual.
//
// Grounded on regression/analyzer.go's fitLinear: same sum-of-products
// normal-equations fit, reduced to the one coefficient a Frame spacing
// needs (the slope) instead of a multi-model curve-fit search.
func DetectSpacing(index []float64) (spacing float64, maxResidual float64, err error) {
	n := len(index)
	if n < 2 {
		return 0, 0, fmt.Errorf("%w: need at least 2 index samples to detect spacing", errs.ErrInvalidFrameIndex)
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range index {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	fn := float64(n)
	meanX := sumX / fn
	meanY := sumY / fn

	denom := sumX2 - fn*meanX*meanX
	if denom == 0 {
		return 0, 0, fmt.Errorf("%w: index samples are degenerate", errs.ErrInvalidFrameIndex)
	}

	b := (sumXY - fn*meanX*meanY) / denom
	a := meanY - b*meanX

	for i, y := range index {
		predicted := a + b*float64(i)
		residual := y - predicted
		if residual < 0 {
			residual = -residual
		}
		if residual > maxResidual {
			maxResidual = residual
		}
	}

	return b, maxResidual, nil
}
