package eflr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlis-toolkit/dliswriter/attribute"
	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// Typed constructors for the EFLR kinds central to the worked examples
// (spec §3's Frame/Channel/Origin and File Header); the remaining 12 kinds
// are built with the generic NewItem + Item.Set, driven by the same
// catalog table (spec §6.2's "per-record-type attribute catalogs ...
// implementers take these as a data table, not as logic").

const (
	fileHeaderSequenceWidth = 20
	fileHeaderIDWidth       = 65
)

// NewFileHeader builds the File Header item (spec §4.3's "special EFLR"):
// identifier right up to 65 characters, left-padded with spaces to exactly
// 65 bytes; sequenceNumber right-padded with spaces to exactly 20 bytes.
// Its name is always "0" (spec §4.3).
func NewFileHeader(identifier string, sequenceNumber int) (*Item, error) {
	if len(identifier) > fileHeaderIDWidth {
		return nil, fmt.Errorf("%w: file header id exceeds %d characters", errs.ErrNameTooLong, fileHeaderIDWidth)
	}

	seq := strconv.Itoa(sequenceNumber)
	if len(seq) > fileHeaderSequenceWidth {
		return nil, fmt.Errorf("%w: file header sequence number exceeds %d characters", errs.ErrNameTooLong, fileHeaderSequenceWidth)
	}

	item := NewItem(KindFileHeader, "0", 0, 0)

	seqPadded := seq + strings.Repeat(" ", fileHeaderSequenceWidth-len(seq))
	idPadded := strings.Repeat(" ", fileHeaderIDWidth-len(identifier)) + identifier

	if err := item.Set("SEQUENCE-NUMBER", seqPadded, attribute.WithCode(rcode.ASCII)); err != nil {
		return nil, err
	}
	if err := item.Set("ID", idPadded, attribute.WithCode(rcode.ASCII)); err != nil {
		return nil, err
	}

	return item, nil
}

// NewOrigin builds an Origin item (spec §3 "Origin"). The item's own
// origin_reference equals fileSetNumber: an Origin identifies itself.
func NewOrigin(name string, copyNumber uint8, fileSetNumber uint32, creationTime time.Time) (*Item, error) {
	item := NewItem(KindOrigin, name, fileSetNumber, copyNumber)

	if err := item.Set("FILE-SET-NUMBER", fileSetNumber, attribute.WithCode(rcode.UVARI)); err != nil {
		return nil, err
	}
	if err := item.Set("CREATION-TIME", creationTime); err != nil {
		return nil, err
	}

	return item, nil
}

// Channel wraps an Item with the dataset_name that ties it to a data
// source column (spec §3 "Channel": "dataset_name (key in the data
// source, distinct from name)"), which is not itself an RP66 V1 attribute
// and so does not belong in the catalog-driven attribute map.
type Channel struct {
	*Item
	DatasetName string
	castCode    rcode.Code
	dimension   []uint32
}

// NewChannel builds a Channel item. dimension is 1-D scalar ([1]) when nil
// or empty (spec §3: "dimension ... 1-D scalar by default"); element_limit
// defaults to dimension.
func NewChannel(name, datasetName string, originReference uint32, copyNumber uint8, castCode rcode.Code, dimension []uint32) (*Channel, error) {
	if len(dimension) == 0 {
		dimension = []uint32{1}
	}
	dimension = append([]uint32(nil), dimension...)

	item := NewItem(KindChannel, name, originReference, copyNumber)

	if err := item.Set("REPRESENTATION-CODE", uint8(castCode), attribute.WithCode(rcode.USHORT)); err != nil {
		return nil, err
	}
	if err := item.Set("DIMENSION", append([]uint32(nil), dimension...), attribute.WithCode(rcode.UVARI)); err != nil {
		return nil, err
	}
	if err := item.Set("ELEMENT-LIMIT", append([]uint32(nil), dimension...), attribute.WithCode(rcode.UVARI)); err != nil {
		return nil, err
	}

	return &Channel{Item: item, DatasetName: datasetName, castCode: castCode, dimension: dimension}, nil
}

// Code returns the channel's cast representation code, used by the IFLR
// encoder to serialize its samples (spec §4.4).
func (c *Channel) Code() rcode.Code {
	return c.castCode
}

// Dimension returns the channel's element shape; the IFLR encoder expects
// exactly prod(Dimension()) values per row (spec §4.4).
func (c *Channel) Dimension() []uint32 {
	return c.dimension
}

// ElementCount returns prod(Dimension()), the number of scalar values one
// Frame Data row carries for this channel.
func (c *Channel) ElementCount() int {
	n := 1
	for _, d := range c.dimension {
		n *= int(d)
	}
	return n
}

// RP66 V1 Frame index types (spec §3 "Frame").
const (
	IndexBoreholeDepth = "BOREHOLE-DEPTH"
	IndexVerticalDepth = "VERTICAL-DEPTH"
	IndexRadialDrift   = "RADIAL-DRIFT"
	IndexAngularDrift  = "ANGULAR-DRIFT"
	IndexTime          = "TIME"
	IndexNonStandard   = "NON-STANDARD"
)

// Frame wraps an Item with its ordered Channel list, so the segmenter/IFLR
// encoder can reach each channel's cast code and dimension without
// re-parsing attributes back out of the template.
type Frame struct {
	*Item
	Channels []*Channel
}

// NewFrame builds a Frame item. channels[0] must be the index channel
// unless indexType is IndexNonStandard (spec §3 invariant); NewFrame does
// not itself verify that the caller placed the right channel first — it
// has no way to know which of several same-shaped channels is meant as
// the index — so this invariant is the caller's responsibility.
func NewFrame(name string, originReference uint32, copyNumber uint8, indexType string, channels []*Channel) (*Frame, error) {
	if len(channels) == 0 {
		return nil, errs.ErrFrameNoChannels
	}

	item := NewItem(KindFrame, name, originReference, copyNumber)

	refs := make([]rcode.ObjectName, len(channels))
	for i, c := range channels {
		refs[i] = c.ObjectName()
	}

	if err := item.Set("CHANNELS", refs, attribute.WithCode(rcode.OBNAME)); err != nil {
		return nil, err
	}
	if err := item.Set("INDEX-TYPE", indexType, attribute.WithCode(rcode.IDENT)); err != nil {
		return nil, err
	}

	return &Frame{Item: item, Channels: channels}, nil
}

// SetSpacing records the frame's index spacing and its units.
func (f *Frame) SetSpacing(spacing float64, units string) error {
	return f.Set("SPACING", spacing, attribute.WithUnits(units))
}

// SetIndexRange records the frame's index minimum and maximum.
func (f *Frame) SetIndexRange(min, max float64) error {
	if err := f.Set("INDEX-MIN", min); err != nil {
		return err
	}
	return f.Set("INDEX-MAX", max)
}

// NewAxis builds an Axis item (spec §3's Channel "axis reference").
func NewAxis(name string, originReference uint32, copyNumber uint8, axisID string) (*Item, error) {
	item := NewItem(KindAxis, name, originReference, copyNumber)
	if err := item.Set("AXIS-ID", axisID, attribute.WithCode(rcode.IDENT)); err != nil {
		return nil, err
	}
	return item, nil
}

// NewParameter builds a Parameter item. longName and values may be left
// unset (nil/"") and attached afterwards with Item.Set.
func NewParameter(name string, originReference uint32, copyNumber uint8, longName string, values any) (*Item, error) {
	item := NewItem(KindParameter, name, originReference, copyNumber)

	if longName != "" {
		if err := item.Set("LONG-NAME", longName); err != nil {
			return nil, err
		}
	}
	if values != nil {
		if err := item.Set("VALUES", values); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// NewZone builds a Zone item describing an index interval.
func NewZone(name string, originReference uint32, copyNumber uint8, description, domain string, minimum, maximum float64) (*Item, error) {
	item := NewItem(KindZone, name, originReference, copyNumber)

	if description != "" {
		if err := item.Set("DESCRIPTION", description); err != nil {
			return nil, err
		}
	}
	if err := item.Set("DOMAIN", domain, attribute.WithCode(rcode.IDENT)); err != nil {
		return nil, err
	}
	if err := item.Set("MINIMUM", minimum); err != nil {
		return nil, err
	}
	if err := item.Set("MAXIMUM", maximum); err != nil {
		return nil, err
	}

	return item, nil
}

// NewCalibration builds a Calibration item referencing its calibrated
// channels by OBNAME.
func NewCalibration(name string, originReference uint32, copyNumber uint8, method string, calibratedChannels []*Channel) (*Item, error) {
	item := NewItem(KindCalibration, name, originReference, copyNumber)

	if method != "" {
		if err := item.Set("METHOD", method, attribute.WithCode(rcode.IDENT)); err != nil {
			return nil, err
		}
	}

	refs := make([]rcode.ObjectName, len(calibratedChannels))
	for i, c := range calibratedChannels {
		refs[i] = c.ObjectName()
	}
	if len(refs) > 0 {
		if err := item.Set("CALIBRATED-CHANNELS", refs, attribute.WithCode(rcode.OBNAME)); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// NewCalibrationCoefficient builds a Calibration Coefficient item.
func NewCalibrationCoefficient(name string, originReference uint32, copyNumber uint8, label string, coefficients, references []float64) (*Item, error) {
	item := NewItem(KindCalibrationCoefficient, name, originReference, copyNumber)

	if label != "" {
		if err := item.Set("LABEL", label, attribute.WithCode(rcode.IDENT)); err != nil {
			return nil, err
		}
	}
	if len(coefficients) > 0 {
		if err := item.Set("COEFFICIENTS", coefficients); err != nil {
			return nil, err
		}
	}
	if len(references) > 0 {
		if err := item.Set("REFERENCES", references); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// NewCalibrationMeasurement builds a Calibration Measurement item.
func NewCalibrationMeasurement(name string, originReference uint32, copyNumber uint8, phase string, source *Channel, measurement []float64) (*Item, error) {
	item := NewItem(KindCalibrationMeasurement, name, originReference, copyNumber)

	if phase != "" {
		if err := item.Set("PHASE", phase, attribute.WithCode(rcode.IDENT)); err != nil {
			return nil, err
		}
	}
	if source != nil {
		if err := item.Set("MEASUREMENT-SOURCE", source.ObjectName(), attribute.WithCode(rcode.OBNAME)); err != nil {
			return nil, err
		}
	}
	if len(measurement) > 0 {
		if err := item.Set("MEASUREMENT", measurement); err != nil {
			return nil, err
		}
	}

	return item, nil
}
