package visible

import (
	"fmt"
	"strconv"

	"github.com/dlis-toolkit/dliswriter/errs"
)

// SULLength is the Storage Unit Label's fixed size (spec §3).
const SULLength = 80

const (
	dlisVersion       = "V1.00"
	storageStructure  = "RECORD"
	sequenceNumberLen = 4
	versionLen        = 5
	structureLen      = 6
	maxRecordLenLen   = 5
	setIdentifierLen  = 60
)

// StorageUnitLabel holds the fields of RP66 V1's 80-byte preamble (spec
// §3), grounded on original_source's StorageUnitLabel: a fixed-width
// ASCII record describing the storage set and the visible record size
// ceiling every VR in the file is bound by.
type StorageUnitLabel struct {
	SequenceNumber  int
	MaxRecordLength int
	SetIdentifier   string
}

// NewStorageUnitLabel builds a StorageUnitLabel, validating that
// maxRecordLength obeys spec §3/§4.6's invariant (even, [20, 16384]) and
// that setIdentifier fits its 60-byte field.
func NewStorageUnitLabel(setIdentifier string, sequenceNumber, maxRecordLength int) (*StorageUnitLabel, error) {
	if err := ValidateLength(maxRecordLength); err != nil {
		return nil, err
	}
	if len(setIdentifier) > setIdentifierLen {
		return nil, fmt.Errorf("%w: storage set identifier %q exceeds %d bytes", errs.ErrStringTooLong, setIdentifier, setIdentifierLen)
	}
	return &StorageUnitLabel{
		SequenceNumber:  sequenceNumber,
		MaxRecordLength: maxRecordLength,
		SetIdentifier:   setIdentifier,
	}, nil
}

// Encode appends the 80-byte SUL to buf. It is never wrapped in a
// Visible Record (spec §4.8 step 3).
func (s *StorageUnitLabel) Encode(buf []byte) ([]byte, error) {
	seq := strconv.Itoa(s.SequenceNumber)
	if len(seq) > sequenceNumberLen {
		return nil, fmt.Errorf("%w: sequence number %q exceeds %d digits", errs.ErrStringTooLong, seq, sequenceNumberLen)
	}

	mrl := strconv.Itoa(s.MaxRecordLength)
	if len(mrl) > maxRecordLenLen {
		return nil, fmt.Errorf("%w: max record length %q exceeds %d digits", errs.ErrStringTooLong, mrl, maxRecordLenLen)
	}

	if len(s.SetIdentifier) > setIdentifierLen {
		return nil, fmt.Errorf("%w: storage set identifier %q exceeds %d bytes", errs.ErrStringTooLong, s.SetIdentifier, setIdentifierLen)
	}

	buf = append(buf, padRight(seq, sequenceNumberLen)...)
	buf = append(buf, padLeft(dlisVersion, versionLen)...)
	buf = append(buf, padRight(storageStructure, structureLen)...)
	buf = append(buf, padRight(mrl, maxRecordLenLen)...)
	buf = append(buf, padLeft(s.SetIdentifier, setIdentifierLen)...)

	return buf, nil
}

// padRight right-aligns s within width, space-padding on the left.
func padRight(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}

// padLeft left-aligns s within width, space-padding on the right.
func padLeft(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
