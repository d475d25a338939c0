// Package errs collects the sentinel errors returned by the dliswriter core.
//
// Every error the core can return is a package-level sentinel wrapped with
// fmt.Errorf("%w: detail", errs.ErrX) at the call site, the same idiom mebo
// uses throughout blob/numeric_encoder.go and blob/numeric_decoder.go. Callers
// use errors.Is against the sentinels below rather than parsing error strings.
//
// The sentinels are grouped by the four error kinds spec §7 names:
// ValidationError, EncodingError, SegmentationError, and IOError. IOError has
// no sentinel of its own — underlying os/io errors propagate unwrapped, as
// the spec requires ("I/O errors during writing propagate").
package errs

import "errors"

// Validation errors: model defects detected before any byte is written.
var (
	ErrMissingFileHeader     = errors.New("dliswriter: logical file has no File Header item")
	ErrMissingOrigin         = errors.New("dliswriter: logical file has no Origin item")
	ErrMissingFrame          = errors.New("dliswriter: logical file has no Frame with at least one channel")
	ErrFrameNoChannels       = errors.New("dliswriter: frame has no channels")
	ErrDanglingReference     = errors.New("dliswriter: item reference does not resolve to a known item")
	ErrDuplicateItemKey      = errors.New("dliswriter: duplicate (origin_reference, copy_number, name) key in set")
	ErrSetKindMismatch       = errors.New("dliswriter: item kind does not match the set's kind")
	ErrUnresolvedChannel     = errors.New("dliswriter: channel has no resolvable dtype/dimension in the data source")
	ErrChannelNotInFrame     = errors.New("dliswriter: channel is not referenced by any frame")
	ErrInvalidUnits          = errors.New("dliswriter: units string fails the RP66 character-class restriction")
	ErrIncompatibleRepCode   = errors.New("dliswriter: representation code is not compatible with the attribute's value kind")
	ErrMultidimNotMultivalue = errors.New("dliswriter: multidimensional attribute must also be multivalued")
	ErrNameTooLong           = errors.New("dliswriter: name exceeds the maximum encodable length")
	ErrInvalidName           = errors.New("dliswriter: item name fails the high-compatibility-mode charset restriction")
	ErrOutOfRangeCount       = errors.New("dliswriter: attribute count is out of range")
	ErrInvalidFrameIndex     = errors.New("dliswriter: frame's first channel must be the index channel")
	ErrUnknownColumn         = errors.New("dliswriter: data source has no column with this name")
	ErrRowCountMismatch      = errors.New("dliswriter: data source columns disagree on row count")
)

// Encoding errors: a value cannot be encoded under its declared representation code.
var (
	ErrIntegerOutOfRange   = errors.New("dliswriter: integer value out of range for representation code")
	ErrNonASCIIString      = errors.New("dliswriter: string contains non-ASCII bytes")
	ErrStringTooLong       = errors.New("dliswriter: string exceeds the maximum length for its representation code")
	ErrDateOutOfRange      = errors.New("dliswriter: date/time value out of the encodable calendar range")
	ErrInvalidStatus       = errors.New("dliswriter: STATUS value must be 0 or 1")
	ErrUnknownValueKind    = errors.New("dliswriter: value kind has no matching representation code")
	ErrUnimplementedCode   = errors.New("dliswriter: representation code has no encoder in this implementation")
	ErrTruncatedInput      = errors.New("dliswriter: byte slice is too short to decode the requested representation code")
	ErrDimensionMismatch   = errors.New("dliswriter: value count does not match the declared dimension")
)

// Segmentation errors: the caller-supplied visible-record length cannot fit a
// segment the format requires.
var (
	ErrRecordTooShort  = errors.New("dliswriter: logical record body is shorter than the 12-byte minimum")
	ErrVRLTooSmall     = errors.New("dliswriter: visible record length is below the 20-byte minimum")
	ErrVRLOdd          = errors.New("dliswriter: visible record length must be even")
	ErrVRLOutOfRange   = errors.New("dliswriter: visible record length must be in [20, 16384]")
)
