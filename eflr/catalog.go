package eflr

import "github.com/dlis-toolkit/dliswriter/rcode"

// AttrDesc is one catalog entry: a fixed template position for a Kind
// (spec §6.2: "an ordered list of attribute descriptors: (label, default
// representation code, multivalued?, multidimensional?, validator)").
// Validation of individual values happens in attribute.New; the catalog
// only fixes the label, the default code (0 lets attribute.New infer one
// from the value actually supplied), and a multivalued hint that no code
// in this package reads.
type AttrDesc struct {
	Label       string
	Code        rcode.Code
	Multivalued bool
}

// catalog is the static per-Kind attribute table (spec §6.2, §9: "the
// attribute catalog is a static table per kind"; out of scope as logic,
// taken here as a data table). Labels and field groupings are grounded on
// dliswriter/logical_record/eflr_types/{origin,frame,channel}.py and, for
// kinds original_source's retrieval pack did not include source for
// (Axis, Channel, Equipment, Parameter, Tool), on RP66 V1 Appendix A's
// published object attribute lists for those same kinds.
var catalog = map[Kind][]AttrDesc{
	KindFileHeader: {
		{Label: "SEQUENCE-NUMBER", Code: rcode.ASCII},
		{Label: "ID", Code: rcode.ASCII},
	},
	KindOrigin: {
		{Label: "FILE-ID"},
		{Label: "FILE-SET-NAME", Code: rcode.IDENT},
		{Label: "FILE-SET-NUMBER", Code: rcode.UVARI},
		{Label: "FILE-NUMBER", Code: rcode.UVARI},
		{Label: "FILE-TYPE", Code: rcode.IDENT},
		{Label: "PRODUCT"},
		{Label: "VERSION"},
		{Label: "PROGRAMS", Multivalued: true},
		{Label: "CREATION-TIME", Code: rcode.DTIME},
		{Label: "ORDER-NUMBER"},
		{Label: "DESCENT-NUMBER", Code: rcode.UNORM},
		{Label: "RUN-NUMBER", Code: rcode.UNORM},
		{Label: "WELL-ID", Code: rcode.UNORM},
		{Label: "WELL-NAME"},
		{Label: "FIELD-NAME"},
		{Label: "PRODUCER-CODE", Code: rcode.UNORM},
		{Label: "PRODUCER-NAME"},
		{Label: "COMPANY"},
		{Label: "NAME-SPACE-NAME", Code: rcode.IDENT},
		{Label: "NAME-SPACE-VERSION", Code: rcode.UVARI},
	},
	KindAxis: {
		{Label: "AXIS-ID", Code: rcode.IDENT},
		{Label: "COORDINATES", Multivalued: true},
		{Label: "SPACING"},
	},
	KindChannel: {
		{Label: "LONG-NAME"},
		{Label: "PROPERTIES", Multivalued: true},
		{Label: "REPRESENTATION-CODE", Code: rcode.USHORT},
		{Label: "UNITS", Code: rcode.IDENT},
		{Label: "DIMENSION", Code: rcode.UVARI, Multivalued: true},
		{Label: "AXIS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "ELEMENT-LIMIT", Code: rcode.UVARI, Multivalued: true},
		{Label: "SOURCE", Code: rcode.OBNAME},
		{Label: "MINIMUM-VALUE"},
		{Label: "MAXIMUM-VALUE"},
	},
	KindFrame: {
		{Label: "DESCRIPTION"},
		{Label: "CHANNELS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "INDEX-TYPE", Code: rcode.IDENT},
		{Label: "DIRECTION", Code: rcode.IDENT},
		{Label: "SPACING"},
		{Label: "ENCRYPTED", Code: rcode.STATUS},
		{Label: "INDEX-MIN"},
		{Label: "INDEX-MAX"},
	},
	KindCalibrationCoefficient: {
		{Label: "LABEL", Code: rcode.IDENT},
		{Label: "COEFFICIENTS", Multivalued: true},
		{Label: "REFERENCES", Multivalued: true},
		{Label: "PLUS-TOLERANCES", Multivalued: true},
		{Label: "MINUS-TOLERANCES", Multivalued: true},
	},
	KindCalibrationMeasurement: {
		{Label: "PHASE", Code: rcode.IDENT},
		{Label: "MEASUREMENT-SOURCE", Code: rcode.OBNAME},
		{Label: "TYPE", Code: rcode.IDENT},
		{Label: "DIMENSION", Code: rcode.UVARI, Multivalued: true},
		{Label: "AXIS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "MEASUREMENT", Multivalued: true},
		{Label: "SAMPLE-COUNT"},
		{Label: "MAXIMUM-DEVIATION"},
		{Label: "STANDARD-DEVIATION"},
		{Label: "BEGIN-TIME", Code: rcode.DTIME},
		{Label: "DURATION"},
		{Label: "REFERENCE", Multivalued: true},
		{Label: "STANDARD", Multivalued: true},
		{Label: "PLUS-TOLERANCE", Multivalued: true},
		{Label: "MINUS-TOLERANCE", Multivalued: true},
	},
	KindCalibration: {
		{Label: "METHOD", Code: rcode.IDENT},
		{Label: "CALIBRATED-CHANNELS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "UNCALIBRATED-CHANNELS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "COEFFICIENTS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "MEASUREMENTS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "PARAMETERS", Code: rcode.OBNAME, Multivalued: true},
	},
	KindComputation: {
		{Label: "LONG-NAME"},
		{Label: "PROPERTIES", Code: rcode.IDENT, Multivalued: true},
		{Label: "DIMENSION", Code: rcode.UVARI, Multivalued: true},
		{Label: "AXIS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "ZONES", Code: rcode.OBNAME, Multivalued: true},
		{Label: "VALUES", Multivalued: true},
		{Label: "SOURCE", Code: rcode.OBNAME},
	},
	KindEquipment: {
		{Label: "TRADE-NAME"},
		{Label: "STATUS", Code: rcode.STATUS},
		{Label: "TYPE", Code: rcode.IDENT},
		{Label: "SERIAL-NUMBER"},
		{Label: "LOCATION-NAME", Code: rcode.IDENT},
		{Label: "HEIGHT"},
		{Label: "LENGTH"},
		{Label: "MINIMUM-DIAMETER"},
		{Label: "MAXIMUM-DIAMETER"},
		{Label: "VOLUME"},
		{Label: "WEIGHT"},
		{Label: "HOLE-SIZE"},
		{Label: "PRESSURE"},
		{Label: "TEMPERATURE"},
		{Label: "VERTICAL-DEPTH"},
		{Label: "RADIAL-DRIFT"},
		{Label: "ANGULAR-DRIFT"},
	},
	KindGroup: {
		{Label: "DESCRIPTION"},
		{Label: "OBJECT-TYPE", Code: rcode.IDENT},
		{Label: "OBJECT-LIST", Code: rcode.OBJREF, Multivalued: true},
		{Label: "GROUP-LIST", Code: rcode.OBJREF, Multivalued: true},
	},
	KindLongName: {
		{Label: "GENERAL-MODIFIER", Multivalued: true},
		{Label: "QUANTITY"},
		{Label: "QUANTITY-MODIFIER", Multivalued: true},
		{Label: "ALTERED-FORM"},
		{Label: "ENTITY"},
		{Label: "ENTITY-MODIFIER", Multivalued: true},
		{Label: "ENTITY-NUMBER"},
		{Label: "ENTITY-PART"},
		{Label: "ENTITY-PART-NUMBER"},
		{Label: "GENERIC-SOURCE"},
		{Label: "SOURCE-PART", Multivalued: true},
		{Label: "SOURCE-PART-NUMBER", Multivalued: true},
		{Label: "CONDITIONS", Multivalued: true},
		{Label: "STANDARD-SYMBOL"},
		{Label: "PRIVATE-SYMBOL"},
	},
	KindMessage: {
		{Label: "MESSAGE-TYPE", Code: rcode.IDENT},
		{Label: "TIME", Code: rcode.DTIME},
		{Label: "BOREHOLE-DRIFT"},
		{Label: "VERTICAL-DEPTH"},
		{Label: "RADIAL-DRIFT"},
		{Label: "ANGULAR-DRIFT"},
		{Label: "TEXT", Multivalued: true},
	},
	KindComment: {
		{Label: "TEXT", Multivalued: true},
	},
	KindNoFormat: {
		{Label: "CONSUMER-NAME", Code: rcode.IDENT},
		{Label: "DESCRIPTION"},
	},
	KindParameter: {
		{Label: "LONG-NAME"},
		{Label: "DIMENSION", Code: rcode.UVARI, Multivalued: true},
		{Label: "AXIS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "ZONES", Code: rcode.OBNAME, Multivalued: true},
		{Label: "VALUES", Multivalued: true},
	},
	KindPath: {
		{Label: "FRAME-TYPE", Code: rcode.OBNAME},
		{Label: "WELL-REFERENCE-POINT", Code: rcode.OBNAME},
		{Label: "VALUE", Code: rcode.OBNAME, Multivalued: true},
		{Label: "BOREHOLE-DEPTH", Code: rcode.OBNAME},
		{Label: "VERTICAL-DEPTH", Code: rcode.OBNAME},
		{Label: "RADIAL-DRIFT", Code: rcode.OBNAME},
		{Label: "ANGULAR-DRIFT", Code: rcode.OBNAME},
		{Label: "TIME", Code: rcode.OBNAME},
		{Label: "DEPTH-OFFSET"},
		{Label: "MEASUREMENT-SOURCE", Code: rcode.OBNAME},
		{Label: "TOOL-ZERO-OFFSET"},
	},
	KindProcess: {
		{Label: "DESCRIPTION"},
		{Label: "TRADEMARK-NAME"},
		{Label: "VERSION"},
		{Label: "PROPERTIES", Code: rcode.IDENT, Multivalued: true},
		{Label: "STATUS", Code: rcode.IDENT},
		{Label: "INPUT-CHANNELS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "OUTPUT-CHANNELS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "INPUT-COMPUTATIONS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "OUTPUT-COMPUTATIONS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "PARAMETERS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "COMMENT"},
	},
	KindSplice: {
		{Label: "OUTPUT-CHANNEL", Code: rcode.OBNAME},
		{Label: "INPUT-CHANNELS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "ZONES", Code: rcode.OBNAME, Multivalued: true},
	},
	KindTool: {
		{Label: "DESCRIPTION"},
		{Label: "TRADE-NAME"},
		{Label: "GENERIC-NAME"},
		{Label: "PARTS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "STATUS", Code: rcode.STATUS},
		{Label: "CHANNELS", Code: rcode.OBNAME, Multivalued: true},
		{Label: "PARAMETERS", Code: rcode.OBNAME, Multivalued: true},
	},
	KindWellReferencePoint: {
		{Label: "PERMANENT-DATUM"},
		{Label: "VERTICAL-ZERO"},
		{Label: "PERMANENT-DATUM-ELEVATION"},
		{Label: "ABOVE-PERMANENT-DATUM"},
		{Label: "MAGNETIC-DECLINATION"},
		{Label: "COORDINATE-1-NAME"},
		{Label: "COORDINATE-1-VALUE"},
		{Label: "COORDINATE-2-NAME"},
		{Label: "COORDINATE-2-VALUE"},
		{Label: "COORDINATE-3-NAME"},
		{Label: "COORDINATE-3-VALUE"},
	},
	KindZone: {
		{Label: "DESCRIPTION"},
		{Label: "DOMAIN", Code: rcode.IDENT},
		{Label: "MAXIMUM"},
		{Label: "MINIMUM"},
	},
}

// Catalog returns k's fixed, ordered attribute template (spec §6.2).
func Catalog(k Kind) []AttrDesc {
	return catalog[k]
}
