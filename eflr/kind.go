// Package eflr implements the RP66 V1 Explicitly Formatted Logical Record
// model (spec §3, §4.3): Sets as insertion-ordered tables of Items, encoded
// as set-component + attribute template + concatenated item bodies.
//
// Grounded on mebo's section package (fixed-shape headers with a
// Bytes()/Parse() pair) for the overall "struct describes layout, method
// encodes it" shape, generalized here to a catalog-driven template instead
// of a single fixed struct, since RP66 V1 has 22 distinct EFLR kinds each
// with their own attribute positions (spec §6.2: "attribute catalog per
// item kind ... a static data table").
package eflr

// Kind identifies one of the 22 EFLR object kinds RP66 V1 defines
// (dliswriter/logical_record/eflr_types/__init__.py's eflr_sets tuple).
type Kind uint8

const (
	KindFileHeader Kind = iota
	KindOrigin
	KindAxis
	KindChannel
	KindFrame
	KindCalibrationCoefficient
	KindCalibrationMeasurement
	KindCalibration
	KindComputation
	KindEquipment
	KindGroup
	KindLongName
	KindMessage
	KindComment
	KindNoFormat
	KindParameter
	KindPath
	KindProcess
	KindSplice
	KindTool
	KindWellReferencePoint
	KindZone
)

// setTypes holds the RP66 V1 SET-TYPE string for each Kind.
var setTypes = map[Kind]string{
	KindFileHeader:             "FILE-HEADER",
	KindOrigin:                 "ORIGIN",
	KindAxis:                   "AXIS",
	KindChannel:                "CHANNEL",
	KindFrame:                  "FRAME",
	KindCalibrationCoefficient: "CALIBRATION-COEFFICIENT",
	KindCalibrationMeasurement: "CALIBRATION-MEASUREMENT",
	KindCalibration:            "CALIBRATION",
	KindComputation:            "COMPUTATION",
	KindEquipment:              "EQUIPMENT",
	KindGroup:                  "GROUP",
	KindLongName:               "LONG-NAME",
	KindMessage:                "MESSAGE",
	KindComment:                "COMMENT",
	KindNoFormat:               "NO-FORMAT",
	KindParameter:              "PARAMETER",
	KindPath:                   "PATH",
	KindProcess:                "PROCESS",
	KindSplice:                 "SPLICE",
	KindTool:                   "TOOL",
	KindWellReferencePoint:     "WELL-REFERENCE",
	KindZone:                   "ZONE",
}

// SetType returns k's RP66 V1 SET-TYPE string.
func (k Kind) SetType() string {
	return setTypes[k]
}

// logicalRecordTypes holds the RP66 V1 EFLR-TYPE code for each Kind
// (dlis_writer/utils/enums.py's EFLRType: most non-Axis/Channel/Frame/
// Origin/FileHeader/LongName kinds share the STATIC=5 code).
var logicalRecordTypes = map[Kind]uint8{
	KindFileHeader:             0, // FHLR
	KindOrigin:                 1, // OLR
	KindAxis:                   2, // AXIS
	KindChannel:                3, // CHANNL
	KindFrame:                  4, // FRAME
	KindCalibrationCoefficient: 5, // STATIC
	KindCalibrationMeasurement: 5,
	KindCalibration:            5,
	KindComputation:            5,
	KindEquipment:              5,
	KindGroup:                  5,
	KindLongName:               9, // LNAME
	KindMessage:                5,
	KindComment:                5,
	KindNoFormat:               5,
	KindParameter:              5,
	KindPath:                   5,
	KindProcess:                5,
	KindSplice:                 5,
	KindTool:                   5,
	KindWellReferencePoint:     5,
	KindZone:                   5,
}

// LogicalRecordType returns k's numeric EFLR-TYPE code, used in the segment
// header's logical_record_type field (spec §4.5).
func (k Kind) LogicalRecordType() uint8 {
	return logicalRecordTypes[k]
}
