package iflr

// IFLR logical_record_type codes (spec §4.5's segment header field, RP66
// V1 Appendix A). These occupy the same numeric space as EFLR-TYPE codes
// but are disambiguated by the segment-attributes is_eflr bit, so a
// Frame Data record and a File Header record can both carry type 0.
const (
	RecordTypeFrameData = 0
	RecordTypeNoFormat  = 1
)
