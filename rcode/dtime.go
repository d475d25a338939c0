package rcode

import (
	"fmt"
	"time"

	"github.com/dlis-toolkit/dliswriter/errs"
)

// TimeZone is the 4-bit time-zone tag packed into DTIME's second byte
// alongside the month (spec §4.1: "((time-zone<<4) | month)").
type TimeZone uint8

const (
	TZLocalStandard TimeZone = 1
	TZLocalDaylight TimeZone = 2
	TZGMT           TimeZone = 0
)

// DefaultTimeZone is used by AppendDTIME when the caller does not specify
// one. Scenario S3 in the concrete test vectors (1987-04-19 21:20:15.620,
// "local standard" time, encoding to byte sequence
// 0x57 0x14 0x13 0x15 0x14 0x0F 0x02 0x6C) requires the month byte to be
// 0x14 = (1<<4)|4, i.e. a time-zone nibble of 1 for "local standard" — not
// 0, despite the zero value conventionally reading as the "default"/"no
// offset" tag elsewhere in RP66 V1. This module follows the literal test
// vector rather than that reading; see DESIGN.md.
const DefaultTimeZone = TZLocalStandard

// AppendDTIME appends a calendar timestamp in 8 bytes: year-1900, a byte
// packing the time-zone tag and month, day, hour, minute, second, and
// milliseconds (as a big-endian UNORM) — RP66 V1 Appendix B.21.
func AppendDTIME(buf []byte, t time.Time) ([]byte, error) {
	return AppendDTIMEWithZone(buf, t, DefaultTimeZone)
}

// AppendDTIMEWithZone is AppendDTIME with an explicit time-zone tag.
func AppendDTIMEWithZone(buf []byte, t time.Time, tz TimeZone) ([]byte, error) {
	year := t.Year() - 1900
	if year < 0 || year > 255 {
		return nil, fmt.Errorf("%w: DTIME year %d out of [1900, 2155]", errs.ErrDateOutOfRange, t.Year())
	}

	monthByte := byte(tz)<<4 | byte(t.Month())

	buf = append(buf, byte(year), monthByte, byte(t.Day()), byte(t.Hour()), byte(t.Minute()), byte(t.Second()))

	return order.AppendUint16(buf, uint16(t.Nanosecond()/1e6)), nil
}

// DecodeDTIME reads a DTIME value from the front of b. The time-zone tag
// is discarded; decoded times are always in time.UTC.
func DecodeDTIME(b []byte) (time.Time, error) {
	t, _, err := DecodeDTIMEWithZone(b)
	return t, err
}

// DecodeDTIMEWithZone is DecodeDTIME, additionally returning the time-zone tag.
func DecodeDTIMEWithZone(b []byte) (time.Time, TimeZone, error) {
	if len(b) < Width(DTIME) {
		return time.Time{}, 0, errs.ErrTruncatedInput
	}

	year := 1900 + int(b[0])
	tz := TimeZone(b[1] >> 4)
	month := time.Month(b[1] & 0x0F)
	day := int(b[2])
	hour, minute, second := int(b[3]), int(b[4]), int(b[5])
	ms := int(order.Uint16(b[6:8]))

	return time.Date(year, month, day, hour, minute, second, ms*1e6, time.UTC), tz, nil
}
