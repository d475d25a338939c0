// Package endian provides the byte-order engine used by the rcode codecs.
//
// RP66 V1 is big-endian throughout (spec §4.1: "Big-endian throughout"), so
// this package is a deliberately narrowed version of the teacher's
// EndianEngine abstraction: it keeps the combined ByteOrder + AppendByteOrder
// interface (for the same append-path speedup the teacher documents) but
// exposes only the big-endian engine. The interface is kept, rather than
// calling encoding/binary.BigEndian directly everywhere, so rcode's codecs
// stay engine-parameterized and testable against a fake engine without
// touching every call site if a variant format ever needs one.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface, satisfied by binary.BigEndian.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Big returns the big-endian engine mandated by RP66 V1.
func Big() Engine {
	return binary.BigEndian
}
