// Package hash wraps xxhash so the rest of the module never imports the
// third-party package directly, matching mebo's internal/hash/id.go.
package hash

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// DefaultFileSetNumber derives a stable 32-bit file_set_number from an
// Origin's identifying strings (spec §6.3 calls for "a random 32-bit" value
// when the caller does not supply one; this module substitutes a content
// hash so repeated runs over the same Origin fields are reproducible).
//
// The hash is reduced modulo 2^30-1: file_set_number is encoded as UVARI
// (spec §4.1), whose largest (four-byte) form carries 30 data bits, so
// the result stays in [1, 1073741823].
func DefaultFileSetNumber(creationTime, company, wellName string) uint32 {
	id := ID(creationTime + "\x00" + company + "\x00" + wellName)

	return uint32(id%0x3fffffff) + 1 // +1: keep the result in [1, 2^30-1], 0 is reserved as "unset"
}

// KeyString builds the hashable string used for a set-item key by
// internal/keyset.
func KeyString(originReference uint32, copyNumber uint8, name string) string {
	return strconv.FormatUint(uint64(originReference), 10) + "\x00" +
		strconv.FormatUint(uint64(copyNumber), 10) + "\x00" + name
}
