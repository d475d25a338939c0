// Package keyset detects duplicate EFLR Set item keys.
//
// Adapted from mebo's internal/collision.Tracker: a hash-indexed map with an
// exact-match fallback list, used there to detect metric-name hash
// collisions. Here the same shape tracks exact duplicates instead of
// collisions: RP66 V1 requires every Item's (origin_reference, copy_number,
// name) triple to be unique within a Set (spec §3, §7 ErrDuplicateItemKey).
// Go structs of comparable fields could be used directly as a map key, but
// keeping the hash-then-verify shape matches the idiom the rest of the
// internal packages already follow and lets KeyString absorb any future
// field that isn't trivially comparable (e.g. case-folded names).
package keyset

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/internal/hash"
)

// Key identifies an Item within an EFLR Set.
type Key struct {
	OriginReference uint32
	CopyNumber      uint8
	Name            string
}

func (k Key) String() string {
	return fmt.Sprintf("%d-%d-%s", k.OriginReference, k.CopyNumber, k.Name)
}

// Tracker detects duplicate Keys added to the same Set.
type Tracker struct {
	seen map[uint64][]Key
	keys []Key
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seen: make(map[uint64][]Key),
		keys: make([]Key, 0),
	}
}

// Add records k, returning errs.ErrDuplicateItemKey if an equal key was
// already added to this Tracker.
func (t *Tracker) Add(k Key) error {
	id := hash.ID(hash.KeyString(k.OriginReference, k.CopyNumber, k.Name))

	for _, existing := range t.seen[id] {
		if existing == k {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateItemKey, k)
		}
	}

	t.seen[id] = append(t.seen[id], k)
	t.keys = append(t.keys, k)

	return nil
}

// Keys returns the keys added so far, in insertion order.
func (t *Tracker) Keys() []Key {
	return t.keys
}

// Count returns the number of distinct keys tracked.
func (t *Tracker) Count() int {
	return len(t.keys)
}

// Reset clears all tracked keys, preserving the map's allocated capacity
// for reuse across Sets.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
	t.keys = t.keys[:0]
}
