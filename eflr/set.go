package eflr

import (
	"fmt"

	"github.com/dlis-toolkit/dliswriter/attribute"
	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/internal/keyset"
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// setComponentNamed / setComponentUnnamed are the RP66 V1 SET-COMPONENT
// role+type byte values (spec §4.3).
const (
	setComponentNamed   = 0xF8
	setComponentUnnamed = 0xF0
	objectComponent     = 0x70
)

// Set is an EFLR Set (spec §3): an insertion-ordered table of same-Kind
// Items, plus the optional set_name distinguishing multiple Sets of the
// same Kind.
//
// Grounded on mebo's section package for the "fixed-shape header +
// ordered body" idea; the duplicate-key tracking is internal/keyset,
// adapted from mebo's internal/collision.Tracker.
type Set struct {
	Type Kind
	Name string

	items   []*Item
	tracker *keyset.Tracker
}

// NewSet creates an empty Set of the given Kind. name may be empty (spec
// §3: "set_name (optional string; distinguishes multiple Sets of the same
// kind)").
func NewSet(kind Kind, name string) *Set {
	return &Set{Type: kind, Name: name, tracker: keyset.NewTracker()}
}

// AddItem appends item to the set, in insertion order, rejecting a
// (origin_reference, copy_number, name) key already present (spec §3
// "Key/uniqueness").
func (s *Set) AddItem(item *Item) error {
	if item.Kind != s.Type {
		return fmt.Errorf("%w: %s", errs.ErrSetKindMismatch, s.Type.SetType())
	}

	key := keyset.Key{OriginReference: item.OriginReference, CopyNumber: item.CopyNumber, Name: item.Name}
	if err := s.tracker.Add(key); err != nil {
		return err
	}

	s.items = append(s.items, item)

	return nil
}

// Items returns the set's items in insertion order.
func (s *Set) Items() []*Item {
	return s.items
}

// Encode appends the set's body bytes (spec §4.3): SetComponent ‖
// TemplateBytes ‖ concat(ItemBytes).
func (s *Set) Encode(buf []byte) ([]byte, error) {
	var err error

	if s.Name != "" {
		buf = append(buf, setComponentNamed)
		if buf, err = rcode.AppendIDENT(buf, s.Type.SetType()); err != nil {
			return nil, err
		}
		if buf, err = rcode.AppendIDENT(buf, s.Name); err != nil {
			return nil, err
		}
	} else {
		buf = append(buf, setComponentUnnamed)
		if buf, err = rcode.AppendIDENT(buf, s.Type.SetType()); err != nil {
			return nil, err
		}
	}

	desc := Catalog(s.Type)

	for _, d := range desc {
		tmpl := &attribute.Attribute{Label: d.Label, Code: d.Code}
		if buf, err = attribute.AppendTemplateRow(buf, tmpl); err != nil {
			return nil, err
		}
	}

	for _, item := range s.items {
		buf = append(buf, objectComponent)
		if buf, err = rcode.AppendOBNAME(buf, item.ObjectName()); err != nil {
			return nil, err
		}

		for _, d := range desc {
			a, ok := item.Attribute(d.Label)
			if !ok {
				a = &attribute.Attribute{}
			}
			if buf, err = attribute.AppendItemRow(buf, a); err != nil {
				return nil, err
			}
		}
	}

	return buf, nil
}
