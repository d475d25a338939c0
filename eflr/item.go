package eflr

import (
	"github.com/dlis-toolkit/dliswriter/attribute"
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// Item is one row of an EFLR Set (spec §3 "EFLR Item"): a name scoped by
// its parent Set, an origin-reference/copy-number pair disambiguating it
// from items of the same name, and an insertion-ordered set of attribute
// values keyed by label.
type Item struct {
	Kind            Kind
	Name            string
	OriginReference uint32
	CopyNumber      uint8

	attrs map[string]*attribute.Attribute
}

// NewItem creates an empty Item of the given Kind. Attribute values are
// attached afterwards with Set.
func NewItem(kind Kind, name string, originReference uint32, copyNumber uint8) *Item {
	return &Item{
		Kind:            kind,
		Name:            name,
		OriginReference: originReference,
		CopyNumber:      copyNumber,
		attrs:           make(map[string]*attribute.Attribute),
	}
}

// Set builds an Attribute for label and value and attaches it to the item,
// normalizing label the same way attribute.New does so a later lookup by
// the catalog's label matches regardless of caller casing.
func (it *Item) Set(label string, value any, opts ...attribute.Option) error {
	a, err := attribute.New(label, value, opts...)
	if err != nil {
		return err
	}

	it.attrs[a.Label] = a

	return nil
}

// Attribute returns the attribute attached at label (already normalized),
// and whether one was set.
func (it *Item) Attribute(label string) (*attribute.Attribute, bool) {
	a, ok := it.attrs[label]
	return a, ok
}

// Attributes returns every attribute attached to this item, keyed by
// normalized label.
func (it *Item) Attributes() map[string]*attribute.Attribute {
	return it.attrs
}

// ObjectName returns the OBNAME identifying this item (spec §3).
func (it *Item) ObjectName() rcode.ObjectName {
	return rcode.ObjectName{
		OriginReference: it.OriginReference,
		CopyNumber:      it.CopyNumber,
		Name:            it.Name,
	}
}
