// Package attribute implements the RP66 V1 Attribute model (spec §3, §4.2):
// a typed value carrying an optional label, representation code, units, and
// a scalar/list/nested-list value, plus its two on-wire forms (template row
// and item row).
//
// Grounded on mebo's NumericEncoderConfig
// (blob/numeric_encoder_config.go): a config struct built by functional
// options (internal/options), validated lazily at construction rather than
// checked field-by-field at every call site.
package attribute

import (
	"fmt"
	"reflect"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/dlis-toolkit/dliswriter/internal/options"
	"github.com/dlis-toolkit/dliswriter/rcode"
)

// Attribute is one (label, representation-code, units, value) tuple, either
// a Set's template-row description or one Item's value row for that
// position (spec §3 "Attribute").
type Attribute struct {
	Label            string
	Code             rcode.Code // zero means "infer from Value at encode time"
	Units            string
	Value            any // nil, a scalar, a flat list, or a nested list (multidim)
	Multivalued      bool
	Multidimensional bool
}

// Option configures an Attribute at construction time.
type Option = options.Option[*Attribute]

// WithCode declares an explicit representation code instead of inferring
// one from Value's Go type.
func WithCode(c rcode.Code) Option {
	return options.NoError(func(a *Attribute) { a.Code = c })
}

// WithUnits sets the attribute's units string, validated against the RP66
// V1 character class (spec §3).
func WithUnits(units string) Option {
	return options.New(func(a *Attribute) error {
		if err := rcode.ValidateUnits(units, false); err != nil {
			return err
		}
		a.Units = units
		return nil
	})
}

// normalizeLabel upper-cases a label and turns underscores into dashes, the
// canonical RP66 V1 attribute-name form (spec §3: "label (uppercased,
// underscores → dashes)").
func normalizeLabel(label string) string {
	out := make([]byte, len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c == '_':
			out[i] = '-'
		case c >= 'a' && c <= 'z':
			out[i] = c - ('a' - 'A')
		default:
			out[i] = c
		}
	}
	return string(out)
}

// New builds an Attribute, deriving Multivalued/Multidimensional from
// Value's shape and, unless WithCode overrides it, inferring Code from
// Value's Go type.
func New(label string, value any, opts ...Option) (*Attribute, error) {
	a := &Attribute{Label: normalizeLabel(label), Value: value}

	_, a.Multivalued, a.Multidimensional, _ = shapeOf(value)

	if err := options.Apply(a, opts...); err != nil {
		return nil, err
	}

	if a.Code == 0 && value != nil {
		_, _, _, elem := shapeOf(value)
		code, err := rcode.Infer(elem)
		if err != nil {
			return nil, err
		}
		a.Code = code
	}

	if err := a.validate(); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Attribute) validate() error {
	if a.Multidimensional && !a.Multivalued {
		return errs.ErrMultidimNotMultivalue
	}

	if a.Value != nil && a.Code != 0 {
		_, _, _, elem := shapeOf(a.Value)
		if elem != nil && !rcode.CompatibleWith(a.Code, elem) {
			return fmt.Errorf("%w: %s with value %v", errs.ErrIncompatibleRepCode, a.Code, elem)
		}
	}

	return nil
}

// Count reports the attribute's count component (spec §3: "1 for scalar,
// length for list; missing when value is not set") and whether it applies.
func (a *Attribute) Count() (int, bool) {
	if a.Value == nil {
		return 0, false
	}
	n, _, _, _ := shapeOf(a.Value)
	return n, true
}

// shapeOf inspects value and returns (flattened element count, multivalued,
// multidimensional, a representative leaf element for code inference).
func shapeOf(value any) (count int, multivalued, multidim bool, elem any) {
	if value == nil {
		return 0, false, false, nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 1, false, false, value
	}

	if rv.Len() == 0 {
		return 0, true, false, nil
	}

	first := rv.Index(0).Interface()
	fv := reflect.ValueOf(first)
	if fv.Kind() != reflect.Slice && fv.Kind() != reflect.Array {
		return rv.Len(), true, false, first
	}

	total := 0
	var leaf any
	for i := 0; i < rv.Len(); i++ {
		row := reflect.ValueOf(rv.Index(i).Interface())
		total += row.Len()
		if leaf == nil && row.Len() > 0 {
			leaf = row.Index(0).Interface()
		}
	}

	return total, true, true, leaf
}

// flattenValues walks value in row-major order, returning every leaf
// element (spec §4.2: "flattened in row-major for multidimensional
// attributes").
func flattenValues(value any) []any {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{value}
	}

	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		ev := reflect.ValueOf(elem)
		if ev.Kind() == reflect.Slice || ev.Kind() == reflect.Array {
			out = append(out, flattenValues(elem)...)
		} else {
			out = append(out, elem)
		}
	}

	return out
}
