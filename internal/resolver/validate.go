package resolver

import (
	"slices"

	"github.com/seitarof/gen-shape/internal/parser"
	"github.com/seitarof/gen-shape/shape"
)

// UsedFields is the validated set of output fields, in declaration order.
type UsedFields struct {
	names []string
}

// NewUsedFields returns a UsedFields of names.
func NewUsedFields(names ...string) UsedFields {
	return UsedFields{names: slices.Clone(names)}
}

func (u UsedFields) Names() []string {
	return slices.Clone(u.names)
}

func (u UsedFields) Has(name string) bool {
	return slices.Contains(u.names, name)
}

func (u UsedFields) Len() int {
	return len(u.names)
}

func (u UsedFields) intersect(other UsedFields) UsedFields {
	out := make([]string, 0, len(u.names))
	for _, name := range u.names {
		if other.Has(name) {
			out = append(out, name)
		}
	}
	return UsedFields{names: out}
}

func (u UsedFields) without(name string) UsedFields {
	out := make([]string, 0, len(u.names))
	for _, n := range u.names {
		if n != name {
			out = append(out, n)
		}
	}
	return UsedFields{names: out}
}

// ValidateFields checks the named fields of a target against k's schema.
// Embedded fields are ignored. The first field outside the schema, in
// declaration order, is reported.
func ValidateFields(k shape.Kind, fields []parser.FieldInfo) (UsedFields, error) {
	legal := legalSet(k)

	used := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Embedded {
			continue
		}
		if !legal[f.Name] {
			return UsedFields{}, Errorf(CodeUnsupportedField, f.Pos, "unsupported field `%s` for kind %s", f.Name, k)
		}
		used = append(used, f.Name)
	}
	return UsedFields{names: used}, nil
}

// ValidateFieldsCombo validates fields against every kind of c and keeps the
// fields legal for all of them. With more than one distinct kind the payload
// field is always dropped.
func ValidateFieldsCombo(c ComboKind, fields []parser.FieldInfo) (UsedFields, error) {
	var acc UsedFields
	for i, k := range c.kinds {
		used, err := ValidateFields(k, fields)
		if err != nil {
			return UsedFields{}, err
		}
		if i == 0 {
			acc = used
			continue
		}
		acc = acc.intersect(used)
	}

	distinct := c.Distinct()
	if len(distinct) > 1 {
		for _, k := range distinct {
			acc = acc.without(PayloadField(k))
		}
	}
	return acc, nil
}
