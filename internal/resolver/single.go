package resolver

import "github.com/seitarof/gen-shape/internal/parser"

// SingleDerive derives a FromDecl that accepts the kinds of a ComboKind and
// copies the same fields for each of them.
type SingleDerive struct {
	kinds ComboKind
	decl  *parser.DeclInfo
}

func NewSingleDerive(kinds ComboKind, decl *parser.DeclInfo) *SingleDerive {
	return &SingleDerive{kinds: kinds, decl: decl}
}

// Validate checks that the target is a struct with named fields and that
// those fields are legal for every accepted kind.
func (d *SingleDerive) Validate() (UsedFields, error) {
	if d.decl.Shape != parser.ShapeStruct {
		return UsedFields{}, Errorf(CodeShapeMismatch, d.decl.Pos,
			"%s must be a struct type to accept %s", d.decl.Name, d.kinds)
	}
	if !hasNamedField(d.decl.Fields) {
		return UsedFields{}, Errorf(CodeShapeMismatch, d.decl.Pos,
			"%s must declare named fields, unit-like and embedded-only structs are not supported", d.decl.Name)
	}
	return ValidateFieldsCombo(d.kinds, d.decl.Fields)
}

func (d *SingleDerive) Derive() (*DerivePlan, error) {
	used, err := d.Validate()
	if err != nil {
		return nil, err
	}

	copies := Construct(used)
	plan := &DerivePlan{
		TypeName:   d.decl.Name,
		TypeParams: d.decl.TypeParams,
		Pos:        d.decl.Pos,
		Mode:       ModeSingle,
		Fallback:   true,
	}
	for _, k := range d.kinds.Distinct() {
		plan.Arms = append(plan.Arms, Arm{
			Kind:     k,
			Strategy: ArmConstruct,
			Copies:   copies,
		})
	}
	return plan, nil
}

func hasNamedField(fields []parser.FieldInfo) bool {
	for _, f := range fields {
		if !f.Embedded {
			return true
		}
	}
	return false
}
