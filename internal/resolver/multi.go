package resolver

import (
	"github.com/seitarof/gen-shape/internal/parser"
	"github.com/seitarof/gen-shape/shape"
)

// DeriveVariant is what a oneof variant does for its kind: *TypeVariant
// delegates to another type, *StructLikeVariant copies fields directly.
type DeriveVariant interface {
	isDeriveVariant()
}

type TypeVariant struct {
	Path     string
	Delegate Delegate
}

type StructLikeVariant struct {
	Path string
	Used UsedFields
}

func (*TypeVariant) isDeriveVariant()       {}
func (*StructLikeVariant) isDeriveVariant() {}

// MultiDerive derives a FromDecl for a oneof struct whose fields are named
// after kinds.
type MultiDerive struct {
	decl *parser.DeclInfo
}

func NewMultiDerive(decl *parser.DeclInfo) *MultiDerive {
	return &MultiDerive{decl: decl}
}

// Validate returns the variant of every kind the oneof declares.
func (d *MultiDerive) Validate() (map[shape.Kind]DeriveVariant, error) {
	if d.decl.Shape != parser.ShapeStruct {
		return nil, Errorf(CodeShapeMismatch, d.decl.Pos, "oneof %s must be a struct type", d.decl.Name)
	}
	if len(d.decl.Fields) == 0 {
		return nil, Errorf(CodeEmptyEnum, d.decl.Pos, "oneof %s must have at least one variant", d.decl.Name)
	}

	support := make(map[shape.Kind]DeriveVariant, len(d.decl.Fields))
	for _, f := range d.decl.Fields {
		k, err := shape.ParseKind(f.Name)
		if f.Embedded || err != nil {
			return nil, Errorf(CodeUnknownVariantName, f.Pos,
				"oneof variants must be named `%s`, `%s` or `%s`", shape.Struct, shape.Enum, shape.Union)
		}
		v, err := d.variant(k, f)
		if err != nil {
			return nil, err
		}
		support[k] = v
	}
	return support, nil
}

func (d *MultiDerive) variant(k shape.Kind, f parser.FieldInfo) (DeriveVariant, error) {
	switch f.Type.Kind {
	case parser.TypeNamed:
		return d.typeVariant(f.Name, f)
	case parser.TypeAnonStruct:
		if f.Type.Pointer {
			return nil, Errorf(CodeShapeMismatch, f.Pos, "variant %s cannot be a pointer to an anonymous struct", f.Name)
		}
		if len(f.Type.Fields) == 0 {
			return nil, Errorf(CodeUnitVariantUnsupported, f.Pos, "variant %s cannot be a unit variant", f.Name)
		}
		if !hasNamedField(f.Type.Fields) {
			if len(f.Type.Fields) != 1 {
				return nil, Errorf(CodeTooManyFields, f.Pos, "variant %s supports only one unnamed field", f.Name)
			}
			inner := f.Type.Fields[0]
			return d.typeVariant(f.Name+"."+inner.Name, inner)
		}
		used, err := ValidateFields(k, f.Type.Fields)
		if err != nil {
			return nil, err
		}
		return &StructLikeVariant{Path: f.Name, Used: used}, nil
	default:
		return nil, Errorf(CodeShapeMismatch, f.Pos,
			"variant %s must be a named type or an anonymous struct, got %s", f.Name, f.Type.Expr)
	}
}

func (d *MultiDerive) typeVariant(path string, f parser.FieldInfo) (DeriveVariant, error) {
	delegate := Delegate{Type: f.Type.Named, Pointer: f.Type.Pointer, Import: f.Type.Import}
	if delegate.Local() && delegate.BaseName() == d.decl.Name {
		return nil, Errorf(CodeShapeMismatch, f.Pos, "variant %s cannot delegate to %s itself", f.Name, d.decl.Name)
	}
	return &TypeVariant{Path: path, Delegate: delegate}, nil
}

func (d *MultiDerive) Derive() (*DerivePlan, error) {
	support, err := d.Validate()
	if err != nil {
		return nil, err
	}

	plan := &DerivePlan{
		TypeName:   d.decl.Name,
		TypeParams: d.decl.TypeParams,
		Pos:        d.decl.Pos,
		Mode:       ModeMulti,
	}
	for _, k := range shape.Kinds() {
		arm := Arm{Kind: k, Strategy: ArmUnsupported}
		switch v := support[k].(type) {
		case *TypeVariant:
			delegate := v.Delegate
			arm.Strategy = ArmDelegate
			arm.Path = v.Path
			arm.Delegate = &delegate
		case *StructLikeVariant:
			arm.Strategy = ArmConstruct
			arm.Path = v.Path
			arm.Copies = Construct(v.Used)
		}
		plan.Arms = append(plan.Arms, arm)
	}
	return plan, nil
}
