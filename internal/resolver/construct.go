package resolver

import "fmt"

// FieldCopy assigns Expr to the output field Field.
type FieldCopy struct {
	Field string
	Expr  string
}

// Construct returns one copy per used field, in used order. Expressions read
// from "decl" (the *shape.Decl) and "data" (its concrete payload).
func Construct(used UsedFields) []FieldCopy {
	copies := make([]FieldCopy, 0, used.Len())
	for _, name := range used.names {
		copies = append(copies, FieldCopy{Field: name, Expr: fieldExpr(name)})
	}
	return copies
}

func fieldExpr(name string) string {
	switch name {
	case FieldAttrs:
		return "decl.Attrs"
	case FieldVis:
		return "decl.Vis"
	case FieldIdent:
		return "decl.Ident"
	case FieldGenerics:
		return "decl.Generics"
	case FieldStructToken:
		return "data.StructToken"
	case FieldEnumToken:
		return "data.EnumToken"
	case FieldUnionToken:
		return "data.UnionToken"
	case FieldFields:
		return "data.Fields"
	case FieldVariants:
		return "slices.Clone(data.Variants)"
	default:
		panic(fmt.Sprintf("resolver: no construction for field %q", name))
	}
}
