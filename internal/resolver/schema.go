package resolver

import (
	"fmt"

	"github.com/seitarof/gen-shape/shape"
)

// Output field names understood by the generator.
const (
	FieldAttrs       = "Attrs"
	FieldVis         = "Vis"
	FieldIdent       = "Ident"
	FieldGenerics    = "Generics"
	FieldStructToken = "StructToken"
	FieldEnumToken   = "EnumToken"
	FieldUnionToken  = "UnionToken"
	FieldFields      = "Fields"
	FieldVariants    = "Variants"
)

// LegalFields returns the six field names a target of kind k may declare.
func LegalFields(k shape.Kind) []string {
	return []string{FieldAttrs, FieldVis, k.TokenField(), FieldIdent, FieldGenerics, PayloadField(k)}
}

// PayloadField returns the name of the field holding k's field or variant list.
// Enum stores variants; Struct and Union store fields.
func PayloadField(k shape.Kind) string {
	switch k {
	case shape.Struct, shape.Union:
		return FieldFields
	case shape.Enum:
		return FieldVariants
	default:
		panic(fmt.Sprintf("resolver: invalid kind %v", k))
	}
}

func legalSet(k shape.Kind) map[string]bool {
	legal := LegalFields(k)
	set := make(map[string]bool, len(legal))
	for _, name := range legal {
		set[name] = true
	}
	return set
}
