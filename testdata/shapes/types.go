package shapes

import (
	ext "github.com/seitarof/gen-shape/testdata/shapes/external"

	"github.com/seitarof/gen-shape/shape"
)

// Header keeps the name and fields of a struct declaration.
//
//shape:Struct
type Header struct {
	Ident  shape.Ident
	Fields shape.Fields
}

// Named accepts structs and unions.
//
//shape:kind(Struct | Union)
type Named[T any] struct {
	Attrs  []shape.Attribute
	Ident  shape.Ident
	Fields shape.Fields
}

//shape:oneof
type Any struct {
	Struct *Header
	Enum   ext.Enum
}

type (
	// Plain carries no marker.
	Plain struct{ A int }

	//shape:Union
	Grouped struct {
		UnionToken shape.Token
		shape.Ident
	}
)

//shape:oneof
type Inline struct {
	Struct struct {
		Ident       shape.Ident
		StructToken shape.Token
	}
	Union struct{ Header }
}
