package external

import "github.com/seitarof/gen-shape/shape"

//shape:Enum
type Enum struct {
	Ident    shape.Ident
	Variants []shape.Variant
}
