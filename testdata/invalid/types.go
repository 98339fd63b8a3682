package invalid

import "github.com/seitarof/gen-shape/shape"

//shape:Struct
type Good struct {
	Ident shape.Ident
}

//shape:Struct
type Bogus struct {
	Ident shape.Ident
	bogus int
}

//shape:oneof
type Fruit struct {
	Struct *Good
	Banana *Good
}

//shape:Struct
//shape:Enum
type Ambiguous struct {
	Ident shape.Ident
}
