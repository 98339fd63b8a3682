package parser

import "go/token"

// PackageInfo holds the declarations selected for generation in one package.
type PackageInfo struct {
	Name    string
	PkgPath string
	Dir     string
	Decls   []*DeclInfo
}

// DeclInfo is the shape description of one Go type declaration.
type DeclInfo struct {
	Name       string
	Pos        token.Position
	TypeParams []string
	Shape      DeclShape
	Alias      bool
	Fields     []FieldInfo
	Markers    []Marker
}

// DeclShape is the coarse form of a type declaration.
type DeclShape int

const (
	ShapeStruct DeclShape = iota
	ShapeOther
)

func (s DeclShape) String() string {
	if s == ShapeStruct {
		return "struct"
	}
	return "non-struct"
}

// Marker is one "//shape:" directive attached to a declaration. Text is what
// follows the prefix; Pos is the position of the first character of Text.
type Marker struct {
	Text string
	Pos  token.Position
}

// FieldInfo is one struct field. Embedded fields carry the embedded type name
// as Name.
type FieldInfo struct {
	Name     string
	Embedded bool
	Pos      token.Position
	Type     TypeRef
}

// TypeRef describes a field type as written.
type TypeRef struct {
	Kind    TypeRefKind
	Expr    string
	Pointer bool
	// Named is the type expression without the pointer, for TypeNamed.
	Named  string
	Import *ImportRef
	// Fields is set for TypeAnonStruct.
	Fields []FieldInfo
}

// TypeRefKind classifies a field type.
type TypeRefKind int

const (
	TypeNamed TypeRefKind = iota
	TypeAnonStruct
	TypeOther
)

// ImportRef is the import a qualified type name depends on.
type ImportRef struct {
	Name string
	Path string
}
