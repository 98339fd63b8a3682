// Package shape is the runtime side of gen-shape. It defines the declaration
// tree that generated FromDecl methods read, the errors they return, and the
// raw input forms that can be turned into a declaration tree.
package shape

import "fmt"

// Span locates a token in the source the declaration was read from.
type Span struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func (s Span) String() string {
	if s.File == "" {
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// Token is a keyword token such as "struct" or "enum".
type Token struct {
	Span Span `json:"span" yaml:"span"`
}

// Ident is a named identifier.
type Ident struct {
	Name string `json:"name" yaml:"name"`
	Span Span   `json:"span" yaml:"span"`
}

// Attribute is one attribute attached to a declaration, field or variant.
type Attribute struct {
	Path string `json:"path" yaml:"path"`
	Args string `json:"args,omitempty" yaml:"args,omitempty"`
	Span Span   `json:"span" yaml:"span"`
}

// Visibility of a declaration or field.
type Visibility struct {
	Public bool   `json:"public,omitempty" yaml:"public,omitempty"`
	Scope  string `json:"scope,omitempty" yaml:"scope,omitempty"`
	Span   Span   `json:"span" yaml:"span"`
}

// GenericParam is one type, lifetime or const parameter.
type GenericParam struct {
	Name       string `json:"name" yaml:"name"`
	Constraint string `json:"constraint,omitempty" yaml:"constraint,omitempty"`
	Span       Span   `json:"span" yaml:"span"`
}

// Generics is the generic parameter list of a declaration.
type Generics struct {
	Params []GenericParam `json:"params,omitempty" yaml:"params,omitempty"`
	Where  []string       `json:"where,omitempty" yaml:"where,omitempty"`
}

// FieldsStyle tells how a field list was written.
type FieldsStyle string

const (
	FieldsNamed   FieldsStyle = "named"
	FieldsUnnamed FieldsStyle = "unnamed"
	FieldsUnit    FieldsStyle = "unit"
)

// Field is one field of a struct, union or variant. Ident is nil for
// positional fields.
type Field struct {
	Attrs []Attribute `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Vis   Visibility  `json:"vis" yaml:"vis"`
	Ident *Ident      `json:"ident,omitempty" yaml:"ident,omitempty"`
	Type  string      `json:"type" yaml:"type"`
	Span  Span        `json:"span" yaml:"span"`
}

// Fields is a field list together with its style.
type Fields struct {
	Style FieldsStyle `json:"style" yaml:"style"`
	List  []Field     `json:"list,omitempty" yaml:"list,omitempty"`
}

// Variant is one variant of an enum.
type Variant struct {
	Attrs        []Attribute `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Ident        Ident       `json:"ident" yaml:"ident"`
	Fields       Fields      `json:"fields" yaml:"fields"`
	Discriminant string      `json:"discriminant,omitempty" yaml:"discriminant,omitempty"`
}

// Data is the tag-specific payload of a declaration. It is implemented by
// *DataStruct, *DataEnum and *DataUnion only.
type Data interface {
	Kind() Kind
	// KeywordSpan is the span of the tag keyword token.
	KeywordSpan() Span
	isData()
}

type DataStruct struct {
	StructToken Token
	Fields      Fields
}

type DataEnum struct {
	EnumToken Token
	Variants  []Variant
}

type DataUnion struct {
	UnionToken Token
	Fields     Fields
}

func (*DataStruct) Kind() Kind { return Struct }
func (*DataEnum) Kind() Kind   { return Enum }
func (*DataUnion) Kind() Kind  { return Union }

func (d *DataStruct) KeywordSpan() Span { return d.StructToken.Span }
func (d *DataEnum) KeywordSpan() Span   { return d.EnumToken.Span }
func (d *DataUnion) KeywordSpan() Span  { return d.UnionToken.Span }

func (*DataStruct) isData() {}
func (*DataEnum) isData()   {}
func (*DataUnion) isData()  {}

// Decl is the shape description of one type declaration.
type Decl struct {
	Attrs    []Attribute
	Vis      Visibility
	Ident    Ident
	Generics Generics
	Data     Data
}

// ToDecl returns d itself, so a *Decl can be used wherever an Input is expected.
func (d *Decl) ToDecl() (*Decl, error) {
	if d == nil {
		return nil, &InputError{Err: errNilDecl}
	}
	return d, nil
}
