package resolver

import (
	"go/token"

	"github.com/seitarof/gen-shape/internal/parser"
)

func pos(line, col int) token.Position {
	return token.Position{Filename: "types.go", Line: line, Column: col}
}

func named(name string, line int) parser.FieldInfo {
	return parser.FieldInfo{Name: name, Pos: pos(line, 2)}
}

func embedded(name string, line int) parser.FieldInfo {
	return parser.FieldInfo{
		Name:     name,
		Embedded: true,
		Pos:      pos(line, 2),
		Type:     parser.TypeRef{Kind: parser.TypeNamed, Expr: name, Named: name},
	}
}

func structDecl(name string, fields ...parser.FieldInfo) *parser.DeclInfo {
	return &parser.DeclInfo{Name: name, Pos: pos(1, 6), Shape: parser.ShapeStruct, Fields: fields}
}

func namesOf(fields []parser.FieldInfo) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Name)
	}
	return out
}

func assertCode(t interface {
	Helper()
	Fatalf(string, ...any)
}, err error, want Code) *Error {
	t.Helper()
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("error = %v (%T), want *Error with code %v", err, err, want)
	}
	if e.Code != want {
		t.Fatalf("code = %v, want %v (%v)", e.Code, want, e)
	}
	return e
}
