package generator

import (
	"bytes"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seitarof/gen-shape/internal/parser"
	"github.com/seitarof/gen-shape/internal/resolver"
	"github.com/seitarof/gen-shape/shape"
)

type testConfig struct {
	filename string
}

func (c testConfig) OutputFilename() string { return c.filename }

type memoryWriter struct {
	files map[string][]byte
}

func (w *memoryWriter) Write(filename string, data []byte) error {
	if w.files == nil {
		w.files = map[string][]byte{}
	}
	w.files[filename] = bytes.Clone(data)
	return nil
}

var testPkg = &parser.PackageInfo{Name: "shapes", PkgPath: "example.com/shapes"}

func headerPlan() *resolver.DerivePlan {
	return &resolver.DerivePlan{
		TypeName: "Header",
		Mode:     resolver.ModeSingle,
		Fallback: true,
		Arms: []resolver.Arm{{
			Kind:     shape.Struct,
			Strategy: resolver.ArmConstruct,
			Copies: []resolver.FieldCopy{
				{Field: resolver.FieldIdent, Expr: "decl.Ident"},
				{Field: resolver.FieldFields, Expr: "data.Fields"},
			},
		}},
	}
}

func anyPlan() *resolver.DerivePlan {
	return &resolver.DerivePlan{
		TypeName: "Any",
		Mode:     resolver.ModeMulti,
		Arms: []resolver.Arm{
			{
				Kind:     shape.Struct,
				Strategy: resolver.ArmDelegate,
				Path:     "Struct",
				Delegate: &resolver.Delegate{Type: "Header", Pointer: true},
			},
			{
				Kind:     shape.Enum,
				Strategy: resolver.ArmDelegate,
				Path:     "Enum",
				Delegate: &resolver.Delegate{Type: "ext.Enum", Import: &parser.ImportRef{Name: "ext", Path: "example.com/shapes/external"}},
			},
			{
				Kind:     shape.Union,
				Strategy: resolver.ArmUnsupported,
			},
		},
	}
}

func generate(t *testing.T, plans ...*resolver.DerivePlan) string {
	t.Helper()
	w := &memoryWriter{}
	g := New(passthroughFormatter{}, w)
	if err := g.Generate(testConfig{filename: "shape_gen.go"}, testPkg, plans); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return string(w.files["shape_gen.go"])
}

func TestGenerate_SingleKindRoutine(t *testing.T) {
	got := generate(t, headerPlan())

	for _, want := range []string{
		"// Code generated by gen-shape. DO NOT EDIT.",
		"package shapes",
		`"github.com/seitarof/gen-shape/shape"`,
		"// FromDecl fills x from a Struct declaration.",
		"func (x *Header) FromDecl(decl *shape.Decl) error {",
		"\t*x = Header{}\n\tswitch data := decl.Data.(type) {\n\tcase *shape.DataStruct:\n",
		"\t\tx.Ident = decl.Ident\n\t\tx.Fields = data.Fields\n\t\treturn nil\n",
		"\tdefault:\n\t\treturn shape.Unsupported(data)\n\t}\n}\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated code missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, `"errors"`) || strings.Contains(got, `"slices"`) {
		t.Fatalf("unexpected import:\n%s", got)
	}
}

func TestGenerate_OneofRoutine(t *testing.T) {
	got := generate(t, anyPlan())

	for _, want := range []string{
		`ext "example.com/shapes/external"`,
		"// FromDecl fills x from a Struct or Enum declaration.",
		"\tcase *shape.DataStruct:\n\t\tvar v Header\n\t\tif err := v.FromDecl(decl); err != nil {\n\t\t\treturn err\n\t\t}\n\t\tx.Struct = &v\n\t\treturn nil\n",
		"\t\tvar v ext.Enum\n",
		"\t\tx.Enum = v\n",
		"\tcase *shape.DataUnion:\n\t\treturn &shape.UnsupportedError{Kind: shape.Union, Span: data.UnionToken.Span}\n",
		"\tdefault:\n\t\treturn shape.Unsupported(data)\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated code missing %q:\n%s", want, got)
		}
	}
}

func TestGenerate_StructLikeVariantClonesVariants(t *testing.T) {
	plan := &resolver.DerivePlan{
		TypeName:   "Named",
		TypeParams: []string{"T"},
		Mode:       resolver.ModeMulti,
		Arms: []resolver.Arm{
			{Kind: shape.Struct, Strategy: resolver.ArmUnsupported},
			{
				Kind:     shape.Enum,
				Strategy: resolver.ArmConstruct,
				Path:     "Enum",
				Copies: resolver.Construct(resolver.NewUsedFields(
					resolver.FieldEnumToken, resolver.FieldVariants,
				)),
			},
			{Kind: shape.Union, Strategy: resolver.ArmUnsupported},
		},
	}

	got := generate(t, plan)
	for _, want := range []string{
		`"slices"`,
		"func (x *Named[T]) FromDecl(decl *shape.Decl) error {",
		"\t*x = Named[T]{}\n",
		"\t\tx.Enum.EnumToken = data.EnumToken\n\t\tx.Enum.Variants = slices.Clone(data.Variants)\n",
		"Span: data.StructToken.Span}",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated code missing %q:\n%s", want, got)
		}
	}
}

func TestGenerate_FailedPlanStub(t *testing.T) {
	err := resolver.Errorf(resolver.CodeUnsupportedField,
		token.Position{Filename: "/src/shapes/types.go", Line: 12, Column: 2},
		"unsupported field `bogus` for kind Struct")
	failed := resolver.FailedPlan(&parser.DeclInfo{Name: "Bogus"}, err)

	got := generate(t, headerPlan(), failed)
	for _, want := range []string{
		`"errors"`,
		"func (x *Header) FromDecl(decl *shape.Decl) error {",
		"// FromDecl always fails: Bogus did not pass gen-shape validation.",
		"func (x *Bogus) FromDecl(decl *shape.Decl) error {\n\treturn errors.New(\"types.go:12:2: unsupported field `bogus` for kind Struct\")\n}\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated code missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "/src/shapes") {
		t.Fatalf("stub message should not carry the directory:\n%s", got)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := generate(t, headerPlan(), anyPlan())
	for i := 0; i < 10; i++ {
		if got := generate(t, headerPlan(), anyPlan()); got != first {
			t.Fatalf("output differs between runs:\n%s\n---\n%s", first, got)
		}
	}
	if strings.Index(first, "func (x *Header)") > strings.Index(first, "func (x *Any)") {
		t.Fatalf("routines should follow plan order:\n%s", first)
	}
}

func TestGenerate_NoPlans(t *testing.T) {
	g := New(passthroughFormatter{}, &memoryWriter{})
	if err := g.Generate(testConfig{filename: "x.go"}, testPkg, []*resolver.DerivePlan{nil}); err == nil {
		t.Fatal("Generate() should fail without plans")
	}
}

func TestGenerate_WritesFormattedFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "shape_gen.go")

	g := New(NewGoimportsFormatter(), NewFileWriter())
	if err := g.Generate(testConfig{filename: filename}, testPkg, []*resolver.DerivePlan{headerPlan(), anyPlan()}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(b)
	if !strings.Contains(got, "func (x *Any) FromDecl(decl *shape.Decl) error") {
		t.Fatalf("generated routine not found: %s", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("formatted output should not contain double blank lines: %s", got)
	}
}
