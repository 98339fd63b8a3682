package diag

import (
	"bytes"
	"go/token"
	"strings"
	"testing"

	"github.com/seitarof/gen-shape/internal/resolver"
)

func TestPrinter_Print_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.Print(resolver.Errorf(resolver.CodeUnknownVariantName,
		token.Position{Filename: "types.go", Line: 18, Column: 2},
		"oneof variants must be named `Struct`, `Enum` or `Union`"))

	want := "types.go:18:2: error[unknown-variant]: oneof variants must be named `Struct`, `Enum` or `Union`\n"
	if buf.String() != want {
		t.Fatalf("Print() = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_Print_Colored(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Print(resolver.Errorf(resolver.CodeEmptyEnum, token.Position{Filename: "a.go", Line: 1, Column: 6}, "empty"))

	got := buf.String()
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", got)
	}
	if !strings.Contains(got, "empty-oneof") || !strings.HasSuffix(got, ": empty\n") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPrinter_PrintAll(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	n := p.PrintAll([]*resolver.Error{
		resolver.Errorf(resolver.CodeParse, token.Position{Filename: "a.go", Line: 1, Column: 9}, "first"),
		resolver.Errorf(resolver.CodeShapeMismatch, token.Position{Filename: "a.go", Line: 5, Column: 6}, "second"),
	})
	if n != 2 {
		t.Fatalf("PrintAll() = %d, want 2", n)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "first") || !strings.Contains(lines[1], "second") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
