package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/seitarof/gen-shape/internal/parser"
	"github.com/seitarof/gen-shape/internal/resolver"
	"github.com/seitarof/gen-shape/shape"
)

// ShapeImportPath is the import path of the runtime package generated code uses.
const ShapeImportPath = "github.com/seitarof/gen-shape/shape"

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Generator generates FromDecl routines from derive plans.
type Generator interface {
	Generate(cfg Config, pkg *parser.PackageInfo, plans []*resolver.DerivePlan) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type templateData struct {
	Package  string
	Imports  []string
	Routines []routineTemplateData
}

type routineTemplateData struct {
	TypeName string
	Receiver string
	Accepts  string
	Arms     []resolver.Arm
	Failed   bool
	Message  string
}

// New creates a code generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"dataType":  dataType,
		"renderArm": renderArm,
	}).ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, pkg *parser.PackageInfo, plans []*resolver.DerivePlan) error {
	data := buildTemplateData(pkg, plans)
	if len(data.Routines) == 0 {
		return fmt.Errorf("no derive plans")
	}

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "derive.go.tmpl", data); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	formatted, err := g.formatter.Format(cfg.OutputFilename(), buf.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := g.writer.Write(cfg.OutputFilename(), formatted); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

func buildTemplateData(pkg *parser.PackageInfo, plans []*resolver.DerivePlan) templateData {
	importsSet := map[string]string{ShapeImportPath: ""}
	routines := make([]routineTemplateData, 0, len(plans))

	for _, p := range plans {
		if p == nil {
			continue
		}
		if p.Err != nil {
			importsSet["errors"] = ""
			routines = append(routines, routineTemplateData{
				TypeName: p.TypeName,
				Receiver: p.Receiver(),
				Failed:   true,
				Message:  diagnostic(p.Err),
			})
			continue
		}
		for _, imp := range p.Imports() {
			if imp.Path == pkg.PkgPath {
				continue
			}
			importsSet[imp.Path] = imp.Name
		}
		routines = append(routines, routineTemplateData{
			TypeName: p.TypeName,
			Receiver: p.Receiver(),
			Accepts:  accepts(p),
			Arms:     p.Arms,
		})
	}

	paths := make([]string, 0, len(importsSet))
	for path := range importsSet {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	importsList := make([]string, 0, len(paths))
	for _, path := range paths {
		spec := strconv.Quote(path)
		if name := importsSet[path]; name != "" {
			spec = name + " " + spec
		}
		importsList = append(importsList, spec)
	}

	return templateData{
		Package:  pkg.Name,
		Imports:  importsList,
		Routines: routines,
	}
}

// diagnostic renders err with the file base name so the generated output
// does not depend on where the package is checked out.
func diagnostic(err *resolver.Error) string {
	return fmt.Sprintf("%s:%d:%d: %s", filepath.Base(err.Pos.Filename), err.Pos.Line, err.Pos.Column, err.Msg)
}

func accepts(p *resolver.DerivePlan) string {
	var kinds []string
	for _, arm := range p.Arms {
		if arm.Strategy != resolver.ArmUnsupported {
			kinds = append(kinds, arm.Kind.String())
		}
	}
	switch len(kinds) {
	case 0:
		return "no"
	case 1:
		return article(kinds[0]) + " " + kinds[0]
	default:
		return article(kinds[0]) + " " + strings.Join(kinds[:len(kinds)-1], ", ") + " or " + kinds[len(kinds)-1]
	}
}

func article(word string) string {
	if strings.ContainsRune("AEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}

func dataType(k shape.Kind) string {
	return "Data" + k.String()
}

func renderArm(arm resolver.Arm) string {
	var b strings.Builder
	switch arm.Strategy {
	case resolver.ArmConstruct:
		for _, c := range arm.Copies {
			fmt.Fprintf(&b, "\t\t%s.%s = %s\n", arm.Target(), c.Field, c.Expr)
		}
		b.WriteString("\t\treturn nil")
	case resolver.ArmDelegate:
		value := "v"
		if arm.Delegate.Pointer {
			value = "&v"
		}
		fmt.Fprintf(&b, "\t\tvar v %s\n", arm.Delegate.Type)
		b.WriteString("\t\tif err := v.FromDecl(decl); err != nil {\n")
		b.WriteString("\t\t\treturn err\n")
		b.WriteString("\t\t}\n")
		fmt.Fprintf(&b, "\t\t%s = %s\n", arm.Target(), value)
		b.WriteString("\t\treturn nil")
	case resolver.ArmUnsupported:
		fmt.Fprintf(&b, "\t\treturn &shape.UnsupportedError{Kind: shape.%s, Span: data.%s.Span}", arm.Kind, arm.Kind.TokenField())
	}
	return b.String()
}
