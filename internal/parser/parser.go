package parser

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// MarkerPrefix starts every gen-shape directive comment.
const MarkerPrefix = "//shape:"

// Parser extracts declaration shapes from Go packages.
type Parser interface {
	Parse(pkgPath string, typeName string) (*DeclInfo, error)
	ParsePackage(pkgPath string, typeNames []string) (*PackageInfo, error)
}

type parserImpl struct{}

// New returns default parser.
func New() Parser {
	return &parserImpl{}
}

func (p *parserImpl) Parse(pkgPath string, typeName string) (*DeclInfo, error) {
	info, err := p.ParsePackage(pkgPath, []string{typeName})
	if err != nil {
		return nil, err
	}
	return info.Decls[0], nil
}

// ParsePackage returns the named declarations of pkgPath in source order, or
// every declaration carrying a marker when typeNames is empty.
func (p *parserImpl) ParsePackage(pkgPath string, typeNames []string) (*PackageInfo, error) {
	pkg, err := p.loadPackage(pkgPath)
	if err != nil {
		return nil, err
	}

	info := &PackageInfo{
		Name:    pkg.Name,
		PkgPath: pkg.PkgPath,
	}
	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	found := map[string]bool{}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				markers := collectMarkers(pkg.Fset, doc)
				if !selected(ts.Name.Name, markers, typeNames) {
					continue
				}
				found[ts.Name.Name] = true
				info.Decls = append(info.Decls, buildDeclInfo(pkg.Fset, file, ts, markers))
			}
		}
	}

	for _, name := range typeNames {
		if !found[name] {
			return nil, fmt.Errorf("type %q not found in package %q", name, pkgPath)
		}
	}
	return info, nil
}

func (p *parserImpl) loadPackage(pkgPath string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedSyntax,
	}

	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("load package %q: %w", pkgPath, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has errors", pkgPath)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("package %q not found", pkgPath)
	}
	if len(pkgs) > 1 {
		return nil, fmt.Errorf("pattern %q matches %d packages, want 1", pkgPath, len(pkgs))
	}
	return pkgs[0], nil
}

func selected(name string, markers []Marker, typeNames []string) bool {
	if len(typeNames) == 0 {
		return len(markers) > 0
	}
	return slices.Contains(typeNames, name)
}

func collectMarkers(fset *token.FileSet, doc *ast.CommentGroup) []Marker {
	if doc == nil {
		return nil
	}
	var markers []Marker
	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, MarkerPrefix)
		if !ok {
			continue
		}
		pos := fset.Position(c.Slash)
		pos.Column += len(MarkerPrefix)
		pos.Offset += len(MarkerPrefix)
		markers = append(markers, Marker{Text: text, Pos: pos})
	}
	return markers
}

func buildDeclInfo(fset *token.FileSet, file *ast.File, ts *ast.TypeSpec, markers []Marker) *DeclInfo {
	info := &DeclInfo{
		Name:    ts.Name.Name,
		Pos:     fset.Position(ts.Name.Pos()),
		Markers: markers,
		Shape:   ShapeOther,
		Alias:   ts.Assign.IsValid(),
	}
	if ts.TypeParams != nil {
		for _, field := range ts.TypeParams.List {
			for _, name := range field.Names {
				info.TypeParams = append(info.TypeParams, name.Name)
			}
		}
	}
	if st, ok := ts.Type.(*ast.StructType); ok && !info.Alias {
		info.Shape = ShapeStruct
		info.Fields = structFields(fset, file, st)
	}
	return info
}

func structFields(fset *token.FileSet, file *ast.File, st *ast.StructType) []FieldInfo {
	fields := []FieldInfo{}
	for _, f := range st.Fields.List {
		ref := analyzeType(fset, file, f.Type)
		if len(f.Names) == 0 {
			fields = append(fields, FieldInfo{
				Name:     embeddedName(f.Type),
				Embedded: true,
				Pos:      fset.Position(f.Type.Pos()),
				Type:     ref,
			})
			continue
		}
		for _, name := range f.Names {
			fields = append(fields, FieldInfo{
				Name: name.Name,
				Pos:  fset.Position(name.Pos()),
				Type: ref,
			})
		}
	}
	return fields
}

func analyzeType(fset *token.FileSet, file *ast.File, expr ast.Expr) TypeRef {
	ref := TypeRef{Expr: exprString(fset, expr), Kind: TypeOther}

	if star, ok := expr.(*ast.StarExpr); ok {
		ref.Pointer = true
		expr = star.X
	}

	switch v := expr.(type) {
	case *ast.StructType:
		ref.Kind = TypeAnonStruct
		ref.Fields = structFields(fset, file, v)
	case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
		ref.Kind = TypeNamed
		ref.Named = exprString(fset, expr)
		ref.Import = lookupImport(file, qualifier(expr))
	}
	return ref
}

func embeddedName(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.StarExpr:
		return embeddedName(v.X)
	case *ast.Ident:
		return v.Name
	case *ast.SelectorExpr:
		return v.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(v.X)
	case *ast.IndexListExpr:
		return embeddedName(v.X)
	default:
		return ""
	}
}

func qualifier(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.SelectorExpr:
		if id, ok := v.X.(*ast.Ident); ok {
			return id.Name
		}
	case *ast.IndexExpr:
		return qualifier(v.X)
	case *ast.IndexListExpr:
		return qualifier(v.X)
	}
	return ""
}

// lookupImport finds the import of file that provides qualifier name.
func lookupImport(file *ast.File, name string) *ImportRef {
	if name == "" {
		return nil
	}
	for _, imp := range file.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		if imp.Name != nil {
			if imp.Name.Name == name {
				return &ImportRef{Name: name, Path: importPath}
			}
			continue
		}
		if assumedPackageName(importPath) == name {
			return &ImportRef{Path: importPath}
		}
	}
	return nil
}

// assumedPackageName guesses the package name of an import path the way
// goimports does when the package is not loaded.
func assumedPackageName(importPath string) string {
	base := path.Base(importPath)
	if strings.HasPrefix(base, "v") {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			dir := path.Dir(importPath)
			if dir != "." {
				base = path.Base(dir)
			}
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexAny(base, ".-"); i >= 0 {
		base = base[:i]
	}
	return base
}

func exprString(fset *token.FileSet, expr ast.Expr) string {
	var b strings.Builder
	if err := format.Node(&b, fset, expr); err != nil {
		panic(err) // go/printer supports every ast.Expr
	}
	return b.String()
}
