package resolver

import (
	"go/token"
	"strings"

	"github.com/seitarof/gen-shape/internal/parser"
	"github.com/seitarof/gen-shape/shape"
)

// Mode selects the derivation path.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMulti
)

func (m Mode) String() string {
	if m == ModeMulti {
		return "oneof"
	}
	return "single"
}

// Target is the resolved front-door decision for one declaration.
type Target struct {
	Mode  Mode
	Kinds ComboKind
}

// SingleTarget accepts the kinds of c.
func SingleTarget(c ComboKind) Target {
	return Target{Mode: ModeSingle, Kinds: c}
}

// MultiTarget treats the declaration as a oneof of kinds.
func MultiTarget() Target {
	return Target{Mode: ModeMulti}
}

// ArmStrategy is how one kind arm of the generated switch builds its value.
type ArmStrategy int

const (
	ArmConstruct ArmStrategy = iota
	ArmDelegate
	ArmUnsupported
)

// Arm is one case of the generated type switch.
type Arm struct {
	Kind     shape.Kind
	Strategy ArmStrategy
	// Path is the field path under the receiver the arm writes to; empty for
	// the receiver itself.
	Path     string
	Copies   []FieldCopy
	Delegate *Delegate
}

// Target returns the receiver selector the arm writes to.
func (a Arm) Target() string {
	if a.Path == "" {
		return "x"
	}
	return "x." + a.Path
}

// Delegate is a type whose own FromDecl builds a variant.
type Delegate struct {
	Type    string
	Pointer bool
	Import  *parser.ImportRef
}

// Local reports whether the delegate type is declared in the same package.
func (d *Delegate) Local() bool {
	return d.Import == nil
}

// BaseName returns the type name without package qualifier or type arguments.
func (d *Delegate) BaseName() string {
	name := d.Type
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// DerivePlan describes the FromDecl routine of one declaration. Err is set
// when validation failed; the generator then emits a stub returning it.
type DerivePlan struct {
	TypeName   string
	TypeParams []string
	Pos        token.Position
	Mode       Mode
	Arms       []Arm
	Fallback   bool
	Err        *Error
}

// Receiver returns the receiver type, e.g. "Named[T]".
func (p *DerivePlan) Receiver() string {
	if len(p.TypeParams) == 0 {
		return p.TypeName
	}
	return p.TypeName + "[" + strings.Join(p.TypeParams, ", ") + "]"
}

// Imports returns the import paths the routine depends on besides shape.
func (p *DerivePlan) Imports() []parser.ImportRef {
	var out []parser.ImportRef
	usesSlices := false
	for _, arm := range p.Arms {
		if arm.Delegate != nil && arm.Delegate.Import != nil {
			out = append(out, *arm.Delegate.Import)
		}
		for _, c := range arm.Copies {
			if c.Field == FieldVariants {
				usesSlices = true
			}
		}
	}
	if usesSlices {
		out = append(out, parser.ImportRef{Path: "slices"})
	}
	return out
}

// FailedPlan returns the stub plan for a declaration that did not validate.
// Aliases cannot carry methods, so they get no stub.
func FailedPlan(decl *parser.DeclInfo, err *Error) *DerivePlan {
	if decl.Alias {
		return nil
	}
	return &DerivePlan{
		TypeName:   decl.Name,
		TypeParams: decl.TypeParams,
		Pos:        decl.Pos,
		Err:        err,
	}
}
