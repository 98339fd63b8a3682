package resolver

import (
	"fmt"

	"github.com/seitarof/gen-shape/internal/parser"
)

// Resolver turns a declaration and its front-door target into a DerivePlan.
type Resolver interface {
	Resolve(decl *parser.DeclInfo, target Target) (*DerivePlan, error)
}

type resolverImpl struct{}

// New builds the default resolver.
func New() Resolver {
	return &resolverImpl{}
}

func (r *resolverImpl) Resolve(decl *parser.DeclInfo, target Target) (*DerivePlan, error) {
	switch target.Mode {
	case ModeSingle:
		if target.Kinds.Len() == 0 {
			return nil, fmt.Errorf("resolver: single target for %s has no kinds", decl.Name)
		}
		return NewSingleDerive(target.Kinds, decl).Derive()
	case ModeMulti:
		return NewMultiDerive(decl).Derive()
	default:
		return nil, fmt.Errorf("resolver: unknown mode %d", int(target.Mode))
	}
}
