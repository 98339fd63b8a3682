package resolver

// DerivedSet holds the names of the types derived in one run.
type DerivedSet map[string]struct{}

// NewDerivedSet collects the type names of plans that generate a routine.
func NewDerivedSet(plans []*DerivePlan) DerivedSet {
	set := make(DerivedSet, len(plans))
	for _, p := range plans {
		if p == nil || p.Err != nil {
			continue
		}
		set[p.TypeName] = struct{}{}
	}
	return set
}

// MissingDelegate is a same-package delegate type that no plan derives.
type MissingDelegate struct {
	Plan     *DerivePlan
	Delegate *Delegate
}

// MissingDelegates reports local delegate types that are not derived in this
// run and so may not implement FromDecl.
func MissingDelegates(plans []*DerivePlan) []MissingDelegate {
	set := NewDerivedSet(plans)
	var missing []MissingDelegate
	for _, p := range plans {
		if p == nil {
			continue
		}
		for _, arm := range p.Arms {
			if arm.Delegate == nil || !arm.Delegate.Local() {
				continue
			}
			if _, ok := set[arm.Delegate.BaseName()]; ok {
				continue
			}
			missing = append(missing, MissingDelegate{Plan: p, Delegate: arm.Delegate})
		}
	}
	return missing
}
