package edge

import "github.com/viant/ifds/lattice"

// identityFunction is the neutral element of Compose: λx. x.
type identityFunction[L any] struct {
	Base
	lat lattice.Lattice[L]
}

// Identity returns the identity edge function over L. lat is retained only
// to supply a generic JoinFunction fallback when JoinWith has no sharper
// reduction available for the given operand.
func Identity[L any](lat lattice.Lattice[L]) Function[L] { return identityFunction[L]{lat: lat} }

func (identityFunction[L]) Apply(x L) L { return x }

func (identityFunction[L]) Kind() Kind { return KindIdentity }

// Compose implements the two-sided identity law: id.Compose(g) == g for any g.
func (identityFunction[L]) Compose(other Function[L]) Function[L] { return other }

func (f identityFunction[L]) JoinWith(other Function[L]) Function[L] {
	switch other.Kind() {
	case KindIdentity:
		return f
	case KindAllTop:
		return f
	case KindAllBottom:
		return other
	default:
		return newJoinFunction(f, other, withLattice(f.lat))
	}
}

func (identityFunction[L]) Equal(other Function[L]) bool { return other.Kind() == KindIdentity }

func (identityFunction[L]) String() string { return "Identity" }
