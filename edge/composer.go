package edge

import "github.com/viant/ifds/lattice"

// composerFunction is the generic composition of two edge functions,
// equivalent to λx. g.Apply(f.Apply(x)), kept lazy so long chains don't
// force intermediate lattice values.
type composerFunction[L any] struct {
	Base
	lat  lattice.Lattice[L]
	f, g Function[L]
}

// Composer builds the composition of f then g: λx. g.Apply(f.Apply(x)).
// Subtypes of the algebra (Identity, AllTop, AllBottom) reduce this away
// in their own Compose methods; Composer is the fallback representation
// when no sharper reduction applies. lat is retained only for a generic
// JoinFunction fallback.
func Composer[L any](lat lattice.Lattice[L], f, g Function[L]) Function[L] {
	return composerFunction[L]{lat: lat, f: f, g: g}
}

func newComposer[L any](lat lattice.Lattice[L], f, g Function[L]) Function[L] {
	return composerFunction[L]{lat: lat, f: f, g: g}
}

func (c composerFunction[L]) Apply(x L) L { return c.g.Apply(c.f.Apply(x)) }

func (composerFunction[L]) Kind() Kind { return KindComposer }

// Compose returns the Composer itself, unreduced, when h is Identity or
// AllBottom; otherwise it recurses as f.Compose(g.Compose(h)), letting the
// inner-most factor's own reductions fire first. This deliberately skips
// the fully reduced "compose(AllBottom) == AllBottom" shortcut for
// composite functions, preserving the composition shape rather than
// collapsing it.
func (c composerFunction[L]) Compose(h Function[L]) Function[L] {
	switch h.Kind() {
	case KindIdentity, KindAllBottom:
		return c
	default:
		return c.f.Compose(c.g.Compose(h))
	}
}

// JoinWith has no generic reduction for two composed functions; varies
// between analyses and is left to the JoinFunction fallback the same way
// a client-defined edge function would use it.
func (c composerFunction[L]) JoinWith(other Function[L]) Function[L] {
	switch other.Kind() {
	case KindAllTop:
		return c
	case KindAllBottom:
		return other
	default:
		return newJoinFunction(c, other, withLattice(c.lat))
	}
}

// Equal is structural: other must also be a Composer whose two halves are
// each Equal to this one's.
func (c composerFunction[L]) Equal(other Function[L]) bool {
	if other.Kind() != KindComposer {
		return false
	}
	o, ok := other.(composerFunction[L])
	if !ok {
		return false
	}
	return c.f.Equal(o.f) && c.g.Equal(o.g)
}

func (c composerFunction[L]) String() string {
	return "Composer(" + c.f.String() + ", " + c.g.String() + ")"
}
