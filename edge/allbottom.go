package edge

import "github.com/viant/ifds/lattice"

// allBottomFunction maps every input to the lattice's bottom value.
// Composing AllBottom after a built-in (g.Compose(AllBottom)) collapses the
// chain to AllBottom, with two exceptions: AllTop absorbs it and stays
// AllTop (see alltop.go), and Composer preserves itself unreduced (see
// composer.go).
type allBottomFunction[L any] struct {
	Base
	lat lattice.Lattice[L]
}

// AllBottom returns the edge function λx. lat.Bottom().
func AllBottom[L any](lat lattice.Lattice[L]) Function[L] { return allBottomFunction[L]{lat: lat} }

func (f allBottomFunction[L]) Apply(L) L { return f.lat.Bottom() }

func (allBottomFunction[L]) Kind() Kind { return KindAllBottom }

// Compose implements g.Compose(Identity) == g and x.Compose(AllBottom) ==
// AllBottom for the AllBottom receiver itself; any other argument is
// composed generically since AllBottom's own output is not necessarily
// preserved by an arbitrary successor function.
func (f allBottomFunction[L]) Compose(other Function[L]) Function[L] {
	switch other.Kind() {
	case KindIdentity, KindAllBottom:
		return f
	default:
		return newComposer(f.lat, f, other)
	}
}

// JoinWith implements Bottom as the absorbing element of Join.
func (f allBottomFunction[L]) JoinWith(Function[L]) Function[L] { return f }

func (f allBottomFunction[L]) Equal(other Function[L]) bool { return other.Kind() == KindAllBottom }

func (allBottomFunction[L]) String() string { return "AllBottom" }
