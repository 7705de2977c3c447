package edge

import "github.com/viant/ifds/lattice"

// allTopFunction maps every input to the lattice's top value and absorbs
// composition from the left: nothing composed after AllTop can escape top.
type allTopFunction[L any] struct {
	Base
	lat lattice.Lattice[L]
}

// AllTop returns the edge function λx. lat.Top(), the absorbing element
// under Compose from the left and the neutral element under JoinWith.
func AllTop[L any](lat lattice.Lattice[L]) Function[L] { return allTopFunction[L]{lat: lat} }

func (f allTopFunction[L]) Apply(L) L { return f.lat.Top() }

func (allTopFunction[L]) Kind() Kind { return KindAllTop }

// Compose implements receiver-side absorption: AllTop.Compose(g) == AllTop
// for any g, since every output of AllTop is already top.
func (f allTopFunction[L]) Compose(Function[L]) Function[L] { return f }

// JoinWith implements Top as the neutral element of Join: AllTop.JoinWith(g) == g.
func (allTopFunction[L]) JoinWith(other Function[L]) Function[L] { return other }

func (f allTopFunction[L]) Equal(other Function[L]) bool { return other.Kind() == KindAllTop }

func (allTopFunction[L]) String() string { return "AllTop" }
