package lattice

import "github.com/viant/ifds/internal/set"

// SetUnionLattice is a ready-made Lattice[Value[set.Set[T]]]: Join is set
// union, Top is the neutral (identity-of-join) marker, Bottom absorbs. This
// is the set<T> environment domain used by the cache and lattice tests.
type SetUnionLattice[T comparable] struct{}

// NewSetUnionLattice builds a SetUnionLattice over element type T.
func NewSetUnionLattice[T comparable]() SetUnionLattice[T] { return SetUnionLattice[T]{} }

func (SetUnionLattice[T]) Top() Value[set.Set[T]] { return Top[set.Set[T]]() }

func (SetUnionLattice[T]) Bottom() Value[set.Set[T]] { return Bottom[set.Set[T]]() }

func (l SetUnionLattice[T]) Join(a, b Value[set.Set[T]]) Value[set.Set[T]] {
	if a.IsBottom() || b.IsBottom() {
		return l.Bottom()
	}
	if a.IsTop() {
		return b
	}
	if b.IsTop() {
		return a
	}
	av, _ := a.Payload()
	bv, _ := b.Payload()
	return Regular(av.Union(bv))
}

func (SetUnionLattice[T]) Equal(a, b Value[set.Set[T]]) bool {
	if a.IsTop() != b.IsTop() || a.IsBottom() != b.IsBottom() {
		return false
	}
	if a.IsTop() || a.IsBottom() {
		return true
	}
	av, _ := a.Payload()
	bv, _ := b.Payload()
	return av.Equal(bv)
}
