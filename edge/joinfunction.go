package edge

import "github.com/viant/ifds/lattice"

// joinFunction is the generic, cross-analysis fallback for JoinWith: the
// pointwise join of two edge functions' outputs, λx. lat.Join(a(x), b(x)).
// A concrete Function[L] is free to return a sharper representation from
// its own JoinWith instead of falling through to this one.
type joinFunction[L any] struct {
	Base
	lat  lattice.Lattice[L]
	a, b Function[L]
}

// JoinFunction builds the pointwise join of a and b under lat.
func JoinFunction[L any](lat lattice.Lattice[L], a, b Function[L]) Function[L] {
	return newJoinFunction(a, b, withLattice(lat))
}

// newJoinFunction is the package-internal constructor behind JoinFunction
// and the JoinWith fallbacks of the built-ins (Identity, Composer,
// joinFunction). Each of those built-ins carries its own Lattice[L] and
// passes it in via withLattice; without that option the result has no
// lattice to join with.
func newJoinFunction[L any](a, b Function[L], opts ...func(*joinFunction[L])) Function[L] {
	jf := joinFunction[L]{a: a, b: b}
	for _, opt := range opts {
		opt(&jf)
	}
	return jf
}

func withLattice[L any](lat lattice.Lattice[L]) func(*joinFunction[L]) {
	return func(jf *joinFunction[L]) { jf.lat = lat }
}

func (jf joinFunction[L]) Apply(x L) L { return jf.lat.Join(jf.a.Apply(x), jf.b.Apply(x)) }

func (joinFunction[L]) Kind() Kind { return KindCustom }

func (jf joinFunction[L]) Compose(other Function[L]) Function[L] {
	switch other.Kind() {
	case KindIdentity:
		return jf
	case KindAllBottom:
		return other
	default:
		return newComposer(jf.lat, jf, other)
	}
}

func (jf joinFunction[L]) JoinWith(other Function[L]) Function[L] {
	switch other.Kind() {
	case KindAllTop:
		return jf
	case KindAllBottom:
		return other
	default:
		return newJoinFunction(jf, other, withLattice(jf.lat))
	}
}

func (jf joinFunction[L]) Equal(other Function[L]) bool {
	o, ok := other.(joinFunction[L])
	if !ok {
		return false
	}
	return jf.a.Equal(o.a) && jf.b.Equal(o.b)
}

func (jf joinFunction[L]) String() string {
	return "Join(" + jf.a.String() + ", " + jf.b.String() + ")"
}
