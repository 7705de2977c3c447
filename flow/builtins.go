package flow

import "github.com/viant/ifds/internal/set"

// identityFlow: compute_targets(x) = {x}.
type identityFlow[D comparable] struct{}

// Identity returns the flow function that propagates a fact unchanged.
func Identity[D comparable]() Function[D] { return identityFlow[D]{} }

func (identityFlow[D]) ComputeTargets(src D) set.Set[D] { return set.New(src) }

func (identityFlow[D]) Equal(other Function[D]) bool {
	_, ok := other.(identityFlow[D])
	return ok
}

func (identityFlow[D]) String() string { return "Identity" }

// killAllFlow: compute_targets(x) = ∅.
type killAllFlow[D comparable] struct{}

// KillAll returns the flow function that propagates nothing.
func KillAll[D comparable]() Function[D] { return killAllFlow[D]{} }

func (killAllFlow[D]) ComputeTargets(D) set.Set[D] { return set.New[D]() }

func (killAllFlow[D]) Equal(other Function[D]) bool {
	_, ok := other.(killAllFlow[D])
	return ok
}

func (killAllFlow[D]) String() string { return "KillAll" }

// genFlow: compute_targets(zero) = {zero, g}; else {x}.
type genFlow[D comparable] struct {
	g    D
	zero D
}

// Gen returns the flow function that generates g from the zero fact,
// otherwise propagates its input unchanged.
func Gen[D comparable](g, zero D) Function[D] { return genFlow[D]{g: g, zero: zero} }

func (f genFlow[D]) ComputeTargets(src D) set.Set[D] {
	if src == f.zero {
		return set.New(f.zero, f.g)
	}
	return set.New(src)
}

func (f genFlow[D]) Equal(other Function[D]) bool {
	o, ok := other.(genFlow[D])
	return ok && o.g == f.g && o.zero == f.zero
}

func (f genFlow[D]) String() string { return "Gen" }

// killFlow: compute_targets(k) = ∅; else {x}.
type killFlow[D comparable] struct{ k D }

// Kill returns the flow function that drops fact k and propagates
// everything else unchanged.
func Kill[D comparable](k D) Function[D] { return killFlow[D]{k: k} }

func (f killFlow[D]) ComputeTargets(src D) set.Set[D] {
	if src == f.k {
		return set.New[D]()
	}
	return set.New(src)
}

func (f killFlow[D]) Equal(other Function[D]) bool {
	o, ok := other.(killFlow[D])
	return ok && o.k == f.k
}

func (f killFlow[D]) String() string { return "Kill" }

// zeroedWrapper enforces: compute_targets(zero) = {zero} ∪
// inner.compute_targets(zero); compute_targets(x) = inner.compute_targets(x)
// for x != zero.
type zeroedWrapper[D comparable] struct {
	inner Function[D]
	zero  D
	name  string
}

// ZeroedWrapper wraps inner so that applying it to the zero fact always
// yields a set containing the zero fact. name, if non-empty, is used by
// String() so cache diagnostics stay legible after wrapping; pass "" to
// fall back to "ZeroedWrapper(<inner>)".
func ZeroedWrapper[D comparable](inner Function[D], zero D, name string) Function[D] {
	return zeroedWrapper[D]{inner: inner, zero: zero, name: name}
}

func (f zeroedWrapper[D]) ComputeTargets(src D) set.Set[D] {
	targets := f.inner.ComputeTargets(src)
	if src != f.zero {
		return targets
	}
	out := set.New(f.zero)
	return out.Union(targets)
}

func (f zeroedWrapper[D]) Equal(other Function[D]) bool {
	o, ok := other.(zeroedWrapper[D])
	if !ok || o.zero != f.zero {
		return false
	}
	fe, ok := f.inner.(Equatable[D])
	if !ok {
		return false
	}
	return fe.Equal(o.inner)
}

func (f zeroedWrapper[D]) String() string {
	if f.name != "" {
		return f.name
	}
	return "ZeroedWrapper(" + f.inner.String() + ")"
}
