// Package edge implements the IDE edge-function algebra: the polymorphic
// family of functions over a lattice value L, with composition and join
// that together let the cache tabulate environment transformers along path
// edges.
package edge

import "github.com/viant/ifds/ifdserr"

// Kind tags the semantic variant of a Function so composition and join can
// dispatch on the variant rather than on incidental pointer identity (see
// the design notes on reference-equality leakage). Client-defined edge
// functions report KindCustom by embedding Base.
type Kind int

const (
	KindCustom Kind = iota
	KindIdentity
	KindAllTop
	KindAllBottom
	KindComposer
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "Identity"
	case KindAllTop:
		return "AllTop"
	case KindAllBottom:
		return "AllBottom"
	case KindComposer:
		return "Composer"
	default:
		return "Custom"
	}
}

// Function is an edge function over lattice value L. Compose, JoinWith and
// Equal are the algebra kernel and assume a non-nil argument; the package
// functions Compose, JoinWith and Equal below are the entry points callers
// should use, since they detect a nil argument and
// report it as an AlgebraMismatch instead.
type Function[L any] interface {
	// Apply computes the target environment value from a source one.
	Apply(x L) L
	// Compose returns a function equivalent to λx. other(Apply(x)).
	Compose(other Function[L]) Function[L]
	// JoinWith returns a function equivalent to λx. lattice.Join(Apply(x), other(x)).
	JoinWith(other Function[L]) Function[L]
	// Equal decides structural equivalence, used by the cache for
	// interning and by the solver for fixed-point detection.
	Equal(other Function[L]) bool
	// Kind reports the semantic variant for algebra dispatch.
	Kind() Kind
	String() string
}

// Base gives a client-defined edge function a default Kind() of
// KindCustom via embedding, the extension point the design notes call for.
type Base struct{}

func (Base) Kind() Kind { return KindCustom }

// Compose is the guarded entry point for f.Compose(g): it reports
// AlgebraMismatch if g is nil (the one argument that is not a recognizable
// edge-function variant), otherwise delegates to f.Compose(g).
func Compose[L any](f, g Function[L]) (Function[L], error) {
	if g == nil {
		return nil, mismatch("Compose")
	}
	return f.Compose(g), nil
}

// JoinWith is the guarded entry point for f.JoinWith(g); see Compose.
func JoinWith[L any](f, g Function[L]) (Function[L], error) {
	if g == nil {
		return nil, mismatch("JoinWith")
	}
	return f.JoinWith(g), nil
}

// Equal is the guarded entry point for f.Equal(g); see Compose. A nil g
// both reports AlgebraMismatch and is treated as unequal.
func Equal[L any](f, g Function[L]) (bool, error) {
	if g == nil {
		return false, mismatch("Equal")
	}
	return f.Equal(g), nil
}

func mismatch(op string) error {
	return ifdserr.New(ifdserr.AlgebraMismatch, "edge."+op+": argument is not a recognizable edge-function variant (nil)")
}
