// Package flow implements the IFDS flow-function contract: a pure
// function from a source data-flow fact to a set of target facts.
package flow

import "github.com/viant/ifds/internal/set"

// Function is a flow function over fact domain D. ComputeTargets must be
// deterministic for fixed construction-time state: its output depends
// only on src and on the state the function closed over when built.
type Function[D comparable] interface {
	ComputeTargets(src D) set.Set[D]
	String() string
}

// Equatable is an optional capability a client-defined flow function can
// implement so memory.Manager.ManageFlow recognizes it as equivalent to a
// registered singleton; functions that don't implement it are always
// freshly managed.
type Equatable[D comparable] interface {
	Equal(other Function[D]) bool
}
