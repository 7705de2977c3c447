package problem

import (
	"github.com/viant/ifds/edge"
	"github.com/viant/ifds/flow"
)

// Base provides zero-value defaults for the two singleton-registration
// hooks and Config, so a concrete problem only has to override what it
// actually needs, the way a functional-options struct lets a caller
// override only a handful of fields at a time.
type Base[D comparable, L any] struct{}

// Config defaults to AutoAddZero: false. Override to enable zero-wrapping.
func (Base[D, L]) Config() SolverConfig { return SolverConfig{} }

// RegisteredFlowSingletons defaults to none.
func (Base[D, L]) RegisteredFlowSingletons() []flow.Function[D] { return nil }

// RegisteredEdgeSingletons defaults to none.
func (Base[D, L]) RegisteredEdgeSingletons() []edge.Function[L] { return nil }
