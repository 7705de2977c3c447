// Package problem defines the tabulation-problem contract: the interface a
// client implements and the cache (and, outside this module, the
// surrounding worklist solver) consumes.
package problem

import (
	"github.com/viant/ifds/edge"
	"github.com/viant/ifds/flow"
	"github.com/viant/ifds/internal/set"
	"github.com/viant/ifds/lattice"
)

// SolverConfig carries the one configuration input the core reads.
type SolverConfig struct {
	// AutoAddZero, when true, wraps every non-summary flow-function result
	// in flow.ZeroedWrapper(·, zero_value) before interning.
	AutoAddZero bool
}

// TabulationProblem is the client contract. N is a program point, D a
// data-flow fact, F a procedure identifier, L a lattice value.
type TabulationProblem[N comparable, D comparable, F comparable, L any] interface {
	ZeroValue() D
	IsZero(d D) bool

	InitialSeeds() map[N]set.Set[D]

	NormalFlow(curr, succ N) flow.Function[D]
	CallFlow(callStmt N, destFun F) flow.Function[D]
	ReturnFlow(callSite N, callee F, exitStmt, retSite N) flow.Function[D]
	CallToRetFlow(callSite, retSite N, callees []F) flow.Function[D]
	// SummaryFlow may return nil to signal "no summary"; it is never
	// cached and always delegates straight to this method.
	SummaryFlow(callStmt N, destFun F) flow.Function[D]

	NormalEdge(curr N, currD D, succ N, succD D) edge.Function[L]
	CallEdge(callStmt N, srcD D, destFun F, destD D) edge.Function[L]
	ReturnEdge(callSite N, callee F, exitStmt N, exitD D, retSite N, retD D) edge.Function[L]
	CallToRetEdge(callSite N, callD D, retSite N, retD D, callees []F) edge.Function[L]
	SummaryEdge(callSite N, callD D, retSite N, retD D) edge.Function[L]

	Lattice() lattice.Lattice[L]
	// AllTop must return an edge function equivalent to edge.AllTop.
	AllTop() edge.Function[L]

	Config() SolverConfig

	NodeString(n N) string
	FactString(d D) string
	FuncString(f F) string
	ValueString(l L) string

	// RegisteredFlowSingletons/RegisteredEdgeSingletons name the
	// client-canonical instances the memory manager should prefer over
	// freshly constructed equivalents.
	RegisteredFlowSingletons() []flow.Function[D]
	RegisteredEdgeSingletons() []edge.Function[L]
}
