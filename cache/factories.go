package cache

import (
	"github.com/viant/ifds/edge"
	"github.com/viant/ifds/flow"
	"github.com/viant/ifds/internal/keyset"
	"github.com/viant/ifds/stats"
)

// GetNormalFlow interns the flow function for a same-procedure statement edge.
func (c *Cache[N, D, F, L]) GetNormalFlow(curr, succ N) (flow.Function[D], error) {
	key := nnKey[N]{a: curr, b: succ}
	return getOrBuild(c, &c.counters, stats.Normal, stats.Flow, c.normalFlows, key, fmtKey("normal-flow", curr, succ),
		func() (flow.Function[D], error) { return c.problem.NormalFlow(curr, succ), nil },
		c.finalizeFlow,
	)
}

// GetCallFlow interns the flow function for a call-site-to-callee-entry edge.
func (c *Cache[N, D, F, L]) GetCallFlow(callStmt N, destFun F) (flow.Function[D], error) {
	key := nfKey[N, F]{n: callStmt, f: destFun}
	return getOrBuild(c, &c.counters, stats.Call, stats.Flow, c.callFlows, key, fmtKey("call-flow", callStmt, destFun),
		func() (flow.Function[D], error) { return c.problem.CallFlow(callStmt, destFun), nil },
		c.finalizeFlow,
	)
}

// GetReturnFlow interns the flow function for a callee-exit-to-return-site edge.
func (c *Cache[N, D, F, L]) GetReturnFlow(callSite N, callee F, exitStmt, retSite N) (flow.Function[D], error) {
	key := nfnnKey[N, F]{callSite: callSite, callee: callee, exit: exitStmt, ret: retSite}
	return getOrBuild(c, &c.counters, stats.Return, stats.Flow, c.returnFlows, key, fmtKey("return-flow", callSite, callee, exitStmt, retSite),
		func() (flow.Function[D], error) { return c.problem.ReturnFlow(callSite, callee, exitStmt, retSite), nil },
		c.finalizeFlow,
	)
}

// GetCallToRetFlow interns the flow function for the call-to-return-site
// edge bypassing the callee entirely; callees participate in this key, set
// equality, not sequence.
func (c *Cache[N, D, F, L]) GetCallToRetFlow(callSite, retSite N, callees []F) (flow.Function[D], error) {
	ck := keyset.Of(callees)
	key := callToRetFlowKey[N]{callSite: callSite, retSite: retSite, callees: ck}
	return getOrBuild(c, &c.counters, stats.CallToRet, stats.Flow, c.callToRetFlows, key, fmtKey("call-to-ret-flow", callSite, retSite, ck.Canonical),
		func() (flow.Function[D], error) { return c.problem.CallToRetFlow(callSite, retSite, callees), nil },
		c.finalizeFlow,
	)
}

// GetSummaryFlow always delegates straight to the client: summaries are
// owned by an upstream summary store in the surrounding solver, so this
// cache never interns or counts them.
func (c *Cache[N, D, F, L]) GetSummaryFlow(callStmt N, destFun F) flow.Function[D] {
	return c.problem.SummaryFlow(callStmt, destFun)
}

// GetNormalEdge interns the edge function for a same-procedure (curr,currD)->(succ,succD) path edge.
func (c *Cache[N, D, F, L]) GetNormalEdge(curr N, currD D, succ N, succD D) (edge.Function[L], error) {
	key := ndndKey[N, D]{n1: curr, d1: currD, n2: succ, d2: succD}
	return getOrBuild(c, &c.counters, stats.Normal, stats.Edge, c.normalEdges, key, fmtKey("normal-edge", curr, currD, succ, succD),
		func() (edge.Function[L], error) { return c.problem.NormalEdge(curr, currD, succ, succD), nil },
		c.finalizeEdge,
	)
}

// GetCallEdge interns the edge function for a call-site-to-callee-entry fact pair.
func (c *Cache[N, D, F, L]) GetCallEdge(callStmt N, srcD D, destFun F, destD D) (edge.Function[L], error) {
	key := ndfdKey[N, D, F]{n: callStmt, d1: srcD, f: destFun, d2: destD}
	return getOrBuild(c, &c.counters, stats.Call, stats.Edge, c.callEdges, key, fmtKey("call-edge", callStmt, srcD, destFun, destD),
		func() (edge.Function[L], error) { return c.problem.CallEdge(callStmt, srcD, destFun, destD), nil },
		c.finalizeEdge,
	)
}

// GetReturnEdge interns the edge function for a callee-exit-to-return-site fact pair.
func (c *Cache[N, D, F, L]) GetReturnEdge(callSite N, callee F, exitStmt N, exitD D, retSite N, retD D) (edge.Function[L], error) {
	key := nfndndKey[N, D, F]{callSite: callSite, callee: callee, exit: exitStmt, exitD: exitD, ret: retSite, retD: retD}
	return getOrBuild(c, &c.counters, stats.Return, stats.Edge, c.returnEdges, key, fmtKey("return-edge", callSite, callee, exitStmt, exitD, retSite, retD),
		func() (edge.Function[L], error) { return c.problem.ReturnEdge(callSite, callee, exitStmt, exitD, retSite, retD), nil },
		c.finalizeEdge,
	)
}

// GetCallToRetEdge interns the edge function for the call-to-return-site
// fact pair. Unlike GetCallToRetFlow's key, callees are deliberately
// excluded here: the edge function only ever depends on the fact pair,
// so two calls differing only in their callee set still intern to the
// same entry (see DESIGN.md).
func (c *Cache[N, D, F, L]) GetCallToRetEdge(callSite N, callD D, retSite N, retD D, callees []F) (edge.Function[L], error) {
	key := ndndKey[N, D]{n1: callSite, d1: callD, n2: retSite, d2: retD}
	return getOrBuild(c, &c.counters, stats.CallToRet, stats.Edge, c.callToRetEdges, key, fmtKey("call-to-ret-edge", callSite, callD, retSite, retD),
		func() (edge.Function[L], error) { return c.problem.CallToRetEdge(callSite, callD, retSite, retD, callees), nil },
		c.finalizeEdge,
	)
}

// GetSummaryEdge interns the edge function for a summarized call. Unlike
// GetSummaryFlow, which always delegates straight to the client, the
// summary edge is cached and counted the same as any other edge factory
// (see DESIGN.md).
func (c *Cache[N, D, F, L]) GetSummaryEdge(callSite N, callD D, retSite N, retD D) (edge.Function[L], error) {
	key := ndndKey[N, D]{n1: callSite, d1: callD, n2: retSite, d2: retD}
	return getOrBuild(c, &c.counters, stats.Summary, stats.Edge, c.summaryEdges, key, fmtKey("summary-edge", callSite, callD, retSite, retD),
		func() (edge.Function[L], error) { return c.problem.SummaryEdge(callSite, callD, retSite, retD), nil },
		c.finalizeEdge,
	)
}
