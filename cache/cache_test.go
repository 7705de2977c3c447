package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/ifds/cache"
	"github.com/viant/ifds/edge"
	"github.com/viant/ifds/flow"
	"github.com/viant/ifds/ifdserr"
	"github.com/viant/ifds/internal/set"
	"github.com/viant/ifds/lattice"
	"github.com/viant/ifds/problem"
	"github.com/viant/ifds/stats"
)

// toyLattice is the L ≡ set<string> domain used by the scenario tests below.
type toyLattice = lattice.SetUnionLattice[string]

type toyProblem struct {
	problem.Base[int, lattice.Value[set.Set[string]]]

	autoAddZero bool

	normalFlowCalls    int
	callToRetFlowCalls int
	summaryEdgeCalls   int

	normalFlow    func(curr, succ int) flow.Function[int]
	callToRetFlow func(callSite, retSite int, callees []string) flow.Function[int]
	summaryEdge   func(callSite N2, callD int, retSite N2, retD int) edge.Function[lattice.Value[set.Set[string]]]
}

type N2 = int

func (p *toyProblem) ZeroValue() int    { return 0 }
func (p *toyProblem) IsZero(d int) bool { return d == 0 }

func (p *toyProblem) InitialSeeds() map[int]set.Set[int] {
	return map[int]set.Set[int]{1: set.New(0)}
}

func (p *toyProblem) NormalFlow(curr, succ int) flow.Function[int] {
	p.normalFlowCalls++
	if p.normalFlow != nil {
		return p.normalFlow(curr, succ)
	}
	return flow.Identity[int]()
}

func (p *toyProblem) CallFlow(callStmt int, destFun string) flow.Function[int] {
	return flow.Identity[int]()
}

func (p *toyProblem) ReturnFlow(callSite int, callee string, exitStmt, retSite int) flow.Function[int] {
	return flow.Identity[int]()
}

func (p *toyProblem) CallToRetFlow(callSite, retSite int, callees []string) flow.Function[int] {
	p.callToRetFlowCalls++
	if p.callToRetFlow != nil {
		return p.callToRetFlow(callSite, retSite, callees)
	}
	return flow.Identity[int]()
}

func (p *toyProblem) SummaryFlow(callStmt int, destFun string) flow.Function[int] { return nil }

func (p *toyProblem) NormalEdge(curr int, currD int, succ int, succD int) edge.Function[lattice.Value[set.Set[string]]] {
	return edge.Identity[lattice.Value[set.Set[string]]](toyLattice{})
}

func (p *toyProblem) CallEdge(callStmt int, srcD int, destFun string, destD int) edge.Function[lattice.Value[set.Set[string]]] {
	return edge.Identity[lattice.Value[set.Set[string]]](toyLattice{})
}

func (p *toyProblem) ReturnEdge(callSite int, callee string, exitStmt int, exitD int, retSite int, retD int) edge.Function[lattice.Value[set.Set[string]]] {
	return edge.Identity[lattice.Value[set.Set[string]]](toyLattice{})
}

func (p *toyProblem) CallToRetEdge(callSite int, callD int, retSite int, retD int, callees []string) edge.Function[lattice.Value[set.Set[string]]] {
	return edge.Identity[lattice.Value[set.Set[string]]](toyLattice{})
}

func (p *toyProblem) SummaryEdge(callSite int, callD int, retSite int, retD int) edge.Function[lattice.Value[set.Set[string]]] {
	p.summaryEdgeCalls++
	if p.summaryEdge != nil {
		return p.summaryEdge(callSite, callD, retSite, retD)
	}
	return edge.Identity[lattice.Value[set.Set[string]]](toyLattice{})
}

func (p *toyProblem) Lattice() lattice.Lattice[lattice.Value[set.Set[string]]] { return toyLattice{} }

func (p *toyProblem) AllTop() edge.Function[lattice.Value[set.Set[string]]] {
	return edge.AllTop[lattice.Value[set.Set[string]]](toyLattice{})
}

func (p *toyProblem) Config() problem.SolverConfig {
	return problem.SolverConfig{AutoAddZero: p.autoAddZero}
}

func (p *toyProblem) NodeString(n int) string      { return "" }
func (p *toyProblem) FactString(d int) string      { return "" }
func (p *toyProblem) FuncString(f string) string   { return "" }
func (p *toyProblem) ValueString(l lattice.Value[set.Set[string]]) string { return "" }

func newCache(p *toyProblem) *cache.Cache[int, int, string, lattice.Value[set.Set[string]]] {
	return cache.New[int, int, string, lattice.Value[set.Set[string]]](p)
}

// Scenario A: cache hit.
func TestScenarioA_CacheHit(t *testing.T) {
	p := &toyProblem{}
	c := newCache(p)

	first, err := c.GetNormalFlow(1, 2)
	require.NoError(t, err)
	second, err := c.GetNormalFlow(1, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, p.normalFlowCalls)
	assert.Equal(t, 1, c.Statistics().Construction(stats.Normal, stats.Flow))
	assert.Equal(t, 1, c.Statistics().CacheHit(stats.Normal, stats.Flow))
	assert.Equal(t, first, second)
}

// Scenario B: zero wrapping.
func TestScenarioB_ZeroWrapping(t *testing.T) {
	p := &toyProblem{autoAddZero: true}
	p.normalFlow = func(curr, succ int) flow.Function[int] { return flow.Gen[int](7, 0) }
	c := newCache(p)

	ff, err := c.GetNormalFlow(1, 2)
	require.NoError(t, err)

	targets := ff.ComputeTargets(0)
	assert.True(t, targets.Has(0))
	assert.True(t, targets.Has(7))

	targets = ff.ComputeTargets(3)
	assert.True(t, targets.Has(3))
	assert.False(t, targets.Has(0))
}

// Scenario E: set-keyed callees, order independent.
func TestScenarioE_SetKeyedCallees(t *testing.T) {
	p := &toyProblem{}
	c := newCache(p)

	a, err := c.GetCallToRetFlow(1, 2, []string{"f1", "f2"})
	require.NoError(t, err)
	b, err := c.GetCallToRetFlow(1, 2, []string{"f2", "f1"})
	require.NoError(t, err)

	assert.Equal(t, 1, p.callToRetFlowCalls)
	assert.Equal(t, a, b)
}

// Scenario F: re-entrant build fails with CacheCycle.
func TestScenarioF_ReentrantBuildFails(t *testing.T) {
	p := &toyProblem{}
	c := newCache(p)
	p.normalFlow = func(curr, succ int) flow.Function[int] {
		_, err := c.GetNormalFlow(curr, succ)
		require.Error(t, err)
		assert.ErrorIs(t, err, ifdserr.ErrCacheCycle)
		return flow.Identity[int]()
	}

	_, err := c.GetNormalFlow(1, 2)
	require.NoError(t, err)
}

// Scenario G: summary edge is cached and counted, unlike summary flow.
func TestScenarioG_SummaryEdgeCaching(t *testing.T) {
	p := &toyProblem{}
	c := newCache(p)

	first, err := c.GetSummaryEdge(1, 0, 2, 0)
	require.NoError(t, err)
	second, err := c.GetSummaryEdge(1, 0, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, p.summaryEdgeCalls)
	assert.Equal(t, 1, c.Statistics().Construction(stats.Summary, stats.Edge))
	assert.Equal(t, 1, c.Statistics().CacheHit(stats.Summary, stats.Edge))
	assert.True(t, first.Equal(second))
}

func TestSummaryFlowBypassesCacheEntirely(t *testing.T) {
	p := &toyProblem{}
	c := newCache(p)

	_ = c.GetSummaryFlow(1, "f")
	_ = c.GetSummaryFlow(1, "f")

	assert.Equal(t, 0, c.Statistics().Construction(stats.Summary, stats.Flow))
	assert.Equal(t, 0, c.Statistics().CacheHit(stats.Summary, stats.Flow))
}

func TestCallToRetEdgeIgnoresCalleeSet(t *testing.T) {
	p := &toyProblem{}
	c := newCache(p)

	a, err := c.GetCallToRetEdge(1, 0, 2, 0, []string{"f1"})
	require.NoError(t, err)
	b, err := c.GetCallToRetEdge(1, 0, 2, 0, []string{"f1", "f2"})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 1, c.Statistics().Construction(stats.CallToRet, stats.Edge))
}

func TestNilFlowFactoryResultIsClientContractViolation(t *testing.T) {
	p := &toyProblem{}
	p.normalFlow = func(curr, succ int) flow.Function[int] { return nil }
	c := newCache(p)

	_, err := c.GetNormalFlow(1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ifdserr.ErrClientContractViolation)
}
