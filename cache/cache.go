// Package cache implements the interning table that sits between the
// surrounding worklist solver and a client's tabulation problem: every
// flow/edge function the client's factories produce is interned here, so
// the same call-site shape always yields the same reference.
package cache

import (
	"fmt"

	"github.com/viant/ifds/edge"
	"github.com/viant/ifds/flow"
	"github.com/viant/ifds/ifdserr"
	"github.com/viant/ifds/internal/keyset"
	"github.com/viant/ifds/memory"
	"github.com/viant/ifds/problem"
	"github.com/viant/ifds/stats"
)

// Cache is the FlowEdgeFunctionCache: it owns no program-graph state of
// its own, only the interning maps, the re-entrancy side-set, and the
// diagnostic counters for one client problem.
type Cache[N comparable, D comparable, F comparable, L any] struct {
	problem  problem.TabulationProblem[N, D, F, L]
	manager  *memory.Manager[flow.Function[D], edge.Function[L]]
	counters stats.Counters

	normalFlows    map[nnKey[N]]flow.Function[D]
	callFlows      map[nfKey[N, F]]flow.Function[D]
	returnFlows    map[nfnnKey[N, F]]flow.Function[D]
	callToRetFlows map[callToRetFlowKey[N]]flow.Function[D]

	normalEdges    map[ndndKey[N, D]]edge.Function[L]
	callEdges      map[ndfdKey[N, D, F]]edge.Function[L]
	returnEdges    map[nfndndKey[N, D, F]]edge.Function[L]
	callToRetEdges map[ndndKey[N, D]]edge.Function[L]
	summaryEdges   map[ndndKey[N, D]]edge.Function[L]

	building map[string]struct{}
}

// New builds a Cache bound to p, with its own memory manager and
// diagnostic counters. p's registered singletons are installed on the
// manager immediately.
func New[N comparable, D comparable, F comparable, L any](p problem.TabulationProblem[N, D, F, L]) *Cache[N, D, F, L] {
	c := &Cache[N, D, F, L]{
		problem:        p,
		manager:        memory.New[flow.Function[D], edge.Function[L]](),
		normalFlows:    map[nnKey[N]]flow.Function[D]{},
		callFlows:      map[nfKey[N, F]]flow.Function[D]{},
		returnFlows:    map[nfnnKey[N, F]]flow.Function[D]{},
		callToRetFlows: map[callToRetFlowKey[N]]flow.Function[D]{},
		normalEdges:    map[ndndKey[N, D]]edge.Function[L]{},
		callEdges:      map[ndfdKey[N, D, F]]edge.Function[L]{},
		returnEdges:    map[nfndndKey[N, D, F]]edge.Function[L]{},
		callToRetEdges: map[ndndKey[N, D]]edge.Function[L]{},
		summaryEdges:   map[ndndKey[N, D]]edge.Function[L]{},
		building:       map[string]struct{}{},
	}
	for _, f := range p.RegisteredFlowSingletons() {
		c.manager.RegisterFlowSingleton(f)
	}
	for _, e := range p.RegisteredEdgeSingletons() {
		c.manager.RegisterEdgeSingleton(e)
	}
	return c
}

// Manager exposes the cache's memory manager, e.g. for ReleaseAll on
// teardown or for Closed() checks before a solve resumes.
func (c *Cache[N, D, F, L]) Manager() *memory.Manager[flow.Function[D], edge.Function[L]] {
	return c.manager
}

// Statistics returns the cache's diagnostic counters.
func (c *Cache[N, D, F, L]) Statistics() *stats.Counters { return &c.counters }

func (c *Cache[N, D, F, L]) checkCycle(keyStr string) (func(), error) {
	if _, building := c.building[keyStr]; building {
		return nil, ifdserr.New(ifdserr.CacheCycle, "re-entrant request for key "+keyStr+" currently under construction")
	}
	c.building[keyStr] = struct{}{}
	return func() { delete(c.building, keyStr) }, nil
}

func (c *Cache[N, D, F, L]) finalizeFlow(inner flow.Function[D]) (flow.Function[D], error) {
	if inner == nil {
		return nil, ifdserr.New(ifdserr.ClientContractViolation, "flow-function factory returned nil for a non-summary key")
	}
	if c.problem.Config().AutoAddZero {
		zero := c.problem.ZeroValue()
		inner = flow.ZeroedWrapper[D](inner, zero, "")
	}
	return c.manager.ManageFlow(inner)
}

func (c *Cache[N, D, F, L]) finalizeEdge(e edge.Function[L]) (edge.Function[L], error) {
	if e == nil {
		return nil, ifdserr.New(ifdserr.ClientContractViolation, "edge-function factory returned nil for a non-summary key")
	}
	return c.manager.ManageEdge(e)
}

// getOrBuild probes m for key; on a miss it calls build, wraps the result
// through finalize, interns it, and bumps the category counters. On a hit
// it bumps the cache-hit counter and returns the interned value.
func getOrBuild[K comparable, V any](
	c interface {
		checkCycle(string) (func(), error)
	},
	counters *stats.Counters,
	cat stats.Category,
	kind stats.Kind,
	m map[K]V,
	key K,
	keyStr string,
	build func() (V, error),
	finalize func(V) (V, error),
) (V, error) {
	if v, ok := m[key]; ok {
		counters.RecordCacheHit(cat, kind)
		return v, nil
	}
	done, err := c.checkCycle(keyStr)
	var zero V
	if err != nil {
		return zero, err
	}
	defer done()

	raw, err := build()
	if err != nil {
		return zero, err
	}
	v, err := finalize(raw)
	if err != nil {
		return zero, err
	}
	m[key] = v
	counters.RecordConstruction(cat, kind)
	return v, nil
}

// --- key types ---

type nnKey[N comparable] struct{ a, b N }

type nfKey[N, F comparable] struct {
	n N
	f F
}

type nfnnKey[N, F comparable] struct {
	callSite N
	callee   F
	exit     N
	ret      N
}

type callToRetFlowKey[N comparable] struct {
	callSite N
	retSite  N
	callees  keyset.Key
}

type ndndKey[N, D comparable] struct {
	n1 N
	d1 D
	n2 N
	d2 D
}

type ndfdKey[N, D, F comparable] struct {
	n N
	d1 D
	f  F
	d2 D
}

type nfndndKey[N, D, F comparable] struct {
	callSite N
	callee   F
	exit     N
	exitD    D
	ret      N
	retD     D
}

func fmtKey(args ...any) string { return fmt.Sprint(args...) }
