// Package memory implements the bookkeeping layer that owns every flow and
// edge function produced while a cache is alive, and the singleton
// registries that let client-canonical instances be reused instead of
// reallocated.
//
// Go's garbage collector already rules out dangling references, so a
// Function value returned by Manage* is an ordinary interface value, not a
// manufactured handle. What the manager still owns is the bookkeeping
// itself: it is the only component that records a function as managed,
// and ReleaseAll invalidates that record.
package memory

import "github.com/viant/ifds/ifdserr"

// Manager owns every flow.Function[D] and edge.Function[L] produced during
// a cache's lifetime. D and L are kept abstract (any) here; the manager
// only needs equality-capable registries, supplied by the cache via the
// Equatable capability interfaces in the flow/edge packages.
type Manager[D any, L any] struct {
	flows []D
	edges []L

	flowSingletons []singleton[D]
	edgeSingletons []singleton[L]

	closed bool
}

// equatable is satisfied by flow.Function[D]/edge.Function[L] values that
// implement an Equal(other) bool method; the manager depends only on this
// shape so it need not import either package.
type equatable[T any] interface {
	Equal(other T) bool
}

type singleton[T any] struct {
	value T
}

// New returns a Manager ready to take ownership of functions.
func New[D any, L any]() *Manager[D, L] { return &Manager[D, L]{} }

// ManageFlow takes ownership of f: if an equal flow singleton was
// previously registered, that singleton is returned instead of f so the
// analysis converges on one canonical instance; otherwise f is recorded
// and returned unchanged.
func (m *Manager[D, L]) ManageFlow(f D) (D, error) {
	var zero D
	if m.closed {
		return zero, ifdserr.New(ifdserr.ClientContractViolation, "memory.Manager: ManageFlow called after ReleaseAll")
	}
	if eq, ok := any(f).(equatable[D]); ok {
		for _, s := range m.flowSingletons {
			if eq.Equal(s.value) {
				return s.value, nil
			}
		}
	}
	m.flows = append(m.flows, f)
	return f, nil
}

// ManageEdge is ManageFlow's counterpart for edge functions.
func (m *Manager[D, L]) ManageEdge(e L) (L, error) {
	var zero L
	if m.closed {
		return zero, ifdserr.New(ifdserr.ClientContractViolation, "memory.Manager: ManageEdge called after ReleaseAll")
	}
	if eq, ok := any(e).(equatable[L]); ok {
		for _, s := range m.edgeSingletons {
			if eq.Equal(s.value) {
				return s.value, nil
			}
		}
	}
	m.edges = append(m.edges, e)
	return e, nil
}

// RegisterFlowSingleton declares f as the canonical instance for whatever
// equivalence class its Equal method recognizes; future ManageFlow calls
// for an equal function return f instead of interning a fresh copy.
func (m *Manager[D, L]) RegisterFlowSingleton(f D) {
	m.flowSingletons = append(m.flowSingletons, singleton[D]{value: f})
}

// RegisterEdgeSingleton is RegisterFlowSingleton's counterpart for edge functions.
func (m *Manager[D, L]) RegisterEdgeSingleton(e L) {
	m.edgeSingletons = append(m.edgeSingletons, singleton[L]{value: e})
}

// ReleaseAll destroys every bookkeeping record the manager holds. After
// this call the manager is Closed and refuses further Manage* calls.
func (m *Manager[D, L]) ReleaseAll() {
	m.flows = nil
	m.edges = nil
	m.flowSingletons = nil
	m.edgeSingletons = nil
	m.closed = true
}

// Closed reports whether ReleaseAll has been called.
func (m *Manager[D, L]) Closed() bool { return m.closed }

// FlowCount returns the number of flow functions currently owned.
func (m *Manager[D, L]) FlowCount() int { return len(m.flows) }

// EdgeCount returns the number of edge functions currently owned.
func (m *Manager[D, L]) EdgeCount() int { return len(m.edges) }
