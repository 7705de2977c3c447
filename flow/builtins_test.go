package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/ifds/flow"
)

func TestIdentityPropagatesUnchanged(t *testing.T) {
	f := flow.Identity[int]()
	assert.True(t, f.ComputeTargets(5).Has(5))
	assert.Equal(t, 1, f.ComputeTargets(5).Len())
}

func TestKillAllDropsEverything(t *testing.T) {
	f := flow.KillAll[int]()
	assert.Equal(t, 0, f.ComputeTargets(5).Len())
}

func TestGenGeneratesOnlyFromZero(t *testing.T) {
	f := flow.Gen[int](7, 0)

	targets := f.ComputeTargets(0)
	assert.True(t, targets.Has(0))
	assert.True(t, targets.Has(7))
	assert.Equal(t, 2, targets.Len())

	targets = f.ComputeTargets(3)
	assert.True(t, targets.Has(3))
	assert.Equal(t, 1, targets.Len())
}

func TestKillDropsOnlyItsFact(t *testing.T) {
	f := flow.Kill[int](3)
	assert.Equal(t, 0, f.ComputeTargets(3).Len())

	targets := f.ComputeTargets(4)
	assert.True(t, targets.Has(4))
}

func TestZeroedWrapperInjectsZeroFact(t *testing.T) {
	inner := flow.Gen[int](7, 0)
	wrapped := flow.ZeroedWrapper[int](inner, 0, "")

	targets := wrapped.ComputeTargets(0)
	assert.True(t, targets.Has(0))
	assert.True(t, targets.Has(7))

	targets = wrapped.ComputeTargets(3)
	assert.True(t, targets.Has(3))
	assert.False(t, targets.Has(0))
}

func TestZeroedWrapperEqualDelegatesToInner(t *testing.T) {
	a := flow.ZeroedWrapper[int](flow.Kill[int](3), 0, "")
	b := flow.ZeroedWrapper[int](flow.Kill[int](3), 0, "")
	c := flow.ZeroedWrapper[int](flow.Kill[int](4), 0, "")

	ae, ok := a.(flow.Equatable[int])
	assert.True(t, ok)
	assert.True(t, ae.Equal(b))
	assert.False(t, ae.Equal(c))
}
