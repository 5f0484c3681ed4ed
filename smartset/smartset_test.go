package smartset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lts/simlts/smartset"
)

func TestSmartSet_AddContainsSize(t *testing.T) {
	s := smartset.New(5)
	assert.True(t, s.Empty())

	s.Add(2)
	s.Add(4)
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(0))
	assert.Equal(t, 2, s.Size())
}

func TestSmartSet_MultiplicityRequiresMultipleRemoves(t *testing.T) {
	s := smartset.New(3)
	s.Add(1)
	s.Add(1)
	assert.True(t, s.Contains(1))

	s.Remove(1)
	assert.True(t, s.Contains(1), "one remaining reference keeps the element present")

	s.Remove(1)
	assert.False(t, s.Contains(1))
	assert.True(t, s.Empty())
}

func TestSmartSet_RemoveAbsentIsNoop(t *testing.T) {
	s := smartset.New(3)
	assert.NotPanics(t, func() { s.Remove(0) })
	assert.True(t, s.Empty())
}

func TestSmartSet_RemoveStrictPanicsWhenAbsent(t *testing.T) {
	s := smartset.New(3)
	assert.Panics(t, func() { s.RemoveStrict(0) })
}

func TestSmartSet_EvictKeepsOtherElementsReachable(t *testing.T) {
	s := smartset.New(5)
	for _, x := range []int{0, 1, 2, 3} {
		s.Add(x)
	}
	s.Remove(1) // evicts 1 by swapping in the last flat element (3)

	require.Equal(t, 3, s.Size())
	for _, x := range []int{0, 2, 3} {
		assert.True(t, s.Contains(x))
	}
	assert.False(t, s.Contains(1))
}

func TestSmartSet_AssignFlat(t *testing.T) {
	s := smartset.New(6)
	s.Add(0)
	s.Add(5)

	s.AssignFlat([]int{1, 2, 3})
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(5))
	assert.ElementsMatch(t, []int{1, 2, 3}, s.Elements())
	assert.Equal(t, 3, s.Size())
}

func TestSmartSet_OutOfRangePanics(t *testing.T) {
	s := smartset.New(2)
	assert.Panics(t, func() { s.Add(2) })
	assert.Panics(t, func() { s.Contains(-1) })
}
