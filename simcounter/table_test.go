package simcounter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lts/simlts/simcounter"
	"github.com/go-lts/simlts/smartset"
)

// fullKey builds a Key for numLabels labels whose delta1 set is, for every
// label, all of [0, numStates).
func fullKey(numStates, numLabels int) *simcounter.Key {
	delta1 := make([]*smartset.SmartSet, numLabels)
	for a := 0; a < numLabels; a++ {
		s := smartset.New(numStates)
		for q := 0; q < numStates; q++ {
			s.Add(q)
		}
		delta1[a] = s
	}
	return simcounter.BuildKey(numStates, delta1)
}

func TestTable_IncrGet(t *testing.T) {
	k := fullKey(3, 1)
	tab := simcounter.NewTable(k)
	tab.Incr(0, 1, 1)
	tab.Incr(0, 1, 2)
	assert.Equal(t, 3, tab.Get(0, 1))
	assert.Equal(t, 0, tab.Get(0, 0))
}

func TestTable_DecrToZeroCollapsesRow(t *testing.T) {
	k := fullKey(2, 1)
	tab := simcounter.NewTable(k)
	tab.Incr(0, 0, 1)
	got := tab.Decr(0, 0)
	assert.Equal(t, 0, got)
	assert.Equal(t, 0, tab.Get(0, 0))
}

func TestTable_CopyOnWrite(t *testing.T) {
	k := fullKey(3, 1)
	parent := simcounter.NewTable(k)
	parent.Incr(0, 0, 5)
	parent.Incr(0, 1, 3)

	child := simcounter.NewTable(k)
	child.CopyLabels([]int{0}, parent)

	require.Equal(t, 5, child.Get(0, 0))
	require.Equal(t, 3, child.Get(0, 1))

	// Mutating the child must not perturb the parent's shared row.
	child.Decr(0, 0)
	assert.Equal(t, 4, child.Get(0, 0))
	assert.Equal(t, 5, parent.Get(0, 0))
}

func TestTable_ReleaseSingletonsCollapsesUntouchedRows(t *testing.T) {
	k := fullKey(3, 1)
	tab := simcounter.NewTable(k)
	tab.Incr(0, 2, 7) // only one state ever incremented on this label

	tab.ReleaseSingletons()
	assert.Equal(t, 7, tab.Get(0, 2))

	// After collapse, decrementing the master-only column is still correct.
	assert.Equal(t, 6, tab.Decr(0, 2))
}

func TestTable_ReleaseSingletonsKeepsMultiColumnRows(t *testing.T) {
	k := fullKey(3, 1)
	tab := simcounter.NewTable(k)
	tab.Incr(0, 0, 2)
	tab.Incr(0, 1, 4)

	tab.ReleaseSingletons()
	assert.Equal(t, 2, tab.Get(0, 0))
	assert.Equal(t, 4, tab.Get(0, 1))

	// Both columns are independently decrementable: the array must have survived.
	assert.Equal(t, 1, tab.Decr(0, 0))
	assert.Equal(t, 4, tab.Get(0, 1))
}

func TestTable_CopyLabelsSharesRefcountAcrossTwoChildren(t *testing.T) {
	k := fullKey(3, 1)
	parent := simcounter.NewTable(k)
	parent.Incr(0, 0, 2)
	parent.Incr(0, 1, 2) // force an array allocation (two distinct columns)

	childA := simcounter.NewTable(k)
	childA.CopyLabels([]int{0}, parent)
	childB := simcounter.NewTable(k)
	childB.CopyLabels([]int{0}, parent)

	childA.Decr(0, 0)
	assert.Equal(t, 1, childA.Get(0, 0))
	assert.Equal(t, 2, childB.Get(0, 0), "childB's copy-on-write clone must be unaffected by childA's write")
	assert.Equal(t, 2, parent.Get(0, 0))
}
