package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lts/simlts/block"
	"github.com/go-lts/simlts/lts"
	"github.com/go-lts/simlts/simcounter"
)

func chain3(t *testing.T) *lts.LTS {
	t.Helper()
	b := lts.NewBuilder(3, 1)
	require.NoError(t, b.AddTransition(0, 0, 1))
	require.NoError(t, b.AddTransition(1, 0, 2))
	return b.Build()
}

func keyFor(t *testing.T, l *lts.LTS) *simcounter.Key {
	t.Helper()
	_, delta1 := l.BuildDelta()
	return simcounter.BuildKey(l.States(), delta1)
}

func statesOf(entries []*block.StateEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.State
	}
	return out
}

func TestNew_SingleEnvelopeContainsAllStates(t *testing.T) {
	l := chain3(t)
	p := block.New(l, keyFor(t, l))
	require.Len(t, p.Blocks, 1)

	var out []*block.StateEntry
	out = p.Blocks[0].StoreStates(out)
	assert.ElementsMatch(t, []int{0, 1, 2}, statesOf(out))

	// State 1 and 2 each have one incoming label; state 0 has none.
	assert.True(t, p.Blocks[0].Inset.Contains(0))
}

func TestNew_EmptyLTS(t *testing.T) {
	b := lts.NewBuilder(0, 0)
	l := b.Build()
	p := block.New(l, simcounter.BuildKey(0, nil))
	assert.Len(t, p.Blocks, 1)
	assert.Nil(t, p.Blocks[0].States())
}

func TestMakeBlock_SplitsOutNamedStates(t *testing.T) {
	l := chain3(t)
	p := block.New(l, keyFor(t, l))

	child := p.MakeBlock([]int{2}, 1, l, keyFor(t, l))
	require.Len(t, p.Blocks, 2)
	assert.Equal(t, 1, child.ID)

	var childStates []*block.StateEntry
	childStates = child.StoreStates(childStates)
	assert.Equal(t, []int{2}, statesOf(childStates))

	var parentStates []*block.StateEntry
	parentStates = p.Blocks[0].StoreStates(parentStates)
	assert.ElementsMatch(t, []int{0, 1}, statesOf(parentStates))

	assert.Equal(t, child, p.BlockOf(2))
	assert.Equal(t, p.Blocks[0], p.BlockOf(0))
}

func TestMakeBlock_WrongIDPanics(t *testing.T) {
	l := chain3(t)
	p := block.New(l, keyFor(t, l))
	assert.Panics(t, func() { p.MakeBlock([]int{2}, 5, l, keyFor(t, l)) })
}

func TestMoveToTmpAndCheckEmpty_WholeBlockMoved(t *testing.T) {
	l := chain3(t)
	p := block.New(l, keyFor(t, l))
	envelope := p.Blocks[0]

	for _, q := range []int{0, 1, 2} {
		envelope.MoveToTmp(p.Entry(q))
	}
	assert.Nil(t, envelope.States())
	promoted := envelope.CheckEmpty()
	assert.True(t, promoted)
	assert.NotNil(t, envelope.States())
}
