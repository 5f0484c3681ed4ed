package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lts/simlts/relation"
)

func TestNew_IdentityFill(t *testing.T) {
	r := relation.New(3, true)
	require.Equal(t, 3, r.Size())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.True(t, r.Get(i, j))
		}
	}
}

func TestResize_GrowsWithDefault(t *testing.T) {
	r := relation.New(2, false)
	r.Set(0, 1, true)
	r.Resize(4)
	require.Equal(t, 4, r.Size())
	assert.True(t, r.Get(0, 1))
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == 0 && j == 1 {
				continue
			}
			assert.False(t, r.Get(i, j))
		}
	}
}

func TestResize_PanicsOnShrink(t *testing.T) {
	r := relation.New(3, false)
	assert.Panics(t, func() { r.Resize(2) })
}

func TestSplit_DuplicatesRowAndColumn(t *testing.T) {
	r := relation.New(2, false)
	r.Set(0, 0, true)
	r.Set(1, 1, true)
	r.Set(0, 1, true)

	newID := r.Split(0, true)
	require.Equal(t, 2, newID)
	require.Equal(t, 3, r.Size())

	assert.True(t, r.Get(newID, newID), "reflexive forces the new diagonal cell true")
	assert.True(t, r.Get(newID, 1), "new row duplicates row 0")
	assert.False(t, r.Get(1, newID), "new column duplicates column 0's relation from row 1, where (1,0) is false")
}

func TestSplit_NonReflexive(t *testing.T) {
	r := relation.New(1, false)
	r.Set(0, 0, true)
	newID := r.Split(0, false)
	assert.False(t, r.Get(newID, newID))
}

func TestGetSet_OutOfBoundsPanics(t *testing.T) {
	r := relation.New(2, false)
	assert.Panics(t, func() { r.Get(2, 0) })
	assert.Panics(t, func() { r.Set(0, -1, true) })
}

func TestClone_Independent(t *testing.T) {
	r := relation.New(2, true)
	c := r.Clone()
	c.Set(0, 1, false)
	assert.True(t, r.Get(0, 1))
	assert.False(t, c.Get(0, 1))
}
