package simengine

import (
	"fmt"

	"github.com/go-lts/simlts/lts"
	"github.com/go-lts/simlts/relation"
)

// ComputeSimulation computes the simulation preorder over the whole of l,
// starting from the coarsest possible partition (every state in one block).
// outputSize must be in [0, l.States()]; the result is an outputSize x
// outputSize relation over state ids [0, outputSize).
func ComputeSimulation(l *lts.LTS, outputSize int) (*relation.BinaryRelation, error) {
	if l == nil {
		return nil, ErrNilLTS
	}
	if outputSize < 0 || outputSize > l.States() {
		return nil, ErrOutputSizeOutOfRange
	}
	if l.States() == 0 {
		return relation.New(outputSize, false), nil
	}

	e := newEngine(l)
	e.Init(relation.New(1, true))
	e.Run()
	return e.BuildResult(outputSize), nil
}

// ComputeSimulationSeeded computes the simulation preorder starting from a
// caller-supplied initial partition instead of the coarsest one: partition
// is a set of pairwise-disjoint, non-empty groups of non-final states, and
// finalStates a non-empty set disjoint from every group. Neither is required
// to cover every state — any state left out stays in the default envelope
// block. initialRelation seeds the block-level relation over the resulting
// 2+len(partition) blocks (block 0 is the envelope, block 1 is finalStates,
// blocks 2.. are partition[0], partition[1], ...); it must be square of that
// size with a true diagonal.
func ComputeSimulationSeeded(
	l *lts.LTS,
	outputSize int,
	partition [][]int,
	finalStates []int,
	initialRelation *relation.BinaryRelation,
) (*relation.BinaryRelation, error) {
	if l == nil {
		return nil, ErrNilLTS
	}
	if outputSize < 0 || outputSize > l.States() {
		return nil, ErrOutputSizeOutOfRange
	}
	if l.States() == 0 {
		return relation.New(outputSize, false), nil
	}
	if len(finalStates) == 0 {
		return nil, ErrEmptyFinalStates
	}
	for _, grp := range partition {
		if len(grp) == 0 {
			return nil, ErrEmptyPartitionGroup
		}
	}
	if err := validateSeedPartition(l.States(), partition, finalStates); err != nil {
		return nil, err
	}
	if want := 2 + len(partition); initialRelation.Size() != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRelationSizeMismatch, initialRelation.Size(), want)
	}

	e := newEngine(l)
	e.MakeBlock(finalStates, 1)
	for i, grp := range partition {
		e.MakeBlock(grp, i+2)
	}
	e.Init(initialRelation)
	e.Run()
	return e.BuildResult(outputSize), nil
}

// validateSeedPartition reports ErrPartitionOutOfRange if any state id named
// by finalStates or partition falls outside [0, numStates), and
// ErrPartitionOverlap if any state id is named more than once across
// finalStates and the partition groups.
func validateSeedPartition(numStates int, partition [][]int, finalStates []int) error {
	assigned := make([]bool, numStates)
	mark := func(q int) error {
		if q < 0 || q >= numStates {
			return fmt.Errorf("%w: state %d", ErrPartitionOutOfRange, q)
		}
		if assigned[q] {
			return fmt.Errorf("%w: state %d", ErrPartitionOverlap, q)
		}
		assigned[q] = true
		return nil
	}
	for _, q := range finalStates {
		if err := mark(q); err != nil {
			return err
		}
	}
	for _, grp := range partition {
		for _, q := range grp {
			if err := mark(q); err != nil {
				return err
			}
		}
	}
	return nil
}
