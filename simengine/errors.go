package simengine

import "errors"

// Sentinel errors returned by the public driver entry points. All of them
// are caller-input problems, detected before the engine starts running —
// structural violations discovered mid-algorithm are programmer errors and
// panic instead, per the packages they originate in.
var (
	// ErrNilLTS is returned when the LTS argument is nil.
	ErrNilLTS = errors.New("simengine: lts must not be nil")

	// ErrOutputSizeOutOfRange is returned when outputSize is negative or
	// exceeds the LTS's state count.
	ErrOutputSizeOutOfRange = errors.New("simengine: output size out of range")

	// ErrPartitionOutOfRange is returned when a seeded partition or
	// final-states entry names a state id outside [0, states).
	ErrPartitionOutOfRange = errors.New("simengine: partition state id out of range")

	// ErrPartitionOverlap is returned when a state id appears in more than
	// one of the seeded partition groups, or in both a group and the
	// final-states set.
	ErrPartitionOverlap = errors.New("simengine: partition groups overlap")

	// ErrEmptyFinalStates is returned when the caller-supplied final-states
	// set is empty; the engine always needs at least one final state to
	// seed block 1.
	ErrEmptyFinalStates = errors.New("simengine: final states must not be empty")

	// ErrEmptyPartitionGroup is returned when a seeded partition contains an
	// empty group.
	ErrEmptyPartitionGroup = errors.New("simengine: partition group must not be empty")

	// ErrRelationSizeMismatch is returned when the caller-supplied initial
	// relation is not sized to the number of seeded blocks (2 + len(partition)).
	ErrRelationSizeMismatch = errors.New("simengine: initial relation size does not match seeded block count")
)
