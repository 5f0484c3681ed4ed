package lts

import "errors"

// ErrNegativeSize indicates NewBuilder was asked for a negative number of
// states or labels.
var ErrNegativeSize = errors.New("lts: states and labels must be non-negative")

// ErrStateOutOfRange indicates a transition endpoint fell outside
// [0, numStates).
var ErrStateOutOfRange = errors.New("lts: state out of range")

// ErrLabelOutOfRange indicates a transition label fell outside
// [0, numLabels).
var ErrLabelOutOfRange = errors.New("lts: label out of range")
