package smartset

import "errors"

// ErrOutOfRange indicates that an element fell outside the set's universe
// [0, N), which the constructor fixes for the lifetime of the SmartSet.
var ErrOutOfRange = errors.New("smartset: element out of range")

// ErrNotPresent indicates that RemoveStrict was called for an element with
// zero multiplicity in the set.
var ErrNotPresent = errors.New("smartset: element not present")
