package relation

import "errors"

// ErrIndexOutOfBounds indicates a Get/Set/Split index fell outside [0, Size()).
var ErrIndexOutOfBounds = errors.New("relation: index out of bounds")

// ErrNegativeSize indicates Resize was asked to shrink below the current size
// or to a negative dimension.
var ErrNegativeSize = errors.New("relation: size must not shrink or go negative")
