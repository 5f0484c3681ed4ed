package block

import "errors"

// ErrBadBlockID indicates a new Block was constructed with an id that does
// not match the partition's next free index — a programmer error, since ids
// are assigned by the Partition itself and never reused.
var ErrBadBlockID = errors.New("block: id does not match next partition index")

// ErrEmptySeed indicates NewChild was called on a parent whose tmp ring is
// empty, leaving no moved states to build the new block from.
var ErrEmptySeed = errors.New("block: no moved states to build a child block from")
