package simcounter

import "github.com/go-lts/simlts/smartset"

// Key assigns every (label, state) pair with state ∈ delta1[label] a dense
// column index in [0, RowSize(label)), shared by every block's Table so
// that rows can be compared and shared across blocks without re-keying.
//
// A Key is constructed empty (NewEmptyKey) and filled in once by Populate.
// The two-phase construction matters: Blocks (and their Tables) are created
// before delta1 is known — the engine's envelope block, and any
// caller-seeded blocks installed via block.Partition.MakeBlock, all exist
// before Init computes delta1 — so every Table holds a pointer to the same
// Key and only starts reading RowSize/Column once Populate has run. This is
// the Go equivalent of the reference implementation's Counter holding a
// `const std::vector<...>&` to a key/range pair that init() resizes later.
type Key struct {
	numLabels int
	column    [][]int // column[a][q], valid only where q ∈ delta1[a], set by Populate
	rowSize   []int   // rowSize[a] == |delta1[a]|, set by Populate
}

// NewEmptyKey allocates a Key sized for numLabels labels with every row
// width zero; no Table may call Incr/Decr against it until Populate runs.
func NewEmptyKey(numLabels int) *Key {
	return &Key{
		numLabels: numLabels,
		column:    make([][]int, numLabels),
		rowSize:   make([]int, numLabels),
	}
}

// Populate assigns dense column indices to every (label, state) pair with
// state in delta1[label], in ascending state order, the way spec.md §4.6.1
// step 3 describes: "for each label a, compute a dense key[a][q] ...
// range[a] = |delta1[a]|". It may only be called once.
func (k *Key) Populate(numStates int, delta1 []*smartset.SmartSet) {
	for a := 0; a < k.numLabels; a++ {
		k.column[a] = make([]int, numStates)
		k.rowSize[a] = delta1[a].Size()
		x := 0
		for q := 0; q < numStates; q++ {
			if delta1[a].Contains(q) {
				k.column[a][q] = x
				x++
			}
		}
	}
}

// BuildKey is a convenience constructor that allocates and immediately
// populates a Key in one call, for callers that already have delta1 on hand
// (tests, and anywhere outside the two-phase engine lifecycle).
func BuildKey(numStates int, delta1 []*smartset.SmartSet) *Key {
	k := NewEmptyKey(len(delta1))
	k.Populate(numStates, delta1)
	return k
}

// Column returns the column index assigned to state q under label a. The
// result is meaningful only when q ∈ delta1[a]; callers must not query it
// otherwise.
func (k *Key) Column(a, q int) int {
	return k.column[a][q]
}

// RowSize returns |delta1[a]|, the width of label a's counter row.
func (k *Key) RowSize(a int) int {
	return k.rowSize[a]
}

// Labels returns the number of labels the key was built over.
func (k *Key) Labels() int {
	return k.numLabels
}
