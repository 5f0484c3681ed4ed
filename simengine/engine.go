package simengine

import (
	"fmt"

	"github.com/go-lts/simlts/block"
	"github.com/go-lts/simlts/lts"
	"github.com/go-lts/simlts/relation"
	"github.com/go-lts/simlts/simcounter"
	"github.com/go-lts/simlts/smartset"
)

// workItem is a pending (block, label) removal to process, grounded on
// OLRTAlgorithm's _queue of std::pair<AbstractBlock*, size_t> in
// explicit_lts_sim.cc.
type workItem struct {
	blk   *block.Block
	label int
}

// Engine runs the OLRT partition-refinement loop over a fixed LTS. Build one
// with newEngine, optionally seed blocks via MakeBlock, then call Init
// followed by Run.
type Engine struct {
	l         *lts.LTS
	partition *block.Partition
	rel       *relation.BinaryRelation
	key       *simcounter.Key
	delta1    []*smartset.SmartSet

	queue       []workItem
	removeCache [][]int // free list of remove-bag backing arrays, see rcAlloc/rcFree
}

// newEngine allocates an Engine over l with a fresh envelope block (id 0)
// containing every state. The caller may seed additional blocks via
// MakeBlock before calling Init.
func newEngine(l *lts.LTS) *Engine {
	key := simcounter.NewEmptyKey(l.Labels())
	return &Engine{
		l:         l,
		partition: block.New(l, key),
		key:       key,
	}
}

// MakeBlock carves states out of whichever block currently holds them into a
// new block with the given id (which must equal the partition's current
// size). Used by the driver to install a caller-supplied initial partition
// before Init.
func (e *Engine) MakeBlock(states []int, id int) *block.Block {
	return e.partition.MakeBlock(states, id, e.l, e.key)
}

// rcAlloc returns a zero-length remove-bag, reusing a freed backing array
// when one is available instead of allocating, mirroring the reference
// implementation's rcAlloc/rcFree free list.
func (e *Engine) rcAlloc() []int {
	if len(e.removeCache) == 0 {
		return nil
	}
	last := len(e.removeCache) - 1
	v := e.removeCache[last]
	e.removeCache = e.removeCache[:last]
	return v[:0]
}

// rcFree returns a remove-bag's backing array to the free list.
func (e *Engine) rcFree(v []int) {
	e.removeCache = append(e.removeCache, v)
}

// Init installs initialRelation as the engine's block-level quotient
// relation and computes the initial per-block counters and removal work
// queue, following explicit_lts_sim.cc's OLRTAlgorithm::init. initialRelation
// must be sized to the current number of blocks and must have a true
// diagonal (every block simulates itself); violations panic, since by the
// time Init runs these are invariants the driver is responsible for, not
// caller input to validate gracefully.
func (e *Engine) Init(initialRelation *relation.BinaryRelation) {
	if initialRelation.Size() != len(e.partition.Blocks) {
		panic(ErrRelationSizeMismatch)
	}
	for i := 0; i < initialRelation.Size(); i++ {
		if !initialRelation.Get(i, i) {
			panic(fmt.Errorf("simengine: initial relation cell (%d,%d) must be true", i, i))
		}
	}
	e.rel = initialRelation.Clone()

	// The counter/key domain must be the source set (states with an
	// outgoing a-edge): buildInitialCounters and decrAndMaybeEnqueue both
	// key Counter/Key.Column by predecessor states p with p —a→ q, which
	// only have assigned columns when p itself has an outgoing a-edge.
	delta1, _ := e.l.BuildDelta()
	e.key.Populate(e.l.States(), delta1)
	e.delta1 = delta1

	for a := 0; a < e.l.Labels(); a++ {
		e.fastSplit(delta1[a].Elements())
	}

	e.clearPreMismatches()
	e.buildInitialCounters()

	for _, blk := range e.partition.Blocks {
		blk.Counter.ReleaseSingletons()
	}
}

// clearPreMismatches clears R[B1][B2] for every pair of blocks where B1 has
// an outgoing edge on some label a that B2 does not. After fastSplit every
// block is homogeneous with respect to delta1 membership (either every state
// in the block has an outgoing a-edge, or none has), so one state decides it
// for the whole block; an empty block counts as having no outgoing edge. B2
// simulating B1 would require B2 to match B1's a-move, which it cannot.
func (e *Engine) clearPreMismatches() {
	hasOut := func(blk *block.Block, a int) bool {
		head := blk.States()
		return head != nil && e.delta1[a].Contains(head.State)
	}
	for a := 0; a < e.l.Labels(); a++ {
		var noPre []int
		for _, blk := range e.partition.Blocks {
			if !hasOut(blk, a) {
				noPre = append(noPre, blk.ID)
			}
		}
		for _, blk := range e.partition.Blocks {
			if !hasOut(blk, a) {
				continue
			}
			for _, b2 := range noPre {
				e.rel.Set(blk.ID, b2, false)
			}
		}
	}
}

// buildInitialCounters computes, for every block B and label a in B's inset,
// the initial counter B.Counter(a, q) = |{ r : q —a→ r, R[B][block(r)] }| for
// every q in delta1[a], and the initial remove[a] bag: the states of
// delta1[a] that have no a-successor lying in any block that simulates B. A
// non-empty bag is enqueued for processing by Run.
func (e *Engine) buildInitialCounters() {
	for _, blk := range e.partition.Blocks {
		for _, a := range blk.Inset.Elements() {
			for _, q := range e.delta1[a].Elements() {
				for _, r := range e.l.Post(lts.Label(a), lts.State(q)) {
					if e.rel.Get(blk.ID, e.partition.BlockOf(int(r)).ID) {
						blk.Counter.Incr(a, q, 1)
					}
				}
			}

			s := smartset.New(e.l.States())
			s.AssignFlat(e.delta1[a].Elements())
			for _, b2 := range e.partition.Blocks {
				if !e.rel.Get(blk.ID, b2.ID) {
					continue
				}
				var states []*block.StateEntry
				states = b2.StoreStates(states)
				for _, entry := range states {
					for _, p := range e.l.Pre(lts.Label(a), lts.State(entry.State)) {
						s.Remove(int(p))
					}
				}
			}

			if s.Empty() {
				continue
			}
			blk.Remove[a] = append(e.rcAlloc(), s.Elements()...)
			e.queue = append(e.queue, workItem{blk, a})
		}
	}
}

// Run drains the work queue, processing pending removals LIFO until none
// remain.
func (e *Engine) Run() {
	for len(e.queue) > 0 {
		last := len(e.queue) - 1
		item := e.queue[last]
		e.queue = e.queue[:last]
		e.processRemove(item.blk, item.label)
	}
}

// internalSplit moves every state named in remove into its own block's tmp
// ring and returns the distinct blocks touched, in first-touched order.
func (e *Engine) internalSplit(remove []int) []*block.Block {
	touched := make([]bool, len(e.partition.Blocks))
	var affected []*block.Block
	for _, q := range remove {
		entry := e.partition.Entry(q)
		blk := entry.Block
		blk.MoveToTmp(entry)
		if touched[blk.ID] {
			continue
		}
		touched[blk.ID] = true
		affected = append(affected, blk)
	}
	return affected
}

// fastSplit applies internalSplit and, for every affected block that was not
// wholly moved, promotes the moved states into a new sibling block — without
// transferring counters, remove bags or enqueuing anything. Used during Init
// to make every block homogeneous with respect to each delta1[a] in turn,
// before any counter exists to transfer.
func (e *Engine) fastSplit(remove []int) {
	for _, blk := range e.internalSplit(remove) {
		if blk.CheckEmpty() {
			continue
		}
		e.rel.Split(blk.ID, true)
		e.partition.NewChild(blk, e.l, e.key)
	}
}

// split applies internalSplit and, for every affected block, either reports
// it unchanged (if wholly moved) or creates a child block that inherits the
// parent's counter rows (shared, copy-on-write) for every label in the
// child's inset, along with copies of the parent's pending remove bags for
// those labels, each copy re-enqueued. It returns, for every affected block,
// the block that now holds the moved states (the parent itself if wholly
// moved, otherwise the new child) — the set processRemove must compare
// predecessor blocks against.
func (e *Engine) split(remove []int) []*block.Block {
	var removeList []*block.Block
	for _, blk := range e.internalSplit(remove) {
		if blk.CheckEmpty() {
			removeList = append(removeList, blk)
			continue
		}

		e.rel.Split(blk.ID, true)
		child := e.partition.NewChild(blk, e.l, e.key)
		removeList = append(removeList, child)

		labels := child.Inset.Elements()
		child.Counter.CopyLabels(labels, blk.Counter)
		for _, a := range labels {
			if blk.Remove[a] == nil {
				continue
			}
			child.Remove[a] = append(e.rcAlloc(), blk.Remove[a]...)
			e.queue = append(e.queue, workItem{child, a})
		}
	}
	return removeList
}

// processRemove handles one (block, label) work item: it splits the states
// in block's pending label-a removal bag (those whose label-a counter in
// block reached zero) out of the blocks that hold them, then for every
// predecessor of the states block used to hold, decrements the counters of
// whichever block relation cells just became false, propagating further
// removals when a counter reaches zero.
func (e *Engine) processRemove(blk *block.Block, label int) {
	remove := blk.Remove[label]
	blk.Remove[label] = nil

	var snapshot []*block.StateEntry
	snapshot = blk.StoreStates(snapshot)

	removeList := e.split(remove)
	e.rcFree(remove)

	touched := make([]bool, len(e.partition.Blocks))
	for _, entry := range snapshot {
		for _, p := range e.l.Pre(lts.Label(label), lts.State(entry.State)) {
			b1 := e.partition.BlockOf(int(p))
			if touched[b1.ID] {
				continue
			}
			touched[b1.ID] = true
			e.processPredecessor(b1, removeList)
		}
	}
}

// processPredecessor clears b1's relation to every block in removeList that
// still simulates it, and for every shared label decrements b1's counter for
// each a-predecessor of the states removeList block now holds, re-enqueuing
// b1 on that label when a counter reaches zero.
func (e *Engine) processPredecessor(b1 *block.Block, removeList []*block.Block) {
	for _, b2 := range removeList {
		if !e.rel.Get(b1.ID, b2.ID) {
			continue
		}
		e.rel.Set(b1.ID, b2.ID, false)

		var b2States []*block.StateEntry
		b2States = b2.StoreStates(b2States)
		for _, a := range b2.Inset.Elements() {
			if !b1.Inset.Contains(a) {
				continue
			}
			for _, entry := range b2States {
				for _, p := range e.l.Pre(lts.Label(a), lts.State(entry.State)) {
					e.decrAndMaybeEnqueue(b1, a, int(p))
				}
			}
		}
	}
}

// decrAndMaybeEnqueue decrements b1's label-a counter for predecessor p and,
// if that was the last simulator, appends p to b1.Remove[a], enqueuing
// (b1, a) the first time the bag goes from empty to non-empty.
func (e *Engine) decrAndMaybeEnqueue(b1 *block.Block, a, p int) {
	if b1.Counter.Decr(a, p) != 0 {
		return
	}
	if b1.Remove[a] == nil {
		b1.Remove[a] = e.rcAlloc()
		e.queue = append(e.queue, workItem{b1, a})
	}
	b1.Remove[a] = append(b1.Remove[a], p)
}

// BuildResult extracts the n×n state-level simulation relation from the
// block-level quotient relation: out[i][j] iff block(i) is currently
// simulated by block(j).
func (e *Engine) BuildResult(n int) *relation.BinaryRelation {
	out := relation.New(n, false)
	for i := 0; i < n; i++ {
		bi := e.partition.BlockOf(i).ID
		for j := 0; j < n; j++ {
			bj := e.partition.BlockOf(j).ID
			out.Set(i, j, e.rel.Get(bi, bj))
		}
	}
	return out
}
