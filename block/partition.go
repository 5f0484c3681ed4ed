package block

import (
	"fmt"

	"github.com/go-lts/simlts/lts"
	"github.com/go-lts/simlts/simcounter"
)

// Partition owns the state-entry arena and the append-only vector of
// Blocks. Block ids are assigned in creation order and never reused.
type Partition struct {
	Blocks  []*Block
	entries []StateEntry
}

// New builds a Partition over l with a single enveloping block (id 0)
// containing every state, ring-linked in state-id order. The envelope's
// inset is the union, over every state, of that state's backward labels —
// every label with at least one edge anywhere in the LTS.
func New(l *lts.LTS, key *simcounter.Key) *Partition {
	n := l.States()
	p := &Partition{entries: make([]StateEntry, n)}
	if n == 0 {
		p.Blocks = append(p.Blocks, newBlock(0, key, l.Labels()))
		return p
	}

	for i := 0; i < n; i++ {
		p.entries[i].State = i
		p.entries[i].next = &p.entries[(i+1)%n]
		p.entries[i].prev = &p.entries[(i-1+n)%n]
	}

	envelope := newBlock(0, key, l.Labels())
	envelope.states = &p.entries[0]
	for i := 0; i < n; i++ {
		p.entries[i].Block = envelope
		for _, a := range l.BwLabels(lts.State(i)) {
			envelope.Inset.Add(int(a))
		}
	}
	p.Blocks = append(p.Blocks, envelope)

	return p
}

// Entry returns the arena slot for state q.
func (p *Partition) Entry(q int) *StateEntry {
	return &p.entries[q]
}

// BlockOf returns the block state q currently belongs to.
func (p *Partition) BlockOf(q int) *Block {
	return p.entries[q].Block
}

// NewChild allocates a child block for the states currently parked in
// parent.tmp, assigns it the next id (the partition's current size),
// claims parent.tmp as its own state ring, and transfers inset
// membership: every backward label of a moved state is removed from
// parent's inset and added to the child's. The child's counter table starts
// out empty; the caller (simengine, during split) populates it via
// Counter.CopyLabels.
func (p *Partition) NewChild(parent *Block, l *lts.LTS, key *simcounter.Key) *Block {
	if parent.tmp == nil {
		panic(ErrEmptySeed)
	}

	child := newBlock(len(p.Blocks), key, l.Labels())
	child.states = parent.tmp
	parent.tmp = nil

	transferInset(child.states, l, parent, child)
	p.Blocks = append(p.Blocks, child)

	return child
}

// MakeBlock seeds the partition with an explicit block: it moves the named
// states (which must all currently belong to the same block) into a new
// ring and allocates a block with the given id, which must equal the
// partition's current size. Used by the driver to install a caller-supplied
// initial partition (final states, environment groups) before Init runs.
func (p *Partition) MakeBlock(states []int, id int, l *lts.LTS, key *simcounter.Key) *Block {
	if len(states) == 0 {
		panic(fmt.Errorf("block: MakeBlock requires at least one state"))
	}
	if id != len(p.Blocks) {
		panic(fmt.Errorf("%w: got %d, want %d", ErrBadBlockID, id, len(p.Blocks)))
	}
	parent := p.entries[states[0]].Block
	for _, q := range states {
		e := &p.entries[q]
		if e.Block != parent {
			panic(fmt.Errorf("block: MakeBlock states span multiple blocks"))
		}
		parent.MoveToTmp(e)
	}

	// Unlike fastSplit/split, MakeBlock always wants a distinctly-id'd new
	// block for the seeded states, even when parent lost every one of its
	// remaining states to the move: it must not call parent.CheckEmpty and
	// fold those states back into parent under parent's own id.
	return p.NewChild(parent, l, key)
}
