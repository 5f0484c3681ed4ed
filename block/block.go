package block

import (
	"github.com/go-lts/simlts/lts"
	"github.com/go-lts/simlts/simcounter"
	"github.com/go-lts/simlts/smartset"
)

// Block is an equivalence class of the current partition: a ring of
// StateEntry (states), an auxiliary ring used only while a split is in
// progress (tmp), a per-label counter table, the set of labels on which
// some state of the block has an incoming edge (Inset), and a pending
// removal bag per label (Remove).
type Block struct {
	ID      int
	states  *StateEntry
	tmp     *StateEntry
	Counter *simcounter.Table
	Inset   *smartset.SmartSet
	Remove  [][]int // Remove[a] == nil means "nothing pending for label a"
}

// newBlock allocates a Block shell with id, an empty counter table, an
// empty inset and an empty Remove slot per label. Callers populate states,
// tmp, Counter and Inset afterwards.
func newBlock(id int, key *simcounter.Key, numLabels int) *Block {
	return &Block{
		ID:      id,
		Counter: simcounter.NewTable(key),
		Inset:   smartset.New(numLabels),
		Remove:  make([][]int, numLabels),
	}
}

// States returns the head of the block's state ring, or nil if empty.
func (b *Block) States() *StateEntry { return b.states }

// MoveToTmp unlinks e from b's states ring and links it into b's tmp ring.
// e must currently belong to b's states ring.
func (b *Block) MoveToTmp(e *StateEntry) {
	e.move(&b.states, &b.tmp)
}

// CheckEmpty promotes tmp to states if states became nil (every state in
// the block was moved out by MoveToTmp calls since the last split), and
// reports whether that promotion happened. When it returns true the block
// was wholly moved and does not need to be split.
func (b *Block) CheckEmpty() bool {
	if b.states != nil {
		return false
	}
	b.states = b.tmp
	b.tmp = nil
	return true
}

// StoreStates appends the block's state entries, in ring order, to out and
// returns the extended slice.
func (b *Block) StoreStates(out []*StateEntry) []*StateEntry {
	if b.states == nil {
		return out
	}
	e := b.states
	for {
		out = append(out, e)
		e = e.next
		if e == b.states {
			break
		}
	}
	return out
}

// transferInset scans the ring starting at head (forward), repoints every
// entry's Block at receiver, and for every state's backward labels, removes the label from donor's inset (it must
// have been present, since donor held this state until now) and adds it to
// receiver's inset.
func transferInset(head *StateEntry, l *lts.LTS, donor, receiver *Block) {
	e := head
	for {
		for _, a := range l.BwLabels(lts.State(e.State)) {
			donor.Inset.RemoveStrict(int(a))
			receiver.Inset.Add(int(a))
		}
		e.Block = receiver
		e = e.next
		if e == head {
			break
		}
	}
}
