package lts

import (
	"fmt"

	"github.com/go-lts/simlts/smartset"
)

// State is a dense state identifier in [0, LTS.States()).
type State int

// Label is a dense label identifier in [0, LTS.Labels()).
type Label int

// LTS is an immutable labelled transition system (Q, Σ, Δ). Build one with
// a Builder; every accessor below is a read-only O(1) or O(degree) lookup
// into slices populated at Build time.
type LTS struct {
	numStates int
	numLabels int
	post      [][][]State // post[a][q]
	pre       [][][]State // pre[a][q]
	bw        [][]Label   // bw[q], sorted ascending, deduplicated
}

// States returns |Q|, the number of states.
func (l *LTS) States() int { return l.numStates }

// Labels returns |Σ|, the number of labels.
func (l *LTS) Labels() int { return l.numLabels }

// Post returns the successors of q on label a: all q' with q —a→ q'.
// The returned slice is owned by the LTS and must not be mutated.
func (l *LTS) Post(a Label, q State) []State {
	return l.post[a][q]
}

// Pre returns the predecessors of q on label a: all p with p —a→ q.
// The returned slice is owned by the LTS and must not be mutated.
func (l *LTS) Pre(a Label, q State) []State {
	return l.pre[a][q]
}

// BwLabels returns the sorted, deduplicated set of labels a such that some
// edge —a→ q exists.
func (l *LTS) BwLabels(q State) []Label {
	return l.bw[q]
}

// BuildDelta computes, for every label a, the set of states with at least
// one outgoing a-edge (delta[a], the sources) and the set of states with at
// least one incoming a-edge (delta1[a], the targets), each as a SmartSet
// over the state universe [0, States()).
func (l *LTS) BuildDelta() (delta, delta1 []*smartset.SmartSet) {
	delta = make([]*smartset.SmartSet, l.numLabels)
	delta1 = make([]*smartset.SmartSet, l.numLabels)
	for a := 0; a < l.numLabels; a++ {
		delta[a] = smartset.New(l.numStates)
		delta1[a] = smartset.New(l.numStates)
		for q := 0; q < l.numStates; q++ {
			if len(l.post[a][q]) > 0 {
				delta[a].Add(q)
			}
			if len(l.pre[a][q]) > 0 {
				delta1[a].Add(q)
			}
		}
	}
	return delta, delta1
}

// Builder accumulates (from, label, to) transitions and produces an
// immutable LTS via Build.
type Builder struct {
	numStates int
	numLabels int
	post      [][][]State
	pre       [][][]State
	bwSeen    [][]bool
}

// NewBuilder creates a Builder for an LTS with numStates states and
// numLabels labels, initially with no transitions.
func NewBuilder(numStates, numLabels int) *Builder {
	if numStates < 0 || numLabels < 0 {
		panic(ErrNegativeSize)
	}
	b := &Builder{numStates: numStates, numLabels: numLabels}
	b.post = make([][][]State, numLabels)
	b.pre = make([][][]State, numLabels)
	b.bwSeen = make([][]bool, numStates)
	for a := 0; a < numLabels; a++ {
		b.post[a] = make([][]State, numStates)
		b.pre[a] = make([][]State, numStates)
	}
	for q := 0; q < numStates; q++ {
		b.bwSeen[q] = make([]bool, numLabels)
	}
	return b
}

// AddTransition records an edge from —a→ to. Returns ErrStateOutOfRange or
// ErrLabelOutOfRange if any component is out of range; duplicate
// transitions are accepted and simply appear twice in Post/Pre (the engine
// treats multi-edges with multiplicity, see simengine).
func (b *Builder) AddTransition(from State, a Label, to State) error {
	if from < 0 || int(from) >= b.numStates || to < 0 || int(to) >= b.numStates {
		return fmt.Errorf("lts: AddTransition(%d,%d,%d): %w", from, a, to, ErrStateOutOfRange)
	}
	if a < 0 || int(a) >= b.numLabels {
		return fmt.Errorf("lts: AddTransition(%d,%d,%d): %w", from, a, to, ErrLabelOutOfRange)
	}
	b.post[a][from] = append(b.post[a][from], to)
	b.pre[a][to] = append(b.pre[a][to], from)
	b.bwSeen[to][a] = true

	return nil
}

// Build finalises the Builder into an immutable LTS.
func (b *Builder) Build() *LTS {
	bw := make([][]Label, b.numStates)
	for q := 0; q < b.numStates; q++ {
		for a := 0; a < b.numLabels; a++ {
			if b.bwSeen[q][a] {
				bw[q] = append(bw[q], Label(a))
			}
		}
	}
	return &LTS{
		numStates: b.numStates,
		numLabels: b.numLabels,
		post:      b.post,
		pre:       b.pre,
		bw:        bw,
	}
}
