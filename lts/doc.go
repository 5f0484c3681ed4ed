// Package lts provides an immutable, read-only view of a finite labelled
// transition system: a dense state set, a dense label alphabet, and a
// transition relation exposed as per-label forward (post) and backward
// (pre) neighbour lists.
//
// An LTS is built once via Builder and never mutated afterwards; simengine
// only ever reads through Pre, Post, BwLabels and BuildDelta. Construction
// of an LTS from higher-level automata (tree automata, BDD-encoded
// automata) is out of scope here — a Builder just accepts raw
// (from, label, to) triples, the way a caller that already parsed or
// synthesised an automaton would feed them in.
package lts
