// Package simlts computes the simulation preorder of a finite labelled
// transition system via OLRT-style partition refinement.
//
// Build an LTS with lts.Builder, then call simengine.ComputeSimulation (or
// simengine.ComputeSimulationSeeded to start from a caller-supplied initial
// partition) to get back a relation.BinaryRelation over state ids, where
// cell (i, j) is true iff state i is simulated by state j.
//
// Subpackages:
//
//	smartset/   — sparse integer multiset, the building block for insets,
//	              delta/delta1 sets and initial removal-bag computation
//	relation/   — dense n×n boolean matrix with the split operation blocks
//	              use when they divide in two
//	lts/        — the transition system itself: states, labels, post/pre,
//	              backward-label lookup, delta/delta1 construction
//	simcounter/ — copy-on-write, reference-counted per-block counter rows
//	block/      — the partition: intrusive doubly-linked state rings,
//	              per-block inset and pending-removal bookkeeping
//	simengine/  — the refinement engine and the public driver functions
//
//	go get github.com/go-lts/simlts
package simlts
