// Package simcounter implements the per-block, per-label counter table that
// is the performance-critical heart of the refinement engine.
//
// Conceptually, for a block B and label a, the table maps each state q with
// an outgoing a-edge to the number of q's a-successors currently lying in a
// block that simulates B. Rows are addressed by a compact (label,
// state-index) key (see Key); each row lives either in a
// scalar master count (every column implicitly equal, i.e. the typical case
// right after init where nothing has been decremented yet diverges per
// state) or in a reference-counted, copy-on-write array shared across every
// block that inherited the row unchanged from a common ancestor.
//
// This mirrors the VATA reference implementation's SharedCounter
// (include/vata/util/shared_counter.hh) at the level of externally
// observable behaviour: Get/Incr/Decr/CopyLabels/ReleaseSingletons have the
// same master/array/refcount semantics, adapted from a single global
// bucket-packed array to one Go slice-backed row per label — see
// SPEC_FULL.md §6 for why the bucket packing itself is not ported.
package simcounter
