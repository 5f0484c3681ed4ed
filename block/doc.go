// Package block implements the partition side of the refinement engine: an
// intrusive, doubly-linked ring of state entries per Block, a tmp ring used
// as a split's staging area, and the Partition that owns the arena of
// entries and the growing vector of Blocks.
//
// A StateEntry is allocated once per state in an arena and never
// reallocated; moving a state between blocks (MoveToTmp) only relinks its
// neighbour pointers. This follows the reference implementation's
// StateListElem/OLRTBlock exactly (src/explicit_lts_sim.cc), expressed with
// Go struct pointers in place of raw C++ pointers.
package block
