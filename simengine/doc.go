// Package simengine implements the OLRT-style partition-refinement engine
// that computes the simulation preorder of a finite labelled transition
// system, and the two public entry points that assemble it.
//
// The engine follows src/explicit_lts_sim.cc (the VATA library's
// OLRTAlgorithm) control flow exactly: Init seeds per-block counters and
// the removal work queue by scanning transitions once per label, then Run
// drains the queue, each processRemove call splitting blocks that lost
// their last simulator on some label and propagating the consequences to
// predecessor blocks. See DESIGN.md for the handful of deliberate departures
// from a literal C++ port (all behaviour-preserving): returning values
// instead of writing through out-parameters, and deciding each block's
// outgoing labels during Init from a single state of the block instead of
// re-scanning every state.
package simengine
