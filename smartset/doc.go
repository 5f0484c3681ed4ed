// Package smartset implements a sparse multiset of dense integers in
// [0, N), used by the simulation engine to track label insets and pending
// removal bags without paying for a general-purpose map.
//
// A SmartSet stores, for every possible element, a multiplicity and a
// position in a flat enumeration slice. Add, Remove, RemoveStrict and
// Contains are all O(1); only AssignFlat, which rebuilds the set from an
// arbitrary input slice, is O(len(input)).
package smartset
