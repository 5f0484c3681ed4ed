// Package relation implements BinaryRelation, a dense square boolean matrix
// used by simengine to represent the simulation preorder at the level of
// partition blocks.
//
// BinaryRelation supports in-place growth (Resize) and the one operation the
// refinement engine needs beyond plain Get/Set: Split, which appends a new
// row and column that start out as a duplicate of an existing row/column —
// the matrix-level counterpart of splitting a block in two.
package relation
