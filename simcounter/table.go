package simcounter

// sharedArray is a reference-counted, per-column counter array. Multiple
// Tables (one per Block) may point at the same sharedArray after a split
// inherits a row unchanged; a write first clones if the refcount is above
// one.
type sharedArray struct {
	data     []int
	refCount int
}

// row is one label's counter row. When array is nil, every column's true
// value equals master (the row is still entirely undifferentiated); once a
// column has been decremented away from the others, array holds the
// per-column counts and master holds their sum.
type row struct {
	master int
	array  *sharedArray
}

// Table is the per-block counter table, keyed by a Key shared across every
// Table the same engine run produces.
type Table struct {
	key  *Key
	rows []row
}

// NewTable constructs an empty Table (all counters zero) keyed by k.
func NewTable(k *Key) *Table {
	return &Table{key: k, rows: make([]row, k.Labels())}
}

// Get returns the current counter value for label a, state q.
func (t *Table) Get(a, q int) int {
	r := &t.rows[a]
	if r.array == nil {
		return r.master
	}
	return r.array.data[t.key.Column(a, q)]
}

// Incr increases the counter at (a, q) by k. If the row was untouched since
// the last collapse, a fresh array is allocated with refcount 1.
func (t *Table) Incr(a, q, k int) {
	r := &t.rows[a]
	col := t.key.Column(a, q)
	if r.array != nil {
		r.master += k
		r.array.data[col] += k
		return
	}
	r.master = k
	r.array = &sharedArray{data: make([]int, t.key.RowSize(a)), refCount: 1}
	r.array.data[col] = k
}

// Decr decreases the counter at (a, q) by one and returns the resulting
// value. If the row was shared (refcount > 1) it is cloned first so the
// mutation is never visible to sibling blocks (copy-on-write). If the
// decrement leaves all remaining mass in a single column, the row collapses
// back to scalar-only form and the backing array is released.
func (t *Table) Decr(a, q int) int {
	r := &t.rows[a]
	col := t.key.Column(a, q)

	if r.array == nil {
		// Everything is in master: no array was ever needed.
		r.master--
		return r.master
	}

	if r.array.data[col] == r.master || r.master == 2 {
		// All remaining mass collapses into a single column: drop the array.
		r.master--
		result := r.array.data[col] - 1
		t.release(r)
		return result
	}

	if r.array.refCount > 1 {
		cloned := &sharedArray{data: append([]int(nil), r.array.data...), refCount: 1}
		r.array.refCount--
		r.array = cloned
	}

	r.master--
	r.array.data[col]--
	return r.array.data[col]
}

func (t *Table) release(r *row) {
	r.array.refCount--
	r.array = nil
}

// CopyLabels shares rows from src for every label in labels by incrementing
// the shared array's refcount (scalar-only rows are copied by value, no
// allocation needed). Used when a block is split: the child initially
// shares rows with the parent for every label in its inset.
func (t *Table) CopyLabels(labels []int, src *Table) {
	for _, a := range labels {
		sr := &src.rows[a]
		dr := &t.rows[a]
		dr.master = sr.master
		dr.array = sr.array
		if dr.array != nil {
			dr.array.refCount++
		}
	}
}

// ReleaseSingletons collapses every row whose only non-zero column equals
// master back to scalar-only form, freeing its backing array. Called once
// after init finishes building the initial counters, before any removal
// has happened, to stop paying for arrays that carry no information yet.
func (t *Table) ReleaseSingletons() {
	for a := range t.rows {
		r := &t.rows[a]
		if r.array == nil {
			continue
		}
		col := -1
		for i, v := range r.array.data {
			if v != 0 {
				col = i
				break
			}
		}
		if col == -1 || r.array.data[col] < r.master {
			continue // either empty or more than one non-zero column: cannot collapse
		}
		t.release(r)
	}
}
