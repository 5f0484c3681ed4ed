package smartset

// SmartSet is a multiset over the dense universe [0, N). It backs the
// per-block label "inset" and the scratch set from which the refinement
// engine computes initial removal bags, and the per-label delta1/delta
// source and target sets built by the lts package.
//
// Internally a SmartSet keeps a parallel position[] (element -> index in
// flat, or -1 if absent) and a flat []int enumerating present elements.
// Add/Remove/RemoveStrict/Contains are O(1); removal swaps the last flat
// entry into the removed slot, so iteration order is only an insertion
// order guarantee when no element has ever been removed.
type SmartSet struct {
	universe int
	count    []int // multiplicity per element, len == universe
	position []int // element -> index in flat, or -1
	flat     []int // present elements, in (possibly reordered-by-removal) insertion order
}

// New constructs a SmartSet over the universe [0, n). The set starts empty.
func New(n int) *SmartSet {
	s := &SmartSet{
		universe: n,
		count:    make([]int, n),
		position: make([]int, n),
	}
	for i := range s.position {
		s.position[i] = -1
	}
	return s
}

func (s *SmartSet) checkRange(x int) {
	if x < 0 || x >= s.universe {
		panic(ErrOutOfRange)
	}
}

// Add increases x's multiplicity by one. If x was absent it is appended to
// the flat enumeration.
func (s *SmartSet) Add(x int) {
	s.checkRange(x)
	if s.count[x] == 0 {
		s.position[x] = len(s.flat)
		s.flat = append(s.flat, x)
	}
	s.count[x]++
}

// Remove decreases x's multiplicity by one, a no-op if x is already absent.
// The element is dropped from the flat enumeration once its count reaches
// zero.
func (s *SmartSet) Remove(x int) {
	s.checkRange(x)
	if s.count[x] == 0 {
		return
	}
	s.count[x]--
	if s.count[x] == 0 {
		s.evict(x)
	}
}

// RemoveStrict behaves like Remove but panics with ErrNotPresent if x has
// zero multiplicity; callers use it where the caller's own bookkeeping
// guarantees presence and a miss indicates a corrupted invariant.
func (s *SmartSet) RemoveStrict(x int) {
	s.checkRange(x)
	if s.count[x] == 0 {
		panic(ErrNotPresent)
	}
	s.count[x]--
	if s.count[x] == 0 {
		s.evict(x)
	}
}

// evict drops x from the flat enumeration by swapping in the last element.
func (s *SmartSet) evict(x int) {
	pos := s.position[x]
	last := len(s.flat) - 1
	moved := s.flat[last]
	s.flat[pos] = moved
	s.position[moved] = pos
	s.flat = s.flat[:last]
	s.position[x] = -1
}

// Contains reports whether x currently has non-zero multiplicity.
func (s *SmartSet) Contains(x int) bool {
	s.checkRange(x)
	return s.count[x] > 0
}

// Empty reports whether the set has no present elements.
func (s *SmartSet) Empty() bool {
	return len(s.flat) == 0
}

// Size returns the number of distinct present elements.
func (s *SmartSet) Size() int {
	return len(s.flat)
}

// Elements returns the present elements in enumeration order. The returned
// slice is owned by the SmartSet and must not be mutated by the caller.
func (s *SmartSet) Elements() []int {
	return s.flat
}

// AssignFlat discards the current contents and rebuilds the set to contain
// exactly the (assumed distinct) elements of vec, each with multiplicity
// one. Complexity O(len(vec) + previous size).
func (s *SmartSet) AssignFlat(vec []int) {
	for _, x := range s.flat {
		s.count[x] = 0
		s.position[x] = -1
	}
	s.flat = s.flat[:0]
	for _, x := range vec {
		s.checkRange(x)
		if s.count[x] == 0 {
			s.position[x] = len(s.flat)
			s.flat = append(s.flat, x)
		}
		s.count[x] = 1
	}
}
