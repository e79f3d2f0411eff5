package solver

// Cell is one of the 81 positions of a puzzle. Whether it holds a value
// is an explicit state, not a sentinel: filled is the discriminant, and
// the invariant is that filled implies candidates is exactly the
// one-element set holding value. Candidates keep insertion order so rule
// application stays deterministic.
type Cell struct {
	Index int // 0-80, row-major
	Row   int // 0-8
	Col   int // 0-8
	Box   int // 0-8
	Given bool

	filled     bool
	value      uint8
	candidates []uint8
}

// Filled reports whether the cell holds a value.
func (c *Cell) Filled() bool { return c.filled }

// Value returns the cell's digit, or 0 if unfilled.
func (c *Cell) Value() uint8 {
	if !c.filled {
		return 0
	}
	return c.value
}

// Candidates returns a copy of the remaining candidate digits. A filled
// cell reports the singleton holding its value.
func (c *Cell) Candidates() []uint8 {
	out := make([]uint8, len(c.candidates))
	copy(out, c.candidates)
	return out
}

func (c *Cell) hasCandidate(v uint8) bool {
	for _, cand := range c.candidates {
		if cand == v {
			return true
		}
	}
	return false
}

// removeCandidate drops v from the candidate set, reporting whether it
// was present.
func (c *Cell) removeCandidate(v uint8) bool {
	for i, cand := range c.candidates {
		if cand == v {
			c.candidates = append(c.candidates[:i], c.candidates[i+1:]...)
			return true
		}
	}
	return false
}
