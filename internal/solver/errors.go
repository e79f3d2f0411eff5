package solver

import "fmt"

// ConstructionError reports a malformed input grid. The solve is never
// attempted when construction fails.
type ConstructionError struct {
	Row   int
	Col   int
	Value uint8
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("bad given %d at r%dc%d: digits must be 0-9", e.Value, e.Row, e.Col)
}

// ConsistencyError signals an engine defect: a fill requested on an
// already-filled cell, or a verified "solution" containing a duplicate.
// It is fatal to the solve attempt and means the result cannot be
// trusted.
type ConsistencyError struct {
	CellIndex int
	Value     uint8
	Detail    string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("engine inconsistency at r%dc%d (value %d): %s",
		e.CellIndex/9, e.CellIndex%9, e.Value, e.Detail)
}

// ConflictError reports a duplicate digit found by post-solve
// verification. Like ConsistencyError it indicates an engine bug and
// must never occur when the rules are implemented correctly.
type ConflictError struct {
	CellIndex  int
	OtherIndex int
	Area       Area
	Value      uint8
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate %d in %s: r%dc%d conflicts with r%dc%d",
		e.Value, e.Area,
		e.CellIndex/9, e.CellIndex%9,
		e.OtherIndex/9, e.OtherIndex%9)
}
