package solver

import (
	"github.com/edcottrell/sudoku-solver/internal/domain"
)

// Area selects one of the three peer-group kinds every cell belongs to.
type Area int

const (
	AreaRow Area = iota
	AreaColumn
	AreaBox
)

func (a Area) String() string {
	switch a {
	case AreaColumn:
		return "column"
	case AreaBox:
		return "box"
	default:
		return "row"
	}
}

// Reason maps an area to the action reason logged for deductions made
// against it.
func (a Area) Reason() domain.ActionReason {
	switch a {
	case AreaColumn:
		return domain.ReasonColumnCheck
	case AreaBox:
		return domain.ReasonBoxCheck
	default:
		return domain.ReasonRowCheck
	}
}

// Filter narrows area queries to filled or unfilled cells.
type Filter int

const (
	AllCells Filter = iota
	FilledCells
	UnfilledCells
)

// Parameters are the two effort budgets guarding a solve.
type Parameters struct {
	// MaxChecks caps the total number of atomic inference checks.
	MaxChecks int
	// MaxChecksWithoutAction caps consecutive checks that produce no
	// logged action, the stagnation guard.
	MaxChecksWithoutAction int
}

// DefaultParameters returns the stock budgets.
func DefaultParameters() Parameters {
	return Parameters{MaxChecks: 10000, MaxChecksWithoutAction: 500}
}

// Puzzle owns the 81 cells plus the bookkeeping of one solve: the check
// counter, the stagnation watermark, and the append-only action log. A
// Puzzle is created once, mutated in place by Solve, and never shared.
type Puzzle struct {
	cells [81]*Cell
	boxes [9][]int // cell indices per box, ascending

	params              Parameters
	checkCounter        int
	lastCheckWithAction int
	actions             []domain.Action
	solvedLogged        bool
}

// New builds a puzzle from a 9x9 grid where 0 means empty and 1-9 a
// given digit. Values outside 0-9 are a construction error. Candidate
// sets stay empty until Solve runs its initialization pass.
func New(grid [9][9]uint8) (*Puzzle, error) {
	p := &Puzzle{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := grid[r][c]
			if v > 9 {
				return nil, &ConstructionError{Row: r, Col: c, Value: v}
			}
			idx := r*9 + c
			cell := &Cell{
				Index: idx,
				Row:   r,
				Col:   c,
				Box:   (r/3)*3 + c/3,
			}
			if v != 0 {
				cell.Given = true
				cell.filled = true
				cell.value = v
				cell.candidates = []uint8{v}
			}
			p.cells[idx] = cell
			p.boxes[cell.Box] = append(p.boxes[cell.Box], idx)
		}
	}
	return p, nil
}

// FromBoard builds a puzzle from the transport representation.
func FromBoard(b *domain.Board) (*Puzzle, error) {
	return New(b.Values)
}

// Cell returns the cell at index 0-80.
func (p *Puzzle) Cell(idx int) *Cell { return p.cells[idx] }

// CellAt returns the cell at (row, col).
func (p *Puzzle) CellAt(row, col int) *Cell { return p.cells[row*9+col] }

// Checks returns the number of atomic inference checks performed so far.
func (p *Puzzle) Checks() int { return p.checkCounter }

// LastCheckWithAction returns the check counter value at the most recent
// check that produced a logged inference, or 0 if none has yet.
func (p *Puzzle) LastCheckWithAction() int { return p.lastCheckWithAction }

// Actions returns a copy of the action log in the order it was written.
func (p *Puzzle) Actions() []domain.Action {
	out := make([]domain.Action, len(p.actions))
	copy(out, p.actions)
	return out
}

// Solution renders the 81-character row-major serialization, '0' for
// cells still unfilled.
func (p *Puzzle) Solution() string {
	buf := make([]byte, 81)
	for i, c := range p.cells {
		buf[i] = '0' + c.Value()
	}
	return string(buf)
}

// Board exports the current grid; Fixed marks the original givens.
func (p *Puzzle) Board() *domain.Board {
	var b domain.Board
	for _, c := range p.cells {
		b.Values[c.Row][c.Col] = c.Value()
		b.Fixed[c.Row][c.Col] = c.Given
	}
	return &b
}

// Unfilled returns the number of cells without a value.
func (p *Puzzle) Unfilled() int {
	n := 0
	for _, c := range p.cells {
		if !c.filled {
			n++
		}
	}
	return n
}

// areaCells returns the cells of one row, column or box in ascending
// index order, optionally filtered and with one index excluded (pass a
// negative index to exclude nothing). This ordering is load-bearing for
// the action log: it decides which of several simultaneous deductions is
// recorded first.
func (p *Puzzle) areaCells(area Area, areaIdx int, filter Filter, exclude int) []*Cell {
	out := make([]*Cell, 0, 9)
	appendCell := func(c *Cell) {
		if c.Index == exclude {
			return
		}
		switch filter {
		case FilledCells:
			if !c.filled {
				return
			}
		case UnfilledCells:
			if c.filled {
				return
			}
		}
		out = append(out, c)
	}
	switch area {
	case AreaRow:
		for col := 0; col < 9; col++ {
			appendCell(p.cells[areaIdx*9+col])
		}
	case AreaColumn:
		for row := 0; row < 9; row++ {
			appendCell(p.cells[row*9+areaIdx])
		}
	case AreaBox:
		for _, idx := range p.boxes[areaIdx] {
			appendCell(p.cells[idx])
		}
	}
	return out
}

// RowCells, ColumnCells and BoxCells are the read-only peer queries.
func (p *Puzzle) RowCells(row int, filter Filter, exclude int) []*Cell {
	return p.areaCells(AreaRow, row, filter, exclude)
}

func (p *Puzzle) ColumnCells(col int, filter Filter, exclude int) []*Cell {
	return p.areaCells(AreaColumn, col, filter, exclude)
}

func (p *Puzzle) BoxCells(box int, filter Filter, exclude int) []*Cell {
	return p.areaCells(AreaBox, box, filter, exclude)
}

// areaIndex returns the cell's own index within the given area kind.
func areaIndex(c *Cell, area Area) int {
	switch area {
	case AreaColumn:
		return c.Col
	case AreaBox:
		return c.Box
	default:
		return c.Row
	}
}

// log appends an action and, for inference actions, advances the
// stagnation watermark.
func (p *Puzzle) log(a domain.Action) {
	a.Check = p.checkCounter
	p.actions = append(p.actions, a)
	switch a.Type {
	case domain.ActionFillCell, domain.ActionRemoveCandidates, domain.ActionIdentifyTuple:
		p.lastCheckWithAction = p.checkCounter
	}
}

// tally counts one atomic inference check.
func (p *Puzzle) tally() { p.checkCounter++ }

// okayToKeepChecking is the fine-grained budget guard, consulted before
// every atomic check. Once it reports false no further checks are
// tallied, so the counter stops exactly at the budget.
func (p *Puzzle) okayToKeepChecking() bool {
	if p.checkCounter >= p.params.MaxChecks {
		return false
	}
	if p.checkCounter-p.lastCheckWithAction >= p.params.MaxChecksWithoutAction {
		return false
	}
	return true
}
