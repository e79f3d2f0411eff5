package solver

import (
	"github.com/edcottrell/sudoku-solver/internal/domain"
)

// eliminateWithPeers removes from the cell's candidates every digit
// already held by a filled peer in the given area. One check is tallied
// per peer examined and one remove-candidates action logged per actual
// removal. Scanning short-circuits the moment the candidate set shrinks
// to a single digit: the cell is filled right away with the
// only-candidate reason.
func (p *Puzzle) eliminateWithPeers(c *Cell, area Area) error {
	if c.filled {
		return nil
	}
	for _, peer := range p.areaCells(area, areaIndex(c, area), FilledCells, c.Index) {
		if !p.okayToKeepChecking() {
			return nil
		}
		p.tally()
		if !c.removeCandidate(peer.value) {
			continue
		}
		p.log(domain.Action{
			Type:   domain.ActionRemoveCandidates,
			Cells:  []int{c.Index},
			Values: []uint8{peer.value},
			Reason: area.Reason(),
		})
		if len(c.candidates) == 1 {
			return p.fill(c, c.candidates[0], domain.ReasonOnlyCandidate)
		}
	}
	return nil
}

// fillIfSoleLocation fills the cell when one of its candidates has no
// other possible home in the given area: if no other cell of the area
// still lists the digit, this cell must hold it. One check is tallied
// per comparison against another cell.
func (p *Puzzle) fillIfSoleLocation(c *Cell, area Area) error {
	if c.filled {
		return nil
	}
	others := p.areaCells(area, areaIndex(c, area), AllCells, c.Index)
	for _, v := range c.Candidates() {
		possibleElsewhere := false
		for _, other := range others {
			if !p.okayToKeepChecking() {
				return nil
			}
			p.tally()
			if other.hasCandidate(v) {
				possibleElsewhere = true
				break
			}
		}
		if !possibleElsewhere {
			return p.fill(c, v, area.Reason())
		}
	}
	return nil
}

// sharedAreaReason picks the reason logged for a cascade elimination
// when the neighbor shares more than one area with the filled cell: box
// wins over column, column over row.
func sharedAreaReason(filled, neighbor *Cell) domain.ActionReason {
	switch {
	case filled.Box == neighbor.Box:
		return domain.ReasonBoxCheck
	case filled.Col == neighbor.Col:
		return domain.ReasonColumnCheck
	default:
		return domain.ReasonRowCheck
	}
}

// fill sets the cell's value, collapses its candidates, logs the fill,
// then cascades: the value is eliminated from every unfilled neighbor,
// and a neighbor whose candidates collapse to one digit is filled in
// turn. Filling an already-filled cell is an engine defect and aborts
// the solve.
func (p *Puzzle) fill(c *Cell, v uint8, reason domain.ActionReason) error {
	if c.filled {
		return &ConsistencyError{
			CellIndex: c.Index,
			Value:     v,
			Detail:    "fill requested on a cell that already holds a value",
		}
	}
	c.filled = true
	c.value = v
	c.candidates = []uint8{v}
	p.log(domain.Action{
		Type:   domain.ActionFillCell,
		Cells:  []int{c.Index},
		Values: []uint8{v},
		Reason: reason,
	})
	for _, n := range p.neighbors(c) {
		if n.filled || !n.removeCandidate(v) {
			continue
		}
		p.log(domain.Action{
			Type:   domain.ActionRemoveCandidates,
			Cells:  []int{n.Index},
			Values: []uint8{v},
			Reason: sharedAreaReason(c, n),
		})
		if len(n.candidates) == 1 {
			if err := p.fill(n, n.candidates[0], domain.ReasonOnlyCandidate); err != nil {
				return err
			}
		}
	}
	return nil
}

// neighbors returns every cell sharing a row, column or box with c, each
// once, in ascending index order.
func (p *Puzzle) neighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, 20)
	for _, n := range p.cells {
		if n.Index == c.Index {
			continue
		}
		if n.Row == c.Row || n.Col == c.Col || n.Box == c.Box {
			out = append(out, n)
		}
	}
	return out
}

// checkCell runs the fixed per-cell rule sequence: sole location in row,
// column and box, then peer elimination against row, column and box.
// After each step the cell may have been filled (directly or by a
// cascade) or a budget may have closed; either cuts the sequence short.
// The ordering is not load-bearing for correctness but fixes the action
// log, so it must not be reordered.
func (p *Puzzle) checkCell(c *Cell) error {
	steps := []func(*Cell) error{
		func(c *Cell) error { return p.fillIfSoleLocation(c, AreaRow) },
		func(c *Cell) error { return p.fillIfSoleLocation(c, AreaColumn) },
		func(c *Cell) error { return p.fillIfSoleLocation(c, AreaBox) },
		func(c *Cell) error { return p.eliminateWithPeers(c, AreaRow) },
		func(c *Cell) error { return p.eliminateWithPeers(c, AreaColumn) },
		func(c *Cell) error { return p.eliminateWithPeers(c, AreaBox) },
	}
	for _, step := range steps {
		if c.filled || !p.okayToKeepChecking() {
			return nil
		}
		if err := step(c); err != nil {
			return err
		}
	}
	return nil
}
