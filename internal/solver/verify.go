package solver

// Verify confirms the solved grid: every cell filled, and no two cells
// sharing a row, column or box holding the same digit. It runs once when
// the solved state is reached; a failure is a fatal assertion about the
// engine, not a property of the input puzzle.
func (p *Puzzle) Verify() error {
	for _, c := range p.cells {
		if !c.filled {
			return &ConsistencyError{
				CellIndex: c.Index,
				Detail:    "unfilled cell in a puzzle reported solved",
			}
		}
		for _, area := range []Area{AreaRow, AreaColumn, AreaBox} {
			for _, peer := range p.areaCells(area, areaIndex(c, area), AllCells, c.Index) {
				if !peer.filled {
					return &ConsistencyError{
						CellIndex: peer.Index,
						Detail:    "unfilled cell in a puzzle reported solved",
					}
				}
				if peer.value == c.value {
					return &ConflictError{
						CellIndex:  c.Index,
						OtherIndex: peer.Index,
						Area:       area,
						Value:      c.value,
					}
				}
			}
		}
	}
	return nil
}
