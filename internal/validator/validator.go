package validator

import (
	"context"

	"github.com/edcottrell/sudoku-solver/internal/domain"
)

// FastValidator scans a board's rows, columns and boxes with digit
// bitmasks. Empty cells are ignored, so it works on partial boards; the
// conflicts it reports are the later of each duplicated pair in scan
// order.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(cells [9]domain.CellCoord) {
		seen := 0
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, cc)
			}
			seen |= bit
		}
	}

	var cells [9]domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cells[c] = domain.CellCoord{Row: r, Col: c}
		}
		scan(cells)
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			cells[r] = domain.CellCoord{Row: r, Col: c}
		}
		scan(cells)
	}
	for box := 0; box < 9; box++ {
		for i := 0; i < 9; i++ {
			cells[i] = domain.CellCoord{
				Row: (box/3)*3 + i/3,
				Col: (box%3)*3 + i%3,
			}
		}
		scan(cells)
	}
	return len(conf) == 0, conf, nil
}
