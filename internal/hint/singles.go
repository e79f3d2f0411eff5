package hint

import (
	"context"
	"fmt"

	"github.com/edcottrell/sudoku-solver/internal/domain"
)

// Singles implements a Hinter covering the two single-cell deductions
// the engine knows: naked singles (only one digit fits the cell) and
// hidden singles (the cell is the only home for a digit in one of its
// areas). Pair and higher tiers are declared but not implemented.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first single found in row-major order, naked singles
// before hidden ones per cell.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if v, ok := soleCandidate(b, r, c); ok {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", v),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Value:    v,
					Strategy: domain.StrategySingles,
				}, true, nil
			}
			if v, area, ok := soleLocation(b, r, c); ok {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: %d has no other place in this %s", v, area),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Value:    v,
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

// soleCandidate reports the naked single for a cell, if any.
func soleCandidate(b *domain.Board, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if allowed(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

// soleLocation reports a hidden single: a candidate of the cell that no
// other cell of the same row, column or box can hold.
func soleLocation(b *domain.Board, r, c int) (uint8, string, bool) {
	for v := uint8(1); v <= 9; v++ {
		if !allowed(b, r, c, v) {
			continue
		}
		if !openElsewhereInRow(b, r, c, v) {
			return v, "row", true
		}
		if !openElsewhereInCol(b, r, c, v) {
			return v, "column", true
		}
		if !openElsewhereInBox(b, r, c, v) {
			return v, "box", true
		}
	}
	return 0, "", false
}

func openElsewhereInRow(b *domain.Board, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if i != c && b.Values[r][i] == 0 && allowed(b, r, i, v) {
			return true
		}
	}
	return false
}

func openElsewhereInCol(b *domain.Board, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if i != r && b.Values[i][c] == 0 && allowed(b, i, c, v) {
			return true
		}
	}
	return false
}

func openElsewhereInBox(b *domain.Board, r, c int, v uint8) bool {
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			rr, cc := br+dr, bc+dc
			if (rr != r || cc != c) && b.Values[rr][cc] == 0 && allowed(b, rr, cc, v) {
				return true
			}
		}
	}
	return false
}

func allowed(b *domain.Board, r, c int, v uint8) bool {
	// row & col
	for i := 0; i < 9; i++ {
		if b.Values[r][i] == v || b.Values[i][c] == v {
			return false
		}
	}
	// box
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b.Values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
