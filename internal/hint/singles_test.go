package hint

import (
	"context"
	"testing"

	"github.com/edcottrell/sudoku-solver/internal/domain"
)

func TestHintNakedSingle(t *testing.T) {
	// r0c8 sees 1-8, leaving only 9.
	var b domain.Board
	b.Values[0] = [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 0}
	h, ok, err := NewSingles().Hint(context.Background(), &b, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatal("no hint found")
	}
	if h.Value != 9 || len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 0, Col: 8}) {
		t.Fatalf("hint = %+v, want 9 at r0c8", h)
	}
}

func TestHintHiddenSingle(t *testing.T) {
	// 7 is blocked from every cell of row 4 except r4c0: columns 1-8
	// each contain a 7 somewhere outside row 4.
	var b domain.Board
	for c := 1; c <= 8; c++ {
		r := c % 3 // rows 0-2, away from row 4 and from column 0's box
		b.Values[r][c] = 7
	}
	h, ok, err := NewSingles().Hint(context.Background(), &b, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatal("no hint found")
	}
	if h.Value != 7 {
		t.Fatalf("hint = %+v, want a 7", h)
	}
}

func TestHintTierBelowSingles(t *testing.T) {
	var b domain.Board
	b.Values[0] = [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 0}
	if _, ok, _ := NewSingles().Hint(context.Background(), &b, domain.StrategyTier(-1)); ok {
		t.Fatal("hint produced below the singles tier")
	}
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	var b domain.Board
	if _, ok, _ := NewSingles().Hint(context.Background(), &b, domain.StrategyXWing); ok {
		t.Fatal("hint found on an empty board")
	}
}
