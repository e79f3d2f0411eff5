package validator

import (
	"context"
	"testing"

	"github.com/edcottrell/sudoku-solver/internal/domain"
)

func TestValidateCleanBoard(t *testing.T) {
	b := &domain.Board{Values: [9][9]uint8{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}}
	ok, conf, err := New().Validate(context.Background(), b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("clean board flagged: conflicts=%v", conf)
	}
}

func TestValidateFindsDuplicates(t *testing.T) {
	var b domain.Board
	b.Values[2][1] = 7
	b.Values[2][6] = 7 // row duplicate
	b.Values[5][4] = 4
	b.Values[8][4] = 4 // column duplicate
	ok, conf, err := New().Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("duplicates not flagged")
	}
	if len(conf) != 2 {
		t.Fatalf("conflicts = %v, want 2 entries", conf)
	}
}

func TestValidateBoxDuplicate(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 9
	b.Values[2][2] = 9 // same box, different row and column
	ok, conf, err := New().Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatal("box duplicate not flagged")
	}
}
