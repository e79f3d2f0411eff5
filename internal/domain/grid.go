package domain

import (
	"fmt"
	"strings"
)

// ParseGrid reads the flat 81-cell serialization: digits 1-9 for givens,
// '0', '.' or '_' for empty cells, row-major. Whitespace (including line
// breaks) is ignored, so both single-line strings and nine-line files
// parse.
func ParseGrid(s string) ([9][9]uint8, error) {
	var grid [9][9]uint8
	n := 0
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case r == '0' || r == '.' || r == '_':
			n++
		case r >= '1' && r <= '9':
			if n < 81 {
				grid[n/9][n%9] = uint8(r - '0')
			}
			n++
		default:
			return grid, fmt.Errorf("bad puzzle value %q at cell %d", r, n)
		}
		if n > 81 {
			break
		}
	}
	if n != 81 {
		return grid, fmt.Errorf("expected 81 cells, got %d", n)
	}
	return grid, nil
}

// ParseBoard is ParseGrid plus marking every given as fixed.
func ParseBoard(s string) (*Board, error) {
	grid, err := ParseGrid(s)
	if err != nil {
		return nil, err
	}
	b := &Board{Values: grid}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = grid[r][c] != 0
		}
	}
	return b, nil
}

// FormatGrid renders the flat 81-character form, '0' for empty cells.
func FormatGrid(grid [9][9]uint8) string {
	var b strings.Builder
	b.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.WriteByte('0' + grid[r][c])
		}
	}
	return b.String()
}
