// Package render draws boards and action logs for the terminal. All
// formatting state lives in an explicitly-passed Options value; nothing
// here is global and the solver itself never prints.
package render

import (
	"fmt"
	"io"

	"github.com/edcottrell/sudoku-solver/internal/domain"
)

// Options configures terminal output.
type Options struct {
	EnableColor bool
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiDim   = "\x1b[2m"
)

// Grid writes a box-drawn 9x9 board. Givens are printed bold cyan when
// color is enabled; empty cells print as dots.
func Grid(w io.Writer, b *domain.Board, opts Options) error {
	const (
		top    = "┌───────┬───────┬───────┐"
		middle = "├───────┼───────┼───────┤"
		bottom = "└───────┴───────┴───────┘"
	)
	if _, err := fmt.Fprintln(w, top); err != nil {
		return err
	}
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			if _, err := fmt.Fprintln(w, middle); err != nil {
				return err
			}
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				if _, err := io.WriteString(w, "│ "); err != nil {
					return err
				}
			}
			if err := writeCell(w, b, r, c, opts); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "│"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, bottom)
	return err
}

func writeCell(w io.Writer, b *domain.Board, r, c int, opts Options) error {
	v := b.Values[r][c]
	if v == 0 {
		_, err := io.WriteString(w, ". ")
		return err
	}
	if opts.EnableColor && b.Fixed[r][c] {
		_, err := fmt.Fprintf(w, "%s%s%d%s ", ansiBold, ansiCyan, v, ansiReset)
		return err
	}
	_, err := fmt.Fprintf(w, "%d ", v)
	return err
}

// Actions narrates an action log, one line per entry. Terminal entries
// are dimmed when color is enabled.
func Actions(w io.Writer, actions []domain.Action, opts Options) error {
	for _, a := range actions {
		line := a.String()
		if opts.EnableColor && a.Terminal() {
			line = ansiDim + line + ansiReset
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the one-line result of a solve. The outcome is bolded
// when color is enabled.
func Summary(w io.Writer, report *domain.SolveReport, opts Options) error {
	outcome := report.Outcome.String()
	if opts.EnableColor {
		outcome = ansiBold + outcome + ansiReset
	}
	_, err := fmt.Fprintf(w, "%s after %d checks (%d actions)\n",
		outcome, report.Checks, len(report.Actions))
	return err
}
