package solver

import (
	"context"
	"time"

	"github.com/edcottrell/sudoku-solver/internal/domain"
	"github.com/edcottrell/sudoku-solver/internal/ports"
)

// PropagationSolver adapts the engine to the ports.Solver interface.
// The engine itself is synchronous with no suspension points; the
// context is only consulted up front, cancellation during a solve is
// covered by the check budgets.
type PropagationSolver struct {
	Params Parameters
}

// NewPropagationSolver wires a solver with the given budgets; zero
// fields fall back to the defaults.
func NewPropagationSolver(params Parameters) *PropagationSolver {
	return &PropagationSolver{Params: params}
}

func (s *PropagationSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, *domain.SolveReport, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, nil, ports.Stats{}, err
	}
	p, err := FromBoard(b)
	if err != nil {
		return nil, nil, ports.Stats{Duration: time.Since(start)}, err
	}
	outcome, err := p.Solve(s.Params)
	stats := ports.Stats{Checks: p.Checks(), Duration: time.Since(start)}
	if err != nil {
		return nil, nil, stats, err
	}
	report := &domain.SolveReport{
		Outcome:  outcome,
		Checks:   p.Checks(),
		Actions:  p.Actions(),
		Solution: p.Solution(),
	}
	return p.Board(), report, stats, nil
}
