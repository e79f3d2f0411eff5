package solver

import (
	"github.com/edcottrell/sudoku-solver/internal/domain"
)

// Solve runs the propagation loop to one of the three terminal states.
// The puzzle is mutated in place; the returned outcome distinguishes a
// solved grid from the two budget stalls, which are normal results. An
// error is returned only for engine defects (see ConsistencyError and
// ConflictError), never for hard puzzles.
func (p *Puzzle) Solve(params Parameters) (domain.Outcome, error) {
	defaults := DefaultParameters()
	if params.MaxChecks <= 0 {
		params.MaxChecks = defaults.MaxChecks
	}
	if params.MaxChecksWithoutAction <= 0 {
		params.MaxChecksWithoutAction = defaults.MaxChecksWithoutAction
	}
	p.params = params

	if err := p.initializeCandidates(); err != nil {
		return domain.OutcomeNone, err
	}

	for p.okayToKeepChecking() && !p.solved() {
		// Sweep every cell still unfilled at the time it is reached; a
		// cascade from earlier in the same sweep may have filled it.
		for _, c := range p.cells {
			if c.filled {
				continue
			}
			if !p.okayToKeepChecking() {
				break
			}
			if err := p.checkCell(c); err != nil {
				return domain.OutcomeNone, err
			}
		}
	}

	if p.solved() {
		if !p.solvedLogged {
			p.solvedLogged = true
			p.log(domain.Action{Type: domain.ActionSolved, Reason: domain.ReasonSolved})
		}
		if err := p.Verify(); err != nil {
			return domain.OutcomeNone, err
		}
		return domain.OutcomeSolved, nil
	}
	if p.checkCounter >= p.params.MaxChecks {
		p.log(domain.Action{Type: domain.ActionQuitBudget, Reason: domain.ReasonBudgetExceeded})
		return domain.OutcomeStalledBudget, nil
	}
	p.log(domain.Action{Type: domain.ActionQuitStagnation, Reason: domain.ReasonStagnation})
	return domain.OutcomeStalledStagnation, nil
}

// initializeCandidates is the one-time pass before the main loop: every
// unfilled cell is seeded with all nine digits and immediately narrowed
// against its filled row, column and box peers. Narrowing goes through
// the regular peer-elimination rule, so a cell collapsing to a single
// candidate here is filled and cascades like any other fill.
func (p *Puzzle) initializeCandidates() error {
	for _, c := range p.cells {
		if c.filled {
			continue
		}
		c.candidates = []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
		for _, area := range []Area{AreaRow, AreaColumn, AreaBox} {
			if c.filled || !p.okayToKeepChecking() {
				break
			}
			if err := p.eliminateWithPeers(c, area); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Puzzle) solved() bool {
	for _, c := range p.cells {
		if !c.filled {
			return false
		}
	}
	return true
}
