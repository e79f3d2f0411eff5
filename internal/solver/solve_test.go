package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/edcottrell/sudoku-solver/internal/domain"
	"github.com/edcottrell/sudoku-solver/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

const sampleSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

// A puzzle that needs search-based techniques; propagation alone is
// expected to stall on it.
const hardGrid = "800000000003600000070090200050007000000045700000100030001000068008500010090000400"

func TestSolveClassicPuzzle(t *testing.T) {
	p, err := New(sample)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	outcome, err := p.Solve(DefaultParameters())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if outcome != domain.OutcomeSolved {
		t.Fatalf("outcome = %v, want solved (checks=%d, unfilled=%d)", outcome, p.Checks(), p.Unfilled())
	}
	if got := p.Solution(); got != sampleSolution {
		t.Fatalf("solution = %s, want %s", got, sampleSolution)
	}
	if p.Checks() > DefaultParameters().MaxChecks {
		t.Fatalf("check counter %d exceeds budget", p.Checks())
	}

	ok, conf, err := validator.New().Validate(context.Background(), p.Board())
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	assertSingleTerminal(t, p.Actions(), domain.ActionSolved)
}

func TestSolveGivensNeverOverwritten(t *testing.T) {
	p, err := New(sample)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := p.Solve(DefaultParameters()); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := p.CellAt(r, c)
			if sample[r][c] == 0 {
				if cell.Given {
					t.Fatalf("r%dc%d marked given but was empty in input", r, c)
				}
				continue
			}
			if !cell.Given || cell.Value() != sample[r][c] {
				t.Fatalf("given r%dc%d changed: value=%d given=%v", r, c, cell.Value(), cell.Given)
			}
		}
	}
}

func TestSolveCandidatesCollapseToValue(t *testing.T) {
	p, err := New(sample)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := p.Solve(DefaultParameters()); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for i := 0; i < 81; i++ {
		c := p.Cell(i)
		cands := c.Candidates()
		if len(cands) != 1 || cands[0] != c.Value() {
			t.Fatalf("cell %d: candidates %v, value %d", i, cands, c.Value())
		}
	}
}

func TestSolvedPuzzleResolvesWithoutDeductions(t *testing.T) {
	grid, err := domain.ParseGrid(sampleSolution)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	p, err := New(grid)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	outcome, err := p.Solve(DefaultParameters())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if outcome != domain.OutcomeSolved {
		t.Fatalf("outcome = %v, want solved", outcome)
	}
	for _, a := range p.Actions() {
		if a.Type == domain.ActionFillCell || a.Type == domain.ActionRemoveCandidates {
			t.Fatalf("unexpected deduction on an already-solved grid: %s", a)
		}
	}
	assertSingleTerminal(t, p.Actions(), domain.ActionSolved)
}

func TestSolveBudgetExhausted(t *testing.T) {
	// Only two givens: far too little information for propagation.
	var grid [9][9]uint8
	grid[0][0] = 1
	grid[4][4] = 2

	p, err := New(grid)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	outcome, err := p.Solve(Parameters{MaxChecks: 50, MaxChecksWithoutAction: 500})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if outcome != domain.OutcomeStalledBudget {
		t.Fatalf("outcome = %v, want stalled on budget", outcome)
	}
	if p.Checks() != 50 {
		t.Fatalf("check counter = %d, want exactly 50", p.Checks())
	}
	if s := p.Solution(); len(s) != 81 {
		t.Fatalf("solution string length = %d, want 81", len(s))
	}
	assertSingleTerminal(t, p.Actions(), domain.ActionQuitBudget)
}

func TestSolveStagnation(t *testing.T) {
	grid, err := domain.ParseGrid(hardGrid)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	p, err := New(grid)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	params := Parameters{MaxChecks: 1_000_000, MaxChecksWithoutAction: 500}
	outcome, err := p.Solve(params)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if outcome != domain.OutcomeStalledStagnation {
		t.Fatalf("outcome = %v, want stalled on stagnation (checks=%d, unfilled=%d)", outcome, p.Checks(), p.Unfilled())
	}
	if gap := p.Checks() - p.LastCheckWithAction(); gap != params.MaxChecksWithoutAction {
		t.Fatalf("idle gap = %d, want %d", gap, params.MaxChecksWithoutAction)
	}
	assertSingleTerminal(t, p.Actions(), domain.ActionQuitStagnation)
}

func TestCheckCellNoopOnFilled(t *testing.T) {
	p, err := New(sample)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := p.Solve(DefaultParameters()); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	checks, actions := p.Checks(), len(p.Actions())
	if err := p.checkCell(p.Cell(0)); err != nil {
		t.Fatalf("checkCell failed: %v", err)
	}
	if p.Checks() != checks || len(p.Actions()) != actions {
		t.Fatalf("checkCell on a filled cell did work: checks %d->%d, actions %d->%d",
			checks, p.Checks(), actions, len(p.Actions()))
	}
}

func TestPropagationSolverAdapter(t *testing.T) {
	s := NewPropagationSolver(DefaultParameters())
	out, report, st, err := s.Solve(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if report.Outcome != domain.OutcomeSolved {
		t.Fatalf("outcome = %v, want solved", report.Outcome)
	}
	if report.Solution != sampleSolution {
		t.Fatalf("solution = %s, want %s", report.Solution, sampleSolution)
	}
	if st.Checks != report.Checks || st.Checks == 0 {
		t.Fatalf("stats checks = %d, report checks = %d", st.Checks, report.Checks)
	}
	if out.Values[0][2] != 4 { // first deduced digit of the classic grid
		t.Fatalf("board not filled in: r0c2 = %d", out.Values[0][2])
	}
	if !out.Fixed[0][0] || out.Fixed[0][2] {
		t.Fatalf("fixed flags not preserved: %v %v", out.Fixed[0][0], out.Fixed[0][2])
	}
}

func TestPropagationSolverHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewPropagationSolver(DefaultParameters())
	if _, _, _, err := s.Solve(ctx, &domain.Board{Values: sample}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

// assertSingleTerminal checks that exactly one terminal action was
// logged and that it is the last entry.
func assertSingleTerminal(t *testing.T, actions []domain.Action, want domain.ActionType) {
	t.Helper()
	if len(actions) == 0 {
		t.Fatal("empty action log")
	}
	terminals := 0
	for _, a := range actions {
		if a.Terminal() {
			terminals++
		}
	}
	if terminals != 1 {
		t.Fatalf("logged %d terminal actions, want 1", terminals)
	}
	if last := actions[len(actions)-1]; last.Type != want {
		t.Fatalf("last action = %v, want %v", last.Type, want)
	}
}
