package render

import (
	"strings"
	"testing"

	"github.com/edcottrell/sudoku-solver/internal/domain"
)

func TestGridPlainHasNoEscapes(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Fixed[0][0] = true
	var sb strings.Builder
	if err := Grid(&sb, &b, Options{}); err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	out := sb.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatal("escape sequences present without color")
	}
	if !strings.Contains(out, "5") || !strings.Contains(out, ".") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 13 { // 9 rows + 4 separators
		t.Fatalf("line count = %d, want 13", got)
	}
}

func TestGridColorHighlightsGivens(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Fixed[0][0] = true
	b.Values[0][1] = 3 // deduced, not fixed
	var sb strings.Builder
	if err := Grid(&sb, &b, Options{EnableColor: true}); err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "\x1b[36m5\x1b[0m") {
		t.Fatal("given not colorized")
	}
	if strings.Contains(out, "\x1b[36m3") {
		t.Fatal("deduced cell colorized as a given")
	}
}

func TestActionsNarration(t *testing.T) {
	actions := []domain.Action{
		{Check: 3, Type: domain.ActionRemoveCandidates, Cells: []int{12}, Values: []uint8{7}, Reason: domain.ReasonRowCheck},
		{Check: 9, Type: domain.ActionFillCell, Cells: []int{12}, Values: []uint8{4}, Reason: domain.ReasonOnlyCandidate},
		{Check: 9, Type: domain.ActionSolved, Reason: domain.ReasonSolved},
	}
	var sb strings.Builder
	if err := Actions(&sb, actions, Options{}); err != nil {
		t.Fatalf("Actions failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "check 3") || !strings.Contains(out, "r1c3") {
		t.Fatalf("narration missing detail:\n%s", out)
	}
	if !strings.Contains(out, "row check") || !strings.Contains(out, "only candidate") {
		t.Fatalf("reasons missing:\n%s", out)
	}
}

func TestSummaryHonorsColorOption(t *testing.T) {
	report := &domain.SolveReport{Outcome: domain.OutcomeSolved, Checks: 502}

	var plain strings.Builder
	if err := Summary(&plain, report, Options{}); err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatal("escape sequences present without color")
	}

	var colored strings.Builder
	if err := Summary(&colored, report, Options{EnableColor: true}); err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	out := colored.String()
	if !strings.Contains(out, "\x1b[1m"+domain.OutcomeSolved.String()+"\x1b[0m") {
		t.Fatalf("outcome not bolded:\n%q", out)
	}
	if !strings.Contains(out, "502 checks") {
		t.Fatalf("counts missing:\n%q", out)
	}
}
