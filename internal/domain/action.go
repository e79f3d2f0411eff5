package domain

import (
	"fmt"
	"strings"
)

// ActionType tags one entry in the solver's audit trail.
type ActionType int

const (
	ActionFillCell         ActionType = iota // a cell received its value
	ActionRemoveCandidates                   // candidates eliminated from a cell
	ActionIdentifyTuple                      // reserved: naked/hidden tuples are not implemented
	ActionQuitBudget                         // solve stopped at the total check budget
	ActionQuitStagnation                     // solve stopped after too many idle checks
	ActionSolved                             // every cell filled
)

func (t ActionType) String() string {
	switch t {
	case ActionFillCell:
		return "fill"
	case ActionRemoveCandidates:
		return "remove candidates"
	case ActionIdentifyTuple:
		return "identify tuple"
	case ActionQuitBudget:
		return "quit (budget)"
	case ActionQuitStagnation:
		return "quit (stagnation)"
	case ActionSolved:
		return "solved"
	default:
		return fmt.Sprintf("action(%d)", int(t))
	}
}

// ActionReason names the rule or lifecycle event that produced an action.
type ActionReason int

const (
	ReasonOnlyCandidate ActionReason = iota // candidate set collapsed to one digit
	ReasonRowCheck                          // deduced against the cell's row
	ReasonColumnCheck                       // deduced against the cell's column
	ReasonBoxCheck                          // deduced against the cell's box
	ReasonPairCheck                         // reserved, never produced
	ReasonBudgetExceeded
	ReasonStagnation
	ReasonSolved
)

func (r ActionReason) String() string {
	switch r {
	case ReasonOnlyCandidate:
		return "only candidate"
	case ReasonRowCheck:
		return "row check"
	case ReasonColumnCheck:
		return "column check"
	case ReasonBoxCheck:
		return "box check"
	case ReasonPairCheck:
		return "pair check"
	case ReasonBudgetExceeded:
		return "check budget exceeded"
	case ReasonStagnation:
		return "no further progress"
	case ReasonSolved:
		return "puzzle solved"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Action is one immutable record of an inference or lifecycle event.
// Check is the value of the solver's check counter when the action was
// logged; Cells holds affected cell indices (empty for puzzle-level
// events) and Values the affected digits.
type Action struct {
	Check  int          `json:"check"`
	Type   ActionType   `json:"type"`
	Cells  []int        `json:"cells,omitempty"`
	Values []uint8      `json:"values,omitempty"`
	Reason ActionReason `json:"reason"`
}

// Terminal reports whether the action ends a solve.
func (a Action) Terminal() bool {
	switch a.Type {
	case ActionQuitBudget, ActionQuitStagnation, ActionSolved:
		return true
	}
	return false
}

func (a Action) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "check %d: %s", a.Check, a.Type)
	for i, idx := range a.Cells {
		if i == 0 {
			b.WriteString(" r")
		} else {
			b.WriteString(", r")
		}
		fmt.Fprintf(&b, "%dc%d", idx/9, idx%9)
	}
	if len(a.Values) > 0 {
		b.WriteString(" [")
		for i, v := range a.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", v)
		}
		b.WriteByte(']')
	}
	fmt.Fprintf(&b, " (%s)", a.Reason)
	return b.String()
}

// SolveReport bundles the audit trail and terminal state of one solve.
type SolveReport struct {
	Outcome  Outcome  `json:"outcome"`
	Checks   int      `json:"checks"`
	Actions  []Action `json:"actions,omitempty"`
	Solution string   `json:"solution,omitempty"`
}
