package domain

// Difficulty labels stored puzzles for listing and bucketing.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs (reserved)
	StrategyAdvanced                    // pointing/claiming, triples, etc. (reserved)
	StrategyXWing                       // advanced fish (placeholder for cap)
)

// Outcome is the terminal state of a solve attempt. Stalls are normal
// results, not errors: the engine only propagates, so puzzles that need
// search end in one of the stalled outcomes.
type Outcome int

const (
	OutcomeNone              Outcome = iota // not yet solved
	OutcomeSolved                           // every cell filled and verified
	OutcomeStalledBudget                    // total check budget exhausted
	OutcomeStalledStagnation                // too many checks without progress
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeStalledBudget:
		return "stalled: check budget exhausted"
	case OutcomeStalledStagnation:
		return "stalled: no progress"
	default:
		return "unsolved"
	}
}
