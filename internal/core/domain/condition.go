package domain

// ConditionScore is a 1..5 rating of a feature's physical state.
// 1 = needs full replacement, 5 = excellent. A nil *ConditionScore means the
// feature was not assessable and is conservatively treated as adequate.
type ConditionScore int

const (
	ConditionWorst ConditionScore = 1
	ConditionBest  ConditionScore = 5
)

// NewConditionScore validates a raw score coming from the boundary (vision
// pipeline output, REST payload). Out-of-range values are treated as
// unassessable, never as an error.
func NewConditionScore(raw *int) *ConditionScore {
	if raw == nil {
		return nil
	}
	if *raw < int(ConditionWorst) || *raw > int(ConditionBest) {
		return nil
	}
	s := ConditionScore(*raw)
	return &s
}

// Action is the work decision derived from a condition score.
type Action string

const (
	ActionKeep    Action = "keep"
	ActionRepair  Action = "repair"
	ActionReplace Action = "replace"
	ActionRewire  Action = "rewire"
	ActionInstall Action = "install"
)
