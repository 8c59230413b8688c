package costing

import "cost-engine-service/internal/core/domain"

// ScopeFromAvg maps an average condition score to a work scope through the
// ordered threshold table.
func ScopeFromAvg(avg float64) domain.WorkScope {
	for _, t := range scopeThresholds {
		if avg <= t.MaxAvg {
			return t.Scope
		}
	}
	return domain.ScopeNone
}

// scopeFromScores averages the collected non-nil scores of a module; an
// empty list means the module needs nothing.
func scopeFromScores(scores []domain.ConditionScore) domain.WorkScope {
	if len(scores) == 0 {
		return domain.ScopeNone
	}
	sum := 0
	for _, s := range scores {
		sum += int(s)
	}
	return ScopeFromAvg(float64(sum) / float64(len(scores)))
}
