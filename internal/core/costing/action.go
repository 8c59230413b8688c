package costing

import "cost-engine-service/internal/core/domain"

// ResolveAction maps an optional condition score to a work action.
// A nil score means "not assessable" and resolves to keep: an unassessable
// feature is conservatively assumed adequate, never defective.
func ResolveAction(score *domain.ConditionScore) domain.Action {
	if score == nil {
		return domain.ActionKeep
	}
	if *score <= ReplaceThreshold {
		return domain.ActionReplace
	}
	if *score <= RepairThreshold {
		return domain.ActionRepair
	}
	return domain.ActionKeep
}
