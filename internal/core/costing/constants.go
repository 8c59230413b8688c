package costing

import "cost-engine-service/internal/core/domain"

// Every tunable knob of the engine lives here, not inline in the logic.
const (
	// Condition-score thresholds of the action resolver.
	ReplaceThreshold = domain.ConditionScore(2) // score <= 2 means replace
	RepairThreshold  = domain.ConditionScore(3) // score <= 3 means repair

	// Kitchen cabinets at exactly this score get the cheaper reface treatment
	// instead of a generic repair.
	CabinetRefaceScore = domain.ConditionScore(3)

	// Wall area approximation: floor area times this factor. A fixed
	// aspect-ratio heuristic, not a perimeter calculation.
	WallAreaFactor = 2.5

	// Fallback room area when neither the vision model nor the listing
	// provides one.
	DefaultRoomAreaM2 = 9.0

	// Rooms are partially renovated in parallel; summed per-room weeks are
	// divided by this factor.
	TimeParallelismFactor = 1.5

	// Minimum duration in weeks once any work exists at all.
	MinWeeksWithWork = 1.0

	// Hidden-cost risk factor counts.
	RiskFactorsForHigh   = 2
	RiskFactorsForMedium = 1

	// Scope-complexity room counts. Branch order is MAJOR, COMPLEX, MODERATE.
	RoomsForMajor    = 5
	RoomsForComplex  = 3
	RoomsForModerate = 2

	// Overall confidence tiers by module presence.
	ConfidenceNoModules    = 0.3
	ConfidencePartial      = 0.6
	ConfidenceSurfFixtBoth = 0.85

	// One estimated window per this many m2 of floor area, minimum one.
	WindowAreaDivisorM2 = 10.0
)
