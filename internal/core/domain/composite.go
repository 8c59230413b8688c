package domain

// RiskLevel qualifies the hidden-cost risk of a property.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskUnknown RiskLevel = "unknown"
)

// ComplexityLevel qualifies the overall scope complexity of the renovation.
type ComplexityLevel string

const (
	ComplexitySimple   ComplexityLevel = "simple"
	ComplexityModerate ComplexityLevel = "moderate"
	ComplexityComplex  ComplexityLevel = "complex"
	ComplexityMajor    ComplexityLevel = "major"
)

// TimeEstimate bounds the expected duration of the works in weeks.
type TimeEstimate struct {
	WeeksMin float64 `json:"weeks_min"`
	WeeksMax float64 `json:"weeks_max"`
}

// HiddenCostRisk is the qualitative risk that actual costs exceed the
// estimate due to concealed MEP issues.
type HiddenCostRisk struct {
	Level   RiskLevel `json:"level"`
	Factors []string  `json:"factors"`
}

// ScopeComplexity counts how much of the property needs work.
type ScopeComplexity struct {
	Level              ComplexityLevel `json:"level"`
	RoomsNeedingWork   int             `json:"rooms_needing_work"`
	ModulesNeedingWork int             `json:"modules_needing_work"`
}

// CompositeIndices are property-level aggregates computed once from the full
// set of per-room results; never mutated afterward.
type CompositeIndices struct {
	WorkScope       WorkScope       `json:"work_scope"`
	TimeEstimate    TimeEstimate    `json:"time_estimate"`
	HiddenCostRisk  HiddenCostRisk  `json:"hidden_cost_risk"`
	ScopeComplexity ScopeComplexity `json:"scope_complexity"`
}
