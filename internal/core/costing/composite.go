package costing

import (
	"math"
	"sort"

	"cost-engine-service/internal/core/domain"
)

// Risk factor names reported in HiddenCostRisk.Factors.
const (
	riskFactorMEPWork     = "mep_work_detected"
	riskFactorEraRewiring = "era_rewiring_likely"
	riskFactorEraReplumb  = "era_replumbing_likely"
)

// ComputeCompositeIndices aggregates the per-room results into the
// property-level indices. Pure and order-independent: "worst scope" is a
// commutative reduction and the week sums do not depend on room order.
func ComputeCompositeIndices(rooms map[string]domain.RoomCostResult, ctx domain.PropertyContext) domain.CompositeIndices {
	if len(rooms) == 0 {
		return domain.CompositeIndices{
			HiddenCostRisk:  domain.HiddenCostRisk{Level: riskLevelForFactors(nil, ctx)},
			ScopeComplexity: domain.ScopeComplexity{Level: domain.ComplexitySimple},
		}
	}

	overall := domain.ScopeNone
	weeksMin, weeksMax := 0.0, 0.0
	roomsNeedingWork := 0
	modulesNeedingWork := 0
	anyMEPWork := false

	for _, res := range rooms {
		if res.WorkScope.Overall > overall {
			overall = res.WorkScope.Overall
		}

		w := scopeWeeks[res.WorkScope.Overall]
		weeksMin += w.Min
		weeksMax += w.Max

		if res.WorkScope.Overall != domain.ScopeNone {
			roomsNeedingWork++
		}
		for _, s := range []domain.WorkScope{res.WorkScope.Surfaces, res.WorkScope.Fixtures, res.WorkScope.MEP} {
			if s != domain.ScopeNone {
				modulesNeedingWork++
			}
		}
		if res.WorkScope.MEP != domain.ScopeNone {
			anyMEPWork = true
		}
	}

	// Rooms are worked partially in parallel; floor at one week when any
	// work exists at all.
	weeksMin = round1(weeksMin / TimeParallelismFactor)
	weeksMax = round1(weeksMax / TimeParallelismFactor)
	if weeksMax > 0 {
		weeksMin = math.Max(weeksMin, MinWeeksWithWork)
		weeksMax = math.Max(weeksMax, MinWeeksWithWork)
	}

	var factors []string
	if anyMEPWork {
		factors = append(factors, riskFactorMEPWork)
	}
	if eraRewiringLikely[ctx.Era] {
		factors = append(factors, riskFactorEraRewiring)
	}
	if eraReplumbingLikely[ctx.Era] {
		factors = append(factors, riskFactorEraReplumb)
	}
	sort.Strings(factors)

	return domain.CompositeIndices{
		WorkScope: overall,
		TimeEstimate: domain.TimeEstimate{
			WeeksMin: weeksMin,
			WeeksMax: weeksMax,
		},
		HiddenCostRisk: domain.HiddenCostRisk{
			Level:   riskLevelForFactors(factors, ctx),
			Factors: factors,
		},
		ScopeComplexity: domain.ScopeComplexity{
			Level:              complexityLevel(overall, roomsNeedingWork),
			RoomsNeedingWork:   roomsNeedingWork,
			ModulesNeedingWork: modulesNeedingWork,
		},
	}
}

func riskLevelForFactors(factors []string, ctx domain.PropertyContext) domain.RiskLevel {
	switch {
	case len(factors) >= RiskFactorsForHigh:
		return domain.RiskHigh
	case len(factors) >= RiskFactorsForMedium:
		return domain.RiskMedium
	case ctx.Era == domain.EraUnknown || ctx.Era == "":
		return domain.RiskUnknown
	default:
		return domain.RiskLow
	}
}

// complexityLevel checks MAJOR conditions before COMPLEX before MODERATE;
// the branch order is part of the contract.
func complexityLevel(overall domain.WorkScope, roomsNeedingWork int) domain.ComplexityLevel {
	switch {
	case overall == domain.ScopeFullRenovation || roomsNeedingWork >= RoomsForMajor:
		return domain.ComplexityMajor
	case overall == domain.ScopeReplace || roomsNeedingWork >= RoomsForComplex:
		return domain.ComplexityComplex
	case roomsNeedingWork >= RoomsForModerate:
		return domain.ComplexityModerate
	default:
		return domain.ComplexitySimple
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
