package costing

import "cost-engine-service/internal/core/domain"

// assessedFraction is the share of non-nil scores among the assessable
// fields of a module.
func assessedFraction(scores ...*domain.ConditionScore) *float64 {
	assessed := 0
	for _, s := range scores {
		if s != nil {
			assessed++
		}
	}
	f := round2(float64(assessed) / float64(len(scores)))
	return &f
}

func mepConfidence(m *domain.MEPFeatures) *float64 {
	if m == nil {
		return nil
	}
	visible := 0
	if m.OutletStyle != "" && m.OutletStyle != domain.OutletNotVisible {
		visible++
	}
	if m.PlumbingState != "" && m.PlumbingState != domain.PlumbingNotVisible {
		visible++
	}
	f := round2(float64(visible) / 2)
	return &f
}

// overallConfidence is a coarse function of which modules were present, not
// of the individual scores.
func overallConfidence(mc domain.ModuleConfidence) float64 {
	switch {
	case mc.Surfaces == nil && mc.Fixtures == nil && mc.MEP == nil:
		return ConfidenceNoModules
	case mc.Surfaces != nil && mc.Fixtures != nil:
		return ConfidenceSurfFixtBoth
	default:
		return ConfidencePartial
	}
}
