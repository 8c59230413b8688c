package costing

import "math"

// CostSplit is the outcome of applying the multipliers to a raw cost range.
type CostSplit struct {
	MaterialsMin float64
	MaterialsMax float64
	LaborMin     float64
	LaborMax     float64
}

// ApplyMultipliers scales a raw cost range and splits it into materials and
// labor. Order matters: the finish and regional multipliers scale the whole
// job first, then the range is split, and the floor surcharge raises labor
// only (it models transport and access, not material price). DIY zeroes both
// labor bounds last.
func ApplyMultipliers(costMin, costMax float64, finishMult, regionalMult, surcharge, laborFrac float64, diy bool) CostSplit {
	scale := finishMult * regionalMult
	totalMin := costMin * scale
	totalMax := costMax * scale

	split := CostSplit{
		MaterialsMin: round2(totalMin * (1 - laborFrac)),
		MaterialsMax: round2(totalMax * (1 - laborFrac)),
		LaborMin:     round2(totalMin * laborFrac * (1 + surcharge)),
		LaborMax:     round2(totalMax * laborFrac * (1 + surcharge)),
	}

	if diy {
		split.LaborMin = 0
		split.LaborMax = 0
	}
	return split
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
