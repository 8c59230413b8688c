package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMultipliers(t *testing.T) {
	t.Run("neutral multipliers split by labor fraction", func(t *testing.T) {
		split := ApplyMultipliers(100, 200, 1.0, 1.0, 0, 0.4, false)
		assert.Equal(t, 60.0, split.MaterialsMin)
		assert.Equal(t, 120.0, split.MaterialsMax)
		assert.Equal(t, 40.0, split.LaborMin)
		assert.Equal(t, 80.0, split.LaborMax)
	})

	t.Run("surcharge raises labor only", func(t *testing.T) {
		split := ApplyMultipliers(100, 100, 1.0, 1.0, 0.10, 0.5, false)
		assert.Equal(t, 50.0, split.MaterialsMin)
		assert.Equal(t, 55.0, split.LaborMin)
	})

	t.Run("diy zeroes labor after all multipliers", func(t *testing.T) {
		split := ApplyMultipliers(100, 200, 1.45, 1.25, 0.12, 0.6, true)
		assert.Equal(t, 0.0, split.LaborMin)
		assert.Equal(t, 0.0, split.LaborMax)
		assert.Greater(t, split.MaterialsMin, 0.0)
	})

	t.Run("finish levels order the total", func(t *testing.T) {
		eco := ApplyMultipliers(100, 100, finishMultipliers["economico"], 1.0, 0, 0.5, false)
		std := ApplyMultipliers(100, 100, finishMultipliers["standard"], 1.0, 0, 0.5, false)
		prm := ApplyMultipliers(100, 100, finishMultipliers["premium"], 1.0, 0, 0.5, false)

		totalOf := func(s CostSplit) float64 { return s.MaterialsMin + s.LaborMin }
		assert.Less(t, totalOf(eco), totalOf(std))
		assert.Less(t, totalOf(std), totalOf(prm))
	})

	t.Run("regional multipliers order the total", func(t *testing.T) {
		interior := ApplyMultipliers(100, 100, 1.0, regionalMultipliers["interior"], 0, 0.5, false)
		litoral := ApplyMultipliers(100, 100, 1.0, regionalMultipliers["litoral"], 0, 0.5, false)
		lisboa := ApplyMultipliers(100, 100, 1.0, regionalMultipliers["lisboa"], 0, 0.5, false)

		totalOf := func(s CostSplit) float64 { return s.MaterialsMin + s.LaborMin }
		assert.Less(t, totalOf(interior), totalOf(litoral))
		assert.Less(t, totalOf(litoral), totalOf(lisboa))
	})

	t.Run("min never exceeds max", func(t *testing.T) {
		split := ApplyMultipliers(40, 70, 1.45, 1.25, 0.12, 0.55, false)
		assert.LessOrEqual(t, split.MaterialsMin, split.MaterialsMax)
		assert.LessOrEqual(t, split.LaborMin, split.LaborMax)
	})
}
