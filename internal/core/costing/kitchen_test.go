package costing

import (
	"testing"

	"cost-engine-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kitchenWithCabinetScore(s *domain.ConditionScore) *domain.KitchenFeatures {
	return &domain.KitchenFeatures{
		AreaM2: f64(10),
		Fixtures: &domain.KitchenFixtures{
			CabinetCondition:  s,
			AppliancesVisible: []string{"stove", "fridge"},
		},
	}
}

func findItem(items []domain.CostLineItem, category domain.Category) *domain.CostLineItem {
	for i := range items {
		if items[i].Category == category {
			return &items[i]
		}
	}
	return nil
}

func TestKitchenCabinetBranches(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	t.Run("low score replaces", func(t *testing.T) {
		res := c.CalculateRoom("kitchen", kitchenWithCabinetScore(score(2)))
		item := findItem(res.LineItems, domain.CategoryKitchenCabinets)
		require.NotNil(t, item)
		assert.Equal(t, domain.ActionReplace, item.Action)
		assert.Equal(t, 2500.0, item.CostMin)
		assert.Equal(t, 6000.0, item.CostMax)
	})

	t.Run("score exactly three refaces", func(t *testing.T) {
		res := c.CalculateRoom("kitchen", kitchenWithCabinetScore(score(3)))
		item := findItem(res.LineItems, domain.CategoryKitchenCabinets)
		require.NotNil(t, item)
		assert.Equal(t, domain.ActionRepair, item.Action)
		assert.Equal(t, domain.PriorityMedia, item.Priority)
		// Reface pricing, not generic repair pricing.
		assert.Equal(t, 800.0, item.CostMin)
		assert.Equal(t, 1800.0, item.CostMax)
	})

	t.Run("good score keeps", func(t *testing.T) {
		res := c.CalculateRoom("kitchen", kitchenWithCabinetScore(score(4)))
		assert.Nil(t, findItem(res.LineItems, domain.CategoryKitchenCabinets))
	})

	t.Run("nil score keeps", func(t *testing.T) {
		res := c.CalculateRoom("kitchen", kitchenWithCabinetScore(nil))
		assert.Nil(t, findItem(res.LineItems, domain.CategoryKitchenCabinets))
	})
}

func TestKitchenAppliancesAbsenceSignal(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	t.Run("no visible appliances forces a full set", func(t *testing.T) {
		res := c.CalculateRoom("kitchen", &domain.KitchenFeatures{
			AreaM2: f64(10),
			Fixtures: &domain.KitchenFixtures{
				// Even an excellent condition score cannot cancel the absence signal.
				ApplianceCondition: score(5),
				AppliancesVisible:  nil,
			},
		})
		item := findItem(res.LineItems, domain.CategoryKitchenAppliances)
		require.NotNil(t, item)
		assert.Equal(t, domain.ActionInstall, item.Action)
		assert.Equal(t, domain.PriorityAlta, item.Priority)
		assert.Equal(t, 1200.0, item.CostMin)
		assert.Equal(t, 2500.0, item.CostMax)
	})

	t.Run("visible but worn appliances are replaced", func(t *testing.T) {
		res := c.CalculateRoom("kitchen", &domain.KitchenFeatures{
			AreaM2: f64(10),
			Fixtures: &domain.KitchenFixtures{
				ApplianceCondition: score(1),
				AppliancesVisible:  []string{"stove"},
			},
		})
		item := findItem(res.LineItems, domain.CategoryKitchenAppliances)
		require.NotNil(t, item)
		assert.Equal(t, domain.ActionReplace, item.Action)
	})

	t.Run("visible appliances in good shape cost nothing", func(t *testing.T) {
		res := c.CalculateRoom("kitchen", &domain.KitchenFeatures{
			AreaM2: f64(10),
			Fixtures: &domain.KitchenFixtures{
				ApplianceCondition: score(5),
				AppliancesVisible:  []string{"stove", "oven"},
			},
		})
		assert.Nil(t, findItem(res.LineItems, domain.CategoryKitchenAppliances))
	})
}

// TestKitchenAzulejosInLisboa prices the classic degraded Lisbon kitchen:
// ceramic floor and azulejos walls both at score 1, shot cabinets and
// countertop, no appliances, bakelite outlets and corroded plumbing. Tiled
// walls must come out as one combined removal-plus-install item.
func TestKitchenAzulejosInLisboa(t *testing.T) {
	ctx := neutralContext()
	ctx.Region = domain.RegionLisboa
	c := NewCalculator(ctx, standardPrefs(), testLogger())

	res := c.CalculateRoom("kitchen", &domain.KitchenFeatures{
		AreaM2: f64(10),
		Surfaces: &domain.SurfaceFeatures{
			FloorMaterial:  domain.FloorCeramicTile,
			FloorCondition: score(1),
			WallFinish:     domain.WallAzulejos,
			WallCondition:  score(1),
		},
		Fixtures: &domain.KitchenFixtures{
			CabinetCondition:    score(1),
			CountertopCondition: score(1),
			AppliancesVisible:   nil,
		},
		MEP: &domain.MEPFeatures{
			OutletStyle:   domain.OutletBakeliteOld,
			PlumbingState: domain.PlumbingVisibleCorroded,
		},
	})

	wall := findItem(res.LineItems, domain.CategoryWalls)
	require.NotNil(t, wall)
	assert.Equal(t, domain.ActionReplace, wall.Action)
	assert.Equal(t, "Remove old azulejos and install new wall tiles", wall.Description)
	assert.Equal(t, 25.0, wall.Quantity)
	// Removal (8-14) plus install (20-35) EUR/m2 on 25 m2 of wall, Lisboa at 1.25.
	assert.Equal(t, 875.0, wall.CostMin)
	assert.Equal(t, 1531.25, wall.CostMax)

	for _, category := range []domain.Category{
		domain.CategoryFlooring,
		domain.CategoryWalls,
		domain.CategoryKitchenCabinets,
		domain.CategoryKitchenCountertop,
		domain.CategoryKitchenAppliances,
		domain.CategoryElectrical,
		domain.CategoryPlumbing,
	} {
		assert.NotNil(t, findItem(res.LineItems, category), string(category))
	}
	assert.Len(t, res.LineItems, 7)

	assert.Greater(t, res.CostBreakdown.TotalMin, 0.0)
	assert.Equal(t, domain.ScopeFullRenovation, res.WorkScope.Overall)
}

// TestWorstCaseKitchen runs the full degraded-kitchen scenario end to end:
// every surface and fixture at score 1, no appliances, old wiring and
// corroded plumbing, 10 m2, neutral multipliers.
func TestWorstCaseKitchen(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	res := c.CalculateRoom("kitchen", &domain.KitchenFeatures{
		AreaM2: f64(10),
		Surfaces: &domain.SurfaceFeatures{
			FloorMaterial:    domain.FloorNotVisible,
			FloorCondition:   score(1),
			WallFinish:       domain.WallPaint,
			WallCondition:    score(1),
			CeilingCondition: score(1),
		},
		Fixtures: &domain.KitchenFixtures{
			WindowCondition:     score(1),
			DoorCondition:       score(1),
			CabinetCondition:    score(1),
			CountertopCondition: score(1),
			ApplianceCondition:  nil,
			AppliancesVisible:   nil,
		},
		MEP: &domain.MEPFeatures{
			OutletStyle:   domain.OutletBakeliteOld,
			PlumbingState: domain.PlumbingVisibleCorroded,
		},
	})

	// flooring, walls, ceiling, windows, door, cabinets, countertop,
	// appliances, rewiring, replumbing.
	assert.Len(t, res.LineItems, 10)
	assert.Equal(t, 6150.0, res.CostBreakdown.TotalMin)
	assert.Equal(t, 13680.0, res.CostBreakdown.TotalMax)

	assert.Equal(t, domain.ScopeFullRenovation, res.WorkScope.Surfaces)
	assert.Equal(t, domain.ScopeFullRenovation, res.WorkScope.Fixtures)
	assert.Equal(t, domain.ScopeReplace, res.WorkScope.MEP)
	assert.Equal(t, domain.ScopeFullRenovation, res.WorkScope.Overall)

	assert.Equal(t, ConfidenceSurfFixtBoth, res.ModuleConfidence.Overall)
	require.NotNil(t, res.ModuleConfidence.MEP)
	assert.Equal(t, 1.0, *res.ModuleConfidence.MEP)
}
