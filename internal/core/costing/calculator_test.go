package costing

import (
	"testing"

	"cost-engine-service/internal/core/domain"
	"cost-engine-service/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRoomEmptyFeatures(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	res := c.CalculateRoom("bedroom_1", &domain.GenericRoomFeatures{RoomType: domain.RoomTypeBedroom})

	assert.Empty(t, res.LineItems)
	assert.Equal(t, 0.0, res.CostBreakdown.TotalMin)
	assert.Equal(t, 0.0, res.CostBreakdown.TotalMax)
	assert.Equal(t, domain.ScopeNone, res.WorkScope.Overall)
	assert.Nil(t, res.ModuleConfidence.Surfaces)
	assert.Nil(t, res.ModuleConfidence.Fixtures)
	assert.Nil(t, res.ModuleConfidence.MEP)
	assert.Equal(t, ConfidenceNoModules, res.ModuleConfidence.Overall)
}

func TestCalculateRoomNilFeatures(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())
	res := c.CalculateRoom("mystery", nil)
	assert.Equal(t, domain.RoomCostResult{}, res)
}

type recordingLogger struct {
	errorFields []port.Fields
}

func (l *recordingLogger) Info(msg string, fields port.Fields)  {}
func (l *recordingLogger) Warn(msg string, fields port.Fields)  {}
func (l *recordingLogger) Debug(msg string, fields port.Fields) {}
func (l *recordingLogger) Error(msg string, err error, fields port.Fields) {
	l.errorFields = append(l.errorFields, fields)
}
func (l *recordingLogger) WithFields(fields port.Fields) port.LoggerPort { return l }

// A failure inside one room's calculation must degrade that room to the
// all-default result and never take down its siblings.
func TestCalculateRoomRecoversFromInternalFailure(t *testing.T) {
	logger := &recordingLogger{}
	c := NewCalculator(neutralContext(), standardPrefs(), logger)

	// A typed-nil variant passes the dispatch and blows up inside the
	// kitchen walk.
	var broken *domain.KitchenFeatures
	res := c.CalculateRoom("kitchen", broken)

	assert.Equal(t, domain.RoomCostResult{}, res)
	require.Len(t, logger.errorFields, 1)
	assert.Equal(t, "kitchen", logger.errorFields[0]["room"])

	// A sibling room computed right after on the same calculator is unaffected.
	sibling := c.CalculateRoom("bedroom_1", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeBedroom,
		AreaM2:   f64(10),
		Surfaces: &domain.SurfaceFeatures{
			FloorMaterial:  domain.FloorParquet,
			FloorCondition: score(1),
		},
	})
	require.Len(t, sibling.LineItems, 1)
	assert.Greater(t, sibling.CostBreakdown.TotalMin, 0.0)
}

func TestCalculateRoomGoodConditionNeedsNothing(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	res := c.CalculateRoom("living_room", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeLivingRoom,
		AreaM2:   f64(20),
		Surfaces: &domain.SurfaceFeatures{
			FloorMaterial:    domain.FloorParquet,
			FloorCondition:   score(5),
			WallFinish:       domain.WallPaint,
			WallCondition:    score(4),
			CeilingCondition: score(5),
		},
		Fixtures: &domain.GenericFixtures{
			WindowCondition: score(4),
			DoorCondition:   score(5),
		},
	})

	assert.Empty(t, res.LineItems)
	assert.Equal(t, domain.ScopeNone, res.WorkScope.Overall)
	assert.Equal(t, ConfidenceSurfFixtBoth, res.ModuleConfidence.Overall)
}

func TestCalculateRoomFlooringReplace(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	res := c.CalculateRoom("bedroom_1", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeBedroom,
		AreaM2:   f64(10),
		Surfaces: &domain.SurfaceFeatures{
			FloorMaterial:  domain.FloorParquet,
			FloorCondition: score(2),
		},
	})

	require.Len(t, res.LineItems, 1)
	item := res.LineItems[0]
	assert.Equal(t, domain.CategoryFlooring, item.Category)
	assert.Equal(t, domain.ActionReplace, item.Action)
	assert.Equal(t, domain.PriorityMedia, item.Priority)
	assert.Equal(t, UnitM2, item.Unit)
	assert.Equal(t, 10.0, item.Quantity)
	// Parquet at 40-70 EUR/m2, neutral multipliers.
	assert.Equal(t, 400.0, item.CostMin)
	assert.Equal(t, 700.0, item.CostMax)
}

func TestCalculateRoomRepairIsLowPriority(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	res := c.CalculateRoom("hallway", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeHallway,
		AreaM2:   f64(6),
		Surfaces: &domain.SurfaceFeatures{
			FloorMaterial:  domain.FloorLaminate,
			FloorCondition: score(3),
		},
	})

	require.Len(t, res.LineItems, 1)
	assert.Equal(t, domain.ActionRepair, res.LineItems[0].Action)
	assert.Equal(t, domain.PriorityBaixa, res.LineItems[0].Priority)
}

func TestCalculateRoomWindowReplaceIsSafetyPriority(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	res := c.CalculateRoom("bedroom_1", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeBedroom,
		AreaM2:   f64(10),
		Fixtures: &domain.GenericFixtures{WindowCondition: score(1)},
	})

	require.Len(t, res.LineItems, 1)
	assert.Equal(t, domain.CategoryWindows, res.LineItems[0].Category)
	assert.Equal(t, domain.PriorityAlta, res.LineItems[0].Priority)
}

func TestCalculateRoomEraTriggersMEPWork(t *testing.T) {
	ctx := neutralContext()
	ctx.Era = domain.EraPre1951
	c := NewCalculator(ctx, standardPrefs(), testLogger())

	res := c.CalculateRoom("bedroom_1", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeBedroom,
		AreaM2:   f64(10),
		MEP: &domain.MEPFeatures{
			OutletStyle:   domain.OutletModern,
			PlumbingState: domain.PlumbingVisibleGood,
		},
	})

	categories := make(map[domain.Category]bool)
	for _, item := range res.LineItems {
		categories[item.Category] = true
	}
	assert.True(t, categories[domain.CategoryElectrical], "old era should force rewiring")
	assert.True(t, categories[domain.CategoryPlumbing], "old era should force replumbing")
	assert.Equal(t, domain.ScopeReplace, res.WorkScope.MEP)
}

func TestCalculateRoomAbsentMEPModuleProducesNoMEPItems(t *testing.T) {
	// Module optionality beats the era trigger: no MEP observations, no MEP cost.
	ctx := neutralContext()
	ctx.Era = domain.EraPre1951
	c := NewCalculator(ctx, standardPrefs(), testLogger())

	res := c.CalculateRoom("bedroom_1", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeBedroom,
		AreaM2:   f64(10),
	})

	assert.Empty(t, res.LineItems)
	assert.Equal(t, domain.ScopeNone, res.WorkScope.MEP)
}

func TestCalculateRoomMEPDoesNotAffectOverallScope(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	res := c.CalculateRoom("bedroom_1", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeBedroom,
		AreaM2:   f64(10),
		MEP: &domain.MEPFeatures{
			OutletStyle:   domain.OutletBakeliteOld,
			PlumbingState: domain.PlumbingNotVisible,
		},
	})

	assert.Equal(t, domain.ScopeReplace, res.WorkScope.MEP)
	// No surface or fixture scores exist, so the overall average stays empty.
	assert.Equal(t, domain.ScopeNone, res.WorkScope.Overall)
}

func TestCalculateRoomBreakdownInvariant(t *testing.T) {
	c := NewCalculator(domain.PropertyContext{
		Era:         domain.EraPre1951,
		Region:      domain.RegionLisboa,
		FloorAccess: domain.AccessWalkupHigh,
	}, domain.UserPreferences{FinishLevel: domain.FinishPremium}, testLogger())

	res := c.CalculateRoom("living_room", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeLivingRoom,
		AreaM2:   f64(22),
		Surfaces: &domain.SurfaceFeatures{
			FloorMaterial:    domain.FloorParquet,
			FloorCondition:   score(1),
			WallFinish:       domain.WallWallpaper,
			WallCondition:    score(2),
			CeilingCondition: score(3),
		},
		Fixtures: &domain.GenericFixtures{WindowCondition: score(2), DoorCondition: score(3)},
		MEP:      &domain.MEPFeatures{OutletStyle: domain.OutletSurfaceMounted, PlumbingState: domain.PlumbingVisibleCorroded},
	})

	require.NotEmpty(t, res.LineItems)
	var materialsMin, materialsMax, laborMin, laborMax float64
	for _, item := range res.LineItems {
		assert.InDelta(t, item.MaterialsMin+item.LaborMin, item.CostMin, 0.01)
		assert.InDelta(t, item.MaterialsMax+item.LaborMax, item.CostMax, 0.01)
		assert.LessOrEqual(t, item.CostMin, item.CostMax)
		materialsMin += item.MaterialsMin
		materialsMax += item.MaterialsMax
		laborMin += item.LaborMin
		laborMax += item.LaborMax
	}
	assert.InDelta(t, materialsMin, res.CostBreakdown.MaterialsMin, 0.01)
	assert.InDelta(t, materialsMax, res.CostBreakdown.MaterialsMax, 0.01)
	assert.InDelta(t, laborMin, res.CostBreakdown.LaborMin, 0.01)
	assert.InDelta(t, laborMax, res.CostBreakdown.LaborMax, 0.01)
	assert.InDelta(t, res.CostBreakdown.MaterialsMin+res.CostBreakdown.LaborMin, res.CostBreakdown.TotalMin, 0.01)
	assert.InDelta(t, res.CostBreakdown.MaterialsMax+res.CostBreakdown.LaborMax, res.CostBreakdown.TotalMax, 0.01)
}

func TestCalculateRoomIsDeterministic(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())
	features := &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeBedroom,
		AreaM2:   f64(12),
		Surfaces: &domain.SurfaceFeatures{
			FloorMaterial:  domain.FloorVinyl,
			FloorCondition: score(2),
			WallCondition:  score(3),
		},
		Fixtures: &domain.GenericFixtures{WindowCondition: score(3)},
	}

	first := c.CalculateRoom("bedroom_1", features)
	second := c.CalculateRoom("bedroom_1", features)
	assert.Equal(t, first, second)
}

func TestCalculateRoomDIYZeroesAllLabor(t *testing.T) {
	prefs := standardPrefs()
	prefs.DIY = true
	c := NewCalculator(neutralContext(), prefs, testLogger())

	res := c.CalculateRoom("bedroom_1", &domain.GenericRoomFeatures{
		RoomType: domain.RoomTypeBedroom,
		AreaM2:   f64(10),
		Surfaces: &domain.SurfaceFeatures{
			FloorMaterial:  domain.FloorLaminate,
			FloorCondition: score(1),
			WallCondition:  score(2),
		},
	})

	require.NotEmpty(t, res.LineItems)
	assert.Equal(t, 0.0, res.CostBreakdown.LaborMin)
	assert.Equal(t, 0.0, res.CostBreakdown.LaborMax)
	assert.Greater(t, res.CostBreakdown.TotalMin, 0.0)
}
