package costing

import (
	"testing"

	"cost-engine-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBathroomFloorAlwaysPricedAsCeramic(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	res := c.CalculateRoom("bathroom", &domain.BathroomFeatures{
		AreaM2: f64(4),
		Surfaces: &domain.SurfaceFeatures{
			// The reported material is ignored; bathrooms are retiled.
			FloorMaterial:  domain.FloorParquet,
			FloorCondition: score(1),
		},
	})

	item := findItem(res.LineItems, domain.CategoryFlooring)
	require.NotNil(t, item)
	// Ceramic tile at 25-45 EUR/m2 on 4 m2, not parquet pricing.
	assert.Equal(t, 100.0, item.CostMin)
	assert.Equal(t, 180.0, item.CostMax)
}

func TestBathroomWallWork(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	t.Run("replace removes and retiles", func(t *testing.T) {
		res := c.CalculateRoom("bathroom", &domain.BathroomFeatures{
			AreaM2:   f64(4),
			Surfaces: &domain.SurfaceFeatures{WallCondition: score(2)},
		})
		item := findItem(res.LineItems, domain.CategoryBathroomTiles)
		require.NotNil(t, item)
		assert.Equal(t, domain.ActionReplace, item.Action)
		// (8+20)..(14+35) EUR/m2 on 4*2.5 m2 of wall.
		assert.Equal(t, 280.0, item.CostMin)
		assert.Equal(t, 490.0, item.CostMax)
		assert.Equal(t, 10.0, item.Quantity)
	})

	t.Run("repair regrouts", func(t *testing.T) {
		res := c.CalculateRoom("bathroom", &domain.BathroomFeatures{
			AreaM2:   f64(4),
			Surfaces: &domain.SurfaceFeatures{WallCondition: score(3)},
		})
		item := findItem(res.LineItems, domain.CategoryBathroomTiles)
		require.NotNil(t, item)
		assert.Equal(t, domain.ActionRepair, item.Action)
		assert.Equal(t, 80.0, item.CostMin)
		assert.Equal(t, 160.0, item.CostMax)
	})
}

func TestBathroomFixtures(t *testing.T) {
	c := NewCalculator(neutralContext(), standardPrefs(), testLogger())

	res := c.CalculateRoom("bathroom", &domain.BathroomFeatures{
		AreaM2: f64(4),
		Fixtures: &domain.BathroomFixtures{
			SanitaryCondition:   score(1),
			ShowerBathCondition: score(3),
		},
	})

	sanitary := findItem(res.LineItems, domain.CategoryBathroomSanitary)
	require.NotNil(t, sanitary)
	assert.Equal(t, domain.ActionReplace, sanitary.Action)
	assert.Equal(t, domain.PriorityAlta, sanitary.Priority)
	assert.Equal(t, UnitVG, sanitary.Unit)

	shower := findItem(res.LineItems, domain.CategoryBathroomShower)
	require.NotNil(t, shower)
	assert.Equal(t, domain.ActionRepair, shower.Action)
	assert.Equal(t, domain.PriorityBaixa, shower.Priority)
}
