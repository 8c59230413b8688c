package costing

import (
	"testing"

	"cost-engine-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveArea(t *testing.T) {
	t.Run("vision estimate wins over everything", func(t *testing.T) {
		features := &domain.GenericRoomFeatures{RoomType: domain.RoomTypeBedroom, AreaM2: f64(14.5)}
		ctx := domain.PropertyContext{AreaM2: 100, UsableAreaM2: 80}
		assert.Equal(t, 14.5, ResolveArea(features, domain.RoomTypeBedroom, ctx))
	})

	t.Run("zero estimate is ignored", func(t *testing.T) {
		features := &domain.GenericRoomFeatures{RoomType: domain.RoomTypeBedroom, AreaM2: f64(0)}
		ctx := domain.PropertyContext{UsableAreaM2: 80}
		assert.Equal(t, 80*0.16, ResolveArea(features, domain.RoomTypeBedroom, ctx))
	})

	t.Run("usable area share beats total area share", func(t *testing.T) {
		ctx := domain.PropertyContext{AreaM2: 100, UsableAreaM2: 80}
		assert.Equal(t, 80*0.15, ResolveArea(nil, domain.RoomTypeKitchen, ctx))
	})

	t.Run("total area share when usable is absent", func(t *testing.T) {
		ctx := domain.PropertyContext{AreaM2: 100}
		assert.Equal(t, 100*0.08, ResolveArea(nil, domain.RoomTypeBathroom, ctx))
	})

	t.Run("default when nothing is known", func(t *testing.T) {
		assert.Equal(t, DefaultRoomAreaM2, ResolveArea(nil, domain.RoomTypeHallway, domain.PropertyContext{}))
	})

	t.Run("unknown room type uses the default weight", func(t *testing.T) {
		ctx := domain.PropertyContext{UsableAreaM2: 50}
		assert.Equal(t, 50*defaultAreaWeight, ResolveArea(nil, domain.RoomType("attic"), ctx))
	})
}
