package costing

import "cost-engine-service/internal/core/domain"

// ResolveArea determines the effective floor area of a room, in priority
// order: the vision-model estimate, the usable area share, the total area
// share, and finally a fixed default.
func ResolveArea(features domain.RoomFeatures, roomType domain.RoomType, ctx domain.PropertyContext) float64 {
	if features != nil {
		if est := features.EstimatedAreaM2(); est != nil && *est > 0 {
			return *est
		}
	}

	weight := areaWeight(roomType)
	if ctx.UsableAreaM2 > 0 {
		return ctx.UsableAreaM2 * weight
	}
	if ctx.AreaM2 > 0 {
		return ctx.AreaM2 * weight
	}
	return DefaultRoomAreaM2
}
