package costing

import (
	"context"

	"cost-engine-service/internal/contextkeys"
	"cost-engine-service/internal/core/domain"
	"cost-engine-service/internal/core/port"
)

func score(v int) *domain.ConditionScore {
	s := domain.ConditionScore(v)
	return &s
}

func f64(v float64) *float64 {
	return &v
}

func testLogger() port.LoggerPort {
	return contextkeys.LoggerFromContext(context.Background())
}

// neutralContext carries multipliers of 1.0 and no era triggers, so raw table
// prices flow through unchanged.
func neutralContext() domain.PropertyContext {
	return domain.PropertyContext{
		Era:         domain.EraPost2010,
		Region:      domain.RegionLitoral,
		FloorAccess: domain.AccessGround,
	}
}

func standardPrefs() domain.UserPreferences {
	return domain.UserPreferences{FinishLevel: domain.FinishStandard}
}
