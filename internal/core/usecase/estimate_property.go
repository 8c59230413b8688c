package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cost-engine-service/internal/contextkeys"
	"cost-engine-service/internal/core/costing"
	"cost-engine-service/internal/core/domain"
	"cost-engine-service/internal/core/port"

	"github.com/google/uuid"
)

// EstimatePropertyUseCase runs the cost engine over a full property
// assessment, persists the estimate and publishes it.
type EstimatePropertyUseCase struct {
	storage port.EstimateStoragePort
	results port.EstimateResultsQueuePort
}

func NewEstimatePropertyUseCase(storage port.EstimateStoragePort, results port.EstimateResultsQueuePort) *EstimatePropertyUseCase {
	return &EstimatePropertyUseCase{
		storage: storage,
		results: results,
	}
}

func (uc *EstimatePropertyUseCase) Execute(ctx context.Context, assessment domain.PropertyAssessment) (*domain.PropertyEstimate, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "EstimateProperty",
		"property_id": assessment.PropertyID,
		"room_count":  len(assessment.Rooms),
	})

	ucLogger.Info("Use case started: estimating renovation costs", nil)

	calculator := costing.NewCalculator(assessment.Context, assessment.Preferences, ucLogger)

	// The engine is pure, so rooms are embarrassingly parallel: one
	// goroutine per room, results collected under a mutex.
	roomResults := make(map[string]domain.RoomCostResult, len(assessment.Rooms))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for label, features := range assessment.Rooms {
		wg.Add(1)
		go func(label string, features domain.RoomFeatures) {
			defer wg.Done()
			result := calculator.CalculateRoom(label, features)
			mu.Lock()
			roomResults[label] = result
			mu.Unlock()
		}(label, features)
	}
	wg.Wait()

	composite := costing.ComputeCompositeIndices(roomResults, assessment.Context)

	estimate := domain.PropertyEstimate{
		ID:         uuid.New(),
		PropertyID: assessment.PropertyID,
		CreatedAt:  time.Now().UTC(),
		Rooms:      roomResults,
		Composite:  composite,
		Legacy:     costing.LegacyPropertySummary(roomResults, composite),
	}

	if err := uc.storage.Save(ctx, estimate); err != nil {
		ucLogger.Error("Failed to persist estimate", err, nil)
		return nil, fmt.Errorf("failed to save estimate for property %s: %w", assessment.PropertyID, err)
	}

	// Publishing is best-effort: the estimate is already saved, so a broker
	// hiccup must not fail the request.
	if err := uc.results.Enqueue(ctx, estimate); err != nil {
		ucLogger.Error("Failed to publish estimate event after successful save", err, nil)
	}

	ucLogger.Info("Use case finished: estimate computed", port.Fields{
		"estimate_id":   estimate.ID.String(),
		"total_min":     estimate.Legacy.TotalMin,
		"total_max":     estimate.Legacy.TotalMax,
		"overall_scope": composite.WorkScope.String(),
	})
	return &estimate, nil
}
