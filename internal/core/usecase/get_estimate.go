package usecase

import (
	"context"
	"fmt"

	"cost-engine-service/internal/contextkeys"
	"cost-engine-service/internal/core/domain"
	"cost-engine-service/internal/core/port"

	"github.com/google/uuid"
)

// GetEstimateUseCase fetches a previously computed estimate.
type GetEstimateUseCase struct {
	storage port.EstimateStoragePort
}

func NewGetEstimateUseCase(storage port.EstimateStoragePort) *GetEstimateUseCase {
	return &GetEstimateUseCase{storage: storage}
}

func (uc *GetEstimateUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.PropertyEstimate, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetEstimate",
		"estimate_id": id.String(),
	})

	estimate, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		if err != domain.ErrEstimateNotFound {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, fmt.Errorf("failed to get estimate %s: %w", id, err)
	}

	ucLogger.Debug("Estimate fetched", nil)
	return estimate, nil
}
