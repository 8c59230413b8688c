package usecases_port

import (
	"context"

	"cost-engine-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetEstimateUseCase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.PropertyEstimate, error)
}
