package port

import (
	"context"

	"cost-engine-service/internal/core/domain"

	"github.com/google/uuid"
)

// EstimateStoragePort persists finished property estimates.
type EstimateStoragePort interface {
	Save(ctx context.Context, estimate domain.PropertyEstimate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PropertyEstimate, error)
}
