package port

import (
	"context"

	"cost-engine-service/internal/core/domain"
)

// EstimateResultsQueuePort publishes finished estimates for downstream
// consumers (presentation layer, billing).
type EstimateResultsQueuePort interface {
	Enqueue(ctx context.Context, estimate domain.PropertyEstimate) error
}
