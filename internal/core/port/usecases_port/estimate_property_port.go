package usecases_port

import (
	"context"

	"cost-engine-service/internal/core/domain"
)

type EstimatePropertyUseCase interface {
	Execute(ctx context.Context, assessment domain.PropertyAssessment) (*domain.PropertyEstimate, error)
}
