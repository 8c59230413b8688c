package postgres_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cost-engine-service/internal/contextkeys"
	"cost-engine-service/internal/core/domain"
	"cost-engine-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresEstimateRepository persists property estimates. The structured
// result is stored as a jsonb payload next to a few queryable summary columns.
type PostgresEstimateRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEstimateRepository(pool *pgxpool.Pool) (*PostgresEstimateRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresEstimateRepository{pool: pool}, nil
}

// Save implements EstimateStoragePort.
func (r *PostgresEstimateRepository) Save(ctx context.Context, estimate domain.PropertyEstimate) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresEstimateRepository",
		"method":      "Save",
		"estimate_id": estimate.ID,
		"property_id": estimate.PropertyID,
	})

	payload, err := json.Marshal(estimate)
	if err != nil {
		repoLogger.Error("Failed to marshal estimate payload", err, nil)
		return fmt.Errorf("failed to marshal estimate %s: %w", estimate.ID, err)
	}

	repoLogger.Debug("Attempting to save estimate.", nil)
	query := `
		INSERT INTO estimates (id, property_id, created_at, overall_scope, condition_label, total_min, total_max, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.pool.Exec(ctx, query,
		estimate.ID,
		estimate.PropertyID,
		estimate.CreatedAt,
		estimate.Composite.WorkScope.String(),
		estimate.Legacy.Condition,
		estimate.Legacy.TotalMin,
		estimate.Legacy.TotalMax,
		payload,
	)
	if err != nil {
		repoLogger.Error("Failed to save estimate", err, port.Fields{"query": query})
		return fmt.Errorf("failed to save estimate %s: %w", estimate.ID, err)
	}

	repoLogger.Debug("Successfully saved estimate.", nil)
	return nil
}

// GetByID implements EstimateStoragePort.
func (r *PostgresEstimateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PropertyEstimate, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresEstimateRepository",
		"method":      "GetByID",
		"estimate_id": id,
	})

	query := `SELECT payload, created_at FROM estimates WHERE id = $1`

	var (
		payload   []byte
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&payload, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Estimate not found.", nil)
			return nil, domain.ErrEstimateNotFound
		}
		repoLogger.Error("Failed to query estimate", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query estimate %s: %w", id, err)
	}

	var estimate domain.PropertyEstimate
	if err := json.Unmarshal(payload, &estimate); err != nil {
		repoLogger.Error("Failed to unmarshal stored estimate payload", err, nil)
		return nil, fmt.Errorf("failed to unmarshal estimate %s: %w", id, err)
	}
	// The column is authoritative for the timestamp.
	estimate.CreatedAt = createdAt

	return &estimate, nil
}
