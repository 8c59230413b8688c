package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyAssessment is the full input of one estimation call: the rooms as
// extracted by the vision pipeline plus the property context and the user
// preferences.
type PropertyAssessment struct {
	PropertyID  string
	Rooms       map[string]RoomFeatures // keyed by room label, e.g. "kitchen", "bedroom_1"
	Context     PropertyContext
	Preferences UserPreferences
}

// LegacySummary is the flat, non-structured shape kept for older consumers:
// one qualitative condition label, the item descriptions, and total bounds.
type LegacySummary struct {
	Condition string   `json:"condition"`
	Items     []string `json:"items"`
	TotalMin  float64  `json:"total_min"`
	TotalMax  float64  `json:"total_max"`
}

// PropertyEstimate is the persisted, published output of one estimation.
type PropertyEstimate struct {
	ID         uuid.UUID                 `json:"id"`
	PropertyID string                    `json:"property_id"`
	CreatedAt  time.Time                 `json:"created_at"`
	Rooms      map[string]RoomCostResult `json:"rooms"`
	Composite  CompositeIndices          `json:"composite_indices"`
	Legacy     LegacySummary             `json:"legacy_summary"`
}
