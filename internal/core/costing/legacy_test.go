package costing

import (
	"testing"

	"cost-engine-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestLegacyRoomSummary(t *testing.T) {
	res := domain.RoomCostResult{
		CostBreakdown: domain.CostBreakdown{TotalMin: 400, TotalMax: 700},
		LineItems: []domain.CostLineItem{
			{Category: domain.CategoryFlooring, Description: "Replace flooring (parquet)"},
		},
		WorkScope: domain.WorkScopeResult{Overall: domain.ScopeReplace},
	}

	summary := LegacyRoomSummary(res)
	assert.Equal(t, "obras_profundas", summary.Condition)
	assert.Equal(t, []string{"Replace flooring (parquet)"}, summary.Items)
	assert.Equal(t, 400.0, summary.TotalMin)
	assert.Equal(t, 700.0, summary.TotalMax)
}

func TestLegacyConditionLabels(t *testing.T) {
	assert.Equal(t, "bom_estado", legacyConditionLabels[domain.ScopeNone])
	assert.Equal(t, "pequenos_retoques", legacyConditionLabels[domain.ScopeRepair])
	assert.Equal(t, "a_precisar_de_obras", legacyConditionLabels[domain.ScopeRefurbish])
	assert.Equal(t, "obras_profundas", legacyConditionLabels[domain.ScopeReplace])
	assert.Equal(t, "renovacao_total", legacyConditionLabels[domain.ScopeFullRenovation])
}

func TestLegacyPropertySummary(t *testing.T) {
	rooms := map[string]domain.RoomCostResult{
		"kitchen": {
			CostBreakdown: domain.CostBreakdown{TotalMin: 1000, TotalMax: 2000},
			LineItems: []domain.CostLineItem{
				{Description: "Full kitchen cabinet replacement"},
			},
		},
		"bedroom_1": {
			CostBreakdown: domain.CostBreakdown{TotalMin: 150.5, TotalMax: 300.25},
			LineItems: []domain.CostLineItem{
				{Description: "Repaint walls"},
				{Description: "Repair interior door"},
			},
		},
	}
	composite := domain.CompositeIndices{WorkScope: domain.ScopeRefurbish}

	summary := LegacyPropertySummary(rooms, composite)

	assert.Equal(t, "a_precisar_de_obras", summary.Condition)
	// Items come out sorted by room label for determinism.
	assert.Equal(t, []string{
		"bedroom_1: Repaint walls",
		"bedroom_1: Repair interior door",
		"kitchen: Full kitchen cabinet replacement",
	}, summary.Items)
	assert.Equal(t, 1150.5, summary.TotalMin)
	assert.Equal(t, 2300.25, summary.TotalMax)
}

func TestLegacyPropertySummaryEmpty(t *testing.T) {
	summary := LegacyPropertySummary(nil, domain.CompositeIndices{WorkScope: domain.ScopeNone})
	assert.Equal(t, "bom_estado", summary.Condition)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0.0, summary.TotalMin)
	assert.Equal(t, 0.0, summary.TotalMax)
}
