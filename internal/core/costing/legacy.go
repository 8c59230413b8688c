package costing

import (
	"sort"

	"cost-engine-service/internal/core/domain"
)

// legacyConditionLabels maps a work scope to the single qualitative label
// older consumers expect.
var legacyConditionLabels = map[domain.WorkScope]string{
	domain.ScopeNone:           "bom_estado",
	domain.ScopeRepair:         "pequenos_retoques",
	domain.ScopeRefurbish:      "a_precisar_de_obras",
	domain.ScopeReplace:        "obras_profundas",
	domain.ScopeFullRenovation: "renovacao_total",
}

// LegacyRoomSummary flattens one room's line items into the older
// non-structured shape.
func LegacyRoomSummary(res domain.RoomCostResult) domain.LegacySummary {
	items := make([]string, 0, len(res.LineItems))
	for _, item := range res.LineItems {
		items = append(items, item.Description)
	}
	return domain.LegacySummary{
		Condition: legacyConditionLabels[res.WorkScope.Overall],
		Items:     items,
		TotalMin:  res.CostBreakdown.TotalMin,
		TotalMax:  res.CostBreakdown.TotalMax,
	}
}

// LegacyPropertySummary flattens the whole property: one condition label
// from the composite scope, every room's items, summed bounds. Room order
// is normalized by label so the output is deterministic.
func LegacyPropertySummary(rooms map[string]domain.RoomCostResult, composite domain.CompositeIndices) domain.LegacySummary {
	labels := make([]string, 0, len(rooms))
	for label := range rooms {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	summary := domain.LegacySummary{
		Condition: legacyConditionLabels[composite.WorkScope],
		Items:     []string{},
	}
	for _, label := range labels {
		res := rooms[label]
		for _, item := range res.LineItems {
			summary.Items = append(summary.Items, label+": "+item.Description)
		}
		summary.TotalMin = round2(summary.TotalMin + res.CostBreakdown.TotalMin)
		summary.TotalMax = round2(summary.TotalMax + res.CostBreakdown.TotalMax)
	}
	return summary
}
