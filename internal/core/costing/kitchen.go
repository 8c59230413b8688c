package costing

import "cost-engine-service/internal/core/domain"

// calculateKitchen walks the kitchen-specific module M2 on top of the shared
// surfaces and MEP walks.
func (c *Calculator) calculateKitchen(f *domain.KitchenFeatures) domain.RoomCostResult {
	area := ResolveArea(f, domain.RoomTypeKitchen, c.ctx)
	t := &roomTally{}

	c.surfaceItems(f.Surfaces, area, t)
	if f.Fixtures != nil {
		c.kitchenFixtureItems(f.Fixtures, area, t)
	}
	c.mepItems(f.MEP, area, t)

	confidence := domain.ModuleConfidence{MEP: mepConfidence(f.MEP)}
	if f.Surfaces != nil {
		confidence.Surfaces = assessedFraction(f.Surfaces.FloorCondition, f.Surfaces.WallCondition, f.Surfaces.CeilingCondition)
	}
	if f.Fixtures != nil {
		confidence.Fixtures = assessedFraction(
			f.Fixtures.WindowCondition, f.Fixtures.DoorCondition,
			f.Fixtures.CabinetCondition, f.Fixtures.CountertopCondition,
			f.Fixtures.ApplianceCondition,
		)
	}
	return c.finalize(t, confidence)
}

func (c *Calculator) kitchenFixtureItems(fx *domain.KitchenFixtures, area float64, t *roomTally) {
	c.windowDoorItems(fx.WindowCondition, fx.DoorCondition, area, t)

	t.noteFixture(fx.CabinetCondition)
	t.noteFixture(fx.CountertopCondition)
	t.noteFixture(fx.ApplianceCondition)

	// Cabinets are a three-way branch, not the generic repair/replace split:
	// a low score means full replacement, a score of exactly
	// CabinetRefaceScore gets the cheaper reface treatment.
	switch action := ResolveAction(fx.CabinetCondition); {
	case action == domain.ActionReplace:
		t.add(c.lineItem(domain.CategoryKitchenCabinets, domain.ActionReplace,
			"Full kitchen cabinet replacement",
			cabinetReplacePrice, 1, UnitVG, priorityFor(domain.CategoryKitchenCabinets, domain.ActionReplace)))
	case fx.CabinetCondition != nil && *fx.CabinetCondition == CabinetRefaceScore:
		t.add(c.lineItem(domain.CategoryKitchenCabinets, domain.ActionRepair,
			"Reface kitchen cabinets (new fronts and hardware)",
			cabinetRefacePrice, 1, UnitVG, domain.PriorityMedia))
	case action == domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryKitchenCabinets, domain.ActionRepair,
			"Repair kitchen cabinets",
			cabinetRepairPrice, 1, UnitVG, priorityFor(domain.CategoryKitchenCabinets, domain.ActionRepair)))
	}

	switch ResolveAction(fx.CountertopCondition) {
	case domain.ActionReplace:
		t.add(c.lineItem(domain.CategoryKitchenCountertop, domain.ActionReplace,
			"Replace kitchen countertop",
			countertopReplacePrice, 1, UnitVG, priorityFor(domain.CategoryKitchenCountertop, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryKitchenCountertop, domain.ActionRepair,
			"Repair kitchen countertop",
			countertopRepairPrice, 1, UnitVG, priorityFor(domain.CategoryKitchenCountertop, domain.ActionRepair)))
	}

	// No visible appliances is itself a cost signal: the kitchen needs a
	// full set regardless of any other condition.
	if len(fx.AppliancesVisible) == 0 {
		t.add(c.lineItem(domain.CategoryKitchenAppliances, domain.ActionInstall,
			"Install full appliance set (stove, oven, fridge, dishwasher)",
			applianceSetPrice, 1, UnitVG, domain.PriorityAlta))
	} else {
		switch ResolveAction(fx.ApplianceCondition) {
		case domain.ActionReplace:
			t.add(c.lineItem(domain.CategoryKitchenAppliances, domain.ActionReplace,
				"Replace worn-out appliances",
				applianceSetPrice, 1, UnitVG, priorityFor(domain.CategoryKitchenAppliances, domain.ActionReplace)))
		case domain.ActionRepair:
			t.add(c.lineItem(domain.CategoryKitchenAppliances, domain.ActionRepair,
				"Service and repair appliances",
				applianceRepairPrice, 1, UnitVG, priorityFor(domain.CategoryKitchenAppliances, domain.ActionRepair)))
		}
	}
}
