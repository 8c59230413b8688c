package costing

import "cost-engine-service/internal/core/domain"

// calculateBathroom uses its own surface walk: Portuguese bathrooms are
// assumed fully tiled, so the floor defaults to ceramic-tile pricing and the
// walls to azulejos, whatever the photos suggest.
func (c *Calculator) calculateBathroom(f *domain.BathroomFeatures) domain.RoomCostResult {
	area := ResolveArea(f, domain.RoomTypeBathroom, c.ctx)
	t := &roomTally{}

	c.bathroomSurfaceItems(f.Surfaces, area, t)
	if f.Fixtures != nil {
		c.bathroomFixtureItems(f.Fixtures, area, t)
	}
	c.mepItems(f.MEP, area, t)

	confidence := domain.ModuleConfidence{MEP: mepConfidence(f.MEP)}
	if f.Surfaces != nil {
		confidence.Surfaces = assessedFraction(f.Surfaces.FloorCondition, f.Surfaces.WallCondition, f.Surfaces.CeilingCondition)
	}
	if f.Fixtures != nil {
		confidence.Fixtures = assessedFraction(
			f.Fixtures.WindowCondition, f.Fixtures.DoorCondition,
			f.Fixtures.SanitaryCondition, f.Fixtures.ShowerBathCondition,
		)
	}
	return c.finalize(t, confidence)
}

func (c *Calculator) bathroomSurfaceItems(s *domain.SurfaceFeatures, area float64, t *roomTally) {
	if s == nil {
		return
	}
	t.noteSurface(s.FloorCondition)
	t.noteSurface(s.WallCondition)
	t.noteSurface(s.CeilingCondition)

	switch ResolveAction(s.FloorCondition) {
	case domain.ActionReplace:
		t.add(c.lineItem(domain.CategoryFlooring, domain.ActionReplace,
			"Replace bathroom floor (ceramic tile)",
			floorReplacePrices[domain.FloorCeramicTile], area, UnitM2,
			priorityFor(domain.CategoryFlooring, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryFlooring, domain.ActionRepair,
			"Repair bathroom floor tiles",
			floorRepairPrice, area, UnitM2, priorityFor(domain.CategoryFlooring, domain.ActionRepair)))
	}

	wallArea := area * WallAreaFactor
	switch ResolveAction(s.WallCondition) {
	case domain.ActionReplace:
		pr := PriceRange{
			Min: tileRemovalPrice.Min + tileInstallPrice.Min,
			Max: tileRemovalPrice.Max + tileInstallPrice.Max,
		}
		t.add(c.lineItem(domain.CategoryBathroomTiles, domain.ActionReplace,
			"Remove and retile bathroom walls",
			pr, wallArea, UnitM2, priorityFor(domain.CategoryBathroomTiles, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryBathroomTiles, domain.ActionRepair,
			"Regrout and patch bathroom wall tiles",
			wallRegroutPrice, wallArea, UnitM2, priorityFor(domain.CategoryBathroomTiles, domain.ActionRepair)))
	}

	switch ResolveAction(s.CeilingCondition) {
	case domain.ActionReplace:
		t.add(c.lineItem(domain.CategoryCeiling, domain.ActionReplace,
			"Replace bathroom ceiling (moisture-resistant)",
			ceilingReplacePrice, area, UnitM2, priorityFor(domain.CategoryCeiling, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryCeiling, domain.ActionRepair,
			"Repaint bathroom ceiling (anti-mould)",
			ceilingRepairPrice, area, UnitM2, priorityFor(domain.CategoryCeiling, domain.ActionRepair)))
	}
}

func (c *Calculator) bathroomFixtureItems(fx *domain.BathroomFixtures, area float64, t *roomTally) {
	c.windowDoorItems(fx.WindowCondition, fx.DoorCondition, area, t)

	t.noteFixture(fx.SanitaryCondition)
	t.noteFixture(fx.ShowerBathCondition)

	switch ResolveAction(fx.SanitaryCondition) {
	case domain.ActionReplace:
		t.add(c.lineItem(domain.CategoryBathroomSanitary, domain.ActionReplace,
			"Replace sanitary ware (toilet, basin)",
			sanitaryReplacePrice, 1, UnitVG, priorityFor(domain.CategoryBathroomSanitary, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryBathroomSanitary, domain.ActionRepair,
			"Repair sanitary ware (seals, mechanisms)",
			sanitaryRepairPrice, 1, UnitVG, priorityFor(domain.CategoryBathroomSanitary, domain.ActionRepair)))
	}

	switch ResolveAction(fx.ShowerBathCondition) {
	case domain.ActionReplace:
		t.add(c.lineItem(domain.CategoryBathroomShower, domain.ActionReplace,
			"Replace shower/bathtub",
			showerBathReplacePrice, 1, UnitVG, priorityFor(domain.CategoryBathroomShower, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryBathroomShower, domain.ActionRepair,
			"Repair shower/bathtub (resealing, fittings)",
			showerBathRepairPrice, 1, UnitVG, priorityFor(domain.CategoryBathroomShower, domain.ActionRepair)))
	}
}
