package costing

import (
	"fmt"
	"math"

	"cost-engine-service/internal/core/domain"
	"cost-engine-service/internal/core/port"
)

// Calculator walks the feature modules of a room and emits itemized,
// bounded cost estimates. It is pure: it only reads the immutable context
// and preferences and constructs fresh values, so a single instance may be
// shared across concurrent room calculations.
type Calculator struct {
	ctx    domain.PropertyContext
	prefs  domain.UserPreferences
	logger port.LoggerPort
}

func NewCalculator(ctx domain.PropertyContext, prefs domain.UserPreferences, logger port.LoggerPort) *Calculator {
	return &Calculator{ctx: ctx, prefs: prefs, logger: logger}
}

// CalculateRoom dispatches on the room feature variant. An internal failure
// in one room is recovered here, logged with the room identity, and turned
// into the all-default result; it never aborts sibling rooms.
func (c *Calculator) CalculateRoom(label string, features domain.RoomFeatures) (result domain.RoomCostResult) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Room cost calculation failed, falling back to empty result",
				fmt.Errorf("panic: %v", r), port.Fields{"room": label})
			result = domain.RoomCostResult{}
		}
	}()

	switch f := features.(type) {
	case *domain.GenericRoomFeatures:
		return c.calculateGeneric(f)
	case *domain.KitchenFeatures:
		return c.calculateKitchen(f)
	case *domain.BathroomFeatures:
		return c.calculateBathroom(f)
	case nil:
		return domain.RoomCostResult{}
	default:
		c.logger.Warn("Unknown room feature variant, skipping room", port.Fields{
			"room": label, "variant": fmt.Sprintf("%T", features),
		})
		return domain.RoomCostResult{}
	}
}

// roomTally accumulates line items and the condition scores that feed the
// work-scope classification.
type roomTally struct {
	items         []domain.CostLineItem
	surfaceScores []domain.ConditionScore
	fixtureScores []domain.ConditionScore
}

func (t *roomTally) add(item domain.CostLineItem) {
	t.items = append(t.items, item)
}

func (t *roomTally) noteSurface(s *domain.ConditionScore) {
	if s != nil {
		t.surfaceScores = append(t.surfaceScores, *s)
	}
}

func (t *roomTally) noteFixture(s *domain.ConditionScore) {
	if s != nil {
		t.fixtureScores = append(t.fixtureScores, *s)
	}
}

func (t *roomTally) hasMEPWork() bool {
	for _, item := range t.items {
		if item.Category == domain.CategoryElectrical || item.Category == domain.CategoryPlumbing {
			return true
		}
	}
	return false
}

// safetyCategories get alta priority on replacement: they affect
// habitability, not looks.
var safetyCategories = map[domain.Category]bool{
	domain.CategoryElectrical:        true,
	domain.CategoryPlumbing:          true,
	domain.CategoryBathroomSanitary:  true,
	domain.CategoryBathroomShower:    true,
	domain.CategoryWindows:           true,
	domain.CategoryKitchenAppliances: true,
}

func priorityFor(category domain.Category, action domain.Action) domain.Priority {
	if action == domain.ActionRepair {
		return domain.PriorityBaixa
	}
	if safetyCategories[category] {
		return domain.PriorityAlta
	}
	return domain.PriorityMedia
}

// lineItem builds a fully multiplied line item from a raw price range.
// The cost bounds are the sum of the materials and labor bounds by
// construction, which keeps the breakdown invariant exact.
func (c *Calculator) lineItem(category domain.Category, action domain.Action, description string,
	pr PriceRange, quantity float64, unit string, priority domain.Priority) domain.CostLineItem {

	split := ApplyMultipliers(
		pr.Min*quantity,
		pr.Max*quantity,
		finishMultiplier(c.prefs.FinishLevel),
		regionalMultiplier(c.ctx.Region),
		floorSurcharge(c.ctx.FloorAccess),
		laborFraction(category),
		c.prefs.DIY,
	)

	return domain.CostLineItem{
		Category:     category,
		Action:       action,
		Description:  description,
		CostMin:      round2(split.MaterialsMin + split.LaborMin),
		CostMax:      round2(split.MaterialsMax + split.LaborMax),
		MaterialsMin: split.MaterialsMin,
		MaterialsMax: split.MaterialsMax,
		LaborMin:     split.LaborMin,
		LaborMax:     split.LaborMax,
		Unit:         unit,
		Quantity:     round2(quantity),
		Priority:     priority,
	}
}

// surfaceItems walks module M1 for generic rooms and kitchens. Bathrooms
// have their own walk (tiled defaults).
func (c *Calculator) surfaceItems(s *domain.SurfaceFeatures, area float64, t *roomTally) {
	if s == nil {
		return
	}
	t.noteSurface(s.FloorCondition)
	t.noteSurface(s.WallCondition)
	t.noteSurface(s.CeilingCondition)

	switch ResolveAction(s.FloorCondition) {
	case domain.ActionReplace:
		pr := floorReplacePrice(s.FloorMaterial)
		t.add(c.lineItem(domain.CategoryFlooring, domain.ActionReplace,
			fmt.Sprintf("Replace flooring (%s)", floorMaterialLabel(s.FloorMaterial)),
			pr, area, UnitM2, priorityFor(domain.CategoryFlooring, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryFlooring, domain.ActionRepair,
			"Repair flooring (sanding, patching)",
			floorRepairPrice, area, UnitM2, priorityFor(domain.CategoryFlooring, domain.ActionRepair)))
	}

	wallArea := area * WallAreaFactor
	switch ResolveAction(s.WallCondition) {
	case domain.ActionReplace:
		if s.WallFinish == domain.WallAzulejos {
			// Tiled walls: removal plus fresh install, one combined item.
			pr := PriceRange{
				Min: tileRemovalPrice.Min + tileInstallPrice.Min,
				Max: tileRemovalPrice.Max + tileInstallPrice.Max,
			}
			t.add(c.lineItem(domain.CategoryWalls, domain.ActionReplace,
				"Remove old azulejos and install new wall tiles",
				pr, wallArea, UnitM2, priorityFor(domain.CategoryWalls, domain.ActionReplace)))
		} else {
			t.add(c.lineItem(domain.CategoryWalls, domain.ActionReplace,
				"Strip and replaster walls",
				wallReplasterPrice, wallArea, UnitM2, priorityFor(domain.CategoryWalls, domain.ActionReplace)))
		}
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryWalls, domain.ActionRepair,
			"Repaint walls",
			wallRepaintPrice, wallArea, UnitM2, priorityFor(domain.CategoryWalls, domain.ActionRepair)))
	}

	switch ResolveAction(s.CeilingCondition) {
	case domain.ActionReplace:
		t.add(c.lineItem(domain.CategoryCeiling, domain.ActionReplace,
			"Replace ceiling (replaster or false ceiling)",
			ceilingReplacePrice, area, UnitM2, priorityFor(domain.CategoryCeiling, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryCeiling, domain.ActionRepair,
			"Repaint ceiling",
			ceilingRepairPrice, area, UnitM2, priorityFor(domain.CategoryCeiling, domain.ActionRepair)))
	}
}

// windowDoorItems covers the window/door part of module M2, shared by all
// three variants.
func (c *Calculator) windowDoorItems(window, door *domain.ConditionScore, area float64, t *roomTally) {
	t.noteFixture(window)
	t.noteFixture(door)

	windowQty := math.Max(1, math.Round(area/WindowAreaDivisorM2))
	switch ResolveAction(window) {
	case domain.ActionReplace:
		t.add(c.lineItem(domain.CategoryWindows, domain.ActionReplace,
			"Replace windows (double glazing)",
			windowReplacePrice, windowQty, UnitUnit, priorityFor(domain.CategoryWindows, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryWindows, domain.ActionRepair,
			"Repair windows (seals, hardware)",
			windowRepairPrice, windowQty, UnitUnit, priorityFor(domain.CategoryWindows, domain.ActionRepair)))
	}

	switch ResolveAction(door) {
	case domain.ActionReplace:
		t.add(c.lineItem(domain.CategoryDoors, domain.ActionReplace,
			"Replace interior door",
			doorReplacePrice, 1, UnitUnit, priorityFor(domain.CategoryDoors, domain.ActionReplace)))
	case domain.ActionRepair:
		t.add(c.lineItem(domain.CategoryDoors, domain.ActionRepair,
			"Repair interior door",
			doorRepairPrice, 1, UnitUnit, priorityFor(domain.CategoryDoors, domain.ActionRepair)))
	}
}

// mepItems walks module M3. Rewiring and replumbing trigger on the observed
// style/state or on the construction era alone, independent of any per-room
// condition score.
func (c *Calculator) mepItems(m *domain.MEPFeatures, area float64, t *roomTally) {
	if m == nil {
		return
	}

	if m.OutletStyle == domain.OutletBakeliteOld || m.OutletStyle == domain.OutletSurfaceMounted ||
		eraRewiringLikely[c.ctx.Era] {
		t.add(c.lineItem(domain.CategoryElectrical, domain.ActionRewire,
			"Rewire room electrical circuits",
			rewirePrice, area, UnitM2, priorityFor(domain.CategoryElectrical, domain.ActionRewire)))
	}

	if m.PlumbingState == domain.PlumbingVisibleCorroded || eraReplumbingLikely[c.ctx.Era] {
		t.add(c.lineItem(domain.CategoryPlumbing, domain.ActionReplace,
			"Replace visible plumbing runs",
			replumbPrice, 1, UnitVG, priorityFor(domain.CategoryPlumbing, domain.ActionReplace)))
	}
}

// finalize folds the tally into the room result: breakdown sums, work-scope
// classification and module confidence.
func (c *Calculator) finalize(t *roomTally, confidence domain.ModuleConfidence) domain.RoomCostResult {
	var bd domain.CostBreakdown
	for _, item := range t.items {
		bd.MaterialsMin += item.MaterialsMin
		bd.MaterialsMax += item.MaterialsMax
		bd.LaborMin += item.LaborMin
		bd.LaborMax += item.LaborMax
	}
	bd.MaterialsMin = round2(bd.MaterialsMin)
	bd.MaterialsMax = round2(bd.MaterialsMax)
	bd.LaborMin = round2(bd.LaborMin)
	bd.LaborMax = round2(bd.LaborMax)
	bd.TotalMin = round2(bd.MaterialsMin + bd.LaborMin)
	bd.TotalMax = round2(bd.MaterialsMax + bd.LaborMax)

	mepScope := domain.ScopeNone
	if t.hasMEPWork() {
		mepScope = domain.ScopeReplace
	}

	// The room overall averages surface and fixture scores together; MEP
	// scores never enter the average.
	combined := append(append([]domain.ConditionScore{}, t.surfaceScores...), t.fixtureScores...)

	confidence.Overall = overallConfidence(confidence)

	return domain.RoomCostResult{
		CostBreakdown: bd,
		LineItems:     t.items,
		WorkScope: domain.WorkScopeResult{
			Surfaces: scopeFromScores(t.surfaceScores),
			Fixtures: scopeFromScores(t.fixtureScores),
			MEP:      mepScope,
			Overall:  scopeFromScores(combined),
		},
		ModuleConfidence: confidence,
	}
}

// calculateGeneric handles bedrooms, living rooms, hallways and balconies.
func (c *Calculator) calculateGeneric(f *domain.GenericRoomFeatures) domain.RoomCostResult {
	area := ResolveArea(f, f.RoomType, c.ctx)
	t := &roomTally{}

	c.surfaceItems(f.Surfaces, area, t)
	if f.Fixtures != nil {
		c.windowDoorItems(f.Fixtures.WindowCondition, f.Fixtures.DoorCondition, area, t)
	}
	c.mepItems(f.MEP, area, t)

	confidence := domain.ModuleConfidence{MEP: mepConfidence(f.MEP)}
	if f.Surfaces != nil {
		confidence.Surfaces = assessedFraction(f.Surfaces.FloorCondition, f.Surfaces.WallCondition, f.Surfaces.CeilingCondition)
	}
	if f.Fixtures != nil {
		confidence.Fixtures = assessedFraction(f.Fixtures.WindowCondition, f.Fixtures.DoorCondition)
	}
	return c.finalize(t, confidence)
}

func floorMaterialLabel(m domain.FloorMaterial) string {
	if m == "" || m == domain.FloorNotVisible {
		return "material not visible"
	}
	return string(m)
}
