package costing

import "cost-engine-service/internal/core/domain"

// PriceRange bounds the cost of one unit of work, in EUR, before any
// multiplier is applied.
type PriceRange struct {
	Min float64
	Max float64
}

// Units used by the line items.
const (
	UnitM2   = "m2"
	UnitUnit = "un"
	UnitVG   = "vg" // verba global, a per-job lump sum
)

// Floor replacement depends on the observed material. The not-visible entry
// doubles as the fallback for any material the table does not know.
var floorReplacePrices = map[domain.FloorMaterial]PriceRange{
	domain.FloorParquet:     {40, 70},
	domain.FloorLaminate:    {20, 35},
	domain.FloorCeramicTile: {25, 45},
	domain.FloorVinyl:       {15, 30},
	domain.FloorCarpet:      {12, 25},
	domain.FloorConcrete:    {18, 35},
	domain.FloorNotVisible:  {25, 50},
}

// Floor repair is a single flat rate regardless of material.
var floorRepairPrice = PriceRange{8, 15}

// Wall treatments, per m2 of wall area.
var (
	wallRepaintPrice   = PriceRange{6, 12}
	wallReplasterPrice = PriceRange{18, 30} // strip and replaster
	tileRemovalPrice   = PriceRange{8, 14}
	tileInstallPrice   = PriceRange{20, 35}
	wallRegroutPrice   = PriceRange{8, 16} // tiled-wall repair
)

var (
	ceilingRepairPrice  = PriceRange{5, 10}
	ceilingReplacePrice = PriceRange{15, 28}
)

// Fixtures, per unit.
var (
	windowReplacePrice = PriceRange{250, 450}
	windowRepairPrice  = PriceRange{60, 120}
	doorReplacePrice   = PriceRange{150, 300}
	doorRepairPrice    = PriceRange{40, 80}
)

// Kitchen, lump sums.
var (
	cabinetReplacePrice    = PriceRange{2500, 6000}
	cabinetRefacePrice     = PriceRange{800, 1800}
	cabinetRepairPrice     = PriceRange{300, 800}
	countertopReplacePrice = PriceRange{400, 1200}
	countertopRepairPrice  = PriceRange{100, 250}
	applianceSetPrice      = PriceRange{1200, 2500}
	applianceRepairPrice   = PriceRange{150, 400}
)

// Bathroom, lump sums.
var (
	sanitaryReplacePrice   = PriceRange{400, 900}
	sanitaryRepairPrice    = PriceRange{80, 200}
	showerBathReplacePrice = PriceRange{500, 1200}
	showerBathRepairPrice  = PriceRange{100, 300}
)

// MEP.
var (
	rewirePrice  = PriceRange{40, 70} // per m2 of room area
	replumbPrice = PriceRange{400, 1000}
)

// laborFractions is the labor share of the total job cost per category.
var laborFractions = map[domain.Category]float64{
	domain.CategoryFlooring:          0.40,
	domain.CategoryWalls:             0.55,
	domain.CategoryCeiling:           0.55,
	domain.CategoryWindows:           0.35,
	domain.CategoryDoors:             0.40,
	domain.CategoryKitchenCabinets:   0.35,
	domain.CategoryKitchenCountertop: 0.30,
	domain.CategoryKitchenAppliances: 0.15,
	domain.CategoryBathroomTiles:     0.55,
	domain.CategoryBathroomSanitary:  0.45,
	domain.CategoryBathroomShower:    0.45,
	domain.CategoryElectrical:        0.60,
	domain.CategoryPlumbing:          0.60,
}

const defaultLaborFraction = 0.45

var finishMultipliers = map[domain.FinishLevel]float64{
	domain.FinishEconomico: 0.80,
	domain.FinishStandard:  1.00,
	domain.FinishPremium:   1.45,
}

var regionalMultipliers = map[domain.RegionTier]float64{
	domain.RegionLisboa:   1.25,
	domain.RegionPorto:    1.15,
	domain.RegionLitoral:  1.00,
	domain.RegionInterior: 0.85,
	domain.RegionIlhas:    1.10,
	domain.RegionUnknown:  1.00,
}

// floorSurcharges raise labor only: transport and access cost, not material price.
var floorSurcharges = map[domain.FloorAccess]float64{
	domain.AccessGround:     0,
	domain.AccessElevator:   0,
	domain.AccessWalkupLow:  0.05,
	domain.AccessWalkupHigh: 0.12,
}

// areaWeights approximate the share of usable area per room type. Across the
// room set of a typical unit (living room, kitchen, bathroom, two bedrooms,
// hallway, balcony) the weights sum to roughly 1.0 — a design invariant of
// the table, not enforced at runtime.
var areaWeights = map[domain.RoomType]float64{
	domain.RoomTypeLivingRoom: 0.25,
	domain.RoomTypeBedroom:    0.16,
	domain.RoomTypeKitchen:    0.15,
	domain.RoomTypeBathroom:   0.08,
	domain.RoomTypeHallway:    0.08,
	domain.RoomTypeBalcony:    0.05,
}

const defaultAreaWeight = 0.10

// Buildings of these eras are assumed to need rewiring/replumbing regardless
// of what the photos show.
var eraRewiringLikely = map[domain.ConstructionEra]bool{
	domain.EraPre1951:    true,
	domain.Era1951To1980: true,
}

var eraReplumbingLikely = map[domain.ConstructionEra]bool{
	domain.EraPre1951:    true,
	domain.Era1951To1980: true,
}

// scopeWeeks maps a room's overall scope to its duration bounds in weeks.
var scopeWeeks = map[domain.WorkScope]struct{ Min, Max float64 }{
	domain.ScopeNone:           {0, 0},
	domain.ScopeRepair:         {1, 2},
	domain.ScopeRefurbish:      {2, 4},
	domain.ScopeReplace:        {3, 6},
	domain.ScopeFullRenovation: {6, 10},
}

// scopeThresholds maps an average condition score to a work scope; walked in
// order, first breakpoint that the average does not exceed wins.
var scopeThresholds = []struct {
	MaxAvg float64
	Scope  domain.WorkScope
}{
	{1.0, domain.ScopeFullRenovation},
	{2.0, domain.ScopeReplace},
	{3.0, domain.ScopeRefurbish},
	{4.0, domain.ScopeRepair},
}

func finishMultiplier(level domain.FinishLevel) float64 {
	if m, ok := finishMultipliers[level]; ok {
		return m
	}
	return finishMultipliers[domain.FinishStandard]
}

func regionalMultiplier(region domain.RegionTier) float64 {
	if m, ok := regionalMultipliers[region]; ok {
		return m
	}
	return regionalMultipliers[domain.RegionUnknown]
}

func floorSurcharge(access domain.FloorAccess) float64 {
	return floorSurcharges[access] // absent key means no surcharge
}

func laborFraction(category domain.Category) float64 {
	if f, ok := laborFractions[category]; ok {
		return f
	}
	return defaultLaborFraction
}

func floorReplacePrice(material domain.FloorMaterial) PriceRange {
	if pr, ok := floorReplacePrices[material]; ok {
		return pr
	}
	return floorReplacePrices[domain.FloorNotVisible]
}

func areaWeight(roomType domain.RoomType) float64 {
	if w, ok := areaWeights[roomType]; ok {
		return w
	}
	return defaultAreaWeight
}
