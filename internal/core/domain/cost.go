package domain

// Category identifies the work category of a cost line item.
type Category string

const (
	CategoryFlooring          Category = "flooring"
	CategoryWalls             Category = "walls"
	CategoryCeiling           Category = "ceiling"
	CategoryWindows           Category = "windows"
	CategoryDoors             Category = "doors"
	CategoryKitchenCabinets   Category = "kitchen_cabinets"
	CategoryKitchenCountertop Category = "kitchen_countertop"
	CategoryKitchenAppliances Category = "kitchen_appliances"
	CategoryBathroomTiles     Category = "bathroom_tiles"
	CategoryBathroomSanitary  Category = "bathroom_sanitary"
	CategoryBathroomShower    Category = "bathroom_shower_bath"
	CategoryElectrical        Category = "electrical"
	CategoryPlumbing          Category = "plumbing"
)

// Priority ranks line items by urgency.
type Priority string

const (
	PriorityAlta  Priority = "alta"
	PriorityMedia Priority = "media"
	PriorityBaixa Priority = "baixa"
)

// CostLineItem is one itemized work entry of a room estimate.
// Invariant: 0 <= CostMin <= CostMax, CostMin == MaterialsMin + LaborMin
// (and equally for the max bounds).
type CostLineItem struct {
	Category     Category `json:"category"`
	Action       Action   `json:"action"`
	Description  string   `json:"description"`
	CostMin      float64  `json:"cost_min"`
	CostMax      float64  `json:"cost_max"`
	MaterialsMin float64  `json:"materials_min"`
	MaterialsMax float64  `json:"materials_max"`
	LaborMin     float64  `json:"labor_min"`
	LaborMax     float64  `json:"labor_max"`
	Unit         string   `json:"unit"` // "m2", "un" or "vg" (verba global)
	Quantity     float64  `json:"quantity"`
	Priority     Priority `json:"priority"`
}

// CostBreakdown sums the materials/labor bounds across the line items of a room.
type CostBreakdown struct {
	MaterialsMin float64 `json:"materials_min"`
	MaterialsMax float64 `json:"materials_max"`
	LaborMin     float64 `json:"labor_min"`
	LaborMax     float64 `json:"labor_max"`
	TotalMin     float64 `json:"total_min"`
	TotalMax     float64 `json:"total_max"`
}

// ModuleConfidence reports per-module assessment confidence in [0,1];
// nil means the module was absent from the features.
type ModuleConfidence struct {
	Surfaces *float64 `json:"surfaces"`
	Fixtures *float64 `json:"fixtures"`
	MEP      *float64 `json:"mep"`
	Overall  float64  `json:"overall"`
}

// RoomCostResult is the full estimate of a single room. The zero value (no
// features, empty items) is the valid all-default result.
type RoomCostResult struct {
	CostBreakdown    CostBreakdown    `json:"cost_breakdown"`
	LineItems        []CostLineItem   `json:"line_items"`
	ModuleConfidence ModuleConfidence `json:"module_confidence"`
	WorkScope        WorkScopeResult  `json:"work_scope"`
}
