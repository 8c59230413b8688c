package domain

// ConstructionEra buckets the construction year of the building.
type ConstructionEra string

const (
	EraPre1951    ConstructionEra = "pre_1951"
	Era1951To1980 ConstructionEra = "1951_1980"
	Era1981To2000 ConstructionEra = "1981_2000"
	Era2001To2010 ConstructionEra = "2001_2010"
	EraPost2010   ConstructionEra = "post_2010"
	EraUnknown    ConstructionEra = "unknown"
)

// RegionTier is the geographic cost bucket of the property.
type RegionTier string

const (
	RegionLisboa   RegionTier = "lisboa"
	RegionPorto    RegionTier = "porto"
	RegionLitoral  RegionTier = "litoral"
	RegionInterior RegionTier = "interior"
	RegionIlhas    RegionTier = "ilhas"
	RegionUnknown  RegionTier = "unknown"
)

// FloorAccess describes how materials and crews reach the unit.
type FloorAccess string

const (
	AccessGround     FloorAccess = "ground"
	AccessElevator   FloorAccess = "elevator"
	AccessWalkupLow  FloorAccess = "walkup_low"  // up to 2nd floor without elevator
	AccessWalkupHigh FloorAccess = "walkup_high" // 3rd floor and above without elevator
)

// PropertyContext is derived once per property from the listing metadata and
// shared read-only by every room calculation.
type PropertyContext struct {
	Era             ConstructionEra
	Typology        string // e.g. "T2", "T3"
	FloorAccess     FloorAccess
	Region          RegionTier
	EnergyRating    string
	AreaM2          float64
	UsableAreaM2    float64
	ConditionStatus string
}
