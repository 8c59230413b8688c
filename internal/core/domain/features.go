package domain

// RoomType identifies the function of a room inside the unit.
type RoomType string

const (
	RoomTypeBedroom    RoomType = "bedroom"
	RoomTypeLivingRoom RoomType = "living_room"
	RoomTypeHallway    RoomType = "hallway"
	RoomTypeBalcony    RoomType = "balcony"
	RoomTypeKitchen    RoomType = "kitchen"
	RoomTypeBathroom   RoomType = "bathroom"
)

// FloorMaterial is the floor covering observed on the photos.
type FloorMaterial string

const (
	FloorParquet     FloorMaterial = "parquet"
	FloorLaminate    FloorMaterial = "laminate"
	FloorCeramicTile FloorMaterial = "ceramic_tile"
	FloorVinyl       FloorMaterial = "vinyl"
	FloorCarpet      FloorMaterial = "carpet"
	FloorConcrete    FloorMaterial = "concrete"
	FloorNotVisible  FloorMaterial = "not_visible"
)

// WallFinish is the observed wall treatment.
type WallFinish string

const (
	WallPaint      WallFinish = "paint"
	WallAzulejos   WallFinish = "azulejos"
	WallWallpaper  WallFinish = "wallpaper"
	WallPlaster    WallFinish = "plaster"
	WallNotVisible WallFinish = "not_visible"
)

// OutletStyle is the electrical outlet generation visible on the photos.
type OutletStyle string

const (
	OutletModern         OutletStyle = "modern"
	OutletBakeliteOld    OutletStyle = "bakelite_old"
	OutletSurfaceMounted OutletStyle = "surface_mounted"
	OutletNotVisible     OutletStyle = "not_visible"
)

// PlumbingState is the state of the visible plumbing runs.
type PlumbingState string

const (
	PlumbingVisibleGood     PlumbingState = "visible_good"
	PlumbingVisibleCorroded PlumbingState = "visible_corroded"
	PlumbingNotVisible      PlumbingState = "not_visible"
)

// SurfaceFeatures is module M1: floor, walls and ceiling.
type SurfaceFeatures struct {
	FloorMaterial    FloorMaterial
	FloorCondition   *ConditionScore
	WallFinish       WallFinish
	WallCondition    *ConditionScore
	CeilingCondition *ConditionScore
}

// MEPFeatures is module M3: electrical and plumbing signals.
type MEPFeatures struct {
	OutletStyle   OutletStyle
	PlumbingState PlumbingState
}

// GenericFixtures is module M2 for bedrooms, living rooms, hallways, balconies.
type GenericFixtures struct {
	WindowCondition *ConditionScore
	DoorCondition   *ConditionScore
}

// KitchenFixtures is module M2 for kitchens.
type KitchenFixtures struct {
	WindowCondition     *ConditionScore
	DoorCondition       *ConditionScore
	CabinetCondition    *ConditionScore
	CountertopCondition *ConditionScore
	ApplianceCondition  *ConditionScore
	AppliancesVisible   []string // an empty list is itself a cost signal
}

// BathroomFixtures is module M2 for bathrooms.
type BathroomFixtures struct {
	WindowCondition     *ConditionScore
	DoorCondition       *ConditionScore
	SanitaryCondition   *ConditionScore
	ShowerBathCondition *ConditionScore
}

// RoomFeatures is the closed union over the three room feature variants
// produced by the vision pipeline. Each module is independently optional;
// an absent module contributes no cost.
type RoomFeatures interface {
	roomFeatures()

	// RoomKind returns the room type the variant stands for; generic rooms
	// carry their concrete type (bedroom, hallway, ...).
	RoomKind() RoomType
	// EstimatedAreaM2 is the vision-model area guess, when it produced one.
	EstimatedAreaM2() *float64
}

// GenericRoomFeatures covers bedrooms, living rooms, hallways and balconies.
type GenericRoomFeatures struct {
	RoomType RoomType
	Surfaces *SurfaceFeatures
	Fixtures *GenericFixtures
	MEP      *MEPFeatures
	AreaM2   *float64
	Notes    string
}

func (f *GenericRoomFeatures) roomFeatures()             {}
func (f *GenericRoomFeatures) RoomKind() RoomType        { return f.RoomType }
func (f *GenericRoomFeatures) EstimatedAreaM2() *float64 { return f.AreaM2 }

type KitchenFeatures struct {
	Surfaces *SurfaceFeatures
	Fixtures *KitchenFixtures
	MEP      *MEPFeatures
	AreaM2   *float64
	Notes    string
}

func (f *KitchenFeatures) roomFeatures()             {}
func (f *KitchenFeatures) RoomKind() RoomType        { return RoomTypeKitchen }
func (f *KitchenFeatures) EstimatedAreaM2() *float64 { return f.AreaM2 }

type BathroomFeatures struct {
	Surfaces *SurfaceFeatures
	Fixtures *BathroomFixtures
	MEP      *MEPFeatures
	AreaM2   *float64
	Notes    string
}

func (f *BathroomFeatures) roomFeatures()             {}
func (f *BathroomFeatures) RoomKind() RoomType        { return RoomTypeBathroom }
func (f *BathroomFeatures) EstimatedAreaM2() *float64 { return f.AreaM2 }
