package rest

import (
	"fmt"

	"cost-engine-service/internal/core/domain"
)

// The REST layer owns its own wire shapes; coercion of raw values into
// domain types happens in the ToDomain translation.

type RoomSurfacesDTO struct {
	FloorMaterial    string `json:"floor_material"`
	FloorCondition   *int   `json:"floor_condition"`
	WallFinish       string `json:"wall_finish"`
	WallCondition    *int   `json:"wall_condition"`
	CeilingCondition *int   `json:"ceiling_condition"`
}

// RoomFixturesDTO is the union of all fixture fields; which ones are read
// depends on the room type.
type RoomFixturesDTO struct {
	WindowCondition     *int     `json:"window_condition"`
	DoorCondition       *int     `json:"door_condition"`
	CabinetCondition    *int     `json:"cabinet_condition"`
	CountertopCondition *int     `json:"countertop_condition"`
	ApplianceCondition  *int     `json:"appliance_condition"`
	AppliancesVisible   []string `json:"appliances_visible"`
	SanitaryCondition   *int     `json:"sanitary_condition"`
	ShowerBathCondition *int     `json:"shower_bath_condition"`
}

type RoomMEPDTO struct {
	OutletStyle   string `json:"outlet_style"`
	PlumbingState string `json:"plumbing_state"`
}

type RoomDTO struct {
	RoomType string           `json:"room_type"`
	AreaM2   *float64         `json:"area_m2"`
	Notes    string           `json:"notes"`
	Surfaces *RoomSurfacesDTO `json:"surfaces"`
	Fixtures *RoomFixturesDTO `json:"fixtures"`
	MEP      *RoomMEPDTO      `json:"mep"`
}

type PropertyContextDTO struct {
	Era             string  `json:"era"`
	Typology        string  `json:"typology"`
	FloorAccess     string  `json:"floor_access"`
	Region          string  `json:"region"`
	EnergyRating    string  `json:"energy_rating"`
	AreaM2          float64 `json:"area_m2"`
	UsableAreaM2    float64 `json:"usable_area_m2"`
	ConditionStatus string  `json:"condition_status"`
}

type UserPreferencesDTO struct {
	DIY           bool     `json:"diy"`
	FinishLevel   string   `json:"finish_level"`
	BudgetCeiling *float64 `json:"budget_ceiling"`
	Purpose       string   `json:"purpose"`
}

type PropertyAssessmentDTO struct {
	PropertyID  string              `json:"property_id"`
	Rooms       map[string]RoomDTO  `json:"rooms"`
	Context     *PropertyContextDTO `json:"context"`
	Preferences *UserPreferencesDTO `json:"preferences"`
}

// ToDomain translates the incoming payload into the domain assessment.
func (dto *PropertyAssessmentDTO) ToDomain() (domain.PropertyAssessment, error) {
	if dto.PropertyID == "" {
		return domain.PropertyAssessment{}, fmt.Errorf("property_id is required")
	}

	rooms := make(map[string]domain.RoomFeatures, len(dto.Rooms))
	for label, roomDTO := range dto.Rooms {
		features, err := toDomainRoom(roomDTO)
		if err != nil {
			return domain.PropertyAssessment{}, fmt.Errorf("room %q: %w", label, err)
		}
		rooms[label] = features
	}

	return domain.PropertyAssessment{
		PropertyID:  dto.PropertyID,
		Rooms:       rooms,
		Context:     toDomainContext(dto.Context),
		Preferences: toDomainPreferences(dto.Preferences),
	}, nil
}

func toDomainRoom(dto RoomDTO) (domain.RoomFeatures, error) {
	roomType := domain.RoomType(dto.RoomType)

	switch roomType {
	case domain.RoomTypeKitchen:
		return &domain.KitchenFeatures{
			Surfaces: toDomainSurfaces(dto.Surfaces),
			Fixtures: toDomainKitchenFixtures(dto.Fixtures),
			MEP:      toDomainMEP(dto.MEP),
			AreaM2:   dto.AreaM2,
			Notes:    dto.Notes,
		}, nil
	case domain.RoomTypeBathroom:
		return &domain.BathroomFeatures{
			Surfaces: toDomainSurfaces(dto.Surfaces),
			Fixtures: toDomainBathroomFixtures(dto.Fixtures),
			MEP:      toDomainMEP(dto.MEP),
			AreaM2:   dto.AreaM2,
			Notes:    dto.Notes,
		}, nil
	case domain.RoomTypeBedroom, domain.RoomTypeLivingRoom, domain.RoomTypeHallway, domain.RoomTypeBalcony:
		return &domain.GenericRoomFeatures{
			RoomType: roomType,
			Surfaces: toDomainSurfaces(dto.Surfaces),
			Fixtures: toDomainGenericFixtures(dto.Fixtures),
			MEP:      toDomainMEP(dto.MEP),
			AreaM2:   dto.AreaM2,
			Notes:    dto.Notes,
		}, nil
	default:
		return nil, fmt.Errorf("unknown room_type %q", dto.RoomType)
	}
}

func toDomainSurfaces(dto *RoomSurfacesDTO) *domain.SurfaceFeatures {
	if dto == nil {
		return nil
	}
	return &domain.SurfaceFeatures{
		FloorMaterial:    domain.FloorMaterial(dto.FloorMaterial),
		FloorCondition:   domain.NewConditionScore(dto.FloorCondition),
		WallFinish:       domain.WallFinish(dto.WallFinish),
		WallCondition:    domain.NewConditionScore(dto.WallCondition),
		CeilingCondition: domain.NewConditionScore(dto.CeilingCondition),
	}
}

func toDomainGenericFixtures(dto *RoomFixturesDTO) *domain.GenericFixtures {
	if dto == nil {
		return nil
	}
	return &domain.GenericFixtures{
		WindowCondition: domain.NewConditionScore(dto.WindowCondition),
		DoorCondition:   domain.NewConditionScore(dto.DoorCondition),
	}
}

func toDomainKitchenFixtures(dto *RoomFixturesDTO) *domain.KitchenFixtures {
	if dto == nil {
		return nil
	}
	return &domain.KitchenFixtures{
		WindowCondition:     domain.NewConditionScore(dto.WindowCondition),
		DoorCondition:       domain.NewConditionScore(dto.DoorCondition),
		CabinetCondition:    domain.NewConditionScore(dto.CabinetCondition),
		CountertopCondition: domain.NewConditionScore(dto.CountertopCondition),
		ApplianceCondition:  domain.NewConditionScore(dto.ApplianceCondition),
		AppliancesVisible:   dto.AppliancesVisible,
	}
}

func toDomainBathroomFixtures(dto *RoomFixturesDTO) *domain.BathroomFixtures {
	if dto == nil {
		return nil
	}
	return &domain.BathroomFixtures{
		WindowCondition:     domain.NewConditionScore(dto.WindowCondition),
		DoorCondition:       domain.NewConditionScore(dto.DoorCondition),
		SanitaryCondition:   domain.NewConditionScore(dto.SanitaryCondition),
		ShowerBathCondition: domain.NewConditionScore(dto.ShowerBathCondition),
	}
}

func toDomainMEP(dto *RoomMEPDTO) *domain.MEPFeatures {
	if dto == nil {
		return nil
	}
	return &domain.MEPFeatures{
		OutletStyle:   domain.OutletStyle(dto.OutletStyle),
		PlumbingState: domain.PlumbingState(dto.PlumbingState),
	}
}

func toDomainContext(dto *PropertyContextDTO) domain.PropertyContext {
	if dto == nil {
		return domain.PropertyContext{
			Era:    domain.EraUnknown,
			Region: domain.RegionUnknown,
		}
	}
	ctx := domain.PropertyContext{
		Era:             domain.ConstructionEra(dto.Era),
		Typology:        dto.Typology,
		FloorAccess:     domain.FloorAccess(dto.FloorAccess),
		Region:          domain.RegionTier(dto.Region),
		EnergyRating:    dto.EnergyRating,
		AreaM2:          dto.AreaM2,
		UsableAreaM2:    dto.UsableAreaM2,
		ConditionStatus: dto.ConditionStatus,
	}
	if ctx.Era == "" {
		ctx.Era = domain.EraUnknown
	}
	if ctx.Region == "" {
		ctx.Region = domain.RegionUnknown
	}
	return ctx
}

func toDomainPreferences(dto *UserPreferencesDTO) domain.UserPreferences {
	if dto == nil {
		return domain.UserPreferences{FinishLevel: domain.FinishStandard}
	}
	prefs := domain.UserPreferences{
		DIY:           dto.DIY,
		FinishLevel:   domain.FinishLevel(dto.FinishLevel),
		BudgetCeiling: dto.BudgetCeiling,
		Purpose:       dto.Purpose,
	}
	if prefs.FinishLevel == "" {
		prefs.FinishLevel = domain.FinishStandard
	}
	return prefs
}
