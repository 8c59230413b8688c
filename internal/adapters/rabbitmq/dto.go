package rabbitmq

import (
	"fmt"

	"cost-engine-service/internal/core/domain"
)

// Wire shapes of the RoomAssessmentEvent. The broker contract is versioned
// separately from the REST API, so this adapter keeps its own DTOs.

type SurfacesEventDTO struct {
	FloorMaterial    string `json:"floor_material"`
	FloorCondition   *int   `json:"floor_condition"`
	WallFinish       string `json:"wall_finish"`
	WallCondition    *int   `json:"wall_condition"`
	CeilingCondition *int   `json:"ceiling_condition"`
}

type FixturesEventDTO struct {
	WindowCondition     *int     `json:"window_condition"`
	DoorCondition       *int     `json:"door_condition"`
	CabinetCondition    *int     `json:"cabinet_condition"`
	CountertopCondition *int     `json:"countertop_condition"`
	ApplianceCondition  *int     `json:"appliance_condition"`
	AppliancesVisible   []string `json:"appliances_visible"`
	SanitaryCondition   *int     `json:"sanitary_condition"`
	ShowerBathCondition *int     `json:"shower_bath_condition"`
}

type MEPEventDTO struct {
	OutletStyle   string `json:"outlet_style"`
	PlumbingState string `json:"plumbing_state"`
}

type RoomEventDTO struct {
	RoomType string            `json:"room_type"`
	AreaM2   *float64          `json:"area_m2"`
	Notes    string            `json:"notes"`
	Surfaces *SurfacesEventDTO `json:"surfaces"`
	Fixtures *FixturesEventDTO `json:"fixtures"`
	MEP      *MEPEventDTO      `json:"mep"`
}

type ContextEventDTO struct {
	Era             string  `json:"era"`
	Typology        string  `json:"typology"`
	FloorAccess     string  `json:"floor_access"`
	Region          string  `json:"region"`
	EnergyRating    string  `json:"energy_rating"`
	AreaM2          float64 `json:"area_m2"`
	UsableAreaM2    float64 `json:"usable_area_m2"`
	ConditionStatus string  `json:"condition_status"`
}

type PreferencesEventDTO struct {
	DIY           bool     `json:"diy"`
	FinishLevel   string   `json:"finish_level"`
	BudgetCeiling *float64 `json:"budget_ceiling"`
	Purpose       string   `json:"purpose"`
}

type RoomAssessmentEventDTO struct {
	PropertyID  string                  `json:"property_id"`
	Rooms       map[string]RoomEventDTO `json:"rooms"`
	Context     *ContextEventDTO        `json:"context"`
	Preferences *PreferencesEventDTO    `json:"preferences"`
}

func (dto *RoomAssessmentEventDTO) ToDomain() (domain.PropertyAssessment, error) {
	if dto.PropertyID == "" {
		return domain.PropertyAssessment{}, fmt.Errorf("property_id is required")
	}

	rooms := make(map[string]domain.RoomFeatures, len(dto.Rooms))
	for label, roomDTO := range dto.Rooms {
		features, err := toDomainRoomFeatures(roomDTO)
		if err != nil {
			return domain.PropertyAssessment{}, fmt.Errorf("room %q: %w", label, err)
		}
		rooms[label] = features
	}

	return domain.PropertyAssessment{
		PropertyID:  dto.PropertyID,
		Rooms:       rooms,
		Context:     toDomainPropertyContext(dto.Context),
		Preferences: toDomainUserPreferences(dto.Preferences),
	}, nil
}

func toDomainRoomFeatures(dto RoomEventDTO) (domain.RoomFeatures, error) {
	roomType := domain.RoomType(dto.RoomType)

	var surfaces *domain.SurfaceFeatures
	if dto.Surfaces != nil {
		surfaces = &domain.SurfaceFeatures{
			FloorMaterial:    domain.FloorMaterial(dto.Surfaces.FloorMaterial),
			FloorCondition:   domain.NewConditionScore(dto.Surfaces.FloorCondition),
			WallFinish:       domain.WallFinish(dto.Surfaces.WallFinish),
			WallCondition:    domain.NewConditionScore(dto.Surfaces.WallCondition),
			CeilingCondition: domain.NewConditionScore(dto.Surfaces.CeilingCondition),
		}
	}

	var mep *domain.MEPFeatures
	if dto.MEP != nil {
		mep = &domain.MEPFeatures{
			OutletStyle:   domain.OutletStyle(dto.MEP.OutletStyle),
			PlumbingState: domain.PlumbingState(dto.MEP.PlumbingState),
		}
	}

	switch roomType {
	case domain.RoomTypeKitchen:
		var fixtures *domain.KitchenFixtures
		if dto.Fixtures != nil {
			fixtures = &domain.KitchenFixtures{
				WindowCondition:     domain.NewConditionScore(dto.Fixtures.WindowCondition),
				DoorCondition:       domain.NewConditionScore(dto.Fixtures.DoorCondition),
				CabinetCondition:    domain.NewConditionScore(dto.Fixtures.CabinetCondition),
				CountertopCondition: domain.NewConditionScore(dto.Fixtures.CountertopCondition),
				ApplianceCondition:  domain.NewConditionScore(dto.Fixtures.ApplianceCondition),
				AppliancesVisible:   dto.Fixtures.AppliancesVisible,
			}
		}
		return &domain.KitchenFeatures{Surfaces: surfaces, Fixtures: fixtures, MEP: mep, AreaM2: dto.AreaM2, Notes: dto.Notes}, nil

	case domain.RoomTypeBathroom:
		var fixtures *domain.BathroomFixtures
		if dto.Fixtures != nil {
			fixtures = &domain.BathroomFixtures{
				WindowCondition:     domain.NewConditionScore(dto.Fixtures.WindowCondition),
				DoorCondition:       domain.NewConditionScore(dto.Fixtures.DoorCondition),
				SanitaryCondition:   domain.NewConditionScore(dto.Fixtures.SanitaryCondition),
				ShowerBathCondition: domain.NewConditionScore(dto.Fixtures.ShowerBathCondition),
			}
		}
		return &domain.BathroomFeatures{Surfaces: surfaces, Fixtures: fixtures, MEP: mep, AreaM2: dto.AreaM2, Notes: dto.Notes}, nil

	case domain.RoomTypeBedroom, domain.RoomTypeLivingRoom, domain.RoomTypeHallway, domain.RoomTypeBalcony:
		var fixtures *domain.GenericFixtures
		if dto.Fixtures != nil {
			fixtures = &domain.GenericFixtures{
				WindowCondition: domain.NewConditionScore(dto.Fixtures.WindowCondition),
				DoorCondition:   domain.NewConditionScore(dto.Fixtures.DoorCondition),
			}
		}
		return &domain.GenericRoomFeatures{RoomType: roomType, Surfaces: surfaces, Fixtures: fixtures, MEP: mep, AreaM2: dto.AreaM2, Notes: dto.Notes}, nil

	default:
		return nil, fmt.Errorf("unknown room_type %q", dto.RoomType)
	}
}

func toDomainPropertyContext(dto *ContextEventDTO) domain.PropertyContext {
	if dto == nil {
		return domain.PropertyContext{Era: domain.EraUnknown, Region: domain.RegionUnknown}
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

func toDomainUserPreferences(dto *PreferencesEventDTO) domain.UserPreferences {
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
