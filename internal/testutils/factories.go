package testutils

import (
	"time"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a two person roster
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Mechanics",
		Members: []models.TeamMember{
			{Position: 0, Name: "John Smith", Role: "Senior Mechanic", Avatar: "JS"},
			{Position: 1, Name: "Mike Johnson", Role: "Mechanic", Avatar: "MJ"},
		},
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// EquipmentFactory provides methods to create test Equipment data
type EquipmentFactory struct{}

// NewEquipmentFactory creates a new EquipmentFactory
func NewEquipmentFactory() *EquipmentFactory {
	return &EquipmentFactory{}
}

// Create creates operational test Equipment. The serial number is unique per call.
func (f *EquipmentFactory) Create() *models.Equipment {
	id := uuid.New()
	return &models.Equipment{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Hydraulic Press",
		SerialNumber: "HP-" + id.String()[:8],
		Category:     "Production",
		Location:     "Building A",
		Status:       models.EquipmentStatusOperational,
	}
}

// WithTeam assigns the equipment to teamID
func (f *EquipmentFactory) WithTeam(teamID uuid.UUID) *models.Equipment {
	equipment := f.Create()
	equipment.TeamID = &teamID
	return equipment
}

// WithSerialNumber sets a custom serial number
func (f *EquipmentFactory) WithSerialNumber(serial string) *models.Equipment {
	equipment := f.Create()
	equipment.SerialNumber = serial
	return equipment
}

// WithStatus sets a custom equipment status
func (f *EquipmentFactory) WithStatus(status models.EquipmentStatus) *models.Equipment {
	equipment := f.Create()
	equipment.Status = status
	return equipment
}

// MaintenanceRequestFactory provides methods to create test MaintenanceRequest data
type MaintenanceRequestFactory struct{}

// NewMaintenanceRequestFactory creates a new MaintenanceRequestFactory
func NewMaintenanceRequestFactory() *MaintenanceRequestFactory {
	return &MaintenanceRequestFactory{}
}

// Create creates a new corrective request of medium priority against equipmentID
func (f *MaintenanceRequestFactory) Create(equipmentID uuid.UUID) *models.MaintenanceRequest {
	return &models.MaintenanceRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Subject:     "Oil leak",
		Description: "Leak under the main cylinder",
		EquipmentID: equipmentID,
		Type:        models.RequestTypeCorrective,
		Priority:    models.RequestPriorityMedium,
		Status:      models.RequestStatusNew,
		AssignedTo:  models.Assignee{Name: "John Smith", Avatar: "JS"},
	}
}

// WithStatus creates a request in the given status
func (f *MaintenanceRequestFactory) WithStatus(equipmentID uuid.UUID, status models.RequestStatus) *models.MaintenanceRequest {
	request := f.Create(equipmentID)
	request.Status = status
	return request
}

// WithDueDate creates a request due on the given date
func (f *MaintenanceRequestFactory) WithDueDate(equipmentID uuid.UUID, due time.Time) *models.MaintenanceRequest {
	request := f.Create(equipmentID)
	request.DueDate = &due
	return request
}

// FactorySet bundles every factory for use in suites
type FactorySet struct {
	Team      *TeamFactory
	Equipment *EquipmentFactory
	Request   *MaintenanceRequestFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:      NewTeamFactory(),
		Equipment: NewEquipmentFactory(),
		Request:   NewMaintenanceRequestFactory(),
	}
}
