package repository

import (
	"context"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
}

// EquipmentRepositoryInterface defines the interface for equipment repository operations
type EquipmentRepositoryInterface interface {
	Create(ctx context.Context, equipment *models.Equipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	GetBySerialNumber(ctx context.Context, serialNumber string) (*models.Equipment, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Equipment, error)
	GetAll(ctx context.Context) ([]models.Equipment, error)
	Update(ctx context.Context, equipment *models.Equipment) error
	SetStatus(ctx context.Context, id uuid.UUID, status models.EquipmentStatus) error
}

// MaintenanceRequestRepositoryInterface defines the interface for maintenance request repository operations
type MaintenanceRequestRepositoryInterface interface {
	Create(ctx context.Context, request *models.MaintenanceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error)
	GetAll(ctx context.Context) ([]models.MaintenanceRequest, error)
	Update(ctx context.Context, request *models.MaintenanceRequest) error
	// GetStatuses returns id, equipment id and status of the requests on the
	// given equipment (all requests when equipmentIDs is empty)
	GetStatuses(ctx context.Context, equipmentIDs []uuid.UUID) ([]models.MaintenanceRequest, error)
	// GetEquipmentIDsByStatus returns the distinct equipment referenced by requests in status
	GetEquipmentIDsByStatus(ctx context.Context, status models.RequestStatus) ([]uuid.UUID, error)
}
