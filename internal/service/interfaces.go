package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EquipmentServiceInterface defines the interface for the equipment registry
type EquipmentServiceInterface interface {
	GetAll(ctx context.Context) ([]EquipmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EquipmentResponse, error)
	Create(ctx context.Context, req *CreateEquipmentRequest) (*EquipmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error)
}

// TeamServiceInterface defines the interface for the team directory
type TeamServiceInterface interface {
	GetAll(ctx context.Context) ([]TeamResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
}

// MaintenanceRequestServiceInterface defines the interface for the maintenance request engine
type MaintenanceRequestServiceInterface interface {
	GetAll(ctx context.Context) ([]MaintenanceRequestResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceRequestResponse, error)
	Create(ctx context.Context, req *CreateMaintenanceRequestRequest) (*MaintenanceRequestResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateMaintenanceRequestRequest) (*MaintenanceRequestResponse, error)
	ReconcileScrappedEquipment(ctx context.Context) (*ReconcileResponse, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

// ViewServiceInterface defines the interface for the board and calendar views.
// A zero asOf or month means "now".
type ViewServiceInterface interface {
	GetBoard(ctx context.Context, asOf time.Time) (*BoardResponse, error)
	GetCalendar(ctx context.Context, month, asOf time.Time) (*CalendarResponse, error)
}
