package repository

import (
	"context"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaintenanceRequestRepository handles database operations for maintenance requests
type MaintenanceRequestRepository struct {
	db *gorm.DB
}

// Ensure MaintenanceRequestRepository implements MaintenanceRequestRepositoryInterface
var _ MaintenanceRequestRepositoryInterface = (*MaintenanceRequestRepository)(nil)

// NewMaintenanceRequestRepository creates a new maintenance request repository
func NewMaintenanceRequestRepository(db *gorm.DB) *MaintenanceRequestRepository {
	return &MaintenanceRequestRepository{db: db}
}

// Create creates a new maintenance request
func (r *MaintenanceRequestRepository) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(request).Error
}

// GetByID retrieves a maintenance request by ID
func (r *MaintenanceRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetAll retrieves all maintenance requests, oldest first
func (r *MaintenanceRequestRepository) GetAll(ctx context.Context) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&requests).Error
	return requests, err
}

// Update saves every column of the request. Concurrent updates are last-write-wins.
func (r *MaintenanceRequestRepository) Update(ctx context.Context, request *models.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(request).Error
}

// GetStatuses loads only the columns the open-request aggregation needs
func (r *MaintenanceRequestRepository) GetStatuses(ctx context.Context, equipmentIDs []uuid.UUID) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	query := r.db.WithContext(ctx).Model(&models.MaintenanceRequest{}).Select("id", "equipment_id", "status")
	if len(equipmentIDs) > 0 {
		query = query.Where("equipment_id IN ?", equipmentIDs)
	}
	err := query.Find(&requests).Error
	return requests, err
}

// GetEquipmentIDsByStatus returns the distinct equipment IDs referenced by requests in status
func (r *MaintenanceRequestRepository) GetEquipmentIDsByStatus(ctx context.Context, status models.RequestStatus) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.MaintenanceRequest{}).
		Where("status = ?", status).
		Distinct().
		Pluck("equipment_id", &ids).Error
	return ids, err
}
