package repository

import (
	"context"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EquipmentRepository handles database operations for equipment
type EquipmentRepository struct {
	db *gorm.DB
}

// Ensure EquipmentRepository implements EquipmentRepositoryInterface
var _ EquipmentRepositoryInterface = (*EquipmentRepository)(nil)

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create creates a new equipment record
func (r *EquipmentRepository) Create(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(equipment).Error
}

// GetByID retrieves equipment by ID
func (r *EquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.WithContext(ctx).First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetBySerialNumber retrieves equipment by its unique serial number
func (r *EquipmentRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.WithContext(ctx).First(&equipment, "serial_number = ?", serialNumber).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetByIDs retrieves the equipment with the given IDs; unknown IDs are skipped
func (r *EquipmentRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Equipment, error) {
	var equipment []models.Equipment
	if len(ids) == 0 {
		return equipment, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&equipment).Error
	return equipment, err
}

// GetAll retrieves all equipment in registration order
func (r *EquipmentRepository) GetAll(ctx context.Context) ([]models.Equipment, error) {
	var equipment []models.Equipment
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&equipment).Error
	return equipment, err
}

// Update saves every column of the equipment record
func (r *EquipmentRepository) Update(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(equipment).Error
}

// SetStatus updates only the status column. Returns gorm.ErrRecordNotFound
// when no row matched.
func (r *EquipmentRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.EquipmentStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Equipment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
