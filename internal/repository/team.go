package repository

import (
	"context"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// withMembers preloads the roster in its stored order
func (r *TeamRepository) withMembers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("team_members.position ASC")
	})
}

// Create creates a new team together with its members
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team with its members by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.withMembers(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with their members, ordered by name
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.withMembers(ctx).Order("name ASC").Find(&teams).Error
	return teams, err
}
