package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/repository"
	"gearguard-backend/internal/views"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentService handles business logic for the equipment registry
type EquipmentService struct {
	repo        repository.EquipmentRepositoryInterface
	requestRepo repository.MaintenanceRequestRepositoryInterface
	teamRepo    repository.TeamRepositoryInterface
	validator   *validator.Validate
}

// Ensure EquipmentService implements EquipmentServiceInterface
var _ EquipmentServiceInterface = (*EquipmentService)(nil)

// NewEquipmentService creates a new equipment service
func NewEquipmentService(repo repository.EquipmentRepositoryInterface, requestRepo repository.MaintenanceRequestRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *EquipmentService {
	return &EquipmentService{
		repo:        repo,
		requestRepo: requestRepo,
		teamRepo:    teamRepo,
		validator:   validator,
	}
}

// CreateEquipmentRequest represents the request to register equipment
type CreateEquipmentRequest struct {
	Name               string                 `json:"name" validate:"required,max=200"`
	SerialNumber       string                 `json:"serialNumber" validate:"required,max=100"`
	Category           string                 `json:"category" validate:"required,max=100"`
	Location           string                 `json:"location" validate:"required,max=200"`
	Status             models.EquipmentStatus `json:"status,omitempty" validate:"omitempty,oneof=operational maintenance offline scrap"`
	Team               *uuid.UUID             `json:"team,omitempty"`
	PurchaseDate       *string                `json:"purchaseDate,omitempty"`
	WarrantyExpiration *string                `json:"warrantyExpiration,omitempty"`
	AssignedTechnician string                 `json:"assignedTechnician,omitempty" validate:"max=200"`
	Image              string                 `json:"image,omitempty" validate:"max=500"`
	LastMaintenance    *string                `json:"lastMaintenance,omitempty"`
	NextMaintenance    *string                `json:"nextMaintenance,omitempty"`
}

// UpdateEquipmentRequest represents a partial equipment update. Nil fields are left untouched;
// an empty team string removes the team assignment.
type UpdateEquipmentRequest struct {
	Name               *string                 `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	SerialNumber       *string                 `json:"serialNumber,omitempty" validate:"omitempty,min=1,max=100"`
	Category           *string                 `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Location           *string                 `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	Status             *models.EquipmentStatus `json:"status,omitempty" validate:"omitempty,oneof=operational maintenance offline scrap"`
	Team               *string                 `json:"team,omitempty"`
	PurchaseDate       *string                 `json:"purchaseDate,omitempty"`
	WarrantyExpiration *string                 `json:"warrantyExpiration,omitempty"`
	AssignedTechnician *string                 `json:"assignedTechnician,omitempty" validate:"omitempty,max=200"`
	Image              *string                 `json:"image,omitempty" validate:"omitempty,max=500"`
	LastMaintenance    *string                 `json:"lastMaintenance,omitempty"`
	NextMaintenance    *string                 `json:"nextMaintenance,omitempty"`
}

// isEmpty reports whether the update names no field at all
func (r *UpdateEquipmentRequest) isEmpty() bool {
	return *r == UpdateEquipmentRequest{}
}

// EquipmentResponse represents equipment with its team resolved and its open request count
type EquipmentResponse struct {
	LegacyID           uuid.UUID              `json:"_id"`
	ID                 uuid.UUID              `json:"id"`
	Name               string                 `json:"name"`
	SerialNumber       string                 `json:"serialNumber"`
	Category           string                 `json:"category"`
	Location           string                 `json:"location"`
	Status             models.EquipmentStatus `json:"status"`
	TeamID             *uuid.UUID             `json:"teamId,omitempty"`
	Team               *TeamResponse          `json:"team,omitempty"`
	PurchaseDate       *time.Time             `json:"purchaseDate,omitempty"`
	WarrantyExpiration *time.Time             `json:"warrantyExpiration,omitempty"`
	AssignedTechnician string                 `json:"assignedTechnician,omitempty"`
	Image              string                 `json:"image,omitempty"`
	LastMaintenance    *time.Time             `json:"lastMaintenance,omitempty"`
	NextMaintenance    *time.Time             `json:"nextMaintenance,omitempty"`
	OpenRequestsCount  int                    `json:"openRequestsCount"`
	OpenRequests       int                    `json:"openRequests"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

// GetAll returns all equipment with team and open request count
func (s *EquipmentService) GetAll(ctx context.Context) ([]EquipmentResponse, error) {
	equipment, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, storageError("failed to list equipment", err, nil)
	}

	statuses, err := s.requestRepo.GetStatuses(ctx, nil)
	if err != nil {
		return nil, storageError("failed to load request statuses", err, nil)
	}
	counts := views.OpenRequestCounts(statuses)

	teams, err := teamIndex(ctx, s.teamRepo)
	if err != nil {
		return nil, err
	}

	responses := make([]EquipmentResponse, len(equipment))
	for i := range equipment {
		responses[i] = *equipmentResponse(&equipment[i], teams, counts[equipment[i].ID])
	}
	return responses, nil
}

// GetByID retrieves equipment by ID with team and open request count
func (s *EquipmentService) GetByID(ctx context.Context, id uuid.UUID) (*EquipmentResponse, error) {
	equipment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to get equipment", err, apperrors.ErrEquipmentNotFound)
	}
	return s.augment(ctx, equipment)
}

// Create registers new equipment
func (s *EquipmentService) Create(ctx context.Context, req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	equipment := &models.Equipment{
		Name:               req.Name,
		SerialNumber:       req.SerialNumber,
		Category:           req.Category,
		Location:           req.Location,
		Status:             req.Status,
		TeamID:             req.Team,
		AssignedTechnician: req.AssignedTechnician,
		Image:              req.Image,
	}
	if equipment.Status == "" {
		equipment.Status = models.EquipmentStatusOperational
	}
	if err := setEquipmentDates(equipment, req.PurchaseDate, req.WarrantyExpiration, req.LastMaintenance, req.NextMaintenance); err != nil {
		return nil, err
	}

	if err := s.checkTeam(ctx, equipment.TeamID); err != nil {
		return nil, err
	}
	if err := s.checkSerialNumber(ctx, equipment.SerialNumber, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, equipment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSerialNumberTaken
		}
		return nil, storageError("failed to create equipment", err, nil)
	}

	return s.augment(ctx, equipment)
}

// Update merges the supplied fields into the equipment record
func (s *EquipmentService) Update(ctx context.Context, id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if req.isEmpty() {
		return nil, apperrors.ErrEmptyUpdate
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	equipment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to get equipment", err, apperrors.ErrEquipmentNotFound)
	}

	if req.Name != nil {
		equipment.Name = *req.Name
	}
	if req.SerialNumber != nil && *req.SerialNumber != equipment.SerialNumber {
		if err := s.checkSerialNumber(ctx, *req.SerialNumber, equipment.ID); err != nil {
			return nil, err
		}
		equipment.SerialNumber = *req.SerialNumber
	}
	if req.Category != nil {
		equipment.Category = *req.Category
	}
	if req.Location != nil {
		equipment.Location = *req.Location
	}
	if req.Status != nil {
		equipment.Status = *req.Status
	}
	if req.Team != nil {
		teamID, err := parseTeamRef(*req.Team)
		if err != nil {
			return nil, err
		}
		if err := s.checkTeam(ctx, teamID); err != nil {
			return nil, err
		}
		equipment.TeamID = teamID
	}
	if req.AssignedTechnician != nil {
		equipment.AssignedTechnician = *req.AssignedTechnician
	}
	if req.Image != nil {
		equipment.Image = *req.Image
	}
	if err := mergeEquipmentDates(equipment, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, equipment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSerialNumberTaken
		}
		return nil, storageError("failed to update equipment", err, nil)
	}

	return s.augment(ctx, equipment)
}

// augment resolves the team and counts open requests for a single record
func (s *EquipmentService) augment(ctx context.Context, equipment *models.Equipment) (*EquipmentResponse, error) {
	statuses, err := s.requestRepo.GetStatuses(ctx, []uuid.UUID{equipment.ID})
	if err != nil {
		return nil, storageError("failed to load request statuses", err, nil)
	}

	teams := map[uuid.UUID]*models.Team{}
	if equipment.TeamID != nil {
		team, err := s.teamRepo.GetByID(ctx, *equipment.TeamID)
		switch {
		case err == nil:
			teams[team.ID] = team
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, storageError("failed to get team", err, nil)
		}
	}

	return equipmentResponse(equipment, teams, views.OpenRequestCount(equipment.ID, statuses)), nil
}

// parseTeamRef reads a team reference from an update; blank means no team
func parseTeamRef(value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, apperrors.ErrTeamRefInvalid
	}
	return &id, nil
}

// checkTeam verifies that a referenced team exists
func (s *EquipmentService) checkTeam(ctx context.Context, teamID *uuid.UUID) error {
	if teamID == nil {
		return nil
	}
	if _, err := s.teamRepo.GetByID(ctx, *teamID); err != nil {
		return storageError("failed to verify team", err, apperrors.ErrTeamRefMissing)
	}
	return nil
}

// checkSerialNumber fails when another record already uses serialNumber
func (s *EquipmentService) checkSerialNumber(ctx context.Context, serialNumber string, self uuid.UUID) error {
	existing, err := s.repo.GetBySerialNumber(ctx, serialNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return storageError("failed to check serial number", err, nil)
	}
	if existing.ID != self {
		return apperrors.ErrSerialNumberTaken
	}
	return nil
}

func setEquipmentDates(e *models.Equipment, purchase, warranty, last, next *string) error {
	var err error
	if e.PurchaseDate, err = parseDate("purchaseDate", purchase); err != nil {
		return err
	}
	if e.WarrantyExpiration, err = parseDate("warrantyExpiration", warranty); err != nil {
		return err
	}
	if e.LastMaintenance, err = parseDate("lastMaintenance", last); err != nil {
		return err
	}
	if e.NextMaintenance, err = parseDate("nextMaintenance", next); err != nil {
		return err
	}
	return nil
}

// mergeEquipmentDates overwrites only the dates present in the update; "" clears a date
func mergeEquipmentDates(e *models.Equipment, req *UpdateEquipmentRequest) error {
	fields := []struct {
		name  string
		value *string
		dst   **time.Time
	}{
		{"purchaseDate", req.PurchaseDate, &e.PurchaseDate},
		{"warrantyExpiration", req.WarrantyExpiration, &e.WarrantyExpiration},
		{"lastMaintenance", req.LastMaintenance, &e.LastMaintenance},
		{"nextMaintenance", req.NextMaintenance, &e.NextMaintenance},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		t, err := parseDate(f.name, f.value)
		if err != nil {
			return err
		}
		*f.dst = t
	}
	return nil
}

// teamIndex loads the team directory keyed by ID
func teamIndex(ctx context.Context, repo repository.TeamRepositoryInterface) (map[uuid.UUID]*models.Team, error) {
	teams, err := repo.GetAll(ctx)
	if err != nil {
		return nil, storageError("failed to list teams", err, nil)
	}
	index := make(map[uuid.UUID]*models.Team, len(teams))
	for i := range teams {
		index[teams[i].ID] = &teams[i]
	}
	return index, nil
}

// equipmentResponse converts an equipment model to a response
func equipmentResponse(e *models.Equipment, teams map[uuid.UUID]*models.Team, openRequests int) *EquipmentResponse {
	resp := &EquipmentResponse{
		LegacyID:           e.ID,
		ID:                 e.ID,
		Name:               e.Name,
		SerialNumber:       e.SerialNumber,
		Category:           e.Category,
		Location:           e.Location,
		Status:             e.Status,
		TeamID:             e.TeamID,
		PurchaseDate:       e.PurchaseDate,
		WarrantyExpiration: e.WarrantyExpiration,
		AssignedTechnician: e.AssignedTechnician,
		Image:              e.Image,
		LastMaintenance:    e.LastMaintenance,
		NextMaintenance:    e.NextMaintenance,
		OpenRequestsCount:  openRequests,
		OpenRequests:       openRequests,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	if e.TeamID != nil {
		if team, ok := teams[*e.TeamID]; ok {
			resp.Team = teamResponse(team)
		}
	}
	return resp
}
