package service

import (
	"context"
	"strings"
	"time"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/logger"
	"gearguard-backend/internal/repository"
	"gearguard-backend/internal/views"
	"gearguard-backend/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const unknownLabel = "Unknown"

// MaintenanceRequestService handles the request lifecycle and its coupling to equipment status
type MaintenanceRequestService struct {
	repo          repository.MaintenanceRequestRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	validator     *validator.Validate
	now           func() time.Time
}

// Ensure MaintenanceRequestService implements MaintenanceRequestServiceInterface
var _ MaintenanceRequestServiceInterface = (*MaintenanceRequestService)(nil)

// NewMaintenanceRequestService creates a new maintenance request service
func NewMaintenanceRequestService(repo repository.MaintenanceRequestRepositoryInterface, equipmentRepo repository.EquipmentRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *MaintenanceRequestService {
	return &MaintenanceRequestService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		validator:     validator,
		now:           time.Now,
	}
}

// WithClock replaces the time source used for stamping and overdue checks
func (s *MaintenanceRequestService) WithClock(now func() time.Time) *MaintenanceRequestService {
	s.now = now
	return s
}

// AssigneeRequest names the technician a request is assigned to
type AssigneeRequest struct {
	Name   string `json:"name" validate:"max=200"`
	Avatar string `json:"avatar" validate:"max=200"`
}

// CreateMaintenanceRequestRequest represents the request to open a maintenance request.
// Title is accepted as an alias of Subject and EquipmentID as an alias of Equipment.
type CreateMaintenanceRequestRequest struct {
	Subject       string                 `json:"subject" validate:"max=200"`
	Title         string                 `json:"title" validate:"max=200"`
	Description   string                 `json:"description"`
	Equipment     string                 `json:"equipment"`
	EquipmentID   string                 `json:"equipmentId"`
	Type          models.RequestType     `json:"type" validate:"required,oneof=corrective preventive"`
	Priority      models.RequestPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Status        models.RequestStatus   `json:"status,omitempty" validate:"omitempty,oneof=new in-progress repaired scrap"`
	AssignedTo    *AssigneeRequest       `json:"assignedTo,omitempty"`
	ScheduledDate *string                `json:"scheduledDate,omitempty"`
	CompletedDate *string                `json:"completedDate,omitempty"`
	DurationHours *float64               `json:"durationHours,omitempty" validate:"omitempty,gte=0"`
	DueDate       *string                `json:"dueDate,omitempty"`
}

// UpdateMaintenanceRequestRequest represents a partial update. Type and equipment are immutable.
type UpdateMaintenanceRequestRequest struct {
	Subject       *string                 `json:"subject,omitempty" validate:"omitempty,max=200"`
	Title         *string                 `json:"title,omitempty" validate:"omitempty,max=200"`
	Description   *string                 `json:"description,omitempty"`
	Priority      *models.RequestPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Status        *models.RequestStatus   `json:"status,omitempty" validate:"omitempty,oneof=new in-progress repaired scrap"`
	AssignedTo    *AssigneeRequest        `json:"assignedTo,omitempty"`
	ScheduledDate *string                 `json:"scheduledDate,omitempty"`
	CompletedDate *string                 `json:"completedDate,omitempty"`
	DurationHours *float64                `json:"durationHours,omitempty" validate:"omitempty,gte=0"`
	DueDate       *string                 `json:"dueDate,omitempty"`
}

// isEmpty reports whether the update names no field at all
func (r *UpdateMaintenanceRequestRequest) isEmpty() bool {
	return *r == UpdateMaintenanceRequestRequest{}
}

// AssigneeResponse is the technician assigned to a request
type AssigneeResponse struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// MaintenanceRequestResponse is a request with its equipment and the equipment's team resolved.
// EquipmentName, Category and Team are flattened from the equipment for list views.
type MaintenanceRequestResponse struct {
	LegacyID      uuid.UUID              `json:"_id"`
	ID            uuid.UUID              `json:"id"`
	Subject       string                 `json:"subject"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Type          models.RequestType     `json:"type"`
	Priority      models.RequestPriority `json:"priority"`
	Status        models.RequestStatus   `json:"status"`
	AssignedTo    *AssigneeResponse      `json:"assignedTo,omitempty"`
	ScheduledDate *time.Time             `json:"scheduledDate,omitempty"`
	CompletedDate *time.Time             `json:"completedDate,omitempty"`
	DurationHours *float64               `json:"durationHours,omitempty"`
	DueDate       *time.Time             `json:"dueDate,omitempty"`
	Overdue       bool                   `json:"overdue"`
	Equipment     *EquipmentResponse     `json:"equipment,omitempty"`
	EquipmentID   uuid.UUID              `json:"equipmentId"`
	EquipmentName string                 `json:"equipmentName"`
	Category      string                 `json:"category"`
	Team          string                 `json:"team"`
	CreatedDate   time.Time              `json:"createdDate"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// ReconcileResponse reports what a reconciliation pass changed
type ReconcileResponse struct {
	Checked int         `json:"checked"`
	Updated []uuid.UUID `json:"updated"`
}

// GetAll returns every request with equipment and team resolved
func (s *MaintenanceRequestService) GetAll(ctx context.Context) ([]MaintenanceRequestResponse, error) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, storageError("failed to list requests", err, nil)
	}
	return s.join(ctx, requests, views.OpenRequestCounts(requests))
}

// GetByID retrieves a single request with equipment and team resolved
func (s *MaintenanceRequestService) GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceRequestResponse, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to get request", err, apperrors.ErrRequestNotFound)
	}
	return s.joinOne(ctx, request)
}

// Create opens a request against existing equipment. The initial status goes
// through the workflow, so a request created as scrap cascades and one created
// as repaired is stamped.
func (s *MaintenanceRequestService) Create(ctx context.Context, req *CreateMaintenanceRequestRequest) (*MaintenanceRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	subject := firstNonEmpty(req.Subject, req.Title)
	if subject == "" {
		return nil, apperrors.NewValidationError("subject", "is required")
	}
	rawEquipment := firstNonEmpty(req.Equipment, req.EquipmentID)
	if rawEquipment == "" {
		return nil, apperrors.NewValidationError("equipment", "is required")
	}
	equipmentID, err := uuid.Parse(rawEquipment)
	if err != nil {
		return nil, apperrors.NewValidationError("equipment", "invalid equipment ID")
	}
	if _, err := s.equipmentRepo.GetByID(ctx, equipmentID); err != nil {
		return nil, storageError("failed to verify equipment", err, apperrors.ErrEquipmentRefMissing)
	}

	now := s.now().UTC()
	request := &models.MaintenanceRequest{
		Subject:       subject,
		Description:   req.Description,
		EquipmentID:   equipmentID,
		Type:          req.Type,
		Priority:      req.Priority,
		Status:        req.Status,
		DurationHours: req.DurationHours,
	}
	request.CreatedAt = now
	if request.Priority == "" {
		request.Priority = models.RequestPriorityMedium
	}
	if request.Status == "" {
		request.Status = models.RequestStatusNew
	}
	if req.AssignedTo != nil {
		request.AssignedTo = models.Assignee{Name: req.AssignedTo.Name, Avatar: req.AssignedTo.Avatar}
	}
	if request.ScheduledDate, err = parseDate("scheduledDate", req.ScheduledDate); err != nil {
		return nil, err
	}
	if request.CompletedDate, err = parseDate("completedDate", req.CompletedDate); err != nil {
		return nil, err
	}
	if request.DueDate, err = parseDate("dueDate", req.DueDate); err != nil {
		return nil, err
	}

	transition := workflow.Apply("", request.Status, equipmentID, now)
	applyTransition(request, transition)

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, storageError("failed to create request", err, nil)
	}
	if err := s.executeEffects(ctx, request, transition.Effects); err != nil {
		return nil, err
	}

	return s.joinOne(ctx, request)
}

// Update merges the allow-listed fields into the stored request. The status
// change is decided against the persisted status; the request is saved before
// its side effects run.
func (s *MaintenanceRequestService) Update(ctx context.Context, id uuid.UUID, req *UpdateMaintenanceRequestRequest) (*MaintenanceRequestResponse, error) {
	if req.isEmpty() {
		return nil, apperrors.ErrEmptyUpdate
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to get request", err, apperrors.ErrRequestNotFound)
	}

	if req.Subject != nil || req.Title != nil {
		subject := firstNonEmpty(stringValue(req.Subject), stringValue(req.Title))
		if subject == "" {
			return nil, apperrors.NewValidationError("subject", "must not be blank")
		}
		request.Subject = subject
	}
	if req.Description != nil {
		request.Description = *req.Description
	}
	if req.Priority != nil {
		request.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		request.AssignedTo = models.Assignee{Name: req.AssignedTo.Name, Avatar: req.AssignedTo.Avatar}
	}
	if req.DurationHours != nil {
		request.DurationHours = req.DurationHours
	}
	if err := mergeRequestDates(request, req); err != nil {
		return nil, err
	}

	var requested models.RequestStatus
	if req.Status != nil {
		requested = *req.Status
	}
	transition := workflow.Apply(request.Status, requested, request.EquipmentID, s.now().UTC())
	applyTransition(request, transition)
	if request.Status == models.RequestStatusRepaired && request.CompletedDate == nil {
		return nil, apperrors.ErrCompletedDateRequired
	}

	if err := s.repo.Update(ctx, request); err != nil {
		return nil, storageError("failed to update request", err, nil)
	}
	if err := s.executeEffects(ctx, request, transition.Effects); err != nil {
		return nil, err
	}

	if transition.Changed() {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"request_id": request.ID.String(),
			"from":       string(transition.From),
			"to":         string(transition.To),
		}).Info("maintenance request status changed")
	}

	return s.joinOne(ctx, request)
}

// ReconcileScrappedEquipment sets every piece of equipment referenced by a
// scrap request to scrap. It repairs cascades interrupted between the request
// save and the equipment update.
func (s *MaintenanceRequestService) ReconcileScrappedEquipment(ctx context.Context) (*ReconcileResponse, error) {
	ids, err := s.repo.GetEquipmentIDsByStatus(ctx, models.RequestStatusScrap)
	if err != nil {
		return nil, storageError("failed to list scrapped equipment", err, nil)
	}
	equipment, err := s.equipmentRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, storageError("failed to load equipment", err, nil)
	}

	result := &ReconcileResponse{Checked: len(equipment), Updated: []uuid.UUID{}}
	for _, e := range equipment {
		if e.Status == models.EquipmentStatusScrap {
			continue
		}
		if err := s.equipmentRepo.SetStatus(ctx, e.ID, models.EquipmentStatusScrap); err != nil {
			return result, storageError("failed to scrap equipment", err, nil)
		}
		result.Updated = append(result.Updated, e.ID)
		logger.WithContext(ctx).WithField("equipment_id", e.ID.String()).Warn("reconciled equipment status to scrap")
	}
	return result, nil
}

// applyTransition writes the workflow decision onto the request
func applyTransition(request *models.MaintenanceRequest, t workflow.Transition) {
	request.Status = t.To
	if t.CompletedAt != nil {
		request.CompletedDate = t.CompletedAt
	}
}

// executeEffects runs the side effects of a transition after the request was saved.
// A failure leaves the request saved and the equipment untouched.
func (s *MaintenanceRequestService) executeEffects(ctx context.Context, request *models.MaintenanceRequest, effects []workflow.SideEffect) error {
	for _, effect := range effects {
		switch effect.Kind {
		case workflow.EffectSetEquipmentStatus:
			if err := s.equipmentRepo.SetStatus(ctx, effect.EquipmentID, effect.Status); err != nil {
				logger.WithContext(ctx).WithFields(map[string]interface{}{
					"request_id":   request.ID.String(),
					"equipment_id": effect.EquipmentID.String(),
					"status":       string(effect.Status),
				}).WithError(err).Error("equipment status cascade failed, request saved without it")
				return apperrors.NewStorageError("failed to cascade equipment status", err)
			}
		}
	}
	return nil
}

// joinOne resolves equipment, team and open request count for a single request
func (s *MaintenanceRequestService) joinOne(ctx context.Context, request *models.MaintenanceRequest) (*MaintenanceRequestResponse, error) {
	statuses, err := s.repo.GetStatuses(ctx, []uuid.UUID{request.EquipmentID})
	if err != nil {
		return nil, storageError("failed to load request statuses", err, nil)
	}
	responses, err := s.join(ctx, []models.MaintenanceRequest{*request}, views.OpenRequestCounts(statuses))
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// join resolves request -> equipment -> team for a batch of requests
func (s *MaintenanceRequestService) join(ctx context.Context, requests []models.MaintenanceRequest, counts map[uuid.UUID]int) ([]MaintenanceRequestResponse, error) {
	seen := make(map[uuid.UUID]bool, len(requests))
	var ids []uuid.UUID
	for _, r := range requests {
		if !seen[r.EquipmentID] {
			seen[r.EquipmentID] = true
			ids = append(ids, r.EquipmentID)
		}
	}

	equipment, err := s.equipmentRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, storageError("failed to load equipment", err, nil)
	}
	byID := make(map[uuid.UUID]*models.Equipment, len(equipment))
	for i := range equipment {
		byID[equipment[i].ID] = &equipment[i]
	}

	teams := map[uuid.UUID]*models.Team{}
	if len(equipment) > 0 {
		if teams, err = teamIndex(ctx, s.teamRepo); err != nil {
			return nil, err
		}
	}

	asOf := s.now().UTC()
	responses := make([]MaintenanceRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *requestResponse(&requests[i], byID, teams, counts, asOf)
	}
	return responses, nil
}

// requestResponse converts a request model to a response. Missing equipment or
// team is reported as Unknown in the flattened fields.
func requestResponse(r *models.MaintenanceRequest, equipment map[uuid.UUID]*models.Equipment, teams map[uuid.UUID]*models.Team, counts map[uuid.UUID]int, asOf time.Time) *MaintenanceRequestResponse {
	resp := &MaintenanceRequestResponse{
		LegacyID:      r.ID,
		ID:            r.ID,
		Subject:       r.Subject,
		Title:         r.Subject,
		Description:   r.Description,
		Type:          r.Type,
		Priority:      r.Priority,
		Status:        r.Status,
		ScheduledDate: r.ScheduledDate,
		CompletedDate: r.CompletedDate,
		DurationHours: r.DurationHours,
		DueDate:       r.DueDate,
		Overdue:       views.IsOverdue(r, asOf),
		EquipmentID:   r.EquipmentID,
		EquipmentName: unknownLabel,
		Category:      unknownLabel,
		Team:          unknownLabel,
		CreatedDate:   r.CreatedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if !r.AssignedTo.IsZero() {
		resp.AssignedTo = &AssigneeResponse{Name: r.AssignedTo.Name, Avatar: r.AssignedTo.Avatar}
	}

	if e, ok := equipment[r.EquipmentID]; ok {
		resp.Equipment = equipmentResponse(e, teams, counts[e.ID])
		resp.EquipmentName = e.Name
		resp.Category = e.Category
		if resp.Equipment.Team != nil {
			resp.Team = resp.Equipment.Team.Name
		}
	}
	return resp
}

// mergeRequestDates overwrites only the dates present in the update; "" clears a date
func mergeRequestDates(r *models.MaintenanceRequest, req *UpdateMaintenanceRequestRequest) error {
	fields := []struct {
		name  string
		value *string
		dst   **time.Time
	}{
		{"scheduledDate", req.ScheduledDate, &r.ScheduledDate},
		{"completedDate", req.CompletedDate, &r.CompletedDate},
		{"dueDate", req.DueDate, &r.DueDate},
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

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
