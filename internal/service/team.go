package service

import (
	"context"
	"time"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles business logic for the team directory
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// TeamMemberRequest is one roster entry in a create payload
type TeamMemberRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Role   string `json:"role" validate:"max=100"`
	Avatar string `json:"avatar" validate:"max=200"`
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name    string              `json:"name" validate:"required,min=1,max=100"`
	Members []TeamMemberRequest `json:"members" validate:"dive"`
}

// TeamMemberResponse is one roster entry
type TeamMemberResponse struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	LegacyID  uuid.UUID            `json:"_id"`
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Members   []TeamMemberResponse `json:"members"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// GetAll returns every team with its roster
func (s *TeamService) GetAll(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, storageError("failed to list teams", err, nil)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *teamResponse(&teams[i])
	}
	return responses, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to get team", err, apperrors.ErrTeamNotFound)
	}
	return teamResponse(team), nil
}

// Create creates a new team. Members keep the order they were given in.
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	team := &models.Team{
		Name:    req.Name,
		Members: make([]models.TeamMember, len(req.Members)),
	}
	for i, m := range req.Members {
		team.Members[i] = models.TeamMember{
			Position: i,
			Name:     m.Name,
			Role:     m.Role,
			Avatar:   m.Avatar,
		}
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, storageError("failed to create team", err, nil)
	}
	return teamResponse(team), nil
}

// teamResponse converts a team model to a response
func teamResponse(team *models.Team) *TeamResponse {
	members := make([]TeamMemberResponse, len(team.Members))
	for i, m := range team.Members {
		members[i] = TeamMemberResponse{Name: m.Name, Role: m.Role, Avatar: m.Avatar}
	}
	return &TeamResponse{
		LegacyID:  team.ID,
		ID:        team.ID,
		Name:      team.Name,
		Members:   members,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}
