package repository

import (
	"context"
	"encoding/json"
	"time"

	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamDirectoryCacheKey holds the JSON encoded team list
const TeamDirectoryCacheKey = "gearguard:teams"

// CachedTeamRepository is a read-through Redis cache in front of a team repository.
// The whole directory is cached under a single key; creating a team invalidates it.
// Cache failures are logged and fall through to the wrapped repository.
type CachedTeamRepository struct {
	next   TeamRepositoryInterface
	client *redis.Client
	ttl    time.Duration
}

// Ensure CachedTeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*CachedTeamRepository)(nil)

// NewCachedTeamRepository wraps next with a Redis cache. A zero ttl keeps entries until invalidated.
func NewCachedTeamRepository(next TeamRepositoryInterface, client *redis.Client, ttl time.Duration) *CachedTeamRepository {
	return &CachedTeamRepository{next: next, client: client, ttl: ttl}
}

// Create stores the team and drops the cached directory
func (r *CachedTeamRepository) Create(ctx context.Context, team *models.Team) error {
	if err := r.next.Create(ctx, team); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// GetByID answers from the cached directory
func (r *CachedTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	teams, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if teams[i].ID == id {
			return &teams[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetAll returns the cached directory, loading it on a miss
func (r *CachedTeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	if teams, ok := r.load(ctx); ok {
		return teams, nil
	}

	teams, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, teams)
	return teams, nil
}

func (r *CachedTeamRepository) load(ctx context.Context) ([]models.Team, bool) {
	payload, err := r.client.Get(ctx, TeamDirectoryCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WithContext(ctx).WithError(err).Warn("team cache read failed")
		}
		return nil, false
	}

	var teams []models.Team
	if err := json.Unmarshal(payload, &teams); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("team cache entry is corrupt")
		return nil, false
	}
	return teams, true
}

func (r *CachedTeamRepository) store(ctx context.Context, teams []models.Team) {
	payload, err := json.Marshal(teams)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, TeamDirectoryCacheKey, payload, r.ttl).Err(); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("team cache write failed")
	}
}

func (r *CachedTeamRepository) invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, TeamDirectoryCacheKey).Err(); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("team cache invalidation failed")
	}
}
