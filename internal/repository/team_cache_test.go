package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/mocks"
	"gearguard-backend/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CachedTeamRepositoryTestSuite exercises the Redis decorator against miniredis
type CachedTeamRepositoryTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	next   *mocks.MockTeamRepositoryInterface
	server *miniredis.Miniredis
	client *redis.Client
	repo   *repository.CachedTeamRepository
	ctx    context.Context
}

func (suite *CachedTeamRepositoryTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.next = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.server = miniredis.RunT(suite.T())
	suite.client = redis.NewClient(&redis.Options{Addr: suite.server.Addr()})
	suite.repo = repository.NewCachedTeamRepository(suite.next, suite.client, time.Minute)
	suite.ctx = context.Background()
}

func (suite *CachedTeamRepositoryTestSuite) TearDownTest() {
	_ = suite.client.Close()
	suite.ctrl.Finish()
}

func (suite *CachedTeamRepositoryTestSuite) directory() []models.Team {
	return []models.Team{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      "Mechanics",
			Members:   []models.TeamMember{{Name: "John Smith", Role: "Senior Mechanic", Avatar: "JS"}},
		},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "IT Support"},
	}
}

func (suite *CachedTeamRepositoryTestSuite) TestGetAll_LoadsOnceThenServesFromCache() {
	teams := suite.directory()
	suite.next.EXPECT().GetAll(gomock.Any()).Return(teams, nil).Times(1)

	first, err := suite.repo.GetAll(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), first, 2)
	assert.True(suite.T(), suite.server.Exists(repository.TeamDirectoryCacheKey))
	assert.Equal(suite.T(), time.Minute, suite.server.TTL(repository.TeamDirectoryCacheKey))

	second, err := suite.repo.GetAll(suite.ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), second, 2)
	assert.Equal(suite.T(), teams[0].ID, second[0].ID)
	assert.Equal(suite.T(), "John Smith", second[0].Members[0].Name)
}

func (suite *CachedTeamRepositoryTestSuite) TestCreate_InvalidatesDirectory() {
	teams := suite.directory()
	suite.next.EXPECT().GetAll(gomock.Any()).Return(teams, nil).Times(2)

	_, err := suite.repo.GetAll(suite.ctx)
	require.NoError(suite.T(), err)

	created := &models.Team{Name: "Electricians"}
	suite.next.EXPECT().Create(gomock.Any(), created).Return(nil)
	require.NoError(suite.T(), suite.repo.Create(suite.ctx, created))
	assert.False(suite.T(), suite.server.Exists(repository.TeamDirectoryCacheKey))

	_, err = suite.repo.GetAll(suite.ctx)
	require.NoError(suite.T(), err)
}

func (suite *CachedTeamRepositoryTestSuite) TestCreate_FailureKeepsCache() {
	suite.next.EXPECT().GetAll(gomock.Any()).Return(suite.directory(), nil)
	_, err := suite.repo.GetAll(suite.ctx)
	require.NoError(suite.T(), err)

	suite.next.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	err = suite.repo.Create(suite.ctx, &models.Team{Name: "Electricians"})
	assert.EqualError(suite.T(), err, "insert failed")
	assert.True(suite.T(), suite.server.Exists(repository.TeamDirectoryCacheKey))
}

func (suite *CachedTeamRepositoryTestSuite) TestGetByID() {
	teams := suite.directory()
	suite.next.EXPECT().GetAll(gomock.Any()).Return(teams, nil).Times(1)

	team, err := suite.repo.GetByID(suite.ctx, teams[1].ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "IT Support", team.Name)

	_, err = suite.repo.GetByID(suite.ctx, uuid.New())
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *CachedTeamRepositoryTestSuite) TestCorruptEntryFallsThrough() {
	require.NoError(suite.T(), suite.server.Set(repository.TeamDirectoryCacheKey, "{not json"))
	suite.next.EXPECT().GetAll(gomock.Any()).Return(suite.directory(), nil)

	teams, err := suite.repo.GetAll(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), teams, 2)
}

func (suite *CachedTeamRepositoryTestSuite) TestRedisDownFallsThrough() {
	suite.server.Close()
	suite.next.EXPECT().GetAll(gomock.Any()).Return(suite.directory(), nil).Times(2)

	for i := 0; i < 2; i++ {
		teams, err := suite.repo.GetAll(suite.ctx)
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), teams, 2)
	}
}

func (suite *CachedTeamRepositoryTestSuite) TestBackendErrorIsNotCached() {
	suite.next.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := suite.repo.GetAll(suite.ctx)
	assert.Error(suite.T(), err)
	assert.False(suite.T(), suite.server.Exists(repository.TeamDirectoryCacheKey))
}

func TestCachedTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CachedTeamRepositoryTestSuite))
}
