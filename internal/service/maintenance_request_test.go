package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/mocks"
	"gearguard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MaintenanceRequestServiceTestSuite defines the test suite for MaintenanceRequestService
type MaintenanceRequestServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRequestRepo   *mocks.MockMaintenanceRequestRepositoryInterface
	mockEquipmentRepo *mocks.MockEquipmentRepositoryInterface
	mockTeamRepo      *mocks.MockTeamRepositoryInterface
	requestService    *service.MaintenanceRequestService
	now               time.Time
	team              models.Team
	equipment         models.Equipment
}

// SetupTest sets up the test suite
func (suite *MaintenanceRequestServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRequestRepo = mocks.NewMockMaintenanceRequestRepositoryInterface(suite.ctrl)
	suite.mockEquipmentRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.now = time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)

	suite.requestService = service.NewMaintenanceRequestService(
		suite.mockRequestRepo, suite.mockEquipmentRepo, suite.mockTeamRepo, validator.New(),
	).WithClock(func() time.Time { return suite.now })

	suite.team = models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Mechanics"}
	suite.equipment = models.Equipment{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "CNC Milling Machine #1",
		SerialNumber: "CNC-2024-001",
		Category:     "Production",
		Location:     "Building A",
		Status:       models.EquipmentStatusOperational,
		TeamID:       &suite.team.ID,
	}
}

// TearDownTest cleans up after each test
func (suite *MaintenanceRequestServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectJoin sets up the reads that resolve a single request's equipment and team
func (suite *MaintenanceRequestServiceTestSuite) expectJoin(statuses ...models.MaintenanceRequest) {
	ids := []uuid.UUID{suite.equipment.ID}
	suite.mockRequestRepo.EXPECT().GetStatuses(gomock.Any(), ids).Return(statuses, nil)
	suite.mockEquipmentRepo.EXPECT().GetByIDs(gomock.Any(), ids).Return([]models.Equipment{suite.equipment}, nil)
	suite.mockTeamRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{suite.team}, nil)
}

func (suite *MaintenanceRequestServiceTestSuite) storedRequest(status models.RequestStatus) *models.MaintenanceRequest {
	return &models.MaintenanceRequest{
		BaseModel:   models.BaseModel{ID: uuid.New(), CreatedAt: suite.now.AddDate(0, 0, -3)},
		Subject:     "Spindle vibration",
		EquipmentID: suite.equipment.ID,
		Type:        models.RequestTypeCorrective,
		Priority:    models.RequestPriorityHigh,
		Status:      status,
	}
}

// TestCreate tests creating a request with defaults applied
func (suite *MaintenanceRequestServiceTestSuite) TestCreate() {
	ctx := context.Background()
	req := &service.CreateMaintenanceRequestRequest{
		Title:       "Leaking oil",
		EquipmentID: suite.equipment.ID.String(),
		Type:        models.RequestTypeCorrective,
	}

	var created *models.MaintenanceRequest
	suite.mockEquipmentRepo.EXPECT().GetByID(gomock.Any(), suite.equipment.ID).Return(&suite.equipment, nil)
	suite.mockRequestRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.MaintenanceRequest) error {
			r.ID = uuid.New()
			created = r
			return nil
		})
	suite.expectJoin(models.MaintenanceRequest{EquipmentID: suite.equipment.ID, Status: models.RequestStatusNew})

	response, err := suite.requestService.Create(ctx, req)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), created)
	assert.Equal(suite.T(), "Leaking oil", response.Subject)
	assert.Equal(suite.T(), "Leaking oil", response.Title)
	assert.Equal(suite.T(), models.RequestStatusNew, response.Status)
	assert.Equal(suite.T(), models.RequestPriorityMedium, response.Priority)
	assert.Equal(suite.T(), suite.now, response.CreatedAt)
	assert.Equal(suite.T(), suite.now, response.CreatedDate)
	assert.Equal(suite.T(), response.ID, response.LegacyID)
	assert.Nil(suite.T(), response.CompletedDate)
	assert.Equal(suite.T(), "CNC Milling Machine #1", response.EquipmentName)
	assert.Equal(suite.T(), "Production", response.Category)
	assert.Equal(suite.T(), "Mechanics", response.Team)
	require.NotNil(suite.T(), response.Equipment)
	assert.Equal(suite.T(), 1, response.Equipment.OpenRequestsCount)
	require.NotNil(suite.T(), response.Equipment.Team)
	assert.Equal(suite.T(), suite.team.ID, response.Equipment.Team.ID)
}

// TestCreateSubjectWinsOverTitle tests that an explicit subject takes precedence
func (suite *MaintenanceRequestServiceTestSuite) TestCreateSubjectWinsOverTitle() {
	req := &service.CreateMaintenanceRequestRequest{
		Subject:   "Subject",
		Title:     "Title",
		Equipment: suite.equipment.ID.String(),
		Type:      models.RequestTypePreventive,
	}

	suite.mockEquipmentRepo.EXPECT().GetByID(gomock.Any(), suite.equipment.ID).Return(&suite.equipment, nil)
	suite.mockRequestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.expectJoin()

	response, err := suite.requestService.Create(context.Background(), req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Subject", response.Subject)
	assert.Equal(suite.T(), "Subject", response.Title)
}

// TestCreateValidationErrors tests payloads rejected before any storage access
func (suite *MaintenanceRequestServiceTestSuite) TestCreateValidationErrors() {
	equipmentID := suite.equipment.ID.String()
	testCases := []struct {
		name  string
		req   *service.CreateMaintenanceRequestRequest
		field string
	}{
		{"missing subject", &service.CreateMaintenanceRequestRequest{Equipment: equipmentID, Type: models.RequestTypeCorrective}, "subject"},
		{"missing equipment", &service.CreateMaintenanceRequestRequest{Subject: "x", Type: models.RequestTypeCorrective}, "equipment"},
		{"malformed equipment", &service.CreateMaintenanceRequestRequest{Subject: "x", Equipment: "42", Type: models.RequestTypeCorrective}, "equipment"},
		{"missing type", &service.CreateMaintenanceRequestRequest{Subject: "x", Equipment: equipmentID}, "type"},
		{"unknown type", &service.CreateMaintenanceRequestRequest{Subject: "x", Equipment: equipmentID, Type: "emergency"}, "type"},
		{"unknown priority", &service.CreateMaintenanceRequestRequest{Subject: "x", Equipment: equipmentID, Type: models.RequestTypeCorrective, Priority: "urgent"}, "priority"},
		{"unknown status", &service.CreateMaintenanceRequestRequest{Subject: "x", Equipment: equipmentID, Type: models.RequestTypeCorrective, Status: "done"}, "status"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			response, err := suite.requestService.Create(context.Background(), tc.req)

			assert.Nil(t, response)
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

// TestCreateUnknownEquipment tests that a dangling equipment reference is rejected
func (suite *MaintenanceRequestServiceTestSuite) TestCreateUnknownEquipment() {
	missing := uuid.New()
	req := &service.CreateMaintenanceRequestRequest{
		Subject:   "Belt slipping",
		Equipment: missing.String(),
		Type:      models.RequestTypeCorrective,
	}

	suite.mockEquipmentRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.requestService.Create(context.Background(), req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEquipmentRefMissing)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateAsScrapCascades tests that the initial status goes through the workflow
func (suite *MaintenanceRequestServiceTestSuite) TestCreateAsScrapCascades() {
	req := &service.CreateMaintenanceRequestRequest{
		Subject:   "Cracked frame",
		Equipment: suite.equipment.ID.String(),
		Type:      models.RequestTypeCorrective,
		Status:    models.RequestStatusScrap,
	}

	suite.mockEquipmentRepo.EXPECT().GetByID(gomock.Any(), suite.equipment.ID).Return(&suite.equipment, nil)
	gomock.InOrder(
		suite.mockRequestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		suite.mockEquipmentRepo.EXPECT().SetStatus(gomock.Any(), suite.equipment.ID, models.EquipmentStatusScrap).Return(nil),
	)
	suite.expectJoin()

	response, err := suite.requestService.Create(context.Background(), req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusScrap, response.Status)
	assert.Nil(suite.T(), response.CompletedDate)
}

// TestCreateAsRepairedStampsCompletion tests completion stamping on creation
func (suite *MaintenanceRequestServiceTestSuite) TestCreateAsRepairedStampsCompletion() {
	supplied := "2024-01-01"
	req := &service.CreateMaintenanceRequestRequest{
		Subject:       "Replaced fuse",
		Equipment:     suite.equipment.ID.String(),
		Type:          models.RequestTypeCorrective,
		Status:        models.RequestStatusRepaired,
		CompletedDate: &supplied,
	}

	suite.mockEquipmentRepo.EXPECT().GetByID(gomock.Any(), suite.equipment.ID).Return(&suite.equipment, nil)
	suite.mockRequestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.expectJoin()

	response, err := suite.requestService.Create(context.Background(), req)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), response.CompletedDate)
	assert.Equal(suite.T(), suite.now, *response.CompletedDate)
}

// TestUpdateToScrapCascades tests that the request is saved before the equipment is scrapped
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateToScrapCascades() {
	stored := suite.storedRequest(models.RequestStatusInProgress)
	scrap := models.RequestStatusScrap

	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	gomock.InOrder(
		suite.mockRequestRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.MaintenanceRequest) error {
				assert.Equal(suite.T(), models.RequestStatusScrap, r.Status)
				return nil
			}),
		suite.mockEquipmentRepo.EXPECT().SetStatus(gomock.Any(), suite.equipment.ID, models.EquipmentStatusScrap).Return(nil),
	)
	suite.equipment.Status = models.EquipmentStatusScrap
	suite.expectJoin()

	response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{Status: &scrap})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusScrap, response.Status)
	assert.Equal(suite.T(), models.EquipmentStatusScrap, response.Equipment.Status)
	assert.Equal(suite.T(), 0, response.Equipment.OpenRequestsCount)
}

// TestUpdateScrapAgainDoesNotCascade tests that a repeated scrap produces no side effect
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateScrapAgainDoesNotCascade() {
	stored := suite.storedRequest(models.RequestStatusScrap)
	scrap := models.RequestStatusScrap
	description := "still broken"

	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	suite.mockRequestRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockEquipmentRepo.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.expectJoin()

	response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{
		Status:      &scrap,
		Description: &description,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "still broken", response.Description)
}

// TestUpdateToRepairedStampsCompletion tests completion stamping on the repaired edge
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateToRepairedStampsCompletion() {
	stored := suite.storedRequest(models.RequestStatusInProgress)
	repaired := models.RequestStatusRepaired
	duration := 2.5

	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	suite.mockRequestRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	suite.expectJoin()

	response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{
		Status:        &repaired,
		DurationHours: &duration,
	})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), response.CompletedDate)
	assert.Equal(suite.T(), suite.now, *response.CompletedDate)
	require.NotNil(suite.T(), response.DurationHours)
	assert.Equal(suite.T(), 2.5, *response.DurationHours)
}

// TestUpdateRepairedAgainKeepsStamp tests that a repeated repaired leaves completedDate alone
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateRepairedAgainKeepsStamp() {
	stored := suite.storedRequest(models.RequestStatusRepaired)
	earlier := suite.now.AddDate(0, 0, -1)
	stored.CompletedDate = &earlier
	repaired := models.RequestStatusRepaired

	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	suite.mockRequestRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	suite.expectJoin()

	response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{Status: &repaired})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), response.CompletedDate)
	assert.Equal(suite.T(), earlier, *response.CompletedDate)
}

// TestUpdateClearingCompletedDateWhileRepaired tests that a repaired request keeps its completion date
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateClearingCompletedDateWhileRepaired() {
	stored := suite.storedRequest(models.RequestStatusRepaired)
	earlier := suite.now.AddDate(0, 0, -1)
	stored.CompletedDate = &earlier
	empty := ""

	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	suite.mockRequestRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{CompletedDate: &empty})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompletedDateRequired)
}

// TestUpdateCascadeFailure tests the partial failure between the two writes
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateCascadeFailure() {
	stored := suite.storedRequest(models.RequestStatusNew)
	scrap := models.RequestStatusScrap
	var saved models.MaintenanceRequest

	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	suite.mockRequestRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.MaintenanceRequest) error {
			saved = *r
			return nil
		})
	suite.mockEquipmentRepo.EXPECT().
		SetStatus(gomock.Any(), suite.equipment.ID, models.EquipmentStatusScrap).
		Return(errors.New("connection reset by peer"))

	response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{Status: &scrap})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsStorage(err))
	assert.Equal(suite.T(), models.RequestStatusScrap, saved.Status)
}

// TestUpdateTitleAlias tests that title renames the subject
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateTitleAlias() {
	stored := suite.storedRequest(models.RequestStatusNew)
	title := "Spindle vibration at high RPM"

	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	suite.mockRequestRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	suite.expectJoin(*stored)

	response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{Title: &title})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), title, response.Subject)
	assert.Equal(suite.T(), models.RequestStatusNew, response.Status)
	assert.Equal(suite.T(), 1, response.Equipment.OpenRequestsCount)
}

// TestUpdateBlankSubject tests that a whitespace-only subject or title is rejected
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateBlankSubject() {
	blank := "   "
	for name, req := range map[string]*service.UpdateMaintenanceRequestRequest{
		"subject": {Subject: &blank},
		"title":   {Title: &blank},
	} {
		suite.Run(name, func() {
			stored := suite.storedRequest(models.RequestStatusNew)
			suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)

			response, err := suite.requestService.Update(context.Background(), stored.ID, req)

			assert.Nil(suite.T(), response)
			require.True(suite.T(), apperrors.IsValidation(err))
			var validationErr *apperrors.ValidationError
			require.ErrorAs(suite.T(), err, &validationErr)
			assert.Equal(suite.T(), "subject", validationErr.Field)
		})
	}
}

// TestUpdateTrimsSubject tests that a renamed subject is stored trimmed
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateTrimsSubject() {
	stored := suite.storedRequest(models.RequestStatusNew)
	subject := "  Coolant leak  "

	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	suite.mockRequestRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	suite.expectJoin(*stored)

	response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{Subject: &subject})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Coolant leak", response.Subject)
}

// TestUpdateClearsDueDate tests that an empty date string clears the field
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateClearsDueDate() {
	stored := suite.storedRequest(models.RequestStatusNew)
	due := suite.now.AddDate(0, 0, 5)
	stored.DueDate = &due
	empty := ""

	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	suite.mockRequestRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	suite.expectJoin()

	response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{DueDate: &empty})

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.DueDate)
}

// TestUpdateErrors tests the update failure modes
func (suite *MaintenanceRequestServiceTestSuite) TestUpdateErrors() {
	suite.T().Run("Empty update", func(t *testing.T) {
		response, err := suite.requestService.Update(context.Background(), uuid.New(), &service.UpdateMaintenanceRequestRequest{})
		assert.Nil(t, response)
		assert.ErrorIs(t, err, apperrors.ErrEmptyUpdate)
	})

	suite.T().Run("Invalid status", func(t *testing.T) {
		bogus := models.RequestStatus("closed")
		response, err := suite.requestService.Update(context.Background(), uuid.New(), &service.UpdateMaintenanceRequestRequest{Status: &bogus})
		assert.Nil(t, response)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Invalid date", func(t *testing.T) {
		stored := suite.storedRequest(models.RequestStatusNew)
		bad := "next tuesday"
		suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)

		response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{DueDate: &bad})
		assert.Nil(t, response)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Unknown request", func(t *testing.T) {
		id := uuid.New()
		repaired := models.RequestStatusRepaired
		suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		response, err := suite.requestService.Update(context.Background(), id, &service.UpdateMaintenanceRequestRequest{Status: &repaired})
		assert.Nil(t, response)
		assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
	})

	suite.T().Run("Save failure", func(t *testing.T) {
		stored := suite.storedRequest(models.RequestStatusNew)
		scrap := models.RequestStatusScrap
		suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
		suite.mockRequestRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		response, err := suite.requestService.Update(context.Background(), stored.ID, &service.UpdateMaintenanceRequestRequest{Status: &scrap})
		assert.Nil(t, response)
		assert.True(t, apperrors.IsStorage(err))
	})
}

// TestGetAll tests the two-level join across a batch of requests
func (suite *MaintenanceRequestServiceTestSuite) TestGetAll() {
	orphanID := uuid.New()
	overdue := suite.now.AddDate(0, 0, -2)
	first := suite.storedRequest(models.RequestStatusNew)
	first.DueDate = &overdue
	second := suite.storedRequest(models.RequestStatusInProgress)
	orphan := suite.storedRequest(models.RequestStatusNew)
	orphan.EquipmentID = orphanID

	suite.mockRequestRepo.EXPECT().GetAll(gomock.Any()).Return([]models.MaintenanceRequest{*first, *second, *orphan}, nil)
	suite.mockEquipmentRepo.EXPECT().
		GetByIDs(gomock.Any(), []uuid.UUID{suite.equipment.ID, orphanID}).
		Return([]models.Equipment{suite.equipment}, nil)
	suite.mockTeamRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{suite.team}, nil)

	responses, err := suite.requestService.GetAll(context.Background())

	require.NoError(suite.T(), err)
	require.Len(suite.T(), responses, 3)

	assert.True(suite.T(), responses[0].Overdue)
	assert.Equal(suite.T(), "Mechanics", responses[0].Team)
	assert.Equal(suite.T(), 2, responses[0].Equipment.OpenRequestsCount)
	assert.False(suite.T(), responses[1].Overdue)

	assert.Nil(suite.T(), responses[2].Equipment)
	assert.Equal(suite.T(), orphanID, responses[2].EquipmentID)
	assert.Equal(suite.T(), "Unknown", responses[2].EquipmentName)
	assert.Equal(suite.T(), "Unknown", responses[2].Category)
	assert.Equal(suite.T(), "Unknown", responses[2].Team)
}

// TestGetAllEmpty tests listing with no requests stored
func (suite *MaintenanceRequestServiceTestSuite) TestGetAllEmpty() {
	suite.mockRequestRepo.EXPECT().GetAll(gomock.Any()).Return([]models.MaintenanceRequest{}, nil)
	suite.mockEquipmentRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]models.Equipment{}, nil)

	responses, err := suite.requestService.GetAll(context.Background())

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), responses)
}

// TestGetByID tests fetching a single request
func (suite *MaintenanceRequestServiceTestSuite) TestGetByID() {
	suite.T().Run("Found", func(t *testing.T) {
		stored := suite.storedRequest(models.RequestStatusNew)
		stored.AssignedTo = models.Assignee{Name: "Alex Turner", Avatar: "AT"}
		suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
		suite.expectJoin(*stored)

		response, err := suite.requestService.GetByID(context.Background(), stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, response.ID)
		require.NotNil(t, response.AssignedTo)
		assert.Equal(t, "Alex Turner", response.AssignedTo.Name)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockRequestRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		response, err := suite.requestService.GetByID(context.Background(), id)
		assert.Nil(t, response)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

// TestReconcileScrappedEquipment tests the recovery pass
func (suite *MaintenanceRequestServiceTestSuite) TestReconcileScrappedEquipment() {
	alreadyScrapped := models.Equipment{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.EquipmentStatusScrap}
	interrupted := models.Equipment{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.EquipmentStatusMaintenance}
	ids := []uuid.UUID{alreadyScrapped.ID, interrupted.ID}

	suite.mockRequestRepo.EXPECT().GetEquipmentIDsByStatus(gomock.Any(), models.RequestStatusScrap).Return(ids, nil)
	suite.mockEquipmentRepo.EXPECT().GetByIDs(gomock.Any(), ids).Return([]models.Equipment{alreadyScrapped, interrupted}, nil)
	suite.mockEquipmentRepo.EXPECT().SetStatus(gomock.Any(), interrupted.ID, models.EquipmentStatusScrap).Return(nil)

	result, err := suite.requestService.ReconcileScrappedEquipment(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, result.Checked)
	assert.Equal(suite.T(), []uuid.UUID{interrupted.ID}, result.Updated)
}

// TestReconcileScrappedEquipmentFailure tests that a failed write surfaces as a storage error
func (suite *MaintenanceRequestServiceTestSuite) TestReconcileScrappedEquipmentFailure() {
	interrupted := models.Equipment{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.EquipmentStatusOperational}

	suite.mockRequestRepo.EXPECT().GetEquipmentIDsByStatus(gomock.Any(), models.RequestStatusScrap).Return([]uuid.UUID{interrupted.ID}, nil)
	suite.mockEquipmentRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]models.Equipment{interrupted}, nil)
	suite.mockEquipmentRepo.EXPECT().SetStatus(gomock.Any(), interrupted.ID, models.EquipmentStatusScrap).Return(errors.New("timeout"))

	result, err := suite.requestService.ReconcileScrappedEquipment(context.Background())

	assert.True(suite.T(), apperrors.IsStorage(err))
	require.NotNil(suite.T(), result)
	assert.Empty(suite.T(), result.Updated)
}

// TestMaintenanceRequestServiceTestSuite runs the test suite
func TestMaintenanceRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceRequestServiceTestSuite))
}
