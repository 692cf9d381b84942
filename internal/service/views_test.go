package service_test

import (
	"context"
	"testing"
	"time"

	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/mocks"
	"gearguard-backend/internal/service"
	"gearguard-backend/internal/views"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ViewServiceTestSuite defines the test suite for ViewService
type ViewServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRequestRepo   *mocks.MockMaintenanceRequestRepositoryInterface
	mockEquipmentRepo *mocks.MockEquipmentRepositoryInterface
	mockTeamRepo      *mocks.MockTeamRepositoryInterface
	viewService       *service.ViewService
	now               time.Time
	equipment         models.Equipment
}

// SetupTest sets up the test suite
func (suite *ViewServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRequestRepo = mocks.NewMockMaintenanceRequestRepositoryInterface(suite.ctrl)
	suite.mockEquipmentRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.now = time.Date(2024, 12, 15, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return suite.now }

	requestService := service.NewMaintenanceRequestService(
		suite.mockRequestRepo, suite.mockEquipmentRepo, suite.mockTeamRepo, validator.New(),
	).WithClock(clock)
	suite.viewService = service.NewViewService(requestService).WithClock(clock)

	suite.equipment = models.Equipment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Hydraulic Press",
		Category:  "Production",
		Status:    models.EquipmentStatusOperational,
	}
}

// TearDownTest cleans up after each test
func (suite *ViewServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ViewServiceTestSuite) request(subject string, status models.RequestStatus) models.MaintenanceRequest {
	return models.MaintenanceRequest{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Subject:     subject,
		EquipmentID: suite.equipment.ID,
		Type:        models.RequestTypeCorrective,
		Priority:    models.RequestPriorityMedium,
		Status:      status,
	}
}

func (suite *ViewServiceTestSuite) expectRequests(requests ...models.MaintenanceRequest) {
	suite.mockRequestRepo.EXPECT().GetAll(gomock.Any()).Return(requests, nil)
	suite.mockEquipmentRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]models.Equipment{suite.equipment}, nil)
	suite.mockTeamRepo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// TestGetBoard tests grouping into the four columns
func (suite *ViewServiceTestSuite) TestGetBoard() {
	late := suite.request("Late inspection", models.RequestStatusNew)
	late.DueDate = day(2024, 12, 10)
	working := suite.request("Replacing seals", models.RequestStatusInProgress)
	repairedLate := suite.request("Fixed motor", models.RequestStatusRepaired)
	repairedLate.DueDate = day(2024, 12, 1)
	scrapped := suite.request("Frame cracked", models.RequestStatusScrap)
	suite.expectRequests(scrapped, late, working, repairedLate)

	board, err := suite.viewService.GetBoard(context.Background(), time.Time{})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.now, board.AsOf)
	require.Len(suite.T(), board.Columns, 4)

	titles := []string{}
	for _, col := range board.Columns {
		titles = append(titles, col.Title)
	}
	assert.Equal(suite.T(), []string{"New", "In Progress", "Repaired", "Scrap"}, titles)

	require.Equal(suite.T(), 1, board.Columns[0].Count)
	assert.Equal(suite.T(), "Late inspection", board.Columns[0].Cards[0].Subject)
	assert.True(suite.T(), board.Columns[0].Cards[0].Overdue)
	assert.Equal(suite.T(), "Hydraulic Press", board.Columns[0].Cards[0].EquipmentName)

	assert.Equal(suite.T(), 1, board.Columns[1].Count)
	require.Equal(suite.T(), 1, board.Columns[2].Count)
	assert.False(suite.T(), board.Columns[2].Cards[0].Overdue)
	assert.Equal(suite.T(), "Frame cracked", board.Columns[3].Cards[0].Subject)
}

// TestGetBoardAsOf tests that an explicit asOf decides overdue flags
func (suite *ViewServiceTestSuite) TestGetBoardAsOf() {
	pending := suite.request("Quarterly service", models.RequestStatusNew)
	pending.DueDate = day(2024, 12, 10)
	suite.expectRequests(pending)

	board, err := suite.viewService.GetBoard(context.Background(), time.Date(2024, 12, 10, 23, 0, 0, 0, time.UTC))

	require.NoError(suite.T(), err)
	assert.False(suite.T(), board.Columns[0].Cards[0].Overdue)
	assert.Empty(suite.T(), board.Columns[3].Cards)
}

// TestGetCalendar tests the month grid and day tags
func (suite *ViewServiceTestSuite) TestGetCalendar() {
	scheduled := suite.request("Preventive lubrication", models.RequestStatusNew)
	scheduled.Type = models.RequestTypePreventive
	scheduled.ScheduledDate = day(2024, 12, 20)
	scheduled.DueDate = day(2024, 12, 10)
	overdue := suite.request("Belt replacement", models.RequestStatusInProgress)
	overdue.DueDate = day(2024, 12, 10)
	upcoming := suite.request("Filter change", models.RequestStatusNew)
	upcoming.DueDate = day(2024, 12, 18)
	suite.expectRequests(scheduled, overdue, upcoming)

	calendar, err := suite.viewService.GetCalendar(context.Background(), time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), time.Time{})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2024-12", calendar.Month)
	require.Len(suite.T(), calendar.Days, 35)
	assert.Equal(suite.T(), "2024-12-01", calendar.Days[0].Date)
	assert.Equal(suite.T(), "2025-01-04", calendar.Days[34].Date)

	byDate := map[string]service.CalendarDay{}
	for _, d := range calendar.Days {
		byDate[d.Date] = d
	}

	assert.True(suite.T(), byDate["2024-12-15"].IsToday)
	assert.False(suite.T(), byDate["2025-01-01"].InMonth)

	require.Len(suite.T(), byDate["2024-12-20"].Entries, 1)
	assert.Equal(suite.T(), views.TagScheduled, byDate["2024-12-20"].Entries[0].Tag)

	// a scheduled request still shows up on its due date
	require.Len(suite.T(), byDate["2024-12-10"].Entries, 2)
	assert.Equal(suite.T(), views.TagOverdue, byDate["2024-12-10"].Entries[1].Tag)
	assert.True(suite.T(), byDate["2024-12-10"].Entries[1].Request.Overdue)

	require.Len(suite.T(), byDate["2024-12-18"].Entries, 1)
	assert.Equal(suite.T(), views.TagDue, byDate["2024-12-18"].Entries[0].Tag)
}

// TestGetCalendarDefaultsToCurrentMonth tests the zero month
func (suite *ViewServiceTestSuite) TestGetCalendarDefaultsToCurrentMonth() {
	suite.expectRequests()

	calendar, err := suite.viewService.GetCalendar(context.Background(), time.Time{}, time.Time{})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2024-12", calendar.Month)
	for _, d := range calendar.Days {
		assert.Empty(suite.T(), d.Entries)
	}
}

// TestViewServiceTestSuite runs the test suite
func TestViewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ViewServiceTestSuite))
}
