package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"gearguard-backend/internal/api/handlers"
	"gearguard-backend/internal/mocks"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ViewHandlerTestSuite defines the test suite for ViewHandler
type ViewHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockViewServiceInterface
	handler     *handlers.ViewHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ViewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockViewServiceInterface(suite.ctrl)
	suite.handler = handlers.NewViewHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.GET("/board", suite.handler.GetBoard)
	suite.router.GET("/calendar", suite.handler.GetCalendar)
}

// TearDownTest cleans up after each test
func (suite *ViewHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetBoard tests GET /board
func (suite *ViewHandlerTestSuite) TestGetBoard() {
	suite.T().Run("Defaults to now", func(t *testing.T) {
		suite.mockService.EXPECT().GetBoard(gomock.Any(), time.Time{}).Return(&service.BoardResponse{}, nil)

		w := performRequest(suite.router, http.MethodGet, "/board", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Explicit asOf", func(t *testing.T) {
		asOf := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
		suite.mockService.EXPECT().GetBoard(gomock.Any(), asOf).Return(&service.BoardResponse{AsOf: asOf}, nil)

		w := performRequest(suite.router, http.MethodGet, "/board?asOf=2024-12-15", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Invalid asOf", func(t *testing.T) {
		w := performRequest(suite.router, http.MethodGet, "/board?asOf=15.12.2024", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestGetCalendar tests GET /calendar
func (suite *ViewHandlerTestSuite) TestGetCalendar() {
	suite.T().Run("Month parameter", func(t *testing.T) {
		month := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
		suite.mockService.EXPECT().
			GetCalendar(gomock.Any(), month, time.Time{}).
			Return(&service.CalendarResponse{Month: "2024-12"}, nil)

		w := performRequest(suite.router, http.MethodGet, "/calendar?month=2024-12", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"month":"2024-12"`)
	})

	suite.T().Run("Invalid month", func(t *testing.T) {
		w := performRequest(suite.router, http.MethodGet, "/calendar?month=December", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "expected YYYY-MM")
	})
}

// TestViewHandlerTestSuite runs the test suite
func TestViewHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ViewHandlerTestSuite))
}
