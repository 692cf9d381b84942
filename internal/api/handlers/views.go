package handlers

import (
	"net/http"
	"time"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ViewHandler serves the kanban board and the calendar
type ViewHandler struct {
	viewService service.ViewServiceInterface
}

// NewViewHandler creates a new view handler
func NewViewHandler(viewService service.ViewServiceInterface) *ViewHandler {
	return &ViewHandler{
		viewService: viewService,
	}
}

// GetBoard handles GET /board
// @Summary Kanban board
// @Description Requests grouped into the New, In Progress, Repaired and Scrap columns with overdue flags
// @Tags views
// @Produce json
// @Param asOf query string false "Day overdue is evaluated against (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.BoardResponse "Board"
// @Failure 400 {object} ErrorResponse "Invalid asOf"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /board [get]
func (h *ViewHandler) GetBoard(c *gin.Context) {
	asOf, err := parseQueryTime(c, "asOf", "2006-01-02", apperrors.ErrUnsupportedAsOfValue)
	if err != nil {
		respondError(c, err)
		return
	}

	board, err := h.viewService.GetBoard(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// GetCalendar handles GET /calendar
// @Summary Calendar month
// @Description Month grid of full weeks starting on Sunday; each day lists scheduled, due and overdue requests
// @Tags views
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Param asOf query string false "Day overdue is evaluated against (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.CalendarResponse "Calendar"
// @Failure 400 {object} ErrorResponse "Invalid month or asOf"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /calendar [get]
func (h *ViewHandler) GetCalendar(c *gin.Context) {
	month, err := parseQueryTime(c, "month", "2006-01", apperrors.ErrInvalidPeriodFormat)
	if err != nil {
		respondError(c, err)
		return
	}
	asOf, err := parseQueryTime(c, "asOf", "2006-01-02", apperrors.ErrUnsupportedAsOfValue)
	if err != nil {
		respondError(c, err)
		return
	}

	calendar, err := h.viewService.GetCalendar(c.Request.Context(), month, asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// parseQueryTime parses an optional query parameter; absent yields the zero time
func parseQueryTime(c *gin.Context, name, layout string, invalid error) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, invalid
	}
	return t, nil
}
