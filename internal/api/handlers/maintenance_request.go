package handlers

import (
	"fmt"
	"net/http"
	"time"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MaintenanceRequestHandler handles HTTP requests for maintenance requests
type MaintenanceRequestHandler struct {
	requestService service.MaintenanceRequestServiceInterface
}

// NewMaintenanceRequestHandler creates a new maintenance request handler
func NewMaintenanceRequestHandler(requestService service.MaintenanceRequestServiceInterface) *MaintenanceRequestHandler {
	return &MaintenanceRequestHandler{
		requestService: requestService,
	}
}

// ListRequests handles GET /requests
// @Summary List maintenance requests
// @Description Get all requests with their equipment and the equipment's team resolved
// @Tags requests
// @Produce json
// @Success 200 {array} service.MaintenanceRequestResponse "Successfully retrieved requests"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /requests [get]
func (h *MaintenanceRequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.requestService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// GetRequest handles GET /requests/:id
// @Summary Get maintenance request by ID
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.MaintenanceRequestResponse "Successfully retrieved request"
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /requests/{id} [get]
func (h *MaintenanceRequestHandler) GetRequest(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrInvalidRequestID)
	if !ok {
		return
	}

	request, err := h.requestService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// CreateRequest handles POST /requests
// @Summary Open a maintenance request
// @Description Create a request against existing equipment. title is accepted for subject and equipmentId for equipment.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body service.CreateMaintenanceRequestRequest true "Request data"
// @Success 201 {object} service.MaintenanceRequestResponse "Successfully created request"
// @Failure 400 {object} ErrorResponse "Invalid request body or unknown equipment"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /requests [post]
func (h *MaintenanceRequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateMaintenanceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// UpdateRequest handles PATCH /requests/:id
// @Summary Update a maintenance request
// @Description Partially update a request. Moving to scrap scraps the equipment; moving to repaired stamps completedDate. Type and equipment cannot change.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param request body service.UpdateMaintenanceRequestRequest true "Fields to change"
// @Success 200 {object} service.MaintenanceRequestResponse "Successfully updated request"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 500 {object} ErrorResponse "Storage failure, including an interrupted equipment cascade"
// @Router /requests/{id} [patch]
func (h *MaintenanceRequestHandler) UpdateRequest(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrInvalidRequestID)
	if !ok {
		return
	}

	var req service.UpdateMaintenanceRequestRequest
	if err := bindStrictJSON(c, &req); err != nil {
		respondBadRequest(c, err)
		return
	}

	request, err := h.requestService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ReconcileEquipment handles POST /requests/reconcile
// @Summary Reconcile scrapped equipment
// @Description Scrap every piece of equipment referenced by a scrap request that is not scrapped yet
// @Tags requests
// @Produce json
// @Success 200 {object} service.ReconcileResponse "Reconciliation result"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /requests/reconcile [post]
func (h *MaintenanceRequestHandler) ReconcileEquipment(c *gin.Context) {
	result, err := h.requestService.ReconcileScrappedEquipment(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportRequests handles GET /requests/export
// @Summary Export maintenance requests
// @Description Download every request as an xlsx spreadsheet
// @Tags requests
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Spreadsheet"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /requests/export [get]
func (h *MaintenanceRequestHandler) ExportRequests(c *gin.Context) {
	data, err := h.requestService.ExportXLSX(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	fileName := fmt.Sprintf("maintenance_requests_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, xlsxContentType, data)
}
