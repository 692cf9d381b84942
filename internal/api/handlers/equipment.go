package handlers

import (
	"net/http"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler handles HTTP requests for the equipment registry
type EquipmentHandler struct {
	equipmentService service.EquipmentServiceInterface
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(equipmentService service.EquipmentServiceInterface) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
	}
}

// ListEquipment handles GET /equipments
// @Summary List equipment
// @Description Get all equipment with its team and open request count
// @Tags equipment
// @Produce json
// @Success 200 {array} service.EquipmentResponse "Successfully retrieved equipment"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /equipments [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	equipment, err := h.equipmentService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// GetEquipment handles GET /equipments/:id
// @Summary Get equipment by ID
// @Description Get a single piece of equipment with its team and open request count
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Success 200 {object} service.EquipmentResponse "Successfully retrieved equipment"
// @Failure 400 {object} ErrorResponse "Invalid equipment ID"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /equipments/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrInvalidEquipmentID)
	if !ok {
		return
	}

	equipment, err := h.equipmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// CreateEquipment handles POST /equipments
// @Summary Register equipment
// @Description Register a new piece of equipment. Serial numbers are unique.
// @Tags equipment
// @Accept json
// @Produce json
// @Param equipment body service.CreateEquipmentRequest true "Equipment data"
// @Success 201 {object} service.EquipmentResponse "Successfully created equipment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /equipments [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	equipment, err := h.equipmentService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, equipment)
}

// UpdateEquipment handles PATCH /equipments/:id
// @Summary Update equipment
// @Description Partially update equipment. Unknown fields are rejected.
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param equipment body service.UpdateEquipmentRequest true "Fields to change"
// @Success 200 {object} service.EquipmentResponse "Successfully updated equipment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /equipments/{id} [patch]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrInvalidEquipmentID)
	if !ok {
		return
	}

	var req service.UpdateEquipmentRequest
	if err := bindStrictJSON(c, &req); err != nil {
		respondBadRequest(c, err)
		return
	}

	equipment, err := h.equipmentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}
