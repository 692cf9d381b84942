package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Message string `json:"message" example:"equipment not found"`
	Kind    string `json:"kind" example:"not_found"`
}

// respondError writes err with the status code of its kind
func respondError(c *gin.Context, err error) {
	kind := apperrors.Kind(err)

	status := http.StatusInternalServerError
	switch kind {
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
	}

	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Message: err.Error(), Kind: kind})
}

// respondBadRequest reports a malformed payload
func respondBadRequest(c *gin.Context, err error) {
	respondError(c, apperrors.NewValidationError("", err.Error()))
}

// parseID reads the :id path parameter
func parseID(c *gin.Context, invalid error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, invalid)
		return uuid.Nil, false
	}
	return id, true
}

// bindStrictJSON decodes the body into dst and rejects fields dst does not declare
func bindStrictJSON(c *gin.Context, dst interface{}) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("request body is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}
