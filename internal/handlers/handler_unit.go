package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
	"github.com/patrimonia/asset_inventory_app/internal/middleware"
)

// unitHandler handles HTTP requests related to administrative units.
type unitHandler struct {
	unitService portssvc.UnitSvcFacade
}

func newUnitHandler(us portssvc.UnitSvcFacade) *unitHandler {
	return &unitHandler{unitService: us}
}

// registerUnitRoutes registers routes related to administrative units.
func registerUnitRoutes(rg *gin.RouterGroup, unitService portssvc.UnitSvcFacade) {
	h := newUnitHandler(unitService)

	units := rg.Group("/units")
	{
		units.POST("", h.createUnit)
		units.GET("", h.listUnits)
		units.GET("/:unitID", h.getUnit)
		units.PUT("/:unitID", h.updateUnit)
	}
}

// createUnit godoc
// @Summary Register an administrative unit
// @Tags units
// @Accept  json
// @Produce  json
// @Param   unit body dto.CreateUnitRequest true "Unit details"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name already exists"
// @Security BearerAuth
// @Router /units [post]
func (h *unitHandler) createUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A unit with this name already exists"})
			return
		}
		logger.Error("Failed to create unit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create unit"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

// listUnits godoc
// @Summary List administrative units
// @Tags units
// @Produce  json
// @Param   activeOnly query bool false "Only active units" default(false)
// @Success 200 {array} dto.UnitResponse
// @Security BearerAuth
// @Router /units [get]
func (h *unitHandler) listUnits(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))

	units, err := h.unitService.ListUnits(c.Request.Context(), activeOnly)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list units", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list units"})
		return
	}

	res := make([]dto.UnitResponse, len(units))
	for i := range units {
		res[i] = dto.ToUnitResponse(&units[i])
	}
	c.JSON(http.StatusOK, res)
}

// getUnit godoc
// @Summary Get an administrative unit by ID
// @Tags units
// @Produce  json
// @Param   unitID path string true "Unit ID"
// @Success 200 {object} dto.UnitResponse
// @Failure 404 {object} map[string]string "Unit not found"
// @Security BearerAuth
// @Router /units/{unitID} [get]
func (h *unitHandler) getUnit(c *gin.Context) {
	unitID := c.Param("unitID")

	unit, err := h.unitService.GetUnitByID(c.Request.Context(), unitID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get unit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve unit"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// updateUnit godoc
// @Summary Update an administrative unit
// @Tags units
// @Accept  json
// @Produce  json
// @Param   unitID path string true "Unit ID"
// @Param   unit body dto.UpdateUnitRequest true "Fields to update"
// @Success 200 {object} dto.UnitResponse
// @Failure 404 {object} map[string]string "Unit not found"
// @Security BearerAuth
// @Router /units/{unitID} [put]
func (h *unitHandler) updateUnit(c *gin.Context) {
	unitID := c.Param("unitID")

	var req dto.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	unit, err := h.unitService.UpdateUnit(c.Request.Context(), unitID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update unit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update unit"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}
