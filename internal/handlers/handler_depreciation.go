package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/core/services"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
	"github.com/patrimonia/asset_inventory_app/internal/middleware"
)

// depreciationHandler handles HTTP requests for depreciation runs and the ledger.
type depreciationHandler struct {
	depreciationService portssvc.DepreciationSvcFacade
	userService         portssvc.UserSvcFacade
}

func newDepreciationHandler(ds portssvc.DepreciationSvcFacade, us portssvc.UserSvcFacade) *depreciationHandler {
	return &depreciationHandler{
		depreciationService: ds,
		userService:         us,
	}
}

// registerDepreciationRoutes registers routes related to the depreciation ledger.
func registerDepreciationRoutes(rg *gin.RouterGroup, ds portssvc.DepreciationSvcFacade, us portssvc.UserSvcFacade) {
	h := newDepreciationHandler(ds, us)

	depreciation := rg.Group("/depreciation")
	{
		depreciation.POST("/runs", h.runDepreciation)
		depreciation.GET("/records", h.listRecordsByPeriod)
	}

	assets := rg.Group("/assets")
	{
		assets.GET("/:assetID/depreciation", h.listRecordsByAsset)
		assets.GET("/:assetID/depreciation/latest", h.getLatestRecord)
	}
}

// runDepreciation godoc
// @Summary Run monthly depreciation
// @Description Computes and persists one depreciation record per eligible asset for the given period. Admin only. Re-running a period is a no-op for already-processed assets.
// @Tags depreciation
// @Accept  json
// @Produce  json
// @Param   period body dto.RunDepreciationRequest true "Target period"
// @Success 200 {object} dto.RunSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (admin only)"
// @Failure 500 {object} map[string]string "Run failed to commit"
// @Security BearerAuth
// @Router /depreciation/runs [post]
func (h *depreciationHandler) runDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RunDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for runDepreciation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.userService.RequireAdmin(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Non-admin attempted depreciation run", slog.String("user_id", userID))
			c.JSON(http.StatusForbidden, gin.H{"error": "Only administrators can run depreciation"})
			return
		}
		logger.Error("Failed to check admin role", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authorize request"})
		return
	}

	summary, err := h.depreciationService.Run(c.Request.Context(), req.Month, req.Year, userID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Depreciation run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Depreciation run failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRunSummaryResponse(summary))
}

// listRecordsByPeriod godoc
// @Summary List depreciation records of one period
// @Tags depreciation
// @Produce  json
// @Param   month query int true "Month (1-12)"
// @Param   year query int true "Year"
// @Success 200 {object} dto.ListDepreciationRecordsResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Security BearerAuth
// @Router /depreciation/records [get]
func (h *depreciationHandler) listRecordsByPeriod(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter must be an integer"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter must be an integer"})
		return
	}

	records, err := h.depreciationService.ListRecordsByPeriod(c.Request.Context(), month, year)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list records by period", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list depreciation records"})
		return
	}

	c.JSON(http.StatusOK, dto.ListDepreciationRecordsResponse{Records: dto.ToDepreciationRecordResponses(records)})
}

// listRecordsByAsset godoc
// @Summary List an asset's depreciation schedule so far
// @Tags depreciation
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.ListDepreciationRecordsResponse
// @Security BearerAuth
// @Router /assets/{assetID}/depreciation [get]
func (h *depreciationHandler) listRecordsByAsset(c *gin.Context) {
	assetID := c.Param("assetID")

	records, err := h.depreciationService.ListRecordsByAsset(c.Request.Context(), assetID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list records by asset", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list depreciation records"})
		return
	}

	c.JSON(http.StatusOK, dto.ListDepreciationRecordsResponse{Records: dto.ToDepreciationRecordResponses(records)})
}

// getLatestRecord godoc
// @Summary Get an asset's most recent depreciation record
// @Tags depreciation
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.DepreciationRecordResponse
// @Failure 404 {object} map[string]string "No records for asset"
// @Security BearerAuth
// @Router /assets/{assetID}/depreciation/latest [get]
func (h *depreciationHandler) getLatestRecord(c *gin.Context) {
	assetID := c.Param("assetID")

	record, err := h.depreciationService.GetLatestRecord(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset has no depreciation records"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get latest record", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve depreciation record"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDepreciationRecordResponse(record))
}
