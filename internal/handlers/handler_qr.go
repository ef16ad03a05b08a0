package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/middleware"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

// qrHandler renders printable QR labels for assets.
type qrHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newQRHandler(as portssvc.AssetSvcFacade) *qrHandler {
	return &qrHandler{assetService: as}
}

// registerQRRoutes registers the asset label routes.
func registerQRRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newQRHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.GET("/:assetID/qrcode", h.getAssetQRCode)
	}
}

// getAssetQRCode godoc
// @Summary Asset QR label
// @Description Returns a PNG QR code encoding the asset's patrimonial code, suitable for printed labels.
// @Tags assets
// @Produce  png
// @Param   assetID path string true "Asset ID"
// @Param   size query int false "Image size in pixels" default(256)
// @Success 200 {file} png
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{assetID}/qrcode [get]
func (h *qrHandler) getAssetQRCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultQRSize)))
	if err != nil || size <= 0 || size > maxQRSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("size must be between 1 and %d", maxQRSize)})
		return
	}

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		logger.Error("Failed to get asset for QR label", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve asset"})
		return
	}

	png, err := qrcode.Encode(asset.PatrimonialCode, qrcode.Medium, size)
	if err != nil {
		logger.Error("Failed to encode QR label", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", asset.PatrimonialCode+".png"))
	c.Data(http.StatusOK, "image/png", png)
}
