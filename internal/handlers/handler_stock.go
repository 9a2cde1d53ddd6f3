package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/utils/numeric"
	"github.com/gin-gonic/gin"
)

// stockHandler handles the per-tenant stock counters.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers routes related to stock.
func registerStockRoutes(rg *gin.RouterGroup, ss portssvc.StockSvcFacade) {
	h := newStockHandler(ss)

	stock := rg.Group("/stock")
	{
		stock.GET("", h.getStock)
		stock.PUT("/rates", h.updateRates)
		stock.POST("/cash", h.adjustCash)
	}
}

// getStock godoc
// @Summary Get the tenant's stock
// @Tags stock
// @Produce json
// @Success 200 {object} dto.StockResponse
// @Security BearerAuth
// @Router /stock [get]
func (h *stockHandler) getStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	if err := h.stockService.EnsureExists(c.Request.Context(), tenantID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to initialize stock")
		return
	}
	stock, err := h.stockService.GetStock(c.Request.Context(), tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve stock")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockResponse(stock))
}

// updateRates godoc
// @Summary Update the daily metal rates
// @Tags stock
// @Accept json
// @Produce json
// @Param rates body dto.UpdateRatesRequest true "Rates"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /stock/rates [put]
func (h *stockHandler) updateRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	stock, err := h.stockService.UpdateRates(c.Request.Context(), tenantID,
		numeric.DecimalOrZero(req.GoldRate), numeric.DecimalOrZero(req.SilverRate), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update rates")
		return
	}

	logger.Info("Rates updated", slog.String("tenant_id", tenantID))
	c.JSON(http.StatusOK, dto.ToStockResponse(stock))
}

// adjustCash godoc
// @Summary Adjust cash in hand
// @Description Moves the free-running cash accumulator by a signed delta
// @Tags stock
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustCashRequest true "Signed delta"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /stock/cash [post]
func (h *stockHandler) adjustCash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustCash", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	if err := h.stockService.AdjustCashInHand(c.Request.Context(), tenantID, numeric.DecimalOrZero(req.Delta), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to adjust cash in hand")
		return
	}
	c.Status(http.StatusNoContent)
}
