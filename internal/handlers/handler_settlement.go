package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settlementHandler handles standalone and metal settlements.
type settlementHandler struct {
	transactionService portssvc.TransactionSvcFacade
	reversalService    portssvc.ReversalSvcFacade
}

func newSettlementHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReversalSvcFacade) *settlementHandler {
	return &settlementHandler{transactionService: ts, reversalService: rs}
}

// registerSettlementRoutes registers routes related to settlements.
func registerSettlementRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, rs portssvc.ReversalSvcFacade) {
	h := newSettlementHandler(ts, rs)

	settlements := rg.Group("/settlements")
	{
		settlements.POST("", h.createSettlement)
		settlements.DELETE("/:id", h.deleteSettlement)
	}

	metal := rg.Group("/metal-settlements")
	{
		metal.POST("", h.createMetalSettlement)
		metal.DELETE("/:id", h.deleteMetalSettlement)
	}
}

// createSettlement godoc
// @Summary Create a settlement
// @Description Applies a standalone cash/metal settlement against a ledger's balances
// @Tags settlements
// @Accept json
// @Produce json
// @Param settlement body dto.CreateSettlementRequest true "Settlement details"
// @Success 201 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /settlements [post]
func (h *settlementHandler) createSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	settlement, err := h.transactionService.CreateSettlement(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create settlement")
		return
	}

	logger.Info("Settlement created", slog.String("settlement_id", settlement.SettlementID))
	c.JSON(http.StatusCreated, dto.ToSettlementResponse(settlement))
}

// deleteSettlement godoc
// @Summary Delete a settlement
// @Description Soft-deletes the settlement; its balance effect is undone only inside the reversal window
// @Tags settlements
// @Produce json
// @Param id path string true "Settlement ID"
// @Success 200 {object} dto.ReversalResult
// @Failure 404 {object} map[string]string "Settlement not found"
// @Failure 409 {object} map[string]string "Already deleted"
// @Security BearerAuth
// @Router /settlements/{id} [delete]
func (h *settlementHandler) deleteSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	result, err := h.reversalService.DeleteSettlement(c.Request.Context(), tenantID, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete settlement")
		return
	}
	c.JSON(http.StatusOK, result)
}

// createMetalSettlement godoc
// @Summary Create a metal settlement
// @Description Applies a directional metal settlement against a ledger's credit and fine weight plus the tenant's stock
// @Tags settlements
// @Accept json
// @Produce json
// @Param settlement body dto.CreateMetalSettlementRequest true "Metal settlement details"
// @Success 201 {object} dto.MetalSettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Ledger not found"
// @Failure 422 {object} map[string]string "Insufficient stock or balance"
// @Security BearerAuth
// @Router /metal-settlements [post]
func (h *settlementHandler) createMetalSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMetalSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMetalSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	settlement, err := h.transactionService.CreateMetalSettlement(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create metal settlement")
		return
	}

	logger.Info("Metal settlement created", slog.String("metal_settlement_id", settlement.MetalSettlementID))
	c.JSON(http.StatusCreated, dto.ToMetalSettlementResponse(settlement))
}

// deleteMetalSettlement godoc
// @Summary Delete a metal settlement
// @Description Soft-deletes the metal settlement; balance and stock effects are undone only inside the reversal window
// @Tags settlements
// @Produce json
// @Param id path string true "Metal settlement ID"
// @Success 200 {object} dto.ReversalResult
// @Failure 404 {object} map[string]string "Metal settlement not found"
// @Failure 409 {object} map[string]string "Already deleted"
// @Security BearerAuth
// @Router /metal-settlements/{id} [delete]
func (h *settlementHandler) deleteMetalSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	result, err := h.reversalService.DeleteMetalSettlement(c.Request.Context(), tenantID, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete metal settlement")
		return
	}
	c.JSON(http.StatusOK, result)
}
