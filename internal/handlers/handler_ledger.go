package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledgers.
type ledgerHandler struct {
	ledgerService      portssvc.LedgerSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, ts portssvc.TransactionSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, transactionService: ts}
}

// registerLedgerRoutes registers routes related to ledgers.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, ts portssvc.TransactionSvcFacade) {
	h := newLedgerHandler(ls, ts)

	ledgers := rg.Group("/ledgers")
	{
		ledgers.POST("", h.createLedger)
		ledgers.GET("", h.listLedgers)
		ledgers.GET("/:id", h.getLedger)
		ledgers.DELETE("/:id", h.deleteLedger)
		ledgers.GET("/:id/vouchers", h.listLedgerVouchers)
		ledgers.POST("/:id/purge", h.purgeLedger)
		ledgers.POST("/:id/recompute", h.recomputeLedger)
	}
}

// createLedger godoc
// @Summary Create a ledger
// @Description Registers a counterparty ledger with an opening balance
// @Tags ledgers
// @Accept json
// @Produce json
// @Param ledger body dto.CreateLedgerRequest true "Ledger details"
// @Success 201 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /ledgers [post]
func (h *ledgerHandler) createLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create ledger")
		return
	}

	logger.Info("Ledger created", slog.String("ledger_id", ledger.LedgerID))
	c.JSON(http.StatusCreated, dto.ToLedgerResponse(ledger))
}

// listLedgers godoc
// @Summary List ledgers
// @Tags ledgers
// @Produce json
// @Success 200 {array} dto.LedgerResponse
// @Security BearerAuth
// @Router /ledgers [get]
func (h *ledgerHandler) listLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := identity(c, logger)
	if !ok {
		return
	}

	ledgers, err := h.ledgerService.ListLedgers(c.Request.Context(), tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list ledgers")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponses(ledgers))
}

// getLedger godoc
// @Summary Get a ledger by ID
// @Tags ledgers
// @Produce json
// @Param id path string true "Ledger ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /ledgers/{id} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := identity(c, logger)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.GetLedgerByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

// deleteLedger godoc
// @Summary Delete a ledger
// @Description Removes a ledger that owns zero transactions
// @Tags ledgers
// @Param id path string true "Ledger ID"
// @Success 204
// @Failure 404 {object} map[string]string "Ledger not found"
// @Failure 409 {object} map[string]string "Ledger still owns transactions"
// @Security BearerAuth
// @Router /ledgers/{id} [delete]
func (h *ledgerHandler) deleteLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := identity(c, logger)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteLedger(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete ledger")
		return
	}
	c.Status(http.StatusNoContent)
}

// listLedgerVouchers godoc
// @Summary List a ledger's vouchers
// @Tags ledgers
// @Produce json
// @Param id path string true "Ledger ID"
// @Success 200 {array} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /ledgers/{id}/vouchers [get]
func (h *ledgerHandler) listLedgerVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := identity(c, logger)
	if !ok {
		return
	}

	vouchers, err := h.transactionService.ListVouchersByLedger(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list vouchers")
		return
	}

	responses := make([]dto.VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = dto.ToVoucherResponse(&vouchers[i])
	}
	c.JSON(http.StatusOK, responses)
}

// purgeLedger godoc
// @Summary Purge a ledger's transactions
// @Description Hard-deletes every record owned by the ledger and resets balances to the opening reference
// @Tags ledgers
// @Produce json
// @Param id path string true "Ledger ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /ledgers/{id}/purge [post]
func (h *ledgerHandler) purgeLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.PurgeLedgerTransactions(c.Request.Context(), tenantID, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to purge ledger transactions")
		return
	}

	logger.Info("Ledger purged", slog.String("ledger_id", ledger.LedgerID))
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

// recomputeLedger godoc
// @Summary Recompute a ledger's balances
// @Description Replays all still-active records from the opening balance
// @Tags ledgers
// @Produce json
// @Param id path string true "Ledger ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /ledgers/{id}/recompute [post]
func (h *ledgerHandler) recomputeLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.RecomputeLedgerBalances(c.Request.Context(), tenantID, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to recompute ledger balances")
		return
	}

	logger.Info("Ledger balances recomputed", slog.String("ledger_id", ledger.LedgerID))
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}
