package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// karigarHandler handles artisans and their metal handoffs.
type karigarHandler struct {
	karigarService     portssvc.KarigarSvcFacade
	transactionService portssvc.TransactionSvcFacade
	reversalService    portssvc.ReversalSvcFacade
}

func newKarigarHandler(ks portssvc.KarigarSvcFacade, ts portssvc.TransactionSvcFacade, rs portssvc.ReversalSvcFacade) *karigarHandler {
	return &karigarHandler{karigarService: ks, transactionService: ts, reversalService: rs}
}

// registerKarigarRoutes registers routes related to karigars.
func registerKarigarRoutes(rg *gin.RouterGroup, ks portssvc.KarigarSvcFacade, ts portssvc.TransactionSvcFacade, rs portssvc.ReversalSvcFacade) {
	h := newKarigarHandler(ks, ts, rs)

	karigars := rg.Group("/karigars")
	{
		karigars.POST("", h.createKarigar)
		karigars.GET("", h.listKarigars)
		karigars.GET("/:id/transactions", h.listKarigarTransactions)
	}

	txns := rg.Group("/karigar-transactions")
	{
		txns.POST("", h.createKarigarTransaction)
		txns.DELETE("/:id", h.deleteKarigarTransaction)
	}
}

// createKarigar godoc
// @Summary Register a karigar
// @Tags karigars
// @Accept json
// @Produce json
// @Param karigar body dto.CreateKarigarRequest true "Karigar details"
// @Success 201 {object} dto.KarigarResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /karigars [post]
func (h *karigarHandler) createKarigar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateKarigarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateKarigar", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	karigar, err := h.karigarService.CreateKarigar(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create karigar")
		return
	}

	logger.Info("Karigar created", slog.String("karigar_id", karigar.KarigarID))
	c.JSON(http.StatusCreated, dto.ToKarigarResponse(karigar))
}

// listKarigars godoc
// @Summary List karigars
// @Tags karigars
// @Produce json
// @Success 200 {array} dto.KarigarResponse
// @Security BearerAuth
// @Router /karigars [get]
func (h *karigarHandler) listKarigars(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := identity(c, logger)
	if !ok {
		return
	}

	karigars, err := h.karigarService.ListKarigars(c.Request.Context(), tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list karigars")
		return
	}
	c.JSON(http.StatusOK, dto.ToKarigarResponses(karigars))
}

// listKarigarTransactions godoc
// @Summary List a karigar's transactions
// @Tags karigars
// @Produce json
// @Param id path string true "Karigar ID"
// @Success 200 {array} dto.KarigarTransactionResponse
// @Failure 404 {object} map[string]string "Karigar not found"
// @Security BearerAuth
// @Router /karigars/{id}/transactions [get]
func (h *karigarHandler) listKarigarTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := identity(c, logger)
	if !ok {
		return
	}

	txns, err := h.karigarService.ListKarigarTransactions(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list karigar transactions")
		return
	}

	responses := make([]dto.KarigarTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = dto.ToKarigarTransactionResponse(&txns[i])
	}
	c.JSON(http.StatusOK, responses)
}

// createKarigarTransaction godoc
// @Summary Record a karigar handoff
// @Description Applies a stock-only metal handoff: GIVEN deducts, RECEIVED restores
// @Tags karigars
// @Accept json
// @Produce json
// @Param transaction body dto.CreateKarigarTransactionRequest true "Handoff details"
// @Success 201 {object} dto.KarigarTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Karigar not found"
// @Failure 422 {object} map[string]string "Insufficient stock"
// @Security BearerAuth
// @Router /karigar-transactions [post]
func (h *karigarHandler) createKarigarTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateKarigarTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateKarigarTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateKarigarTransaction(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create karigar transaction")
		return
	}

	logger.Info("Karigar transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToKarigarTransactionResponse(txn))
}

// deleteKarigarTransaction godoc
// @Summary Delete a karigar handoff
// @Description Soft-deletes the handoff; its stock effect is undone only inside the reversal window
// @Tags karigars
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.ReversalResult
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Already deleted"
// @Security BearerAuth
// @Router /karigar-transactions/{id} [delete]
func (h *karigarHandler) deleteKarigarTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	result, err := h.reversalService.DeleteKarigarTransaction(c.Request.Context(), tenantID, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete karigar transaction")
		return
	}
	c.JSON(http.StatusOK, result)
}
