package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to billing documents.
type voucherHandler struct {
	transactionService portssvc.TransactionSvcFacade
	reversalService    portssvc.ReversalSvcFacade
}

func newVoucherHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReversalSvcFacade) *voucherHandler {
	return &voucherHandler{transactionService: ts, reversalService: rs}
}

// registerVoucherRoutes registers routes related to vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, rs portssvc.ReversalSvcFacade) {
	h := newVoucherHandler(ts, rs)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("/:id", h.getVoucher)
		vouchers.PUT("/:id", h.updateVoucher)
		vouchers.POST("/:id/cancel", h.cancelVoucher)
		vouchers.DELETE("/:id", h.deleteVoucher)
	}
}

// createVoucher godoc
// @Summary Create a voucher
// @Description Applies a sale/purchase voucher's effect on the ledger and stock and records its reversal snapshot
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Ledger not found"
// @Failure 422 {object} map[string]string "Insufficient stock"
// @Failure 409 {object} map[string]string "Duplicate voucher number"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	voucher, err := h.transactionService.CreateVoucher(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create voucher")
		return
	}

	logger.Info("Voucher created", slog.String("voucher_id", voucher.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// getVoucher godoc
// @Summary Get a voucher by ID
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /vouchers/{id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := identity(c, logger)
	if !ok {
		return
	}

	voucher, err := h.transactionService.GetVoucherByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// updateVoucher godoc
// @Summary Edit a voucher
// @Description Reverses the old state and applies the new one inside one atomic unit; rejected outside the reversal window
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID"
// @Param voucher body dto.CreateVoucherRequest true "Replacement voucher details"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 409 {object} map[string]string "Window expired or already cancelled"
// @Failure 422 {object} map[string]string "Insufficient stock"
// @Security BearerAuth
// @Router /vouchers/{id} [put]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	voucher, err := h.reversalService.UpdateVoucher(c.Request.Context(), tenantID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update voucher")
		return
	}

	logger.Info("Voucher updated", slog.String("voucher_id", voucher.VoucherID))
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// cancelVoucher godoc
// @Summary Cancel a voucher
// @Description Moves the voucher to its terminal cancelled state; effects are undone only inside the reversal window
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} dto.ReversalResult
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 409 {object} map[string]string "Already cancelled"
// @Security BearerAuth
// @Router /vouchers/{id}/cancel [post]
func (h *voucherHandler) cancelVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	result, err := h.reversalService.CancelVoucher(c.Request.Context(), tenantID, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to cancel voucher")
		return
	}
	c.JSON(http.StatusOK, result)
}

// deleteVoucher godoc
// @Summary Delete a voucher
// @Description Removes the voucher; effects are undone only inside the reversal window
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} dto.ReversalResult
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /vouchers/{id} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := identity(c, logger)
	if !ok {
		return
	}

	result, err := h.reversalService.DeleteVoucher(c.Request.Context(), tenantID, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete voucher")
		return
	}
	c.JSON(http.StatusOK, result)
}
