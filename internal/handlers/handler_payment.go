package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/dto"
)

// paymentHandler handles HTTP requests against payments and receipts.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// registerPaymentRoutes registers routes for payment lookups and receipt
// regeneration.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("/:id/receipt", h.regenerateReceipt)
	}
}

// regenerateReceipt godoc
// @Summary Regenerate a receipt artifact
// @Description Re-renders the receipt document for an existing payment. Ledger state is untouched; idempotent.
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Router /payments/{id}/receipt [post]
func (h *paymentHandler) regenerateReceipt(c *gin.Context) {
	paymentID := c.Param("id")

	receipt, err := h.paymentService.RegenerateReceipt(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}
