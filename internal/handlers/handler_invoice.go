package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/dto"
	"github.com/opsledger/ledgerd/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

// registerInvoiceRoutes registers routes related to invoices and the payments
// recorded against them.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := &invoiceHandler{invoiceService: invoiceService, paymentService: paymentService}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("/:id/issue", h.issueInvoice)
		invoices.POST("/:id/payments", h.recordPayment)
	}
}

// issueRequest carries the actor for an explicit issue call.
type issueRequest struct {
	PerformedBy string `json:"performedBy" binding:"required"`
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Creates a Draft invoice with an allocated reference. Set postToLedger to issue it in the same call.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create invoice",
		slog.String("subject_ref", req.SubjectRef), slog.Int64("total_amount", req.TotalAmount))

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// getInvoice godoc
// @Summary Get an invoice with its payments
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	invoiceID := c.Param("id")

	invoice, payments, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ToInvoiceResponse(invoice)
	resp.Payments = dto.ToPaymentResponses(payments)
	c.JSON(http.StatusOK, resp)
}

// issueInvoice godoc
// @Summary Issue a Draft invoice
// @Description Posts the receivable/revenue entry and flips the invoice to Issued atomically.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   body body issueRequest true "Actor"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]interface{} "Invoice is not Draft"
// @Router /invoices/{id}/issue [post]
func (h *invoiceHandler) issueInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	var req issueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	invoice, err := h.invoiceService.Issue(c.Request.Context(), invoiceID, req.PerformedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// recordPayment godoc
// @Summary Record a payment against an invoice
// @Description Records the payment, posts its ledger entry, and issues a receipt as one transaction.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid amount or unknown settlement account"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]interface{} "Draft invoice or overpayment"
// @Router /invoices/{id}/payments [post]
func (h *invoiceHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to record payment",
		slog.String("invoice_id", invoiceID), slog.Int64("amount", req.Amount))

	resp, err := h.paymentService.RecordPayment(c.Request.Context(), invoiceID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
