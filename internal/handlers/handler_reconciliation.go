package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/dto"
	"github.com/opsledger/ledgerd/internal/middleware"
)

// reconciliationHandler handles HTTP requests for bank statement matching.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

// registerReconciliationRoutes registers routes for statement lines.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := &reconciliationHandler{reconciliationService: reconciliationService}

	lines := rg.Group("/statement-lines")
	{
		lines.POST("", h.importLine)
		lines.GET("", h.listUnreconciled)
		lines.POST("/:id/reconcile", h.reconcile)
	}
}

// importLine godoc
// @Summary Import a bank statement line
// @Description Stores one statement line in the unreconciled pool.
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   line body dto.ImportStatementLineRequest true "Statement line"
// @Success 201 {object} dto.StatementLineResponse
// @Failure 400 {object} map[string]string "Invalid amount or unknown account"
// @Router /statement-lines [post]
func (h *reconciliationHandler) importLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ImportStatementLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to import statement line",
		slog.String("account_code", req.AccountCode), slog.Int64("amount", req.Amount))

	line, err := h.reconciliationService.ImportStatementLine(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStatementLineResponse(line))
}

// reconcile godoc
// @Summary Match a statement line to a journal entry
// @Description Records the 1:1 match after verifying the entry's net effect equals the line's signed amount.
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   id path string true "Statement line ID"
// @Param   body body dto.ReconcileRequest true "Entry to match"
// @Success 200 {object} dto.StatementLineResponse
// @Failure 404 {object} map[string]string "Line or entry not found"
// @Failure 409 {object} map[string]interface{} "Already reconciled or amount mismatch"
// @Router /statement-lines/{id}/reconcile [post]
func (h *reconciliationHandler) reconcile(c *gin.Context) {
	lineID := c.Param("id")
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	line, err := h.reconciliationService.Reconcile(c.Request.Context(), lineID, req.EntryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementLineResponse(line))
}

// listUnreconciled godoc
// @Summary List unreconciled statement lines
// @Tags reconciliation
// @Produce  json
// @Param   accountCode query string false "Restrict to one account"
// @Success 200 {array} dto.StatementLineResponse
// @Router /statement-lines [get]
func (h *reconciliationHandler) listUnreconciled(c *gin.Context) {
	lines, err := h.reconciliationService.ListUnreconciled(c.Request.Context(), c.Query("accountCode"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementLineResponses(lines))
}
