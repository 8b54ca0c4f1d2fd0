package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/dto"
)

// reportingHandler handles HTTP requests for reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	precision        int
}

// registerReportingRoutes registers routes for reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, precision int) {
	h := &reportingHandler{reportingService: reportingService, precision: precision}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
	}
}

// trialBalance godoc
// @Summary Compute a trial balance
// @Description Aggregates per-account debit and credit totals over a date range. Grand totals are equal by construction.
// @Tags reports
// @Produce  json
// @Param   dateFrom query string true "Range start (YYYY-MM-DD)"
// @Param   dateTo query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	dateFrom, err := time.Parse("2006-01-02", c.Query("dateFrom"))
	if err != nil {
		respondBindError(c, err)
		return
	}
	dateTo, err := time.Parse("2006-01-02", c.Query("dateTo"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), dateFrom, dateTo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, dateFrom, dateTo, h.precision))
}
