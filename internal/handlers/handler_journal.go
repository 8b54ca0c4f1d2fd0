package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/dto"
	"github.com/opsledger/ledgerd/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	entries := rg.Group("/entries")
	{
		entries.POST("", h.postEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
	}
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates and persists a balanced journal entry. Leave reference blank to have one allocated.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.PostEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]interface{} "Malformed line, unknown account, or unbalanced totals"
// @Failure 409 {object} map[string]string "Duplicate reference"
// @Router /entries [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to post entry",
		slog.String("journal", req.JournalCode), slog.Int("lines", len(req.Lines)))

	entry, err := h.journalService.PostEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry by ID
// @Tags entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /entries/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	entryID := c.Param("id")

	entry, err := h.journalService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries in a date range
// @Description Entries are ordered by date then insertion order. Optionally filter to one account.
// @Tags entries
// @Produce  json
// @Param   dateFrom query string true "Range start (YYYY-MM-DD)"
// @Param   dateTo query string true "Range end (YYYY-MM-DD)"
// @Param   accountCode query string false "Restrict to entries touching this account"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Router /entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
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

	entries, err := h.journalService.ListEntriesInRange(c.Request.Context(), dto.ListEntriesParams{
		AccountCode: c.Query("accountCode"),
		DateFrom:    dateFrom,
		DateTo:      dateTo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}
