package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/middleware"
)

// entryHandler handles HTTP requests for posting and entry maintenance.
type entryHandler struct {
	postingService portssvc.PostingSvcFacade
	entryService   portssvc.EntrySvcFacade
	accessService  portssvc.AccessSvcFacade
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(postingService portssvc.PostingSvcFacade, entryService portssvc.EntrySvcFacade, accessService portssvc.AccessSvcFacade) *entryHandler {
	return &entryHandler{
		postingService: postingService,
		entryService:   entryService,
		accessService:  accessService,
	}
}

// postTransaction godoc
// @Summary Post a transaction through a journal
// @Description Creates the balanced debit/credit entry pair for one transaction, annotated with the historical exchange rate of the posting date
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   posting body dto.CreatePostingRequest true "Posting request"
// @Success 201 {object} dto.PostingResponse "The created entry pair"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Rate service unavailable"
// @Failure 500 {object} map[string]string "Failed to post transaction"
// @Router /entries [post]
func (h *entryHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pair, err := h.postingService.PostTransaction(c.Request.Context(), req, actingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidJournal):
			logger.Warn("Posting rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Posting references unknown resource", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateUnavailable):
			logger.Error("Rate service failure during posting", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate service unavailable"})
		default:
			logger.Error("Failed to post transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostingResponse(pair))
}

// listEntriesForView godoc
// @Summary List ledger entries for the view
// @Description Returns entries joined with account, journal and source document data, amounts normalized by the recorded rate
// @Tags entries
// @Produce  json
// @Success 200 {array} dto.EntryViewRowResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /entries [get]
func (h *entryHandler) listEntriesForView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// Capability gate: a policy side call, not part of the posting core.
	allowed, err := h.accessService.HasReadAccess(c.Request.Context(), userID, portssvc.ModuleJournalEntries)
	if err != nil {
		logger.Error("Access check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access"})
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	rows, err := h.entryService.ListEntriesForView(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list entries for view", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryViewResponse(rows))
}

// getEntry godoc
// @Summary Get a single ledger entry
// @Tags entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		logger.Error("Failed to get entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// removeBySourceDocument godoc
// @Summary Cascade-delete entries by source document
// @Description Removes all entries referencing the given source document
// @Tags entries
// @Produce  json
// @Param   documentID path string true "Source Document ID"
// @Success 200 {object} map[string]int64 "Number of entries removed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to delete entries"
// @Router /entries/source-document/{documentID} [delete]
func (h *entryHandler) removeBySourceDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	removed, err := h.entryService.RemoveBySourceDocument(c.Request.Context(), documentID, actingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to cascade delete entries", slog.String("error", err.Error()), slog.String("document_id", documentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// correctEntryDates godoc
// @Summary Bulk-correct the date of matching entries
// @Description Updates only the date field of entries matching the filter; amounts, currency and accounts are untouched
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   correction body dto.CorrectEntryDatesRequest true "Date correction"
// @Success 200 {object} map[string]int64 "Number of entries updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update entries"
// @Router /entries/dates [patch]
func (h *entryHandler) correctEntryDates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CorrectEntryDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for correctEntryDates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	newDate, err := time.ParseInLocation(domain.RateDateLayout, req.NewDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newDate must use YYYY-MM-DD format"})
		return
	}

	updated, err := h.entryService.CorrectEntryDates(c.Request.Context(), req, newDate, actingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to correct entry dates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// registerEntryRoutes registers posting and entry maintenance routes.
func registerEntryRoutes(group *gin.RouterGroup, services *portssvc.ServiceContainer) {
	handler := newEntryHandler(services.Posting, services.Entry, services.Access)

	entries := group.Group("/entries")
	{
		entries.POST("", handler.postTransaction)
		entries.GET("", handler.listEntriesForView)
		entries.GET("/:entryID", handler.getEntry)
		entries.DELETE("/source-document/:documentID", handler.removeBySourceDocument)
		entries.PATCH("/dates", handler.correctEntryDates)
	}
}
