package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
	"github.com/finbooks/fiscal_ledger_app/internal/dto"
	"github.com/finbooks/fiscal_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests against transactions and their rows.
type journalHandler struct {
	journalService portssvc.JournalEditSvcFacade
}

func newJournalHandler(journalService portssvc.JournalEditSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// editTransaction applies an edit request to an unposted transaction and
// returns the refreshed rows.
func (h *journalHandler) editTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordUUID := c.Param("recordUUID")

	var req dto.TransactionEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for editTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	editReq, err := dto.ToDomainEditRequest(req)
	if err != nil {
		respondError(c, err)
		return
	}

	rows, err := h.journalService.EditTransaction(c.Request.Context(), recordUUID, editReq, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Transaction edited",
		slog.String("record_uuid", recordUUID),
		slog.Int("row_count", len(rows)))
	c.JSON(http.StatusOK, dto.ToJournalRowResponses(rows))
}

// listRows returns ledger rows matching the query filter.
func (h *journalHandler) listRows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := domain.RowFilter{
		RecordUUID: c.Query("recordUUID"),
	}
	if raw := c.Query("accountID"); raw != "" {
		accountID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid accountID"})
			return
		}
		filter.AccountID = accountID
	}
	if raw := c.Query("dateFrom"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateFrom, expected YYYY-MM-DD"})
			return
		}
		filter.DateFrom = &from
	}
	if raw := c.Query("dateTo"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateTo, expected YYYY-MM-DD"})
			return
		}
		filter.DateTo = &to
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		filter.Limit = limit
	}

	rows, err := h.journalService.ListRows(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Debug("Rows listed", slog.Int("row_count", len(rows)))
	c.JSON(http.StatusOK, dto.ToJournalRowResponses(rows))
}

// reverseTransaction creates the reversing voucher for a transaction.
func (h *journalHandler) reverseTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordUUID := c.Param("recordUUID")

	var req dto.ReversalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reverseTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversalUUID, err := h.journalService.ReverseTransaction(c.Request.Context(), recordUUID, req.Description, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Transaction reversed",
		slog.String("record_uuid", recordUUID),
		slog.String("reversal_uuid", reversalUUID))
	c.JSON(http.StatusOK, dto.ReversalResponse{RecordUUID: reversalUUID})
}

// updateComments sets the comment on a batch of rows.
func (h *journalHandler) updateComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RowCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateComments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	if err := h.journalService.UpdateComments(c.Request.Context(), req.UUIDs, req.Comment); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Row comments updated", slog.Int("row_count", len(req.UUIDs)))
	c.Status(http.StatusNoContent)
}

// getEditHistory returns who edited the transaction and when.
func (h *journalHandler) getEditHistory(c *gin.Context) {
	recordUUID := c.Param("recordUUID")

	entries, err := h.journalService.GetEditHistory(c.Request.Context(), recordUUID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEditHistoryResponses(entries))
}
