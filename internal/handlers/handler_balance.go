package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
	"github.com/finbooks/fiscal_ledger_app/internal/dto"
	"github.com/finbooks/fiscal_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles account balance queries.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(balanceService portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: balanceService}
}

// getOpeningBalance returns the account balance brought forward to the given
// date. With include_boundary=true rows dated exactly on the date count too.
func (h *balanceHandler) getOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, err := strconv.ParseInt(c.Param("accountID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid accountID"})
		return
	}

	rawDate := c.Query("date")
	if rawDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter 'date'"})
		return
	}
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	includeBoundary := false
	if raw := c.Query("include_boundary"); raw != "" {
		includeBoundary, err = strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid include_boundary, expected a boolean"})
			return
		}
	}

	balance, err := h.balanceService.OpeningBalance(c.Request.Context(), accountID, date, includeBoundary)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Debug("Opening balance computed",
		slog.Int64("account_id", accountID),
		slog.String("date", rawDate))
	c.JSON(http.StatusOK, dto.ToOpeningBalanceResponse(balance))
}
