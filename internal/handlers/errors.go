package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	"github.com/finbooks/fiscal_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors to HTTP responses. BadRequest errors keep
// their machine-readable code so clients can branch on it.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var badReq *apperrors.BadRequestError
	switch {
	case errors.As(err, &badReq):
		logger.Warn("Request rejected", slog.String("code", badReq.Code), slog.String("error", badReq.Message))
		c.JSON(http.StatusBadRequest, gin.H{"code": badReq.Code, "error": badReq.Message})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindingErrorMessage turns gin binding failures into a readable message,
// surfacing the first failed validator rule when one is available.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag())
	}
	return "Invalid request format"
}
