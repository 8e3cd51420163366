package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
	"github.com/finbooks/fiscal_ledger_app/internal/core/services"
	"github.com/finbooks/fiscal_ledger_app/internal/dto"
	"github.com/finbooks/fiscal_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(authService portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: authService}
}

// login verifies the credentials and returns a signed token.
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			logger.Warn("Login rejected", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		respondError(c, err)
		return
	}

	logger.Info("Login succeeded", slog.String("username", req.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
