package handlers

import (
	"github.com/finbooks/fiscal_ledger_app/internal/core/services"
	"github.com/finbooks/fiscal_ledger_app/internal/middleware"
	"github.com/finbooks/fiscal_ledger_app/internal/repositories/database/pgsql"
	"github.com/finbooks/fiscal_ledger_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool, limiterInstance *limiter.Limiter) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, dbPool, limiterInstance)
	setupAPIV1Routes(r, cfg, dbPool)
}

// registerAuthRoutes wires the public authentication endpoints. Login is
// rate-limited per client IP since it sits outside the auth middleware.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool, limiterInstance *limiter.Limiter) {
	authService := services.NewAuthService(pgsql.NewPgxUserRepository(dbPool), cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	handler := newAuthHandler(authService)

	auth := r.Group("/auth", middleware.RateLimit(limiterInstance))
	auth.POST("/login", handler.login)
}

// setupAPIV1Routes configures the /api/v1 group behind the auth middleware.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerJournalRoutes(v1, dbPool)
	registerBalanceRoutes(v1, dbPool)
}

func registerJournalRoutes(v1 *gin.RouterGroup, dbPool *pgxpool.Pool) {
	referenceService := services.NewReferenceService(pgsql.NewPgxReferenceRepository(dbPool))
	rateService := services.NewExchangeRateService(pgsql.NewPgxExchangeRateRepository(dbPool))
	fiscalService := services.NewFiscalService(pgsql.NewPgxFiscalRepository(dbPool))
	pipeline := services.NewRowTransformPipeline(referenceService, rateService)
	journalService := services.NewJournalEditService(pgsql.NewPgxJournalRepository(dbPool), fiscalService, pipeline)
	handler := newJournalHandler(journalService)

	journal := v1.Group("/journal")
	journal.GET("", handler.listRows)
	journal.PUT("/comments", handler.updateComments)
	journal.PUT("/:recordUUID", handler.editTransaction)
	journal.POST("/:recordUUID/reverse", handler.reverseTransaction)
	journal.GET("/:recordUUID/history", handler.getEditHistory)
}

func registerBalanceRoutes(v1 *gin.RouterGroup, dbPool *pgxpool.Pool) {
	fiscalService := services.NewFiscalService(pgsql.NewPgxFiscalRepository(dbPool))
	balanceService := services.NewBalanceService(fiscalService, pgsql.NewPgxBalanceRepository(dbPool))
	handler := newBalanceHandler(balanceService)

	accounts := v1.Group("/accounts")
	accounts.GET("/:accountID/opening-balance", handler.getOpeningBalance)
}
