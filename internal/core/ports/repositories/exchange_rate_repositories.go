package repositories

import (
	"context"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateRepository defines the read-only lookups backing currency conversion.
type ExchangeRateRepository interface {
	// FindEnterpriseByProjectID resolves the enterprise owning a project.
	FindEnterpriseByProjectID(ctx context.Context, projectID int64) (*domain.Enterprise, error)

	// FindRate retrieves the most recent rate effective on or before date for
	// the given enterprise/currency pair, or apperrors.ErrNotFound.
	FindRate(ctx context.Context, enterpriseID, currencyID int64, date time.Time) (decimal.Decimal, error)
}
