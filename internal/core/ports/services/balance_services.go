package services

import (
	"context"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
)

// BalanceSvcFacade derives an account's running balance as of an arbitrary
// date from period aggregates and in-period ledger lines.
type BalanceSvcFacade interface {
	OpeningBalance(ctx context.Context, accountID int64, date time.Time, includeBoundary bool) (*domain.AccountBalance, error)
}
