package repositories

import (
	"context"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
)

// BalanceRepository defines the two summation queries behind the as-of-date
// balance. Missing aggregate rows sum to zero, never error.
type BalanceRepository interface {
	// SumClosedPeriodTotals sums the period_totals rows of an account within a
	// fiscal year where the period is the synthetic period 0 or ends strictly
	// before date.
	SumClosedPeriodTotals(ctx context.Context, accountID, fiscalYearID int64, date time.Time) (domain.BalanceSums, error)

	// SumLedgerLines sums general-ledger lines of an account within a period
	// up to date; inclusive selects <= instead of <.
	SumLedgerLines(ctx context.Context, accountID, periodID int64, date time.Time, inclusive bool) (domain.BalanceSums, error)
}
