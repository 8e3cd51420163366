package repositories

import (
	"context"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
)

// FiscalRepository defines read-only lookups against the fiscal calendar tables.
type FiscalRepository interface {
	// FindFiscalYearByDate retrieves the fiscal year whose [start, end] range
	// contains date, or apperrors.ErrNotFound.
	FindFiscalYearByDate(ctx context.Context, date time.Time) (*domain.FiscalYear, error)

	// FindPeriodByDate retrieves the period whose range contains date, or
	// apperrors.ErrNotFound. The synthetic period 0 has no range and is never
	// returned here.
	FindPeriodByDate(ctx context.Context, date time.Time) (*domain.Period, error)
}
