package services

import (
	"context"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
)

// FiscalSvcFacade resolves dates against the fiscal calendar. Pure lookup.
type FiscalSvcFacade interface {
	ResolveFiscalYear(ctx context.Context, date time.Time) (*domain.FiscalYear, error)
	ResolvePeriod(ctx context.Context, date time.Time) (*domain.Period, error)
}
