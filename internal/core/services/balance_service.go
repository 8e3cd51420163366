package services

import (
	"context"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
)

// balanceService composes the fiscal calendar with the two summation queries
// that make up an as-of-date balance.
type balanceService struct {
	fiscalSvc   portssvc.FiscalSvcFacade
	balanceRepo portsrepo.BalanceRepository
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(fiscalSvc portssvc.FiscalSvcFacade, balanceRepo portsrepo.BalanceRepository) portssvc.BalanceSvcFacade {
	return &balanceService{
		fiscalSvc:   fiscalSvc,
		balanceRepo: balanceRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// OpeningBalance returns an account's balance as of date: closed prior-period
// aggregates (period 0 always included) plus in-period ledger lines up to the
// date, which compares with < or <= depending on includeBoundary.
func (s *balanceService) OpeningBalance(ctx context.Context, accountID int64, date time.Time, includeBoundary bool) (*domain.AccountBalance, error) {
	fiscalYear, err := s.fiscalSvc.ResolveFiscalYear(ctx, date)
	if err != nil {
		return nil, err
	}

	prior, err := s.balanceRepo.SumClosedPeriodTotals(ctx, accountID, fiscalYear.ID, date)
	if err != nil {
		return nil, err
	}

	// The period boundary rule (strictly-before vs containing) differs from
	// the fiscal-year rule, so the period resolves separately.
	period, err := s.fiscalSvc.ResolvePeriod(ctx, date)
	if err != nil {
		return nil, err
	}

	current, err := s.balanceRepo.SumLedgerLines(ctx, accountID, period.ID, date, includeBoundary)
	if err != nil {
		return nil, err
	}

	total := prior.Add(current)
	return &domain.AccountBalance{
		AccountID: accountID,
		Balance:   total.Balance().Round(4),
		Debit:     total.Debit.Round(4),
		Credit:    total.Credit.Round(4),
	}, nil
}
