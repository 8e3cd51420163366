package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
)

// fiscalService resolves dates against the fiscal calendar tables.
type fiscalService struct {
	fiscalRepo portsrepo.FiscalRepository
}

// NewFiscalService creates a new FiscalService.
func NewFiscalService(fiscalRepo portsrepo.FiscalRepository) portssvc.FiscalSvcFacade {
	return &fiscalService{fiscalRepo: fiscalRepo}
}

var _ portssvc.FiscalSvcFacade = (*fiscalService)(nil)

// ResolveFiscalYear finds the fiscal year enclosing date.
func (s *fiscalService) ResolveFiscalYear(ctx context.Context, date time.Time) (*domain.FiscalYear, error) {
	fy, err := s.fiscalRepo.FindFiscalYearByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fiscal year for %s: %w", date.Format("2006-01-02"), err)
	}
	return fy, nil
}

// ResolvePeriod finds the period enclosing date.
func (s *fiscalService) ResolvePeriod(ctx context.Context, date time.Time) (*domain.Period, error) {
	period, err := s.fiscalRepo.FindPeriodByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve period for %s: %w", date.Format("2006-01-02"), err)
	}
	return period, nil
}
