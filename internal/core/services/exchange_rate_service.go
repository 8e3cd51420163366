package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// exchangeRateService computes enterprise-currency equivalents for row amounts.
type exchangeRateService struct {
	rateRepo portsrepo.ExchangeRateRepository
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepository) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// Convert resolves the enterprise owning projectID and converts amount from
// its currency context. Identity when the currencies already match.
func (s *exchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, currencyID int64, date time.Time, projectID int64) (decimal.Decimal, error) {
	enterprise, err := s.rateRepo.FindEnterpriseByProjectID(ctx, projectID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve enterprise for project %d: %w", projectID, err)
	}

	if currencyID == enterprise.CurrencyID {
		return amount, nil
	}

	rate, err := s.rateRepo.FindRate(ctx, enterprise.ID, currencyID, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, apperrors.NewBadRequest(apperrors.CodeMissingExchangeRate,
				fmt.Sprintf("no exchange rate for currency %d on %s", currencyID, date.Format("2006-01-02")))
		}
		return decimal.Zero, fmt.Errorf("failed to look up exchange rate for currency %d: %w", currencyID, err)
	}

	// A zero rate or a zero product cannot be told apart from a failed lookup
	// by consumers of the converted amount, so both fail loudly here.
	converted := amount.Mul(rate)
	if rate.IsZero() || converted.IsZero() {
		return decimal.Zero, apperrors.NewBadRequest(apperrors.CodeMissingExchangeRate,
			fmt.Sprintf("exchange rate for currency %d on %s produced no amount", currencyID, date.Format("2006-01-02")))
	}

	return converted, nil
}
