package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateSvcFacade converts amounts between a transaction currency and
// the owning enterprise's currency.
type ExchangeRateSvcFacade interface {
	// Convert multiplies amount by the historical rate in effect on date, or
	// returns it unchanged when currencyID already is the enterprise currency.
	// A missing rate, a zero rate or a zero product fail with
	// MISSING_EXCHANGE_RATE.
	Convert(ctx context.Context, amount decimal.Decimal, currencyID int64, date time.Time, projectID int64) (decimal.Decimal, error)
}
