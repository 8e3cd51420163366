package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FiscalYear is one accounting year. Locked years reject every mutation dated
// inside them.
type FiscalYear struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Locked    bool      `json:"locked"`
}

// Period is one sub-division of a fiscal year. Number 0 is the synthetic
// opening-balance period and carries no real date range.
type Period struct {
	ID           int64      `json:"id"`
	FiscalYearID int64      `json:"fiscalYearID"`
	Number       int        `json:"number"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

// PeriodTotal is the precomputed (account, period) aggregate maintained by the
// period-closing process. Read-only input here.
type PeriodTotal struct {
	AccountID int64           `json:"accountID"`
	PeriodID  int64           `json:"periodID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}
