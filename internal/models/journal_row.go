package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalRow mirrors the persisted shape shared by posting_journal, the
// general ledger and the combined view.
type JournalRow struct {
	UUID          string          `json:"uuid"`
	RecordUUID    string          `json:"recordUUID"`
	ProjectID     int64           `json:"projectID"`
	FiscalYearID  int64           `json:"fiscalYearID"`
	PeriodID      int64           `json:"periodID"`
	TransDate     time.Time       `json:"transDate"`
	AccountID     int64           `json:"accountID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	DebitEquiv    decimal.Decimal `json:"debitEquiv"`
	CreditEquiv   decimal.Decimal `json:"creditEquiv"`
	CurrencyID    int64           `json:"currencyID"`
	EntityUUID    *string         `json:"entityUUID"`
	ReferenceUUID *string         `json:"referenceUUID"`
	Comment       string          `json:"comment"`
	UserID        string          `json:"userID"`
	Posted        bool            `json:"posted"`
}

// TransactionHistory mirrors the transaction_history table; the timestamp is
// a database default and never set from Go.
type TransactionHistory struct {
	UUID       string    `json:"uuid"`
	RecordUUID string    `json:"recordUUID"`
	UserID     string    `json:"userID"`
	Timestamp  time.Time `json:"timestamp"`
}
