package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalRow is a single debit/credit line of a transaction. Rows with the same
// RecordUUID form one logical transaction and live either entirely in the
// unposted journal or entirely in the general ledger, never in both.
type JournalRow struct {
	UUID          string          `json:"uuid"`       // Row identity
	RecordUUID    string          `json:"recordUUID"` // Owning transaction
	ProjectID     int64           `json:"projectID"`
	FiscalYearID  int64           `json:"fiscalYearID"`
	PeriodID      int64           `json:"periodID"`
	TransDate     time.Time       `json:"transDate"`
	AccountID     int64           `json:"accountID"`
	Debit         decimal.Decimal `json:"debit"`       // Native-currency amount
	Credit        decimal.Decimal `json:"credit"`      // Native-currency amount
	DebitEquiv    decimal.Decimal `json:"debitEquiv"`  // Enterprise-currency amount
	CreditEquiv   decimal.Decimal `json:"creditEquiv"` // Enterprise-currency amount
	CurrencyID    int64           `json:"currencyID"`
	EntityUUID    *string         `json:"entityUUID"`    // Optional counterparty
	ReferenceUUID *string         `json:"referenceUUID"` // Optional supporting document
	Comment       string          `json:"comment"`
	UserID        string          `json:"userID"`
	Posted        bool            `json:"posted"` // True when the row lives in the general ledger
}

// TransactionHistory is an append-only audit record created once per
// successful edit. The timestamp is assigned by the store.
type TransactionHistory struct {
	UUID       string `json:"uuid"`
	RecordUUID string `json:"recordUUID"`
	UserID     string `json:"userID"`
}

// EditHistoryEntry is the edit-history query shape: who touched the
// transaction and when.
type EditHistoryEntry struct {
	DisplayName string    `json:"displayName"`
	Timestamp   time.Time `json:"timestamp"`
}

// RowFilter narrows the collaborator row-listing query. Zero values mean
// "no constraint".
type RowFilter struct {
	RecordUUID string
	AccountID  int64
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
}

// RowMutationSet is the complete, pre-validated set of changes an edit commits
// as one atomic unit against the unposted journal.
type RowMutationSet struct {
	RemovedUUIDs []string
	Inserted     []JournalRow
	Updated      []JournalRow
	History      TransactionHistory
}
