package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RowPatch carries the caller-supplied fields of one edited row alongside the
// identifiers the transform pipeline resolves for them. Input fields are nil
// when absent; resolved fields are nil until resolution has run.
type RowPatch struct {
	// Caller-supplied lookup keys and amounts.
	AccountNumber *string
	EntityCode    *string
	ReferenceCode *string
	DebitEquiv    *decimal.Decimal
	CreditEquiv   *decimal.Decimal
	TransDate     *time.Time
	Comment       *string

	// Resolved by the transform pipeline.
	AccountID     *int64
	EntityUUID    *string
	ReferenceUUID *string
	Debit         *decimal.Decimal
	Credit        *decimal.Decimal
	FiscalYearID  *int64
	PeriodID      *int64
}

// NewRow is a row to be inserted by an edit. A caller-supplied UUID is kept;
// otherwise one is generated when the storage rows are built.
type NewRow struct {
	UUID string
	RowPatch
}

// ChangedRow is a partial update of an existing row, keyed by row UUID in the
// edit request.
type ChangedRow struct {
	RowPatch
}

// EditRequest is one validated transaction-edit submission.
type EditRequest struct {
	Added        []NewRow
	Changed      map[string]ChangedRow
	RemovedUUIDs []string
}

// EditContext is the immutable snapshot of transaction-level fields taken from
// the pre-edit transaction. Every resolver and pipeline call receives it by
// parameter; nothing re-reads ambient state.
type EditContext struct {
	RecordUUID   string
	ProjectID    int64
	CurrencyID   int64
	TransDate    time.Time
	FiscalYearID int64
	PeriodID     int64
	UserID       string
}
