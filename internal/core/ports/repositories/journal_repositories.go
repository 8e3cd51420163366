package repositories

import (
	"context"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
)

// JournalRowReader defines read operations over the combined journal+ledger view.
type JournalRowReader interface {
	// FindRowsByRecordUUID retrieves every row of a transaction through the
	// combined view. An empty result means the transaction does not exist or
	// is fully posted and invisible to the edit path.
	FindRowsByRecordUUID(ctx context.Context, recordUUID string) ([]domain.JournalRow, error)

	// ListRows retrieves rows matching a fixed set of filter parameters,
	// ordered by transaction date.
	ListRows(ctx context.Context, filter domain.RowFilter) ([]domain.JournalRow, error)

	// FindEditHistory retrieves the edit trail of a transaction, newest first.
	FindEditHistory(ctx context.Context, recordUUID string) ([]domain.EditHistoryEntry, error)
}

// JournalRowWriter defines the mutating operations on the unposted journal.
type JournalRowWriter interface {
	// CommitEdit applies every row deletion, insertion and update of one edit,
	// plus its history record, as a single atomic unit. Either all mutations
	// become visible or none do.
	CommitEdit(ctx context.Context, mutations domain.RowMutationSet) error

	// ReverseTransaction delegates a one-call reversal to the storage layer
	// and returns the new voucher UUID.
	ReverseTransaction(ctx context.Context, recordUUID, description, userID string) (string, error)

	// UpdateRowComments sets the comment on every row in uuids.
	UpdateRowComments(ctx context.Context, uuids []string, comment string) error
}

// JournalRepositoryFacade combines all journal row repository interfaces.
type JournalRepositoryFacade interface {
	JournalRowReader
	JournalRowWriter
}
