package services

import (
	"context"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
)

// JournalEditSvcFacade drives validated mutation of an unposted transaction
// and the collaborator row operations around it.
type JournalEditSvcFacade interface {
	// EditTransaction applies one edit request atomically and returns the
	// refreshed transaction rows.
	EditTransaction(ctx context.Context, recordUUID string, req domain.EditRequest, userID string) ([]domain.JournalRow, error)

	// ListRows returns rows matching the filter.
	ListRows(ctx context.Context, filter domain.RowFilter) ([]domain.JournalRow, error)

	// ReverseTransaction creates the reversing voucher for a transaction and
	// returns its UUID.
	ReverseTransaction(ctx context.Context, recordUUID, description, userID string) (string, error)

	// UpdateComments sets the comment on the given rows.
	UpdateComments(ctx context.Context, uuids []string, comment string) error

	// GetEditHistory returns who edited the transaction and when.
	GetEditHistory(ctx context.Context, recordUUID string) ([]domain.EditHistoryEntry, error)
}
