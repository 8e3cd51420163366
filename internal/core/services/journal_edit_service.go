package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
	"github.com/finbooks/fiscal_ledger_app/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// journalEditService is the state machine behind transaction edits: load,
// eligibility checks, row transform, atomic commit, re-load. Every domain
// check runs before the commit begins, so the atomic unit only ever fails for
// infrastructure reasons.
type journalEditService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	fiscalSvc   portssvc.FiscalSvcFacade
	pipeline    *RowTransformPipeline
}

// NewJournalEditService creates a new JournalEditService.
func NewJournalEditService(journalRepo portsrepo.JournalRepositoryFacade, fiscalSvc portssvc.FiscalSvcFacade, pipeline *RowTransformPipeline) portssvc.JournalEditSvcFacade {
	return &journalEditService{
		journalRepo: journalRepo,
		fiscalSvc:   fiscalSvc,
		pipeline:    pipeline,
	}
}

var _ portssvc.JournalEditSvcFacade = (*journalEditService)(nil)

// EditTransaction applies one edit request to an unposted transaction and
// returns the freshly committed rows.
func (s *journalEditService) EditTransaction(ctx context.Context, recordUUID string, req domain.EditRequest, userID string) ([]domain.JournalRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.journalRepo.FindRowsByRecordUUID(ctx, recordUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", recordUUID, err)
	}
	if len(existing) == 0 {
		return nil, apperrors.ErrNotFound
	}

	if existing[0].Posted {
		return nil, apperrors.NewBadRequest(apperrors.CodeAlreadyPosted, "posted transactions are immutable")
	}

	if err := checkRowCount(existing, req); err != nil {
		return nil, err
	}

	effectiveDate := effectiveTransDate(existing, req)
	fiscalYear, err := s.fiscalSvc.ResolveFiscalYear(ctx, effectiveDate)
	if err != nil {
		return nil, err
	}
	if fiscalYear.Locked {
		return nil, apperrors.NewBadRequest(apperrors.CodeClosedFiscalYear,
			fmt.Sprintf("fiscal year %s is locked", fiscalYear.Label))
	}
	period, err := s.fiscalSvc.ResolvePeriod(ctx, effectiveDate)
	if err != nil {
		return nil, err
	}

	// Transaction-level context comes from the pre-edit rows, never from
	// caller-supplied row fields.
	ectx := domain.EditContext{
		RecordUUID:   recordUUID,
		ProjectID:    existing[0].ProjectID,
		CurrencyID:   existing[0].CurrencyID,
		TransDate:    existing[0].TransDate,
		FiscalYearID: fiscalYear.ID,
		PeriodID:     period.ID,
		UserID:       userID,
	}

	addedPatches := make([]*domain.RowPatch, len(req.Added))
	for i := range req.Added {
		addedPatches[i] = &req.Added[i].RowPatch
	}
	if err := s.pipeline.Transform(ctx, addedPatches, true, ectx); err != nil {
		return nil, err
	}

	changedKeys := sortedKeys(req.Changed)
	changedRows := make([]domain.ChangedRow, len(changedKeys))
	changedPatches := make([]*domain.RowPatch, len(changedKeys))
	for i, key := range changedKeys {
		changedRows[i] = req.Changed[key]
		changedPatches[i] = &changedRows[i].RowPatch
	}
	if err := s.pipeline.Transform(ctx, changedPatches, false, ectx); err != nil {
		return nil, err
	}

	mutations, finalRows, err := buildMutationSet(existing, req, changedKeys, changedRows, ectx)
	if err != nil {
		return nil, err
	}

	if err := checkBalanced(finalRows); err != nil {
		return nil, err
	}

	if err := s.journalRepo.CommitEdit(ctx, mutations); err != nil {
		logger.Error("Failed to commit transaction edit",
			slog.String("record_uuid", recordUUID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to commit edit of transaction %s: %w", recordUUID, err)
	}

	logger.Info("Transaction edit committed",
		slog.String("record_uuid", recordUUID),
		slog.Int("added", len(mutations.Inserted)),
		slog.Int("changed", len(mutations.Updated)),
		slog.Int("removed", len(mutations.RemovedUUIDs)))

	refreshed, err := s.journalRepo.FindRowsByRecordUUID(ctx, recordUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction %s after edit: %w", recordUUID, err)
	}
	return refreshed, nil
}

// ListRows returns rows matching the filter.
func (s *journalEditService) ListRows(ctx context.Context, filter domain.RowFilter) ([]domain.JournalRow, error) {
	rows, err := s.journalRepo.ListRows(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal rows: %w", err)
	}
	return rows, nil
}

// ReverseTransaction delegates the one-call reversal to the storage layer.
func (s *journalEditService) ReverseTransaction(ctx context.Context, recordUUID, description, userID string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucherUUID, err := s.journalRepo.ReverseTransaction(ctx, recordUUID, description, userID)
	if err != nil {
		return "", fmt.Errorf("failed to reverse transaction %s: %w", recordUUID, err)
	}

	logger.Info("Transaction reversed",
		slog.String("record_uuid", recordUUID), slog.String("voucher_uuid", voucherUUID))
	return voucherUUID, nil
}

// UpdateComments sets the comment on the given rows.
func (s *journalEditService) UpdateComments(ctx context.Context, uuids []string, comment string) error {
	if len(uuids) == 0 {
		return fmt.Errorf("%w: no row uuids provided", apperrors.ErrValidation)
	}
	if err := s.journalRepo.UpdateRowComments(ctx, uuids, comment); err != nil {
		return fmt.Errorf("failed to update row comments: %w", err)
	}
	return nil
}

// GetEditHistory returns the edit trail of a transaction.
func (s *journalEditService) GetEditHistory(ctx context.Context, recordUUID string) ([]domain.EditHistoryEntry, error) {
	entries, err := s.journalRepo.FindEditHistory(ctx, recordUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to load edit history for %s: %w", recordUUID, err)
	}
	return entries, nil
}

// checkRowCount rejects edits that would leave fewer than two rows or delete
// the transaction wholesale.
func checkRowCount(existing []domain.JournalRow, req domain.EditRequest) error {
	remaining := len(existing) - len(req.RemovedUUIDs) + len(req.Added)
	if remaining < 2 {
		return apperrors.NewBadRequest(apperrors.CodeMustContainRows,
			"a transaction must keep at least two rows")
	}
	if len(req.Added) == 0 && len(req.RemovedUUIDs) >= len(existing) {
		return apperrors.NewBadRequest(apperrors.CodeMustContainRows,
			"an edit cannot remove every row of a transaction")
	}
	return nil
}

// effectiveTransDate walks existing rows, then added rows, then changed rows
// in sorted key order; the last date seen wins.
func effectiveTransDate(existing []domain.JournalRow, req domain.EditRequest) time.Time {
	effective := existing[0].TransDate
	for _, row := range existing {
		effective = row.TransDate
	}
	for _, row := range req.Added {
		if row.TransDate != nil {
			effective = *row.TransDate
		}
	}
	for _, key := range sortedKeys(req.Changed) {
		if patch := req.Changed[key]; patch.TransDate != nil {
			effective = *patch.TransDate
		}
	}
	return effective
}

// buildMutationSet materializes storage-ready rows from the transformed
// patches and returns the post-edit row set alongside them.
func buildMutationSet(existing []domain.JournalRow, req domain.EditRequest, changedKeys []string, changedRows []domain.ChangedRow, ectx domain.EditContext) (domain.RowMutationSet, []domain.JournalRow, error) {
	existingByUUID := make(map[string]domain.JournalRow, len(existing))
	for _, row := range existing {
		existingByUUID[row.UUID] = row
	}

	removed := make(map[string]struct{}, len(req.RemovedUUIDs))
	for _, id := range req.RemovedUUIDs {
		if _, ok := existingByUUID[id]; !ok {
			return domain.RowMutationSet{}, nil, fmt.Errorf("%w: removed row %s is not part of transaction %s",
				apperrors.ErrNotFound, id, ectx.RecordUUID)
		}
		removed[id] = struct{}{}
	}

	inserted := make([]domain.JournalRow, len(req.Added))
	for i, newRow := range req.Added {
		rowUUID := newRow.UUID
		if rowUUID == "" {
			rowUUID = uuid.NewString()
		}
		inserted[i] = materializeRow(rowUUID, newRow.RowPatch, ectx)
	}

	updated := make([]domain.JournalRow, 0, len(changedKeys))
	for i, key := range changedKeys {
		base, ok := existingByUUID[key]
		if !ok {
			return domain.RowMutationSet{}, nil, fmt.Errorf("%w: changed row %s is not part of transaction %s",
				apperrors.ErrNotFound, key, ectx.RecordUUID)
		}
		updated = append(updated, mergePatch(base, changedRows[i].RowPatch))
	}
	updatedByUUID := make(map[string]domain.JournalRow, len(updated))
	for _, row := range updated {
		updatedByUUID[row.UUID] = row
	}

	finalRows := make([]domain.JournalRow, 0, len(existing)+len(inserted))
	for _, row := range existing {
		if _, gone := removed[row.UUID]; gone {
			continue
		}
		if replacement, changed := updatedByUUID[row.UUID]; changed {
			finalRows = append(finalRows, replacement)
			continue
		}
		finalRows = append(finalRows, row)
	}
	finalRows = append(finalRows, inserted...)

	mutations := domain.RowMutationSet{
		RemovedUUIDs: req.RemovedUUIDs,
		Inserted:     inserted,
		Updated:      updated,
		History: domain.TransactionHistory{
			UUID:       uuid.NewString(),
			RecordUUID: existing[0].RecordUUID,
			UserID:     ectx.UserID,
		},
	}
	return mutations, finalRows, nil
}

// materializeRow turns a transformed patch into a full storage-ready row,
// falling back to the transaction context for unset fields.
func materializeRow(rowUUID string, patch domain.RowPatch, ectx domain.EditContext) domain.JournalRow {
	row := domain.JournalRow{
		UUID:         rowUUID,
		RecordUUID:   ectx.RecordUUID,
		ProjectID:    ectx.ProjectID,
		CurrencyID:   ectx.CurrencyID,
		TransDate:    ectx.TransDate,
		FiscalYearID: ectx.FiscalYearID,
		PeriodID:     ectx.PeriodID,
		UserID:       ectx.UserID,
		Debit:        decimal.Zero,
		Credit:       decimal.Zero,
		DebitEquiv:   decimal.Zero,
		CreditEquiv:  decimal.Zero,
	}
	return mergePatch(row, patch)
}

// mergePatch applies the non-nil fields of a transformed patch onto a row.
func mergePatch(base domain.JournalRow, patch domain.RowPatch) domain.JournalRow {
	if patch.AccountID != nil {
		base.AccountID = *patch.AccountID
	}
	if patch.EntityUUID != nil {
		base.EntityUUID = patch.EntityUUID
	}
	if patch.ReferenceUUID != nil {
		base.ReferenceUUID = patch.ReferenceUUID
	}
	if patch.DebitEquiv != nil {
		base.DebitEquiv = *patch.DebitEquiv
	}
	if patch.CreditEquiv != nil {
		base.CreditEquiv = *patch.CreditEquiv
	}
	if patch.Debit != nil {
		base.Debit = *patch.Debit
	}
	if patch.Credit != nil {
		base.Credit = *patch.Credit
	}
	if patch.TransDate != nil {
		base.TransDate = *patch.TransDate
	}
	if patch.FiscalYearID != nil {
		base.FiscalYearID = *patch.FiscalYearID
	}
	if patch.PeriodID != nil {
		base.PeriodID = *patch.PeriodID
	}
	if patch.Comment != nil {
		base.Comment = *patch.Comment
	}
	return base
}

// checkBalanced verifies the double-entry invariant over the post-edit row
// set: equivalent debits must equal equivalent credits.
func checkBalanced(rows []domain.JournalRow) error {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, row := range rows {
		debits = debits.Add(row.DebitEquiv)
		credits = credits.Add(row.CreditEquiv)
	}
	if !debits.Equal(credits) {
		return apperrors.NewBadRequest(apperrors.CodeUnbalanced,
			fmt.Sprintf("debits sum to %s but credits sum to %s", debits.String(), credits.String()))
	}
	return nil
}

// sortedKeys returns the map keys in ascending order for deterministic iteration.
func sortedKeys(changed map[string]domain.ChangedRow) []string {
	keys := make([]string, 0, len(changed))
	for key := range changed {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
