package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	"github.com/finbooks/fiscal_ledger_app/internal/models"
	"github.com/finbooks/fiscal_ledger_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalRowColumns = `uuid, record_uuid, project_id, fiscal_year_id, period_id, trans_date,
	account_id, debit, credit, debit_equiv, credit_equiv, currency_id,
	entity_uuid, reference_uuid, comment, user_id, posted`

// PgxJournalRepository persists journal rows and their edit history.
type PgxJournalRepository struct {
	BaseRepository
}

// NewPgxJournalRepository creates a new repository for journal row data.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// FindRowsByRecordUUID retrieves all rows of a transaction through the
// combined journal+ledger view.
func (r *PgxJournalRepository) FindRowsByRecordUUID(ctx context.Context, recordUUID string) ([]domain.JournalRow, error) {
	query := `
		SELECT ` + journalRowColumns + `
		FROM v_combined_ledger
		WHERE record_uuid = $1
		ORDER BY trans_date, uuid;
	`
	rows, err := r.Pool.Query(ctx, query, recordUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows for transaction %s: %w", recordUUID, err)
	}
	defer rows.Close()

	return scanJournalRows(rows)
}

// ListRows retrieves rows matching a fixed set of filter parameters.
func (r *PgxJournalRepository) ListRows(ctx context.Context, filter domain.RowFilter) ([]domain.JournalRow, error) {
	query := `SELECT ` + journalRowColumns + ` FROM v_combined_ledger WHERE 1=1`
	args := []interface{}{}

	if filter.RecordUUID != "" {
		args = append(args, filter.RecordUUID)
		query += ` AND record_uuid = $` + strconv.Itoa(len(args))
	}
	if filter.AccountID != 0 {
		args = append(args, filter.AccountID)
		query += ` AND account_id = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += ` AND trans_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += ` AND trans_date <= $` + strconv.Itoa(len(args))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	args = append(args, limit)
	query += ` ORDER BY trans_date, uuid LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal rows: %w", err)
	}
	defer rows.Close()

	return scanJournalRows(rows)
}

// FindEditHistory retrieves the edit trail of a transaction, newest first.
func (r *PgxJournalRepository) FindEditHistory(ctx context.Context, recordUUID string) ([]domain.EditHistoryEntry, error) {
	query := `
		SELECT u.display_name, h.timestamp
		FROM transaction_history h
		JOIN users u ON u.id = h.user_id
		WHERE h.record_uuid = $1
		ORDER BY h.timestamp DESC;
	`
	rows, err := r.Pool.Query(ctx, query, recordUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query edit history for %s: %w", recordUUID, err)
	}
	defer rows.Close()

	entries := []domain.EditHistoryEntry{}
	for rows.Next() {
		var e domain.EditHistoryEntry
		if err := rows.Scan(&e.DisplayName, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan edit history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating edit history rows: %w", err)
	}
	return entries, nil
}

// CommitEdit applies every mutation of one edit plus its history record as a
// single database transaction.
func (r *PgxJournalRepository) CommitEdit(ctx context.Context, mutations domain.RowMutationSet) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}

	// Scoped by record_uuid so a stray row UUID can never touch another
	// transaction.
	deleteQuery := `DELETE FROM posting_journal WHERE uuid = $1 AND record_uuid = $2;`
	for _, rowUUID := range mutations.RemovedUUIDs {
		batch.Queue(deleteQuery, rowUUID, mutations.History.RecordUUID)
	}

	insertQuery := `
		INSERT INTO posting_journal (
			uuid, record_uuid, project_id, fiscal_year_id, period_id, trans_date,
			account_id, debit, credit, debit_equiv, credit_equiv, currency_id,
			entity_uuid, reference_uuid, comment, user_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	for _, row := range mutations.Inserted {
		m := mapping.ToModelJournalRow(row)
		batch.Queue(insertQuery,
			m.UUID, m.RecordUUID, m.ProjectID, m.FiscalYearID, m.PeriodID, m.TransDate,
			m.AccountID, m.Debit, m.Credit, m.DebitEquiv, m.CreditEquiv, m.CurrencyID,
			m.EntityUUID, m.ReferenceUUID, m.Comment, m.UserID,
		)
	}

	updateQuery := `
		UPDATE posting_journal
		SET trans_date = $2,
		    fiscal_year_id = $3,
		    period_id = $4,
		    account_id = $5,
		    debit = $6,
		    credit = $7,
		    debit_equiv = $8,
		    credit_equiv = $9,
		    entity_uuid = $10,
		    reference_uuid = $11,
		    comment = $12
		WHERE uuid = $1;
	`
	for _, row := range mutations.Updated {
		m := mapping.ToModelJournalRow(row)
		batch.Queue(updateQuery,
			m.UUID, m.TransDate, m.FiscalYearID, m.PeriodID, m.AccountID,
			m.Debit, m.Credit, m.DebitEquiv, m.CreditEquiv,
			m.EntityUUID, m.ReferenceUUID, m.Comment,
		)
	}

	historyQuery := `INSERT INTO transaction_history (uuid, record_uuid, user_id) VALUES ($1, $2, $3);`
	batch.Queue(historyQuery, mutations.History.UUID, mutations.History.RecordUUID, mutations.History.UserID)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute edit batch for transaction %s: %w", mutations.History.RecordUUID, err)
	}

	return r.Commit(ctx, tx)
}

// ReverseTransaction calls the storage-level reversal routine and returns the
// new voucher UUID.
func (r *PgxJournalRepository) ReverseTransaction(ctx context.Context, recordUUID, description, userID string) (string, error) {
	voucherUUID := uuid.NewString()

	var copied int
	err := r.Pool.QueryRow(ctx, `SELECT reverse_transaction($1, $2, $3, $4);`,
		recordUUID, voucherUUID, description, userID).Scan(&copied)
	if err != nil {
		return "", fmt.Errorf("failed to reverse transaction %s: %w", recordUUID, err)
	}
	if copied == 0 {
		return "", apperrors.ErrNotFound
	}
	return voucherUUID, nil
}

// UpdateRowComments sets the comment on rows in both storage locations.
func (r *PgxJournalRepository) UpdateRowComments(ctx context.Context, uuids []string, comment string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `UPDATE posting_journal SET comment = $2 WHERE uuid = ANY($1);`, uuids, comment); err != nil {
		return fmt.Errorf("failed to update journal comments: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE general_ledger SET comment = $2 WHERE uuid = ANY($1);`, uuids, comment); err != nil {
		return fmt.Errorf("failed to update ledger comments: %w", err)
	}

	return r.Commit(ctx, tx)
}

// scanJournalRows drains a result set of journal-row shaped records.
func scanJournalRows(rows pgx.Rows) ([]domain.JournalRow, error) {
	modelRows := []models.JournalRow{}
	for rows.Next() {
		var m models.JournalRow
		if err := rows.Scan(
			&m.UUID, &m.RecordUUID, &m.ProjectID, &m.FiscalYearID, &m.PeriodID, &m.TransDate,
			&m.AccountID, &m.Debit, &m.Credit, &m.DebitEquiv, &m.CreditEquiv, &m.CurrencyID,
			&m.EntityUUID, &m.ReferenceUUID, &m.Comment, &m.UserID, &m.Posted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", err)
	}
	return mapping.ToDomainJournalRowSlice(modelRows), nil
}
