package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBalanceRepository runs the summation queries behind as-of-date balances.
type PgxBalanceRepository struct {
	BaseRepository
}

// NewPgxBalanceRepository creates a new repository for balance aggregation.
func NewPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepository {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceRepository = (*PgxBalanceRepository)(nil)

// SumClosedPeriodTotals sums an account's period aggregates within a fiscal
// year, taking the synthetic period 0 plus every period ending strictly
// before date. COALESCE turns an empty aggregate into zeros.
func (r *PgxBalanceRepository) SumClosedPeriodTotals(ctx context.Context, accountID, fiscalYearID int64, date time.Time) (domain.BalanceSums, error) {
	query := `
		SELECT COALESCE(SUM(pt.debit), 0), COALESCE(SUM(pt.credit), 0)
		FROM period_totals pt
		JOIN periods p ON p.id = pt.period_id
		WHERE pt.account_id = $1
		  AND p.fiscal_year_id = $2
		  AND (p.number = 0 OR p.end_date < $3::date);
	`
	var sums domain.BalanceSums
	err := r.Pool.QueryRow(ctx, query, accountID, fiscalYearID, date).Scan(&sums.Debit, &sums.Credit)
	if err != nil {
		return domain.BalanceSums{}, fmt.Errorf("failed to sum period totals for account %d: %w", accountID, err)
	}
	return sums, nil
}

// SumLedgerLines sums an account's general-ledger lines within a period up to
// date, inclusive or exclusive of the boundary date.
func (r *PgxBalanceRepository) SumLedgerLines(ctx context.Context, accountID, periodID int64, date time.Time, inclusive bool) (domain.BalanceSums, error) {
	comparison := "<"
	if inclusive {
		comparison = "<="
	}
	query := `
		SELECT COALESCE(SUM(debit_equiv), 0), COALESCE(SUM(credit_equiv), 0)
		FROM general_ledger
		WHERE account_id = $1
		  AND period_id = $2
		  AND trans_date ` + comparison + ` $3::date;
	`
	var sums domain.BalanceSums
	err := r.Pool.QueryRow(ctx, query, accountID, periodID, date).Scan(&sums.Debit, &sums.Credit)
	if err != nil {
		return domain.BalanceSums{}, fmt.Errorf("failed to sum ledger lines for account %d: %w", accountID, err)
	}
	return sums, nil
}
