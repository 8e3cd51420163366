package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFiscalRepository reads the fiscal calendar tables.
type PgxFiscalRepository struct {
	BaseRepository
}

// NewPgxFiscalRepository creates a new repository for fiscal calendar data.
func NewPgxFiscalRepository(pool *pgxpool.Pool) portsrepo.FiscalRepository {
	return &PgxFiscalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalRepository = (*PgxFiscalRepository)(nil)

// FindFiscalYearByDate retrieves the fiscal year enclosing date.
func (r *PgxFiscalRepository) FindFiscalYearByDate(ctx context.Context, date time.Time) (*domain.FiscalYear, error) {
	query := `
		SELECT id, label, start_date, end_date, locked
		FROM fiscal_years
		WHERE $1::date BETWEEN start_date AND end_date
		LIMIT 1;
	`
	var fy domain.FiscalYear
	err := r.Pool.QueryRow(ctx, query, date).Scan(&fy.ID, &fy.Label, &fy.StartDate, &fy.EndDate, &fy.Locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal year for date: %w", err)
	}
	return &fy, nil
}

// FindPeriodByDate retrieves the real period enclosing date. The synthetic
// period 0 has null bounds and never matches.
func (r *PgxFiscalRepository) FindPeriodByDate(ctx context.Context, date time.Time) (*domain.Period, error) {
	query := `
		SELECT id, fiscal_year_id, number, start_date, end_date
		FROM periods
		WHERE start_date IS NOT NULL
		  AND $1::date BETWEEN start_date AND end_date
		LIMIT 1;
	`
	var p domain.Period
	err := r.Pool.QueryRow(ctx, query, date).Scan(&p.ID, &p.FiscalYearID, &p.Number, &p.StartDate, &p.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period for date: %w", err)
	}
	return &p, nil
}
