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
	"github.com/shopspring/decimal"
)

// PgxExchangeRateRepository reads enterprise and exchange-rate data.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new repository for exchange-rate lookups.
func NewPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepository = (*PgxExchangeRateRepository)(nil)

// FindEnterpriseByProjectID resolves the enterprise owning a project.
func (r *PgxExchangeRateRepository) FindEnterpriseByProjectID(ctx context.Context, projectID int64) (*domain.Enterprise, error) {
	query := `
		SELECT e.id, e.name, e.currency_id
		FROM enterprises e
		JOIN projects p ON p.enterprise_id = e.id
		WHERE p.id = $1;
	`
	var e domain.Enterprise
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(&e.ID, &e.Name, &e.CurrencyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find enterprise for project %d: %w", projectID, err)
	}
	return &e, nil
}

// FindRate retrieves the most recent rate effective on or before date.
func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, enterpriseID, currencyID int64, date time.Time) (decimal.Decimal, error) {
	query := `
		SELECT rate
		FROM exchange_rates
		WHERE enterprise_id = $1 AND currency_id = $2 AND date_effective <= $3::date
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	var rate decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, enterpriseID, currencyID, date).Scan(&rate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to find exchange rate for currency %d: %w", currencyID, err)
	}
	return rate, nil
}
