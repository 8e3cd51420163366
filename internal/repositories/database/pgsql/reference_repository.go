package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceRepository resolves human-readable codes against the reference tables.
type PgxReferenceRepository struct {
	BaseRepository
}

// NewPgxReferenceRepository creates a new repository for code resolution.
func NewPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceRepository = (*PgxReferenceRepository)(nil)

// FindAccountIDByNumber resolves an account number to its internal ID.
func (r *PgxReferenceRepository) FindAccountIDByNumber(ctx context.Context, number string) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `SELECT id FROM accounts WHERE number = $1;`, number).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to find account by number %q: %w", number, err)
	}
	return id, nil
}

// FindEntityUUIDByCode resolves an entity barcode to its UUID.
func (r *PgxReferenceRepository) FindEntityUUIDByCode(ctx context.Context, code string) (string, error) {
	var entityUUID string
	err := r.Pool.QueryRow(ctx, `SELECT uuid FROM entities WHERE code = $1;`, code).Scan(&entityUUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find entity by code %q: %w", code, err)
	}
	return entityUUID, nil
}

// FindReferenceUUIDByCode resolves a document reference code to its UUID.
func (r *PgxReferenceRepository) FindReferenceUUIDByCode(ctx context.Context, code string) (string, error) {
	var referenceUUID string
	err := r.Pool.QueryRow(ctx, `SELECT uuid FROM document_references WHERE code = $1;`, code).Scan(&referenceUUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find document reference by code %q: %w", code, err)
	}
	return referenceUUID, nil
}
