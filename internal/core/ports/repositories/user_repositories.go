package repositories

import (
	"context"

	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
)

// UserRepository defines user lookups for authentication.
type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
