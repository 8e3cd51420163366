package repositories

import "context"

// ReferenceRepository resolves human-readable codes to internal identifiers.
// Every lookup returns apperrors.ErrNotFound when the code is unknown; the
// service layer maps that onto the edit-specific error codes.
type ReferenceRepository interface {
	FindAccountIDByNumber(ctx context.Context, number string) (int64, error)
	FindEntityUUIDByCode(ctx context.Context, code string) (string, error)
	FindReferenceUUIDByCode(ctx context.Context, code string) (string, error)
}
