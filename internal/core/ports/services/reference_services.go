package services

import "context"

// ReferenceSvcFacade resolves human-readable codes to internal identifiers,
// failing with the edit-specific BadRequest codes when unresolvable.
type ReferenceSvcFacade interface {
	ResolveAccount(ctx context.Context, number string) (int64, error)
	ResolveEntity(ctx context.Context, code string) (string, error)
	ResolveReference(ctx context.Context, code string) (string, error)
}
