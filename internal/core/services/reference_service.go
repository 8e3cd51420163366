package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
)

// referenceService resolves human-readable codes to internal identifiers.
type referenceService struct {
	refRepo portsrepo.ReferenceRepository
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(refRepo portsrepo.ReferenceRepository) portssvc.ReferenceSvcFacade {
	return &referenceService{refRepo: refRepo}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

// ResolveAccount maps an account number to its internal ID.
func (s *referenceService) ResolveAccount(ctx context.Context, number string) (int64, error) {
	id, err := s.refRepo.FindAccountIDByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.NewBadRequest(apperrors.CodeInvalidAccount,
				fmt.Sprintf("no account with number %q", number))
		}
		return 0, fmt.Errorf("failed to resolve account number %q: %w", number, err)
	}
	return id, nil
}

// ResolveEntity maps an entity barcode to its UUID.
func (s *referenceService) ResolveEntity(ctx context.Context, code string) (string, error) {
	entityUUID, err := s.refRepo.FindEntityUUIDByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewBadRequest(apperrors.CodeInvalidEntity,
				fmt.Sprintf("no entity with code %q", code))
		}
		return "", fmt.Errorf("failed to resolve entity code %q: %w", code, err)
	}
	return entityUUID, nil
}

// ResolveReference maps a document reference code to its UUID.
func (s *referenceService) ResolveReference(ctx context.Context, code string) (string, error) {
	referenceUUID, err := s.refRepo.FindReferenceUUIDByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewBadRequest(apperrors.CodeInvalidReference,
				fmt.Sprintf("no document reference with code %q", code))
		}
		return "", fmt.Errorf("failed to resolve reference code %q: %w", code, err)
	}
	return referenceUUID, nil
}
