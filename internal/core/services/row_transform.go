package services

import (
	"context"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// RowTransformPipeline resolves foreign keys and currency conversions for a
// batch of edited rows. All lookups across all rows run concurrently; every
// result is written back through the pointer captured at scheduling time, so a
// lookup can never land on the wrong row regardless of completion order.
type RowTransformPipeline struct {
	referenceSvc portssvc.ReferenceSvcFacade
	rateSvc      portssvc.ExchangeRateSvcFacade
}

// NewRowTransformPipeline creates a new RowTransformPipeline.
func NewRowTransformPipeline(referenceSvc portssvc.ReferenceSvcFacade, rateSvc portssvc.ExchangeRateSvcFacade) *RowTransformPipeline {
	return &RowTransformPipeline{
		referenceSvc: referenceSvc,
		rateSvc:      rateSvc,
	}
}

// Transform mutates the patches in place: codes become identifiers, equivalent
// amounts become native amounts, row-level dates get their calendar stamp.
// The first lookup failure aborts the batch result; already-running lookups
// are allowed to finish but none of their output is committed anywhere.
func (p *RowTransformPipeline) Transform(ctx context.Context, patches []*domain.RowPatch, isNew bool, ectx domain.EditContext) error {
	// New rows must name an account before a single lookup is issued.
	if isNew {
		for _, patch := range patches {
			if patch.AccountNumber == nil || *patch.AccountNumber == "" {
				return apperrors.NewBadRequest(apperrors.CodeInvalidAccount, "new rows must carry an account number")
			}
		}
	}

	// All rows of one edit share the caller-resolved fiscal year and period,
	// so calendar stamping needs no lookup of its own.
	for _, patch := range patches {
		if patch.TransDate != nil {
			day := truncateToDate(*patch.TransDate)
			patch.TransDate = &day
			fiscalYearID := ectx.FiscalYearID
			periodID := ectx.PeriodID
			patch.FiscalYearID = &fiscalYearID
			patch.PeriodID = &periodID
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, patch := range patches {
		patch := patch

		if patch.AccountNumber != nil && *patch.AccountNumber != "" {
			number := *patch.AccountNumber
			g.Go(func() error {
				accountID, err := p.referenceSvc.ResolveAccount(gctx, number)
				if err != nil {
					return err
				}
				patch.AccountID = &accountID
				patch.AccountNumber = nil
				return nil
			})
		}

		if patch.EntityCode != nil && *patch.EntityCode != "" {
			code := *patch.EntityCode
			g.Go(func() error {
				entityUUID, err := p.referenceSvc.ResolveEntity(gctx, code)
				if err != nil {
					return err
				}
				patch.EntityUUID = &entityUUID
				patch.EntityCode = nil
				return nil
			})
		}

		if patch.ReferenceCode != nil && *patch.ReferenceCode != "" {
			code := *patch.ReferenceCode
			g.Go(func() error {
				referenceUUID, err := p.referenceSvc.ResolveReference(gctx, code)
				if err != nil {
					return err
				}
				patch.ReferenceUUID = &referenceUUID
				patch.ReferenceCode = nil
				return nil
			})
		}

		if patch.DebitEquiv != nil {
			amount := *patch.DebitEquiv
			date := rowDate(patch, ectx)
			g.Go(func() error {
				converted, err := p.rateSvc.Convert(gctx, amount, ectx.CurrencyID, date, ectx.ProjectID)
				if err != nil {
					return err
				}
				patch.Debit = &converted
				return nil
			})
		}

		if patch.CreditEquiv != nil {
			amount := *patch.CreditEquiv
			date := rowDate(patch, ectx)
			g.Go(func() error {
				converted, err := p.rateSvc.Convert(gctx, amount, ectx.CurrencyID, date, ectx.ProjectID)
				if err != nil {
					return err
				}
				patch.Credit = &converted
				return nil
			})
		}
	}

	return g.Wait()
}

// rowDate picks the row's own date when supplied, else the transaction date.
func rowDate(patch *domain.RowPatch, ectx domain.EditContext) time.Time {
	if patch.TransDate != nil {
		return *patch.TransDate
	}
	return ectx.TransDate
}

// truncateToDate normalizes a timestamp to midnight UTC.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
