package services_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	"github.com/finbooks/fiscal_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReference lets tests control per-code latency so that lookup completion
// order differs from scheduling order.
type stubReference struct {
	resolveAccount   func(ctx context.Context, number string) (int64, error)
	resolveEntity    func(ctx context.Context, code string) (string, error)
	resolveReference func(ctx context.Context, code string) (string, error)
}

func (s *stubReference) ResolveAccount(ctx context.Context, number string) (int64, error) {
	return s.resolveAccount(ctx, number)
}

func (s *stubReference) ResolveEntity(ctx context.Context, code string) (string, error) {
	return s.resolveEntity(ctx, code)
}

func (s *stubReference) ResolveReference(ctx context.Context, code string) (string, error) {
	return s.resolveReference(ctx, code)
}

type stubRate struct {
	convert func(ctx context.Context, amount decimal.Decimal, currencyID int64, date time.Time, projectID int64) (decimal.Decimal, error)
}

func (s *stubRate) Convert(ctx context.Context, amount decimal.Decimal, currencyID int64, date time.Time, projectID int64) (decimal.Decimal, error) {
	return s.convert(ctx, amount, currencyID, date, projectID)
}

func identityRate() *stubRate {
	return &stubRate{convert: func(_ context.Context, amount decimal.Decimal, _ int64, _ time.Time, _ int64) (decimal.Decimal, error) {
		return amount, nil
	}}
}

func editContext() domain.EditContext {
	return domain.EditContext{
		RecordUUID:   "rec-1",
		ProjectID:    1,
		CurrencyID:   1,
		TransDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		FiscalYearID: 7,
		PeriodID:     70,
		UserID:       "user-1",
	}
}

func TestTransform_LookupsBindToTheirRows(t *testing.T) {
	// The first scheduled lookup finishes last. If results were joined to
	// rows by completion order instead of by the captured row, the account
	// IDs would end up shuffled across the patches.
	accounts := map[string]int64{"1000": 11, "2000": 22, "3000": 33}
	ref := &stubReference{
		resolveAccount: func(_ context.Context, number string) (int64, error) {
			if number == "1000" {
				time.Sleep(30 * time.Millisecond)
			}
			return accounts[number], nil
		},
		resolveEntity: func(_ context.Context, code string) (string, error) {
			return "entity-" + code, nil
		},
	}
	pipeline := services.NewRowTransformPipeline(ref, identityRate())

	patches := []*domain.RowPatch{
		{AccountNumber: strPtr("1000"), EntityCode: strPtr("E1")},
		{AccountNumber: strPtr("2000")},
		{AccountNumber: strPtr("3000"), EntityCode: strPtr("E3")},
	}
	err := pipeline.Transform(context.Background(), patches, true, editContext())
	require.NoError(t, err)

	require.NotNil(t, patches[0].AccountID)
	require.NotNil(t, patches[1].AccountID)
	require.NotNil(t, patches[2].AccountID)
	assert.Equal(t, int64(11), *patches[0].AccountID)
	assert.Equal(t, int64(22), *patches[1].AccountID)
	assert.Equal(t, int64(33), *patches[2].AccountID)
	require.NotNil(t, patches[0].EntityUUID)
	assert.Equal(t, "entity-E1", *patches[0].EntityUUID)
	require.NotNil(t, patches[2].EntityUUID)
	assert.Equal(t, "entity-E3", *patches[2].EntityUUID)

	// Input codes are consumed once resolved.
	assert.Nil(t, patches[0].AccountNumber)
	assert.Nil(t, patches[0].EntityCode)
}

func TestTransform_NewRowMissingAccountNumber(t *testing.T) {
	var calls atomic.Int32
	ref := &stubReference{
		resolveAccount: func(_ context.Context, _ string) (int64, error) {
			calls.Add(1)
			return 1, nil
		},
	}
	pipeline := services.NewRowTransformPipeline(ref, identityRate())

	patches := []*domain.RowPatch{
		{AccountNumber: strPtr("1000")},
		{DebitEquiv: decPtr("50")},
	}
	err := pipeline.Transform(context.Background(), patches, true, editContext())

	var badReq *apperrors.BadRequestError
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, apperrors.CodeInvalidAccount, badReq.Code)
	assert.Zero(t, calls.Load(), "no lookup should run when the batch is rejected up front")
}

func TestTransform_ExistingRowsNeedNoAccountNumber(t *testing.T) {
	pipeline := services.NewRowTransformPipeline(&stubReference{}, identityRate())

	patches := []*domain.RowPatch{{Comment: strPtr("rephrased")}}
	err := pipeline.Transform(context.Background(), patches, false, editContext())

	require.NoError(t, err)
}

func TestTransform_StampsCalendarAndTruncatesDate(t *testing.T) {
	pipeline := services.NewRowTransformPipeline(&stubReference{}, identityRate())

	late := time.Date(2025, 3, 12, 17, 45, 3, 0, time.UTC)
	patches := []*domain.RowPatch{{TransDate: &late}}
	err := pipeline.Transform(context.Background(), patches, false, editContext())
	require.NoError(t, err)

	require.NotNil(t, patches[0].TransDate)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), *patches[0].TransDate)
	require.NotNil(t, patches[0].FiscalYearID)
	assert.Equal(t, int64(7), *patches[0].FiscalYearID)
	require.NotNil(t, patches[0].PeriodID)
	assert.Equal(t, int64(70), *patches[0].PeriodID)
}

func TestTransform_ConvertsAmounts(t *testing.T) {
	doubling := &stubRate{convert: func(_ context.Context, amount decimal.Decimal, _ int64, _ time.Time, _ int64) (decimal.Decimal, error) {
		return amount.Mul(dec("2")), nil
	}}
	pipeline := services.NewRowTransformPipeline(&stubReference{}, doubling)

	patches := []*domain.RowPatch{
		{DebitEquiv: decPtr("50")},
		{CreditEquiv: decPtr("75")},
	}
	err := pipeline.Transform(context.Background(), patches, false, editContext())
	require.NoError(t, err)

	require.NotNil(t, patches[0].Debit)
	assert.True(t, patches[0].Debit.Equal(dec("100")))
	assert.True(t, patches[0].DebitEquiv.Equal(dec("50")), "equivalent amount stays untouched")
	require.NotNil(t, patches[1].Credit)
	assert.True(t, patches[1].Credit.Equal(dec("150")))
}

func TestTransform_FirstFailureWins(t *testing.T) {
	ref := &stubReference{
		resolveAccount: func(_ context.Context, _ string) (int64, error) {
			time.Sleep(20 * time.Millisecond)
			return 11, nil
		},
		resolveEntity: func(_ context.Context, code string) (string, error) {
			return "", apperrors.NewBadRequest(apperrors.CodeInvalidEntity, "no entity with code "+code)
		},
	}
	pipeline := services.NewRowTransformPipeline(ref, identityRate())

	patches := []*domain.RowPatch{
		{AccountNumber: strPtr("1000"), EntityCode: strPtr("GHOST")},
	}
	err := pipeline.Transform(context.Background(), patches, true, editContext())

	var badReq *apperrors.BadRequestError
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, apperrors.CodeInvalidEntity, badReq.Code)
}
