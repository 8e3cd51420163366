package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
	"github.com/finbooks/fiscal_ledger_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.BalanceRepository = (*MockBalanceRepository)(nil)

func (m *MockBalanceRepository) SumClosedPeriodTotals(ctx context.Context, accountID, fiscalYearID int64, date time.Time) (domain.BalanceSums, error) {
	args := m.Called(ctx, accountID, fiscalYearID, date)
	return args.Get(0).(domain.BalanceSums), args.Error(1)
}

func (m *MockBalanceRepository) SumLedgerLines(ctx context.Context, accountID, periodID int64, date time.Time, inclusive bool) (domain.BalanceSums, error) {
	args := m.Called(ctx, accountID, periodID, date, inclusive)
	return args.Get(0).(domain.BalanceSums), args.Error(1)
}

// --- Test Suite Setup ---
type BalanceServiceTestSuite struct {
	suite.Suite
	mockFiscal *MockFiscalService
	mockRepo   *MockBalanceRepository
	service    portssvc.BalanceSvcFacade
	ctx        context.Context
	date       time.Time
	fiscalYear *domain.FiscalYear
	period     *domain.Period
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockFiscal = new(MockFiscalService)
	suite.mockRepo = new(MockBalanceRepository)
	suite.service = services.NewBalanceService(suite.mockFiscal, suite.mockRepo)
	suite.ctx = context.Background()
	suite.date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.fiscalYear = &domain.FiscalYear{ID: 7, Label: "FY2025"}
	suite.period = &domain.Period{ID: 70, FiscalYearID: 7, Number: 3}
}

func (suite *BalanceServiceTestSuite) TestOpeningBalance_SumsPriorAndCurrent() {
	suite.mockFiscal.On("ResolveFiscalYear", mock.Anything, suite.date).Return(suite.fiscalYear, nil)
	suite.mockFiscal.On("ResolvePeriod", mock.Anything, suite.date).Return(suite.period, nil)
	suite.mockRepo.On("SumClosedPeriodTotals", mock.Anything, int64(100), int64(7), suite.date).
		Return(domain.BalanceSums{Debit: dec("1000"), Credit: dec("400")}, nil)
	suite.mockRepo.On("SumLedgerLines", mock.Anything, int64(100), int64(70), suite.date, false).
		Return(domain.BalanceSums{Debit: dec("50"), Credit: dec("25.33333")}, nil)

	balance, err := suite.service.OpeningBalance(suite.ctx, 100, suite.date, false)

	suite.Require().NoError(err)
	suite.Equal(int64(100), balance.AccountID)
	suite.Equal("1050.0000", balance.Debit.StringFixed(4))
	suite.Equal("425.3333", balance.Credit.StringFixed(4))
	suite.Equal("624.6667", balance.Balance.StringFixed(4))
}

func (suite *BalanceServiceTestSuite) TestOpeningBalance_InclusiveBoundary() {
	suite.mockFiscal.On("ResolveFiscalYear", mock.Anything, suite.date).Return(suite.fiscalYear, nil)
	suite.mockFiscal.On("ResolvePeriod", mock.Anything, suite.date).Return(suite.period, nil)
	suite.mockRepo.On("SumClosedPeriodTotals", mock.Anything, int64(100), int64(7), suite.date).
		Return(domain.BalanceSums{}, nil)
	suite.mockRepo.On("SumLedgerLines", mock.Anything, int64(100), int64(70), suite.date, true).
		Return(domain.BalanceSums{Debit: dec("10"), Credit: dec("10")}, nil)

	_, err := suite.service.OpeningBalance(suite.ctx, 100, suite.date, true)

	suite.Require().NoError(err)
	suite.mockRepo.AssertCalled(suite.T(), "SumLedgerLines", mock.Anything, int64(100), int64(70), suite.date, true)
}

func (suite *BalanceServiceTestSuite) TestOpeningBalance_NoActivity() {
	suite.mockFiscal.On("ResolveFiscalYear", mock.Anything, suite.date).Return(suite.fiscalYear, nil)
	suite.mockFiscal.On("ResolvePeriod", mock.Anything, suite.date).Return(suite.period, nil)
	suite.mockRepo.On("SumClosedPeriodTotals", mock.Anything, int64(100), int64(7), suite.date).
		Return(domain.BalanceSums{}, nil)
	suite.mockRepo.On("SumLedgerLines", mock.Anything, int64(100), int64(70), suite.date, false).
		Return(domain.BalanceSums{}, nil)

	balance, err := suite.service.OpeningBalance(suite.ctx, 100, suite.date, false)

	suite.Require().NoError(err)
	suite.Equal("0.0000", balance.Balance.StringFixed(4))
}

func (suite *BalanceServiceTestSuite) TestOpeningBalance_UnknownFiscalYear() {
	suite.mockFiscal.On("ResolveFiscalYear", mock.Anything, suite.date).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.OpeningBalance(suite.ctx, 100, suite.date, false)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumClosedPeriodTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestBalanceService(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
