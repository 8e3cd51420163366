package services_test

import (
	"context"
	"testing"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	portsrepo "github.com/finbooks/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fiscal_ledger_app/internal/core/ports/services"
	"github.com/finbooks/fiscal_ledger_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

var _ portsrepo.ReferenceRepository = (*MockReferenceRepository)(nil)

func (m *MockReferenceRepository) FindAccountIDByNumber(ctx context.Context, number string) (int64, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReferenceRepository) FindEntityUUIDByCode(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockReferenceRepository) FindReferenceUUIDByCode(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

// --- Test Suite Setup ---
type ReferenceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReferenceRepository
	service  portssvc.ReferenceSvcFacade
	ctx      context.Context
}

func (suite *ReferenceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReferenceRepository)
	suite.service = services.NewReferenceService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *ReferenceServiceTestSuite) assertCode(err error, code string) {
	var badReq *apperrors.BadRequestError
	suite.Require().ErrorAs(err, &badReq)
	suite.Equal(code, badReq.Code)
}

func (suite *ReferenceServiceTestSuite) TestResolveAccount_Success() {
	suite.mockRepo.On("FindAccountIDByNumber", mock.Anything, "1000").Return(int64(11), nil)

	id, err := suite.service.ResolveAccount(suite.ctx, "1000")

	suite.Require().NoError(err)
	suite.Equal(int64(11), id)
}

func (suite *ReferenceServiceTestSuite) TestResolveAccount_Unknown() {
	suite.mockRepo.On("FindAccountIDByNumber", mock.Anything, "9999").Return(int64(0), apperrors.ErrNotFound)

	_, err := suite.service.ResolveAccount(suite.ctx, "9999")

	suite.assertCode(err, apperrors.CodeInvalidAccount)
}

func (suite *ReferenceServiceTestSuite) TestResolveEntity_Unknown() {
	suite.mockRepo.On("FindEntityUUIDByCode", mock.Anything, "GHOST").Return("", apperrors.ErrNotFound)

	_, err := suite.service.ResolveEntity(suite.ctx, "GHOST")

	suite.assertCode(err, apperrors.CodeInvalidEntity)
}

func (suite *ReferenceServiceTestSuite) TestResolveReference_Unknown() {
	suite.mockRepo.On("FindReferenceUUIDByCode", mock.Anything, "GHOST").Return("", apperrors.ErrNotFound)

	_, err := suite.service.ResolveReference(suite.ctx, "GHOST")

	suite.assertCode(err, apperrors.CodeInvalidReference)
}

// --- Run Test Suite ---
func TestReferenceService(t *testing.T) {
	suite.Run(t, new(ReferenceServiceTestSuite))
}
