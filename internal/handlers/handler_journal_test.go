package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	"github.com/finbooks/fiscal_ledger_app/internal/dto"
	"github.com/finbooks/fiscal_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalEditService ---
type MockJournalEditService struct {
	mock.Mock
}

func (m *MockJournalEditService) EditTransaction(ctx context.Context, recordUUID string, req domain.EditRequest, userID string) ([]domain.JournalRow, error) {
	args := m.Called(ctx, recordUUID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalRow), args.Error(1)
}

func (m *MockJournalEditService) ListRows(ctx context.Context, filter domain.RowFilter) ([]domain.JournalRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalRow), args.Error(1)
}

func (m *MockJournalEditService) ReverseTransaction(ctx context.Context, recordUUID, description, userID string) (string, error) {
	args := m.Called(ctx, recordUUID, description, userID)
	return args.String(0), args.Error(1)
}

func (m *MockJournalEditService) UpdateComments(ctx context.Context, uuids []string, comment string) error {
	args := m.Called(ctx, uuids, comment)
	return args.Error(0)
}

func (m *MockJournalEditService) GetEditHistory(ctx context.Context, recordUUID string) ([]domain.EditHistoryEntry, error) {
	args := m.Called(ctx, recordUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EditHistoryEntry), args.Error(1)
}

// --- Test Suite Setup ---
type JournalHandlerTestSuite struct {
	suite.Suite
	mockService *MockJournalEditService
	router      *gin.Engine
}

// fakeAuth stands in for the JWT middleware and injects a fixed user ID.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockJournalEditService)
	handler := newJournalHandler(suite.mockService)

	suite.router = gin.New()
	group := suite.router.Group("/journal", fakeAuth("user-1"))
	group.PUT("/:recordUUID", handler.editTransaction)
	group.GET("", handler.listRows)
	group.POST("/:recordUUID/reverse", handler.reverseTransaction)
	group.GET("/:recordUUID/history", handler.getEditHistory)
}

func (suite *JournalHandlerTestSuite) perform(method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalHandlerTestSuite) TestEditTransaction_Success() {
	rows := []domain.JournalRow{
		{UUID: "row-1", RecordUUID: "rec-1", AccountID: 100, Debit: decimal.NewFromInt(100)},
		{UUID: "row-2", RecordUUID: "rec-1", AccountID: 200, Credit: decimal.NewFromInt(100)},
	}
	suite.mockService.On("EditTransaction", mock.Anything, "rec-1", mock.AnythingOfType("domain.EditRequest"), "user-1").
		Return(rows, nil)

	body := dto.TransactionEditRequest{
		Changed: map[string]dto.EditRowRequest{
			"row-1": {Comment: ptr("rephrased")},
		},
	}
	w := suite.perform(http.MethodPut, "/journal/rec-1", body)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.JournalRowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("row-1", resp[0].UUID)
}

func (suite *JournalHandlerTestSuite) TestEditTransaction_BadRequestCodePassthrough() {
	suite.mockService.On("EditTransaction", mock.Anything, "rec-1", mock.AnythingOfType("domain.EditRequest"), "user-1").
		Return(nil, apperrors.NewBadRequest(apperrors.CodeAlreadyPosted, "posted transactions are immutable"))

	w := suite.perform(http.MethodPut, "/journal/rec-1", dto.TransactionEditRequest{})

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(apperrors.CodeAlreadyPosted, resp["code"])
}

func (suite *JournalHandlerTestSuite) TestEditTransaction_NotFound() {
	suite.mockService.On("EditTransaction", mock.Anything, "missing", mock.AnythingOfType("domain.EditRequest"), "user-1").
		Return(nil, apperrors.ErrNotFound)

	w := suite.perform(http.MethodPut, "/journal/missing", dto.TransactionEditRequest{})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestEditTransaction_InvalidDate() {
	body := dto.TransactionEditRequest{
		Changed: map[string]dto.EditRowRequest{
			"row-1": {TransDate: ptr("10/03/2025")},
		},
	}
	w := suite.perform(http.MethodPut, "/journal/rec-1", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "EditTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestListRows_FilterParsing() {
	suite.mockService.On("ListRows", mock.Anything, mock.MatchedBy(func(f domain.RowFilter) bool {
		return f.AccountID == 100 && f.DateFrom != nil && f.DateFrom.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.JournalRow{}, nil)

	w := suite.perform(http.MethodGet, "/journal?accountID=100&dateFrom=2025-03-01", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *JournalHandlerTestSuite) TestReverseTransaction_Success() {
	suite.mockService.On("ReverseTransaction", mock.Anything, "rec-1", "storno", "user-1").
		Return("voucher-1", nil)

	w := suite.perform(http.MethodPost, "/journal/rec-1/reverse", dto.ReversalRequest{Description: "storno"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReversalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("voucher-1", resp.RecordUUID)
}

func (suite *JournalHandlerTestSuite) TestReverseTransaction_MissingDescription() {
	w := suite.perform(http.MethodPost, "/journal/rec-1/reverse", map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ReverseTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func ptr(s string) *string { return &s }

// --- Run Test Suite ---
func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
