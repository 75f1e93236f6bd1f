package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/organic_store_accounting/internal/apperrors"
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
	"github.com/SscSPs/organic_store_accounting/internal/dto"
	"github.com/SscSPs/organic_store_accounting/internal/handlers"
	"github.com/SscSPs/organic_store_accounting/internal/middleware"
)

// --- Mock services ---

type MockLedgerViewService struct {
	mock.Mock
}

func (m *MockLedgerViewService) ListTransactions(ctx context.Context, params portsrepo.ListEntriesParams) (*domain.TransactionPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockLedgerViewService) Statistics(ctx context.Context) (domain.LedgerStatistics, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LedgerStatistics), args.Error(1)
}

var _ portssvc.LedgerViewSvc = (*MockLedgerViewService)(nil)

type MockAgingService struct {
	mock.Mock
}

func (m *MockAgingService) Aging(ctx context.Context) (domain.AgingResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AgingResult), args.Error(1)
}

func (m *MockAgingService) AgingAsOf(ctx context.Context, today domain.Date) (domain.AgingResult, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(domain.AgingResult), args.Error(1)
}

var _ portssvc.AgingSvc = (*MockAgingService)(nil)

type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) Overview(ctx context.Context) *domain.Overview {
	args := m.Called(ctx)
	return args.Get(0).(*domain.Overview)
}

var _ portssvc.OverviewSvc = (*MockOverviewService)(nil)

type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) ChartOfAccounts() []domain.ChartFamily {
	args := m.Called()
	return args.Get(0).([]domain.ChartFamily)
}

var _ portssvc.ChartSvc = (*MockChartService)(nil)

type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) PostEntry(ctx context.Context, req domain.PostEntryRequest, userID string) (*domain.PostResult, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostResult), args.Error(1)
}

func (m *MockPostingService) ListAttempts(ctx context.Context, params portsrepo.ListAttemptsParams) ([]domain.PostingAttempt, *string, error) {
	args := m.Called(ctx, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.PostingAttempt), next, args.Error(2)
}

var _ portssvc.PostingSvc = (*MockPostingService)(nil)

// --- Test Suite ---

type AccountingHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	ledgerView *MockLedgerViewService
	aging      *MockAgingService
	overview   *MockOverviewService
	chart      *MockChartService
	posting    *MockPostingService
	jwtSecret  string
	userID     string
}

// generateTestToken creates a signed JWT for the given user.
func (suite *AccountingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "organic-store-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = "user-42"

	suite.ledgerView = new(MockLedgerViewService)
	suite.aging = new(MockAgingService)
	suite.overview = new(MockOverviewService)
	suite.chart = new(MockChartService)
	suite.posting = new(MockPostingService)

	services := &portssvc.ServiceContainer{
		LedgerView: suite.ledgerView,
		Aging:      suite.aging,
		Overview:   suite.overview,
		Chart:      suite.chart,
		Posting:    suite.posting,
	}

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterAccountingRoutes(v1, services)
}

func (suite *AccountingHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func emptyOverview() *domain.Overview {
	return &domain.Overview{
		Transactions: domain.TransactionPage{Transactions: []domain.ClassifiedTransaction{}},
		Statistics:   domain.ZeroStatistics(),
		Aging:        domain.NewAgingResult(domain.AgingSourceNone),
	}
}

func validEntryBody() map[string]any {
	return map[string]any{
		"date":          "2024-06-15",
		"referenceNo":   "HD001",
		"memo":          "Bán rau",
		"paymentStatus": "paid",
		"lines": []map[string]any{
			{"accountCode": "1111", "debit": "150000", "credit": "0"},
			{"accountCode": "5111", "debit": "0", "credit": "150000"},
		},
	}
}

// --- Test Cases ---

func (suite *AccountingHandlerTestSuite) TestRequiresAuthentication() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounting/statistics", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.ledgerView.AssertNotCalled(suite.T(), "Statistics", mock.Anything)
}

func (suite *AccountingHandlerTestSuite) TestListTransactions_Success() {
	next := "page-2"
	page := &domain.TransactionPage{
		Transactions: []domain.ClassifiedTransaction{
			{
				EntryID:     "je-1",
				Date:        domain.NewDate(2024, 6, 15),
				ReferenceNo: "HD001",
				Status:      domain.EntryPosted,
				Classification: domain.Classification{
					Type:          domain.Expense,
					Category:      domain.CategoryMaterials,
					Amount:        decimal.NewFromInt(300),
					PaymentStatus: domain.Paid,
				},
			},
		},
		NextToken: &next,
	}
	suite.ledgerView.On("ListTransactions", mock.Anything, mock.MatchedBy(func(p portsrepo.ListEntriesParams) bool {
		return p.Limit == 20 && p.NextToken != nil && *p.NextToken == "page-1"
	})).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/transactions?limit=20&nextToken=page-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("expense", resp.Transactions[0].Type)
	suite.Equal("2024-06-15", resp.Transactions[0].Date)
	suite.True(decimal.NewFromInt(-300).Equal(resp.Transactions[0].SignedAmount))
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("page-2", *resp.NextToken)
	suite.ledgerView.AssertExpectations(suite.T())
}

func (suite *AccountingHandlerTestSuite) TestListTransactions_InvalidLimit() {
	w := suite.do(http.MethodGet, "/api/v1/accounting/transactions?limit=5000", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledgerView.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *AccountingHandlerTestSuite) TestListTransactions_UpstreamFailure() {
	suite.ledgerView.On("ListTransactions", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("list failed: %w", apperrors.ErrUpstream)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/transactions", nil)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *AccountingHandlerTestSuite) TestGetStatistics_FailureReturnsZeroes() {
	suite.ledgerView.On("Statistics", mock.Anything).
		Return(domain.ZeroStatistics(), fmt.Errorf("page 3: %w", apperrors.ErrUpstream)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/statistics", nil)

	suite.Equal(http.StatusBadGateway, w.Code)
	var body struct {
		Error      string                 `json:"error"`
		Statistics dto.StatisticsResponse `json:"statistics"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.NotEmpty(body.Error)
	suite.True(body.Statistics.Balance.IsZero())
	suite.True(body.Statistics.TotalIncome.IsZero())
}

func (suite *AccountingHandlerTestSuite) TestGetAging_AsOf() {
	result := domain.NewAgingResult(domain.AgingSourceLocal)
	result.Summary[domain.BucketOverdue31To60] = domain.BucketSummary{Total: decimal.NewFromInt(200), Count: 1}
	result.TotalOutstanding = decimal.NewFromInt(200)
	suite.aging.On("AgingAsOf", mock.Anything, domain.NewDate(2024, 6, 15)).Return(result, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/aging?asOf=2024-06-15", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AgingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("local", resp.Source)
	suite.Require().Len(resp.Buckets, len(domain.AgingBuckets))
	suite.Equal("current", resp.Buckets[0].Bucket)
	suite.Equal(1, resp.Buckets[2].Count)
	suite.True(decimal.NewFromInt(200).Equal(resp.TotalOutstanding))
	suite.aging.AssertNotCalled(suite.T(), "Aging", mock.Anything)
}

func (suite *AccountingHandlerTestSuite) TestGetAging_InvalidAsOf() {
	w := suite.do(http.MethodGet, "/api/v1/accounting/aging?asOf=15/06/2024", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountingHandlerTestSuite) TestGetOverview_PartialFailure() {
	overview := emptyOverview()
	overview.Errors = map[string]string{domain.ViewAging: "ledger api unavailable"}
	suite.overview.On("Overview", mock.Anything).Return(overview).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/overview", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.OverviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Errors, domain.ViewAging)
	suite.Equal("none", resp.Aging.Source)
}

func (suite *AccountingHandlerTestSuite) TestGetChart() {
	suite.chart.On("ChartOfAccounts").Return([]domain.ChartFamily{{Prefix: "511", Name: "Doanh thu", Role: "revenue"}}).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/chart", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ChartFamilyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("511", resp[0].Prefix)
}

func (suite *AccountingHandlerTestSuite) TestCreateEntry_Success() {
	result := &domain.PostResult{
		Entry:             domain.JournalEntry{ID: "je-9", ReferenceNo: "HD20240615-4821", Status: domain.EntryPosted},
		ReplacedReference: &domain.ReplacedReference{Original: "HD001", Replacement: "HD20240615-4821"},
		Attempts:          2,
	}
	suite.posting.On("PostEntry", mock.Anything, mock.MatchedBy(func(req domain.PostEntryRequest) bool {
		return req.ReferenceNo == "HD001" && len(req.Lines) == 2 && req.Lines[0].Debit.Equal(decimal.NewFromInt(150000))
	}), suite.userID).Return(result, nil).Once()
	suite.overview.On("Overview", mock.Anything).Return(emptyOverview()).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounting/entries", validEntryBody())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("je-9", resp.Entry.ID)
	suite.Require().NotNil(resp.ReplacedReference)
	suite.Equal("HD20240615-4821", resp.ReplacedReference.Replacement)
	suite.Equal(2, resp.Attempts)
	suite.NotNil(resp.Overview)
	suite.posting.AssertExpectations(suite.T())
	suite.overview.AssertExpectations(suite.T())
}

func (suite *AccountingHandlerTestSuite) TestCreateEntry_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounting/entries", bytes.NewBufferString(`{"date": "not a date"`))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.posting.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountingHandlerTestSuite) TestCreateEntry_ErrorMapping() {
	totalDebit := decimal.NewFromInt(100)
	totalCredit := decimal.NewFromInt(90)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("%w: partnerName is required when paymentStatus is unpaid", apperrors.ErrValidation),
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate after retry",
			err: fmt.Errorf("reference %q and its replacement %q are both in use: %w", "HD001", "HD20240615-4821",
				&domain.PostRejection{Code: domain.RejectDuplicateReference, Message: "exists"}),
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_REFERENCE",
		},
		{
			name:       "unbalanced",
			err:        &domain.PostRejection{Code: domain.RejectUnbalanced, Message: "not balanced", TotalDebit: &totalDebit, TotalCredit: &totalCredit},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "UNBALANCED",
		},
		{
			name:       "missing account",
			err:        &domain.PostRejection{Code: domain.RejectMissingAccount, Message: "no 131", MissingAccount: "131", Suggestion: "Create account 131"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MISSING_ACCOUNT",
		},
		{
			name:       "transport",
			err:        fmt.Errorf("%w: request failed: connection refused", apperrors.ErrUpstream),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.posting.On("PostEntry", mock.Anything, mock.Anything, suite.userID).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/accounting/entries", validEntryBody())

			suite.Equal(tt.wantStatus, w.Code)
			var resp dto.PostingErrorResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			suite.NotEmpty(resp.Error)
			suite.Equal(tt.wantCode, resp.Code)
			if tt.wantCode == "UNBALANCED" {
				suite.Require().NotNil(resp.TotalDebit)
				suite.True(totalDebit.Equal(*resp.TotalDebit))
			}
			if tt.wantCode == "MISSING_ACCOUNT" {
				suite.Equal("131", resp.MissingAccount)
				suite.Equal("Create account 131", resp.Suggestion)
			}
			suite.overview.AssertNotCalled(suite.T(), "Overview", mock.Anything)
		})
	}
}

func (suite *AccountingHandlerTestSuite) TestListPostingAttempts() {
	attempts := []domain.PostingAttempt{
		{AttemptID: "a-2", ReferenceNo: "HD001", AttemptNo: 2, State: domain.PostingSucceeded, Outcome: "accepted"},
	}
	next := "cursor-2"
	suite.posting.On("ListAttempts", mock.Anything, mock.MatchedBy(func(p portsrepo.ListAttemptsParams) bool {
		return p.ReferenceNo == "HD001" && p.Limit == 10 && p.NextToken != nil && *p.NextToken == "cursor-1"
	})).Return(attempts, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/posting-attempts?referenceNo=HD001&limit=10&nextToken=cursor-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPostingAttemptsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Attempts, 1)
	suite.Equal("succeeded", resp.Attempts[0].State)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("cursor-2", *resp.NextToken)
}

func (suite *AccountingHandlerTestSuite) TestListPostingAttempts_InvalidToken() {
	suite.posting.On("ListAttempts", mock.Anything, mock.Anything).
		Return(nil, nil, fmt.Errorf("failed to list posting attempts: %w", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/posting-attempts?nextToken=garbage", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestAccountingHandler(t *testing.T) {
	suite.Run(t, new(AccountingHandlerTestSuite))
}
