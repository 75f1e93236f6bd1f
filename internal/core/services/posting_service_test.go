package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/organic_store_accounting/internal/apperrors"
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
	"github.com/SscSPs/organic_store_accounting/internal/core/services"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockLedger *MockLedgerRepository
	mockAudit  *MockPostingAuditRepository
	service    portssvc.PostingSvc
	now        time.Time
	userID     string
	attemptSeq int
}

func TestPostingService(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.mockAudit = new(MockPostingAuditRepository)
	suite.now = time.Unix(1718444821, 0).UTC()
	suite.userID = "user-42"
	suite.attemptSeq = 0

	suite.service = services.NewPostingService(suite.mockLedger,
		services.WithPostingAudit(suite.mockAudit),
		services.WithPostingClock(func() time.Time { return suite.now }),
		services.WithAttemptIDGenerator(func() string {
			suite.attemptSeq++
			return fmt.Sprintf("attempt-%d", suite.attemptSeq)
		}),
	)
}

func (suite *PostingServiceTestSuite) paidRequest() domain.PostEntryRequest {
	return domain.PostEntryRequest{
		Date:          domain.NewDate(2024, 6, 15),
		ReferenceNo:   "HD001",
		Memo:          "Bán rau hữu cơ",
		PaymentStatus: domain.Paid,
		Lines: []domain.JournalLine{
			{AccountCode: "1111", Debit: decimal.NewFromInt(150000)},
			{AccountCode: "5111", Credit: decimal.NewFromInt(150000)},
		},
	}
}

func (suite *PostingServiceTestSuite) unpaidRequest() domain.PostEntryRequest {
	due := domain.NewDate(2024, 7, 15)
	req := suite.paidRequest()
	req.PaymentStatus = domain.Unpaid
	req.PartnerName = "Cửa hàng Xanh"
	req.PartnerPhone = "0901234567"
	req.DueDate = &due
	req.Lines[0].AccountCode = "131"
	return req
}

func withReference(ref string) interface{} {
	return mock.MatchedBy(func(p domain.PostEntryPayload) bool { return p.ReferenceNo == ref })
}

func postedEntry(id, ref string) *domain.JournalEntry {
	return &domain.JournalEntry{ID: id, ReferenceNo: ref, Status: domain.EntryPosted, Date: domain.NewDate(2024, 6, 15)}
}

func duplicate() *domain.PostRejection {
	return &domain.PostRejection{Code: domain.RejectDuplicateReference, StatusCode: 409, Message: "Reference already exists"}
}

func (suite *PostingServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	suite.mockLedger.On("PostJournalEntry", mock.Anything, mock.MatchedBy(func(p domain.PostEntryPayload) bool {
		return p.ReferenceNo == "HD001" && p.PartnerName == "" && p.DueDate == nil && len(p.Lines) == 2
	})).Return(postedEntry("je-1", "HD001"), nil).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.MatchedBy(func(a domain.PostingAttempt) bool {
		return a.AttemptNo == 1 && a.State == domain.PostingSucceeded && a.CreatedBy == suite.userID && a.AttemptID == "attempt-1"
	})).Return(nil).Once()

	result, err := suite.service.PostEntry(ctx, suite.paidRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("je-1", result.Entry.ID)
	suite.Equal(1, result.Attempts)
	suite.Nil(result.ReplacedReference)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEntry_DuplicateRetriedOnceWithNewReference() {
	ctx := context.Background()
	suite.mockLedger.On("PostJournalEntry", mock.Anything, withReference("HD001")).Return(nil, duplicate()).Once()
	suite.mockLedger.On("PostJournalEntry", mock.Anything, withReference("HD20240615-4821")).Return(postedEntry("je-2", "HD20240615-4821"), nil).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.MatchedBy(func(a domain.PostingAttempt) bool {
		return a.AttemptNo == 1 && a.State == domain.PostingConflictRetried && a.ReferenceNo == "HD001"
	})).Return(nil).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.MatchedBy(func(a domain.PostingAttempt) bool {
		return a.AttemptNo == 2 && a.State == domain.PostingSucceeded && a.ReferenceNo == "HD20240615-4821"
	})).Return(nil).Once()

	result, err := suite.service.PostEntry(ctx, suite.paidRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("je-2", result.Entry.ID)
	suite.Equal(2, result.Attempts)
	suite.Require().NotNil(result.ReplacedReference)
	suite.Equal("HD001", result.ReplacedReference.Original)
	suite.Equal("HD20240615-4821", result.ReplacedReference.Replacement)
	suite.mockLedger.AssertNumberOfCalls(suite.T(), "PostJournalEntry", 2)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEntry_SecondDuplicateIsFinal() {
	ctx := context.Background()
	suite.mockLedger.On("PostJournalEntry", mock.Anything, mock.Anything).Return(nil, duplicate()).Twice()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.Anything).Return(nil)

	result, err := suite.service.PostEntry(ctx, suite.paidRequest(), suite.userID)

	suite.Nil(result)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateReference)
	suite.Contains(err.Error(), "HD001")
	suite.Contains(err.Error(), "HD20240615-4821")
	suite.mockLedger.AssertNumberOfCalls(suite.T(), "PostJournalEntry", 2)
	suite.mockAudit.AssertCalled(suite.T(), "SavePostingAttempt", mock.Anything, mock.MatchedBy(func(a domain.PostingAttempt) bool {
		return a.AttemptNo == 2 && a.State == domain.PostingFailed && a.Outcome == "duplicate_reference"
	}))
}

func (suite *PostingServiceTestSuite) TestPostEntry_UnpaidWithoutPartnerMakesNoCall() {
	req := suite.unpaidRequest()
	req.PartnerName = "   "

	result, err := suite.service.PostEntry(context.Background(), req, suite.userID)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "partnerName is required when paymentStatus is unpaid")
	suite.mockLedger.AssertNotCalled(suite.T(), "PostJournalEntry", mock.Anything, mock.Anything)
	suite.mockAudit.AssertNotCalled(suite.T(), "SavePostingAttempt", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEntry_UnpaidWithoutDueDateMakesNoCall() {
	req := suite.unpaidRequest()
	req.DueDate = nil

	_, err := suite.service.PostEntry(context.Background(), req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "dueDate")
	suite.mockLedger.AssertNotCalled(suite.T(), "PostJournalEntry", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEntry_UnpaidCarriesPartner() {
	suite.mockLedger.On("PostJournalEntry", mock.Anything, mock.MatchedBy(func(p domain.PostEntryPayload) bool {
		return p.PartnerName == "Cửa hàng Xanh" && p.PartnerPhone == "0901234567" &&
			p.DueDate != nil && p.DueDate.String() == "2024-07-15" && p.PaymentStatus == domain.Unpaid
	})).Return(postedEntry("je-3", "HD001"), nil).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.PostEntry(context.Background(), suite.unpaidRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEntry_PaidDropsPartnerFields() {
	req := suite.paidRequest()
	req.PartnerName = "Khách lẻ"
	suite.mockLedger.On("PostJournalEntry", mock.Anything, mock.MatchedBy(func(p domain.PostEntryPayload) bool {
		return p.PartnerName == "" && p.DueDate == nil
	})).Return(postedEntry("je-4", "HD001"), nil).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.PostEntry(context.Background(), req, suite.userID)

	suite.Require().NoError(err)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEntry_TrimsInput() {
	req := suite.paidRequest()
	req.ReferenceNo = "  HD001 "
	req.Memo = " Bán rau "
	req.Lines[0].AccountCode = " 1111 "
	suite.mockLedger.On("PostJournalEntry", mock.Anything, mock.MatchedBy(func(p domain.PostEntryPayload) bool {
		return p.ReferenceNo == "HD001" && p.Memo == "Bán rau" && p.Lines[0].AccountCode == "1111"
	})).Return(postedEntry("je-5", "HD001"), nil).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.PostEntry(context.Background(), req, suite.userID)

	suite.Require().NoError(err)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEntry_EmptyMemoIsAccepted() {
	req := suite.paidRequest()
	req.Memo = "  "
	suite.mockLedger.On("PostJournalEntry", mock.Anything, mock.MatchedBy(func(p domain.PostEntryPayload) bool {
		return p.Memo == ""
	})).Return(postedEntry("je-7", "HD001"), nil).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.Anything).Return(nil)

	result, err := suite.service.PostEntry(context.Background(), req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("je-7", result.Entry.ID)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEntry_ValidationFailures() {
	tests := []struct {
		name    string
		mutate  func(*domain.PostEntryRequest)
		wantMsg string
	}{
		{"missing reference", func(r *domain.PostEntryRequest) { r.ReferenceNo = " " }, "referenceNo is required"},
		{"memo too long", func(r *domain.PostEntryRequest) { r.Memo = strings.Repeat("x", 501) }, "memo must be at most 500 characters"},
		{"missing date", func(r *domain.PostEntryRequest) { r.Date = domain.Date{} }, "date is required"},
		{"unknown payment status", func(r *domain.PostEntryRequest) { r.PaymentStatus = "later" }, "paymentStatus must be one of"},
		{"single line", func(r *domain.PostEntryRequest) { r.Lines = r.Lines[:1] }, "lines must contain at least 2 items"},
		{"line with both sides", func(r *domain.PostEntryRequest) { r.Lines[0].Credit = decimal.NewFromInt(1) }, "lines[0]: exactly one of debit or credit"},
		{"negative amount", func(r *domain.PostEntryRequest) { r.Lines[1].Credit = decimal.NewFromInt(-5) }, "lines[1]: amounts cannot be negative"},
		{"non-numeric account", func(r *domain.PostEntryRequest) { r.Lines[1].AccountCode = "abc" }, "accountCode must be numeric"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := suite.paidRequest()
			tt.mutate(&req)

			_, err := suite.service.PostEntry(context.Background(), req, suite.userID)

			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Contains(err.Error(), tt.wantMsg)
		})
	}
	suite.mockLedger.AssertNotCalled(suite.T(), "PostJournalEntry", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEntry_UnbalancedIsNotRetried() {
	debit, credit := decimal.NewFromInt(100), decimal.NewFromInt(90)
	rejection := &domain.PostRejection{Code: domain.RejectUnbalanced, StatusCode: 422, Message: "not balanced", TotalDebit: &debit, TotalCredit: &credit}
	suite.mockLedger.On("PostJournalEntry", mock.Anything, mock.Anything).Return(nil, rejection).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.MatchedBy(func(a domain.PostingAttempt) bool {
		return a.State == domain.PostingFailed && a.Outcome == "rejected"
	})).Return(nil).Once()

	_, err := suite.service.PostEntry(context.Background(), suite.paidRequest(), suite.userID)

	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	var got *domain.PostRejection
	suite.Require().True(errors.As(err, &got))
	suite.True(debit.Equal(*got.TotalDebit))
	suite.mockLedger.AssertNumberOfCalls(suite.T(), "PostJournalEntry", 1)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEntry_TransportErrorIsNotRetried() {
	suite.mockLedger.On("PostJournalEntry", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: request failed: connection refused", apperrors.ErrUpstream)).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.MatchedBy(func(a domain.PostingAttempt) bool {
		return a.Outcome == "error" && a.Message != ""
	})).Return(nil).Once()

	_, err := suite.service.PostEntry(context.Background(), suite.paidRequest(), suite.userID)

	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.mockLedger.AssertNumberOfCalls(suite.T(), "PostJournalEntry", 1)
}

func (suite *PostingServiceTestSuite) TestPostEntry_AuditFailureDoesNotFailPosting() {
	suite.mockLedger.On("PostJournalEntry", mock.Anything, mock.Anything).Return(postedEntry("je-6", "HD001"), nil).Once()
	suite.mockAudit.On("SavePostingAttempt", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	result, err := suite.service.PostEntry(context.Background(), suite.paidRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("je-6", result.Entry.ID)
}

func (suite *PostingServiceTestSuite) TestListAttempts_ClampsLimit() {
	next := "cursor-2"
	suite.mockAudit.On("ListPostingAttempts", mock.Anything, portsrepo.ListAttemptsParams{Limit: 50}).
		Return(nil, nil, nil).Once()
	suite.mockAudit.On("ListPostingAttempts", mock.Anything, mock.MatchedBy(func(p portsrepo.ListAttemptsParams) bool {
		return p.ReferenceNo == "HD001" && p.Limit == 200 && p.NextToken != nil && *p.NextToken == "cursor-1"
	})).Return([]domain.PostingAttempt{{AttemptID: "a-1"}}, &next, nil).Once()

	empty, emptyNext, err := suite.service.ListAttempts(context.Background(), portsrepo.ListAttemptsParams{})
	suite.Require().NoError(err)
	suite.NotNil(empty)
	suite.Empty(empty)
	suite.Nil(emptyNext)

	cursor := "cursor-1"
	attempts, gotNext, err := suite.service.ListAttempts(context.Background(), portsrepo.ListAttemptsParams{
		ReferenceNo: " HD001 ",
		Limit:       1000,
		NextToken:   &cursor,
	})
	suite.Require().NoError(err)
	suite.Len(attempts, 1)
	suite.Require().NotNil(gotNext)
	suite.Equal("cursor-2", *gotNext)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestListAttempts_StoreFailure() {
	suite.mockAudit.On("ListPostingAttempts", mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("connection reset")).Once()

	_, _, err := suite.service.ListAttempts(context.Background(), portsrepo.ListAttemptsParams{})

	suite.Error(err)
}

func TestPostingService_WithoutAuditRepository(t *testing.T) {
	ledger := new(MockLedgerRepository)
	ledger.On("PostJournalEntry", mock.Anything, mock.Anything).Return(postedEntry("je-7", "HD001"), nil).Once()
	svc := services.NewPostingService(ledger)

	req := domain.PostEntryRequest{
		Date:          domain.NewDate(2024, 6, 15),
		ReferenceNo:   "HD001",
		Memo:          "Bán rau",
		PaymentStatus: domain.Paid,
		Lines: []domain.JournalLine{
			{AccountCode: "1111", Debit: decimal.NewFromInt(10)},
			{AccountCode: "5111", Credit: decimal.NewFromInt(10)},
		},
	}
	result, err := svc.PostEntry(context.Background(), req, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Entry.ID != "je-7" {
		t.Fatalf("unexpected entry %q", result.Entry.ID)
	}

	attempts, _, err := svc.ListAttempts(context.Background(), portsrepo.ListAttemptsParams{Limit: 10})
	if err != nil || len(attempts) != 0 {
		t.Fatalf("expected no recorded attempts, got %v, %v", attempts, err)
	}
}
