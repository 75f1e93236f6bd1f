package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

// JournalLineRequest is one debit or credit line of a new entry.
type JournalLineRequest struct {
	AccountCode string          `json:"accountCode" example:"5111"`
	Debit       decimal.Decimal `json:"debit" swaggertype:"string" example:"0"`
	Credit      decimal.Decimal `json:"credit" swaggertype:"string" example:"150000"`
	Description string          `json:"description,omitempty"`
}

// CreateEntryRequest is the posting form body.
type CreateEntryRequest struct {
	Date          domain.Date          `json:"date" swaggertype:"string" example:"2024-06-15"`
	ReferenceNo   string               `json:"referenceNo" example:"HD001"`
	Memo          string               `json:"memo" example:"Bán rau hữu cơ"`
	Kind          string               `json:"kind,omitempty" example:"sale"`
	PaymentStatus string               `json:"paymentStatus" example:"unpaid"`
	PartnerName   string               `json:"partnerName,omitempty" example:"Cửa hàng Xanh"`
	PartnerPhone  string               `json:"partnerPhone,omitempty" example:"0901234567"`
	DueDate       *domain.Date         `json:"dueDate,omitempty" swaggertype:"string" example:"2024-07-15"`
	Lines         []JournalLineRequest `json:"lines"`
}

// ToDomain converts the request body into the posting service input.
func (r CreateEntryRequest) ToDomain() domain.PostEntryRequest {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLine{
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return domain.PostEntryRequest{
		Date:          r.Date,
		ReferenceNo:   r.ReferenceNo,
		Memo:          r.Memo,
		Kind:          domain.EntryKind(r.Kind),
		PaymentStatus: domain.PaymentStatus(r.PaymentStatus),
		PartnerName:   r.PartnerName,
		PartnerPhone:  r.PartnerPhone,
		DueDate:       r.DueDate,
		Lines:         lines,
	}
}

// JournalLineResponse is one line of a posted entry.
type JournalLineResponse struct {
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// JournalEntryResponse is a posted journal entry.
type JournalEntryResponse struct {
	ID          string                `json:"id"`
	Date        string                `json:"date"`
	ReferenceNo string                `json:"referenceNo"`
	Memo        string                `json:"memo"`
	Status      string                `json:"status"`
	Lines       []JournalLineResponse `json:"lines"`
}

// ReplacedReferenceResponse tells the operator which reference was actually used.
type ReplacedReferenceResponse struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}

// CreateEntryResponse is returned after a successful post, with the views refreshed.
type CreateEntryResponse struct {
	Entry             JournalEntryResponse       `json:"entry"`
	ReplacedReference *ReplacedReferenceResponse `json:"replacedReference,omitempty"`
	Attempts          int                        `json:"attempts"`
	Overview          *OverviewResponse          `json:"overview,omitempty"`
}

// PostingErrorResponse carries a refusal and the hints the ledger supplied.
type PostingErrorResponse struct {
	Error          string           `json:"error"`
	Code           string           `json:"code,omitempty"`
	MissingAccount string           `json:"missingAccount,omitempty"`
	Suggestion     string           `json:"suggestion,omitempty"`
	TotalDebit     *decimal.Decimal `json:"totalDebit,omitempty"`
	TotalCredit    *decimal.Decimal `json:"totalCredit,omitempty"`
}

// PostingAttemptResponse is one audited submission.
type PostingAttemptResponse struct {
	AttemptID   string    `json:"attemptID"`
	ReferenceNo string    `json:"referenceNo"`
	AttemptNo   int       `json:"attemptNo"`
	State       string    `json:"state"`
	Outcome     string    `json:"outcome"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// ListPostingAttemptsParams are the query parameters of the posting audit listing.
type ListPostingAttemptsParams struct {
	ReferenceNo string `form:"referenceNo"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken   string `form:"nextToken"`
}

// ListPostingAttemptsResponse is one page of the posting audit log.
type ListPostingAttemptsResponse struct {
	Attempts  []PostingAttemptResponse `json:"attempts"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a posted entry.
func ToJournalEntryResponse(e domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse(l)
	}
	return JournalEntryResponse{
		ID:          e.ID,
		Date:        e.Date.String(),
		ReferenceNo: e.ReferenceNo,
		Memo:        e.Memo,
		Status:      string(e.Status),
		Lines:       lines,
	}
}

// ToCreateEntryResponse converts a post result, attaching the refreshed overview when given.
func ToCreateEntryResponse(result *domain.PostResult, overview *domain.Overview) CreateEntryResponse {
	resp := CreateEntryResponse{
		Entry:    ToJournalEntryResponse(result.Entry),
		Attempts: result.Attempts,
	}
	if result.ReplacedReference != nil {
		resp.ReplacedReference = &ReplacedReferenceResponse{
			Original:    result.ReplacedReference.Original,
			Replacement: result.ReplacedReference.Replacement,
		}
	}
	if overview != nil {
		ov := ToOverviewResponse(overview)
		resp.Overview = &ov
	}
	return resp
}

// ToPostingErrorResponse converts a ledger refusal.
func ToPostingErrorResponse(r *domain.PostRejection) PostingErrorResponse {
	return PostingErrorResponse{
		Error:          r.Message,
		Code:           string(r.Code),
		MissingAccount: r.MissingAccount,
		Suggestion:     r.Suggestion,
		TotalDebit:     r.TotalDebit,
		TotalCredit:    r.TotalCredit,
	}
}

// ToListPostingAttemptsResponse converts one page of audited submissions.
func ToListPostingAttemptsResponse(attempts []domain.PostingAttempt, next *string) ListPostingAttemptsResponse {
	return ListPostingAttemptsResponse{Attempts: ToPostingAttemptResponses(attempts), NextToken: next}
}

// ToPostingAttemptResponses converts audited submissions.
func ToPostingAttemptResponses(attempts []domain.PostingAttempt) []PostingAttemptResponse {
	resp := make([]PostingAttemptResponse, len(attempts))
	for i, a := range attempts {
		resp[i] = PostingAttemptResponse{
			AttemptID:   a.AttemptID,
			ReferenceNo: a.ReferenceNo,
			AttemptNo:   a.AttemptNo,
			State:       string(a.State),
			Outcome:     a.Outcome,
			Message:     a.Message,
			CreatedAt:   a.CreatedAt,
			CreatedBy:   a.CreatedBy,
		}
	}
	return resp
}
