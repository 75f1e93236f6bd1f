package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/organic_store_accounting/internal/apperrors"
)

// PostEntryRequest is the posting form input for one balanced draft entry.
type PostEntryRequest struct {
	Date          Date          `json:"date" validate:"required"`
	ReferenceNo   string        `json:"referenceNo" validate:"required,max=64"`
	Memo          string        `json:"memo" validate:"max=500"`
	Kind          EntryKind     `json:"kind,omitempty" validate:"omitempty,oneof=receipt payment sale purchase expense"`
	PaymentStatus PaymentStatus `json:"paymentStatus" validate:"required,oneof=paid unpaid"`
	PartnerName   string        `json:"partnerName,omitempty" validate:"required_if=PaymentStatus unpaid,max=200"`
	PartnerPhone  string        `json:"partnerPhone,omitempty" validate:"max=20"`
	DueDate       *Date         `json:"dueDate,omitempty" validate:"required_if=PaymentStatus unpaid"`
	Lines         []JournalLine `json:"lines" validate:"min=2,dive"`
}

// PostEntryPayload is the body sent to the ledger API.
// Partner fields are only carried for unpaid entries.
type PostEntryPayload struct {
	Date          Date          `json:"date"`
	ReferenceNo   string        `json:"referenceNo"`
	Memo          string        `json:"memo"`
	Kind          EntryKind     `json:"kind,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PartnerName   string        `json:"partnerName,omitempty"`
	PartnerPhone  string        `json:"partnerPhone,omitempty"`
	DueDate       *Date         `json:"dueDate,omitempty"`
	Lines         []JournalLine `json:"lines"`
}

// ReplacedReference records a reference number swapped after a collision.
type ReplacedReference struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}

// PostResult is returned after a successful post.
type PostResult struct {
	Entry             JournalEntry       `json:"entry"`
	ReplacedReference *ReplacedReference `json:"replacedReference,omitempty"`
	Attempts          int                `json:"attempts"`
}

// PostingState is a state of the duplicate-safe posting machine.
type PostingState string

const (
	PostingIdle            PostingState = "idle"
	PostingSubmitted       PostingState = "submitted"
	PostingConflictRetried PostingState = "conflict_retried"
	PostingSucceeded       PostingState = "succeeded"
	PostingFailed          PostingState = "failed"
)

// IsTerminal reports whether no further submission can follow.
func (s PostingState) IsTerminal() bool {
	return s == PostingSucceeded || s == PostingFailed
}

// RejectionCode is the typed reason the ledger API refused an entry.
type RejectionCode string

const (
	RejectDuplicateReference RejectionCode = "DUPLICATE_REFERENCE"
	RejectUnbalanced         RejectionCode = "UNBALANCED"
	RejectMissingAccount     RejectionCode = "MISSING_ACCOUNT"
	RejectInvalid            RejectionCode = "INVALID"
	RejectUnknown            RejectionCode = "UNKNOWN"
)

// PostRejection is a refusal from the ledger API, with the structured hints it supplied.
type PostRejection struct {
	Code           RejectionCode    `json:"code"`
	StatusCode     int              `json:"-"`
	Message        string           `json:"message"`
	MissingAccount string           `json:"missingAccount,omitempty"`
	Suggestion     string           `json:"suggestion,omitempty"`
	TotalDebit     *decimal.Decimal `json:"totalDebit,omitempty"`
	TotalCredit    *decimal.Decimal `json:"totalCredit,omitempty"`
}

func (r *PostRejection) Error() string {
	return fmt.Sprintf("ledger rejected entry (%s): %s", r.Code, r.Message)
}

// Unwrap maps the rejection onto the application error taxonomy.
func (r *PostRejection) Unwrap() error {
	switch r.Code {
	case RejectDuplicateReference:
		return apperrors.ErrDuplicateReference
	case RejectUnbalanced:
		return apperrors.ErrUnbalanced
	case RejectMissingAccount:
		return apperrors.ErrAccountSetup
	case RejectInvalid:
		return apperrors.ErrValidation
	default:
		return apperrors.ErrUpstream
	}
}

// PostingAttempt is one submission recorded in the posting audit log.
type PostingAttempt struct {
	AttemptID   string       `json:"attemptId"`
	ReferenceNo string       `json:"referenceNo"`
	AttemptNo   int          `json:"attemptNo"`
	State       PostingState `json:"state"`   // State after the attempt's outcome was applied
	Outcome     string       `json:"outcome"` // accepted, duplicate_reference, rejected
	Message     string       `json:"message,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	CreatedBy   string       `json:"createdBy"`
}
