package repositories

import (
	"context"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

// ListAttemptsParams filters and pages the posting audit log.
type ListAttemptsParams struct {
	ReferenceNo string // Empty lists attempts for every reference
	Limit       int
	NextToken   *string
}

// PostingAuditRepository persists the submissions made by the duplicate-safe poster.
type PostingAuditRepository interface {
	// SavePostingAttempt records one submission and its outcome.
	SavePostingAttempt(ctx context.Context, attempt domain.PostingAttempt) error

	// ListPostingAttempts returns one page of attempts, newest first, and the token of the next page.
	ListPostingAttempts(ctx context.Context, params ListAttemptsParams) ([]domain.PostingAttempt, *string, error)
}
