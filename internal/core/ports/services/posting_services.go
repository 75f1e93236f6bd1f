package services

import (
	"context"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
)

// PostingSvc submits new journal entries, retrying once with a fresh reference on a collision.
type PostingSvc interface {
	// PostEntry validates the request and submits it. No network call is made when validation fails.
	PostEntry(ctx context.Context, req domain.PostEntryRequest, userID string) (*domain.PostResult, error)

	// ListAttempts returns one page of recorded submissions, newest first, and the next page token.
	ListAttempts(ctx context.Context, params portsrepo.ListAttemptsParams) ([]domain.PostingAttempt, *string, error)
}
