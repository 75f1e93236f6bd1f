package services

import (
	"context"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
)

// LedgerViewSvc derives the transaction grid and the summary statistics from the ledger.
type LedgerViewSvc interface {
	// ListTransactions classifies one page of posted journal entries.
	ListTransactions(ctx context.Context, params portsrepo.ListEntriesParams) (*domain.TransactionPage, error)

	// Statistics aggregates every posted entry. On failure it returns zeroed statistics alongside the error.
	Statistics(ctx context.Context) (domain.LedgerStatistics, error)
}

// AgingSvc produces the receivables aging panel.
type AgingSvc interface {
	// Aging prefers a usable remote report and otherwise recomputes locally as of today in the business timezone.
	Aging(ctx context.Context) (domain.AgingResult, error)

	// AgingAsOf is Aging with an explicit reference day.
	AgingAsOf(ctx context.Context, today domain.Date) (domain.AgingResult, error)
}

// OverviewSvc loads all three views concurrently.
type OverviewSvc interface {
	Overview(ctx context.Context) *domain.Overview
}

// ChartSvc exposes the account-code families the classifier understands.
type ChartSvc interface {
	ChartOfAccounts() []domain.ChartFamily
}
