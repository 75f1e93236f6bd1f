package repositories

import (
	"context"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

// ListEntriesParams pages through journal entries on the ledger API.
type ListEntriesParams struct {
	Limit     int
	Status    domain.EntryStatus // Empty means every status
	NextToken *string
}

// LedgerReader defines read operations for journal entries held by the ledger API.
type LedgerReader interface {
	// ListJournalEntries returns one page of entries and an opaque token for the next page, or nil at the end.
	ListJournalEntries(ctx context.Context, params ListEntriesParams) ([]domain.JournalEntry, *string, error)
}

// ReceivableReader defines read operations for open customer balances.
type ReceivableReader interface {
	// ListReceivables returns every receivable the ledger API knows about.
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)

	// GetAgingReport returns the precomputed aging report. It may be structurally incomplete;
	// callers decide whether it is usable.
	GetAgingReport(ctx context.Context) (*domain.AgingReport, error)
}

// LedgerWriter defines write operations against the ledger API.
type LedgerWriter interface {
	// PostJournalEntry submits a balanced entry. Refusals are returned as *domain.PostRejection.
	PostJournalEntry(ctx context.Context, payload domain.PostEntryPayload) (*domain.JournalEntry, error)
}

// LedgerRepositoryFacade combines all ledger API operations.
type LedgerRepositoryFacade interface {
	LedgerReader
	ReceivableReader
	LedgerWriter
}
