package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/organic_store_accounting/internal/core/accounting"
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
)

const (
	defaultLedgerPageLimit = 500
	defaultLedgerMaxPages  = 100
)

// ledgerViewService implements the LedgerViewSvc interface
type ledgerViewService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
	pageLimit  int
	maxPages   int
}

// LedgerViewServiceOption is a functional option for configuring the ledger view service
type LedgerViewServiceOption func(*ledgerViewService)

// WithPageLimit sets how many entries are requested per ledger API page.
func WithPageLimit(limit int) LedgerViewServiceOption {
	return func(s *ledgerViewService) {
		if limit > 0 {
			s.pageLimit = limit
		}
	}
}

// WithMaxPages bounds how many pages Statistics walks.
func WithMaxPages(pages int) LedgerViewServiceOption {
	return func(s *ledgerViewService) {
		if pages > 0 {
			s.maxPages = pages
		}
	}
}

// NewLedgerViewService creates a new ledger view service with the provided options
func NewLedgerViewService(repo portsrepo.LedgerReader, options ...LedgerViewServiceOption) portssvc.LedgerViewSvc {
	svc := &ledgerViewService{
		ledgerRepo: repo,
		pageLimit:  defaultLedgerPageLimit,
		maxPages:   defaultLedgerMaxPages,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerViewSvc = (*ledgerViewService)(nil)

// ListTransactions classifies one page of journal entries. Posted entries are listed unless
// params asks for another status.
func (s *ledgerViewService) ListTransactions(ctx context.Context, params portsrepo.ListEntriesParams) (*domain.TransactionPage, error) {
	if params.Limit <= 0 || params.Limit > s.pageLimit {
		params.Limit = s.pageLimit
	}
	if params.Status == "" {
		params.Status = domain.EntryPosted
	}

	entries, next, err := s.ledgerRepo.ListJournalEntries(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.Int("limit", params.Limit))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	page := &domain.TransactionPage{
		Transactions: accounting.Project(entries),
		NextToken:    next,
	}
	s.LogDebug(ctx, "Classified journal entries", slog.Int("count", len(page.Transactions)))
	return page, nil
}

// Statistics walks every page of posted entries and aggregates them.
// Any failure yields zeroed statistics together with the error.
func (s *ledgerViewService) Statistics(ctx context.Context) (domain.LedgerStatistics, error) {
	params := portsrepo.ListEntriesParams{Limit: s.pageLimit, Status: domain.EntryPosted}
	var all []domain.JournalEntry

	for page := 0; ; page++ {
		if page == s.maxPages {
			s.LogWarn(ctx, "Statistics stopped at page limit; totals cover a prefix of the ledger",
				slog.Int("max_pages", s.maxPages),
				slog.Int("entries", len(all)))
			break
		}

		entries, next, err := s.ledgerRepo.ListJournalEntries(ctx, params)
		if err != nil {
			s.LogError(ctx, err, "Failed to load journal entries for statistics", slog.Int("page", page))
			return domain.ZeroStatistics(), fmt.Errorf("failed to load journal entries for statistics: %w", err)
		}
		all = append(all, entries...)
		if next == nil {
			break
		}
		params.NextToken = next
	}

	stats := accounting.Aggregate(all)
	s.LogInfo(ctx, "Ledger statistics computed",
		slog.Int("entries", len(all)),
		slog.String("total_income", stats.TotalIncome.String()),
		slog.String("total_expense", stats.TotalExpense.String()))
	return stats, nil
}
