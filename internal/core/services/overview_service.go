package services

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
)

// overviewService implements the OverviewSvc interface
type overviewService struct {
	BaseService
	ledgerView portssvc.LedgerViewSvc
	aging      portssvc.AgingSvc
}

// NewOverviewService creates a service that loads every accounting view at once.
func NewOverviewService(ledgerView portssvc.LedgerViewSvc, aging portssvc.AgingSvc) portssvc.OverviewSvc {
	return &overviewService{ledgerView: ledgerView, aging: aging}
}

var _ portssvc.OverviewSvc = (*overviewService)(nil)

// Overview runs the three queries concurrently. A failing view falls back to its empty state
// without affecting the others.
func (s *overviewService) Overview(ctx context.Context) *domain.Overview {
	var (
		page                        *domain.TransactionPage
		stats                       domain.LedgerStatistics
		aging                       domain.AgingResult
		pageErr, statsErr, agingErr error
	)

	// Goroutines never return errors so one failure cannot cancel the others.
	var g errgroup.Group
	g.Go(func() error {
		page, pageErr = s.ledgerView.ListTransactions(ctx, portsrepo.ListEntriesParams{})
		return nil
	})
	g.Go(func() error {
		stats, statsErr = s.ledgerView.Statistics(ctx)
		return nil
	})
	g.Go(func() error {
		aging, agingErr = s.aging.Aging(ctx)
		return nil
	})
	_ = g.Wait()

	overview := &domain.Overview{
		Transactions: domain.TransactionPage{Transactions: []domain.ClassifiedTransaction{}},
		Statistics:   domain.ZeroStatistics(),
		Aging:        domain.NewAgingResult(domain.AgingSourceNone),
	}
	failures := map[string]string{}

	if pageErr != nil {
		failures[domain.ViewTransactions] = pageErr.Error()
	} else if page != nil {
		overview.Transactions = *page
	}
	if statsErr != nil {
		failures[domain.ViewStatistics] = statsErr.Error()
	} else {
		overview.Statistics = stats
	}
	if agingErr != nil {
		failures[domain.ViewAging] = agingErr.Error()
	} else {
		overview.Aging = aging
	}

	if len(failures) > 0 {
		overview.Errors = failures
		s.LogWarn(ctx, "Overview loaded with failed views", slog.Int("failed", len(failures)))
	}
	return overview
}
