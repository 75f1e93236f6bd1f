package services

import (
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
	"github.com/SscSPs/organic_store_accounting/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.LedgerView = NewLedgerViewService(repos.Ledger, WithPageLimit(cfg.LedgerQueryLimit))
	container.Aging = NewAgingService(repos.Ledger, WithBusinessLocation(cfg.BusinessLocation))
	container.Overview = NewOverviewService(container.LedgerView, container.Aging)
	container.Posting = NewPostingService(repos.Ledger, WithPostingAudit(repos.PostingAudit))
	container.Chart = NewChartService()

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerViewSvc = (*ledgerViewService)(nil)
	_ portssvc.AgingSvc      = (*agingService)(nil)
	_ portssvc.OverviewSvc   = (*overviewService)(nil)
	_ portssvc.PostingSvc    = (*postingService)(nil)
	_ portssvc.ChartSvc      = chartService{}
)
