package services

// ServiceContainer holds instances of all the application services.
// It is the main entry point for handlers and CLI commands.
type ServiceContainer struct {
	LedgerView LedgerViewSvc
	Aging      AgingSvc
	Overview   OverviewSvc
	Posting    PostingSvc
	Chart      ChartSvc
}
