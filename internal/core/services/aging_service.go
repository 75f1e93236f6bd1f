package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/organic_store_accounting/internal/core/accounting"
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
	"github.com/SscSPs/organic_store_accounting/internal/metrics"
)

// agingService implements the AgingSvc interface
type agingService struct {
	BaseService
	receivableRepo portsrepo.ReceivableReader
	location       *time.Location
}

// AgingServiceOption is a functional option for configuring the aging service
type AgingServiceOption func(*agingService)

// WithBusinessLocation sets the timezone whose calendar day counts as today.
func WithBusinessLocation(loc *time.Location) AgingServiceOption {
	return func(s *agingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithAgingClock overrides the wall clock.
func WithAgingClock(clock func() time.Time) AgingServiceOption {
	return func(s *agingService) {
		s.clock = clock
	}
}

// NewAgingService creates a new aging service with the provided options
func NewAgingService(repo portsrepo.ReceivableReader, options ...AgingServiceOption) portssvc.AgingSvc {
	svc := &agingService{
		receivableRepo: repo,
		location:       time.UTC,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AgingSvc = (*agingService)(nil)

// Aging ages receivables as of today in the business timezone.
func (s *agingService) Aging(ctx context.Context) (domain.AgingResult, error) {
	y, m, d := s.Now().In(s.location).Date()
	return s.AgingAsOf(ctx, domain.NewDate(y, m, d))
}

// AgingAsOf uses the remote report when it is usable and otherwise recomputes from the receivable list.
// A failed report fetch counts as no report. When receivables cannot be loaded either, an empty result
// with source "none" is returned together with the error.
func (s *agingService) AgingAsOf(ctx context.Context, today domain.Date) (domain.AgingResult, error) {
	report, err := s.receivableRepo.GetAgingReport(ctx)
	if err != nil {
		s.LogWarn(ctx, "Aging report unavailable, recomputing locally", slog.String("error", err.Error()))
		report = nil
	}

	if accounting.UsableReport(report) {
		result := accounting.ResolveAging(report, nil, today.Time, s.location)
		s.record(ctx, result)
		return result, nil
	}
	if report != nil {
		s.LogWarn(ctx, "Aging report is empty or incomplete, recomputing locally")
	}

	receivables, err := s.receivableRepo.ListReceivables(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receivables for aging")
		result := domain.NewAgingResult(domain.AgingSourceNone)
		s.record(ctx, result)
		return result, fmt.Errorf("failed to list receivables: %w", err)
	}

	result := accounting.AgeReceivables(receivables, today.Time, s.location)
	if len(result.Unaged) > 0 {
		s.LogWarn(ctx, "Open receivables without any date were not aged", slog.Int("count", len(result.Unaged)))
	}
	s.record(ctx, result)
	return result, nil
}

func (s *agingService) record(ctx context.Context, result domain.AgingResult) {
	metrics.AgingSourceTotal.WithLabelValues(string(result.Source)).Inc()
	s.LogDebug(ctx, "Aging computed",
		slog.String("source", string(result.Source)),
		slog.String("total_outstanding", result.TotalOutstanding.String()))
}
