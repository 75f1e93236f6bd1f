package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	"github.com/SscSPs/organic_store_accounting/internal/core/services"
)

func openReceivable(id string, remaining int64, due domain.Date) domain.Receivable {
	return domain.Receivable{
		ID:              id,
		OriginalAmount:  decimal.NewFromInt(remaining),
		RemainingAmount: decimal.NewFromInt(remaining),
		DueDate:         due,
		PaymentStatus:   domain.ReceivableUnpaid,
	}
}

func zeroReport() *domain.AgingReport {
	zero := decimal.Zero
	return &domain.AgingReport{Summary: domain.AgingSummary{
		Current: &zero, Overdue1To30: &zero, Overdue31To60: &zero, Overdue61To90: &zero, Overdue90Plus: &zero,
	}}
}

func TestAging_UsesBusinessTimezoneForToday(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*3600)
	// 2024-06-14 18:00 UTC is already 2024-06-15 01:00 in the business timezone.
	clock := func() time.Time { return time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC) }

	repo := new(MockLedgerRepository)
	repo.On("GetAgingReport", mock.Anything).Return(zeroReport(), nil).Once()
	repo.On("ListReceivables", mock.Anything).Return([]domain.Receivable{
		openReceivable("r-1", 200, domain.NewDate(2024, 5, 15)),
	}, nil).Once()
	svc := services.NewAgingService(repo, services.WithBusinessLocation(hcm), services.WithAgingClock(clock))

	result, err := svc.Aging(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.AgingSourceLocal, result.Source)
	require.Len(t, result.Members[domain.BucketOverdue31To60], 1)
	assert.Equal(t, 31, result.Members[domain.BucketOverdue31To60][0].DaysOverdue)
	repo.AssertExpectations(t)
}

func TestAging_UsableRemoteReportSkipsReceivables(t *testing.T) {
	total := decimal.NewFromInt(500)
	report := &domain.AgingReport{Summary: domain.AgingSummary{Current: &total}}

	repo := new(MockLedgerRepository)
	repo.On("GetAgingReport", mock.Anything).Return(report, nil).Once()
	svc := services.NewAgingService(repo)

	result, err := svc.AgingAsOf(context.Background(), domain.NewDate(2024, 6, 15))

	require.NoError(t, err)
	assert.Equal(t, domain.AgingSourceRemote, result.Source)
	assert.True(t, total.Equal(result.TotalOutstanding))
	repo.AssertNotCalled(t, "ListReceivables", mock.Anything)
}

func TestAging_ReportFailureFallsBackToLocal(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("GetAgingReport", mock.Anything).Return(nil, errors.New("boom")).Once()
	repo.On("ListReceivables", mock.Anything).Return([]domain.Receivable{
		openReceivable("r-1", 75, domain.NewDate(2024, 6, 20)),
	}, nil).Once()
	svc := services.NewAgingService(repo)

	result, err := svc.AgingAsOf(context.Background(), domain.NewDate(2024, 6, 15))

	require.NoError(t, err)
	assert.Equal(t, domain.AgingSourceLocal, result.Source)
	assert.True(t, decimal.NewFromInt(75).Equal(result.Summary[domain.BucketCurrent].Total))
}

func TestAging_EverythingFails(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("GetAgingReport", mock.Anything).Return(nil, errors.New("boom")).Once()
	repo.On("ListReceivables", mock.Anything).Return(nil, errors.New("still boom")).Once()
	svc := services.NewAgingService(repo)

	result, err := svc.AgingAsOf(context.Background(), domain.NewDate(2024, 6, 15))

	require.Error(t, err)
	assert.Equal(t, domain.AgingSourceNone, result.Source)
	for _, bucket := range domain.AgingBuckets {
		assert.True(t, result.Summary[bucket].Total.IsZero())
		assert.NotNil(t, result.Members[bucket])
	}
}
