package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) ListJournalEntries(ctx context.Context, params portsrepo.ListEntriesParams) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		next = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockLedgerRepository) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receivable), args.Error(1)
}

func (m *MockLedgerRepository) GetAgingReport(ctx context.Context) (*domain.AgingReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgingReport), args.Error(1)
}

func (m *MockLedgerRepository) PostJournalEntry(ctx context.Context, payload domain.PostEntryPayload) (*domain.JournalEntry, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock PostingAuditRepository ---
type MockPostingAuditRepository struct {
	mock.Mock
}

var _ portsrepo.PostingAuditRepository = (*MockPostingAuditRepository)(nil)

func (m *MockPostingAuditRepository) SavePostingAttempt(ctx context.Context, attempt domain.PostingAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockPostingAuditRepository) ListPostingAttempts(ctx context.Context, params portsrepo.ListAttemptsParams) ([]domain.PostingAttempt, *string, error) {
	args := m.Called(ctx, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.PostingAttempt), next, args.Error(2)
}
