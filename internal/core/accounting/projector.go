package accounting

import (
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

// Project classifies a batch of journal entries into grid rows, preserving input order.
// The returned slice is always new and never nil.
func Project(entries []domain.JournalEntry) []domain.ClassifiedTransaction {
	rows := make([]domain.ClassifiedTransaction, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, domain.ClassifiedTransaction{
			EntryID:        entry.ID,
			Date:           entry.Date,
			ReferenceNo:    entry.ReferenceNo,
			Memo:           entry.Memo,
			Status:         entry.Status,
			Classification: Classify(entry),
		})
	}
	return rows
}
