package domain

import (
	"github.com/shopspring/decimal"
)

// EntryStatus indicates whether a journal entry is still a draft or has been posted.
type EntryStatus string

const (
	EntryDraft  EntryStatus = "draft"
	EntryPosted EntryStatus = "posted"
)

// EntryKind is the optional business kind a producer declares on an entry.
// Producers do not agree on it, so classification never depends on it alone.
type EntryKind string

const (
	KindReceipt  EntryKind = "receipt"
	KindPayment  EntryKind = "payment"
	KindSale     EntryKind = "sale"
	KindPurchase EntryKind = "purchase"
	KindExpense  EntryKind = "expense"
)

// JournalLine is one debit or credit line of a journal entry, tagged with a chart-of-accounts code.
type JournalLine struct {
	AccountCode string          `json:"accountCode" validate:"required,numeric,max=20"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty" validate:"max=500"`
}

// JournalEntry is a double-entry bookkeeping record as returned by the ledger API.
// Posted entries are immutable and assumed balanced upstream.
type JournalEntry struct {
	ID          string        `json:"id"`
	Date        Date          `json:"date"`        // Business date, not posting date
	ReferenceNo string        `json:"referenceNo"` // Unique on the ledger side
	Memo        string        `json:"memo"`
	Status      EntryStatus   `json:"status"`
	Kind        EntryKind     `json:"kind,omitempty"`
	SourceType  string        `json:"sourceType,omitempty"` // e.g. "order"
	SourceID    string        `json:"sourceId,omitempty"`
	Lines       []JournalLine `json:"lines"`
}

// IsPosted reports whether the entry has been posted.
func (e JournalEntry) IsPosted() bool {
	return e.Status == EntryPosted
}

// HasAccount reports whether any line uses exactly the given account code.
func (e JournalEntry) HasAccount(code string) bool {
	for _, line := range e.Lines {
		if line.AccountCode == code {
			return true
		}
	}
	return false
}

// Totals sums debits and credits across all lines.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, line := range e.Lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit, credit
}
