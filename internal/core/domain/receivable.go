package domain

import (
	"github.com/shopspring/decimal"
)

// ReceivableStatus is the settlement state of an open customer balance.
type ReceivableStatus string

const (
	ReceivableUnpaid  ReceivableStatus = "unpaid"
	ReceivablePartial ReceivableStatus = "partial"
	ReceivablePaid    ReceivableStatus = "paid"
)

// Receivable is an open customer balance linked to the journal entry that created it.
type Receivable struct {
	ID              string           `json:"id"`
	JournalEntryID  string           `json:"journalEntryId,omitempty"`
	ReferenceNo     string           `json:"referenceNo,omitempty"`
	PartnerName     string           `json:"partnerName,omitempty"`
	PartnerPhone    string           `json:"partnerPhone,omitempty"`
	OriginalAmount  decimal.Decimal  `json:"originalAmount"`
	RemainingAmount decimal.Decimal  `json:"remainingAmount"` // Never above OriginalAmount
	DueDate         Date             `json:"dueDate"`         // Derived when absent
	InvoiceDate     Date             `json:"invoiceDate"`
	CreatedAt       Date             `json:"createdAt"`
	PaymentStatus   ReceivableStatus `json:"paymentStatus"`
}

// IsOpen reports whether the receivable still carries a balance to age.
func (r Receivable) IsOpen() bool {
	return r.RemainingAmount.IsPositive() && r.PaymentStatus != ReceivablePaid
}
