package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

// ListTransactionsParams are the query parameters of the transaction grid.
type ListTransactionsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse is one row of the classified transaction grid.
type TransactionResponse struct {
	EntryID       string          `json:"entryID"`
	Date          string          `json:"date"`
	ReferenceNo   string          `json:"referenceNo"`
	Memo          string          `json:"memo"`
	Status        string          `json:"status"`
	Type          string          `json:"type"` // income or expense
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	SignedAmount  decimal.Decimal `json:"signedAmount"`
	PaymentStatus string          `json:"paymentStatus"`
}

// ListTransactionsResponse is one page of the transaction grid.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// StatisticsResponse holds the summary card figures.
type StatisticsResponse struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// ReceivableResponse is an open customer balance.
type ReceivableResponse struct {
	ID              string          `json:"id"`
	JournalEntryID  string          `json:"journalEntryID,omitempty"`
	ReferenceNo     string          `json:"referenceNo,omitempty"`
	PartnerName     string          `json:"partnerName,omitempty"`
	PartnerPhone    string          `json:"partnerPhone,omitempty"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	DueDate         string          `json:"dueDate,omitempty"`
	PaymentStatus   string          `json:"paymentStatus"`
}

// AgedReceivableResponse is a receivable with its lateness.
type AgedReceivableResponse struct {
	ReceivableResponse
	EffectiveDueDate string `json:"effectiveDueDate,omitempty"`
	DaysOverdue      int    `json:"daysOverdue"`
}

// AgingBucketResponse is one aging bucket with its members.
type AgingBucketResponse struct {
	Bucket      string                   `json:"bucket"`
	Total       decimal.Decimal          `json:"total"`
	Count       int                      `json:"count"`
	Receivables []AgedReceivableResponse `json:"receivables"`
}

// AgingResponse is the aging panel. Buckets are listed in display order.
type AgingResponse struct {
	Source           string                `json:"source"` // remote, local or none
	Buckets          []AgingBucketResponse `json:"buckets"`
	TotalOutstanding decimal.Decimal       `json:"totalOutstanding"`
	Unaged           []ReceivableResponse  `json:"unaged,omitempty"`
}

// OverviewResponse bundles the three accounting views.
type OverviewResponse struct {
	Transactions ListTransactionsResponse `json:"transactions"`
	Statistics   StatisticsResponse       `json:"statistics"`
	Aging        AgingResponse            `json:"aging"`
	Errors       map[string]string        `json:"errors,omitempty"`
}

// ChartFamilyResponse describes an account-code family.
type ChartFamilyResponse struct {
	Prefix      string `json:"prefix"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

// ToTransactionResponse converts a classified transaction to its DTO.
func ToTransactionResponse(t domain.ClassifiedTransaction) TransactionResponse {
	return TransactionResponse{
		EntryID:       t.EntryID,
		Date:          t.Date.String(),
		ReferenceNo:   t.ReferenceNo,
		Memo:          t.Memo,
		Status:        string(t.Status),
		Type:          string(t.Type),
		Category:      string(t.Category),
		Amount:        t.Amount,
		SignedAmount:  t.SignedAmount(),
		PaymentStatus: string(t.PaymentStatus),
	}
}

// ToListTransactionsResponse converts a page of classified transactions.
func ToListTransactionsResponse(page domain.TransactionPage) ListTransactionsResponse {
	rows := make([]TransactionResponse, len(page.Transactions))
	for i, t := range page.Transactions {
		rows[i] = ToTransactionResponse(t)
	}
	return ListTransactionsResponse{Transactions: rows, NextToken: page.NextToken}
}

// ToStatisticsResponse converts ledger statistics.
func ToStatisticsResponse(s domain.LedgerStatistics) StatisticsResponse {
	return StatisticsResponse{TotalIncome: s.TotalIncome, TotalExpense: s.TotalExpense, Balance: s.Balance}
}

// ToReceivableResponse converts a receivable.
func ToReceivableResponse(r domain.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ID:              r.ID,
		JournalEntryID:  r.JournalEntryID,
		ReferenceNo:     r.ReferenceNo,
		PartnerName:     r.PartnerName,
		PartnerPhone:    r.PartnerPhone,
		OriginalAmount:  r.OriginalAmount,
		RemainingAmount: r.RemainingAmount,
		DueDate:         r.DueDate.String(),
		PaymentStatus:   string(r.PaymentStatus),
	}
}

// ToAgingResponse converts an aging result, keeping bucket display order.
func ToAgingResponse(result domain.AgingResult) AgingResponse {
	resp := AgingResponse{
		Source:           string(result.Source),
		Buckets:          make([]AgingBucketResponse, 0, len(domain.AgingBuckets)),
		TotalOutstanding: result.TotalOutstanding,
	}
	for _, bucket := range domain.AgingBuckets {
		members := result.Members[bucket]
		aged := make([]AgedReceivableResponse, len(members))
		for i, m := range members {
			aged[i] = AgedReceivableResponse{
				ReceivableResponse: ToReceivableResponse(m.Receivable),
				EffectiveDueDate:   m.EffectiveDueDate.String(),
				DaysOverdue:        m.DaysOverdue,
			}
		}
		summary := result.Summary[bucket]
		resp.Buckets = append(resp.Buckets, AgingBucketResponse{
			Bucket:      string(bucket),
			Total:       summary.Total,
			Count:       summary.Count,
			Receivables: aged,
		})
	}
	for _, r := range result.Unaged {
		resp.Unaged = append(resp.Unaged, ToReceivableResponse(r))
	}
	return resp
}

// ToOverviewResponse converts the combined overview.
func ToOverviewResponse(o *domain.Overview) OverviewResponse {
	return OverviewResponse{
		Transactions: ToListTransactionsResponse(o.Transactions),
		Statistics:   ToStatisticsResponse(o.Statistics),
		Aging:        ToAgingResponse(o.Aging),
		Errors:       o.Errors,
	}
}

// ToChartResponse converts the chart-of-accounts reference.
func ToChartResponse(families []domain.ChartFamily) []ChartFamilyResponse {
	resp := make([]ChartFamilyResponse, len(families))
	for i, f := range families {
		resp[i] = ChartFamilyResponse(f)
	}
	return resp
}
