package domain

import (
	"github.com/shopspring/decimal"
)

// AgingBucket classifies an open balance by how far past due it is.
type AgingBucket string

const (
	BucketCurrent       AgingBucket = "current"
	BucketOverdue1To30  AgingBucket = "overdue_1_30"
	BucketOverdue31To60 AgingBucket = "overdue_31_60"
	BucketOverdue61To90 AgingBucket = "overdue_61_90"
	BucketOverdue90Plus AgingBucket = "overdue_90_plus"
)

// AgingBuckets lists every bucket in display order.
var AgingBuckets = []AgingBucket{
	BucketCurrent,
	BucketOverdue1To30,
	BucketOverdue31To60,
	BucketOverdue61To90,
	BucketOverdue90Plus,
}

// AgingSource tells where an aging result came from.
type AgingSource string

const (
	AgingSourceRemote AgingSource = "remote"
	AgingSourceLocal  AgingSource = "local"
	AgingSourceNone   AgingSource = "none"
)

// AgedReceivable is a receivable annotated with its computed lateness.
type AgedReceivable struct {
	Receivable
	EffectiveDueDate Date `json:"effectiveDueDate"`
	DaysOverdue      int  `json:"daysOverdue"`
}

// BucketSummary holds the sum of remaining balances and the member count of one bucket.
type BucketSummary struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// AgingResult is the aging panel content, computed fresh on every request.
type AgingResult struct {
	Source           AgingSource                      `json:"source"`
	Summary          map[AgingBucket]BucketSummary    `json:"summary"`
	Members          map[AgingBucket][]AgedReceivable `json:"members"`
	TotalOutstanding decimal.Decimal                  `json:"totalOutstanding"`
	Unaged           []Receivable                     `json:"unaged,omitempty"` // Open but without any date to age from
}

// NewAgingResult returns an empty result with every bucket present and zeroed.
func NewAgingResult(source AgingSource) AgingResult {
	result := AgingResult{
		Source:           source,
		Summary:          make(map[AgingBucket]BucketSummary, len(AgingBuckets)),
		Members:          make(map[AgingBucket][]AgedReceivable, len(AgingBuckets)),
		TotalOutstanding: decimal.Zero,
	}
	for _, bucket := range AgingBuckets {
		result.Summary[bucket] = BucketSummary{Total: decimal.Zero}
		result.Members[bucket] = []AgedReceivable{}
	}
	return result
}

// AgingSummary is the bucket-sum block of the remote precomputed report.
// Pointers distinguish a missing field from an explicit zero.
type AgingSummary struct {
	Current       *decimal.Decimal `json:"current"`
	Overdue1To30  *decimal.Decimal `json:"overdue1to30"`
	Overdue31To60 *decimal.Decimal `json:"overdue31to60"`
	Overdue61To90 *decimal.Decimal `json:"overdue61to90"`
	Overdue90Plus *decimal.Decimal `json:"overdue90plus"`
}

// ByBucket maps the summary onto bucket keys; missing fields read as zero.
func (s AgingSummary) ByBucket() map[AgingBucket]decimal.Decimal {
	value := func(d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			return decimal.Zero
		}
		return *d
	}
	return map[AgingBucket]decimal.Decimal{
		BucketCurrent:       value(s.Current),
		BucketOverdue1To30:  value(s.Overdue1To30),
		BucketOverdue31To60: value(s.Overdue31To60),
		BucketOverdue61To90: value(s.Overdue61To90),
		BucketOverdue90Plus: value(s.Overdue90Plus),
	}
}

// AgingMembers is the per-bucket receivable block of the remote report.
type AgingMembers struct {
	Current       []AgedReceivable `json:"current"`
	Overdue1To30  []AgedReceivable `json:"overdue1to30"`
	Overdue31To60 []AgedReceivable `json:"overdue31to60"`
	Overdue61To90 []AgedReceivable `json:"overdue61to90"`
	Overdue90Plus []AgedReceivable `json:"overdue90plus"`
}

// ByBucket maps the member lists onto bucket keys.
func (m AgingMembers) ByBucket() map[AgingBucket][]AgedReceivable {
	return map[AgingBucket][]AgedReceivable{
		BucketCurrent:       m.Current,
		BucketOverdue1To30:  m.Overdue1To30,
		BucketOverdue31To60: m.Overdue31To60,
		BucketOverdue61To90: m.Overdue61To90,
		BucketOverdue90Plus: m.Overdue90Plus,
	}
}

// AgingReport is the precomputed aging report served by the ledger API.
type AgingReport struct {
	Summary AgingSummary `json:"summary"`
	Aging   AgingMembers `json:"aging"`
}
