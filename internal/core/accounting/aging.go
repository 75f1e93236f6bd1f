package accounting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

// DefaultPaymentTermDays is added to the invoice or creation date when a receivable has no due date.
const DefaultPaymentTermDays = 30

// ResolveAging picks between the remote precomputed report and a local recomputation.
//
// The remote report wins only when it is structurally valid and not entirely zero; an all-zero
// report is treated as missing.
func ResolveAging(remote *domain.AgingReport, receivables []domain.Receivable, today time.Time, loc *time.Location) domain.AgingResult {
	if UsableReport(remote) {
		return fromReport(remote)
	}
	return AgeReceivables(receivables, today, loc)
}

// UsableReport reports whether a remote aging report can be shown as is.
func UsableReport(report *domain.AgingReport) bool {
	if report == nil || report.Summary.Current == nil {
		return false
	}
	for _, total := range report.Summary.ByBucket() {
		if !total.IsZero() {
			return true
		}
	}
	return false
}

func fromReport(report *domain.AgingReport) domain.AgingResult {
	result := domain.NewAgingResult(domain.AgingSourceRemote)
	totals := report.Summary.ByBucket()
	members := report.Aging.ByBucket()

	for _, bucket := range domain.AgingBuckets {
		list := members[bucket]
		if list == nil {
			list = []domain.AgedReceivable{}
		}
		result.Members[bucket] = list
		result.Summary[bucket] = domain.BucketSummary{Total: totals[bucket], Count: len(list)}
		result.TotalOutstanding = result.TotalOutstanding.Add(totals[bucket])
	}
	return result
}

// AgeReceivables buckets every open receivable by days overdue as of today.
// Only calendar dates are compared: today as written, and each due date as seen in loc,
// the business timezone (UTC when nil).
func AgeReceivables(receivables []domain.Receivable, today time.Time, loc *time.Location) domain.AgingResult {
	result := domain.NewAgingResult(domain.AgingSourceLocal)
	todayMidnight := civilMidnight(today)

	for _, r := range receivables {
		if !r.IsOpen() {
			continue
		}
		due, ok := EffectiveDueDate(r, loc)
		if !ok {
			result.Unaged = append(result.Unaged, r)
			continue
		}

		days := DaysOverdue(todayMidnight, civilMidnight(due.Time))
		bucket := BucketFor(days)

		summary := result.Summary[bucket]
		summary.Total = summary.Total.Add(r.RemainingAmount)
		summary.Count++
		result.Summary[bucket] = summary

		result.Members[bucket] = append(result.Members[bucket], domain.AgedReceivable{
			Receivable:       r,
			EffectiveDueDate: due,
			DaysOverdue:      days,
		})
		result.TotalOutstanding = result.TotalOutstanding.Add(r.RemainingAmount)
	}
	return result
}

// EffectiveDueDate returns the explicit due date, else invoice date + 30 days, else creation date + 30 days,
// as a calendar day in loc.
func EffectiveDueDate(r domain.Receivable, loc *time.Location) (domain.Date, bool) {
	if loc == nil {
		loc = time.UTC
	}
	switch {
	case r.DueDate.IsSet():
		return r.DueDate.CalendarDay(loc), true
	case r.InvoiceDate.IsSet():
		return addDays(r.InvoiceDate.CalendarDay(loc), DefaultPaymentTermDays), true
	case r.CreatedAt.IsSet():
		return addDays(r.CreatedAt.CalendarDay(loc), DefaultPaymentTermDays), true
	default:
		return domain.Date{}, false
	}
}

func addDays(d domain.Date, days int) domain.Date {
	return domain.Date{Time: d.AddDate(0, 0, days)}
}

// DaysOverdue counts whole days from due to today; negative means not yet due.
// Both arguments must already be civil midnights.
func DaysOverdue(todayMidnight, dueMidnight time.Time) int {
	return int(todayMidnight.Sub(dueMidnight) / (24 * time.Hour))
}

// BucketFor maps days overdue onto a bucket. The ranges partition all integers.
func BucketFor(daysOverdue int) domain.AgingBucket {
	switch {
	case daysOverdue < 0:
		return domain.BucketCurrent
	case daysOverdue <= 30:
		return domain.BucketOverdue1To30
	case daysOverdue <= 60:
		return domain.BucketOverdue31To60
	case daysOverdue <= 90:
		return domain.BucketOverdue61To90
	default:
		return domain.BucketOverdue90Plus
	}
}

// civilMidnight keeps the calendar date of t as written in its own location and returns it as a UTC midnight.
func civilMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OutstandingTotal sums the bucket totals of a result.
func OutstandingTotal(result domain.AgingResult) decimal.Decimal {
	total := decimal.Zero
	for _, bucket := range domain.AgingBuckets {
		total = total.Add(result.Summary[bucket].Total)
	}
	return total
}
