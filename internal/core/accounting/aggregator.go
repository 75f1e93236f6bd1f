package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

// Aggregate computes total income, total expense and balance over posted entries.
//
// Income counts only credits on revenue codes; a debit on a revenue code is a reversal and
// contributes nothing. Expense counts only debits on expense codes. Draft entries are skipped.
func Aggregate(entries []domain.JournalEntry) domain.LedgerStatistics {
	income := decimal.Zero
	expense := decimal.Zero

	for _, entry := range entries {
		if !entry.IsPosted() {
			continue
		}
		for _, line := range entry.Lines {
			if IsRevenueCode(line.AccountCode) {
				income = income.Add(line.Credit)
			}
			if IsExpenseCode(line.AccountCode) {
				expense = expense.Add(line.Debit)
			}
		}
	}

	return domain.LedgerStatistics{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}
