package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	"github.com/SscSPs/organic_store_accounting/internal/utils"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	amountStyle  = cellStyle.Align(lipgloss.Right)
	incomeStyle  = amountStyle.Foreground(lipgloss.Color("82"))
	expenseStyle = amountStyle.Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers(headers...)
}

func printTransactions(w io.Writer, page *domain.TransactionPage) {
	fmt.Fprintln(w, titleStyle.Render("TRANSACTIONS"))

	t := newTable("Date", "Reference", "Memo", "Type", "Category", "Amount", "Payment")
	for _, tx := range page.Transactions {
		t.Row(tx.Date.String(), tx.ReferenceNo, tx.Memo, string(tx.Type), string(tx.Category), utils.FormatAmount(tx.SignedAmount()), string(tx.PaymentStatus))
	}
	rows := page.Transactions
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col != 5 {
			return cellStyle
		}
		if row >= 0 && row < len(rows) && rows[row].Type == domain.Expense {
			return expenseStyle
		}
		return incomeStyle
	})
	fmt.Fprintln(w, t.Render())

	if page.NextToken != nil {
		fmt.Fprintln(w, dimStyle.Render("more entries available, next token: "+*page.NextToken))
	}
}

func printStatistics(w io.Writer, stats domain.LedgerStatistics) {
	fmt.Fprintln(w, titleStyle.Render("SUMMARY"))

	t := newTable("Total income", "Total expense", "Balance").
		Row(utils.FormatAmount(stats.TotalIncome), utils.FormatAmount(stats.TotalExpense), utils.FormatAmount(stats.Balance)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return amountStyle
		})
	fmt.Fprintln(w, t.Render())
}

func printAging(w io.Writer, result domain.AgingResult, detail bool) {
	fmt.Fprintln(w, titleStyle.Render("RECEIVABLES AGING")+dimStyle.Render(" ("+string(result.Source)+")"))

	t := newTable("Bucket", "Count", "Total")
	for _, bucket := range domain.AgingBuckets {
		summary := result.Summary[bucket]
		t.Row(string(bucket), fmt.Sprint(summary.Count), utils.FormatAmount(summary.Total))
	}
	t.Row("total outstanding", "", utils.FormatAmount(result.TotalOutstanding))
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 0 {
			return cellStyle
		}
		return amountStyle
	})
	fmt.Fprintln(w, t.Render())

	if detail {
		d := newTable("Bucket", "Receivable", "Partner", "Due", "Days", "Remaining")
		for _, bucket := range domain.AgingBuckets {
			for _, m := range result.Members[bucket] {
				d.Row(string(bucket), m.ID, m.PartnerName, m.EffectiveDueDate.String(), fmt.Sprint(m.DaysOverdue), utils.FormatAmount(m.RemainingAmount))
			}
		}
		d.StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col >= 4 {
				return amountStyle
			}
			return cellStyle
		})
		fmt.Fprintln(w, d.Render())
	}

	if len(result.Unaged) > 0 {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%d open receivable(s) have no date to age from", len(result.Unaged))))
	}
}

func printChart(w io.Writer, families []domain.ChartFamily) {
	fmt.Fprintln(w, titleStyle.Render("CHART OF ACCOUNTS"))

	t := newTable("Prefix", "Name", "Role", "Description")
	for _, f := range families {
		t.Row(f.Prefix, f.Name, f.Role, f.Description)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})
	fmt.Fprintln(w, t.Render())
}

func printAttempts(w io.Writer, attempts []domain.PostingAttempt, next *string) {
	fmt.Fprintln(w, titleStyle.Render("POSTING ATTEMPTS"))

	t := newTable("When", "Reference", "#", "State", "Outcome", "By", "Message")
	for _, a := range attempts {
		t.Row(a.CreatedAt.Format(time.DateTime), a.ReferenceNo, fmt.Sprint(a.AttemptNo), string(a.State), a.Outcome, a.CreatedBy, a.Message)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 3 && row >= 0 && row < len(attempts) && attempts[row].State == domain.PostingFailed {
			return cellStyle.Foreground(lipgloss.Color("196"))
		}
		return cellStyle
	})
	fmt.Fprintln(w, t.Render())

	if next != nil {
		fmt.Fprintln(w, dimStyle.Render("more attempts available, next token: "+*next))
	}
}

func printErrors(w io.Writer, errs map[string]string) {
	for view, msg := range errs {
		fmt.Fprintln(w, errorStyle.Render(view+": "+msg))
	}
}
