package accounting

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

// Memo keyword groups. Keywords are matched as substrings after NFC normalization and lower-casing.
var (
	serviceKeywords     = []string{"dịch vụ", "dich vu", "service"}
	utilityKeywords     = []string{"điện", "nước", "internet", "utility", "utilities"}
	shippingKeywords    = []string{"vận chuyển", "giao hàng", "shipping", "ship"}
	rentKeywords        = []string{"thuê", "rent"}
	maintenanceKeywords = []string{"sửa chữa", "bảo trì", "maintenance"}
)

// categoryRule is one "predicate -> category" step. Rules are evaluated in slice order and the first match wins.
type categoryRule struct {
	name     string
	matches  func(entry domain.JournalEntry, line domain.JournalLine) bool
	category domain.Category
}

// revenueRules apply to the first revenue line found on an entry.
var revenueRules = []categoryRule{
	{
		name:     "other-income",
		matches:  func(_ domain.JournalEntry, line domain.JournalLine) bool { return strings.HasPrefix(line.AccountCode, CodeOtherIncome) },
		category: domain.CategoryOtherInc,
	},
	{
		name: "deferred-service",
		matches: func(entry domain.JournalEntry, _ domain.JournalLine) bool {
			return entry.HasAccount(CodeDeferredRevenue) && isServiceEntry(entry)
		},
		category: domain.CategoryServices,
	},
	{
		name:     "deferred-sale",
		matches:  func(entry domain.JournalEntry, _ domain.JournalLine) bool { return entry.HasAccount(CodeDeferredRevenue) },
		category: domain.CategorySales,
	},
	{
		name:     "service",
		matches:  func(entry domain.JournalEntry, _ domain.JournalLine) bool { return isServiceEntry(entry) },
		category: domain.CategoryServices,
	},
	{
		name:     "sale",
		matches:  func(domain.JournalEntry, domain.JournalLine) bool { return true },
		category: domain.CategorySales,
	},
}

// expenseRules apply to the first expense line found on an entry.
var expenseRules = []categoryRule{
	codeRule("materials", CodeMaterials, domain.CategoryMaterials),
	codeRule("labor", CodeLabor, domain.CategoryLabor),
	codeRule("overhead", CodeOverhead, domain.CategoryOverhead),
	codeRule("cogs", CodeCOGS, domain.CategoryCOGS),
	codeRule("selling", CodeSelling, domain.CategorySelling),
	adminKeywordRule("admin-utilities", utilityKeywords, domain.CategoryUtilities),
	adminKeywordRule("admin-shipping", shippingKeywords, domain.CategoryShipping),
	adminKeywordRule("admin-rent", rentKeywords, domain.CategoryRent),
	adminKeywordRule("admin-maintenance", maintenanceKeywords, domain.CategoryRepairs),
	codeRule("admin", CodeAdministrative, domain.CategoryAdmin),
	{
		// 811 and every unmatched expense code
		name:     "other-expense",
		matches:  func(domain.JournalEntry, domain.JournalLine) bool { return true },
		category: domain.CategoryOtherExp,
	},
}

func codeRule(name, prefix string, category domain.Category) categoryRule {
	return categoryRule{
		name:     name,
		matches:  func(_ domain.JournalEntry, line domain.JournalLine) bool { return strings.HasPrefix(line.AccountCode, prefix) },
		category: category,
	}
}

func adminKeywordRule(name string, keywords []string, category domain.Category) categoryRule {
	return categoryRule{
		name: name,
		matches: func(entry domain.JournalEntry, line domain.JournalLine) bool {
			return strings.HasPrefix(line.AccountCode, CodeAdministrative) && memoMentions(entry.Memo, keywords)
		},
		category: category,
	}
}

func isServiceEntry(entry domain.JournalEntry) bool {
	return entry.Kind == domain.KindReceipt || memoMentions(entry.Memo, serviceKeywords)
}

// Classify derives type, category, amount and payment status for one journal entry.
// It never fails: entries without a revenue or expense line fall back to comparing total credits and debits.
func Classify(entry domain.JournalEntry) domain.Classification {
	result := classifyLines(entry)
	result.PaymentStatus = paymentStatus(entry)
	return result
}

func classifyLines(entry domain.JournalEntry) domain.Classification {
	for _, line := range entry.Lines {
		if IsRevenueCode(line.AccountCode) && line.Credit.IsPositive() {
			return domain.Classification{
				Type:     domain.Income,
				Amount:   line.Credit,
				Category: firstMatch(revenueRules, entry, line),
			}
		}
	}

	for _, line := range entry.Lines {
		if IsExpenseCode(line.AccountCode) && line.Debit.IsPositive() {
			return domain.Classification{
				Type:     domain.Expense,
				Amount:   line.Debit,
				Category: firstMatch(expenseRules, entry, line),
			}
		}
	}

	debit, credit := entry.Totals()
	if credit.GreaterThan(debit) {
		return domain.Classification{Type: domain.Income, Amount: credit, Category: domain.CategoryOtherInc}
	}
	return domain.Classification{Type: domain.Expense, Amount: decimal.Max(debit, credit), Category: domain.CategoryOtherExp}
}

func firstMatch(rules []categoryRule, entry domain.JournalEntry, line domain.JournalLine) domain.Category {
	for _, rule := range rules {
		if rule.matches(entry, line) {
			return rule.category
		}
	}
	// Both rule lists end with an unconditional rule.
	return rules[len(rules)-1].category
}

func paymentStatus(entry domain.JournalEntry) domain.PaymentStatus {
	for _, line := range entry.Lines {
		if IsOpenItemCode(line.AccountCode) {
			return domain.Unpaid
		}
	}
	return domain.Paid
}

// memoMentions reports whether any keyword occurs anywhere in the memo.
func memoMentions(memo string, keywords []string) bool {
	text := foldText(memo)
	if text == "" {
		return false
	}
	for _, keyword := range keywords {
		if strings.Contains(text, foldText(keyword)) {
			return true
		}
	}
	return false
}

func foldText(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
