package accounting

import (
	"strings"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

// Account codes the derivation rules key on.
const (
	CodeReceivable      = "131"
	CodePayable         = "331"
	CodeDeferredRevenue = "3387"
	CodeSalesRevenue    = "511"
	CodeOtherIncome     = "711"
	CodeMaterials       = "621"
	CodeLabor           = "622"
	CodeOverhead        = "627"
	CodeCOGS            = "632"
	CodeSelling         = "641"
	CodeAdministrative  = "642"
	CodeOtherExpense    = "811"
)

var (
	revenuePrefixes = []string{CodeSalesRevenue, CodeOtherIncome}
	expensePrefixes = []string{"6", "8"}
	openItemCodes   = []string{CodeReceivable, CodePayable}
)

// ChartFamilies is the subset of the chart of accounts used by classification, statistics and aging.
var ChartFamilies = []domain.ChartFamily{
	{Prefix: CodeReceivable, Name: "Phải thu khách hàng", Role: "open_item", Description: "Receivable; marks an entry unpaid"},
	{Prefix: CodePayable, Name: "Phải trả người bán", Role: "open_item", Description: "Payable; marks an entry unpaid"},
	{Prefix: CodeDeferredRevenue, Name: "Doanh thu chưa thực hiện", Role: "category_hint", Description: "Deferred revenue"},
	{Prefix: CodeSalesRevenue, Name: "Doanh thu bán hàng và cung cấp dịch vụ", Role: "revenue", Description: "Credits count as income"},
	{Prefix: CodeOtherIncome, Name: "Thu nhập khác", Role: "revenue", Description: "Credits count as other income"},
	{Prefix: CodeMaterials, Name: "Chi phí nguyên vật liệu trực tiếp", Role: "expense", Description: "Direct materials"},
	{Prefix: CodeLabor, Name: "Chi phí nhân công trực tiếp", Role: "expense", Description: "Direct labor"},
	{Prefix: CodeOverhead, Name: "Chi phí sản xuất chung", Role: "expense", Description: "Production overhead"},
	{Prefix: CodeCOGS, Name: "Giá vốn hàng bán", Role: "expense", Description: "Cost of goods sold"},
	{Prefix: CodeSelling, Name: "Chi phí bán hàng", Role: "expense", Description: "Selling expenses"},
	{Prefix: CodeAdministrative, Name: "Chi phí quản lý doanh nghiệp", Role: "expense", Description: "Administrative expenses, split by memo keywords"},
	{Prefix: CodeOtherExpense, Name: "Chi phí khác", Role: "expense", Description: "Other expenses"},
}

func hasAnyPrefix(code string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}

// IsRevenueCode reports whether credits on the code count as income.
func IsRevenueCode(code string) bool {
	return hasAnyPrefix(code, revenuePrefixes)
}

// IsExpenseCode reports whether debits on the code count as expense.
func IsExpenseCode(code string) bool {
	return hasAnyPrefix(code, expensePrefixes)
}

// IsOpenItemCode reports whether the code is exactly a receivable or payable account.
func IsOpenItemCode(code string) bool {
	for _, c := range openItemCodes {
		if code == c {
			return true
		}
	}
	return false
}
