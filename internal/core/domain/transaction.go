package domain

import "github.com/shopspring/decimal"

// TransactionType is the direction inferred for a classified entry.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// PaymentStatus is inferred from receivable/payable accounts on an entry, or chosen on the posting form.
type PaymentStatus string

const (
	Paid   PaymentStatus = "paid"
	Unpaid PaymentStatus = "unpaid"
)

// Category is one of the fixed display categories of the transaction grid.
type Category string

const (
	CategorySales     Category = "Bán hàng"
	CategoryServices  Category = "Dịch vụ"
	CategoryOtherInc  Category = "Thu nhập khác"
	CategoryMaterials Category = "Nguyên vật liệu"
	CategoryLabor     Category = "Nhân công"
	CategoryOverhead  Category = "Chi phí sản xuất chung"
	CategoryCOGS      Category = "Giá vốn hàng bán"
	CategorySelling   Category = "Chi phí bán hàng"
	CategoryUtilities Category = "Điện nước"
	CategoryShipping  Category = "Vận chuyển"
	CategoryRent      Category = "Thuê mặt bằng"
	CategoryRepairs   Category = "Sửa chữa bảo trì"
	CategoryAdmin     Category = "Chi phí quản lý"
	CategoryOtherExp  Category = "Chi phí khác"
)

// Classification is the result of classifying one journal entry.
type Classification struct {
	Type          TransactionType `json:"type"`
	Category      Category        `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
}

// ClassifiedTransaction is one row of the transaction grid. It is rebuilt on every query.
type ClassifiedTransaction struct {
	EntryID     string      `json:"entryId"`
	Date        Date        `json:"date"`
	ReferenceNo string      `json:"referenceNo"`
	Memo        string      `json:"memo"`
	Status      EntryStatus `json:"status"`
	Classification
}

// SignedAmount returns the amount negated for expenses.
func (t ClassifiedTransaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// LedgerStatistics are the summary card figures.
type LedgerStatistics struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// ZeroStatistics returns statistics with every figure explicitly zero.
func ZeroStatistics() LedgerStatistics {
	return LedgerStatistics{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero, Balance: decimal.Zero}
}

// ChartFamily describes an account-code family the classifier understands.
type ChartFamily struct {
	Prefix      string `json:"prefix"`
	Name        string `json:"name"`
	Role        string `json:"role"` // revenue, expense, open_item or category_hint
	Description string `json:"description"`
}
