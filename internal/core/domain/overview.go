package domain

// TransactionPage is one page of the classified transaction grid.
type TransactionPage struct {
	Transactions []ClassifiedTransaction `json:"transactions"`
	NextToken    *string                 `json:"nextToken,omitempty"`
}

// Overview bundles the three accounting views. A view that failed to load is present in its empty
// state and its error message is listed under Errors keyed by view name.
type Overview struct {
	Transactions TransactionPage   `json:"transactions"`
	Statistics   LedgerStatistics  `json:"statistics"`
	Aging        AgingResult       `json:"aging"`
	Errors       map[string]string `json:"errors,omitempty"`
}

// Overview view names used as Errors keys.
const (
	ViewTransactions = "transactions"
	ViewStatistics   = "statistics"
	ViewAging        = "aging"
)
