package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum absolute debit/credit difference a report may
// carry while still being considered balanced (one currency sub-unit).
var BalanceTolerance = decimal.New(1, -2)

// TrialBalanceRow is one per-account aggregation row as returned by the ledger
// store. Balance and AccountType classification are owned by the store.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceReport lists per-account totals as of a date, in the ledger
// store's return order, with a balanced-ledger check.
type TrialBalanceReport struct {
	ClientID     string            `json:"clientID"`
	AsOf         time.Time         `json:"asOf"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	Difference   decimal.Decimal   `json:"difference"`
	IsBalanced   bool              `json:"isBalanced"`
	GeneratedAt  time.Time         `json:"generatedAt"`
}

// GroupByType partitions the report rows by account type. Rows within each
// bucket keep their original order.
func (r *TrialBalanceReport) GroupByType() map[AccountType][]TrialBalanceRow {
	grouped := map[AccountType][]TrialBalanceRow{
		Asset:     {},
		Liability: {},
		Equity:    {},
		Income:    {},
		Expense:   {},
	}
	for _, row := range r.Rows {
		grouped[row.AccountType] = append(grouped[row.AccountType], row)
	}
	return grouped
}

// BalanceSheetLine is a signed per-account line on the balance sheet.
// Derived marks synthetic lines injected by the deriver (such as the current
// year profit row) that do not correspond to a persisted ledger account.
type BalanceSheetLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
	Derived     bool            `json:"derived,omitempty"`
}

// BalanceSheetSection groups related lines with their subtotal.
type BalanceSheetSection struct {
	Lines []BalanceSheetLine `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

// BalanceSheetReport is the statement of financial position as of a date.
type BalanceSheetReport struct {
	ClientID               string              `json:"clientID"`
	AsOf                   time.Time           `json:"asOf"`
	CurrentAssets          BalanceSheetSection `json:"currentAssets"`
	NonCurrentAssets       BalanceSheetSection `json:"nonCurrentAssets"`
	CurrentLiabilities     BalanceSheetSection `json:"currentLiabilities"`
	NonCurrentLiabilities  BalanceSheetSection `json:"nonCurrentLiabilities"`
	Equity                 BalanceSheetSection `json:"equity"`
	TotalAssets            decimal.Decimal     `json:"totalAssets"`
	TotalLiabilities       decimal.Decimal     `json:"totalLiabilities"`
	TotalEquity            decimal.Decimal     `json:"totalEquity"`
	TotalLiabilitiesEquity decimal.Decimal     `json:"totalLiabilitiesEquity"`
	Difference             decimal.Decimal     `json:"difference"`
	IsBalanced             bool                `json:"isBalanced"`
	GeneratedAt            time.Time           `json:"generatedAt"`
}

// ComparativeBalanceSheet holds two balance sheets and the movement of the
// headline totals between them.
type ComparativeBalanceSheet struct {
	Current           *BalanceSheetReport `json:"current"`
	Previous          *BalanceSheetReport `json:"previous"`
	AssetsChange      decimal.Decimal     `json:"assetsChange"`
	LiabilitiesChange decimal.Decimal     `json:"liabilitiesChange"`
	EquityChange      decimal.Decimal     `json:"equityChange"`
}

// ProfitLossLine is one classified account on the profit and loss statement.
type ProfitLossLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitLossSection groups classified lines with their subtotal.
type ProfitLossSection struct {
	Lines []ProfitLossLine `json:"lines"`
	Total decimal.Decimal  `json:"total"`
}

// ProfitLossReport is the income statement for a period, inclusive both ends.
type ProfitLossReport struct {
	ClientID          string            `json:"clientID"`
	FromDate          time.Time         `json:"fromDate"`
	ToDate            time.Time         `json:"toDate"`
	Sales             ProfitLossSection `json:"sales"`
	OtherIncome       ProfitLossSection `json:"otherIncome"`
	CostOfSales       ProfitLossSection `json:"costOfSales"`
	OperatingExpenses ProfitLossSection `json:"operatingExpenses"`
	OtherExpenses     ProfitLossSection `json:"otherExpenses"`
	TotalRevenue      decimal.Decimal   `json:"totalRevenue"`
	GrossProfit       decimal.Decimal   `json:"grossProfit"`
	OperatingProfit   decimal.Decimal   `json:"operatingProfit"`
	ProfitBeforeTax   decimal.Decimal   `json:"profitBeforeTax"`
	TaxExpense        decimal.Decimal   `json:"taxExpense"`
	NetProfit         decimal.Decimal   `json:"netProfit"`
	ProfitMargin      decimal.Decimal   `json:"profitMargin"` // Percentage; zero when revenue is zero
	GeneratedAt       time.Time         `json:"generatedAt"`
}

// ProfitLossDelta is a period-over-period movement, absolute and percentage.
type ProfitLossDelta struct {
	Absolute decimal.Decimal `json:"absolute"`
	Percent  decimal.Decimal `json:"percent"`
}

// ComparativeProfitLoss holds two independently computed income statements and
// the movement of the headline figures between them.
type ComparativeProfitLoss struct {
	Current         *ProfitLossReport `json:"current"`
	Previous        *ProfitLossReport `json:"previous"`
	RevenueChange   ProfitLossDelta   `json:"revenueChange"`
	GrossChange     ProfitLossDelta   `json:"grossProfitChange"`
	OperatingChange ProfitLossDelta   `json:"operatingProfitChange"`
	NetProfitChange ProfitLossDelta   `json:"netProfitChange"`
}

// MonthlyProfitLoss is one month's condensed income statement.
type MonthlyProfitLoss struct {
	Month        time.Month      `json:"month"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// MonthlyProfitLossSummary covers the twelve calendar months of a year. Months
// whose computation failed are present with all figures zero.
type MonthlyProfitLossSummary struct {
	ClientID    string              `json:"clientID"`
	Year        int                 `json:"year"`
	Months      []MonthlyProfitLoss `json:"months"`
	GeneratedAt time.Time           `json:"generatedAt"`
}
