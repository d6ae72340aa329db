package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperatingActivities is the indirect-method operating section of the cash
// flow statement.
type OperatingActivities struct {
	NetProfit         decimal.Decimal `json:"netProfit"`
	Depreciation      decimal.Decimal `json:"depreciation"`
	ReceivablesChange decimal.Decimal `json:"receivablesChange"`
	PayablesChange    decimal.Decimal `json:"payablesChange"`
	InventoryChange   decimal.Decimal `json:"inventoryChange"`
	NetCash           decimal.Decimal `json:"netCash"`
}

// InvestingActivities covers fixed-asset and investment movements.
type InvestingActivities struct {
	FixedAssetPurchases decimal.Decimal `json:"fixedAssetPurchases"`
	FixedAssetSales     decimal.Decimal `json:"fixedAssetSales"`
	InvestmentsMade     decimal.Decimal `json:"investmentsMade"`
	NetCash             decimal.Decimal `json:"netCash"`
}

// FinancingActivities covers loan and capital movements.
type FinancingActivities struct {
	LoansReceived      decimal.Decimal `json:"loansReceived"`
	LoansRepaid        decimal.Decimal `json:"loansRepaid"`
	CapitalContributed decimal.Decimal `json:"capitalContributed"`
	DividendsPaid      decimal.Decimal `json:"dividendsPaid"`
	NetCash            decimal.Decimal `json:"netCash"`
}

// CashFlowReport is the cash flow statement for a period.
type CashFlowReport struct {
	ClientID    string              `json:"clientID"`
	FromDate    time.Time           `json:"fromDate"`
	ToDate      time.Time           `json:"toDate"`
	Operating   OperatingActivities `json:"operating"`
	Investing   InvestingActivities `json:"investing"`
	Financing   FinancingActivities `json:"financing"`
	NetCashFlow decimal.Decimal     `json:"netCashFlow"`
	OpeningCash decimal.Decimal     `json:"openingCash"`
	ClosingCash decimal.Decimal     `json:"closingCash"`
	GeneratedAt time.Time           `json:"generatedAt"`
}
