package dto

import (
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	ClientID string                   `json:"clientID"`
	AsOf     string                   `json:"asOf"`
	Rows     []domain.TrialBalanceRow `json:"rows"`
	Totals   struct {
		Debit      decimal.Decimal `json:"debit"`
		Credit     decimal.Decimal `json:"credit"`
		Difference decimal.Decimal `json:"difference"`
		IsBalanced bool            `json:"isBalanced"`
	} `json:"totals"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ToTrialBalanceResponse converts a domain trial balance report to a DTO response.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		ClientID:    report.ClientID,
		AsOf:        report.AsOf.Format(dateLayout),
		Rows:        report.Rows,
		GeneratedAt: report.GeneratedAt,
	}
	response.Totals.Debit = report.TotalDebits
	response.Totals.Credit = report.TotalCredits
	response.Totals.Difference = report.Difference
	response.Totals.IsBalanced = report.IsBalanced
	return response
}

// BalanceSheetResponse represents the balance sheet report response.
type BalanceSheetResponse struct {
	ClientID              string                     `json:"clientID"`
	AsOf                  string                     `json:"asOf"`
	CurrentAssets         domain.BalanceSheetSection `json:"currentAssets"`
	NonCurrentAssets      domain.BalanceSheetSection `json:"nonCurrentAssets"`
	CurrentLiabilities    domain.BalanceSheetSection `json:"currentLiabilities"`
	NonCurrentLiabilities domain.BalanceSheetSection `json:"nonCurrentLiabilities"`
	Equity                domain.BalanceSheetSection `json:"equity"`
	Summary               struct {
		TotalAssets            decimal.Decimal `json:"totalAssets"`
		TotalLiabilities       decimal.Decimal `json:"totalLiabilities"`
		TotalEquity            decimal.Decimal `json:"totalEquity"`
		TotalLiabilitiesEquity decimal.Decimal `json:"totalLiabilitiesEquity"`
		Difference             decimal.Decimal `json:"difference"`
		IsBalanced             bool            `json:"isBalanced"`
	} `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	response := BalanceSheetResponse{
		ClientID:              report.ClientID,
		AsOf:                  report.AsOf.Format(dateLayout),
		CurrentAssets:         report.CurrentAssets,
		NonCurrentAssets:      report.NonCurrentAssets,
		CurrentLiabilities:    report.CurrentLiabilities,
		NonCurrentLiabilities: report.NonCurrentLiabilities,
		Equity:                report.Equity,
		GeneratedAt:           report.GeneratedAt,
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.TotalLiabilitiesEquity = report.TotalLiabilitiesEquity
	response.Summary.Difference = report.Difference
	response.Summary.IsBalanced = report.IsBalanced
	return response
}

// ComparativeBalanceSheetResponse pairs two balance sheets with total movements.
type ComparativeBalanceSheetResponse struct {
	Current  BalanceSheetResponse `json:"current"`
	Previous BalanceSheetResponse `json:"previous"`
	Changes  struct {
		Assets      decimal.Decimal `json:"assets"`
		Liabilities decimal.Decimal `json:"liabilities"`
		Equity      decimal.Decimal `json:"equity"`
	} `json:"changes"`
}

// ToComparativeBalanceSheetResponse converts a comparative balance sheet to a DTO response.
func ToComparativeBalanceSheetResponse(report *domain.ComparativeBalanceSheet) ComparativeBalanceSheetResponse {
	response := ComparativeBalanceSheetResponse{
		Current:  ToBalanceSheetResponse(report.Current),
		Previous: ToBalanceSheetResponse(report.Previous),
	}
	response.Changes.Assets = report.AssetsChange
	response.Changes.Liabilities = report.LiabilitiesChange
	response.Changes.Equity = report.EquityChange
	return response
}

// ProfitLossResponse represents the profit and loss report response.
type ProfitLossResponse struct {
	ClientID          string                   `json:"clientID"`
	FromDate          string                   `json:"fromDate"`
	ToDate            string                   `json:"toDate"`
	Sales             domain.ProfitLossSection `json:"sales"`
	OtherIncome       domain.ProfitLossSection `json:"otherIncome"`
	CostOfSales       domain.ProfitLossSection `json:"costOfSales"`
	OperatingExpenses domain.ProfitLossSection `json:"operatingExpenses"`
	OtherExpenses     domain.ProfitLossSection `json:"otherExpenses"`
	Summary           struct {
		TotalRevenue    decimal.Decimal `json:"totalRevenue"`
		GrossProfit     decimal.Decimal `json:"grossProfit"`
		OperatingProfit decimal.Decimal `json:"operatingProfit"`
		ProfitBeforeTax decimal.Decimal `json:"profitBeforeTax"`
		TaxExpense      decimal.Decimal `json:"taxExpense"`
		NetProfit       decimal.Decimal `json:"netProfit"`
		ProfitMargin    decimal.Decimal `json:"profitMargin"`
	} `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ToProfitLossResponse converts a domain P&L report to a DTO response.
func ToProfitLossResponse(report *domain.ProfitLossReport) ProfitLossResponse {
	response := ProfitLossResponse{
		ClientID:          report.ClientID,
		FromDate:          report.FromDate.Format(dateLayout),
		ToDate:            report.ToDate.Format(dateLayout),
		Sales:             report.Sales,
		OtherIncome:       report.OtherIncome,
		CostOfSales:       report.CostOfSales,
		OperatingExpenses: report.OperatingExpenses,
		OtherExpenses:     report.OtherExpenses,
		GeneratedAt:       report.GeneratedAt,
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.GrossProfit = report.GrossProfit
	response.Summary.OperatingProfit = report.OperatingProfit
	response.Summary.ProfitBeforeTax = report.ProfitBeforeTax
	response.Summary.TaxExpense = report.TaxExpense
	response.Summary.NetProfit = report.NetProfit
	response.Summary.ProfitMargin = report.ProfitMargin
	return response
}

// ComparativeProfitLossResponse pairs two P&L statements with deltas.
type ComparativeProfitLossResponse struct {
	Current  ProfitLossResponse `json:"current"`
	Previous ProfitLossResponse `json:"previous"`
	Changes  struct {
		Revenue         domain.ProfitLossDelta `json:"revenue"`
		GrossProfit     domain.ProfitLossDelta `json:"grossProfit"`
		OperatingProfit domain.ProfitLossDelta `json:"operatingProfit"`
		NetProfit       domain.ProfitLossDelta `json:"netProfit"`
	} `json:"changes"`
}

// ToComparativeProfitLossResponse converts a comparative P&L to a DTO response.
func ToComparativeProfitLossResponse(report *domain.ComparativeProfitLoss) ComparativeProfitLossResponse {
	response := ComparativeProfitLossResponse{
		Current:  ToProfitLossResponse(report.Current),
		Previous: ToProfitLossResponse(report.Previous),
	}
	response.Changes.Revenue = report.RevenueChange
	response.Changes.GrossProfit = report.GrossChange
	response.Changes.OperatingProfit = report.OperatingChange
	response.Changes.NetProfit = report.NetProfitChange
	return response
}

// MonthlyProfitLossResponse represents the month-by-month summary response.
type MonthlyProfitLossResponse struct {
	ClientID    string                     `json:"clientID"`
	Year        int                        `json:"year"`
	Months      []domain.MonthlyProfitLoss `json:"months"`
	GeneratedAt time.Time                  `json:"generatedAt"`
}

// ToMonthlyProfitLossResponse converts a monthly summary to a DTO response.
func ToMonthlyProfitLossResponse(summary *domain.MonthlyProfitLossSummary) MonthlyProfitLossResponse {
	return MonthlyProfitLossResponse{
		ClientID:    summary.ClientID,
		Year:        summary.Year,
		Months:      summary.Months,
		GeneratedAt: summary.GeneratedAt,
	}
}

// CashFlowResponse represents the cash flow report response.
type CashFlowResponse struct {
	ClientID  string                     `json:"clientID"`
	FromDate  string                     `json:"fromDate"`
	ToDate    string                     `json:"toDate"`
	Operating domain.OperatingActivities `json:"operating"`
	Investing domain.InvestingActivities `json:"investing"`
	Financing domain.FinancingActivities `json:"financing"`
	Summary   struct {
		NetCashFlow decimal.Decimal `json:"netCashFlow"`
		OpeningCash decimal.Decimal `json:"openingCash"`
		ClosingCash decimal.Decimal `json:"closingCash"`
	} `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ToCashFlowResponse converts a domain cash flow report to a DTO response.
func ToCashFlowResponse(report *domain.CashFlowReport) CashFlowResponse {
	response := CashFlowResponse{
		ClientID:    report.ClientID,
		FromDate:    report.FromDate.Format(dateLayout),
		ToDate:      report.ToDate.Format(dateLayout),
		Operating:   report.Operating,
		Investing:   report.Investing,
		Financing:   report.Financing,
		GeneratedAt: report.GeneratedAt,
	}
	response.Summary.NetCashFlow = report.NetCashFlow
	response.Summary.OpeningCash = report.OpeningCash
	response.Summary.ClosingCash = report.ClosingCash
	return response
}

// ClientResponse represents client master data in API responses.
type ClientResponse struct {
	ClientID  string `json:"clientID"`
	Name      string `json:"name"`
	GSTIN     string `json:"gstin,omitempty"`
	Address   string `json:"address,omitempty"`
	StateCode string `json:"stateCode,omitempty"`
}

// ToClientResponse converts a domain client to a DTO response.
func ToClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  client.ClientID,
		Name:      client.Name,
		GSTIN:     client.GSTIN,
		Address:   client.Address,
		StateCode: client.StateCode,
	}
}
