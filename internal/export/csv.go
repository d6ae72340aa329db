// Package export renders derived reports into their presentation formats:
// fixed-layout CSV documents and the GST portal JSON shape. Layouts are a
// stable textual contract; reordering sections is a breaking change.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const csvDateLayout = "2006-01-02"

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// TrialBalanceCSV renders a trial balance report as CSV.
func TrialBalanceCSV(report *domain.TrialBalanceReport) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Trial Balance"})
	w.Write([]string{"Client", report.ClientID})
	w.Write([]string{"As Of", report.AsOf.Format(csvDateLayout)})
	w.Write([]string{})
	w.Write([]string{"Account Code", "Account Name", "Type", "Debit", "Credit"})
	for _, row := range report.Rows {
		w.Write([]string{
			row.AccountCode,
			row.AccountName,
			string(row.AccountType),
			money(row.DebitTotal),
			money(row.CreditTotal),
		})
	}
	w.Write([]string{})
	w.Write([]string{"Totals", "", "", money(report.TotalDebits), money(report.TotalCredits)})
	w.Write([]string{"Difference", "", "", "", money(report.Difference)})
	w.Write([]string{"Balanced", "", "", "", fmt.Sprintf("%t", report.IsBalanced)})

	w.Flush()
	return buf.String(), w.Error()
}

// BalanceSheetCSV renders a balance sheet report as CSV.
func BalanceSheetCSV(report *domain.BalanceSheetReport) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Balance Sheet"})
	w.Write([]string{"Client", report.ClientID})
	w.Write([]string{"As Of", report.AsOf.Format(csvDateLayout)})
	w.Write([]string{})

	w.Write([]string{"ASSETS"})
	writeBalanceSection(w, "Current Assets", report.CurrentAssets)
	writeBalanceSection(w, "Non-Current Assets", report.NonCurrentAssets)
	w.Write([]string{"Total Assets", "", "", money(report.TotalAssets)})
	w.Write([]string{})

	w.Write([]string{"LIABILITIES"})
	writeBalanceSection(w, "Current Liabilities", report.CurrentLiabilities)
	writeBalanceSection(w, "Non-Current Liabilities", report.NonCurrentLiabilities)
	w.Write([]string{"Total Liabilities", "", "", money(report.TotalLiabilities)})
	w.Write([]string{})

	w.Write([]string{"EQUITY"})
	writeBalanceSection(w, "Equity", report.Equity)
	w.Write([]string{"Total Equity", "", "", money(report.TotalEquity)})
	w.Write([]string{})

	w.Write([]string{"Total Liabilities and Equity", "", "", money(report.TotalLiabilitiesEquity)})
	w.Write([]string{"Difference", "", "", money(report.Difference)})
	w.Write([]string{"Balanced", "", "", fmt.Sprintf("%t", report.IsBalanced)})

	w.Flush()
	return buf.String(), w.Error()
}

func writeBalanceSection(w *csv.Writer, label string, section domain.BalanceSheetSection) {
	w.Write([]string{label})
	for _, line := range section.Lines {
		w.Write([]string{"", line.AccountCode, line.AccountName, money(line.Amount)})
	}
	w.Write([]string{fmt.Sprintf("Total %s", label), "", "", money(section.Total)})
}

// ProfitLossCSV renders a profit and loss report as CSV.
func ProfitLossCSV(report *domain.ProfitLossReport) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Profit and Loss Statement"})
	w.Write([]string{"Client", report.ClientID})
	w.Write([]string{"From", report.FromDate.Format(csvDateLayout)})
	w.Write([]string{"To", report.ToDate.Format(csvDateLayout)})
	w.Write([]string{})

	writePLSection(w, "Sales Revenue", report.Sales)
	writePLSection(w, "Other Income", report.OtherIncome)
	w.Write([]string{"Total Revenue", "", "", money(report.TotalRevenue)})
	w.Write([]string{})

	writePLSection(w, "Cost of Sales", report.CostOfSales)
	w.Write([]string{"Gross Profit", "", "", money(report.GrossProfit)})
	w.Write([]string{})

	writePLSection(w, "Operating Expenses", report.OperatingExpenses)
	w.Write([]string{"Operating Profit", "", "", money(report.OperatingProfit)})
	w.Write([]string{})

	writePLSection(w, "Other Expenses", report.OtherExpenses)
	w.Write([]string{"Profit Before Tax", "", "", money(report.ProfitBeforeTax)})
	w.Write([]string{"Tax Expense", "", "", money(report.TaxExpense)})
	w.Write([]string{"Net Profit", "", "", money(report.NetProfit)})
	w.Write([]string{"Profit Margin %", "", "", report.ProfitMargin.StringFixed(2)})

	w.Flush()
	return buf.String(), w.Error()
}

func writePLSection(w *csv.Writer, label string, section domain.ProfitLossSection) {
	w.Write([]string{label})
	for _, line := range section.Lines {
		w.Write([]string{"", line.AccountCode, line.AccountName, money(line.Amount)})
	}
	w.Write([]string{fmt.Sprintf("Total %s", label), "", "", money(section.Total)})
}

// CashFlowCSV renders a cash flow report as CSV.
func CashFlowCSV(report *domain.CashFlowReport) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Cash Flow Statement"})
	w.Write([]string{"Client", report.ClientID})
	w.Write([]string{"From", report.FromDate.Format(csvDateLayout)})
	w.Write([]string{"To", report.ToDate.Format(csvDateLayout)})
	w.Write([]string{})

	w.Write([]string{"Operating Activities"})
	w.Write([]string{"", "Net Profit", money(report.Operating.NetProfit)})
	w.Write([]string{"", "Depreciation", money(report.Operating.Depreciation)})
	w.Write([]string{"", "Change in Receivables", money(report.Operating.ReceivablesChange)})
	w.Write([]string{"", "Change in Payables", money(report.Operating.PayablesChange)})
	w.Write([]string{"", "Change in Inventory", money(report.Operating.InventoryChange)})
	w.Write([]string{"Net Cash from Operating", "", money(report.Operating.NetCash)})
	w.Write([]string{})

	w.Write([]string{"Investing Activities"})
	w.Write([]string{"", "Fixed Asset Purchases", money(report.Investing.FixedAssetPurchases)})
	w.Write([]string{"", "Fixed Asset Sales", money(report.Investing.FixedAssetSales)})
	w.Write([]string{"", "Investments Made", money(report.Investing.InvestmentsMade)})
	w.Write([]string{"Net Cash from Investing", "", money(report.Investing.NetCash)})
	w.Write([]string{})

	w.Write([]string{"Financing Activities"})
	w.Write([]string{"", "Loans Received", money(report.Financing.LoansReceived)})
	w.Write([]string{"", "Loans Repaid", money(report.Financing.LoansRepaid)})
	w.Write([]string{"", "Capital Contributed", money(report.Financing.CapitalContributed)})
	w.Write([]string{"", "Dividends Paid", money(report.Financing.DividendsPaid)})
	w.Write([]string{"Net Cash from Financing", "", money(report.Financing.NetCash)})
	w.Write([]string{})

	w.Write([]string{"Net Cash Flow", "", money(report.NetCashFlow)})
	w.Write([]string{"Opening Cash", "", money(report.OpeningCash)})
	w.Write([]string{"Closing Cash", "", money(report.ClosingCash)})

	w.Flush()
	return buf.String(), w.Error()
}

// GSTR1CSV renders a GSTR-1 report as CSV.
func GSTR1CSV(report *domain.GSTR1Report) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"GSTR-1 Outward Supplies"})
	w.Write([]string{"GSTIN", report.GSTIN})
	w.Write([]string{"Period", fmt.Sprintf("%02d-%04d", int(report.Month), report.Year)})
	w.Write([]string{})

	writeGSTR1Bucket(w, "B2B", report.B2B)
	writeGSTR1Bucket(w, "B2C Large", report.B2CLarge)
	writeGSTR1Bucket(w, "B2C Small", report.B2CSmall)

	w.Write([]string{"Total Taxable Value", "", "", "", money(report.TotalTaxableValue)})
	w.Write([]string{"Total Tax", "", "", "", money(report.TotalTax.Total())})
	w.Write([]string{"Total Outward Value", "", "", "", money(report.TotalOutwardValue)})

	w.Flush()
	return buf.String(), w.Error()
}

// GSTR3BCSV renders a GSTR-3B summary return as CSV.
func GSTR3BCSV(report *domain.GSTR3BReport) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"GSTR-3B Summary Return"})
	w.Write([]string{"GSTIN", report.GSTIN})
	w.Write([]string{"Period", fmt.Sprintf("%02d-%04d", int(report.Month), report.Year)})
	w.Write([]string{})

	w.Write([]string{"", "Taxable Value", "CGST", "SGST", "IGST", "Cess"})
	w.Write([]string{
		"Outward Supplies",
		money(report.OutwardTaxableValue),
		money(report.OutwardTax.CGST),
		money(report.OutwardTax.SGST),
		money(report.OutwardTax.IGST),
		money(report.OutwardTax.Cess),
	})
	w.Write([]string{
		"Inter-State Supplies",
		money(report.InterStateTaxableValue),
		"", "",
		money(report.InterStateIGST),
		"",
	})
	w.Write([]string{
		"Input Tax Credit",
		"",
		money(report.InputTaxCredit.CGST),
		money(report.InputTaxCredit.SGST),
		money(report.InputTaxCredit.IGST),
		money(report.InputTaxCredit.Cess),
	})
	w.Write([]string{
		"Tax Payable",
		"",
		money(report.TaxPayable.CGST),
		money(report.TaxPayable.SGST),
		money(report.TaxPayable.IGST),
		money(report.TaxPayable.Cess),
	})

	w.Flush()
	return buf.String(), w.Error()
}

func writeGSTR1Bucket(w *csv.Writer, label string, bucket domain.GSTR1Bucket) {
	w.Write([]string{label})
	for _, inv := range bucket.Invoices {
		w.Write([]string{
			"",
			inv.InvoiceNumber,
			inv.InvoiceDate.Format(csvDateLayout),
			inv.BuyerGSTIN,
			money(inv.TaxableValue),
			money(inv.Tax.Total()),
			money(inv.InvoiceValue),
		})
	}
	w.Write([]string{
		fmt.Sprintf("Total %s", label),
		fmt.Sprintf("%d invoices", bucket.InvoiceCount),
		"",
		"",
		money(bucket.TaxableValue),
		money(bucket.Tax.Total()),
		money(bucket.InvoiceValue),
	})
	w.Write([]string{})
}
