package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	"github.com/bahikhata/bahikhata_backend/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

func TestTrialBalanceCSV(t *testing.T) {
	report := &domain.TrialBalanceReport{
		ClientID: "client-1",
		AsOf:     asOf,
		Rows: []domain.TrialBalanceRow{
			{
				AccountCode: "1110",
				AccountName: "Cash in Hand",
				AccountType: domain.Asset,
				DebitTotal:  decimal.NewFromInt(5000),
				CreditTotal: decimal.Zero,
			},
		},
		TotalDebits:  decimal.NewFromInt(5000),
		TotalCredits: decimal.NewFromInt(5000),
		Difference:   decimal.Zero,
		IsBalanced:   true,
	}

	out, err := export.TrialBalanceCSV(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Trial Balance", lines[0])
	assert.Contains(t, out, "As Of,2025-03-31")
	assert.Contains(t, out, "1110,Cash in Hand,ASSET,5000.00,0.00")
	assert.Contains(t, out, "Totals,,,5000.00,5000.00")
	assert.Contains(t, out, "Balanced,,,,true")
}

func TestBalanceSheetCSV_SectionOrder(t *testing.T) {
	report := &domain.BalanceSheetReport{
		ClientID: "client-1",
		AsOf:     asOf,
		CurrentAssets: domain.BalanceSheetSection{
			Lines: []domain.BalanceSheetLine{
				{AccountCode: "1110", AccountName: "Cash in Hand", Amount: decimal.NewFromInt(5000)},
			},
			Total: decimal.NewFromInt(5000),
		},
		Equity: domain.BalanceSheetSection{
			Lines: []domain.BalanceSheetLine{
				{AccountCode: "3250", AccountName: "Current Year Profit", Amount: decimal.NewFromInt(5000), Derived: true},
			},
			Total: decimal.NewFromInt(5000),
		},
		TotalAssets:            decimal.NewFromInt(5000),
		TotalLiabilities:       decimal.Zero,
		TotalEquity:            decimal.NewFromInt(5000),
		TotalLiabilitiesEquity: decimal.NewFromInt(5000),
		Difference:             decimal.Zero,
		IsBalanced:             true,
	}

	out, err := export.BalanceSheetCSV(report)
	require.NoError(t, err)

	// Assets before liabilities before equity; the layout is a contract.
	assetsAt := strings.Index(out, "ASSETS")
	liabilitiesAt := strings.Index(out, "LIABILITIES")
	equityAt := strings.Index(out, "EQUITY")
	require.True(t, assetsAt >= 0 && liabilitiesAt > assetsAt && equityAt > liabilitiesAt)

	assert.Contains(t, out, ",1110,Cash in Hand,5000.00")
	assert.Contains(t, out, "Total Current Assets,,,5000.00")
	assert.Contains(t, out, ",3250,Current Year Profit,5000.00")
	assert.Contains(t, out, "Balanced,,,true")
}

func TestProfitLossCSV(t *testing.T) {
	report := &domain.ProfitLossReport{
		ClientID: "client-1",
		FromDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		Sales: domain.ProfitLossSection{
			Lines: []domain.ProfitLossLine{
				{AccountCode: "4110", AccountName: "Product Sales", Amount: decimal.NewFromInt(10000)},
			},
			Total: decimal.NewFromInt(10000),
		},
		TotalRevenue:    decimal.NewFromInt(10000),
		GrossProfit:     decimal.NewFromInt(10000),
		OperatingProfit: decimal.NewFromInt(10000),
		ProfitBeforeTax: decimal.NewFromInt(10000),
		NetProfit:       decimal.NewFromInt(10000),
		ProfitMargin:    decimal.NewFromInt(100),
	}

	out, err := export.ProfitLossCSV(report)
	require.NoError(t, err)

	assert.Contains(t, out, "Profit and Loss Statement")
	assert.Contains(t, out, "From,2025-04-01")
	assert.Contains(t, out, ",4110,Product Sales,10000.00")
	assert.Contains(t, out, "Net Profit,,,10000.00")
	assert.Contains(t, out, "Profit Margin %,,,100.00")
}

func TestCashFlowCSV(t *testing.T) {
	report := &domain.CashFlowReport{
		ClientID: "client-1",
		FromDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		Operating: domain.OperatingActivities{
			NetProfit:    decimal.NewFromInt(7000),
			Depreciation: decimal.NewFromInt(1000),
			NetCash:      decimal.NewFromInt(8000),
		},
		NetCashFlow: decimal.NewFromInt(8000),
		OpeningCash: decimal.NewFromInt(4500),
		ClosingCash: decimal.NewFromInt(12500),
	}

	out, err := export.CashFlowCSV(report)
	require.NoError(t, err)

	assert.Contains(t, out, "Cash Flow Statement")
	assert.Contains(t, out, ",Net Profit,7000.00")
	assert.Contains(t, out, ",Depreciation,1000.00")
	assert.Contains(t, out, "Net Cash from Operating,,8000.00")
	assert.Contains(t, out, "Opening Cash,,4500.00")
	assert.Contains(t, out, "Closing Cash,,12500.00")
}

func TestGSTR1CSV(t *testing.T) {
	report := &domain.GSTR1Report{
		ClientID: "client-1",
		GSTIN:    "29ABCDE1234F1Z5",
		Month:    time.April,
		Year:     2025,
		B2B: domain.GSTR1Bucket{
			Invoices: []domain.GSTR1InvoiceDetail{
				{
					InvoiceNumber: "INV-001",
					InvoiceDate:   time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
					BuyerGSTIN:    "27FGHIJ5678K1Z3",
					TaxableValue:  decimal.NewFromInt(100000),
					Tax:           domain.GSTTaxHeads{IGST: decimal.NewFromInt(18000)},
					InvoiceValue:  decimal.NewFromInt(118000),
				},
			},
			InvoiceCount: 1,
			TaxableValue: decimal.NewFromInt(100000),
			Tax:          domain.GSTTaxHeads{IGST: decimal.NewFromInt(18000)},
			InvoiceValue: decimal.NewFromInt(118000),
		},
		TotalTaxableValue: decimal.NewFromInt(100000),
		TotalTax:          domain.GSTTaxHeads{IGST: decimal.NewFromInt(18000)},
		TotalOutwardValue: decimal.NewFromInt(118000),
	}

	out, err := export.GSTR1CSV(report)
	require.NoError(t, err)

	assert.Contains(t, out, "GSTR-1 Outward Supplies")
	assert.Contains(t, out, "Period,04-2025")
	assert.Contains(t, out, ",INV-001,2025-04-10,27FGHIJ5678K1Z3,100000.00,18000.00,118000.00")
	assert.Contains(t, out, "Total B2B,1 invoices")
	assert.Contains(t, out, "Total Outward Value,,,,118000.00")
}

func TestGSTR3BCSV(t *testing.T) {
	report := &domain.GSTR3BReport{
		ClientID:            "client-1",
		GSTIN:               "29ABCDE1234F1Z5",
		Month:               time.April,
		Year:                2025,
		OutwardTaxableValue: decimal.NewFromInt(150000),
		OutwardTax:          domain.GSTTaxHeads{CGST: decimal.NewFromInt(9000), SGST: decimal.NewFromInt(9000), IGST: decimal.NewFromInt(9000)},
		InputTaxCredit:      domain.GSTTaxHeads{CGST: decimal.NewFromInt(4000), SGST: decimal.NewFromInt(4000), IGST: decimal.NewFromInt(12000)},
		TaxPayable:          domain.GSTTaxHeads{CGST: decimal.NewFromInt(5000), SGST: decimal.NewFromInt(5000)},
	}

	out, err := export.GSTR3BCSV(report)
	require.NoError(t, err)

	assert.Contains(t, out, "GSTR-3B Summary Return")
	assert.Contains(t, out, "Outward Supplies,150000.00,9000.00,9000.00,9000.00,0.00")
	assert.Contains(t, out, "Tax Payable,,5000.00,5000.00,0.00,0.00")
}
