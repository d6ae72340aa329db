package export_test

import (
	"testing"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	"github.com/bahikhata/bahikhata_backend/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func portalDetail(number, buyerGSTIN string, taxable, igst int64) domain.GSTR1InvoiceDetail {
	return domain.GSTR1InvoiceDetail{
		InvoiceNumber: number,
		InvoiceDate:   time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
		BuyerGSTIN:    buyerGSTIN,
		TaxableValue:  decimal.NewFromInt(taxable),
		Tax:           domain.GSTTaxHeads{IGST: decimal.NewFromInt(igst)},
		InvoiceValue:  decimal.NewFromInt(taxable + igst),
	}
}

func TestGSTR1Portal_GroupsB2BByBuyerGSTIN(t *testing.T) {
	report := &domain.GSTR1Report{
		GSTIN: "29ABCDE1234F1Z5",
		Month: time.April,
		Year:  2025,
		B2B: domain.GSTR1Bucket{
			Invoices: []domain.GSTR1InvoiceDetail{
				portalDetail("INV-001", "27FGHIJ5678K1Z3", 100000, 18000),
				portalDetail("INV-002", "33KLMNO9012P1Z7", 50000, 9000),
				// Lower case GSTIN folds into the first party.
				portalDetail("INV-003", "27fghij5678k1z3", 20000, 3600),
			},
			InvoiceCount: 3,
		},
	}

	portal := export.GSTR1Portal(report)

	assert.Equal(t, "29ABCDE1234F1Z5", portal.GSTIN)
	assert.Equal(t, "042025", portal.FilingPeriod)

	require.Len(t, portal.B2B, 2)
	assert.Equal(t, "27FGHIJ5678K1Z3", portal.B2B[0].BuyerGSTIN)
	require.Len(t, portal.B2B[0].Invoices, 2)
	assert.Equal(t, "INV-001", portal.B2B[0].Invoices[0].Number)
	assert.Equal(t, "INV-003", portal.B2B[0].Invoices[1].Number)
	assert.Equal(t, "33KLMNO9012P1Z7", portal.B2B[1].BuyerGSTIN)

	first := portal.B2B[0].Invoices[0]
	assert.Equal(t, "15-04-2025", first.Date)
	assert.Equal(t, "N", first.ReverseCharge)
	assert.Equal(t, "29", first.PlaceOfSupply)
	assert.InDelta(t, 118000.0, first.Value, 0.001)
	require.Len(t, first.Items, 1)
	assert.Equal(t, 1, first.Items[0].Num)
	assert.InDelta(t, 18.0, first.Items[0].Detail.Rate, 0.001)
	assert.InDelta(t, 100000.0, first.Items[0].Detail.TaxableValue, 0.001)
	assert.InDelta(t, 18000.0, first.Items[0].Detail.IGST, 0.001)
}

func TestGSTR1Portal_B2CLargeStaysItemized(t *testing.T) {
	report := &domain.GSTR1Report{
		GSTIN: "29ABCDE1234F1Z5",
		Month: time.December,
		Year:  2025,
		B2CLarge: domain.GSTR1Bucket{
			Invoices: []domain.GSTR1InvoiceDetail{
				portalDetail("INV-010", "", 300000, 54000),
			},
			InvoiceCount: 1,
		},
	}

	portal := export.GSTR1Portal(report)

	assert.Equal(t, "122025", portal.FilingPeriod)
	assert.Empty(t, portal.B2B)
	require.Len(t, portal.B2CL, 1)
	assert.Equal(t, "INV-010", portal.B2CL[0].Number)
	assert.InDelta(t, 354000.0, portal.B2CL[0].Value, 0.001)
	assert.Empty(t, portal.B2CS)
}

func TestGSTR1Portal_B2CSmallAggregatesOnly(t *testing.T) {
	report := &domain.GSTR1Report{
		GSTIN: "29ABCDE1234F1Z5",
		Month: time.April,
		Year:  2025,
		B2CSmall: domain.GSTR1Bucket{
			InvoiceCount: 4,
			TaxableValue: decimal.NewFromInt(60000),
			Tax: domain.GSTTaxHeads{
				CGST: decimal.NewFromInt(5400),
				SGST: decimal.NewFromInt(5400),
			},
			InvoiceValue: decimal.NewFromInt(70800),
		},
	}

	portal := export.GSTR1Portal(report)

	require.Len(t, portal.B2CS, 1)
	entry := portal.B2CS[0]
	assert.Equal(t, "OE", entry.Type)
	assert.Equal(t, "29", entry.PlaceOfSupply)
	assert.InDelta(t, 60000.0, entry.TaxableValue, 0.001)
	assert.InDelta(t, 5400.0, entry.CGST, 0.001)
	assert.InDelta(t, 5400.0, entry.SGST, 0.001)
	assert.InDelta(t, 0.0, entry.IGST, 0.001)
}

func TestGSTR1Portal_EmptyReport(t *testing.T) {
	report := &domain.GSTR1Report{GSTIN: "29ABCDE1234F1Z5", Month: time.April, Year: 2025}

	portal := export.GSTR1Portal(report)

	assert.Empty(t, portal.B2B)
	assert.Empty(t, portal.B2CL)
	assert.Empty(t, portal.B2CS)
}
