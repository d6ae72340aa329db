package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// B2CLargeThreshold is the invoice value above which an outward supply to an
// unregistered buyer must be reported itemized (B2C-large) in GSTR-1.
var B2CLargeThreshold = decimal.NewFromInt(250000)

// GSTTaxHeads carries an amount per GST tax head.
type GSTTaxHeads struct {
	CGST decimal.Decimal `json:"cgst"`
	SGST decimal.Decimal `json:"sgst"`
	IGST decimal.Decimal `json:"igst"`
	Cess decimal.Decimal `json:"cess"`
}

// Add returns the head-wise sum of t and other.
func (t GSTTaxHeads) Add(other GSTTaxHeads) GSTTaxHeads {
	return GSTTaxHeads{
		CGST: t.CGST.Add(other.CGST),
		SGST: t.SGST.Add(other.SGST),
		IGST: t.IGST.Add(other.IGST),
		Cess: t.Cess.Add(other.Cess),
	}
}

// Total returns the sum across all heads.
func (t GSTTaxHeads) Total() decimal.Decimal {
	return t.CGST.Add(t.SGST).Add(t.IGST).Add(t.Cess)
}

// GSTR1InvoiceDetail is one itemized invoice inside a GSTR-1 bucket.
type GSTR1InvoiceDetail struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	BuyerGSTIN    string          `json:"buyerGSTIN,omitempty"`
	BuyerName     string          `json:"buyerName"`
	TaxableValue  decimal.Decimal `json:"taxableValue"`
	Tax           GSTTaxHeads     `json:"tax"`
	InvoiceValue  decimal.Decimal `json:"invoiceValue"`
}

// GSTR1Bucket aggregates one outward-supply category. B2C-small keeps no
// per-invoice detail, only the aggregate figures.
type GSTR1Bucket struct {
	Invoices     []GSTR1InvoiceDetail `json:"invoices,omitempty"`
	InvoiceCount int                  `json:"invoiceCount"`
	TaxableValue decimal.Decimal      `json:"taxableValue"`
	Tax          GSTTaxHeads          `json:"tax"`
	InvoiceValue decimal.Decimal      `json:"invoiceValue"`
}

// GSTR1Report is the outward-supplies return for a calendar month.
type GSTR1Report struct {
	ClientID          string          `json:"clientID"`
	GSTIN             string          `json:"gstin"`
	Month             time.Month      `json:"month"`
	Year              int             `json:"year"`
	B2B               GSTR1Bucket     `json:"b2b"`
	B2CLarge          GSTR1Bucket     `json:"b2cLarge"`
	B2CSmall          GSTR1Bucket     `json:"b2cSmall"`
	TotalTaxableValue decimal.Decimal `json:"totalTaxableValue"`
	TotalTax          GSTTaxHeads     `json:"totalTax"`
	TotalOutwardValue decimal.Decimal `json:"totalOutwardValue"`
	GeneratedAt       time.Time       `json:"generatedAt"`
}

// GSTR3BReport is the monthly summary return: output tax versus input tax
// credit with per-head payable. Credits never go negative or roll forward.
type GSTR3BReport struct {
	ClientID               string          `json:"clientID"`
	GSTIN                  string          `json:"gstin"`
	Month                  time.Month      `json:"month"`
	Year                   int             `json:"year"`
	OutwardTaxableValue    decimal.Decimal `json:"outwardTaxableValue"`
	OutwardTax             GSTTaxHeads     `json:"outwardTax"`
	InterStateTaxableValue decimal.Decimal `json:"interStateTaxableValue"`
	InterStateIGST         decimal.Decimal `json:"interStateIGST"`
	InputTaxCredit         GSTTaxHeads     `json:"inputTaxCredit"`
	TaxPayable             GSTTaxHeads     `json:"taxPayable"`
	GeneratedAt            time.Time       `json:"generatedAt"`
}

// GSTLiability summarises what is owed for a period and when it falls due.
type GSTLiability struct {
	ClientID       string          `json:"clientID"`
	Month          time.Month      `json:"month"`
	Year           int             `json:"year"`
	OutputTax      decimal.Decimal `json:"outputTax"`
	InputTaxCredit decimal.Decimal `json:"inputTaxCredit"`
	TaxPayable     GSTTaxHeads     `json:"taxPayable"`
	NetPayable     decimal.Decimal `json:"netPayable"`
	DueDate        time.Time       `json:"dueDate"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}
