package dto

import (
	"fmt"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GSTR1Response represents the GSTR-1 outward-supplies return response.
type GSTR1Response struct {
	ClientID string             `json:"clientID"`
	GSTIN    string             `json:"gstin"`
	Period   string             `json:"period"` // MM-YYYY
	B2B      domain.GSTR1Bucket `json:"b2b"`
	B2CLarge domain.GSTR1Bucket `json:"b2cLarge"`
	B2CSmall domain.GSTR1Bucket `json:"b2cSmall"`
	Summary  struct {
		TotalTaxableValue decimal.Decimal    `json:"totalTaxableValue"`
		TotalTax          domain.GSTTaxHeads `json:"totalTax"`
		TotalTaxAmount    decimal.Decimal    `json:"totalTaxAmount"`
		TotalOutwardValue decimal.Decimal    `json:"totalOutwardValue"`
	} `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ToGSTR1Response converts a domain GSTR-1 report to a DTO response.
func ToGSTR1Response(report *domain.GSTR1Report) GSTR1Response {
	response := GSTR1Response{
		ClientID:    report.ClientID,
		GSTIN:       report.GSTIN,
		Period:      formatPeriod(report.Month, report.Year),
		B2B:         report.B2B,
		B2CLarge:    report.B2CLarge,
		B2CSmall:    report.B2CSmall,
		GeneratedAt: report.GeneratedAt,
	}
	response.Summary.TotalTaxableValue = report.TotalTaxableValue
	response.Summary.TotalTax = report.TotalTax
	response.Summary.TotalTaxAmount = report.TotalTax.Total()
	response.Summary.TotalOutwardValue = report.TotalOutwardValue
	return response
}

// GSTR3BResponse represents the GSTR-3B summary return response.
type GSTR3BResponse struct {
	ClientID        string `json:"clientID"`
	GSTIN           string `json:"gstin"`
	Period          string `json:"period"` // MM-YYYY
	OutwardSupplies struct {
		TaxableValue decimal.Decimal    `json:"taxableValue"`
		Tax          domain.GSTTaxHeads `json:"tax"`
	} `json:"outwardSupplies"`
	InterStateSupplies struct {
		TaxableValue decimal.Decimal `json:"taxableValue"`
		IGST         decimal.Decimal `json:"igst"`
	} `json:"interStateSupplies"`
	InputTaxCredit domain.GSTTaxHeads `json:"inputTaxCredit"`
	TaxPayable     domain.GSTTaxHeads `json:"taxPayable"`
	GeneratedAt    time.Time          `json:"generatedAt"`
}

// ToGSTR3BResponse converts a domain GSTR-3B report to a DTO response.
func ToGSTR3BResponse(report *domain.GSTR3BReport) GSTR3BResponse {
	response := GSTR3BResponse{
		ClientID:       report.ClientID,
		GSTIN:          report.GSTIN,
		Period:         formatPeriod(report.Month, report.Year),
		InputTaxCredit: report.InputTaxCredit,
		TaxPayable:     report.TaxPayable,
		GeneratedAt:    report.GeneratedAt,
	}
	response.OutwardSupplies.TaxableValue = report.OutwardTaxableValue
	response.OutwardSupplies.Tax = report.OutwardTax
	response.InterStateSupplies.TaxableValue = report.InterStateTaxableValue
	response.InterStateSupplies.IGST = report.InterStateIGST
	return response
}

// GSTLiabilityResponse represents the GST liability response.
type GSTLiabilityResponse struct {
	ClientID       string             `json:"clientID"`
	Period         string             `json:"period"` // MM-YYYY
	OutputTax      decimal.Decimal    `json:"outputTax"`
	InputTaxCredit decimal.Decimal    `json:"inputTaxCredit"`
	TaxPayable     domain.GSTTaxHeads `json:"taxPayable"`
	NetPayable     decimal.Decimal    `json:"netPayable"`
	DueDate        string             `json:"dueDate"`
	GeneratedAt    time.Time          `json:"generatedAt"`
}

// ToGSTLiabilityResponse converts a domain GST liability to a DTO response.
func ToGSTLiabilityResponse(liability *domain.GSTLiability) GSTLiabilityResponse {
	return GSTLiabilityResponse{
		ClientID:       liability.ClientID,
		Period:         formatPeriod(liability.Month, liability.Year),
		OutputTax:      liability.OutputTax,
		InputTaxCredit: liability.InputTaxCredit,
		TaxPayable:     liability.TaxPayable,
		NetPayable:     liability.NetPayable,
		DueDate:        liability.DueDate.Format(dateLayout),
		GeneratedAt:    liability.GeneratedAt,
	}
}

func formatPeriod(month time.Month, year int) string {
	return fmt.Sprintf("%02d-%04d", int(month), year)
}
