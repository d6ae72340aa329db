package export

import (
	"fmt"
	"strings"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
)

// The portal accepts a fixed place-of-supply state code and a single flat
// rate annotation per item. Rate splitting by tax slab is not derivable from
// journal data, so every item is annotated at the standard 18% rate.
const (
	portalTaxRate       = 18.0
	portalPlaceOfSupply = "29"
	portalDateLayout    = "02-01-2006"
)

// PortalGSTR1 is the GST portal upload shape for a GSTR-1 return. Field tags
// follow the portal's abbreviated JSON schema.
type PortalGSTR1 struct {
	GSTIN        string            `json:"gstin"`
	FilingPeriod string            `json:"fp"`
	B2B          []PortalB2BParty  `json:"b2b"`
	B2CL         []PortalInvoice   `json:"b2cl"`
	B2CS         []PortalB2CSEntry `json:"b2cs"`
}

// PortalB2BParty groups itemized invoices under one buyer GSTIN.
type PortalB2BParty struct {
	BuyerGSTIN string          `json:"ctin"`
	Invoices   []PortalInvoice `json:"inv"`
}

// PortalInvoice is one itemized invoice in the portal shape.
type PortalInvoice struct {
	Number        string       `json:"inum"`
	Date          string       `json:"idt"`
	Value         float64      `json:"val"`
	PlaceOfSupply string       `json:"pos"`
	ReverseCharge string       `json:"rchrg"`
	Items         []PortalItem `json:"itms"`
}

// PortalItem wraps an item detail with its ordinal.
type PortalItem struct {
	Num    int              `json:"num"`
	Detail PortalItemDetail `json:"itm_det"`
}

// PortalItemDetail carries the taxable value and head-wise tax for one item.
type PortalItemDetail struct {
	Rate         float64 `json:"rt"`
	TaxableValue float64 `json:"txval"`
	IGST         float64 `json:"iamt"`
	CGST         float64 `json:"camt"`
	SGST         float64 `json:"samt"`
	Cess         float64 `json:"csamt"`
}

// PortalB2CSEntry is the aggregate small-supplies entry.
type PortalB2CSEntry struct {
	Type          string  `json:"typ"`
	PlaceOfSupply string  `json:"pos"`
	Rate          float64 `json:"rt"`
	TaxableValue  float64 `json:"txval"`
	IGST          float64 `json:"iamt"`
	CGST          float64 `json:"camt"`
	SGST          float64 `json:"samt"`
	Cess          float64 `json:"csamt"`
}

// GSTR1Portal converts a GSTR-1 report into the portal upload shape.
// B2B invoices are regrouped by buyer GSTIN as the portal requires.
func GSTR1Portal(report *domain.GSTR1Report) PortalGSTR1 {
	portal := PortalGSTR1{
		GSTIN:        report.GSTIN,
		FilingPeriod: fmt.Sprintf("%02d%04d", int(report.Month), report.Year),
		B2B:          groupByBuyer(report.B2B.Invoices),
		B2CL:         make([]PortalInvoice, 0, len(report.B2CLarge.Invoices)),
		B2CS:         []PortalB2CSEntry{},
	}

	for _, inv := range report.B2CLarge.Invoices {
		portal.B2CL = append(portal.B2CL, portalInvoice(inv))
	}

	if report.B2CSmall.InvoiceCount > 0 {
		portal.B2CS = append(portal.B2CS, PortalB2CSEntry{
			Type:          "OE",
			PlaceOfSupply: portalPlaceOfSupply,
			Rate:          portalTaxRate,
			TaxableValue:  report.B2CSmall.TaxableValue.InexactFloat64(),
			IGST:          report.B2CSmall.Tax.IGST.InexactFloat64(),
			CGST:          report.B2CSmall.Tax.CGST.InexactFloat64(),
			SGST:          report.B2CSmall.Tax.SGST.InexactFloat64(),
			Cess:          report.B2CSmall.Tax.Cess.InexactFloat64(),
		})
	}

	return portal
}

func groupByBuyer(invoices []domain.GSTR1InvoiceDetail) []PortalB2BParty {
	parties := []PortalB2BParty{}
	index := make(map[string]int)
	for _, inv := range invoices {
		ctin := strings.ToUpper(inv.BuyerGSTIN)
		i, ok := index[ctin]
		if !ok {
			i = len(parties)
			index[ctin] = i
			parties = append(parties, PortalB2BParty{BuyerGSTIN: ctin})
		}
		parties[i].Invoices = append(parties[i].Invoices, portalInvoice(inv))
	}
	return parties
}

func portalInvoice(inv domain.GSTR1InvoiceDetail) PortalInvoice {
	return PortalInvoice{
		Number:        inv.InvoiceNumber,
		Date:          inv.InvoiceDate.Format(portalDateLayout),
		Value:         inv.InvoiceValue.InexactFloat64(),
		PlaceOfSupply: portalPlaceOfSupply,
		ReverseCharge: "N",
		Items: []PortalItem{
			{
				Num: 1,
				Detail: PortalItemDetail{
					Rate:         portalTaxRate,
					TaxableValue: inv.TaxableValue.InexactFloat64(),
					IGST:         inv.Tax.IGST.InexactFloat64(),
					CGST:         inv.Tax.CGST.InexactFloat64(),
					SGST:         inv.Tax.SGST.InexactFloat64(),
					Cess:         inv.Tax.Cess.InexactFloat64(),
				},
			},
		},
	}
}
