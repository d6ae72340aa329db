package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType distinguishes outward (sales) from inward (purchase) invoices.
type InvoiceType string

const (
	InvoiceTypeSales    InvoiceType = "SALES"
	InvoiceTypePurchase InvoiceType = "PURCHASE"
)

// Invoice is a tax invoice extracted from an uploaded document.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"` // Primary Key (e.g., UUID)
	ClientID      string          `json:"clientID"`  // FK -> clients.client_id
	Type          InvoiceType     `json:"type"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	BuyerGSTIN    string          `json:"buyerGSTIN"` // Empty for unregistered buyers
	BuyerName     string          `json:"buyerName"`
	Subtotal      decimal.Decimal `json:"subtotal"` // Taxable value before tax
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	Cess          decimal.Decimal `json:"cess"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AuditFields
}
