package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/apperrors"
	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// gstService implements the GSTService interface. GST returns aggregate
// extracted invoices, not journal entries.
type gstService struct {
	BaseService
	clientRepo  portsrepo.ClientRepository
	invoiceRepo portsrepo.InvoiceRepository
}

// NewGSTService creates a new GST service.
func NewGSTService(clientRepo portsrepo.ClientRepository, invoiceRepo portsrepo.InvoiceRepository, events portssvc.EventPublisher) portssvc.GSTService {
	return &gstService{
		BaseService: BaseService{Events: events},
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
	}
}

var _ portssvc.GSTService = (*gstService)(nil)

// GenerateGSTR1 builds the outward-supplies return for a calendar month.
// Buyer-GSTIN presence takes precedence over the invoice-value threshold:
// a registered-buyer invoice goes to B2B regardless of size.
func (s *gstService) GenerateGSTR1(ctx context.Context, clientID string, month time.Month, year int) (*domain.GSTR1Report, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch client for GSTR-1", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	if !client.IsGSTRegistered() {
		s.LogWarn(ctx, "GSTR-1 requested for client without registered GSTIN",
			slog.String("client_id", clientID))
		return nil, fmt.Errorf("client %s has no registered GSTIN: %w", clientID, apperrors.ErrValidation)
	}

	from, to := monthRange(month, year)
	invoices, err := s.invoiceRepo.ListInvoices(ctx, clientID, domain.InvoiceTypeSales, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales invoices for GSTR-1", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list sales invoices: %w", err)
	}

	report := &domain.GSTR1Report{
		ClientID: clientID,
		GSTIN:    client.GSTIN,
		Month:    month,
		Year:     year,
	}

	for _, inv := range invoices {
		switch {
		case inv.BuyerGSTIN != "":
			addToBucket(&report.B2B, inv, true)
		case inv.TotalAmount.GreaterThan(domain.B2CLargeThreshold):
			addToBucket(&report.B2CLarge, inv, true)
		default:
			// B2C-small is reported aggregated; no per-invoice detail kept.
			addToBucket(&report.B2CSmall, inv, false)
		}
	}

	report.TotalTaxableValue = report.B2B.TaxableValue.
		Add(report.B2CLarge.TaxableValue).
		Add(report.B2CSmall.TaxableValue)
	report.TotalTax = report.B2B.Tax.Add(report.B2CLarge.Tax).Add(report.B2CSmall.Tax)
	report.TotalOutwardValue = report.TotalTaxableValue.Add(report.TotalTax.Total())
	report.GeneratedAt = time.Now().UTC()

	s.LogInfo(ctx, "GSTR-1 report generated",
		slog.String("client_id", clientID),
		slog.Int("year", year),
		slog.String("month", month.String()),
		slog.Int("invoice_count", len(invoices)))
	s.EmitReportGenerated(ctx, clientID, "gstr1", from, to)
	return report, nil
}

// GenerateGSTR3B builds the monthly summary return from separate sales and
// purchase invoice fetches.
func (s *gstService) GenerateGSTR3B(ctx context.Context, clientID string, month time.Month, year int) (*domain.GSTR3BReport, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch client for GSTR-3B", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	from, to := monthRange(month, year)
	sales, err := s.invoiceRepo.ListInvoices(ctx, clientID, domain.InvoiceTypeSales, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales invoices for GSTR-3B", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list sales invoices: %w", err)
	}
	purchases, err := s.invoiceRepo.ListInvoices(ctx, clientID, domain.InvoiceTypePurchase, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase invoices for GSTR-3B", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list purchase invoices: %w", err)
	}

	report := &domain.GSTR3BReport{
		ClientID: clientID,
		GSTIN:    client.GSTIN,
		Month:    month,
		Year:     year,
	}

	for _, inv := range sales {
		report.OutwardTaxableValue = report.OutwardTaxableValue.Add(inv.Subtotal)
		report.OutwardTax = report.OutwardTax.Add(taxHeads(inv))
		if inv.IGST.IsPositive() {
			report.InterStateTaxableValue = report.InterStateTaxableValue.Add(inv.Subtotal)
			report.InterStateIGST = report.InterStateIGST.Add(inv.IGST)
		}
	}
	for _, inv := range purchases {
		report.InputTaxCredit = report.InputTaxCredit.Add(taxHeads(inv))
	}

	// Credits never go negative or roll forward: payable is floored at zero
	// per tax head.
	report.TaxPayable = domain.GSTTaxHeads{
		CGST: floorZero(report.OutwardTax.CGST.Sub(report.InputTaxCredit.CGST)),
		SGST: floorZero(report.OutwardTax.SGST.Sub(report.InputTaxCredit.SGST)),
		IGST: floorZero(report.OutwardTax.IGST.Sub(report.InputTaxCredit.IGST)),
		Cess: floorZero(report.OutwardTax.Cess.Sub(report.InputTaxCredit.Cess)),
	}
	report.GeneratedAt = time.Now().UTC()

	s.LogInfo(ctx, "GSTR-3B report generated",
		slog.String("client_id", clientID),
		slog.Int("year", year),
		slog.String("month", month.String()),
		slog.Int("sales_invoices", len(sales)),
		slog.Int("purchase_invoices", len(purchases)))
	s.EmitReportGenerated(ctx, clientID, "gstr3b", from, to)
	return report, nil
}

// CalculateLiability derives what is owed for a period from the GSTR-3B
// figures. The due date is the 20th of the following month; no holiday
// adjustment.
func (s *gstService) CalculateLiability(ctx context.Context, clientID string, month time.Month, year int) (*domain.GSTLiability, error) {
	r3b, err := s.GenerateGSTR3B(ctx, clientID, month, year)
	if err != nil {
		return nil, err
	}

	return &domain.GSTLiability{
		ClientID:       clientID,
		Month:          month,
		Year:           year,
		OutputTax:      r3b.OutwardTax.Total(),
		InputTaxCredit: r3b.InputTaxCredit.Total(),
		TaxPayable:     r3b.TaxPayable,
		NetPayable:     r3b.TaxPayable.Total(),
		DueDate:        time.Date(year, month+1, 20, 0, 0, 0, 0, time.UTC),
		GeneratedAt:    time.Now().UTC(),
	}, nil
}

func addToBucket(bucket *domain.GSTR1Bucket, inv domain.Invoice, itemized bool) {
	heads := taxHeads(inv)
	if itemized {
		bucket.Invoices = append(bucket.Invoices, domain.GSTR1InvoiceDetail{
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   inv.InvoiceDate,
			BuyerGSTIN:    inv.BuyerGSTIN,
			BuyerName:     inv.BuyerName,
			TaxableValue:  inv.Subtotal,
			Tax:           heads,
			InvoiceValue:  inv.TotalAmount,
		})
	}
	bucket.InvoiceCount++
	bucket.TaxableValue = bucket.TaxableValue.Add(inv.Subtotal)
	bucket.Tax = bucket.Tax.Add(heads)
	bucket.InvoiceValue = bucket.InvoiceValue.Add(inv.TotalAmount)
}

func taxHeads(inv domain.Invoice) domain.GSTTaxHeads {
	return domain.GSTTaxHeads{CGST: inv.CGST, SGST: inv.SGST, IGST: inv.IGST, Cess: inv.Cess}
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// monthRange returns the first and last day of a calendar month.
func monthRange(month time.Month, year int) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0).AddDate(0, 0, -1)
}
