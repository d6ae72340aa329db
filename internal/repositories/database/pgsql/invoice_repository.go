package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type invoiceRepository struct {
	BaseRepository
}

func newInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &invoiceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepository = (*invoiceRepository)(nil)

// ListInvoices retrieves invoices of the given type dated within [from, to].
func (r *invoiceRepository) ListInvoices(ctx context.Context, clientID string, invoiceType domain.InvoiceType, from, to time.Time) ([]domain.Invoice, error) {
	query := `
		SELECT
			invoice_id, client_id, type, invoice_number, invoice_date,
			COALESCE(buyer_gstin, ''), COALESCE(buyer_name, ''),
			COALESCE(subtotal, 0), COALESCE(cgst, 0), COALESCE(sgst, 0),
			COALESCE(igst, 0), COALESCE(cess, 0), COALESCE(total_amount, 0),
			created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE client_id = $1
			AND type = $2
			AND invoice_date >= $3
			AND invoice_date <= $4
		ORDER BY invoice_date, invoice_number
	`

	rows, err := r.Pool.Query(ctx, query, clientID, string(invoiceType), from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	result := []domain.Invoice{}
	for rows.Next() {
		var inv domain.Invoice
		var invType string
		if err := rows.Scan(
			&inv.InvoiceID,
			&inv.ClientID,
			&invType,
			&inv.InvoiceNumber,
			&inv.InvoiceDate,
			&inv.BuyerGSTIN,
			&inv.BuyerName,
			&inv.Subtotal,
			&inv.CGST,
			&inv.SGST,
			&inv.IGST,
			&inv.Cess,
			&inv.TotalAmount,
			&inv.CreatedAt,
			&inv.CreatedBy,
			&inv.LastUpdatedAt,
			&inv.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		inv.Type = domain.InvoiceType(invType)
		result = append(result, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	return result, nil
}
