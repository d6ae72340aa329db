package repositories

import (
	"context"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
)

// LedgerRepository is the read contract against the ledger store. Every report
// derivation is a pure function of what these queries return; the store owns
// per-account aggregation and account-type classification for the trial
// balance, and entry-level balance enforcement.
type LedgerRepository interface {
	// GetAggregatedTrialBalance retrieves per-account debit/credit totals over
	// all posted entries up to and including asOf.
	GetAggregatedTrialBalance(ctx context.Context, clientID string, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetPostedLineItems retrieves the line items of posted journal entries
	// dated within [from, to], inclusive both ends. A zero from means no lower
	// bound.
	GetPostedLineItems(ctx context.Context, clientID string, from, to time.Time) ([]domain.JournalLineItem, error)
}

// InvoiceRepository defines read access to extracted invoices.
type InvoiceRepository interface {
	// ListInvoices retrieves invoices of the given type dated within
	// [from, to], inclusive both ends.
	ListInvoices(ctx context.Context, clientID string, invoiceType domain.InvoiceType, from, to time.Time) ([]domain.Invoice, error)
}
