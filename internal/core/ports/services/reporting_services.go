package services

import (
	"context"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
)

// TrialBalanceService builds the per-account totals report the other
// statement derivations hang off.
type TrialBalanceService interface {
	// BuildTrialBalance generates a trial balance as of a specific date.
	BuildTrialBalance(ctx context.Context, clientID string, asOf time.Time) (*domain.TrialBalanceReport, error)
}

// BalanceSheetService derives the statement of financial position from the
// trial balance.
type BalanceSheetService interface {
	// Generate produces a balance sheet as of a specific date.
	Generate(ctx context.Context, clientID string, asOf time.Time) (*domain.BalanceSheetReport, error)

	// Comparative produces balance sheets for two dates plus the movement of
	// the headline totals. The two computations are independent and run
	// concurrently.
	Comparative(ctx context.Context, clientID string, asOf, previousAsOf time.Time) (*domain.ComparativeBalanceSheet, error)
}

// ProfitLossService derives the income statement by re-aggregating posted
// journal line items for a period.
type ProfitLossService interface {
	// Generate produces a profit and loss statement for [from, to].
	Generate(ctx context.Context, clientID string, from, to time.Time) (*domain.ProfitLossReport, error)

	// Comparative produces two independent statements plus period-over-period
	// deltas. The two computations run concurrently.
	Comparative(ctx context.Context, clientID string, from, to, previousFrom, previousTo time.Time) (*domain.ComparativeProfitLoss, error)

	// MonthlySummary produces a condensed statement per calendar month of a
	// year. A month whose computation fails is reported all-zero rather than
	// aborting the sequence.
	MonthlySummary(ctx context.Context, clientID string, year int) (*domain.MonthlyProfitLossSummary, error)
}

// CashFlowService derives the cash flow statement for a period.
type CashFlowService interface {
	Generate(ctx context.Context, clientID string, from, to time.Time) (*domain.CashFlowReport, error)
}

// GSTService derives the monthly GST returns from extracted invoices.
type GSTService interface {
	// GenerateGSTR1 builds the outward-supplies return. The client must have a
	// registered GSTIN; absence fails with apperrors.ErrValidation.
	GenerateGSTR1(ctx context.Context, clientID string, month time.Month, year int) (*domain.GSTR1Report, error)

	// GenerateGSTR3B builds the summary return from sales and purchase invoices.
	GenerateGSTR3B(ctx context.Context, clientID string, month time.Month, year int) (*domain.GSTR3BReport, error)

	// CalculateLiability derives the net payable and due date for a period.
	CalculateLiability(ctx context.Context, clientID string, month time.Month, year int) (*domain.GSTLiability, error)
}

// ClientService exposes client master data reads.
type ClientService interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}
