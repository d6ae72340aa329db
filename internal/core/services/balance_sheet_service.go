package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// balanceSheetService implements the BalanceSheetService interface. It is the
// only deriver that builds on another report's output: it partitions the
// trial balance snapshot instead of re-querying line items.
type balanceSheetService struct {
	BaseService
	trialBalance portssvc.TrialBalanceService
}

// NewBalanceSheetService creates a new balance sheet service.
func NewBalanceSheetService(trialBalance portssvc.TrialBalanceService, events portssvc.EventPublisher) portssvc.BalanceSheetService {
	return &balanceSheetService{
		BaseService:  BaseService{Events: events},
		trialBalance: trialBalance,
	}
}

var _ portssvc.BalanceSheetService = (*balanceSheetService)(nil)

// Generate produces a balance sheet as of a specific date.
func (s *balanceSheetService) Generate(ctx context.Context, clientID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	trialBalance, err := s.trialBalance.BuildTrialBalance(ctx, clientID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to build trial balance for balance sheet: %w", err)
	}

	report := s.derive(clientID, asOf, trialBalance)

	s.LogInfo(ctx, "Balance sheet report generated",
		slog.String("client_id", clientID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Bool("is_balanced", report.IsBalanced))
	s.EmitReportGenerated(ctx, clientID, "balance_sheet", asOf, asOf)
	return report, nil
}

// Comparative produces balance sheets for two dates concurrently plus the
// movement of the headline totals between them.
func (s *balanceSheetService) Comparative(ctx context.Context, clientID string, asOf, previousAsOf time.Time) (*domain.ComparativeBalanceSheet, error) {
	var current, previous *domain.BalanceSheetReport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.Generate(gctx, clientID, asOf)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.Generate(gctx, clientID, previousAsOf)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.ComparativeBalanceSheet{
		Current:           current,
		Previous:          previous,
		AssetsChange:      current.TotalAssets.Sub(previous.TotalAssets),
		LiabilitiesChange: current.TotalLiabilities.Sub(previous.TotalLiabilities),
		EquityChange:      current.TotalEquity.Sub(previous.TotalEquity),
	}, nil
}

// derive partitions a trial balance snapshot into the balance sheet structure.
func (s *balanceSheetService) derive(clientID string, asOf time.Time, trialBalance *domain.TrialBalanceReport) *domain.BalanceSheetReport {
	grouped := trialBalance.GroupByType()

	report := &domain.BalanceSheetReport{
		ClientID: clientID,
		AsOf:     asOf,
	}

	for _, row := range grouped[domain.Asset] {
		line := domain.BalanceSheetLine{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Amount:      row.DebitTotal.Sub(row.CreditTotal),
		}
		// Anything outside [1100,1500) lands in non-current, including codes
		// below 1100. The catch-all is intentional, not a true "else".
		if accounting.InRange(row.AccountCode, 1100, 1500) {
			report.CurrentAssets.Lines = append(report.CurrentAssets.Lines, line)
			report.CurrentAssets.Total = report.CurrentAssets.Total.Add(line.Amount)
		} else {
			report.NonCurrentAssets.Lines = append(report.NonCurrentAssets.Lines, line)
			report.NonCurrentAssets.Total = report.NonCurrentAssets.Total.Add(line.Amount)
		}
	}

	for _, row := range grouped[domain.Liability] {
		line := domain.BalanceSheetLine{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Amount:      row.CreditTotal.Sub(row.DebitTotal),
		}
		if accounting.InRange(row.AccountCode, 2100, 2500) {
			report.CurrentLiabilities.Lines = append(report.CurrentLiabilities.Lines, line)
			report.CurrentLiabilities.Total = report.CurrentLiabilities.Total.Add(line.Amount)
		} else {
			report.NonCurrentLiabilities.Lines = append(report.NonCurrentLiabilities.Lines, line)
			report.NonCurrentLiabilities.Total = report.NonCurrentLiabilities.Total.Add(line.Amount)
		}
	}

	for _, row := range grouped[domain.Equity] {
		line := domain.BalanceSheetLine{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Amount:      row.CreditTotal.Sub(row.DebitTotal),
		}
		report.Equity.Lines = append(report.Equity.Lines, line)
		report.Equity.Total = report.Equity.Total.Add(line.Amount)
	}

	// Fold the current year's result into equity from the same snapshot so the
	// sheet balances mid-year without a closing entry.
	netProfit := currentYearProfit(grouped)
	if !netProfit.IsZero() {
		report.Equity.Lines = append(report.Equity.Lines, domain.BalanceSheetLine{
			AccountCode: accounting.CodeCurrentYearProfit,
			AccountName: "Current Year Profit",
			Amount:      netProfit,
			Derived:     true,
		})
		report.Equity.Total = report.Equity.Total.Add(netProfit)
	}

	report.TotalAssets = report.CurrentAssets.Total.Add(report.NonCurrentAssets.Total)
	report.TotalLiabilities = report.CurrentLiabilities.Total.Add(report.NonCurrentLiabilities.Total)
	report.TotalEquity = report.Equity.Total
	report.TotalLiabilitiesEquity = report.TotalLiabilities.Add(report.TotalEquity)
	report.Difference = report.TotalAssets.Sub(report.TotalLiabilitiesEquity).Abs()
	report.IsBalanced = report.Difference.LessThan(domain.BalanceTolerance)
	report.GeneratedAt = time.Now().UTC()

	return report
}

// currentYearProfit computes income minus expense over the trial balance
// snapshot the sheet itself was built from.
func currentYearProfit(grouped map[domain.AccountType][]domain.TrialBalanceRow) decimal.Decimal {
	income := decimal.Zero
	for _, row := range grouped[domain.Income] {
		income = income.Add(row.CreditTotal.Sub(row.DebitTotal))
	}
	expense := decimal.Zero
	for _, row := range grouped[domain.Expense] {
		expense = expense.Add(row.DebitTotal.Sub(row.CreditTotal))
	}
	return income.Sub(expense)
}
