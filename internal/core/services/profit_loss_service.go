package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var oneHundred = decimal.NewFromInt(100)

// profitLossService implements the ProfitLossService interface. It
// re-aggregates posted journal line items directly, independent of the trial
// balance query path.
type profitLossService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
}

// NewProfitLossService creates a new profit and loss service.
func NewProfitLossService(ledgerRepo portsrepo.LedgerRepository, events portssvc.EventPublisher) portssvc.ProfitLossService {
	return &profitLossService{
		BaseService: BaseService{Events: events},
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.ProfitLossService = (*profitLossService)(nil)

// Generate produces a profit and loss statement for [from, to].
func (s *profitLossService) Generate(ctx context.Context, clientID string, from, to time.Time) (*domain.ProfitLossReport, error) {
	report, err := s.generate(ctx, clientID, from, to)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Profit and loss report generated",
		slog.String("client_id", clientID),
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.String("net_profit", report.NetProfit.String()))
	s.EmitReportGenerated(ctx, clientID, "profit_and_loss", from, to)
	return report, nil
}

// Comparative produces two independent statements concurrently plus deltas.
func (s *profitLossService) Comparative(ctx context.Context, clientID string, from, to, previousFrom, previousTo time.Time) (*domain.ComparativeProfitLoss, error) {
	var current, previous *domain.ProfitLossReport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.generate(gctx, clientID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.generate(gctx, clientID, previousFrom, previousTo)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &domain.ComparativeProfitLoss{
		Current:         current,
		Previous:        previous,
		RevenueChange:   periodDelta(current.TotalRevenue, previous.TotalRevenue),
		GrossChange:     periodDelta(current.GrossProfit, previous.GrossProfit),
		OperatingChange: periodDelta(current.OperatingProfit, previous.OperatingProfit),
		NetProfitChange: periodDelta(current.NetProfit, previous.NetProfit),
	}

	s.EmitReportGenerated(ctx, clientID, "profit_and_loss_comparative", from, to)
	return result, nil
}

// MonthlySummary produces a condensed statement per calendar month. A failed
// month is logged and reported all-zero so the sequence always completes.
func (s *profitLossService) MonthlySummary(ctx context.Context, clientID string, year int) (*domain.MonthlyProfitLossSummary, error) {
	summary := &domain.MonthlyProfitLossSummary{
		ClientID: clientID,
		Year:     year,
		Months:   make([]domain.MonthlyProfitLoss, 0, 12),
	}

	for month := time.January; month <= time.December; month++ {
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0).AddDate(0, 0, -1)

		report, err := s.generate(ctx, clientID, from, to)
		if err != nil {
			s.LogWarn(ctx, "Monthly profit and loss computation failed, reporting month as zero",
				slog.String("client_id", clientID),
				slog.Int("year", year),
				slog.String("month", month.String()),
				slog.String("error", err.Error()))
			summary.Months = append(summary.Months, domain.MonthlyProfitLoss{
				Month:        month,
				TotalRevenue: decimal.Zero,
				TotalExpense: decimal.Zero,
				NetProfit:    decimal.Zero,
			})
			continue
		}

		totalExpense := report.CostOfSales.Total.
			Add(report.OperatingExpenses.Total).
			Add(report.OtherExpenses.Total)
		summary.Months = append(summary.Months, domain.MonthlyProfitLoss{
			Month:        month,
			TotalRevenue: report.TotalRevenue,
			TotalExpense: totalExpense,
			NetProfit:    report.NetProfit,
		})
	}

	summary.GeneratedAt = time.Now().UTC()
	s.EmitReportGenerated(ctx, clientID,
		"profit_and_loss_monthly",
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
	return summary, nil
}

func (s *profitLossService) generate(ctx context.Context, clientID string, from, to time.Time) (*domain.ProfitLossReport, error) {
	items, err := s.ledgerRepo.GetPostedLineItems(ctx, clientID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve journal line items for profit and loss",
			slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to retrieve journal line items: %w", err)
	}

	report := &domain.ProfitLossReport{
		ClientID: clientID,
		FromDate: from,
		ToDate:   to,
	}

	for _, total := range accounting.AccumulateByAccount(items) {
		bucket, ok := accounting.Classify(total.AccountCode)
		if !ok {
			continue
		}
		balance := total.Balance()

		// Revenue-side accounts must carry a credit balance and expense-side
		// accounts a debit balance; rows with the wrong sign for their bucket
		// are dropped.
		switch bucket {
		case accounting.BucketSales:
			if balance.IsPositive() {
				appendPLLine(&report.Sales, total, balance)
			}
		case accounting.BucketOtherIncome:
			if balance.IsPositive() {
				appendPLLine(&report.OtherIncome, total, balance)
			}
		case accounting.BucketCostOfSales:
			if balance.IsNegative() {
				appendPLLine(&report.CostOfSales, total, balance.Neg())
			}
		case accounting.BucketOperatingExpense:
			if balance.IsNegative() {
				appendPLLine(&report.OperatingExpenses, total, balance.Neg())
			}
		case accounting.BucketOtherExpense:
			if balance.IsNegative() {
				appendPLLine(&report.OtherExpenses, total, balance.Neg())
			}
		}
	}

	report.TotalRevenue = report.Sales.Total.Add(report.OtherIncome.Total)
	report.GrossProfit = report.TotalRevenue.Sub(report.CostOfSales.Total)
	report.OperatingProfit = report.GrossProfit.Sub(report.OperatingExpenses.Total)
	report.ProfitBeforeTax = report.OperatingProfit.Sub(report.OtherExpenses.Total)
	report.TaxExpense = decimal.Zero // Tax computation not yet wired
	report.NetProfit = report.ProfitBeforeTax.Sub(report.TaxExpense)
	if report.TotalRevenue.IsZero() {
		report.ProfitMargin = decimal.Zero
	} else {
		report.ProfitMargin = report.NetProfit.Div(report.TotalRevenue).Mul(oneHundred)
	}
	report.GeneratedAt = time.Now().UTC()

	return report, nil
}

func appendPLLine(section *domain.ProfitLossSection, total accounting.AccountTotal, amount decimal.Decimal) {
	section.Lines = append(section.Lines, domain.ProfitLossLine{
		AccountCode: total.AccountCode,
		AccountName: total.AccountName,
		Amount:      amount,
	})
	section.Total = section.Total.Add(amount)
}

// periodDelta computes the absolute and percentage movement between two
// figures. The percentage denominator is the previous figure's absolute value
// so the sign stays meaningful when the figure flips sign; it is zero when the
// previous figure is exactly zero.
func periodDelta(current, previous decimal.Decimal) domain.ProfitLossDelta {
	delta := domain.ProfitLossDelta{
		Absolute: current.Sub(previous),
	}
	if previous.IsZero() {
		delta.Percent = decimal.Zero
	} else {
		delta.Percent = delta.Absolute.Div(previous.Abs()).Mul(oneHundred)
	}
	return delta
}
