package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// cashFlowService implements the CashFlowService interface using the indirect
// method over a single pass of the period's posted journal line items.
type cashFlowService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
}

// NewCashFlowService creates a new cash flow service.
func NewCashFlowService(ledgerRepo portsrepo.LedgerRepository, events portssvc.EventPublisher) portssvc.CashFlowService {
	return &cashFlowService{
		BaseService: BaseService{Events: events},
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.CashFlowService = (*cashFlowService)(nil)

// Generate produces a cash flow statement for [from, to].
func (s *cashFlowService) Generate(ctx context.Context, clientID string, from, to time.Time) (*domain.CashFlowReport, error) {
	items, err := s.ledgerRepo.GetPostedLineItems(ctx, clientID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve journal line items for cash flow",
			slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to retrieve journal line items: %w", err)
	}

	report := &domain.CashFlowReport{
		ClientID: clientID,
		FromDate: from,
		ToDate:   to,
	}

	income := decimal.Zero
	expense := decimal.Zero

	for _, item := range items {
		debitNet := item.Debit.Sub(item.Credit)
		creditNet := item.Credit.Sub(item.Debit)

		switch item.AccountCode {
		case accounting.CodeAccountsReceivable:
			report.Operating.ReceivablesChange = report.Operating.ReceivablesChange.Add(debitNet)
		case accounting.CodeAccountsPayable:
			report.Operating.PayablesChange = report.Operating.PayablesChange.Add(creditNet)
		case accounting.CodeInventory:
			report.Operating.InventoryChange = report.Operating.InventoryChange.Add(debitNet)
		case accounting.CodeInvestments:
			report.Investing.InvestmentsMade = report.Investing.InvestmentsMade.Add(debitNet)
		case accounting.CodeShareCapital:
			report.Financing.CapitalContributed = report.Financing.CapitalContributed.Add(creditNet)
		case accounting.CodeDrawings:
			report.Financing.DividendsPaid = report.Financing.DividendsPaid.Add(debitNet)
		}

		if accounting.InRange(item.AccountCode, 4000, 5000) {
			income = income.Add(creditNet)
		}
		if accounting.InRange(item.AccountCode, 5000, 6000) {
			expense = expense.Add(debitNet)
		}

		if s.isDepreciation(ctx, item) {
			report.Operating.Depreciation = report.Operating.Depreciation.Add(debitNet)
		}

		// Fixed-asset movement nets per line item, not per account total: a
		// single entry carrying both a debit and a credit leg on fixed-asset
		// accounts records both a purchase and a sale.
		if accounting.InRange(item.AccountCode, 1500, 1900) {
			if debitNet.IsPositive() {
				report.Investing.FixedAssetPurchases = report.Investing.FixedAssetPurchases.Add(debitNet)
			} else if debitNet.IsNegative() {
				report.Investing.FixedAssetSales = report.Investing.FixedAssetSales.Add(creditNet)
			}
		}

		if accounting.InRange(item.AccountCode, 2500, 2600) {
			if creditNet.IsPositive() {
				report.Financing.LoansReceived = report.Financing.LoansReceived.Add(creditNet)
			} else if creditNet.IsNegative() {
				report.Financing.LoansRepaid = report.Financing.LoansRepaid.Add(debitNet)
			}
		}
	}

	// The net profit feeding the operating section is recomputed from this
	// report's own pass, not taken from the profit and loss derivation.
	report.Operating.NetProfit = income.Sub(expense)

	report.Operating.NetCash = report.Operating.NetProfit.
		Add(report.Operating.Depreciation).
		Sub(report.Operating.ReceivablesChange).
		Add(report.Operating.PayablesChange).
		Sub(report.Operating.InventoryChange)
	report.Investing.NetCash = report.Investing.FixedAssetSales.
		Sub(report.Investing.FixedAssetPurchases).
		Sub(report.Investing.InvestmentsMade)
	report.Financing.NetCash = report.Financing.LoansReceived.
		Sub(report.Financing.LoansRepaid).
		Add(report.Financing.CapitalContributed).
		Sub(report.Financing.DividendsPaid)
	report.NetCashFlow = report.Operating.NetCash.
		Add(report.Investing.NetCash).
		Add(report.Financing.NetCash)

	openingCash, err := s.openingCashBalance(ctx, clientID, from)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening cash balance",
			slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to compute opening cash balance: %w", err)
	}
	report.OpeningCash = openingCash
	report.ClosingCash = openingCash.Add(report.NetCashFlow)
	report.GeneratedAt = time.Now().UTC()

	s.LogInfo(ctx, "Cash flow report generated",
		slog.String("client_id", clientID),
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.String("net_cash_flow", report.NetCashFlow.String()))
	s.EmitReportGenerated(ctx, clientID, "cash_flow", from, to)
	return report, nil
}

// isDepreciation detects depreciation legs either structurally by account
// code or, as a fallback for inconsistent charts of accounts, by account
// name. The fallback is logged whenever it fires.
func (s *cashFlowService) isDepreciation(ctx context.Context, item domain.JournalLineItem) bool {
	if item.AccountCode == accounting.CodeDepreciation {
		return true
	}
	if strings.Contains(strings.ToLower(item.AccountName), "depreciation") {
		s.LogInfo(ctx, "Depreciation detected by account name fallback",
			slog.String("account_code", item.AccountCode),
			slog.String("account_name", item.AccountName))
		return true
	}
	return false
}

// openingCashBalance re-aggregates all posted entries up to the day before
// the period start, restricted to the cash and bank accounts.
func (s *cashFlowService) openingCashBalance(ctx context.Context, clientID string, from time.Time) (decimal.Decimal, error) {
	items, err := s.ledgerRepo.GetPostedLineItems(ctx, clientID, time.Time{}, from.AddDate(0, 0, -1))
	if err != nil {
		return decimal.Zero, err
	}

	opening := decimal.Zero
	for _, item := range items {
		if item.AccountCode == accounting.CodeCashInHand || item.AccountCode == accounting.CodeBankAccounts {
			opening = opening.Add(item.Debit.Sub(item.Credit))
		}
	}
	return opening, nil
}
