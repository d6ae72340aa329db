package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// trialBalanceService implements the TrialBalanceService interface.
type trialBalanceService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
}

// NewTrialBalanceService creates a new trial balance service.
func NewTrialBalanceService(ledgerRepo portsrepo.LedgerRepository, events portssvc.EventPublisher) portssvc.TrialBalanceService {
	return &trialBalanceService{
		BaseService: BaseService{Events: events},
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.TrialBalanceService = (*trialBalanceService)(nil)

// BuildTrialBalance generates a trial balance report as of a specific date.
// Rows are kept in the ledger store's return order. A client with no activity
// yields an empty, balanced report.
func (s *trialBalanceService) BuildTrialBalance(ctx context.Context, clientID string, asOf time.Time) (*domain.TrialBalanceReport, error) {
	rows, err := s.ledgerRepo.GetAggregatedTrialBalance(ctx, clientID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("client_id", clientID),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, row := range rows {
		totalDebits = totalDebits.Add(row.DebitTotal)
		totalCredits = totalCredits.Add(row.CreditTotal)
	}
	difference := totalDebits.Sub(totalCredits).Abs()

	report := &domain.TrialBalanceReport{
		ClientID:     clientID,
		AsOf:         asOf,
		Rows:         rows,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Difference:   difference,
		IsBalanced:   difference.LessThan(domain.BalanceTolerance),
		GeneratedAt:  time.Now().UTC(),
	}

	s.LogInfo(ctx, "Trial balance report generated",
		slog.String("client_id", clientID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(rows)),
		slog.Bool("is_balanced", report.IsBalanced))
	s.EmitReportGenerated(ctx, clientID, "trial_balance", asOf, asOf)
	return report, nil
}
