package services

import (
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
)

// NewServiceContainer wires all services against the repository provider and
// the (possibly no-op) event publisher.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, events portssvc.EventPublisher) *portssvc.ServiceContainer {
	trialBalance := NewTrialBalanceService(repos.Ledger, events)

	return &portssvc.ServiceContainer{
		Client:       NewClientService(repos.Client),
		TrialBalance: trialBalance,
		BalanceSheet: NewBalanceSheetService(trialBalance, events),
		ProfitLoss:   NewProfitLossService(repos.Ledger, events),
		CashFlow:     NewCashFlowService(repos.Ledger, events),
		GST:          NewGSTService(repos.Client, repos.Invoice, events),
	}
}
