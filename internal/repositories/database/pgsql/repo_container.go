package pgsql

import (
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgsql-backed repository implementations.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Client:  newClientRepository(dbPool),
		Ledger:  newLedgerRepository(dbPool),
		Invoice: newInvoiceRepository(dbPool),
	}
}
