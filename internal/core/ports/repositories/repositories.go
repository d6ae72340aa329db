package repositories

// RepositoryProvider holds instances of all repository implementations and is
// handed to the service container during wiring.
type RepositoryProvider struct {
	Client  ClientRepository
	Ledger  LedgerRepository
	Invoice InvoiceRepository
}
