package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories. This
// service only reads the ledger; no transactions are taken.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
