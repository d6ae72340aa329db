package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bahikhata/bahikhata_backend/internal/apperrors"
	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type clientRepository struct {
	BaseRepository
}

func newClientRepository(db *pgxpool.Pool) portsrepo.ClientRepository {
	return &clientRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ClientRepository = (*clientRepository)(nil)

// FindClientByID retrieves a client by its ID.
func (r *clientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, name, COALESCE(gstin, ''), COALESCE(address, ''), COALESCE(state_code, ''),
			created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE client_id = $1
	`

	var client domain.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&client.ClientID,
		&client.Name,
		&client.GSTIN,
		&client.Address,
		&client.StateCode,
		&client.CreatedAt,
		&client.CreatedBy,
		&client.LastUpdatedAt,
		&client.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying client %s: %w", clientID, err)
	}

	return &client, nil
}
