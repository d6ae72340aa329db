package repositories

import (
	"context"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
)

// ClientRepository defines read access to client master data.
type ClientRepository interface {
	// FindClientByID retrieves a client by its ID.
	// Returns apperrors.ErrNotFound if no client exists with the given ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}
