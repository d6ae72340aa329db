package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bahikhata/bahikhata_backend/internal/apperrors"
	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
)

// clientService implements the ClientService interface.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepository) portssvc.ClientService {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientService = (*clientService)(nil)

// GetClientByID retrieves a client by its ID.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Client not found", slog.String("client_id", clientID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return client, nil
}
