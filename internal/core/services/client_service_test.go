package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bahikhata/bahikhata_backend/internal/apperrors"
	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	service        portssvc.ClientService
	clientID       string
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockClientRepo)
	suite.clientID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ClientServiceTestSuite) TestGetClientByID_Success() {
	ctx := context.Background()
	client := &domain.Client{ClientID: suite.clientID, Name: "Sharma Traders", GSTIN: "29ABCDE1234F1Z5"}
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(client, nil).Once()

	found, err := suite.service.GetClientByID(ctx, suite.clientID)

	suite.Require().NoError(err)
	suite.Equal(client, found)
	suite.True(found.IsGSTRegistered())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFoundPassesThrough() {
	ctx := context.Background()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(nil, apperrors.ErrNotFound).Once()

	found, err := suite.service.GetClientByID(ctx, suite.clientID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_WrapsOtherErrors() {
	ctx := context.Background()
	repoErr := errors.New("connection refused")
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(nil, repoErr).Once()

	found, err := suite.service.GetClientByID(ctx, suite.clientID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, repoErr)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
