package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/apperrors"
	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepository = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepository = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, clientID string, invoiceType domain.InvoiceType, from, to time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, clientID, invoiceType, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func salesInvoice(number, buyerGSTIN string, subtotal, cgst, sgst, igst string) domain.Invoice {
	sub := decimal.RequireFromString(subtotal)
	c := decimal.RequireFromString(cgst)
	s := decimal.RequireFromString(sgst)
	i := decimal.RequireFromString(igst)
	return domain.Invoice{
		InvoiceID:     uuid.NewString(),
		Type:          domain.InvoiceTypeSales,
		InvoiceNumber: number,
		InvoiceDate:   time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
		BuyerGSTIN:    buyerGSTIN,
		Subtotal:      sub,
		CGST:          c,
		SGST:          s,
		IGST:          i,
		Cess:          decimal.Zero,
		TotalAmount:   sub.Add(c).Add(s).Add(i),
	}
}

// --- Test Suite Setup ---
type GSTServiceTestSuite struct {
	suite.Suite
	mockClientRepo  *MockClientRepository
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.GSTService
	clientID        string
	client          *domain.Client
	from            time.Time
	to              time.Time
}

func (suite *GSTServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewGSTService(suite.mockClientRepo, suite.mockInvoiceRepo, nil)
	suite.clientID = uuid.NewString()
	suite.client = &domain.Client{
		ClientID:  suite.clientID,
		Name:      "Sharma Traders",
		GSTIN:     "29ABCDE1234F1Z5",
		StateCode: "29",
	}
	suite.from = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
}

// --- Test Cases ---

func (suite *GSTServiceTestSuite) TestGenerateGSTR1_BucketsInvoices() {
	ctx := context.Background()
	invoices := []domain.Invoice{
		salesInvoice("INV-001", "27FGHIJ5678K1Z3", "100000", "0", "0", "18000"),
		salesInvoice("INV-002", "", "300000", "27000", "27000", "0"),
		salesInvoice("INV-003", "", "10000", "900", "900", "0"),
	}
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypeSales, suite.from, suite.to).Return(invoices, nil).Once()

	report, err := suite.service.GenerateGSTR1(ctx, suite.clientID, time.April, 2025)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(suite.client.GSTIN, report.GSTIN)

	suite.Equal(1, report.B2B.InvoiceCount)
	suite.Require().Len(report.B2B.Invoices, 1)
	suite.Equal("INV-001", report.B2B.Invoices[0].InvoiceNumber)

	suite.Equal(1, report.B2CLarge.InvoiceCount)
	suite.Require().Len(report.B2CLarge.Invoices, 1)

	// B2C-small keeps only the aggregate
	suite.Equal(1, report.B2CSmall.InvoiceCount)
	suite.Empty(report.B2CSmall.Invoices)
	suite.True(report.B2CSmall.TaxableValue.Equal(decimal.NewFromInt(10000)))

	// Bucket sums equal summary totals
	suite.True(report.TotalTaxableValue.Equal(decimal.NewFromInt(410000)))
	suite.True(report.TotalTax.Total().Equal(decimal.NewFromInt(73800)))
	suite.True(report.TotalOutwardValue.Equal(decimal.NewFromInt(483800)))

	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *GSTServiceTestSuite) TestGenerateGSTR1_BuyerGSTINTakesPrecedenceOverSize() {
	ctx := context.Background()
	// Above the B2C-large threshold, but the registered buyer forces B2B.
	invoices := []domain.Invoice{
		salesInvoice("INV-010", "27FGHIJ5678K1Z3", "300000", "27000", "27000", "0"),
	}
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypeSales, suite.from, suite.to).Return(invoices, nil).Once()

	report, err := suite.service.GenerateGSTR1(ctx, suite.clientID, time.April, 2025)

	suite.Require().NoError(err)
	suite.Equal(1, report.B2B.InvoiceCount)
	suite.Equal(0, report.B2CLarge.InvoiceCount)
}

func (suite *GSTServiceTestSuite) TestGenerateGSTR1_ThresholdIsExclusive() {
	ctx := context.Background()
	// Invoice value exactly at the threshold stays B2C-small.
	invoices := []domain.Invoice{
		{
			InvoiceID:     uuid.NewString(),
			Type:          domain.InvoiceTypeSales,
			InvoiceNumber: "INV-020",
			InvoiceDate:   time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC),
			Subtotal:      decimal.NewFromInt(250000),
			TotalAmount:   decimal.NewFromInt(250000),
		},
	}
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypeSales, suite.from, suite.to).Return(invoices, nil).Once()

	report, err := suite.service.GenerateGSTR1(ctx, suite.clientID, time.April, 2025)

	suite.Require().NoError(err)
	suite.Equal(0, report.B2CLarge.InvoiceCount)
	suite.Equal(1, report.B2CSmall.InvoiceCount)
}

func (suite *GSTServiceTestSuite) TestGenerateGSTR1_MissingGSTINFails() {
	ctx := context.Background()
	unregistered := &domain.Client{ClientID: suite.clientID, Name: "Cash Traders"}
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(unregistered, nil).Once()

	report, err := suite.service.GenerateGSTR1(ctx, suite.clientID, time.April, 2025)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "ListInvoices", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GSTServiceTestSuite) TestGenerateGSTR1_ClientNotFound() {
	ctx := context.Background()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.GenerateGSTR1(ctx, suite.clientID, time.April, 2025)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GSTServiceTestSuite) TestGenerateGSTR3B_PayableFlooredPerHead() {
	ctx := context.Background()
	sales := []domain.Invoice{
		salesInvoice("INV-001", "27FGHIJ5678K1Z3", "100000", "9000", "9000", "0"),
		salesInvoice("INV-002", "", "50000", "0", "0", "9000"),
	}
	purchases := []domain.Invoice{
		{
			InvoiceID:     uuid.NewString(),
			Type:          domain.InvoiceTypePurchase,
			InvoiceNumber: "PUR-001",
			InvoiceDate:   time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC),
			Subtotal:      decimal.NewFromInt(80000),
			CGST:          decimal.NewFromInt(4000),
			SGST:          decimal.NewFromInt(4000),
			IGST:          decimal.NewFromInt(12000),
			TotalAmount:   decimal.NewFromInt(100000),
		},
	}
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypeSales, suite.from, suite.to).Return(sales, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypePurchase, suite.from, suite.to).Return(purchases, nil).Once()

	report, err := suite.service.GenerateGSTR3B(ctx, suite.clientID, time.April, 2025)

	suite.Require().NoError(err)
	suite.True(report.OutwardTaxableValue.Equal(decimal.NewFromInt(150000)))

	// Only the IGST-bearing invoice counts as inter-state
	suite.True(report.InterStateTaxableValue.Equal(decimal.NewFromInt(50000)))
	suite.True(report.InterStateIGST.Equal(decimal.NewFromInt(9000)))

	// CGST/SGST payable 9000-4000, IGST credit exceeds output so floored
	suite.True(report.TaxPayable.CGST.Equal(decimal.NewFromInt(5000)))
	suite.True(report.TaxPayable.SGST.Equal(decimal.NewFromInt(5000)))
	suite.True(report.TaxPayable.IGST.IsZero())
}

func (suite *GSTServiceTestSuite) TestGenerateGSTR3B_AllowsUnregisteredClient() {
	ctx := context.Background()
	unregistered := &domain.Client{ClientID: suite.clientID, Name: "Cash Traders"}
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(unregistered, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypeSales, suite.from, suite.to).Return([]domain.Invoice{}, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypePurchase, suite.from, suite.to).Return([]domain.Invoice{}, nil).Once()

	report, err := suite.service.GenerateGSTR3B(ctx, suite.clientID, time.April, 2025)

	suite.Require().NoError(err)
	suite.True(report.TaxPayable.Total().IsZero())
}

func (suite *GSTServiceTestSuite) TestCalculateLiability_DueDateAndTotals() {
	ctx := context.Background()
	sales := []domain.Invoice{
		salesInvoice("INV-001", "27FGHIJ5678K1Z3", "100000", "9000", "9000", "0"),
	}
	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypeSales, suite.from, suite.to).Return(sales, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypePurchase, suite.from, suite.to).Return([]domain.Invoice{}, nil).Once()

	liability, err := suite.service.CalculateLiability(ctx, suite.clientID, time.April, 2025)

	suite.Require().NoError(err)
	suite.True(liability.OutputTax.Equal(decimal.NewFromInt(18000)))
	suite.True(liability.InputTaxCredit.IsZero())
	suite.True(liability.NetPayable.Equal(decimal.NewFromInt(18000)))
	suite.Equal(time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), liability.DueDate)
}

func (suite *GSTServiceTestSuite) TestCalculateLiability_DecemberRollsToJanuary() {
	ctx := context.Background()
	decFrom := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	decTo := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	suite.mockClientRepo.On("FindClientByID", ctx, suite.clientID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypeSales, decFrom, decTo).Return([]domain.Invoice{}, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.clientID, domain.InvoiceTypePurchase, decFrom, decTo).Return([]domain.Invoice{}, nil).Once()

	liability, err := suite.service.CalculateLiability(ctx, suite.clientID, time.December, 2025)

	suite.Require().NoError(err)
	suite.Equal(time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC), liability.DueDate)
}

func TestGSTServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GSTServiceTestSuite))
}
