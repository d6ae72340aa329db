package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func lineItem(code, name string, debit, credit string) domain.JournalLineItem {
	return domain.JournalLineItem{
		EntryID:     uuid.NewString(),
		AccountCode: code,
		AccountName: name,
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
	}
}

// --- Test Suite Setup ---
type ProfitLossServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.ProfitLossService
	clientID       string
	from           time.Time
	to             time.Time
}

func (suite *ProfitLossServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewProfitLossService(suite.mockLedgerRepo, nil)
	suite.clientID = uuid.NewString()
	suite.from = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
}

// --- Test Cases ---

func (suite *ProfitLossServiceTestSuite) TestGenerate_ClassifiesAndCascades() {
	ctx := context.Background()
	// A sales entry including GST: only the revenue leg is classified, the
	// debtor and GST-output legs fall outside the income statement ranges.
	items := []domain.JournalLineItem{
		lineItem("1130", "Debtors", "11800", "0"),
		lineItem("4110", "Product Sales", "0", "10000"),
		lineItem("2210", "GST Output", "0", "1800"),
		lineItem("5150", "Purchases", "4000", "0"),
		lineItem("5210", "Rent", "1000", "0"),
		lineItem("5950", "Interest Paid", "500", "0"),
	}
	suite.mockLedgerRepo.On("GetPostedLineItems", ctx, suite.clientID, suite.from, suite.to).Return(items, nil).Once()

	report, err := suite.service.Generate(ctx, suite.clientID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)

	suite.Require().Len(report.Sales.Lines, 1)
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(10000)))
	suite.True(report.GrossProfit.Equal(decimal.NewFromInt(6000)))
	suite.True(report.OperatingProfit.Equal(decimal.NewFromInt(5000)))
	suite.True(report.ProfitBeforeTax.Equal(decimal.NewFromInt(4500)))
	suite.True(report.TaxExpense.IsZero())
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(4500)))
	suite.True(report.ProfitMargin.Equal(decimal.NewFromInt(45)))

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ProfitLossServiceTestSuite) TestGenerate_DropsWrongSignRows() {
	ctx := context.Background()
	// A sales account with a net debit balance and an expense account with a
	// net credit balance are both dropped.
	items := []domain.JournalLineItem{
		lineItem("4110", "Product Sales", "500", "200"),
		lineItem("5210", "Rent", "0", "300"),
	}
	suite.mockLedgerRepo.On("GetPostedLineItems", ctx, suite.clientID, suite.from, suite.to).Return(items, nil).Once()

	report, err := suite.service.Generate(ctx, suite.clientID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Empty(report.Sales.Lines)
	suite.Empty(report.OperatingExpenses.Lines)
	suite.True(report.TotalRevenue.IsZero())
	suite.True(report.NetProfit.IsZero())
}

func (suite *ProfitLossServiceTestSuite) TestGenerate_ZeroRevenueZeroMargin() {
	ctx := context.Background()
	items := []domain.JournalLineItem{
		lineItem("5210", "Rent", "1000", "0"),
	}
	suite.mockLedgerRepo.On("GetPostedLineItems", ctx, suite.clientID, suite.from, suite.to).Return(items, nil).Once()

	report, err := suite.service.Generate(ctx, suite.clientID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.TotalRevenue.IsZero())
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(-1000)))
	suite.True(report.ProfitMargin.IsZero())
}

func (suite *ProfitLossServiceTestSuite) TestGenerate_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("query failed")
	suite.mockLedgerRepo.On("GetPostedLineItems", ctx, suite.clientID, suite.from, suite.to).Return(nil, repoErr).Once()

	report, err := suite.service.Generate(ctx, suite.clientID, suite.from, suite.to)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, repoErr)
}

func (suite *ProfitLossServiceTestSuite) TestComparative_ComputesDeltas() {
	ctx := context.Background()
	previousFrom := suite.from.AddDate(-1, 0, 0)
	previousTo := suite.to.AddDate(-1, 0, 0)

	currentItems := []domain.JournalLineItem{
		lineItem("4110", "Product Sales", "0", "15000"),
	}
	previousItems := []domain.JournalLineItem{
		lineItem("4110", "Product Sales", "0", "10000"),
	}
	suite.mockLedgerRepo.On("GetPostedLineItems", mock.Anything, suite.clientID, suite.from, suite.to).Return(currentItems, nil).Once()
	suite.mockLedgerRepo.On("GetPostedLineItems", mock.Anything, suite.clientID, previousFrom, previousTo).Return(previousItems, nil).Once()

	comparative, err := suite.service.Comparative(ctx, suite.clientID, suite.from, suite.to, previousFrom, previousTo)

	suite.Require().NoError(err)
	suite.Require().NotNil(comparative)
	suite.True(comparative.RevenueChange.Absolute.Equal(decimal.NewFromInt(5000)))
	suite.True(comparative.RevenueChange.Percent.Equal(decimal.NewFromInt(50)))
	suite.True(comparative.NetProfitChange.Absolute.Equal(decimal.NewFromInt(5000)))

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ProfitLossServiceTestSuite) TestComparative_ZeroPreviousYieldsZeroPercent() {
	ctx := context.Background()
	previousFrom := suite.from.AddDate(-1, 0, 0)
	previousTo := suite.to.AddDate(-1, 0, 0)

	currentItems := []domain.JournalLineItem{
		lineItem("4110", "Product Sales", "0", "15000"),
	}
	suite.mockLedgerRepo.On("GetPostedLineItems", mock.Anything, suite.clientID, suite.from, suite.to).Return(currentItems, nil).Once()
	suite.mockLedgerRepo.On("GetPostedLineItems", mock.Anything, suite.clientID, previousFrom, previousTo).Return([]domain.JournalLineItem{}, nil).Once()

	comparative, err := suite.service.Comparative(ctx, suite.clientID, suite.from, suite.to, previousFrom, previousTo)

	suite.Require().NoError(err)
	suite.True(comparative.RevenueChange.Absolute.Equal(decimal.NewFromInt(15000)))
	suite.True(comparative.RevenueChange.Percent.IsZero())
}

func (suite *ProfitLossServiceTestSuite) TestMonthlySummary_FailedMonthReportsZero() {
	ctx := context.Background()
	year := 2025
	marchFrom := time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	marchTo := marchFrom.AddDate(0, 1, 0).AddDate(0, 0, -1)

	// March fails, every other month returns one sales entry.
	suite.mockLedgerRepo.On("GetPostedLineItems", ctx, suite.clientID, marchFrom, marchTo).
		Return(nil, errors.New("query failed")).Once()
	suite.mockLedgerRepo.On("GetPostedLineItems", ctx, suite.clientID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.JournalLineItem{lineItem("4110", "Product Sales", "0", "1000")}, nil)

	summary, err := suite.service.MonthlySummary(ctx, suite.clientID, year)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Require().Len(summary.Months, 12)

	march := summary.Months[2]
	suite.Equal(time.March, march.Month)
	suite.True(march.TotalRevenue.IsZero())
	suite.True(march.TotalExpense.IsZero())
	suite.True(march.NetProfit.IsZero())

	april := summary.Months[3]
	suite.Equal(time.April, april.Month)
	suite.True(april.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	suite.True(april.NetProfit.Equal(decimal.NewFromInt(1000)))
}

func TestProfitLossServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfitLossServiceTestSuite))
}
