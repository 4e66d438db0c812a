package services_test

import (
	"context"
	"testing"

	"github.com/SanTiwari07/AgroChain-sub001/internal/apperrors"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/ledger"
	portssvc "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockArchiveRepository is a mock type for the ArchiveRepository interface
type MockArchiveRepository struct {
	mock.Mock
}

func (m *MockArchiveRepository) ArchiveEvent(ctx context.Context, product domain.Product, event domain.TraceEvent) error {
	args := m.Called(ctx, product, event)
	return args.Error(0)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockArchive *MockArchiveRepository
	service     portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockArchive = new(MockArchiveRepository)
	suite.service = services.NewLedgerService(ledger.New(), suite.mockArchive)
}

func registerReq(productID string) dto.RegisterProductRequest {
	return dto.RegisterProductRequest{
		ProductID:   productID,
		Name:        "Basmati Rice",
		Quantity:    500,
		BasePrice:   decimal.NewFromInt(500),
		HarvestDate: "2026-04-01",
		Quality:     "Premium",
		Location:    "Dehradun",
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestRegisterProduct_Success() {
	ctx := context.Background()
	producerID := uuid.NewString()

	suite.mockArchive.On("ArchiveEvent", ctx, mock.AnythingOfType("domain.Product"), mock.AnythingOfType("domain.TraceEvent")).Return(nil).Once()

	receipt, err := suite.service.RegisterProduct(ctx, registerReq("RICE-001"), producerID, domain.RoleProducer)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.Equal(uint64(1), receipt.Sequence)

	suite.mockArchive.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRegisterProduct_WrongRole() {
	ctx := context.Background()

	for _, role := range []domain.Role{domain.RoleIntermediary, domain.RoleSeller, domain.RoleConsumer} {
		receipt, err := suite.service.RegisterProduct(ctx, registerReq("RICE-001"), uuid.NewString(), role)
		suite.Require().Error(err, string(role))
		suite.Nil(receipt)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	}

	// No mutation happened, so nothing reached the archive.
	suite.mockArchive.AssertNotCalled(suite.T(), "ArchiveEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRegisterProduct_ArchiveFailureDoesNotFailOperation() {
	ctx := context.Background()

	suite.mockArchive.On("ArchiveEvent", ctx, mock.AnythingOfType("domain.Product"), mock.AnythingOfType("domain.TraceEvent")).Return(assert.AnError).Once()

	receipt, err := suite.service.RegisterProduct(ctx, registerReq("RICE-001"), uuid.NewString(), domain.RoleProducer)

	// The ledger committed; the archive error is logged and swallowed.
	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)

	product, err := suite.service.GetProduct(ctx, "RICE-001")
	suite.Require().NoError(err)
	suite.Equal(domain.Registered, product.Status)

	suite.mockArchive.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdvanceAsIntermediary_Success() {
	ctx := context.Background()

	suite.mockArchive.On("ArchiveEvent", ctx, mock.AnythingOfType("domain.Product"), mock.AnythingOfType("domain.TraceEvent")).Return(nil).Twice()

	_, err := suite.service.RegisterProduct(ctx, registerReq("RICE-001"), uuid.NewString(), domain.RoleProducer)
	suite.Require().NoError(err)

	intermediaryID := uuid.NewString()
	receipt, err := suite.service.AdvanceAsIntermediary(ctx, "RICE-001", dto.AdvanceRequest{
		AddedAmount: decimal.NewFromInt(50),
		Details:     "cold chain transport",
	}, intermediaryID, domain.RoleIntermediary)

	suite.Require().NoError(err)
	suite.Equal(uint64(2), receipt.Sequence)

	product, err := suite.service.GetProduct(ctx, "RICE-001")
	suite.Require().NoError(err)
	suite.Equal(domain.InTransit, product.Status)
	suite.Require().NotNil(product.IntermediaryID)
	suite.Equal(intermediaryID, *product.IntermediaryID)
	suite.True(product.CurrentPrice.Equal(decimal.NewFromInt(550)))

	suite.mockArchive.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdvanceAsIntermediary_WrongRole() {
	ctx := context.Background()

	suite.mockArchive.On("ArchiveEvent", ctx, mock.AnythingOfType("domain.Product"), mock.AnythingOfType("domain.TraceEvent")).Return(nil).Once()

	_, err := suite.service.RegisterProduct(ctx, registerReq("RICE-001"), uuid.NewString(), domain.RoleProducer)
	suite.Require().NoError(err)

	req := dto.AdvanceRequest{AddedAmount: decimal.NewFromInt(50), Details: "transport"}
	for _, role := range []domain.Role{domain.RoleProducer, domain.RoleSeller, domain.RoleConsumer} {
		receipt, err := suite.service.AdvanceAsIntermediary(ctx, "RICE-001", req, uuid.NewString(), role)
		suite.Require().Error(err, string(role))
		suite.Nil(receipt)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	}

	product, err := suite.service.GetProduct(ctx, "RICE-001")
	suite.Require().NoError(err)
	suite.Equal(domain.Registered, product.Status)
}

func (suite *LedgerServiceTestSuite) TestAdvanceAsSeller_FullChain() {
	ctx := context.Background()

	suite.mockArchive.On("ArchiveEvent", ctx, mock.AnythingOfType("domain.Product"), mock.AnythingOfType("domain.TraceEvent")).Return(nil).Times(3)

	_, err := suite.service.RegisterProduct(ctx, registerReq("RICE-001"), uuid.NewString(), domain.RoleProducer)
	suite.Require().NoError(err)
	_, err = suite.service.AdvanceAsIntermediary(ctx, "RICE-001", dto.AdvanceRequest{
		AddedAmount: decimal.NewFromInt(50), Details: "transport",
	}, uuid.NewString(), domain.RoleIntermediary)
	suite.Require().NoError(err)

	sellerID := uuid.NewString()
	receipt, err := suite.service.AdvanceAsSeller(ctx, "RICE-001", dto.AdvanceRequest{
		AddedAmount: decimal.NewFromInt(30), Details: "retail margin",
	}, sellerID, domain.RoleSeller)

	suite.Require().NoError(err)
	suite.Equal(uint64(3), receipt.Sequence)

	product, err := suite.service.GetProduct(ctx, "RICE-001")
	suite.Require().NoError(err)
	suite.Equal(domain.Available, product.Status)
	suite.Require().NotNil(product.SellerID)
	suite.Equal(sellerID, *product.SellerID)
	suite.True(product.CurrentPrice.Equal(decimal.NewFromInt(580)))

	suite.mockArchive.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdvanceAsSeller_WrongRole() {
	ctx := context.Background()

	receipt, err := suite.service.AdvanceAsSeller(ctx, "RICE-001", dto.AdvanceRequest{
		AddedAmount: decimal.NewFromInt(30), Details: "margin",
	}, uuid.NewString(), domain.RoleIntermediary)

	// The role gate fires before the existence check.
	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *LedgerServiceTestSuite) TestReaders_Delegate() {
	ctx := context.Background()

	suite.mockArchive.On("ArchiveEvent", ctx, mock.AnythingOfType("domain.Product"), mock.AnythingOfType("domain.TraceEvent")).Return(nil).Twice()

	_, err := suite.service.RegisterProduct(ctx, registerReq("RICE-001"), uuid.NewString(), domain.RoleProducer)
	suite.Require().NoError(err)
	_, err = suite.service.RegisterProduct(ctx, registerReq("RICE-002"), uuid.NewString(), domain.RoleProducer)
	suite.Require().NoError(err)

	suite.Equal([]string{"RICE-001", "RICE-002"}, suite.service.ListProductIDs(ctx))

	history, err := suite.service.GetHistory(ctx, "RICE-002")
	suite.Require().NoError(err)
	suite.Len(history, 1)

	stats := suite.service.GetStats(ctx)
	suite.Equal(int64(2), stats.TotalProducts)
	suite.Equal(int64(2), stats.ActiveProducts)
	suite.True(stats.TotalValue.Equal(decimal.NewFromInt(1000)))
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
