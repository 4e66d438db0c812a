package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/ledger"
	portssvc "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/pricing"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/dto"
	"github.com/SanTiwari07/AgroChain-sub001/internal/handlers"
	"github.com/SanTiwari07/AgroChain-sub001/internal/middleware"
	"github.com/SanTiwari07/AgroChain-sub001/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---

// The product handler is tested end to end through the router against a real
// in-memory ledger, with the actual auth middleware on the protected group.
type ProductHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	ledgerSvc portssvc.LedgerSvcFacade
	jwtSecret string
}

// generateTestToken creates a signed JWT carrying the caller's role claim.
func (suite *ProductHandlerTestSuite) generateTestToken(userID string, role domain.Role) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "agrochain-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.ledgerSvc = services.NewLedgerService(ledger.New(), nil)
	container := &portssvc.ServiceContainer{
		Ledger:       suite.ledgerSvc,
		Verification: services.NewVerificationService(suite.ledgerSvc),
	}

	public := suite.router.Group("/api/v1")
	handlers.RegisterPublicRoutes(public, container, pricing.NewConverter(pricing.DefaultScale))

	protected := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterProtectedRoutes(protected, container)
}

func (suite *ProductHandlerTestSuite) performRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) registerTestProduct(productID, producerID string) {
	token := suite.generateTestToken(producerID, domain.RoleProducer)
	w := suite.performRequest(http.MethodPost, "/api/v1/products", token, dto.RegisterProductRequest{
		ProductID:   productID,
		Name:        "Nashik Grapes",
		Quantity:    200,
		BasePrice:   decimal.NewFromInt(500),
		HarvestDate: "2026-02-10",
		Quality:     "Export",
		Location:    "Nashik",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
}

// --- Test Cases ---

func (suite *ProductHandlerTestSuite) TestRegisterProduct_Success() {
	producerID := uuid.NewString()
	token := suite.generateTestToken(producerID, domain.RoleProducer)

	w := suite.performRequest(http.MethodPost, "/api/v1/products", token, dto.RegisterProductRequest{
		ProductID:   "GRAPE-001",
		Name:        "Nashik Grapes",
		Quantity:    200,
		BasePrice:   decimal.NewFromInt(500),
		HarvestDate: "2026-02-10",
		Quality:     "Export",
		Location:    "Nashik",
	})

	suite.Require().Equal(http.StatusCreated, w.Code)
	var receipt dto.ReceiptResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &receipt))
	suite.Equal(uint64(1), receipt.Sequence)
	suite.False(receipt.Timestamp.IsZero())
}

func (suite *ProductHandlerTestSuite) TestRegisterProduct_NoToken() {
	w := suite.performRequest(http.MethodPost, "/api/v1/products", "", dto.RegisterProductRequest{ProductID: "GRAPE-001"})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ProductHandlerTestSuite) TestRegisterProduct_WrongRole() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleSeller)

	w := suite.performRequest(http.MethodPost, "/api/v1/products", token, dto.RegisterProductRequest{
		ProductID:   "GRAPE-001",
		Name:        "Nashik Grapes",
		Quantity:    200,
		BasePrice:   decimal.NewFromInt(500),
		HarvestDate: "2026-02-10",
		Quality:     "Export",
		Location:    "Nashik",
	})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ProductHandlerTestSuite) TestRegisterProduct_MissingFields() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleProducer)

	w := suite.performRequest(http.MethodPost, "/api/v1/products", token, gin.H{"productID": "GRAPE-001"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestRegisterProduct_BadHarvestDate() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleProducer)

	w := suite.performRequest(http.MethodPost, "/api/v1/products", token, dto.RegisterProductRequest{
		ProductID:   "GRAPE-001",
		Name:        "Nashik Grapes",
		Quantity:    200,
		BasePrice:   decimal.NewFromInt(500),
		HarvestDate: "sometime in spring",
		Quality:     "Export",
		Location:    "Nashik",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestRegisterProduct_Duplicate() {
	suite.registerTestProduct("GRAPE-001", uuid.NewString())

	token := suite.generateTestToken(uuid.NewString(), domain.RoleProducer)
	w := suite.performRequest(http.MethodPost, "/api/v1/products", token, dto.RegisterProductRequest{
		ProductID:   "GRAPE-001",
		Name:        "Nashik Grapes",
		Quantity:    200,
		BasePrice:   decimal.NewFromInt(500),
		HarvestDate: "2026-02-10",
		Quality:     "Export",
		Location:    "Nashik",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ProductHandlerTestSuite) TestAdvanceAsIntermediary_Success() {
	suite.registerTestProduct("GRAPE-001", uuid.NewString())

	token := suite.generateTestToken(uuid.NewString(), domain.RoleIntermediary)
	w := suite.performRequest(http.MethodPost, "/api/v1/products/GRAPE-001/intermediary", token, dto.AdvanceRequest{
		AddedAmount: decimal.NewFromInt(50),
		Details:     "cold chain transport",
	})

	suite.Require().Equal(http.StatusOK, w.Code)
	var receipt dto.ReceiptResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &receipt))
	suite.Equal(uint64(2), receipt.Sequence)
}

func (suite *ProductHandlerTestSuite) TestAdvanceAsIntermediary_NotFound() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleIntermediary)
	w := suite.performRequest(http.MethodPost, "/api/v1/products/NOPE/intermediary", token, dto.AdvanceRequest{
		AddedAmount: decimal.NewFromInt(50),
		Details:     "transport",
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProductHandlerTestSuite) TestAdvanceAsSeller_WrongState() {
	suite.registerTestProduct("GRAPE-001", uuid.NewString())

	// Still REGISTERED, the seller step needs IN_TRANSIT.
	token := suite.generateTestToken(uuid.NewString(), domain.RoleSeller)
	w := suite.performRequest(http.MethodPost, "/api/v1/products/GRAPE-001/seller", token, dto.AdvanceRequest{
		AddedAmount: decimal.NewFromInt(30),
		Details:     "retail margin",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ProductHandlerTestSuite) TestGetProduct_PublicRead() {
	producerID := uuid.NewString()
	suite.registerTestProduct("GRAPE-001", producerID)

	// No token: reads are public.
	w := suite.performRequest(http.MethodGet, "/api/v1/products/GRAPE-001", "", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var product dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &product))
	suite.Equal("GRAPE-001", product.ProductID)
	suite.Equal(domain.Registered, product.Status)
	suite.Equal(producerID, product.ProducerID)
}

func (suite *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	w := suite.performRequest(http.MethodGet, "/api/v1/products/NOPE", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProductHandlerTestSuite) TestGetHistory() {
	suite.registerTestProduct("GRAPE-001", uuid.NewString())

	token := suite.generateTestToken(uuid.NewString(), domain.RoleIntermediary)
	w := suite.performRequest(http.MethodPost, "/api/v1/products/GRAPE-001/intermediary", token, dto.AdvanceRequest{
		AddedAmount: decimal.NewFromInt(50),
		Details:     "transport",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.performRequest(http.MethodGet, "/api/v1/products/GRAPE-001/history", "", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var history dto.HistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &history))
	suite.Equal("GRAPE-001", history.ProductID)
	suite.Require().Len(history.Events, 2)
	suite.Equal(domain.ActionRegistered, history.Events[0].Action)
	suite.Equal(domain.ActionIntermediaryAdvance, history.Events[1].Action)
}

func (suite *ProductHandlerTestSuite) TestListProductIDsAndStats() {
	for i := 1; i <= 3; i++ {
		suite.registerTestProduct(fmt.Sprintf("GRAPE-%03d", i), uuid.NewString())
	}

	w := suite.performRequest(http.MethodGet, "/api/v1/products", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListProductIDsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Equal([]string{"GRAPE-001", "GRAPE-002", "GRAPE-003"}, list.ProductIDs)

	w = suite.performRequest(http.MethodGet, "/api/v1/stats", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var stats dto.StatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	suite.Equal(int64(3), stats.TotalProducts)
	suite.Equal(int64(3), stats.TotalTransactions)
	suite.Equal(int64(3), stats.ActiveProducts)
	suite.True(stats.TotalValue.Equal(decimal.NewFromInt(1500)))
}

func (suite *ProductHandlerTestSuite) TestVerify_PublicRead() {
	suite.registerTestProduct("GRAPE-001", uuid.NewString())

	w := suite.performRequest(http.MethodGet, "/api/v1/products/GRAPE-001/verify", "", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.VerifyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Verified)
	suite.Equal(1, res.TotalSteps)

	w = suite.performRequest(http.MethodGet, "/api/v1/products/NOPE/verify", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.Verified)
}

func TestProductHandler(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
