package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanTiwari07/AgroChain-sub001/internal/apperrors"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	portssvc "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/dto"
	"github.com/SanTiwari07/AgroChain-sub001/internal/middleware"
)

// productHandler handles HTTP requests against the traceability ledger.
type productHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(ls portssvc.LedgerSvcFacade) *productHandler {
	return &productHandler{
		ledgerService: ls,
	}
}

// callerIdentity pulls the authenticated caller's ID and declared role from
// the request context. Aborts with 401 when either is missing.
func callerIdentity(c *gin.Context) (string, domain.Role, bool) {
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Caller ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	role, ok := middleware.GetRoleFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Caller role not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return callerID, role, true
}

// registerProduct godoc
// @Summary Register a new product
// @Description Creates a product in REGISTERED state owned by the calling producer
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.RegisterProductRequest true "Product details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a producer"
// @Failure 409 {object} map[string]string "Product ID already registered"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) registerProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	callerID, role, ok := callerIdentity(c)
	if !ok {
		return
	}

	receipt, err := h.ledgerService.RegisterProduct(c.Request.Context(), req, callerID, role)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error registering product", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Product ID already registered", slog.String("product_id", req.ProductID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to register product", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register product"})
		}
		return
	}

	logger.Info("Product registered via API", slog.String("product_id", req.ProductID))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// advanceOp is the shape shared by the two advance operations.
type advanceOp func(ctx context.Context, productID string, req dto.AdvanceRequest, callerID string, role domain.Role) (*domain.Receipt, error)

// advance binds and executes one custody advance step.
func (h *productHandler) advance(c *gin.Context, op advanceOp) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	var req dto.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for advance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	callerID, role, ok := callerIdentity(c)
	if !ok {
		return
	}

	receipt, err := op(c.Request.Context(), productID, req, callerID, role)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error advancing product", slog.String("product_id", productID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found for advance", slog.String("product_id", productID))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidState):
			logger.Warn("Product in wrong state for advance", slog.String("product_id", productID), slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to advance product", slog.String("product_id", productID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance product"})
		}
		return
	}

	logger.Info("Product advanced via API", slog.String("product_id", productID))
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// advanceAsIntermediary godoc
// @Summary Advance a product as intermediary
// @Description Moves a REGISTERED product to IN_TRANSIT and adds the intermediary's cost
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   advance body dto.AdvanceRequest true "Added cost and details"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not an intermediary"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Product is not in REGISTERED state"
// @Security BearerAuth
// @Router /products/{id}/intermediary [post]
func (h *productHandler) advanceAsIntermediary(c *gin.Context) {
	h.advance(c, h.ledgerService.AdvanceAsIntermediary)
}

// advanceAsSeller godoc
// @Summary Advance a product as seller
// @Description Moves an IN_TRANSIT product to AVAILABLE and adds the seller's margin
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   advance body dto.AdvanceRequest true "Added margin and details"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a seller"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Product is not in IN_TRANSIT state"
// @Security BearerAuth
// @Router /products/{id}/seller [post]
func (h *productHandler) advanceAsSeller(c *gin.Context) {
	h.advance(c, h.ledgerService.AdvanceAsSeller)
}

// getProduct godoc
// @Summary Get a product by ID
// @Description Retrieves the current snapshot of a product
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	product, err := h.ledgerService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found", slog.String("product_id", productID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to get product", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// getHistory godoc
// @Summary Get a product's custody history
// @Description Returns the full chain of custody of a product in append order
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.HistoryResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id}/history [get]
func (h *productHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	events, err := h.ledgerService.GetHistory(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found for history", slog.String("product_id", productID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to get history", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		ProductID: productID,
		Events:    dto.ToTraceEventResponses(events),
	})
}

// listProductIDs godoc
// @Summary List all product identifiers
// @Description Returns every registered product identifier in insertion order
// @Tags products
// @Produce  json
// @Success 200 {object} dto.ListProductIDsResponse
// @Router /products [get]
func (h *productHandler) listProductIDs(c *gin.Context) {
	ids := h.ledgerService.ListProductIDs(c.Request.Context())
	c.JSON(http.StatusOK, dto.ListProductIDsResponse{ProductIDs: ids})
}

// getStats godoc
// @Summary Get ledger-wide statistics
// @Description Returns the running aggregate counters of the ledger
// @Tags stats
// @Produce  json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (h *productHandler) getStats(c *gin.Context) {
	stats := h.ledgerService.GetStats(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
