package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/middleware"
)

// verifyHandler exposes the chain-of-custody verification endpoint.
type verifyHandler struct {
	verificationService portssvc.VerificationSvcFacade
}

// newVerifyHandler creates a new verifyHandler.
func newVerifyHandler(vs portssvc.VerificationSvcFacade) *verifyHandler {
	return &verifyHandler{
		verificationService: vs,
	}
}

// registerVerifyRoutes registers the verification route.
func registerVerifyRoutes(rg *gin.RouterGroup, verificationService portssvc.VerificationSvcFacade) {
	h := newVerifyHandler(verificationService)
	rg.GET("/products/:id/verify", h.verifyProduct)
}

// verifyProduct godoc
// @Summary Verify a product's chain of custody
// @Description Reconstructs the custody chain and returns an authenticity verdict. An unknown product yields verified=false, not an error.
// @Tags verification
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.VerifyResponse
// @Router /products/{id}/verify [get]
func (h *verifyHandler) verifyProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	verdict, err := h.verificationService.Verify(c.Request.Context(), productID)
	if err != nil {
		logger.Error("Failed to verify product", slog.String("product_id", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify product"})
		return
	}

	c.JSON(http.StatusOK, verdict)
}
