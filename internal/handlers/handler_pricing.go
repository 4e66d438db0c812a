package handlers

import (
	"log/slog"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/pricing"
	"github.com/SanTiwari07/AgroChain-sub001/internal/dto"
	"github.com/SanTiwari07/AgroChain-sub001/internal/middleware"
)

// pricingHandler exposes the fixed-point conversion helper for the
// presentation layer.
type pricingHandler struct {
	converter pricing.Converter
}

// newPricingHandler creates a new pricingHandler.
func newPricingHandler(converter pricing.Converter) *pricingHandler {
	return &pricingHandler{converter: converter}
}

// registerPricingRoutes registers the price conversion route.
func registerPricingRoutes(rg *gin.RouterGroup, converter pricing.Converter) {
	h := newPricingHandler(converter)
	rg.GET("/prices/convert", h.convert)
}

// convert godoc
// @Summary Convert between human and scaled price representations
// @Description Converts a human decimal amount to the scaled fixed-point integer, or back. Provide exactly one of "human" or "scaled".
// @Tags pricing
// @Produce  json
// @Param   human query string false "Human decimal amount, e.g., 12.50"
// @Param   scaled query string false "Scaled integer amount"
// @Success 200 {object} dto.ConvertPriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /prices/convert [get]
func (h *pricingHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertPriceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	switch {
	case params.Human != "" && params.Scaled == "":
		scaled, err := h.converter.ParseToScaled(params.Human)
		if err != nil {
			logger.Warn("Invalid human amount for conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.ConvertPriceResponse{
			Scale:  h.converter.Scale(),
			Human:  h.converter.ToHuman(scaled).String(),
			Scaled: scaled.String(),
		})
	case params.Scaled != "" && params.Human == "":
		scaled, ok := new(big.Int).SetString(params.Scaled, 10)
		if !ok || scaled.Sign() < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scaled must be a non-negative integer"})
			return
		}
		c.JSON(http.StatusOK, dto.ConvertPriceResponse{
			Scale:  h.converter.Scale(),
			Human:  h.converter.ToHuman(scaled).String(),
			Scaled: scaled.String(),
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide exactly one of 'human' or 'scaled'"})
	}
}
