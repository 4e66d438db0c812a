package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/pricing"
)

// RegisterPublicRoutes wires the routes that require no authentication:
// onboarding, login, and the read-only ledger surface consumed by the
// presentation layer (including consumers scanning a product code).
func RegisterPublicRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, converter pricing.Converter) {
	registerAuthRoutes(rg, services.User, services.Token)
	registerVerifyRoutes(rg, services.Verification)
	registerPricingRoutes(rg, converter)

	h := newProductHandler(services.Ledger)
	products := rg.Group("/products")
	{
		products.GET("", h.listProductIDs)
		products.GET("/:id", h.getProduct)
		products.GET("/:id/history", h.getHistory)
	}
	rg.GET("/stats", h.getStats)
}

// RegisterProtectedRoutes wires the mutating ledger routes; the surrounding
// group must carry the auth middleware so the caller identity and role are
// present in the request context.
func RegisterProtectedRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newProductHandler(services.Ledger)

	products := rg.Group("/products")
	{
		products.POST("", h.registerProduct)
		products.POST("/:id/intermediary", h.advanceAsIntermediary)
		products.POST("/:id/seller", h.advanceAsSeller)
	}
}
