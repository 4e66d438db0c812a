package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus indicates where a product currently sits in its custody chain.
type ProductStatus string

const (
	Registered ProductStatus = "REGISTERED"
	InTransit  ProductStatus = "IN_TRANSIT"
	Available  ProductStatus = "AVAILABLE"
)

// Product represents a single trackable unit of goods moving through the
// fixed producer -> intermediary -> seller custody chain.
//
// BasePrice and the registration fields are immutable after creation.
// CurrentPrice only ever grows: each advance step adds its cost on top.
// IntermediaryID and SellerID are nil until the corresponding stage runs,
// then fixed forever.
type Product struct {
	ProductID      string          `json:"productID"`      // Globally unique, assigned at registration
	Name           string          `json:"name"`           // e.g., "Wheat"
	Quantity       int64           `json:"quantity"`       // Positive unit count
	HarvestDate    string          `json:"harvestDate"`    // Calendar date string, e.g., "2025-01-01"
	Quality        string          `json:"quality"`        // Free-text grade
	Location       string          `json:"location"`       // Free-text origin
	BasePrice      decimal.Decimal `json:"basePrice"`      // Set at registration, immutable
	CurrentPrice   decimal.Decimal `json:"currentPrice"`   // Monotonically non-decreasing
	Status         ProductStatus   `json:"status"`         // REGISTERED -> IN_TRANSIT -> AVAILABLE
	ProducerID     string          `json:"producerID"`     // Caller that registered the product
	IntermediaryID *string         `json:"intermediaryID"` // Set exactly once by the intermediary step
	SellerID       *string         `json:"sellerID"`       // Set exactly once by the seller step
	RegisteredAt   time.Time       `json:"registeredAt"`
}

// Receipt acknowledges a committed mutating ledger operation.
type Receipt struct {
	Sequence  uint64    `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
}

// LedgerStats holds the ledger-wide running aggregates. They are maintained
// in the same critical section as the mutations they summarize, never
// recomputed by scanning.
type LedgerStats struct {
	TotalProducts     int64           `json:"totalProducts"`
	TotalTransactions int64           `json:"totalTransactions"`
	TotalValue        decimal.Decimal `json:"totalValue"`     // Sum of every product's current price
	ActiveProducts    int64           `json:"activeProducts"` // Products not yet AVAILABLE
}
