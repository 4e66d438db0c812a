package dto

import (
	"time"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterProductRequest defines the data needed to register a product.
type RegisterProductRequest struct {
	ProductID   string          `json:"productID" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	BasePrice   decimal.Decimal `json:"basePrice" binding:"required"`
	HarvestDate string          `json:"harvestDate" binding:"required,calendardate"`
	Quality     string          `json:"quality" binding:"required"`
	Location    string          `json:"location" binding:"required"`
}

// AdvanceRequest defines the data for an intermediary or seller advance step.
// AddedAmount is the cost (intermediary) or margin (seller) added on top of
// the product's current price.
type AdvanceRequest struct {
	AddedAmount decimal.Decimal `json:"addedAmount"`
	Details     string          `json:"details" binding:"required"`
}

// ReceiptResponse acknowledges a committed mutating operation.
type ReceiptResponse struct {
	Sequence  uint64    `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
}

// ToReceiptResponse converts a domain.Receipt to its response DTO.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		Sequence:  r.Sequence,
		Timestamp: r.Timestamp,
	}
}

// ProductResponse defines the data returned for a product snapshot.
type ProductResponse struct {
	ProductID      string               `json:"productID"`
	Name           string               `json:"name"`
	Quantity       int64                `json:"quantity"`
	HarvestDate    string               `json:"harvestDate"`
	Quality        string               `json:"quality"`
	Location       string               `json:"location"`
	BasePrice      decimal.Decimal      `json:"basePrice"`
	CurrentPrice   decimal.Decimal      `json:"currentPrice"`
	Status         domain.ProductStatus `json:"status"`
	ProducerID     string               `json:"producerID"`
	IntermediaryID *string              `json:"intermediaryID,omitempty"`
	SellerID       *string              `json:"sellerID,omitempty"`
	RegisteredAt   time.Time            `json:"registeredAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:      p.ProductID,
		Name:           p.Name,
		Quantity:       p.Quantity,
		HarvestDate:    p.HarvestDate,
		Quality:        p.Quality,
		Location:       p.Location,
		BasePrice:      p.BasePrice,
		CurrentPrice:   p.CurrentPrice,
		Status:         p.Status,
		ProducerID:     p.ProducerID,
		IntermediaryID: p.IntermediaryID,
		SellerID:       p.SellerID,
		RegisteredAt:   p.RegisteredAt,
	}
}

// TraceEventResponse defines the data returned for one custody event.
type TraceEventResponse struct {
	Sequence   uint64             `json:"sequence"`
	ProductID  string             `json:"productID"`
	ActorID    string             `json:"actorID"`
	Action     domain.TraceAction `json:"action"`
	PriceAfter decimal.Decimal    `json:"priceAfter"`
	Details    string             `json:"details"`
	Timestamp  time.Time          `json:"timestamp"`
}

// ToTraceEventResponses converts a slice of domain.TraceEvent to DTOs.
func ToTraceEventResponses(events []domain.TraceEvent) []TraceEventResponse {
	res := make([]TraceEventResponse, len(events))
	for i, ev := range events {
		res[i] = TraceEventResponse{
			Sequence:   ev.Sequence,
			ProductID:  ev.ProductID,
			ActorID:    ev.ActorID,
			Action:     ev.Action,
			PriceAfter: ev.PriceAfter,
			Details:    ev.Details,
			Timestamp:  ev.Timestamp,
		}
	}
	return res
}

// HistoryResponse wraps a product's full custody log.
type HistoryResponse struct {
	ProductID string               `json:"productID"`
	Events    []TraceEventResponse `json:"events"`
}

// ListProductIDsResponse wraps the insertion-ordered identifier list.
type ListProductIDsResponse struct {
	ProductIDs []string `json:"productIDs"`
}

// StatsResponse defines the data returned for the ledger-wide aggregates.
type StatsResponse struct {
	TotalProducts     int64           `json:"totalProducts"`
	TotalTransactions int64           `json:"totalTransactions"`
	TotalValue        decimal.Decimal `json:"totalValue"`
	ActiveProducts    int64           `json:"activeProducts"`
}

// ToStatsResponse converts domain.LedgerStats to StatsResponse DTO.
func ToStatsResponse(s domain.LedgerStats) StatsResponse {
	return StatsResponse{
		TotalProducts:     s.TotalProducts,
		TotalTransactions: s.TotalTransactions,
		TotalValue:        s.TotalValue,
		ActiveProducts:    s.ActiveProducts,
	}
}
