package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TraceAction names the custody event a TraceEvent records.
type TraceAction string

const (
	ActionRegistered          TraceAction = "REGISTERED"
	ActionIntermediaryAdvance TraceAction = "INTERMEDIARY_ADVANCE"
	ActionSellerAdvance       TraceAction = "SELLER_ADVANCE"
)

// TraceEvent is one immutable, appended record of a custody event for a
// product. Events are ordered per product by append order and carry a
// ledger-wide monotonic sequence number.
type TraceEvent struct {
	Sequence   uint64          `json:"sequence"` // Ledger-wide, strictly increasing
	ProductID  string          `json:"productID"`
	ActorID    string          `json:"actorID"`
	Action     TraceAction     `json:"action"`
	PriceAfter decimal.Decimal `json:"priceAfter"` // Product's current price as of this event
	Details    string          `json:"details"`    // Free-text, e.g., "Truck#7"
	Timestamp  time.Time       `json:"timestamp"`
}
