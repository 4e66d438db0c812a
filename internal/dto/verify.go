package dto

import (
	"time"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
)

// VerifyResponse is the authenticity verdict for a product: whether its
// chain of custody could be reconstructed, and the per-step breakdown.
type VerifyResponse struct {
	ProductID  string               `json:"productID"`
	Verified   bool                 `json:"verified"`
	TotalSteps int                  `json:"totalSteps"`
	Actors     []string             `json:"actors"`
	Actions    []domain.TraceAction `json:"actions"`
	Timestamps []time.Time          `json:"timestamps"`
}
