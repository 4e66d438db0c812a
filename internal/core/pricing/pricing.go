// Package pricing implements the fixed-point price unit: currency
// represented as an integer scaled by a fixed number of decimal places.
// Ledger arithmetic never touches floating point; these helpers only
// convert between the human decimal form and the scaled integer form
// for presentation and interchange.
package pricing

import (
	"fmt"
	"math/big"

	"github.com/SanTiwari07/AgroChain-sub001/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultScale is the default number of decimal places, matching the common
// 18-decimal fixed-point convention.
const DefaultScale = 18

// Converter converts between human decimal amounts and scaled integers.
// It is stateless and safe for concurrent use.
type Converter struct {
	scale int32
}

// NewConverter returns a Converter for the given decimal scale.
// A non-positive scale falls back to DefaultScale.
func NewConverter(scale int32) Converter {
	if scale <= 0 {
		scale = DefaultScale
	}
	return Converter{scale: scale}
}

// Scale returns the configured number of decimal places.
func (c Converter) Scale() int32 {
	return c.scale
}

// ToScaled converts a human amount (e.g., "12.50") to its scaled integer
// representation. Negative amounts are rejected.
func (c Converter) ToScaled(human decimal.Decimal) (*big.Int, error) {
	if human.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	shifted := human.Shift(c.scale)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%w: amount has more than %d decimal places", apperrors.ErrValidation, c.scale)
	}
	return shifted.BigInt(), nil
}

// ParseToScaled parses a human decimal string and converts it to the scaled
// integer representation.
func (c Converter) ParseToScaled(human string) (*big.Int, error) {
	d, err := decimal.NewFromString(human)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, human)
	}
	return c.ToScaled(d)
}

// ToHuman converts a scaled integer back to its human decimal form.
func (c Converter) ToHuman(scaled *big.Int) decimal.Decimal {
	if scaled == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(scaled, -c.scale)
}
