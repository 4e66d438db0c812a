package pricing_test

import (
	"math/big"
	"testing"

	"github.com/SanTiwari07/AgroChain-sub001/internal/apperrors"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConverter_DefaultsOnNonPositiveScale(t *testing.T) {
	assert.Equal(t, int32(pricing.DefaultScale), pricing.NewConverter(0).Scale())
	assert.Equal(t, int32(pricing.DefaultScale), pricing.NewConverter(-3).Scale())
	assert.Equal(t, int32(2), pricing.NewConverter(2).Scale())
}

func TestToScaled_Success(t *testing.T) {
	c := pricing.NewConverter(18)

	scaled, err := c.ToScaled(decimal.RequireFromString("12.5"))
	require.NoError(t, err)

	expected, ok := new(big.Int).SetString("12500000000000000000", 10)
	require.True(t, ok)
	assert.Zero(t, scaled.Cmp(expected))
}

func TestToScaled_Zero(t *testing.T) {
	c := pricing.NewConverter(18)

	scaled, err := c.ToScaled(decimal.Zero)
	require.NoError(t, err)
	assert.Zero(t, scaled.Sign())
}

func TestToScaled_RejectsNegative(t *testing.T) {
	c := pricing.NewConverter(18)

	_, err := c.ToScaled(decimal.RequireFromString("-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToScaled_RejectsExcessPrecision(t *testing.T) {
	c := pricing.NewConverter(2)

	_, err := c.ToScaled(decimal.RequireFromString("1.005"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseToScaled(t *testing.T) {
	c := pricing.NewConverter(2)

	scaled, err := c.ParseToScaled("19.99")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), scaled.Int64())

	_, err = c.ParseToScaled("not-a-number")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToHuman(t *testing.T) {
	c := pricing.NewConverter(2)

	human := c.ToHuman(big.NewInt(1999))
	assert.True(t, human.Equal(decimal.RequireFromString("19.99")))

	assert.True(t, c.ToHuman(nil).IsZero())
}

func TestRoundTrip(t *testing.T) {
	c := pricing.NewConverter(18)

	original := decimal.RequireFromString("580.000000000000000001")
	scaled, err := c.ToScaled(original)
	require.NoError(t, err)
	assert.True(t, c.ToHuman(scaled).Equal(original))
}
