package dto

// ConvertPriceParams defines query parameters for the price conversion
// helper. Exactly one of Human or Scaled should be provided.
type ConvertPriceParams struct {
	Human  string `form:"human"`  // Human decimal amount, e.g., "12.50"
	Scaled string `form:"scaled"` // Scaled integer amount, e.g., "12500000000000000000"
}

// ConvertPriceResponse returns both representations of the amount.
type ConvertPriceResponse struct {
	Scale  int32  `json:"scale"`
	Human  string `json:"human"`
	Scaled string `json:"scaled"`
}
