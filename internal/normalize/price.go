package normalize

import "realtoken-yam/internal/domain"

// Contribution returns the matched (value, divisor) pair a single trade
// adds to a token's unit-price aggregation. The pair depends on the trade
// direction:
//
//   - base token sold for stablecoin: the traded value is price*quantity
//     and quantity counts base-token units;
//   - stablecoin spent for base token: quantity is already
//     stablecoin-denominated, so it is the traded value directly, and the
//     base-token units traded are quantity*price.
//
// Trades of any other type contribute nothing.
func Contribution(typ domain.TransactionType, price, quantity float64) (value, divisor float64) {
	switch typ {
	case domain.TypeRealTokenToERC20:
		return price * quantity, quantity
	case domain.TypeERC20ToRealToken:
		return quantity, quantity * price
	default:
		return 0, 0
	}
}

// Totals sums the per-trade contributions of samples.
func Totals(samples []domain.TransactionSample) (value, divisor float64) {
	for _, s := range samples {
		v, d := Contribution(s.Type, s.Price, s.Quantity)
		value += v
		divisor += d
	}
	return value, divisor
}

// UnitPrice returns the aggregate stablecoin price per base-token unit over
// samples. With no qualifying samples the result is NaN (0/0), which
// callers must treat as "no price available".
func UnitPrice(samples []domain.TransactionSample) float64 {
	value, divisor := Totals(samples)
	return value / divisor
}
