// Package normalize converts the string-encoded numerics of upstream
// responses into application-level numbers and computes derived trade
// values.
//
// Decimal fields decode to NaN on malformed input rather than returning an
// error, so one bad record cannot abort an otherwise valid batch. Callers
// are expected to guard against NaN downstream.
package normalize

import (
	"math"
	"strconv"
)

// DefaultDecimals is the fixed-point precision assumed when a token does
// not report its own decimal count.
const DefaultDecimals = 18

// Decimal decodes a string-encoded fixed-point value into its human value
// by dividing through 10^decimals. Malformed input yields NaN.
func Decimal(raw string, decimals int) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v / math.Pow10(decimals)
}

// Count decodes a string-encoded integer counter. Malformed input yields
// zero; integer counters have no NaN sentinel.
func Count(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

// Unix decodes a string-encoded unix-seconds timestamp. Malformed input
// yields zero.
func Unix(raw string) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Decimals decodes a token's decimal-place count, defaulting to
// DefaultDecimals when the field is absent or malformed.
func Decimals(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultDecimals
	}
	return v
}
