package tool

import "math"

// MinorUnits converts a major-unit amount (rupees) to the smallest currency
// denomination (paise) as charged by the payment gateway.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// MajorUnits converts a gateway minor-unit amount back to major units.
func MajorUnits(minor int64) float64 {
	return float64(minor) / 100
}
