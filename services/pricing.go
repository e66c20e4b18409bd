package services

import "math"

// FinalPrice applies a dealer discount percentage and rounds to whole units.
func FinalPrice(price, discount float64) float64 {
	return math.Round(price * (100 - discount) / 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
