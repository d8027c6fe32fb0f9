package common

import "math"

// DefaultPlaces is the decimal precision used for all externally exposed numbers.
const DefaultPlaces = 3

// Round rounds v to the given number of decimal places, half away from zero.
// NaN and infinities collapse to 0 so every exposed number is finite.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Round3 rounds v to the default 3 decimal places.
func Round3(v float64) float64 {
	return Round(v, DefaultPlaces)
}
