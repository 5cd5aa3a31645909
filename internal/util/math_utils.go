package util

import "math"

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}

// Average returns sum/n rounded to places, or 0 when n is 0.
func Average(sum float64, n int, places int) float64 {
	if n == 0 {
		return 0
	}
	return Round(sum/float64(n), places)
}
