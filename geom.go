package main

// point represents a coordinate in canvas space.
type point struct {
	x float64
	y float64
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampInt constrains an integer to the inclusive [min, max] range.
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
