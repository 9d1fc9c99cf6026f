package main

import "math"

// amplitudeAt estimates the superposed wave amplitude at a query point,
// normalized to [0,1]. Each element contributes only after its wavefront has
// had time to reach the point; contributions are sinusoidal at a fixed
// illustrative frequency and averaged incoherently. The result is visual
// feedback of convergence, not a physically exact pressure field.
func amplitudeAt(elements []element, targetX, targetY, t, speed float64) float64 {
	sum := 0.0
	count := 0
	for _, e := range elements {
		if t < e.delay {
			continue
		}
		travelTime := e.distanceTo(targetX, targetY) / speed
		arrival := t - e.delay - travelTime
		if arrival < 0 {
			continue
		}
		phase := arrival * 2 * math.Pi * visualizationFreqHz
		sum += 0.5*math.Sin(phase) + 0.5
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
