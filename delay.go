package main

import "math"

// targetMode is a tagged variant selecting between a plane ("linear")
// wavefront and a focused ("point") firing schedule.
type targetMode struct {
	point bool
	x, y  float64
}

// linearMode fires every element with the same delay, producing a plane
// wavefront parallel to the array.
var linearMode = targetMode{}

// pointMode focuses the array on the given canvas coordinates.
func pointMode(x, y float64) targetMode {
	return targetMode{point: true, x: x, y: y}
}

// computeLinearDelay returns the shared delay used in linear mode. The value
// is chosen so the pre-fire pulse exactly spans the trigger line and reaches
// the element at t == delay; it is a rendering convenience with no acoustic
// meaning.
func computeLinearDelay(lineLength, radius, speed float64) float64 {
	return (lineLength - radius) / speed
}

// computePointDelays returns per-element delays so that wavefronts from every
// position arrive at the target simultaneously: the farthest element fires at
// t = 0 and each closer element waits out its distance advantage. Zero speed
// is not guarded and yields Inf/NaN delays.
func computePointDelays(positions []point, targetX, targetY, speed float64) []float64 {
	distances := make([]float64, len(positions))
	maxDist := 0.0
	for i, p := range positions {
		d := math.Hypot(targetX-p.x, targetY-p.y)
		distances[i] = d
		if d > maxDist {
			maxDist = d
		}
	}
	delays := make([]float64, len(positions))
	for i, d := range distances {
		delays[i] = (maxDist - d) / speed
	}
	return delays
}

// elementPositions extracts the coordinates of an element slice for delay
// computation.
func elementPositions(elements []element) []point {
	positions := make([]point, len(elements))
	for i, e := range elements {
		positions[i] = point{x: e.x, y: e.y}
	}
	return positions
}
