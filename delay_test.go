package main

import (
	"math"
	"testing"
)

func TestComputeLinearDelay(t *testing.T) {
	got := computeLinearDelay(200, 10, 200)
	if math.Abs(got-0.95) > 1e-12 {
		t.Errorf("Linear delay: got %v, want 0.95", got)
	}
}

func TestComputePointDelaysArrivalSymmetry(t *testing.T) {
	// The defining correctness property: delay_i + distance_i/speed is the
	// same for every element, so all wavefronts reach the target together.
	positions := []point{{256, 200}, {256, 240}, {256, 280}}
	const speed = 150.0
	delays := computePointDelays(positions, 400, 240, speed)

	arrivals := make([]float64, len(positions))
	for i, p := range positions {
		dist := math.Hypot(400-p.x, 240-p.y)
		arrivals[i] = delays[i] + dist/speed
	}
	for i := 1; i < len(arrivals); i++ {
		if math.Abs(arrivals[i]-arrivals[0]) > 1e-6 {
			t.Errorf("Arrival %d: got %v, want %v", i, arrivals[i], arrivals[0])
		}
	}
}

func TestComputePointDelaysFarthestFiresFirst(t *testing.T) {
	positions := []point{{256, 120}, {256, 200}, {256, 240}, {256, 300}}
	delays := computePointDelays(positions, 420, 250, 150)

	minDelay := delays[0]
	for _, d := range delays[1:] {
		if d < minDelay {
			minDelay = d
		}
	}
	if math.Abs(minDelay) > 1e-9 {
		t.Errorf("Minimum delay: got %v, want 0", minDelay)
	}

	// The nearest element waits longest.
	nearest := 0
	bestDist := math.Inf(1)
	for i, p := range positions {
		d := math.Hypot(420-p.x, 250-p.y)
		if d < bestDist {
			bestDist = d
			nearest = i
		}
	}
	for i, d := range delays {
		if d > delays[nearest]+1e-9 {
			t.Errorf("Element %d delay %v exceeds nearest element delay %v", i, d, delays[nearest])
		}
	}
}

func TestComputePointDelaysSingleElement(t *testing.T) {
	delays := computePointDelays([]point{{256, 240}}, 400, 240, 150)
	if len(delays) != 1 || delays[0] != 0 {
		t.Errorf("Single element delays: got %v, want [0]", delays)
	}
}

func TestComputePointDelaysZeroSpeed(t *testing.T) {
	// Zero speed is deliberately unguarded: closer elements divide a
	// positive distance gap by zero (Inf), the farthest divides zero by
	// zero (NaN).
	positions := []point{{256, 200}, {256, 240}}
	delays := computePointDelays(positions, 400, 240, 0)
	if !math.IsNaN(delays[0]) {
		t.Errorf("Farthest delay: got %v, want NaN", delays[0])
	}
	if !math.IsInf(delays[1], 1) {
		t.Errorf("Closer delay: got %v, want +Inf", delays[1])
	}
}
