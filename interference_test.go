package main

import (
	"math"
	"testing"
)

// focusedElements builds a 3-element array focused on (400, 240) at speed 150
// using the point-mode firing schedule.
func focusedElements(t *testing.T) ([]element, float64) {
	t.Helper()
	positions := []point{{256, 200}, {256, 240}, {256, 280}}
	delays := computePointDelays(positions, 400, 240, 150)
	elements := make([]element, len(positions))
	for i, p := range positions {
		elements[i] = element{x: p.x, y: p.y, delay: delays[i], radius: 5, triggerLineLength: 60}
	}
	// Common arrival time: the farthest element fires at t=0 and its wave
	// covers maxDistance at the shared speed.
	maxDist := 0.0
	for _, p := range positions {
		if d := math.Hypot(400-p.x, 240-p.y); d > maxDist {
			maxDist = d
		}
	}
	return elements, maxDist / 150
}

func TestAmplitudeAtBeforeArrival(t *testing.T) {
	elements, arrival := focusedElements(t)

	tests := []struct {
		name string
		t    float64
	}{
		{"Time zero", 0},
		{"Negative time", -1},
		{"After firing, before arrival", arrival * 0.9},
		{"Just before arrival", arrival - 1e-6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := amplitudeAt(elements, 400, 240, tt.t, 150); got != 0 {
				t.Errorf("Amplitude before arrival: got %v, want 0", got)
			}
		})
	}
}

func TestAmplitudeAtFocusPeak(t *testing.T) {
	elements, arrival := focusedElements(t)

	// All waves arrive in phase, so a quarter period after arrival every
	// contribution peaks and the average hits 1.
	quarterPeriod := 1 / (4 * visualizationFreqHz)
	got := amplitudeAt(elements, 400, 240, arrival+quarterPeriod, 150)
	if math.Abs(got-1) > 1e-6 {
		t.Errorf("Peak amplitude: got %v, want 1", got)
	}

	// At arrival itself every phase is zero and the average sits at 0.5.
	got = amplitudeAt(elements, 400, 240, arrival, 150)
	if math.Abs(got-0.5) > 1e-6 {
		t.Errorf("Arrival amplitude: got %v, want 0.5", got)
	}
}

func TestAmplitudeAtRange(t *testing.T) {
	elements, arrival := focusedElements(t)
	for i := 0; i < 50; i++ {
		tm := arrival + float64(i)*0.013
		got := amplitudeAt(elements, 400, 240, tm, 150)
		if got < 0 || got > 1 {
			t.Fatalf("Amplitude at t=%v out of range: %v", tm, got)
		}
	}
}

func TestAmplitudeAtSingleElement(t *testing.T) {
	e := element{x: 256, y: 240, radius: 5, triggerLineLength: 60}
	// Wave arrives at dist/speed = 0.96s; phase is zero at that instant.
	got := amplitudeAt([]element{e}, 400, 240, 0.96, 150)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Single element at arrival: got %v, want 0.5", got)
	}
}

func TestAmplitudeAtNoElements(t *testing.T) {
	if got := amplitudeAt(nil, 400, 240, 10, 150); got != 0 {
		t.Errorf("Amplitude with no elements: got %v, want 0", got)
	}
}

func TestAmplitudeAtSkipsUnfired(t *testing.T) {
	near := element{x: 256, y: 240, delay: 5, radius: 5, triggerLineLength: 60}
	far := element{x: 256, y: 120, radius: 5, triggerLineLength: 60}
	// Only the already-fired element can contribute; its wave reaches the
	// query point after dist/speed seconds.
	dist := far.distanceTo(400, 240)
	tm := dist/150 + 0.01
	got := amplitudeAt([]element{near, far}, 400, 240, tm, 150)
	want := 0.5*math.Sin(0.01*2*math.Pi*visualizationFreqHz) + 0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Amplitude: got %v, want %v (only the fired element)", got, want)
	}
}
