package main

import (
	"math"
	"testing"
)

func TestEvaluateBlockRowsMatchesAmplitudeAt(t *testing.T) {
	f := newAmplitudeField(16, 16, 4)
	elements := []element{{x: 2, y: 2, radius: 1, triggerLineLength: 4}}
	f.prepare(elements, 1.0, 10)
	f.evaluateBlockRows(0, 1)

	for by := 0; by < 4; by++ {
		for bx := 0; bx < 4; bx++ {
			cx := float64(bx*4) + 2
			cy := float64(by*4) + 2
			wantR, wantG, wantB := ampColor(amplitudeAt(elements, cx, cy, 1.0, 10))
			base := ((by*4)*16 + bx*4) * 4
			if f.pixels[base] != wantR || f.pixels[base+1] != wantG || f.pixels[base+2] != wantB {
				t.Errorf("Block (%d,%d): got #%02x%02x%02x, want #%02x%02x%02x",
					bx, by, f.pixels[base], f.pixels[base+1], f.pixels[base+2], wantR, wantG, wantB)
			}
			if f.pixels[base+3] != 255 {
				t.Errorf("Block (%d,%d) alpha: got %d, want 255", bx, by, f.pixels[base+3])
			}
		}
	}
}

func TestEvaluateBlockRowsStride(t *testing.T) {
	// Two strided passes must cover the same blocks a single pass does.
	mkField := func() *amplitudeField {
		f := newAmplitudeField(12, 12, 3)
		f.prepare([]element{{x: 6, y: 6}}, 0.5, 20)
		return f
	}
	single := mkField()
	single.evaluateBlockRows(0, 1)

	strided := mkField()
	strided.evaluateBlockRows(0, 2)
	strided.evaluateBlockRows(1, 2)

	for i := range single.pixels {
		if single.pixels[i] != strided.pixels[i] {
			t.Fatalf("Pixel byte %d differs between stride layouts: %d vs %d", i, single.pixels[i], strided.pixels[i])
		}
	}
}

func TestAmpColorDegenerateInputs(t *testing.T) {
	bgR, bgG, bgB := ampColor(0)
	tests := []struct {
		name string
		amp  float64
	}{
		{"NaN", math.NaN()},
		{"Negative", -0.5},
		{"Negative infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ampColor(tt.amp)
			if r != bgR || g != bgG || b != bgB {
				t.Errorf("ampColor(%v): got #%02x%02x%02x, want background", tt.amp, r, g, b)
			}
		})
	}
	r, g, b := ampColor(math.Inf(1))
	wantR, wantG, wantB := ampColor(1)
	if r != wantR || g != wantG || b != wantB {
		t.Errorf("ampColor(+Inf): got #%02x%02x%02x, want full amplitude", r, g, b)
	}
}

func TestFieldClear(t *testing.T) {
	f := newAmplitudeField(8, 8, 2)
	f.prepare([]element{{x: 4, y: 4}}, 2, 50)
	f.evaluateBlockRows(0, 1)
	f.clear()

	bgR, bgG, bgB := ampColor(0)
	for i := 0; i < len(f.pixels); i += 4 {
		if f.pixels[i] != bgR || f.pixels[i+1] != bgG || f.pixels[i+2] != bgB || f.pixels[i+3] != 255 {
			t.Fatalf("Pixel %d not reset to background", i/4)
		}
	}
}

func TestFillFromAmpsSizeMismatch(t *testing.T) {
	f := newAmplitudeField(8, 8, 2)
	f.clear()
	before := make([]byte, len(f.pixels))
	copy(before, f.pixels)

	f.fillFromAmps(make([]float32, 10))
	for i := range f.pixels {
		if f.pixels[i] != before[i] {
			t.Fatal("fillFromAmps with a mismatched buffer must not modify pixels")
		}
	}
}
