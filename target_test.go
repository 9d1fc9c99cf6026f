package main

import "testing"

func TestValidateTarget(t *testing.T) {
	const (
		cw = 640.0
		ch = 480.0
		ax = 256.0
	)
	tests := []struct {
		name       string
		x, y       float64
		wantValid  bool
		wantReason string
	}{
		{"Just past standoff", 357, 240, true, ""},
		{"Exactly at standoff", 356, 240, false, "target too close to array"},
		{"Exactly at edge margin", 590, 430, true, ""},
		{"Corner", 10, 10, false, "target too close to canvas edge"},
		{"Behind array", 100, 240, false, "target behind array"},
		{"Top edge", 400, 49, false, "target too close to canvas edge"},
		{"Forward and clear", 450, 240, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateTarget(tt.x, tt.y, cw, ch, ax)
			if got.valid != tt.wantValid {
				t.Fatalf("valid: got %v, want %v (reason %q)", got.valid, tt.wantValid, got.reason)
			}
			if got.reason != tt.wantReason {
				t.Errorf("reason: got %q, want %q", got.reason, tt.wantReason)
			}
		})
	}
}

func TestValidateTargetCheckOrder(t *testing.T) {
	// A point failing several checks reports the highest-priority failure:
	// edges are checked before the standoff.
	got := validateTarget(5, 240, 640, 480, 256)
	if got.valid {
		t.Fatal("Expected an invalid target")
	}
	if got.reason != "target too close to canvas edge" {
		t.Errorf("reason: got %q, want edge-margin failure first", got.reason)
	}
}
