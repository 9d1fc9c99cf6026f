package main

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestDefaultSimSettings(t *testing.T) {
	s := defaultSimSettings()
	if s.ElementCount != defaultElementCount {
		t.Errorf("ElementCount: got %d, want %d", s.ElementCount, defaultElementCount)
	}
	if s.Pitch != defaultPitch {
		t.Errorf("Pitch: got %v, want %v", s.Pitch, defaultPitch)
	}
	if s.WaveSpeed != defaultWaveSpeed {
		t.Errorf("WaveSpeed: got %v, want %v", s.WaveSpeed, defaultWaveSpeed)
	}
	if s.MovieDuration != defaultMovieDuration {
		t.Errorf("MovieDuration: got %v, want %v", s.MovieDuration, defaultMovieDuration)
	}
	if s.FrameRate != defaultFrameRate {
		t.Errorf("FrameRate: got %v, want %v", s.FrameRate, defaultFrameRate)
	}
}

func TestSettingsManagerNilStore(t *testing.T) {
	sm := newSettingsManager(nil)
	if sm.current() == nil {
		t.Fatal("current() returned nil in degraded mode")
	}
	if sm.current().ElementCount != defaultElementCount {
		t.Errorf("ElementCount: got %d, want default", sm.current().ElementCount)
	}
	if err := sm.save(); err != nil {
		t.Errorf("save() with nil store: got %v, want nil", err)
	}
}

func TestSettingsManagerRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	store, err := gdata.Open(gdata.Config{AppName: "ultrasound_test"})
	if err != nil {
		t.Fatalf("Opening gdata store: %v", err)
	}

	sm := newSettingsManager(store)
	sm.current().ElementCount = 9
	sm.current().WaveSpeed = 275
	if err := sm.save(); err != nil {
		t.Fatalf("save() error: %v", err)
	}

	reloaded := newSettingsManager(store)
	if reloaded.current().ElementCount != 9 {
		t.Errorf("Reloaded ElementCount: got %d, want 9", reloaded.current().ElementCount)
	}
	if reloaded.current().WaveSpeed != 275 {
		t.Errorf("Reloaded WaveSpeed: got %v, want 275", reloaded.current().WaveSpeed)
	}
}
