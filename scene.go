package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scenePreset is an optional YAML file describing a complete simulation
// setup. Zero-valued fields leave the corresponding setting untouched.
type scenePreset struct {
	ElementCount  int          `yaml:"elementCount"`
	Pitch         float64      `yaml:"pitch"`
	WaveSpeed     float64      `yaml:"waveSpeed"`
	MovieDuration float64      `yaml:"movieDuration"`
	FrameRate     float64      `yaml:"frameRate"`
	Target        *sceneTarget `yaml:"target"`
}

// sceneTarget is the optional focus point of a preset.
type sceneTarget struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// loadScenePreset parses the preset at path.
func loadScenePreset(path string) (*scenePreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene preset: %w", err)
	}
	var preset scenePreset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("parsing scene preset %q: %w", path, err)
	}
	return &preset, nil
}

// applyTo overlays the preset's set fields onto existing settings.
func (p *scenePreset) applyTo(s *simSettings) {
	if p.ElementCount > 0 {
		s.ElementCount = p.ElementCount
	}
	if p.Pitch > 0 {
		s.Pitch = p.Pitch
	}
	if p.WaveSpeed > 0 {
		s.WaveSpeed = p.WaveSpeed
	}
	if p.MovieDuration > 0 {
		s.MovieDuration = p.MovieDuration
	}
	if p.FrameRate > 0 {
		s.FrameRate = p.FrameRate
	}
}
