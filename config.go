package main

import "time"

// Simulation and rendering configuration constants used throughout the
// application. These values define the canvas geometry, array layout defaults,
// and timing behavior for the phased-array beamforming visualizer.
const (
	canvasW, canvasH = 640, 480
	windowScale      = 2

	// arrayXFraction places the element column at a fixed fraction of the
	// canvas width, measured from the left edge.
	arrayXFraction = 0.4

	defaultElementCount = 6
	minElementCount     = 1
	maxElementCount     = 32

	defaultPitch = 40.0
	pitchStep    = 5.0
	minPitch     = 5.0
	maxPitch     = 120.0

	// defaultWaveSpeed is the shared visual propagation speed in px/s. The
	// same scalar drives delay computation, trigger-pulse travel, and
	// wavefront expansion; it is not a physical speed of sound.
	defaultWaveSpeed = 150.0
	waveSpeedStep    = 25.0
	minWaveSpeed     = 25.0
	maxWaveSpeed     = 1000.0

	elementRadius     = 5.0
	triggerLineLength = 60.0

	targetEdgeMargin  = 50.0
	targetMinStandoff = 100.0

	// visualizationFreqHz is the illustrative oscillation frequency used by
	// the interference evaluator. It is not derived from any physical pulse
	// spectrum.
	visualizationFreqHz = 5.0

	convergenceMaxRadius = 30.0

	defaultMovieDuration = 2.5
	defaultFrameRate     = 30.0
	minMovieDuration     = 0.5
	maxMovieDuration     = 30.0

	defaultTPS = 60.0

	defaultFieldDownsample = 4

	toneFreqHz        = 440.0
	toneLevelSmooth   = 0.05
	audioSampleRate   = 48000
	pgoRecordDuration = 15 * time.Second

	// targetSweepPeriod is the orbit period of the scripted focus-target
	// sweep used while capturing a CPU profile.
	targetSweepPeriod = 4.0
)

// maxFieldElements bounds the per-element buffers uploaded to the OpenCL
// field kernel.
const maxFieldElements = maxElementCount
