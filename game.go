package main

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Game owns the simulation configuration, the current element array, the
// field evaluation pipeline, and the movie recorder. Configuration changes
// synchronously discard the old array and build a new one; elements are
// never mutated in place.
type Game struct {
	elementCount int
	pitch        float64
	speed        float64

	mode       targetMode
	validation targetValidation
	elements   []element

	simTime float64
	paused  bool

	composer  *frameComposer
	field     *amplitudeField
	showField bool

	workerMu       sync.Mutex
	workerCond     *sync.Cond
	workerPending  int
	workerStep     int
	workerCount    int
	workersStarted bool

	gpuSolver *openCLFieldSolver

	movie    *movieRecorder
	settings *settingsManager

	audioCtx    *audio.Context
	audioStream *focusToneStream
	audioPlayer *audio.Player

	sweepActive   bool
	sweepDeadline time.Time
	sweepPhase    float64
	stopProfile   func()
}

// newGame constructs a fully initialized Game from persisted settings and an
// optional scene preset.
func newGame(settings *settingsManager, preset *scenePreset) *Game {
	s := settings.current()
	if preset != nil {
		preset.applyTo(s)
	}
	g := &Game{
		elementCount: clampInt(s.ElementCount, minElementCount, maxElementCount),
		pitch:        clampCoord(s.Pitch, minPitch, maxPitch),
		speed:        clampCoord(s.WaveSpeed, minWaveSpeed, maxWaveSpeed),
		mode:         linearMode,
		composer:     newFrameComposer(canvasW, canvasH),
		field:        newAmplitudeField(canvasW, canvasH, *fieldDownsampleFlag),
		showField:    *showFieldFlag,
		workerCount:  runtime.NumCPU(),
		movie:        newMovieRecorder(s.MovieDuration, s.FrameRate),
		settings:     settings,
	}
	if preset != nil && preset.Target != nil {
		g.mode = pointMode(preset.Target.X, preset.Target.Y)
	}

	if *useGPUFlag {
		if solver, err := newOpenCLFieldSolver(canvasW, canvasH); err != nil {
			log.Printf("OpenCL field solver unavailable: %v (using CPU workers)", err)
		} else {
			log.Printf("OpenCL field solver enabled (device: %s)", solver.DeviceName())
			g.gpuSolver = solver
		}
	}
	if *enableAudioFlag {
		g.audioCtx = audio.NewContext(audioSampleRate)
		g.audioStream = newFocusToneStream()
		if player, err := g.audioCtx.NewPlayer(g.audioStream); err != nil {
			log.Printf("Audio player creation failed: %v", err)
		} else {
			g.audioPlayer = player
			g.audioPlayer.Play()
		}
	}

	g.startFieldWorkers()
	g.rebuildArray()
	return g
}

// rebuildArray recomputes the firing schedule and replaces the element set.
// An invalid target falls back to linear-mode delays while remaining on
// screen with an invalid marker; the point-mode delay calculator never sees
// it.
func (g *Game) rebuildArray() {
	x := arrayX(canvasW)
	g.validation = validTarget
	if g.mode.point {
		g.validation = validateTarget(g.mode.x, g.mode.y, canvasW, canvasH, x)
	}

	var plan delayPlan
	if g.mode.point && g.validation.valid {
		layout := buildArray(g.elementCount, g.pitch, uniformDelay(0), canvasW, canvasH)
		delays := computePointDelays(elementPositions(layout), g.mode.x, g.mode.y, g.speed)
		plan = perElementDelays(delays)
	} else {
		plan = uniformDelay(computeLinearDelay(triggerLineLength, elementRadius, g.speed))
	}
	g.elements = buildArray(g.elementCount, g.pitch, plan, canvasW, canvasH)
}

// setTarget switches to point mode at the given canvas coordinates and
// restarts the animation clock.
func (g *Game) setTarget(x, y float64) {
	g.mode = pointMode(x, y)
	g.rebuildArray()
	g.simTime = 0
	if g.mode.point && !g.validation.valid {
		log.Printf("Rejected focus target (%.0f, %.0f): %s", x, y, g.validation.reason)
	}
}

// clearTarget returns to linear mode.
func (g *Game) clearTarget() {
	g.mode = linearMode
	g.rebuildArray()
	g.simTime = 0
}

// Update advances the simulation clock, the scripted sweep, field
// evaluation, sonification, and movie playback.
func (g *Game) Update() error {
	g.handleInput()
	g.updateTargetSweep()

	dt := 1.0 / defaultTPS
	if g.movie.playing {
		g.movie.advance(dt)
		return nil
	}

	if !g.paused {
		g.simTime += dt
	}
	if g.showField {
		g.evaluateField(g.simTime)
	}
	if g.audioStream != nil {
		g.audioStream.SetLevel(g.focusAmplitude(g.simTime))
	}
	return nil
}

// evaluateField refreshes the heatmap for the given time, preferring the
// OpenCL path and falling back to the CPU worker pool on failure.
func (g *Game) evaluateField(t float64) {
	g.field.prepare(g.elements, t, g.speed)
	if g.gpuSolver != nil {
		amps, err := g.gpuSolver.Compute(g.elements, t, g.speed)
		if err == nil {
			g.field.fillFromAmps(amps)
			return
		}
		log.Printf("OpenCL field evaluation failed: %v (switching to CPU workers)", err)
		g.gpuSolver.Close()
		g.gpuSolver = nil
	}
	g.evaluateFieldCPU()
}

// focusAmplitude returns the interference amplitude at a valid target, or 0.
func (g *Game) focusAmplitude(t float64) float64 {
	if !g.mode.point || !g.validation.valid {
		return 0
	}
	return amplitudeAt(g.elements, g.mode.x, g.mode.y, t, g.speed)
}

// frameInputsAt assembles composer inputs for an arbitrary simulation time.
func (g *Game) frameInputsAt(t float64, includeField bool) frameInputs {
	in := frameInputs{
		elements:   g.elements,
		mode:       g.mode,
		validation: g.validation,
		t:          t,
		speed:      g.speed,
		focusAmp:   g.focusAmplitude(t),
	}
	if includeField {
		in.fieldPixels = g.field.pixels
	}
	return in
}

// recordMovie renders the configured time range into the frame buffer.
func (g *Game) recordMovie() {
	start := time.Now()
	g.movie.record(func(t float64) *ebiten.Image {
		if g.showField {
			g.evaluateField(t)
		}
		return g.composer.render(g.frameInputsAt(t, g.showField))
	})
	log.Printf("Recorded %d frames (%.1fs at %.0f fps) in %v",
		g.movie.frameCount(), g.movie.duration, g.movie.frameRate, time.Since(start))
}
