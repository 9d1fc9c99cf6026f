package main

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput processes the interactive controls: array shape and speed
// adjustments, target selection, pause, time reset, and movie record and
// playback.
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.setElementCount(g.elementCount + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.setElementCount(g.elementCount - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.setPitch(g.pitch + pitchStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.setPitch(g.pitch - pitchStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.setWaveSpeed(g.speed + waveSpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.setWaveSpeed(g.speed - waveSpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.clearTarget()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.simTime = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showField = !g.showField
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.setMovieDuration(g.movie.duration + 0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.setMovieDuration(g.movie.duration - 0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.recordMovie()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.movie.playing {
			g.movie.stopPlayback()
		} else if !g.movie.startPlayback() {
			log.Printf("No movie recorded yet; press R first")
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.setTarget(float64(mx), float64(my))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.clearTarget()
	}
}

// setElementCount rebuilds the array with a clamped element count.
func (g *Game) setElementCount(n int) {
	n = clampInt(n, minElementCount, maxElementCount)
	if n == g.elementCount {
		return
	}
	g.elementCount = n
	g.rebuildArray()
	g.simTime = 0
	g.syncSettings()
}

// setPitch rebuilds the array with a clamped pitch.
func (g *Game) setPitch(pitch float64) {
	pitch = clampCoord(pitch, minPitch, maxPitch)
	if pitch == g.pitch {
		return
	}
	g.pitch = pitch
	g.rebuildArray()
	g.simTime = 0
	g.syncSettings()
}

// setWaveSpeed rebuilds the array with a clamped propagation speed. Delays
// depend on the speed, so the firing schedule is recomputed.
func (g *Game) setWaveSpeed(speed float64) {
	speed = clampCoord(speed, minWaveSpeed, maxWaveSpeed)
	if speed == g.speed {
		return
	}
	g.speed = speed
	g.rebuildArray()
	g.simTime = 0
	g.syncSettings()
}

// setMovieDuration adjusts the clamped length of the next recording.
func (g *Game) setMovieDuration(d float64) {
	d = clampCoord(d, minMovieDuration, maxMovieDuration)
	if d == g.movie.duration {
		return
	}
	g.movie.duration = d
	if g.settings != nil {
		g.settings.current().MovieDuration = d
		if err := g.settings.save(); err != nil {
			log.Printf("Saving settings failed: %v", err)
		}
	}
}

// syncSettings persists the current interactive parameters.
func (g *Game) syncSettings() {
	if g.settings == nil {
		return
	}
	s := g.settings.current()
	s.ElementCount = g.elementCount
	s.Pitch = g.pitch
	s.WaveSpeed = g.speed
	if err := g.settings.save(); err != nil {
		log.Printf("Saving settings failed: %v", err)
	}
}

// enableTargetSweep schedules scripted focus-target motion for a limited
// duration, used while capturing a CPU profile.
func (g *Game) enableTargetSweep(duration time.Duration) {
	g.sweepActive = true
	g.sweepDeadline = time.Now().Add(duration)
	g.sweepPhase = 0
}

// updateTargetSweep advances the scripted target along a Lissajous orbit
// inside the valid target region. The simulation clock keeps running so the
// sweep exercises delay computation, element state, and field evaluation
// together.
func (g *Game) updateTargetSweep() {
	if !g.sweepActive {
		return
	}
	if time.Now().After(g.sweepDeadline) {
		g.sweepActive = false
		if g.stopProfile != nil {
			g.stopProfile()
			g.stopProfile = nil
			log.Printf("Profile capture finished")
		}
		return
	}
	g.sweepPhase += 2 * math.Pi / (targetSweepPeriod * defaultTPS)

	xMin := arrayX(canvasW) + targetMinStandoff
	xMax := canvasW - targetEdgeMargin
	cx := (xMin + xMax) / 2
	rx := (xMax-xMin)/2 - 5
	cy := float64(canvasH) / 2
	ry := float64(canvasH)/2 - targetEdgeMargin - 5

	g.mode = pointMode(cx+rx*math.Cos(g.sweepPhase), cy+ry*math.Sin(2*g.sweepPhase))
	g.rebuildArray()
}
