package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// movieFrameTimes returns the simulation time of each frame for a recording
// of the given duration at a fixed frame rate. The time grid divides by
// totalFrames-1 so the first frame is exactly t=0 and the last exactly
// t=duration. A single-frame recording divides zero by zero and yields a NaN
// time; degenerate inputs are not guarded here.
func movieFrameTimes(duration, frameRate float64) []float64 {
	total := int(math.Ceil(duration * frameRate))
	if total < 0 {
		total = 0
	}
	times := make([]float64, 0, total)
	for i := 0; i < total; i++ {
		times = append(times, float64(i)/float64(total-1)*duration)
	}
	return times
}

// movieRecorder owns the frame buffer produced by iterating the frame
// composer over a time range, and the index-advance playback state.
type movieRecorder struct {
	duration  float64
	frameRate float64
	frames    []*ebiten.Image

	playing   bool
	playIndex int
	playAccum float64
}

func newMovieRecorder(duration, frameRate float64) *movieRecorder {
	return &movieRecorder{duration: duration, frameRate: frameRate}
}

// record renders every frame of the configured time range through the given
// compose function and replaces the stored sequence. Any previous playback
// position is discarded.
func (m *movieRecorder) record(render func(t float64) *ebiten.Image) {
	times := movieFrameTimes(m.duration, m.frameRate)
	m.frames = m.frames[:0]
	for _, t := range times {
		m.frames = append(m.frames, render(t))
	}
	m.playing = false
	m.playIndex = 0
	m.playAccum = 0
}

// frameCount returns the number of stored frames.
func (m *movieRecorder) frameCount() int {
	return len(m.frames)
}

// startPlayback begins index-advance playback from the first frame. It
// reports false when nothing has been recorded.
func (m *movieRecorder) startPlayback() bool {
	if len(m.frames) == 0 {
		return false
	}
	m.playing = true
	m.playIndex = 0
	m.playAccum = 0
	return true
}

// stopPlayback halts playback and resets to the first frame.
func (m *movieRecorder) stopPlayback() {
	m.playing = false
	m.playIndex = 0
	m.playAccum = 0
}

// advance moves playback forward by dt seconds at the recording frame rate.
// Reaching the end stops and resets.
func (m *movieRecorder) advance(dt float64) {
	if !m.playing {
		return
	}
	m.playAccum += dt * m.frameRate
	for m.playAccum >= 1 {
		m.playAccum--
		m.playIndex++
		if m.playIndex >= len(m.frames) {
			m.stopPlayback()
			return
		}
	}
}

// currentFrame returns the frame under the playback cursor, or nil.
func (m *movieRecorder) currentFrame() *ebiten.Image {
	if len(m.frames) == 0 || m.playIndex >= len(m.frames) {
		return nil
	}
	return m.frames[m.playIndex]
}
