package main

import (
	"math"
	"sync"
)

// focusToneStream sonifies convergence: a fixed-frequency tone whose level
// tracks the interference amplitude at the active target. It implements the
// io.Reader contract expected by ebiten's audio player, producing 16-bit
// stereo PCM.
type focusToneStream struct {
	mu    sync.Mutex
	level float64

	amp   float64
	phase float64
}

func newFocusToneStream() *focusToneStream {
	return &focusToneStream{}
}

// SetLevel updates the target tone level from the simulation thread.
func (s *focusToneStream) SetLevel(v float64) {
	if v > 1 {
		v = 1
	} else if !(v > 0) {
		v = 0
	}
	s.mu.Lock()
	s.level = v
	s.mu.Unlock()
}

func (s *focusToneStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// Whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	target := s.level
	s.mu.Unlock()

	phaseStep := 2 * math.Pi * toneFreqHz / audioSampleRate
	for i := 0; i < frameBytes; i += 4 {
		s.amp += (target - s.amp) * toneLevelSmooth
		sample := math.Sin(s.phase) * s.amp
		s.phase += phaseStep
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		v := int16(sample * 20000)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *focusToneStream) Close() error {
	return nil
}
