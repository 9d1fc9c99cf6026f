package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders either the live simulation or the movie frame under the
// playback cursor, plus the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.movie.playing {
		if frame := g.movie.currentFrame(); frame != nil {
			screen.DrawImage(frame, nil)
		}
		if *debugFlag {
			ebitenutil.DebugPrint(screen, fmt.Sprintf("Playback: frame %d/%d",
				g.movie.playIndex+1, g.movie.frameCount()))
		}
		return
	}

	g.composer.compose(screen, g.frameInputsAt(g.simTime, g.showField))

	if *debugFlag {
		mode := "linear"
		if g.mode.point {
			mode = fmt.Sprintf("point (%.0f, %.0f)", g.mode.x, g.mode.y)
			if !g.validation.valid {
				mode += " [" + g.validation.reason + "]"
			}
		}
		solver := "cpu"
		if g.gpuSolver != nil {
			solver = "opencl"
		}
		msg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nElements: %d  pitch %.0f  speed %.0f px/s\nMode: %s\nt = %.3fs  amp %.2f  field: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.elementCount, g.pitch, g.speed,
			mode, g.simTime, g.focusAmplitude(g.simTime), solver)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return canvasW, canvasH }
