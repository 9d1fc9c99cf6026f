package main

import "github.com/hajimehoshi/ebiten/v2"

// frameComposer assembles one rendered state of the simulation: background
// or heatmap, every element, the focus target, and the convergence
// indicator. It holds no per-frame state of its own.
type frameComposer struct {
	width  int
	height int
}

// frameInputs carries everything the composer needs for one frame.
type frameInputs struct {
	elements   []element
	mode       targetMode
	validation targetValidation
	t          float64
	speed      float64

	// fieldPixels is the heatmap RGBA buffer, or nil when disabled.
	fieldPixels []byte

	// focusAmp is the interference amplitude at a valid target.
	focusAmp float64
}

func newFrameComposer(width, height int) *frameComposer {
	return &frameComposer{width: width, height: height}
}

// compose draws one frame into dst.
func (fc *frameComposer) compose(dst *ebiten.Image, in frameInputs) {
	if in.fieldPixels != nil && len(in.fieldPixels) == fc.width*fc.height*4 {
		dst.WritePixels(in.fieldPixels)
	} else {
		dst.Fill(backgroundColor)
	}

	for _, e := range in.elements {
		drawElement(dst, e, e.stateAt(in.t, in.speed))
	}

	if in.mode.point {
		drawTargetMarker(dst, in.mode.x, in.mode.y, in.validation.valid)
		if in.validation.valid {
			drawConvergence(dst, in.mode.x, in.mode.y, in.focusAmp)
		}
	}
}

// render composes into a fresh offscreen image, the opaque frame handle
// stored by the movie recorder.
func (fc *frameComposer) render(in frameInputs) *ebiten.Image {
	img := ebiten.NewImage(fc.width, fc.height)
	fc.compose(img, in)
	return img
}
