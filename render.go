package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette shared by the frame composer.
var (
	backgroundColor   = color.RGBA{0, 0, 60, 255}
	triggerLineColor  = color.RGBA{90, 90, 110, 255}
	elementColor      = color.RGBA{235, 235, 235, 255}
	pulseColor        = color.RGBA{255, 220, 60, 255}
	wavefrontColor    = color.RGBA{80, 220, 255, 255}
	targetColor       = color.RGBA{255, 70, 70, 255}
	invalidColor      = color.RGBA{255, 70, 70, 200}
	convergenceColor  = color.RGBA{255, 180, 60, 160}
	pulseMarkerRadius = 3.0
)

// shapeSource is the 1x1 texture used when stroking triangulated paths.
var shapeSource *ebiten.Image

func shapeSourceImage() *ebiten.Image {
	if shapeSource == nil {
		shapeSource = ebiten.NewImage(1, 1)
		shapeSource.Fill(color.White)
	}
	return shapeSource
}

// strokeArc draws a circular arc by triangulating a vector path. Angles
// follow ebiten's screen convention (y down, radians).
func strokeArc(dst *ebiten.Image, cx, cy, r, start, end float64, width float32, clr color.RGBA) {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return
	}
	var p vector.Path
	p.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(end), vector.Clockwise)
	op := &vector.StrokeOptions{Width: width}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	for i := range vs {
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	top := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, shapeSourceImage(), top)
}

// drawElement renders one element's static geometry and its time-dependent
// state: trigger line and marker always, then either the approaching pulse or
// the expanding half-circle wavefront opening toward +x.
func drawElement(dst *ebiten.Image, e element, st elementState) {
	vector.StrokeLine(dst,
		float32(e.lineStart()), float32(e.y),
		float32(e.x-e.radius), float32(e.y),
		1, triggerLineColor, true)
	vector.StrokeCircle(dst, float32(e.x), float32(e.y), float32(e.radius), 1.5, elementColor, true)

	if st.pulseVisible {
		vector.DrawFilledCircle(dst, float32(st.pulseX), float32(e.y), float32(pulseMarkerRadius), pulseColor, true)
	}
	if st.wavefrontVisible {
		strokeArc(dst, e.x, e.y, st.wavefrontRadius, -math.Pi/2, math.Pi/2, 1.5, wavefrontColor)
	}
}

// drawTargetMarker renders the focus point: a crosshair ring when the target
// is valid, an X when it was rejected.
func drawTargetMarker(dst *ebiten.Image, x, y float64, valid bool) {
	fx, fy := float32(x), float32(y)
	if valid {
		vector.StrokeCircle(dst, fx, fy, 8, 1.5, targetColor, true)
		vector.StrokeLine(dst, fx-12, fy, fx+12, fy, 1, targetColor, true)
		vector.StrokeLine(dst, fx, fy-12, fx, fy+12, 1, targetColor, true)
		return
	}
	vector.StrokeLine(dst, fx-8, fy-8, fx+8, fy+8, 2, invalidColor, true)
	vector.StrokeLine(dst, fx-8, fy+8, fx+8, fy-8, 2, invalidColor, true)
}

// drawConvergence renders the indicator whose size tracks the interference
// amplitude at the target.
func drawConvergence(dst *ebiten.Image, x, y, amp float64) {
	if !(amp > 0) {
		return
	}
	r := amp * convergenceMaxRadius
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), convergenceColor, true)
}
