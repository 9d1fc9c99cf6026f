package main

// amplitudeField stores the per-pixel interference amplitudes and the RGBA
// buffer derived from them for the full-canvas heatmap.
type amplitudeField struct {
	width, height int
	downsample    int
	pixels        []byte

	// Snapshot of the inputs for the evaluation in flight. Written by
	// prepare before workers are released, read-only while they run.
	elements []element
	t        float64
	speed    float64
}

// newAmplitudeField allocates a field sized to the canvas. downsample is the
// CPU block size in pixels; the OpenCL path always runs at full resolution.
func newAmplitudeField(width, height, downsample int) *amplitudeField {
	if downsample < 1 {
		downsample = 1
	}
	return &amplitudeField{
		width:      width,
		height:     height,
		downsample: downsample,
		pixels:     make([]byte, width*height*4),
	}
}

// prepare snapshots the inputs consumed by the next evaluation pass.
func (f *amplitudeField) prepare(elements []element, t, speed float64) {
	f.elements = elements
	f.t = t
	f.speed = speed
}

// blockRows returns the number of block rows the CPU evaluator walks.
func (f *amplitudeField) blockRows() int {
	return (f.height + f.downsample - 1) / f.downsample
}

// evaluateBlockRows computes amplitude blocks for the rows assigned to one
// worker. Block rows are distributed round robin so workers share the load
// evenly.
func (f *amplitudeField) evaluateBlockRows(index, stride int) {
	if stride < 1 {
		stride = 1
	}
	ds := f.downsample
	rows := f.blockRows()
	for br := index; br < rows; br += stride {
		y0 := br * ds
		y1 := y0 + ds
		if y1 > f.height {
			y1 = f.height
		}
		cy := float64(y0) + float64(ds)/2
		for x0 := 0; x0 < f.width; x0 += ds {
			x1 := x0 + ds
			if x1 > f.width {
				x1 = f.width
			}
			cx := float64(x0) + float64(ds)/2
			amp := amplitudeAt(f.elements, cx, cy, f.t, f.speed)
			f.fillBlock(x0, y0, x1, y1, amp)
		}
	}
}

// fillBlock writes the colormap for one amplitude value into a pixel block.
func (f *amplitudeField) fillBlock(x0, y0, x1, y1 int, amp float64) {
	r, g, b := ampColor(amp)
	for y := y0; y < y1; y++ {
		base := (y*f.width + x0) * 4
		for x := x0; x < x1; x++ {
			f.pixels[base] = r
			f.pixels[base+1] = g
			f.pixels[base+2] = b
			f.pixels[base+3] = 255
			base += 4
		}
	}
}

// fillFromAmps converts a full-resolution amplitude buffer (as produced by
// the OpenCL solver) into pixels.
func (f *amplitudeField) fillFromAmps(amps []float32) {
	if len(amps) != f.width*f.height {
		return
	}
	for i, a := range amps {
		r, g, b := ampColor(float64(a))
		base := i * 4
		f.pixels[base] = r
		f.pixels[base+1] = g
		f.pixels[base+2] = b
		f.pixels[base+3] = 255
	}
}

// clear resets the pixel buffer to the background color.
func (f *amplitudeField) clear() {
	r, g, b := ampColor(0)
	for i := 0; i < len(f.pixels); i += 4 {
		f.pixels[i] = r
		f.pixels[i+1] = g
		f.pixels[i+2] = b
		f.pixels[i+3] = 255
	}
}

// ampColor maps a normalized amplitude onto the heatmap palette. NaN inputs
// fail every comparison and land on the background color.
func ampColor(amp float64) (byte, byte, byte) {
	v := amp
	if !(v > 0) {
		v = 0
	} else if v > 1 {
		v = 1
	}
	r := byte(v * 210)
	g := byte(v * 180)
	b := byte(60 + v*195)
	return r, g, b
}
