package main

import "math"

// element is one transducer in the array: a fixed position, a firing delay,
// and purely visual marker geometry. Values are constructed once per array
// configuration and never mutated in place.
type element struct {
	x, y  float64
	delay float64

	// radius is the marker size; triggerLineLength is the leader line along
	// which the pre-fire pulse travels. The pulse geometry assumes
	// radius < triggerLineLength, which is not enforced.
	radius            float64
	triggerLineLength float64
}

// elementState is the instantaneous visual state of an element at a given
// simulation time. The drawing layer maps it to canvas operations; the
// element marker and trigger line themselves are drawn unconditionally and
// are not part of the state.
type elementState struct {
	// pulseVisible reports whether the pre-fire pulse is inside the trigger
	// line window; pulseX is its position along the line.
	pulseVisible bool
	pulseX       float64

	// fired reports that t has reached the firing delay. wavefrontVisible is
	// set only when the expanding wavefront has a strictly positive radius,
	// so nothing is emitted at the zero-radius instant t == delay.
	fired            bool
	wavefrontVisible bool
	wavefrontRadius  float64
}

// lineStart returns the far end of the trigger line.
func (e element) lineStart() float64 {
	return e.x - e.triggerLineLength
}

// stateAt evaluates the element at global time t under the shared visual
// propagation speed. It is a pure function; degenerate inputs (zero or NaN
// speed, negative t) are not rejected and flow through the arithmetic.
func (e element) stateAt(t, speed float64) elementState {
	if t >= e.delay {
		r := speed * (t - e.delay)
		return elementState{
			fired:            true,
			wavefrontVisible: r > 0,
			wavefrontRadius:  r,
		}
	}

	// Pre-fire: the pulse travels the trigger line so that it reaches the
	// marker edge exactly at t == delay.
	travelDist := e.triggerLineLength - e.radius
	travelTime := travelDist / speed
	startTime := e.delay - travelTime
	pos := e.lineStart() + speed*(t-startTime)
	visible := t >= startTime && pos >= e.lineStart() && pos <= e.x-e.radius
	return elementState{
		pulseVisible: visible,
		pulseX:       pos,
	}
}

// distanceTo returns the Euclidean distance from the element to a point.
func (e element) distanceTo(px, py float64) float64 {
	return math.Hypot(px-e.x, py-e.y)
}
