package main

import "math"

// delayPlan is an explicit variant describing how firing delays are assigned
// across the array: one shared scalar, or one value per element.
type delayPlan struct {
	perElement []float64
	uniform    float64
}

// uniformDelay returns a plan that broadcasts a single delay to every element.
func uniformDelay(d float64) delayPlan {
	return delayPlan{uniform: d}
}

// perElementDelays returns a plan assigning delays by element index. Callers
// must supply a vector sized to the array; missing trailing entries evaluate
// to NaN rather than being corrected here.
func perElementDelays(ds []float64) delayPlan {
	return delayPlan{perElement: ds}
}

// delayFor resolves the delay for the element at index i.
func (p delayPlan) delayFor(i int) float64 {
	if p.perElement == nil {
		return p.uniform
	}
	if i >= len(p.perElement) {
		return math.NaN()
	}
	return p.perElement[i]
}

// arrayX returns the shared horizontal position of every element for the
// given canvas width.
func arrayX(canvasWidth float64) float64 {
	return canvasWidth * arrayXFraction
}

// buildArray lays out numElements transducers in a vertical column at a fixed
// fraction of the canvas width, centered vertically regardless of element
// count or pitch. Fractional and non-positive counts are a caller error and
// are rejected by the input boundary, not here.
func buildArray(numElements int, pitch float64, plan delayPlan, canvasWidth, canvasHeight float64) []element {
	if numElements < 0 {
		numElements = 0
	}
	x := arrayX(canvasWidth)
	span := float64(numElements-1) * pitch
	firstY := (canvasHeight - span) / 2
	elements := make([]element, 0, numElements)
	for i := 0; i < numElements; i++ {
		elements = append(elements, element{
			x:                 x,
			y:                 firstY + float64(i)*pitch,
			delay:             plan.delayFor(i),
			radius:            elementRadius,
			triggerLineLength: triggerLineLength,
		})
	}
	return elements
}
