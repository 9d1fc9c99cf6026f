package main

import "math"

// targetValidation is the structured result of a focus-target check. An
// invalid target is not an error: callers fall back to linear-mode delays
// while still displaying the rejected point.
type targetValidation struct {
	valid  bool
	reason string
}

// validTarget is the success result shared by all passing checks.
var validTarget = targetValidation{valid: true}

// validateTarget checks a candidate focus point against the canvas and array
// geometry. Checks run in priority order and the first failure wins: edge
// margin, minimum standoff from the array, then the forward half-space
// constraint.
func validateTarget(targetX, targetY, canvasWidth, canvasHeight, arrayX float64) targetValidation {
	if targetX < targetEdgeMargin || targetX > canvasWidth-targetEdgeMargin ||
		targetY < targetEdgeMargin || targetY > canvasHeight-targetEdgeMargin {
		return targetValidation{reason: "target too close to canvas edge"}
	}
	if math.Abs(targetX-arrayX) <= targetMinStandoff {
		return targetValidation{reason: "target too close to array"}
	}
	if targetX < arrayX {
		return targetValidation{reason: "target behind array"}
	}
	return validTarget
}
