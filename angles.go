package involute

import (
	"math"

	"github.com/makerfab/involute/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// toothAngles walks the involute parametrization until the curve
// crosses the pitch circle and then reaches the tooth's angular
// centerline. It returns the polar angle of the pitch-circle crossing
// and the angular width of the full tooth at the root circle.
//
// The walk is a pure function of the gear dimensions, so it runs once
// at construction and the angles are threaded explicitly through every
// later stage.
func toothAngles(baseRadius, pitchRadius, thetaTooth float64, maxSteps int) (thetaPitchIntersect, thetaFullTooth float64, err error) {
	intersected := false
	for i := 0; i < maxSteps; i++ {
		pol := d2.CartesianToPolar(involutePoint(baseRadius, phiAt(i, maxSteps)))
		if !intersected && pol.R >= pitchRadius {
			intersected = true
			thetaPitchIntersect = pol.Theta
			thetaFullTooth = 2*pol.Theta + thetaTooth
		} else if intersected && pol.Theta >= thetaFullTooth/2 {
			return thetaPitchIntersect, thetaFullTooth, nil
		}
	}
	return 0, 0, ErrProfile
}

// phiAt spaces the curve parameter linearly over [0, pi], endpoints
// included.
func phiAt(i, maxSteps int) float64 {
	if maxSteps == 1 {
		return 0
	}
	return math.Pi * float64(i) / float64(maxSteps-1)
}

// involutePoint evaluates the involute of a circle of radius rb at
// curve parameter phi. Phi is not the polar angle of the point.
func involutePoint(rb, phi float64) r2.Vec {
	sin, cos := math.Sincos(phi)
	return r2.Vec{
		X: rb*cos + phi*rb*sin,
		Y: rb*sin - phi*rb*cos,
	}
}
