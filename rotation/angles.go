package rotation

import "math"

// Atan3 is atan2 remapped from (-π, π] to [0, 2π).
// (0, 0) behaves as math.Atan2 does.
func Atan3(num, denom float64) float64 {
	theta := math.Atan2(num, denom)
	if theta < 0 {
		theta += 2 * math.Pi
		// tiny negative angles round up to exactly 2π
		if theta >= 2*math.Pi {
			theta = 0
		}
	}

	return theta
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(thetaRad float64) float64 {
	return thetaRad * 180 / math.Pi
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(thetaDeg float64) float64 {
	return thetaDeg * math.Pi / 180
}

// EuclideanDistance is the distance between (pxn, pyn, pzn) and (px, py, pz).
func EuclideanDistance(pxn, pyn, pzn, px, py, pz float64) float64 {
	return math.Sqrt(EuclideanDistanceSquared(pxn, pyn, pzn, px, py, pz))
}

// EuclideanDistanceSquared is the squared distance, for comparisons that can
// skip the square root.
func EuclideanDistanceSquared(pxn, pyn, pzn, px, py, pz float64) float64 {
	dx := pxn - px
	dy := pyn - py
	dz := pzn - pz

	return dx*dx + dy*dy + dz*dz
}
