// Package fastmath provides bounded-error approximations for math functions
// used on the latency-critical spectral path.
//
// The approximations trade a small, bounded amount of accuracy for a fixed
// operation count with no calls into general transcendental routines, keeping
// latency deterministic on the polar conversion path.
package fastmath

import "math"

const (
	quarterPi = float32(math.Pi / 4)
	halfPi    = float32(math.Pi / 2)
	pi        = float32(math.Pi)
)

// Atan2 approximates math.Atan2 in single precision with a maximum error of
// about 0.0015 rad (0.085 degrees).
//
// The standard two-argument quadrant convention holds: the result lies in
// (-pi, pi], takes the sign of y, and Atan2(0, 0) returns 0.
func Atan2(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}

	ax := x
	if ax < 0 {
		ax = -ax
	}
	ay := y
	if ay < 0 {
		ay = -ay
	}

	if ax >= ay {
		a := atanUnit(y / x)
		switch {
		case x > 0:
			return a
		case y >= 0:
			return a + pi
		default:
			return a - pi
		}
	}

	a := atanUnit(x / y)
	if y > 0 {
		return halfPi - a
	}
	return -halfPi - a
}

// atanUnit approximates atan(z) for z in [-1, 1] using the third-order
// polynomial atan(z) ~ (pi/4)z - z(|z|-1)(0.2447 + 0.0663|z|).
func atanUnit(z float32) float32 {
	az := z
	if az < 0 {
		az = -az
	}
	return quarterPi*z - z*(az-1)*(0.2447+0.0663*az)
}
