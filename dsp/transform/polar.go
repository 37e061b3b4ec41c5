package transform

import (
	"math"

	"github.com/cwbudde/algo-spectral/internal/fastmath"
)

// toPolar rewrites bins [0, n/2) in place as magnitude/phase pairs:
// re[i] becomes sqrt(re^2+im^2), im[i] becomes the phase in (-pi, pi].
//
// The upper half of a real-input spectrum mirrors the lower half, so bins
// [n/2, n) are left untouched. The phase uses a bounded-error arctangent
// (max error about 0.085 degrees) with a fixed operation count.
func toPolar(re, im []float32) {
	half := len(re) / 2
	for i := range half {
		x := re[i]
		y := im[i]
		re[i] = float32(math.Sqrt(float64(x*x + y*y)))
		im[i] = fastmath.Atan2(y, x)
	}
}
