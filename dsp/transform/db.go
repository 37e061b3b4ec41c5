package transform

// DBFloor is the decibel value reported for bins whose magnitude is not
// strictly positive, avoiding a logarithm of zero.
const DBFloor = -80.0

// toDB rewrites the magnitudes in bins [0, n/2) as decibels relative to the
// calibration offset. This stage runs after toPolar and is not expected to
// execute inside an interrupt context, so the logarithm may use ordinary
// numeric routines (see db_math.go / db_math_fast.go).
func toDB(re []float32, offset float32) {
	half := len(re) / 2
	for i := range half {
		m := re[i]
		if m > 0 {
			re[i] = float32(20*mathLog10(float64(m))) - offset
		} else {
			re[i] = DBFloor
		}
	}
}
