package transform

import "math"

// minLength is the smallest supported transform size.
const minLength = 4

// twiddleTable holds the precomputed roots of unity and the bit-reversal
// permutation for one transform length. It is built once per Session and
// read-only afterwards, so every Run shares it without synchronization.
type twiddleTable struct {
	cos    []float32 // cos(-2*pi*k/n) for k in [0, n/2)
	sin    []float32 // sin(-2*pi*k/n)
	bitrev []int32
}

// newTwiddleTable precomputes the tables for the given transform length.
// Not on the latency-critical path; ordinary trigonometric evaluation is fine.
func newTwiddleTable(length int) (*twiddleTable, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	half := length / 2
	t := &twiddleTable{
		cos:    make([]float32, half),
		sin:    make([]float32, half),
		bitrev: make([]int32, length),
	}

	step := -2 * math.Pi / float64(length)
	for k := range half {
		angle := step * float64(k)
		t.cos[k] = float32(math.Cos(angle))
		t.sin[k] = float32(math.Sin(angle))
	}

	bits := log2(length)
	for i := range length {
		t.bitrev[i] = int32(reverseBits(i, bits))
	}

	return t, nil
}

// log2 returns the base-2 logarithm of n (n must be a power of 2).
func log2(n int) int {
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// reverseBits reverses the lower 'bits' bits of x.
// Example: reverseBits(6, 3) = reverseBits(0b110, 3) = 0b011 = 3.
func reverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}
	return result
}
