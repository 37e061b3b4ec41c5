// Package testutil provides deterministic test signals and tolerance helpers
// for single-precision spectral code.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave with the given initial phase,
// completing the given number of cycles over length samples.
func Sine(cycles float64, amplitude, phase float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)+phase))
	}
	return out
}

// Cosine generates a deterministic cosine wave completing the given number of
// cycles over length samples.
func Cosine(cycles float64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = float32(amplitude * math.Cos(step*float64(i)))
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = float32(value)
	}
	return out
}
