// Package frequency computes summary statistics over a magnitude spectrum.
package frequency

import "math"

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount   int
	DC         float64 // bin 0 magnitude
	DC_dB      float64
	Sum        float64 // sum of magnitudes
	Max        float64
	MaxBin     int
	Max_dB     float64
	Min        float64
	MinBin     int
	Average    float64
	Average_dB float64
	Energy     float64 // sum of squared magnitudes
	Centroid   float64 // spectral centroid (Hz)
	PeakFreq   float64 // frequency of the strongest bin (Hz)
}

// toDB converts a linear magnitude to decibels.
// Returns -Inf for zero values.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// BinFreq returns the frequency in Hz of bin i for a half spectrum of
// binCount bins (transform length = 2 * binCount).
func BinFreq(i, binCount int, sampleRate float64) float64 {
	if binCount <= 0 {
		return 0
	}
	return float64(i) * sampleRate / float64(2*binCount)
}

// Calculate computes statistics from a half magnitude spectrum (linear scale,
// NOT dB), bins 0 (DC) up to but excluding Nyquist, as produced by a polar
// conversion over a length 2*len(magnitude) transform.
func Calculate(magnitude []float32, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{
			DC_dB:      math.Inf(-1),
			Max_dB:     math.Inf(-1),
			Average_dB: math.Inf(-1),
		}
	}

	stats := Stats{
		BinCount: n,
		DC:       float64(magnitude[0]),
		Max:      float64(magnitude[0]),
		Min:      float64(magnitude[0]),
	}

	sum := 0.0
	energy := 0.0
	weighted := 0.0

	for i, m := range magnitude {
		v := float64(m)
		sum += v
		energy += v * v
		weighted += v * BinFreq(i, n, sampleRate)

		if v > stats.Max {
			stats.Max = v
			stats.MaxBin = i
		}
		if v < stats.Min {
			stats.Min = v
			stats.MinBin = i
		}
	}

	stats.Sum = sum
	stats.Energy = energy
	stats.Average = sum / float64(n)
	if sum > 0 {
		stats.Centroid = weighted / sum
	}
	stats.PeakFreq = BinFreq(stats.MaxBin, n, sampleRate)

	stats.DC_dB = toDB(stats.DC)
	stats.Max_dB = toDB(stats.Max)
	stats.Average_dB = toDB(stats.Average)

	return stats
}
