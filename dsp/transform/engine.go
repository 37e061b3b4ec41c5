package transform

// direction selects the sign of the twiddle exponent.
type direction int

const (
	dirForward direction = iota
	dirInverse
)

// butterflies runs the iterative radix-2 decimation-in-time network in place
// over re/im, which must both have exactly len(t.bitrev) elements.
//
// The bit-reversal permutation is applied up front so the caller sees natural
// order on both input and output. The inverse transform conjugates the twiddle
// sine. The routine performs no allocation and no recursion, and its operation
// count depends only on the transform length, never on the data.
//
// No output scaling is applied here; the Session multiplies by its scale
// factor as the final pipeline step.
func butterflies(re, im []float32, t *twiddleTable, dir direction) {
	n := len(t.bitrev)

	for i, j := range t.bitrev {
		if int(j) > i {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	sign := float32(1)
	if dir == dirInverse {
		sign = -1
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			idx := 0
			for i := start; i < start+half; i++ {
				wr := t.cos[idx]
				wi := sign * t.sin[idx]
				idx += step

				j := i + half
				tr := re[j]*wr - im[j]*wi
				ti := re[j]*wi + im[j]*wr
				re[j] = re[i] - tr
				im[j] = im[i] - ti
				re[i] += tr
				im[i] += ti
			}
		}
	}
}

// applyWindow multiplies the real buffer elementwise by the window table.
// Both slices must have the same length.
func applyWindow(re, win []float32) {
	for i := range re {
		re[i] *= win[i]
	}
}
