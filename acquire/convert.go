package acquire

// CopyIntToFloat converts integer samples to single-precision floats,
// overwriting dst in place. It converts min(len(dst), len(src)) samples and
// returns that count. The loop body is a bare conversion so the compiler can
// keep it branch-free on acquisition paths.
func CopyIntToFloat(dst []float32, src []int) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(src[i])
	}

	return n
}

// CopyInt16ToFloat converts 16-bit integer samples, the native width of most
// ADC and PCM paths, to single-precision floats in place of dst. It converts
// min(len(dst), len(src)) samples and returns that count.
func CopyInt16ToFloat(dst []float32, src []int16) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(src[i])
	}

	return n
}
