// Package transform implements a fixed-size real-time spectral analysis
// pipeline: an in-place radix-2 Cooley-Tukey transform over single-precision
// buffers, optional windowing, Cartesian-to-polar conversion of the lower
// half spectrum, and decibel rescaling.
//
// The package is designed for latency-critical use. A Session allocates its
// working buffers, twiddle factors, and bit-reversal permutation exactly once
// at construction; Run performs no heap allocation, no recursion, and no
// data-dependent control flow in the butterfly network, so a call completes
// in deterministic time proportional to N log N. This makes Run safe to
// invoke from interrupt-style execution contexts, provided the caller
// serializes access: a Session carries no internal locking and must not be
// driven concurrently from two goroutines or priority levels.
package transform
