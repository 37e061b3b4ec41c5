package transform

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-spectral/dsp/window"
)

// Conversion selects which pipeline a Run call executes.
type Conversion int

const (
	// Forward computes the complex spectrum of the real buffer. The imaginary
	// buffer is zeroed first, so pure real input needs no preparation.
	Forward Conversion = iota
	// Reverse computes the inverse transform of the caller-populated complex
	// buffers. No zeroing or windowing takes place.
	Reverse
	// Polar performs Forward and then rewrites bins [0, N/2) as
	// magnitude/phase pairs.
	Polar
	// DB performs Polar and then rescales the magnitudes to decibels.
	DB
)

// String returns the conversion name.
func (c Conversion) String() string {
	switch c {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Polar:
		return "polar"
	case DB:
		return "db"
	default:
		return fmt.Sprintf("conversion(%d)", int(c))
	}
}

// State reports how far the pipeline has progressed over the current buffer
// contents. It is informational; Run always re-executes its full pipeline.
type State int

const (
	StateEmpty State = iota
	StatePopulated
	StateWindowed
	StateTransformed
	StatePolar
	StateDB
)

// PopulateFunc fills the Session buffers at the start of a Run, before any
// windowing. For Forward-family conversions only the real buffer needs to be
// written; Reverse expects both buffers.
type PopulateFunc func(*Session)

// Session owns two fixed-size single-precision working buffers and the
// lookup tables for one transform length. All pipeline stages mutate the
// buffers in place; nothing is copied between stages and nothing is
// reallocated after construction.
//
// The output scale defaults to 1/length and is applied to both buffers as the
// final step of every conversion. A forward/reverse round trip therefore
// needs the product of the two scales to equal 1/length: run Forward with the
// default scale, then SetScale(1) before Reverse (or any equivalent split).
//
// A Session is not safe for concurrent use. Callers invoking Run from an
// interrupt-style context must guarantee mutual exclusion externally.
type Session struct {
	length  int
	re, im  []float32
	twiddle *twiddleTable

	win     []float32
	winGain float64

	scale    float32
	dbOffset float32

	populate PopulateFunc
	state    State
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithPopulate sets a callback invoked at the start of every Run to fill the
// working buffers.
func WithPopulate(fn PopulateFunc) Option {
	return func(s *Session) {
		s.populate = fn
	}
}

// WithWindow builds the window table from a named window type.
func WithWindow(t window.Type, opts ...window.Option) Option {
	return func(s *Session) {
		s.SetWindow(t, opts...)
	}
}

// WithWindowFunc builds the window table from a caller coefficient function.
func WithWindowFunc(fn window.Func) Option {
	return func(s *Session) {
		s.SetWindowFunc(fn)
	}
}

// WithScale overrides the default 1/length output scale.
func WithScale(scale float64) Option {
	return func(s *Session) {
		s.scale = float32(scale)
	}
}

// WithDBOffset sets the initial decibel calibration offset.
func WithDBOffset(offset float64) Option {
	return func(s *Session) {
		s.dbOffset = float32(offset)
	}
}

// New creates a Session for the given transform length.
//
// The length must be a power of two and at least 4; anything else fails with
// ErrInvalidLength. Buffers, twiddle factors, and the bit-reversal
// permutation are allocated here exactly once.
func New(length int, opts ...Option) (*Session, error) {
	twiddle, err := newTwiddleTable(length)
	if err != nil {
		return nil, err
	}

	s := &Session{
		length:  length,
		re:      make([]float32, length),
		im:      make([]float32, length),
		twiddle: twiddle,
		winGain: 1,
		scale:   1 / float32(length),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s, nil
}

// Length returns the transform length.
func (s *Session) Length() int { return s.length }

// Real returns the real working buffer. Callers populate it before a Run and
// read results from it afterwards; it is never reallocated.
func (s *Session) Real() []float32 { return s.re }

// Imag returns the imaginary working buffer.
func (s *Session) Imag() []float32 { return s.im }

// Scale returns the output scale factor.
func (s *Session) Scale() float64 { return float64(s.scale) }

// SetScale replaces the output scale factor applied at the end of the next
// Run. The default is 1/length.
func (s *Session) SetScale(scale float64) { s.scale = float32(scale) }

// DBOffset returns the decibel calibration offset.
func (s *Session) DBOffset() float64 { return float64(s.dbOffset) }

// SetDBOffset replaces the decibel calibration offset subtracted by the DB
// conversion.
func (s *Session) SetDBOffset(offset float64) { s.dbOffset = float32(offset) }

// State returns the pipeline state reached by the last Run.
func (s *Session) State() State { return s.state }

// SetPopulate replaces the populate callback.
func (s *Session) SetPopulate(fn PopulateFunc) { s.populate = fn }

// SetWindow builds and caches the window table for a named window type.
// The table is built here, once, so Run stays allocation-free.
func (s *Session) SetWindow(t window.Type, opts ...window.Option) {
	s.setWindowCoeffs(window.Generate(t, s.length, opts...))
}

// SetWindowFunc builds and caches the window table by evaluating fn once per
// index.
func (s *Session) SetWindowFunc(fn window.Func) {
	s.setWindowCoeffs(window.FromFunc(fn, s.length))
}

// ClearWindow removes a configured window.
func (s *Session) ClearWindow() {
	s.win = nil
	s.winGain = 1
}

// WindowCoherentGain returns the coherent gain of the configured window, or 1
// when no window is configured. Acquisition front ends use it to calibrate
// the decibel reference.
func (s *Session) WindowCoherentGain() float64 { return s.winGain }

func (s *Session) setWindowCoeffs(coeffs []float64) {
	s.win = window.Table32(coeffs)
	s.winGain = window.CoherentGain(coeffs)
}

// Run executes the selected conversion over the current buffer contents and
// returns the elapsed time of the numeric portion, excluding population.
//
// An unknown conversion fails with ErrInvalidConversion before any buffer is
// touched. Each call re-executes its full pipeline; no result is cached.
func (s *Session) Run(conv Conversion) (time.Duration, error) {
	if conv < Forward || conv > DB {
		return 0, fmt.Errorf("%w: %d", ErrInvalidConversion, conv)
	}

	if s.populate != nil {
		s.populate(s)
		s.state = StatePopulated
	}

	start := time.Now()

	switch conv {
	case Forward:
		s.runForward()
	case Reverse:
		s.runReverse()
	case Polar:
		s.runForward()
		toPolar(s.re, s.im)
		s.state = StatePolar
	case DB:
		s.runForward()
		toPolar(s.re, s.im)
		toDB(s.re, s.dbOffset)
		s.state = StateDB
	}

	return time.Since(start), nil
}

func (s *Session) runForward() {
	for i := range s.im {
		s.im[i] = 0
	}

	if s.win != nil {
		applyWindow(s.re, s.win)
		s.state = StateWindowed
	}

	butterflies(s.re, s.im, s.twiddle, dirForward)
	s.applyScale()
	s.state = StateTransformed
}

func (s *Session) runReverse() {
	butterflies(s.re, s.im, s.twiddle, dirInverse)
	s.applyScale()
	s.state = StateTransformed
}

func (s *Session) applyScale() {
	if s.scale == 1 {
		return
	}

	for i := range s.re {
		s.re[i] *= s.scale
		s.im[i] *= s.scale
	}
}
