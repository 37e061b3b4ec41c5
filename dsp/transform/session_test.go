package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/window"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestNewRejectsInvalidLength(t *testing.T) {
	for _, length := range []int{0, 2, 3, 100} {
		if _, err := New(length); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("New(%d): got err=%v, want ErrInvalidLength", length, err)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	s, err := New(512)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Length() != 512 {
		t.Fatalf("Length=%d, want 512", s.Length())
	}
	if len(s.Real()) != 512 || len(s.Imag()) != 512 {
		t.Fatalf("buffer lengths %d/%d, want 512", len(s.Real()), len(s.Imag()))
	}
	if math.Abs(s.Scale()-1.0/512) > 1e-12 {
		t.Fatalf("Scale=%v, want 1/512", s.Scale())
	}
	if s.DBOffset() != 0 {
		t.Fatalf("DBOffset=%v, want 0", s.DBOffset())
	}
	if s.State() != StateEmpty {
		t.Fatalf("State=%v, want StateEmpty", s.State())
	}
	if s.WindowCoherentGain() != 1 {
		t.Fatalf("WindowCoherentGain=%v, want 1", s.WindowCoherentGain())
	}
}

func TestRunRejectsUnknownConversion(t *testing.T) {
	const n = 16

	populated := false
	s, err := New(n, WithPopulate(func(*Session) { populated = true }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	copy(s.Real(), testutil.Noise(7, 1.0, n))
	before := append([]float32(nil), s.Real()...)

	if _, err := s.Run(Conversion(17)); !errors.Is(err, ErrInvalidConversion) {
		t.Fatalf("got err=%v, want ErrInvalidConversion", err)
	}

	if populated {
		t.Fatal("populate callback ran for an invalid conversion")
	}
	testutil.RequireSliceNearlyEqual(t, s.Real(), before, 0)
}

func TestPopulateCallbackRunsEachRun(t *testing.T) {
	const n = 8

	calls := 0
	s, err := New(n, WithPopulate(func(s *Session) {
		calls++
		copy(s.Real(), testutil.DC(1, n))
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for range 3 {
		if _, err := s.Run(Forward); err != nil {
			t.Fatalf("Run: %v", err)
		}
	}

	if calls != 3 {
		t.Fatalf("populate ran %d times, want 3", calls)
	}
}

func TestApplyWindowExactProduct(t *testing.T) {
	const n = 64

	re := testutil.Noise(11, 1.0, n)
	orig := append([]float32(nil), re...)
	win := window.Table32(window.Generate(window.TypeHann, n))

	applyWindow(re, win)

	for i := range re {
		if re[i] != orig[i]*win[i] {
			t.Fatalf("index %d: got %v, want %v", i, re[i], orig[i]*win[i])
		}
	}
}

func TestWindowAppliedOnForwardOnly(t *testing.T) {
	const n = 32

	s, err := New(n, WithWindowFunc(func(index, length int) float64 { return 0.5 }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	copy(s.Real(), testutil.DC(1, n))
	if _, err := s.Run(Forward); err != nil {
		t.Fatalf("Run(Forward): %v", err)
	}

	// Constant window of 0.5 halves the DC bin.
	if math.Abs(float64(s.Real()[0])-0.5) > 1e-6 {
		t.Fatalf("windowed DC bin = %v, want 0.5", s.Real()[0])
	}

	// Reverse must not window: a spectrum of all 0.5 with scale 1/N inverts
	// to an impulse of amplitude 0.5, not 0.25.
	for i := range n {
		s.Real()[i] = 0.5
		s.Imag()[i] = 0
	}
	if _, err := s.Run(Reverse); err != nil {
		t.Fatalf("Run(Reverse): %v", err)
	}
	if math.Abs(float64(s.Real()[0])-0.5) > 1e-6 {
		t.Fatalf("reverse impulse = %v, want 0.5", s.Real()[0])
	}
}

func TestWindowCoherentGain(t *testing.T) {
	const n = 256

	s, err := New(n, WithWindow(window.TypeHann, window.WithPeriodic()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Periodic Hann has a coherent gain of exactly 0.5.
	if math.Abs(s.WindowCoherentGain()-0.5) > 1e-12 {
		t.Fatalf("coherent gain = %v, want 0.5", s.WindowCoherentGain())
	}

	s.ClearWindow()
	if s.WindowCoherentGain() != 1 {
		t.Fatalf("coherent gain after ClearWindow = %v, want 1", s.WindowCoherentGain())
	}
}

func TestStateTransitions(t *testing.T) {
	const n = 16

	s, err := New(n)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		conv Conversion
		want State
	}{
		{Forward, StateTransformed},
		{Reverse, StateTransformed},
		{Polar, StatePolar},
		{DB, StateDB},
	}

	for _, tc := range cases {
		copy(s.Real(), testutil.Sine(2, 1, 0, n))
		if _, err := s.Run(tc.conv); err != nil {
			t.Fatalf("Run(%v): %v", tc.conv, err)
		}
		if s.State() != tc.want {
			t.Fatalf("after %v: state=%v, want %v", tc.conv, s.State(), tc.want)
		}
	}
}

func TestDBConversionFloorAndCalibration(t *testing.T) {
	const n = 64

	s, err := New(n)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Silence hits the floor exactly.
	if _, err := s.Run(DB); err != nil {
		t.Fatalf("Run(DB): %v", err)
	}
	for i := range n / 2 {
		if s.Real()[i] != DBFloor {
			t.Fatalf("bin %d = %v, want exactly %v", i, s.Real()[i], float32(DBFloor))
		}
	}

	// A sinusoid whose bin magnitude equals the calibrated reference reads 0 dB.
	const bin = 5
	const amp = 0.8
	s.SetDBOffset(20 * math.Log10(amp/2))
	copy(s.Real(), testutil.Cosine(bin, amp, n))

	if _, err := s.Run(DB); err != nil {
		t.Fatalf("Run(DB): %v", err)
	}
	if math.Abs(float64(s.Real()[bin])) > 1e-3 {
		t.Fatalf("calibrated level = %v dB, want 0", s.Real()[bin])
	}
}

func TestRunDoesNotAllocate(t *testing.T) {
	const n = 1024

	s, err := New(n,
		WithWindow(window.TypeHann),
		WithPopulate(func(s *Session) {
			copy(s.Real(), sineTable)
		}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, conv := range []Conversion{Forward, Reverse, Polar, DB} {
		conv := conv
		allocs := testing.AllocsPerRun(50, func() {
			if _, err := s.Run(conv); err != nil {
				t.Fatalf("Run(%v): %v", conv, err)
			}
		})
		if allocs != 0 {
			t.Fatalf("Run(%v) allocated %v times per call, want 0", conv, allocs)
		}
	}
}

var sineTable = testutil.Sine(5, 1, 0, 1024)

func TestScaleAppliedOnce(t *testing.T) {
	const n = 8

	s, err := New(n, WithScale(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	copy(s.Real(), testutil.Impulse(n, 0))
	if _, err := s.Run(Forward); err != nil {
		t.Fatalf("Run(Forward): %v", err)
	}

	// Impulse spectrum is all ones before scaling.
	for i := range n {
		if math.Abs(float64(s.Real()[i])-2) > 1e-6 {
			t.Fatalf("bin %d = %v, want 2", i, s.Real()[i])
		}
	}
}
