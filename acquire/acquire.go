// Package acquire connects sample sources to transform sessions.
//
// A Source abstracts where samples come from: an ADC driver on hardware, a
// decoded audio file on a host. The Runner composes a Source with a
// transform.Session and implements the timed acquire-then-analyze cycle, the
// composition counterpart of a hardware-backed session subclass.
package acquire

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-spectral/dsp/transform"
)

// Source fills the real working buffer with freshly acquired samples.
//
// Populate blocks until len(dst) samples are available and must not retain
// dst after returning. Implementations convert hardware integer samples with
// CopyIntToFloat or CopyInt16ToFloat.
type Source interface {
	Populate(dst []float32) error
}

// Runner drives a transform.Session from a Source.
type Runner struct {
	session *transform.Session
	source  Source
}

// NewRunner composes a session with a sample source.
func NewRunner(session *transform.Session, source Source) (*Runner, error) {
	if session == nil {
		return nil, errNilSession
	}
	if source == nil {
		return nil, errNilSource
	}

	return &Runner{session: session, source: source}, nil
}

// Session returns the underlying transform session.
func (r *Runner) Session() *transform.Session { return r.session }

// Run waits for the given duration, acquires one buffer of samples into the
// session's real buffer, then dispatches the selected conversion. The
// returned duration covers only the numeric portion, as reported by the
// session; the wait and the acquisition are excluded.
func (r *Runner) Run(conv transform.Conversion, wait time.Duration) (time.Duration, error) {
	if wait > 0 {
		time.Sleep(wait)
	}

	if err := r.source.Populate(r.session.Real()); err != nil {
		return 0, fmt.Errorf("acquire: populate: %w", err)
	}

	return r.session.Run(conv)
}

// SetReference calibrates the session's decibel offset so that a sinusoid of
// the given peak amplitude reads 0 dB at its bin after a DB conversion with
// the default 1/length scale. The coherent gain of any configured window is
// compensated.
func (r *Runner) SetReference(amplitude float64) error {
	if amplitude <= 0 || math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return fmt.Errorf("acquire: reference amplitude must be > 0: %v", amplitude)
	}

	gain := r.session.WindowCoherentGain()
	r.session.SetDBOffset(20 * math.Log10(amplitude*gain/2))

	return nil
}
