// Command specinfo prints the decibel spectrum of a WAV file.
//
// Usage:
//
//	specinfo [flags] input.wav
//
// Examples:
//
//	specinfo capture.wav
//	specinfo -length 4096 -window hann capture.wav
//	specinfo -window kaiser -alpha 8.6 -top 20 capture.wav
//	specinfo -ref 1.0 capture.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/acquire"
	"github.com/cwbudde/algo-spectral/dsp/transform"
	"github.com/cwbudde/algo-spectral/dsp/window"
	"github.com/cwbudde/algo-spectral/stats/frequency"
)

type windowEntry struct {
	name     string
	typ      window.Type
	hasAlpha bool
	defAlpha float64
}

var registry = []windowEntry{
	{"rectangular", window.TypeRectangular, false, 0},
	{"hann", window.TypeHann, false, 0},
	{"hamming", window.TypeHamming, false, 0},
	{"blackman", window.TypeBlackman, false, 0},
	{"blackman-harris", window.TypeBlackmanHarris, false, 0},
	{"flat-top", window.TypeFlatTop, false, 0},
	{"kaiser", window.TypeKaiser, true, 8.6},
	{"tukey", window.TypeTukey, true, 0.5},
	{"triangle", window.TypeTriangle, false, 0},
	{"welch", window.TypeWelch, false, 0},
	{"gauss", window.TypeGauss, true, 2.5},
}

func lookupWindow(name string) (windowEntry, bool) {
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return windowEntry{}, false
}

func main() {
	length := flag.Int("length", 1024, "transform length (power of two, >= 4)")
	winName := flag.String("window", "hann", "window function (rectangular, hann, hamming, ...)")
	alpha := flag.Float64("alpha", 0, "window alpha/beta parameter (0 = window default)")
	ref := flag.Float64("ref", 0, "reference amplitude mapping to 0 dB (0 = uncalibrated)")
	top := flag.Int("top", 10, "number of strongest bins to print")
	frames := flag.Int("frames", 1, "number of frames to analyze (averaged peak listing uses the last)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: specinfo [flags] input.wav")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *length, *winName, *alpha, *ref, *top, *frames); err != nil {
		fmt.Fprintln(os.Stderr, "specinfo:", err)
		os.Exit(1)
	}
}

func run(path string, length int, winName string, alpha, ref float64, top, frames int) error {
	entry, ok := lookupWindow(winName)
	if !ok {
		return fmt.Errorf("unknown window %q", winName)
	}

	var winOpts []window.Option
	if entry.hasAlpha {
		a := entry.defAlpha
		if alpha > 0 {
			a = alpha
		}
		winOpts = append(winOpts, window.WithAlpha(a))
	}

	session, err := transform.New(length, transform.WithWindow(entry.typ, winOpts...))
	if err != nil {
		return err
	}

	source, err := acquire.NewWAVSource(path)
	if err != nil {
		return err
	}

	runner, err := acquire.NewRunner(session, source)
	if err != nil {
		return err
	}

	if ref > 0 {
		if err := runner.SetReference(ref); err != nil {
			return err
		}
	}

	if frames < 1 {
		frames = 1
	}
	if avail := source.Remaining(length); frames > avail {
		frames = avail
	}
	if frames == 0 {
		return fmt.Errorf("file shorter than one frame of %d samples", length)
	}

	var elapsed float64
	for range frames {
		d, err := runner.Run(transform.DB, 0)
		if err != nil {
			return err
		}
		elapsed = d.Seconds()
	}

	sampleRate := float64(source.SampleRate())
	half := length / 2
	db := session.Real()[:half]

	// Peak listing over the dB half spectrum of the last frame.
	type peak struct {
		bin int
		db  float32
	}
	peaks := make([]peak, half)
	for i, v := range db {
		peaks[i] = peak{bin: i, db: v}
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].db > peaks[j].db })
	if top > len(peaks) {
		top = len(peaks)
	}

	fmt.Printf("file: %s\n", path)
	fmt.Printf("length: %d, window: %s, sample rate: %.0f Hz, frames: %d\n",
		length, entry.name, sampleRate, frames)
	fmt.Printf("numeric time (last frame): %.3f ms\n\n", elapsed*1e3)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BIN\tFREQ (Hz)\tLEVEL (dB)")
	for _, p := range peaks[:top] {
		fmt.Fprintf(w, "%d\t%.1f\t%.2f\n", p.bin, frequency.BinFreq(p.bin, half, sampleRate), p.db)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	// Summary statistics come from a linear-magnitude polar pass over the
	// first frame after rewinding.
	source.Rewind()
	if _, err := runner.Run(transform.Polar, 0); err == nil {
		stats := frequency.Calculate(session.Real()[:half], sampleRate)
		fmt.Printf("\npeak: bin %d (%.1f Hz), centroid %.1f Hz, average %.2f dB\n",
			stats.MaxBin, stats.PeakFreq, stats.Centroid, stats.Average_dB)
	}

	return nil
}
