package transform_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/transform"
)

func ExampleSession_Run() {
	session, _ := transform.New(8)

	// One cosine cycle across the buffer concentrates energy in bin 1.
	re := session.Real()
	for i := range re {
		re[i] = float32(math.Cos(2 * math.Pi * float64(i) / 8))
	}

	_, _ = session.Run(transform.Polar)

	fmt.Printf("%.3f %.3f %.3f %.3f\n",
		session.Real()[0], session.Real()[1], session.Real()[2], session.Real()[3])
	// Output:
	// 0.000 0.500 0.000 0.000
}

func ExampleSession_Run_roundTrip() {
	session, _ := transform.New(8)

	session.Real()[3] = 1 // impulse

	_, _ = session.Run(transform.Forward)
	session.SetScale(1)
	_, _ = session.Run(transform.Reverse)

	fmt.Printf("%.2f\n", session.Real()[3])
	// Output:
	// 1.00
}

func ExampleWithWindowFunc() {
	session, _ := transform.New(8, transform.WithWindowFunc(
		func(index, length int) float64 {
			return 0.5 - 0.5*math.Cos(2*math.Pi*float64(index)/float64(length))
		},
	))

	fmt.Printf("coherent gain: %.2f\n", session.WindowCoherentGain())
	// Output:
	// coherent gain: 0.50
}
