package transform

import (
	"errors"
	"math"
	"testing"
)

func TestNewTwiddleTableRejectsInvalidLengths(t *testing.T) {
	for _, length := range []int{-8, 0, 1, 2, 3, 6, 100, 1000} {
		_, err := newTwiddleTable(length)
		if !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("length %d: got err=%v, want ErrInvalidLength", length, err)
		}
	}
}

func TestNewTwiddleTableValues(t *testing.T) {
	const n = 8

	tab, err := newTwiddleTable(n)
	if err != nil {
		t.Fatalf("newTwiddleTable(%d): %v", n, err)
	}

	if len(tab.cos) != n/2 || len(tab.sin) != n/2 {
		t.Fatalf("table size: cos=%d sin=%d, want %d", len(tab.cos), len(tab.sin), n/2)
	}

	for k := range n / 2 {
		angle := -2 * math.Pi * float64(k) / n
		if math.Abs(float64(tab.cos[k])-math.Cos(angle)) > 1e-6 {
			t.Fatalf("cos[%d]=%v, want %v", k, tab.cos[k], math.Cos(angle))
		}
		if math.Abs(float64(tab.sin[k])-math.Sin(angle)) > 1e-6 {
			t.Fatalf("sin[%d]=%v, want %v", k, tab.sin[k], math.Sin(angle))
		}
	}
}

func TestBitReversalPermutation(t *testing.T) {
	tab, err := newTwiddleTable(8)
	if err != nil {
		t.Fatalf("newTwiddleTable(8): %v", err)
	}

	want := []int32{0, 4, 2, 6, 1, 5, 3, 7}
	for i, v := range want {
		if tab.bitrev[i] != v {
			t.Fatalf("bitrev[%d]=%d, want %d", i, tab.bitrev[i], v)
		}
	}
}

func TestReverseBits(t *testing.T) {
	cases := []struct {
		x, bits, want int
	}{
		{0, 3, 0},
		{1, 3, 4},
		{6, 3, 3},
		{1, 10, 512},
	}

	for _, tc := range cases {
		if got := reverseBits(tc.x, tc.bits); got != tc.want {
			t.Fatalf("reverseBits(%d, %d)=%d, want %d", tc.x, tc.bits, got, tc.want)
		}
	}
}

func TestLog2(t *testing.T) {
	for n, want := 4, 2; n <= 1024; n, want = n*2, want+1 {
		if got := log2(n); got != want {
			t.Fatalf("log2(%d)=%d, want %d", n, got, want)
		}
	}
}
