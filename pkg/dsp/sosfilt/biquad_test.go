package sosfilt

import (
	"math"
	"testing"
)

const eps = 1e-6

func almostEqual(a, b float32, tol float64) bool {
	return math.Abs(float64(a)-float64(b)) <= tol
}

func TestSectionIdentity(t *testing.T) {
	coeff := []float32{1, 0, 0, 0, 0}
	state := []float32{0, 0}
	src := []float32{1, -0.5, 0.25, 0, 0.75, -1}
	dst := make([]float32, len(src))

	Section(coeff, state, dst, src)

	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("sample %d: got %v, want %v", i, dst[i], src[i])
		}
	}
	if state[0] != 0 || state[1] != 0 {
		t.Errorf("identity section disturbed state: %v", state)
	}
}

func TestSectionHandTraced(t *testing.T) {
	// Coefficients {b0, b1, b2, -a1, -a2} for the transfer function with
	// b = {0.25, 0.5, 0.25}, a1 = -0.2, a2 = 0.04. Impulse response traced
	// by hand through the TDF-II recurrence:
	//
	// n=0: y = 0.25          w1 = 0.5 + 0.2*0.25        = 0.55
	//                        w2 = 0.25 - 0.04*0.25      = 0.24
	// n=1: y = 0.55          w1 = 0.2*0.55 + 0.24       = 0.35
	//                        w2 = -0.04*0.55            = -0.022
	// n=2: y = 0.35          w1 = 0.2*0.35 - 0.022      = 0.048
	//                        w2 = -0.04*0.35            = -0.014
	// n=3: y = 0.048
	coeff := []float32{0.25, 0.5, 0.25, 0.2, -0.04}
	state := []float32{0, 0}
	src := []float32{1, 0, 0, 0}
	dst := make([]float32, len(src))

	Section(coeff, state, dst, src)

	want := []float32{0.25, 0.55, 0.35, 0.048}
	for i := range want {
		if !almostEqual(dst[i], want[i], eps) {
			t.Errorf("sample %d: got %.7f, want %.7f", i, dst[i], want[i])
		}
	}
}

func TestSectionInPlace(t *testing.T) {
	coeff := []float32{0.2, 0.4, 0.2, 0.6, -0.1}
	src := []float32{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	ref := make([]float32, len(src))
	state := []float32{0, 0}
	Section(coeff, state, ref, src)

	// Same address for input and output must give the same result.
	buf := make([]float32, len(src))
	copy(buf, src)
	state[0], state[1] = 0, 0
	Section(coeff, state, buf, buf)

	for i := range ref {
		if buf[i] != ref[i] {
			t.Errorf("sample %d: in-place %v, separate %v", i, buf[i], ref[i])
		}
	}
}

func TestSectionStatePersists(t *testing.T) {
	coeff := []float32{0.2, 0.4, 0.2, 0.6, -0.1}
	src := []float32{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	whole := make([]float32, len(src))
	state := []float32{0, 0}
	Section(coeff, state, whole, src)

	// Processing in two halves with carried state must match.
	split := make([]float32, len(src))
	state[0], state[1] = 0, 0
	half := len(src) / 2
	Section(coeff, state, split[:half], src[:half])
	Section(coeff, state, split[half:], src[half:])

	for i := range whole {
		if split[i] != whole[i] {
			t.Errorf("sample %d: split %v, whole %v", i, split[i], whole[i])
		}
	}
}

func TestSectionStepResponseReference(t *testing.T) {
	// Known stable low-pass section driven by a 100-sample unit step,
	// compared against an independent float64 TDF-II computation.
	const frames = 100
	coeff := []float32{0.2, 0.4, 0.2, 0.6, -0.1}

	src := make([]float32, frames)
	for i := range src {
		src[i] = 1
	}
	dst := make([]float32, frames)
	state := []float32{0, 0}
	Section(coeff, state, dst, src)

	var w1, w2 float64
	for i := 0; i < frames; i++ {
		x := 1.0
		y := 0.2*x + w1
		w1 = 0.4*x + 0.6*y + w2
		w2 = 0.2*x - 0.1*y
		if math.Abs(float64(dst[i])-y) > 1e-5 {
			t.Fatalf("sample %d: got %.8f, reference %.8f", i, dst[i], y)
		}
	}
}
