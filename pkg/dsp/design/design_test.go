package design

import (
	"math"
	"testing"
)

// gainAt evaluates a packed stage's transfer function magnitude at the
// normalized frequency w (radians/sample). The packed layout stores
// {b0, b1, b2, -a1, -a2}.
func gainAt(stage []float32, w float64) float64 {
	b0 := float64(stage[0])
	b1 := float64(stage[1])
	b2 := float64(stage[2])
	a1 := -float64(stage[3])
	a2 := -float64(stage[4])

	// H(e^jw) = (b0 + b1 e^-jw + b2 e^-2jw) / (1 + a1 e^-jw + a2 e^-2jw)
	numRe := b0 + b1*math.Cos(w) + b2*math.Cos(2*w)
	numIm := -b1*math.Sin(w) - b2*math.Sin(2*w)
	denRe := 1 + a1*math.Cos(w) + a2*math.Cos(2*w)
	denIm := -a1*math.Sin(w) - a2*math.Sin(2*w)

	num := math.Hypot(numRe, numIm)
	den := math.Hypot(denRe, denIm)
	return num / den
}

func TestIdentity(t *testing.T) {
	s := Identity()
	want := []float32{1, 0, 0, 0, 0}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("Identity() = %v", s)
		}
	}
}

func TestCascade(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5}
	b := []float32{6, 7, 8, 9, 10}
	c := Cascade(a, b)
	if len(c) != 10 {
		t.Fatalf("Cascade length = %d, want 10", len(c))
	}
	for i := 0; i < 5; i++ {
		if c[i] != a[i] || c[5+i] != b[i] {
			t.Fatalf("Cascade = %v", c)
		}
	}
}

func TestLowpassResponse(t *testing.T) {
	s := Lowpass(48000, 1000, 0.707)
	if len(s) != 5 {
		t.Fatalf("stage length = %d, want 5", len(s))
	}

	// Unity at DC, attenuated well above cutoff.
	if g := gainAt(s, 0); math.Abs(g-1) > 1e-3 {
		t.Errorf("DC gain = %v, want 1", g)
	}
	wHigh := 2 * math.Pi * 10000 / 48000
	if g := gainAt(s, wHigh); g > 0.05 {
		t.Errorf("gain at 10 kHz = %v, want strong attenuation", g)
	}
	// Roughly -3 dB at cutoff for Butterworth Q.
	wc := 2 * math.Pi * 1000 / 48000
	if g := gainAt(s, wc); math.Abs(g-math.Sqrt2/2) > 0.02 {
		t.Errorf("gain at cutoff = %v, want ~0.707", g)
	}
}

func TestHighpassResponse(t *testing.T) {
	s := Highpass(48000, 1000, 0.707)
	if g := gainAt(s, 0); g > 1e-3 {
		t.Errorf("DC gain = %v, want 0", g)
	}
	if g := gainAt(s, math.Pi); math.Abs(g-1) > 1e-3 {
		t.Errorf("Nyquist gain = %v, want 1", g)
	}
}

func TestBandpassResponse(t *testing.T) {
	s := Bandpass(48000, 1000, 1.0)
	if g := gainAt(s, 0); g > 1e-3 {
		t.Errorf("DC gain = %v, want 0", g)
	}
	if g := gainAt(s, math.Pi); g > 1e-3 {
		t.Errorf("Nyquist gain = %v, want 0", g)
	}
	wc := 2 * math.Pi * 1000 / 48000
	if g := gainAt(s, wc); math.Abs(g-1) > 0.01 {
		t.Errorf("gain at center = %v, want ~1", g)
	}
}

func TestNotchResponse(t *testing.T) {
	s := Notch(48000, 1000, 2.0)
	wc := 2 * math.Pi * 1000 / 48000
	if g := gainAt(s, wc); g > 0.01 {
		t.Errorf("gain at notch = %v, want ~0", g)
	}
	if g := gainAt(s, 0); math.Abs(g-1) > 1e-3 {
		t.Errorf("DC gain = %v, want 1", g)
	}
}

func TestPeakingZeroGainIsTransparent(t *testing.T) {
	s := Peaking(48000, 1000, 1.0, 0)
	for _, w := range []float64{0, 0.1, 0.5, 1, 2, 3} {
		if g := gainAt(s, w); math.Abs(g-1) > 1e-5 {
			t.Errorf("gain at w=%v is %v, want 1", w, g)
		}
	}
}

func TestShelfGains(t *testing.T) {
	low := LowShelf(48000, 1000, 0.707, 6)
	want := math.Pow(10, 6.0/20) // +6 dB
	if g := gainAt(low, 0); math.Abs(g-want) > 0.01 {
		t.Errorf("low shelf DC gain = %v, want %v", g, want)
	}
	if g := gainAt(low, math.Pi); math.Abs(g-1) > 0.01 {
		t.Errorf("low shelf Nyquist gain = %v, want 1", g)
	}

	high := HighShelf(48000, 1000, 0.707, -6)
	want = math.Pow(10, -6.0/20)
	if g := gainAt(high, math.Pi); math.Abs(g-want) > 0.01 {
		t.Errorf("high shelf Nyquist gain = %v, want %v", g, want)
	}
	if g := gainAt(high, 0); math.Abs(g-1) > 0.01 {
		t.Errorf("high shelf DC gain = %v, want 1", g)
	}
}

func TestPackNegatesFeedback(t *testing.T) {
	// A lowpass has a1 < 0 for cutoffs below Nyquist/2, so the stored,
	// pre-negated value must be positive.
	s := Lowpass(48000, 1000, 0.707)
	if s[3] <= 0 {
		t.Errorf("stored -a1 = %v, want > 0", s[3])
	}
}
