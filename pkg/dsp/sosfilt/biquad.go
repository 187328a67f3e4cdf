package sosfilt

// Section applies one biquad second-order section to a channel of samples
// using transposed direct form II.
//
// coeff holds exactly 5 values {b0, b1, b2, -a1, -a2}: a0 is normalized to
// 1 and omitted, and the feedback terms are pre-negated. state holds the 2
// TDF-II delay values {w1, w2}; they are read from and written back to the
// slice, so they persist across calls (zero them for a cold start).
//
// The recurrence per sample x, in temporal order:
//
//	y  = b0*x + w1
//	w1 = b1*x + a1*y + w2
//	w2 = b2*x + a2*y
//
// Section is in-place safe: dst may be the same slice as src, because each
// output sample is written only after its own input sample has been read.
// The cascade in Filter.Process relies on this to chain stages without
// scratch buffers. dst must hold at least len(src) samples.
//
// There is no clamping and no denormal or NaN/Inf guard; stability of the
// section is a caller-supplied precondition.
func Section(coeff, state []float32, dst, src []float32) {
	b0, b1, b2 := coeff[0], coeff[1], coeff[2]
	a1, a2 := coeff[3], coeff[4]

	// Delay values live in registers through the frame loop; the backing
	// array is touched exactly twice.
	w1, w2 := state[0], state[1]

	for i, x := range src {
		y := b0*x + w1
		w1 = b1*x + a1*y + w2
		w2 = b2*x + a2*y
		dst[i] = y
	}

	state[0], state[1] = w1, w2
}
