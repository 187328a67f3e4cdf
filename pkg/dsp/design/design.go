// Package design computes biquad coefficient stages for the sosfilt
// engine. Each function returns one packed stage of 5 float32 values
// {b0, b1, b2, -a1, -a2} with a0 normalized to 1 and the feedback terms
// pre-negated, ready to copy into a Filter's coefficient array.
//
// The designs follow the Audio EQ Cookbook (R. Bristow-Johnson).
// Intermediate math runs in float64 and is truncated to float32 at the
// end.
package design

import "math"

// Identity returns a unity passthrough stage.
func Identity() []float32 {
	return []float32{1, 0, 0, 0, 0}
}

// Cascade concatenates stages into one flat coefficient array.
func Cascade(stages ...[]float32) []float32 {
	out := make([]float32, 0, len(stages)*5)
	for _, s := range stages {
		out = append(out, s...)
	}
	return out
}

// pack normalizes by a0, negates the feedback terms, and truncates to
// float32.
func pack(b0, b1, b2, a0, a1, a2 float64) []float32 {
	inv := 1.0 / a0
	return []float32{
		float32(b0 * inv),
		float32(b1 * inv),
		float32(b2 * inv),
		float32(-a1 * inv),
		float32(-a2 * inv),
	}
}

// Lowpass designs a lowpass stage with the given cutoff frequency and Q.
func Lowpass(sampleRate, frequency, q float64) []float32 {
	omega := 2.0 * math.Pi * frequency / sampleRate
	sinOmega := math.Sin(omega)
	cosOmega := math.Cos(omega)
	alpha := sinOmega / (2.0 * q)

	b0 := (1.0 - cosOmega) / 2.0
	b1 := 1.0 - cosOmega
	b2 := (1.0 - cosOmega) / 2.0
	a0 := 1.0 + alpha
	a1 := -2.0 * cosOmega
	a2 := 1.0 - alpha

	return pack(b0, b1, b2, a0, a1, a2)
}

// Highpass designs a highpass stage with the given cutoff frequency and Q.
func Highpass(sampleRate, frequency, q float64) []float32 {
	omega := 2.0 * math.Pi * frequency / sampleRate
	sinOmega := math.Sin(omega)
	cosOmega := math.Cos(omega)
	alpha := sinOmega / (2.0 * q)

	b0 := (1.0 + cosOmega) / 2.0
	b1 := -(1.0 + cosOmega)
	b2 := (1.0 + cosOmega) / 2.0
	a0 := 1.0 + alpha
	a1 := -2.0 * cosOmega
	a2 := 1.0 - alpha

	return pack(b0, b1, b2, a0, a1, a2)
}

// Bandpass designs a bandpass stage (constant skirt gain).
func Bandpass(sampleRate, frequency, q float64) []float32 {
	omega := 2.0 * math.Pi * frequency / sampleRate
	sinOmega := math.Sin(omega)
	cosOmega := math.Cos(omega)
	alpha := sinOmega / (2.0 * q)

	b0 := alpha
	b1 := 0.0
	b2 := -alpha
	a0 := 1.0 + alpha
	a1 := -2.0 * cosOmega
	a2 := 1.0 - alpha

	return pack(b0, b1, b2, a0, a1, a2)
}

// Notch designs a notch (band-reject) stage.
func Notch(sampleRate, frequency, q float64) []float32 {
	omega := 2.0 * math.Pi * frequency / sampleRate
	sinOmega := math.Sin(omega)
	cosOmega := math.Cos(omega)
	alpha := sinOmega / (2.0 * q)

	b0 := 1.0
	b1 := -2.0 * cosOmega
	b2 := 1.0
	a0 := 1.0 + alpha
	a1 := -2.0 * cosOmega
	a2 := 1.0 - alpha

	return pack(b0, b1, b2, a0, a1, a2)
}

// Peaking designs a peaking EQ stage with gain in dB.
func Peaking(sampleRate, frequency, q, gainDB float64) []float32 {
	omega := 2.0 * math.Pi * frequency / sampleRate
	sinOmega := math.Sin(omega)
	cosOmega := math.Cos(omega)
	bigA := math.Pow(10.0, gainDB/40.0)
	alpha := sinOmega / (2.0 * q)

	b0 := 1.0 + alpha*bigA
	b1 := -2.0 * cosOmega
	b2 := 1.0 - alpha*bigA
	a0 := 1.0 + alpha/bigA
	a1 := -2.0 * cosOmega
	a2 := 1.0 - alpha/bigA

	return pack(b0, b1, b2, a0, a1, a2)
}

// LowShelf designs a low shelf stage with gain in dB.
func LowShelf(sampleRate, frequency, q, gainDB float64) []float32 {
	omega := 2.0 * math.Pi * frequency / sampleRate
	sinOmega := math.Sin(omega)
	cosOmega := math.Cos(omega)
	bigA := math.Pow(10.0, gainDB/40.0)
	alpha := sinOmega / (2.0 * q)

	sqrtA := math.Sqrt(bigA)
	sqrtAAlpha := 2.0 * sqrtA * alpha

	b0 := bigA * ((bigA + 1) - (bigA-1)*cosOmega + sqrtAAlpha)
	b1 := 2.0 * bigA * ((bigA - 1) - (bigA+1)*cosOmega)
	b2 := bigA * ((bigA + 1) - (bigA-1)*cosOmega - sqrtAAlpha)
	a0 := (bigA + 1) + (bigA-1)*cosOmega + sqrtAAlpha
	a1 := -2.0 * ((bigA - 1) + (bigA+1)*cosOmega)
	a2 := (bigA + 1) + (bigA-1)*cosOmega - sqrtAAlpha

	return pack(b0, b1, b2, a0, a1, a2)
}

// HighShelf designs a high shelf stage with gain in dB.
func HighShelf(sampleRate, frequency, q, gainDB float64) []float32 {
	omega := 2.0 * math.Pi * frequency / sampleRate
	sinOmega := math.Sin(omega)
	cosOmega := math.Cos(omega)
	bigA := math.Pow(10.0, gainDB/40.0)
	alpha := sinOmega / (2.0 * q)

	sqrtA := math.Sqrt(bigA)
	sqrtAAlpha := 2.0 * sqrtA * alpha

	b0 := bigA * ((bigA + 1) + (bigA-1)*cosOmega + sqrtAAlpha)
	b1 := -2.0 * bigA * ((bigA - 1) + (bigA+1)*cosOmega)
	b2 := bigA * ((bigA + 1) + (bigA-1)*cosOmega - sqrtAAlpha)
	a0 := (bigA + 1) - (bigA-1)*cosOmega + sqrtAAlpha
	a1 := 2.0 * ((bigA - 1) - (bigA+1)*cosOmega)
	a2 := (bigA + 1) - (bigA-1)*cosOmega - sqrtAAlpha

	return pack(b0, b1, b2, a0, a1, a2)
}
