// Package gen provides signal generators that fill source blocks. The
// input side of a source block is ignored entirely by validation, so a
// generator needs only a valid planar float32 output.
package gen

import (
	"math"

	"github.com/Colahall/libspark/pkg/block"
)

// Required is the flags word a generated block must validate against.
var Required = block.Join(block.FormatF32, block.LayoutPlanar, block.KindSource)

// Sine generates a sine wave into every channel of a block. Phase is kept
// across calls so consecutive blocks form a continuous signal.
type Sine struct {
	SampleRate float64
	Frequency  float64
	Amplitude  float32

	phase float64
}

// NewSine returns a generator at the given rate and frequency with unit
// amplitude.
func NewSine(sampleRate, frequency float64) *Sine {
	return &Sine{SampleRate: sampleRate, Frequency: frequency, Amplitude: 1}
}

// Reset rewinds the phase to zero.
func (s *Sine) Reset() { s.phase = 0 }

// Process fills the output plane of every channel with the next
// b.Output.Frames samples of the wave. The same signal is written to all
// channels. The block must validate with the source role; the input
// descriptor may hold anything, including garbage.
func (s *Sine) Process(b *block.Block[float32, float32]) error {
	if err := block.Validate(b, Required); err != nil {
		return err
	}

	step := 2 * math.Pi * s.Frequency / s.SampleRate
	frames := int(b.Output.Frames)
	out := b.Output.Data

	phase := s.phase
	for n := 0; n < frames; n++ {
		v := s.Amplitude * float32(math.Sin(phase))
		phase += step
		for ch := 0; ch < int(b.Output.Channels); ch++ {
			out[ch*frames+n] = v
		}
	}

	// Keep the phase bounded so long runs don't lose precision.
	s.phase = math.Mod(phase, 2*math.Pi)
	return nil
}
