// Package sosfilt implements a cascaded second-order-section (biquad) IIR
// filter over planar float32 blocks. The cascade runs in place with no
// allocation: all coefficient and state memory is caller-owned.
package sosfilt

import (
	"github.com/Colahall/libspark/pkg/block"
	"github.com/Colahall/libspark/pkg/debug"
)

// Sizing constants for the flat coefficient and state arrays.
const (
	// CoeffsPerStage is the number of coefficient values per section:
	// {b0, b1, b2, -a1, -a2}.
	CoeffsPerStage = 5
	// StatePerStage is the number of delay values per section: {w1, w2}.
	StatePerStage = 2
)

// Required is the flags word every processed block must validate against.
var Required = block.Join(block.FormatF32, block.LayoutPlanar, block.KindProcess)

// Filter is a cascade of second-order sections applied to every channel
// of a block.
//
// Coeffs is a flat array of CoeffsPerStage values per stage. When Shared
// is true all channels reuse the same Stages*CoeffsPerStage values; when
// false channel c reads the c-th contiguous group of Stages*CoeffsPerStage
// values, so Coeffs must hold channels*Stages*CoeffsPerStage values.
//
// State is a flat array of StatePerStage values per (channel, stage) pair,
// sized channels*Stages*StatePerStage regardless of coefficient sharing.
// It is mutated in place on every call and must persist for the lifetime
// of the filter instance; the engine never reallocates it.
//
// A Filter instance must not be invoked concurrently. Two instances with
// distinct State arrays are independent and may run on separate
// goroutines.
type Filter struct {
	Coeffs []float32
	State  []float32
	Stages int
	Shared bool
}

// CoeffLen returns the required length of the coefficient array for the
// given shape and sharing policy.
func CoeffLen(channels, stages int, shared bool) int {
	if shared {
		return stages * CoeffsPerStage
	}
	return channels * stages * CoeffsPerStage
}

// StateLen returns the required length of the state array for the given
// shape.
func StateLen(channels, stages int) int {
	return channels * stages * StatePerStage
}

// New returns a filter with freshly allocated, zeroed coefficient and
// state arrays for the given shape. Allocation happens here, at setup
// time; Process never allocates.
func New(channels, stages int, shared bool) *Filter {
	return &Filter{
		Coeffs: make([]float32, CoeffLen(channels, stages, shared)),
		State:  make([]float32, StateLen(channels, stages)),
		Stages: stages,
		Shared: shared,
	}
}

// Reset zeroes the filter state for a cold start. Coefficients are left
// untouched.
func (f *Filter) Reset() {
	for i := range f.State {
		f.State[i] = 0
	}
}

// Process runs the cascade over every channel of b, reading the input
// plane and writing the output plane in place across stages: stage 0
// reads the input window, every later stage reads the previous stage's
// result from the output window.
//
// Preconditions are the caller's responsibility: b must validate against
// Required (32-bit float, planar, process), Coeffs and State must be
// present and sized for the block's channel count, and Stages must be
// positive. Builds with the 'debug' tag panic on a violated precondition;
// release builds perform no checks here.
func (f *Filter) Process(b *block.Block[float32, float32]) {
	if debug.Enabled {
		debug.Assertf(block.Validate(b, Required) == nil,
			"sosfilt: block failed validation: %v", block.Validate(b, Required))
		debug.Assert(f.Coeffs != nil, "sosfilt: nil coefficients")
		debug.Assert(f.State != nil, "sosfilt: nil state")
		debug.Assert(f.Stages > 0, "sosfilt: stages must be > 0")
		debug.Assert(len(f.Coeffs) >= CoeffLen(int(b.Input.Channels), f.Stages, f.Shared),
			"sosfilt: coefficient array too short")
		debug.Assert(len(f.State) >= StateLen(int(b.Input.Channels), f.Stages),
			"sosfilt: state array too short")
	}

	channels := int(b.Input.Channels)
	frames := int(b.Input.Frames)
	input := b.Input.Data
	output := b.Output.Data

	ci, si := 0, 0
	for ch := 0; ch < channels; ch++ {
		in := input[ch*frames : (ch+1)*frames]
		out := output[ch*frames : (ch+1)*frames]

		// All channels replay the same coefficients when sharing; the
		// state cursor always advances.
		if f.Shared {
			ci = 0
		}

		for stage := 0; stage < f.Stages; stage++ {
			Section(f.Coeffs[ci:ci+CoeffsPerStage], f.State[si:si+StatePerStage], out, in)
			ci += CoeffsPerStage
			si += StatePerStage

			// Later stages read the previous stage's result.
			in = out
		}
	}
}
