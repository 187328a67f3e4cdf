// Package meter provides level measurement over sink blocks. A sink block
// consumes input only; its output descriptor is ignored by validation, so
// measurement needs no output buffer at all.
package meter

import (
	"math"

	"github.com/Colahall/libspark/pkg/block"
)

// Required is the flags word a measured block must validate against.
var Required = block.Join(block.FormatF32, block.LayoutPlanar, block.KindSink)

// Peak writes the maximum absolute sample value of each input channel
// into out, which must hold at least b.Input.Channels values.
// Allocation-free.
func Peak(b *block.Block[float32, float32], out []float32) error {
	if err := block.Validate(b, Required); err != nil {
		return err
	}
	if len(out) < int(b.Input.Channels) {
		return block.ErrInvalidParam
	}

	frames := int(b.Input.Frames)
	for ch := 0; ch < int(b.Input.Channels); ch++ {
		plane := b.Input.Data[ch*frames : (ch+1)*frames]
		peak := float32(0)
		for _, s := range plane {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
		out[ch] = peak
	}
	return nil
}

// RMS writes the root mean square of each input channel into out, which
// must hold at least b.Input.Channels values. Allocation-free.
func RMS(b *block.Block[float32, float32], out []float32) error {
	if err := block.Validate(b, Required); err != nil {
		return err
	}
	if len(out) < int(b.Input.Channels) {
		return block.ErrInvalidParam
	}

	frames := int(b.Input.Frames)
	for ch := 0; ch < int(b.Input.Channels); ch++ {
		plane := b.Input.Data[ch*frames : (ch+1)*frames]
		sum := float64(0)
		for _, s := range plane {
			sum += float64(s) * float64(s)
		}
		out[ch] = float32(math.Sqrt(sum / float64(frames)))
	}
	return nil
}
