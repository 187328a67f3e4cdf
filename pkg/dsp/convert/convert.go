// Package convert provides sample-format and layout conversion kernels.
// Every kernel validates its block with the convert role before touching
// any sample and returns the validator's error unchanged; the conversion
// loops themselves are allocation-free.
//
// Kernel channel policy: conversion covers min(input, output) channels and
// min(input, output) frames. Each side is addressed with its own stride,
// so planar planes and interleaved frames stay aligned even when the
// shapes differ. Anything the kernel cannot express in that window is the
// caller's responsibility to detect.
package convert

import "github.com/Colahall/libspark/pkg/block"

// i16Scale maps int16 full scale to [-1, 1) on decode. Encoding clamps to
// [-1, 1] and scales by 32767 to avoid overflow.
const (
	i16Decode = 1.0 / 32768.0
	i16Encode = 32767.0
)

// I16ToF32 converts 16-bit integer samples to 32-bit float in [-1, 1).
// Input and output must share a layout; the required layout for
// validation is taken from the input descriptor.
func I16ToF32(b *block.Block[int16, float32]) error {
	layout := b.Input.Flags.Layout()
	if err := block.Validate(b, block.Join(block.FormatI16, layout, block.KindConvert)); err != nil {
		return err
	}
	if !b.Output.CheckType(block.FormatF32, layout) {
		return block.ErrInvalidOutput
	}

	channels := int(min(b.Input.Channels, b.Output.Channels))
	frames := int(min(b.Input.Frames, b.Output.Frames))
	in, out := b.Input.Data, b.Output.Data

	if layout == block.LayoutPlanar {
		inFrames, outFrames := int(b.Input.Frames), int(b.Output.Frames)
		for ch := 0; ch < channels; ch++ {
			src := in[ch*inFrames:]
			dst := out[ch*outFrames:]
			for n := 0; n < frames; n++ {
				dst[n] = float32(src[n]) * i16Decode
			}
		}
		return nil
	}

	inStride, outStride := int(b.Input.Channels), int(b.Output.Channels)
	for n := 0; n < frames; n++ {
		for ch := 0; ch < channels; ch++ {
			out[n*outStride+ch] = float32(in[n*inStride+ch]) * i16Decode
		}
	}
	return nil
}

// F32ToI16 converts 32-bit float samples to 16-bit integers, clamping to
// [-1, 1] first. Input and output must share a layout.
func F32ToI16(b *block.Block[float32, int16]) error {
	layout := b.Input.Flags.Layout()
	if err := block.Validate(b, block.Join(block.FormatF32, layout, block.KindConvert)); err != nil {
		return err
	}
	if !b.Output.CheckType(block.FormatI16, layout) {
		return block.ErrInvalidOutput
	}

	channels := int(min(b.Input.Channels, b.Output.Channels))
	frames := int(min(b.Input.Frames, b.Output.Frames))
	in, out := b.Input.Data, b.Output.Data

	if layout == block.LayoutPlanar {
		inFrames, outFrames := int(b.Input.Frames), int(b.Output.Frames)
		for ch := 0; ch < channels; ch++ {
			src := in[ch*inFrames:]
			dst := out[ch*outFrames:]
			for n := 0; n < frames; n++ {
				dst[n] = encodeI16(src[n])
			}
		}
		return nil
	}

	inStride, outStride := int(b.Input.Channels), int(b.Output.Channels)
	for n := 0; n < frames; n++ {
		for ch := 0; ch < channels; ch++ {
			out[n*outStride+ch] = encodeI16(in[n*inStride+ch])
		}
	}
	return nil
}

func encodeI16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(x * i16Encode)
}

// Deinterleave rewrites frame-major float32 samples into channel-major
// contiguous planes. The input must be interleaved and the output planar.
func Deinterleave(b *block.Block[float32, float32]) error {
	if err := block.Validate(b, block.Join(block.FormatF32, block.LayoutInterleaved, block.KindConvert)); err != nil {
		return err
	}
	if !b.Output.CheckType(block.FormatF32, block.LayoutPlanar) {
		return block.ErrInvalidOutput
	}

	channels := int(min(b.Input.Channels, b.Output.Channels))
	frames := int(min(b.Input.Frames, b.Output.Frames))
	in, out := b.Input.Data, b.Output.Data
	inStride := int(b.Input.Channels)
	outFrames := int(b.Output.Frames)

	for ch := 0; ch < channels; ch++ {
		plane := out[ch*outFrames:]
		for n := 0; n < frames; n++ {
			plane[n] = in[n*inStride+ch]
		}
	}
	return nil
}

// Interleave rewrites channel-major contiguous planes into frame-major
// float32 samples. The input must be planar and the output interleaved.
func Interleave(b *block.Block[float32, float32]) error {
	if err := block.Validate(b, block.Join(block.FormatF32, block.LayoutPlanar, block.KindConvert)); err != nil {
		return err
	}
	if !b.Output.CheckType(block.FormatF32, block.LayoutInterleaved) {
		return block.ErrInvalidOutput
	}

	channels := int(min(b.Input.Channels, b.Output.Channels))
	frames := int(min(b.Input.Frames, b.Output.Frames))
	in, out := b.Input.Data, b.Output.Data
	inFrames := int(b.Input.Frames)
	outStride := int(b.Output.Channels)

	for ch := 0; ch < channels; ch++ {
		plane := in[ch*inFrames:]
		for n := 0; n < frames; n++ {
			out[n*outStride+ch] = plane[n]
		}
	}
	return nil
}
