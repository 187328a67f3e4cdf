// Package spark provides low-level, allocation-free numeric kernels for
// real-time multichannel audio processing.
//
// The library is built around two pieces: a buffer/block descriptor model
// with a validator that enforces shape, format, layout, and role contracts
// at call boundaries, and DSP kernels that consume validated blocks. All
// sample storage, filter coefficients, and filter state are caller-owned;
// the kernels never allocate during processing.
//
// # Blocks and Validation
//
// A block bundles an input and an output buffer descriptor plus ABI
// metadata. Every kernel entry point declares the format, layout, and role
// it requires, and the caller (or the kernel, in debug builds) validates
// the block before any sample is touched:
//
//	in := block.NewBuffer(inSamples, 2, 512, block.LayoutPlanar)
//	out := block.NewBuffer(outSamples, 2, 512, block.LayoutPlanar)
//	blk := block.New(in, out)
//
//	flags, _ := block.Compose(block.FormatF32, block.LayoutPlanar, block.KindProcess)
//	if err := block.Validate(blk, flags); err != nil {
//		// err is one of the block.Err* codes
//	}
//
// # Filtering
//
// The sosfilt package runs a cascade of second-order IIR sections (biquads)
// over every channel of a planar float32 block:
//
//	coeffs := design.Cascade(
//		design.Lowpass(48000, 1000, 0.707),
//		design.Lowpass(48000, 1000, 0.707),
//	)
//	f := sosfilt.New(2, 2, true)
//	copy(f.Coeffs, coeffs)
//	f.Process(blk)
//
// Filter state persists across calls, so a stream can be processed block by
// block with no discontinuities.
//
// # Package Map
//
//   - pkg/block: buffer/block descriptors, flags word, validator, errors
//   - pkg/dsp/sosfilt: cascaded biquad (SOS) filter engine
//   - pkg/dsp/design: RBJ biquad coefficient design helpers
//   - pkg/dsp/convert: sample format and layout conversion kernels
//   - pkg/dsp/gen: signal generators (source kernels)
//   - pkg/dsp/meter: peak/RMS measurement (sink kernels)
//   - pkg/wavefile: WAV file read/write built on go-audio
//   - pkg/debug: build-tagged assertions for kernel preconditions
//
// # Real-Time Safety
//
// Kernels are synchronous, single-threaded, and allocation-free. Two filter
// instances with distinct state may run concurrently on separate goroutines;
// a single instance must not be invoked concurrently. Precondition checks
// inside hot kernels exist only in builds with the "debug" tag; release
// builds rely on the caller having validated the block.
package spark
