// Package block provides the buffer and block descriptors shared by every
// libspark kernel, along with the validator that enforces shape, format,
// layout, and role contracts at call boundaries.
package block

// Flags is the bit-packed descriptor word combining a sample format, a
// memory layout, and a block kind. The bit layout is fixed: bits [0..3]
// hold the format, bits [4..7] the layout, bits [8..10] the kind. A zero
// value in any field means invalid/unset.
type Flags uint32

// Format identifies the sample encoding of a buffer. It occupies bits
// [0..3] of a Flags word.
type Format uint32

const (
	// FormatInvalid marks an unset or malformed format.
	FormatInvalid Format = 0x00
	// FormatI16 is 16-bit signed integer samples.
	FormatI16 Format = 0x01
	// FormatI32 is 32-bit signed integer samples.
	FormatI32 Format = 0x02
	// FormatF32 is 32-bit floating-point samples.
	FormatF32 Format = 0x03
	// FormatF64 is 64-bit floating-point samples.
	FormatF64 Format = 0x04

	formatMask Flags = 0x0F
)

// Layout identifies the memory arrangement of a buffer. It occupies bits
// [4..7] of a Flags word.
//
// Interleaved buffers hold frames*channels samples in frame-major order:
// frame n = [c0, c1, ..., c(C-1)], then frame n+1. Planar buffers hold
// channel-major contiguous planes: channel k starts at offset k*frames.
// Pointer-to-pointer planar storage is not modeled.
type Layout uint32

const (
	// LayoutInvalid marks an unset or malformed layout.
	LayoutInvalid Layout = 0x00
	// LayoutInterleaved is frame-major sample order.
	LayoutInterleaved Layout = 0x10
	// LayoutPlanar is channel-major contiguous planes.
	LayoutPlanar Layout = 0x20

	layoutMask Flags = 0xF0
)

// Kind declares the I/O semantics of a block operation. It occupies bits
// [8..10] of a Flags word. Kind is supplied with the required flags at
// validation time; it is never stored in a descriptor.
type Kind uint32

const (
	// KindInvalid marks an unset or malformed kind.
	KindInvalid Kind = 0x000
	// KindProcess requires input and output to be shape-similar, valid,
	// and both matching the required format/layout.
	KindProcess Kind = 0x100
	// KindConvert requires a valid, type-matching input and a valid
	// output whose encoding is free to differ.
	KindConvert Kind = 0x200
	// KindSource ignores the input entirely; output must be valid and
	// match the required format/layout.
	KindSource Kind = 0x300
	// KindSink ignores the output entirely; input must be valid and
	// match the required format/layout.
	KindSink Kind = 0x400

	kindMask Flags = 0x700
)

// Format extracts the format field.
func (f Flags) Format() Format { return Format(f & formatMask) }

// Layout extracts the layout field.
func (f Flags) Layout() Layout { return Layout(f & layoutMask) }

// Kind extracts the kind field.
func (f Flags) Kind() Kind { return Kind(f & kindMask) }

// Join packs a format, layout, and kind into a single Flags word without
// validation. Use Compose when the members must be checked.
func Join(f Format, l Layout, k Kind) Flags {
	return Flags(f) | Flags(l) | Flags(k)
}

// Compose packs a format, layout, and kind into a Flags word, rejecting
// any member that is not a defined non-zero value.
func Compose(f Format, l Layout, k Kind) (Flags, error) {
	if !f.valid() || !l.valid() || !k.valid() {
		return 0, ErrInvalidParam
	}
	return Join(f, l, k), nil
}

// Bytes returns the size of one sample in the format, or 0 if the format
// is invalid.
func (f Format) Bytes() int {
	switch f {
	case FormatI16:
		return 2
	case FormatI32:
		return 4
	case FormatF32:
		return 4
	case FormatF64:
		return 8
	default:
		return 0
	}
}

func (f Format) valid() bool {
	switch f {
	case FormatI16, FormatI32, FormatF32, FormatF64:
		return true
	}
	return false
}

func (l Layout) valid() bool {
	return l == LayoutInterleaved || l == LayoutPlanar
}

func (k Kind) valid() bool {
	switch k {
	case KindProcess, KindConvert, KindSource, KindSink:
		return true
	}
	return false
}

// String returns a short name for the format.
func (f Format) String() string {
	switch f {
	case FormatI16:
		return "i16"
	case FormatI32:
		return "i32"
	case FormatF32:
		return "f32"
	case FormatF64:
		return "f64"
	default:
		return "invalid"
	}
}

// String returns a short name for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutInterleaved:
		return "interleaved"
	case LayoutPlanar:
		return "planar"
	default:
		return "invalid"
	}
}

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindProcess:
		return "process"
	case KindConvert:
		return "convert"
	case KindSource:
		return "source"
	case KindSink:
		return "sink"
	default:
		return "invalid"
	}
}
