package block

import "unsafe"

// Sample is the set of sample encodings a buffer may carry.
type Sample interface {
	int16 | int32 | float32 | float64
}

// Buffer describes one multichannel audio buffer: a non-owning view of
// caller-managed contiguous sample storage plus its shape and encoding.
// The storage must outlive any call the buffer is passed to.
//
// Data must hold at least Channels*Frames samples. For LayoutInterleaved
// the samples are frame-major; for LayoutPlanar channel k occupies the
// contiguous range [k*Frames, (k+1)*Frames).
type Buffer[T Sample] struct {
	Data     []T
	Channels uint32
	Frames   uint32
	Flags    Flags // one Format and one Layout; the Kind field is unused
}

// NewBuffer builds a buffer descriptor over data, stamping the format tag
// that matches T.
func NewBuffer[T Sample](data []T, channels, frames uint32, layout Layout) Buffer[T] {
	return Buffer[T]{
		Data:     data,
		Channels: channels,
		Frames:   frames,
		Flags:    Flags(formatFor[T]()) | Flags(layout),
	}
}

func formatFor[T Sample]() Format {
	switch any(*new(T)).(type) {
	case int16:
		return FormatI16
	case int32:
		return FormatI32
	case float32:
		return FormatF32
	case float64:
		return FormatF64
	}
	return FormatInvalid
}

// Valid reports whether the buffer is usable for processing: the
// descriptor is present, both dimensions are non-zero, and the storage
// holds at least Channels*Frames samples. Format and layout are not
// checked here; that is a separate, explicit step (see CheckType).
func (b *Buffer[T]) Valid() bool {
	return b != nil && b.Data != nil && b.Channels > 0 && b.Frames > 0 &&
		uint32(len(b.Data)) >= b.Channels*b.Frames
}

// CheckType reports whether the buffer's format and layout match the
// required tags exactly.
func (b *Buffer[T]) CheckType(f Format, l Layout) bool {
	if b == nil {
		return false
	}
	return b.Flags.Format() == f && b.Flags.Layout() == l
}

// Similar compares two buffers for metadata equivalence: same format,
// layout, channel count, and frame count. Data slices are deliberately not
// compared; this is a shape check, not a deep-equality check.
//
// Comparing a descriptor to itself always reports true, before any nil
// handling. If exactly one descriptor is nil the result is false. Similar
// does not validate that the fields themselves are sane; use Valid and
// CheckType for that.
func Similar[A, B Sample](a *Buffer[A], b *Buffer[B]) bool {
	if unsafe.Pointer(a) == unsafe.Pointer(b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Flags.Format() == b.Flags.Format() &&
		a.Flags.Layout() == b.Flags.Layout() &&
		a.Channels == b.Channels &&
		a.Frames == b.Frames
}

// Plane returns channel ch of a planar buffer as a slice of Frames
// samples. The result aliases the buffer's storage. Calling Plane on an
// interleaved buffer returns an incorrect window; the caller is expected
// to have checked the layout.
func (b *Buffer[T]) Plane(ch uint32) []T {
	off := int(ch) * int(b.Frames)
	return b.Data[off : off+int(b.Frames)]
}

// Frame returns frame n of an interleaved buffer as a slice of Channels
// samples. The result aliases the buffer's storage.
func (b *Buffer[T]) Frame(n uint32) []T {
	off := int(n) * int(b.Channels)
	return b.Data[off : off+int(b.Channels)]
}
